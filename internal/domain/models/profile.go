// internal/domain/models/profile.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is a user's extended public profile. One per user.
type Profile struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"user_id" json:"userId"`
	PublicProfileID string             `bson:"public_profile_id" json:"publicProfileId"`
	Headline        string             `bson:"headline,omitempty" json:"headline,omitempty"`
	Summary         string             `bson:"summary,omitempty" json:"summary,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
