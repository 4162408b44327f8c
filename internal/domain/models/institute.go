// internal/domain/models/institute.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Institute is the primary institute record: owner list plus profile content.
// It pre-dates the admin_institutes collection; when no AdminInstitute exists
// for its slug, the institute is implicitly public.
type Institute struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name            string               `bson:"name" json:"name"`
	PublicProfileID string               `bson:"public_profile_id" json:"publicProfileId"` // URL slug
	UserIDs         []primitive.ObjectID `bson:"user_ids" json:"userIds"`                  // owners/administrators
	About           string               `bson:"about,omitempty" json:"about,omitempty"`
	City            string               `bson:"city,omitempty" json:"city,omitempty"`
	State           string               `bson:"state,omitempty" json:"state,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Owns reports whether the given user is in the institute's owner list.
func (i Institute) Owns(userID primitive.ObjectID) bool {
	for _, id := range i.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
