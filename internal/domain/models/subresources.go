// internal/domain/models/subresources.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Award is an accolade shown on an institute's public profile.
type Award struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InstituteID primitive.ObjectID `bson:"institute_id" json:"instituteId"`
	Title       string             `bson:"title" json:"title"`
	Issuer      string             `bson:"issuer,omitempty" json:"issuer,omitempty"`
	Year        int                `bson:"year,omitempty" json:"year,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Highlight is a short feature bullet on an institute's public profile.
type Highlight struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InstituteID primitive.ObjectID `bson:"institute_id" json:"instituteId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Position    int                `bson:"position" json:"position"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Location is a campus or office address for an institute.
type Location struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InstituteID primitive.ObjectID `bson:"institute_id" json:"instituteId"`
	Label       string             `bson:"label,omitempty" json:"label,omitempty"`
	Address     string             `bson:"address" json:"address"`
	City        string             `bson:"city" json:"city"`
	State       string             `bson:"state,omitempty" json:"state,omitempty"`
	Country     string             `bson:"country,omitempty" json:"country,omitempty"`
	PostalCode  string             `bson:"postal_code,omitempty" json:"postalCode,omitempty"`
	IsPrimary   bool               `bson:"is_primary" json:"isPrimary"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
