// internal/domain/models/registrationintent.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegistrationIntent lifecycle statuses.
const (
	IntentStatusPending         = "pending"
	IntentStatusApproved        = "approved"
	IntentStatusRejected        = "rejected"
	IntentStatusPaymentRequired = "payment_required"
	IntentStatusCompleted       = "completed"
)

// Organization types an intent can register.
const (
	IntentTypeInstitute = "institute"
	IntentTypeBusiness  = "business"
)

// ValidIntentStatus reports whether s is a known lifecycle status.
func ValidIntentStatus(s string) bool {
	switch s {
	case IntentStatusPending, IntentStatusApproved, IntentStatusRejected,
		IntentStatusPaymentRequired, IntentStatusCompleted:
		return true
	}
	return false
}

// ValidIntentType reports whether t is a known organization type.
func ValidIntentType(t string) bool {
	return t == IntentTypeInstitute || t == IntentTypeBusiness
}

// RegistrationIntent is an application submitted by a user to register an
// institute or business. Mutated only by admin review actions; never
// hard-deleted.
type RegistrationIntent struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID  `bson:"user_id" json:"userId"`
	OrganizationType string              `bson:"organization_type" json:"organizationType"` // institute | business
	OrganizationName string              `bson:"organization_name" json:"organizationName"`
	Email            string              `bson:"email" json:"email"`
	ContactName      string              `bson:"contact_name" json:"contactName"`
	ContactPhone     string              `bson:"contact_phone" json:"contactPhone"`
	Address          string              `bson:"address,omitempty" json:"address,omitempty"`
	City             string              `bson:"city,omitempty" json:"city,omitempty"`
	State            string              `bson:"state,omitempty" json:"state,omitempty"`
	InstituteID      *primitive.ObjectID `bson:"institute_id,omitempty" json:"instituteId,omitempty"`

	Status     string              `bson:"status" json:"status"`
	ReviewedBy *primitive.ObjectID `bson:"reviewed_by,omitempty" json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time          `bson:"reviewed_at,omitempty" json:"reviewedAt,omitempty"`
	AdminNotes string              `bson:"admin_notes,omitempty" json:"adminNotes,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
