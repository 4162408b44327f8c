// internal/domain/models/admininstitute.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Actor role values recorded in LastPublishChangedBy.
const (
	PublishActorAdmin          = "admin"
	PublishActorInstituteAdmin = "institute_admin"
)

// AdminInstitute is the denormalized administrative projection of an institute,
// keyed by slug. It is created lazily on the first publish-status mutation and
// is the source of truth for publish state once it exists. At most one document
// per slug; the unique index surfaces insert races as duplicate-key errors.
type AdminInstitute struct {
	ID      primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Slug    string               `bson:"slug" json:"slug"`
	Name    string               `bson:"name" json:"name"`
	UserIDs []primitive.ObjectID `bson:"user_ids" json:"userIds"`

	Published            bool       `bson:"published" json:"published"`
	PublishLockedByAdmin bool       `bson:"publish_locked_by_admin" json:"publishLockedByAdmin"`
	LastPublishChangedBy string     `bson:"last_publish_changed_by,omitempty" json:"lastPublishChangedBy,omitempty"`
	LastPublishedAt      *time.Time `bson:"last_published_at,omitempty" json:"lastPublishedAt,omitempty"`
	LastUnpublishedAt    *time.Time `bson:"last_unpublished_at,omitempty" json:"lastUnpublishedAt,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Owns reports whether the given user is in the record's owner list.
func (a AdminInstitute) Owns(userID primitive.ObjectID) bool {
	for _, id := range a.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
