// internal/domain/models/notification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification kinds emitted by the platform.
const (
	NotificationIntentReviewed = "intent_reviewed"
	NotificationPublishChanged = "publish_changed"
	NotificationSystem         = "system"
)

// Notification is a per-user feed entry.
type Notification struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"userId"`
	Kind   string             `bson:"kind" json:"kind"`
	Title  string             `bson:"title" json:"title"`
	Body   string             `bson:"body,omitempty" json:"body,omitempty"`

	// Optional back-reference to the document that triggered the entry.
	RefID *primitive.ObjectID `bson:"ref_id,omitempty" json:"refId,omitempty"`

	Read      bool       `bson:"read" json:"read"`
	ReadAt    *time.Time `bson:"read_at,omitempty" json:"readAt,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
}
