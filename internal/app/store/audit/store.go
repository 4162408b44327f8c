// Package audit persists the security-relevant event trail: sign-in
// outcomes and admin actions against intents, institutes, and roles.
package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Category groups events for configuration and querying.
type Category string

const (
	CategoryAuth  Category = "auth"
	CategoryAdmin Category = "admin"
)

// EventType identifies what happened.
type EventType string

const (
	EventLoginSuccess             EventType = "login_success"
	EventLoginFailedUserNotFound  EventType = "login_failed_user_not_found"
	EventLoginFailedWrongPassword EventType = "login_failed_wrong_password"
	EventLoginFailedUserDisabled  EventType = "login_failed_user_disabled"
	EventLoginFailedRateLimit     EventType = "login_failed_rate_limit"
	EventLogout                   EventType = "logout"

	EventIntentReviewed EventType = "intent_reviewed"
	EventPublishChanged EventType = "publish_status_changed"
	EventRoleChanged    EventType = "role_changed"
)

// Event is one audit trail entry. UserID is the user the event is about;
// ActorID is who performed it (they differ for admin actions).
type Event struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`

	Category  Category  `bson:"category"`
	EventType EventType `bson:"event_type"`

	UserID      *primitive.ObjectID `bson:"user_id,omitempty"`
	ActorID     *primitive.ObjectID `bson:"actor_id,omitempty"`
	InstituteID *primitive.ObjectID `bson:"institute_id,omitempty"`

	IP        string `bson:"ip"`
	UserAgent string `bson:"user_agent,omitempty"`

	Success       bool   `bson:"success"`
	FailureReason string `bson:"failure_reason,omitempty"`

	// Free-form extras that vary by event type (emails, statuses, roles).
	Details map[string]string `bson:"details,omitempty"`
}

// QueryFilter narrows a Query. Zero-valued fields are ignored.
type QueryFilter struct {
	UserID      *primitive.ObjectID
	InstituteID *primitive.ObjectID
	Category    Category
	EventType   EventType
	StartTime   *time.Time
	EndTime     *time.Time
	Limit       int64
	Offset      int64
}

const defaultQueryLimit = 100

// Store reads and writes the audit_events collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("audit_events")}
}

// EnsureIndexes creates the indexes the audit query paths use. Timestamp
// descending serves the unfiltered feed; the compound indexes serve per-user,
// per-institute, and per-type lookups.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "institute_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "event_type", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
	return err
}

// Log stores an event, filling in ID and Timestamp when the caller left
// them zero.
func (s *Store) Log(ctx context.Context, event Event) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, event)
	return err
}

// Query returns matching events, most recent first.
func (s *Store) Query(ctx context.Context, f QueryFilter) ([]Event, error) {
	match := bson.M{}
	if f.UserID != nil {
		match["user_id"] = *f.UserID
	}
	if f.InstituteID != nil {
		match["institute_id"] = *f.InstituteID
	}
	if f.Category != "" {
		match["category"] = f.Category
	}
	if f.EventType != "" {
		match["event_type"] = f.EventType
	}
	if f.StartTime != nil || f.EndTime != nil {
		window := bson.M{}
		if f.StartTime != nil {
			window["$gte"] = *f.StartTime
		}
		if f.EndTime != nil {
			window["$lte"] = *f.EndTime
		}
		match["timestamp"] = window
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultQueryLimit
	}
	cur, err := s.c.Find(ctx, match, options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(f.Offset).
		SetLimit(limit))
	if err != nil {
		return nil, err
	}
	var events []Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
