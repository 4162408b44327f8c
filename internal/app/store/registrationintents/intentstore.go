// internal/app/store/registrationintents/intentstore.go
package intentstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talentboard/careerhub/internal/app/system/normalize"
	"github.com/talentboard/careerhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var (
	// ErrPendingExists is returned when the user already has a pending intent
	// for the same organization name.
	ErrPendingExists = errors.New("a pending registration intent for this organization already exists")
	errBadStatus     = errors.New("unknown registration intent status")
	errBadType       = errors.New(`organization type must be "institute" or "business"`)
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("registration_intents")}
}

// Create inserts a new pending intent after normalizing contact fields.
// A user may hold at most one pending intent per organization name.
func (s *Store) Create(ctx context.Context, intent models.RegistrationIntent) (models.RegistrationIntent, error) {
	if !models.ValidIntentType(intent.OrganizationType) {
		return models.RegistrationIntent{}, errBadType
	}

	intent.OrganizationName = normalize.Name(intent.OrganizationName)
	intent.Email = normalize.Email(intent.Email)
	intent.ContactName = normalize.Name(intent.ContactName)
	intent.ContactPhone = normalize.Phone(intent.ContactPhone)

	dup, err := s.hasPending(ctx, intent.UserID, intent.OrganizationName)
	if err != nil {
		return models.RegistrationIntent{}, err
	}
	if dup {
		return models.RegistrationIntent{}, ErrPendingExists
	}

	intent.ID = primitive.NewObjectID()
	intent.Status = models.IntentStatusPending
	now := time.Now().UTC()
	intent.CreatedAt = now
	intent.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, intent); err != nil {
		return models.RegistrationIntent{}, err
	}
	return intent, nil
}

func (s *Store) hasPending(ctx context.Context, userID primitive.ObjectID, orgName string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"user_id":           userID,
		"organization_name": orgName,
		"status":            models.IntentStatusPending,
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetByID loads an intent by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RegistrationIntent, error) {
	var intent models.RegistrationIntent
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// ListByUser returns a user's own intents, newest first.
func (s *Store) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.RegistrationIntent, error) {
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.RegistrationIntent
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Review records an admin decision on an intent and returns the updated
// document. Returns mongo.ErrNoDocuments if the intent does not exist.
func (s *Store) Review(ctx context.Context, id, reviewerID primitive.ObjectID, status, adminNotes string) (*models.RegistrationIntent, error) {
	if !models.ValidIntentStatus(status) {
		return nil, errBadStatus
	}

	now := time.Now().UTC()
	set := bson.M{
		"status":      status,
		"reviewed_by": reviewerID,
		"reviewed_at": now,
		"updated_at":  now,
	}
	if adminNotes != "" {
		set["admin_notes"] = adminNotes
	}

	var intent models.RegistrationIntent
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&intent)
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

// LinkInstitute records the institute created from an approved intent.
func (s *Store) LinkInstitute(ctx context.Context, id, instituteID primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"institute_id": instituteID,
		"updated_at":   time.Now().UTC(),
	}})
	return err
}

// Find returns intents matching the given filter with optional find options.
// The caller builds the filter and options (pagination, sorting).
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.RegistrationIntent, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.RegistrationIntent
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of intents matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
