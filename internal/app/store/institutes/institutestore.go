// internal/app/store/institutes/institutestore.go
package institutestore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talentboard/careerhub/internal/app/system/normalize"
	"github.com/talentboard/careerhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

// ErrDuplicateSlug is returned when an institute with the same public profile
// ID already exists.
var ErrDuplicateSlug = errors.New("an institute with this public profile id already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("institutes")}
}

// Create inserts a new institute.
func (s *Store) Create(ctx context.Context, inst models.Institute) (models.Institute, error) {
	inst.ID = primitive.NewObjectID()
	inst.Name = normalize.Name(inst.Name)
	inst.PublicProfileID = normalize.Slug(inst.PublicProfileID)
	now := time.Now().UTC()
	inst.CreatedAt = now
	inst.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, inst); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Institute{}, ErrDuplicateSlug
		}
		return models.Institute{}, err
	}
	return inst, nil
}

// GetByID loads an institute by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Institute, error) {
	var inst models.Institute
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

// GetBySlug loads an institute by its public profile ID.
func (s *Store) GetBySlug(ctx context.Context, slug string) (*models.Institute, error) {
	var inst models.Institute
	if err := s.c.FindOne(ctx, bson.M{"public_profile_id": normalize.Slug(slug)}).Decode(&inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

// ListByOwner returns institutes administered by the given user.
func (s *Store) ListByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.Institute, error) {
	cur, err := s.c.Find(ctx, bson.M{"user_ids": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Institute
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update modifies an institute's mutable profile fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, inst models.Institute) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if inst.Name != "" {
		set["name"] = normalize.Name(inst.Name)
	}
	if inst.About != "" {
		set["about"] = inst.About
	}
	if inst.City != "" {
		set["city"] = inst.City
	}
	if inst.State != "" {
		set["state"] = inst.State
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// AddOwner adds a user to the institute's administrator list (idempotent).
func (s *Store) AddOwner(ctx context.Context, id, userID primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{
		"$addToSet": bson.M{"user_ids": userID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
	return err
}
