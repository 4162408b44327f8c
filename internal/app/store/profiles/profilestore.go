// internal/app/store/profiles/profilestore.go
package profilestore

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

// ErrDuplicateProfile is returned when a user already has a profile.
var ErrDuplicateProfile = errors.New("a profile already exists for this user")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("profiles")}
}

// Create inserts a new profile for a user. One profile per user.
func (s *Store) Create(ctx context.Context, p models.Profile) (models.Profile, error) {
	p.ID = primitive.NewObjectID()
	p.PublicProfileID = normalize.Slug(p.PublicProfileID)
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Profile{}, ErrDuplicateProfile
		}
		return models.Profile{}, err
	}
	return p, nil
}

// GetByUserID loads the profile owned by a user.
func (s *Store) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	var p models.Profile
	if err := s.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByUserIDs loads profiles for a set of users, keyed by user ID.
func (s *Store) GetByUserIDs(ctx context.Context, userIDs []primitive.ObjectID) (map[primitive.ObjectID]models.Profile, error) {
	out := map[primitive.ObjectID]models.Profile{}
	if len(userIDs) == 0 {
		return out, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"user_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var p models.Profile
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out[p.UserID] = p
	}
	return out, cur.Err()
}

// Update modifies a profile's mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, userID primitive.ObjectID, headline, summary string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": bson.M{
		"headline":   headline,
		"summary":    summary,
		"updated_at": time.Now().UTC(),
	}})
	return err
}
