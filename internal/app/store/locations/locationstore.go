// internal/app/store/locations/locationstore.go
package locationstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talentboard/careerhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("locations")}
}

// Create inserts a new location. Marking it primary demotes any existing
// primary for the institute first.
func (s *Store) Create(ctx context.Context, loc models.Location) (models.Location, error) {
	if loc.IsPrimary {
		if err := s.demotePrimary(ctx, loc.InstituteID); err != nil {
			return models.Location{}, err
		}
	}

	loc.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	loc.CreatedAt = now
	loc.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, loc); err != nil {
		return models.Location{}, err
	}
	return loc, nil
}

func (s *Store) demotePrimary(ctx context.Context, instituteID primitive.ObjectID) error {
	_, err := s.c.UpdateMany(ctx,
		bson.M{"institute_id": instituteID, "is_primary": true},
		bson.M{"$set": bson.M{"is_primary": false, "updated_at": time.Now().UTC()}})
	return err
}

// GetByID loads a location by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Location, error) {
	var loc models.Location
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// ListByInstitute returns an institute's locations, primary first.
func (s *Store) ListByInstitute(ctx context.Context, instituteID primitive.ObjectID) ([]models.Location, error) {
	cur, err := s.c.Find(ctx, bson.M{"institute_id": instituteID},
		options.Find().SetSort(bson.D{{Key: "is_primary", Value: -1}, {Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Location
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update modifies a location's fields, scoped to its institute.
func (s *Store) Update(ctx context.Context, id, instituteID primitive.ObjectID, loc models.Location) (int64, error) {
	if loc.IsPrimary {
		if err := s.demotePrimary(ctx, instituteID); err != nil {
			return 0, err
		}
	}
	set := bson.M{
		"label":       loc.Label,
		"address":     loc.Address,
		"city":        loc.City,
		"state":       loc.State,
		"country":     loc.Country,
		"postal_code": loc.PostalCode,
		"is_primary":  loc.IsPrimary,
		"updated_at":  time.Now().UTC(),
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "institute_id": instituteID},
		bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes a location, scoped to its institute. Returns the number deleted.
func (s *Store) Delete(ctx context.Context, id, instituteID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "institute_id": instituteID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
