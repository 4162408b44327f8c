// internal/app/store/awards/awardstore.go
package awardstore

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
	return &Store{c: db.Collection("awards")}
}

// Create inserts a new award for an institute.
func (s *Store) Create(ctx context.Context, a models.Award) (models.Award, error) {
	a.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Award{}, err
	}
	return a, nil
}

// GetByID loads an award by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Award, error) {
	var a models.Award
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByInstitute returns an institute's awards, most recent year first.
func (s *Store) ListByInstitute(ctx context.Context, instituteID primitive.ObjectID) ([]models.Award, error) {
	cur, err := s.c.Find(ctx, bson.M{"institute_id": instituteID},
		options.Find().SetSort(bson.D{{Key: "year", Value: -1}, {Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Award
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update modifies an award's fields, scoped to its institute.
func (s *Store) Update(ctx context.Context, id, instituteID primitive.ObjectID, a models.Award) (int64, error) {
	set := bson.M{
		"title":       a.Title,
		"issuer":      a.Issuer,
		"year":        a.Year,
		"description": a.Description,
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

// Delete removes an award, scoped to its institute. Returns the number deleted.
func (s *Store) Delete(ctx context.Context, id, instituteID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "institute_id": instituteID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
