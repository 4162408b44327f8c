// internal/app/store/highlights/highlightstore.go
package highlightstore

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
	return &Store{c: db.Collection("highlights")}
}

// Create inserts a new highlight. Position defaults to the end of the list.
func (s *Store) Create(ctx context.Context, h models.Highlight) (models.Highlight, error) {
	if h.Position == 0 {
		n, err := s.c.CountDocuments(ctx, bson.M{"institute_id": h.InstituteID})
		if err != nil {
			return models.Highlight{}, err
		}
		h.Position = int(n) + 1
	}

	h.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, h); err != nil {
		return models.Highlight{}, err
	}
	return h, nil
}

// GetByID loads a highlight by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Highlight, error) {
	var h models.Highlight
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&h); err != nil {
		return nil, err
	}
	return &h, nil
}

// ListByInstitute returns an institute's highlights in display order.
func (s *Store) ListByInstitute(ctx context.Context, instituteID primitive.ObjectID) ([]models.Highlight, error) {
	cur, err := s.c.Find(ctx, bson.M{"institute_id": instituteID},
		options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Highlight
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update modifies a highlight's fields, scoped to its institute.
func (s *Store) Update(ctx context.Context, id, instituteID primitive.ObjectID, h models.Highlight) (int64, error) {
	set := bson.M{
		"title":       h.Title,
		"description": h.Description,
		"updated_at":  time.Now().UTC(),
	}
	if h.Position > 0 {
		set["position"] = h.Position
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "institute_id": instituteID},
		bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes a highlight, scoped to its institute. Returns the number deleted.
func (s *Store) Delete(ctx context.Context, id, instituteID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "institute_id": instituteID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
