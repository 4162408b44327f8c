// internal/app/store/admininstitutes/admininstitutestore.go
package admininstitutestore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/talentboard/careerhub/internal/app/system/normalize"
	"github.com/talentboard/careerhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

// ErrDuplicateSlug is returned when the unique slug index rejects an upsert,
// i.e. a concurrent first write already created the record under this slug.
var ErrDuplicateSlug = errors.New("an admin institute record with this slug already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admin_institutes")}
}

// GetByID loads an admin institute record by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.AdminInstitute, error) {
	var rec models.AdminInstitute
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetBySlug loads an admin institute record by its slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (*models.AdminInstitute, error) {
	var rec models.AdminInstitute
	if err := s.c.FindOne(ctx, bson.M{"slug": normalize.Slug(slug)}).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ExistingSlugs returns the subset of the given slugs that already have an
// admin record, as a set.
func (s *Store) ExistingSlugs(ctx context.Context, slugs []string) (map[string]bool, error) {
	out := map[string]bool{}
	if len(slugs) == 0 {
		return out, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"slug": bson.M{"$in": slugs}},
		options.Find().SetProjection(bson.M{"slug": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var doc struct {
			Slug string `bson:"slug"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out[doc.Slug] = true
	}
	return out, cur.Err()
}

// Seed holds the identity fields written only when the upsert inserts a new
// record. They come from the source institute and never overwrite an existing
// record's values.
type Seed struct {
	Slug    string
	Name    string
	UserIDs []primitive.ObjectID
}

// PublishUpdate is the desired publish state for an upsert. LockedByAdmin is
// nil when the writer may not change the lock (owner self-service writes).
type PublishUpdate struct {
	Published     bool
	LockedByAdmin *bool
	Actor         string // models.PublishActorAdmin or models.PublishActorInstituteAdmin
}

// UpsertPublishState writes the desired publish state keyed by the original
// institute's ObjectID, creating the admin record on first write. After the
// upsert it re-reads the document and, if the stored state does not match the
// request (stale write from a concurrent mutation), issues a raw repair
// update so the caller's view and the database agree.
func (s *Store) UpsertPublishState(ctx context.Context, id primitive.ObjectID, seed Seed, upd PublishUpdate) (models.AdminInstitute, error) {
	now := time.Now().UTC()

	set := bson.M{
		"published":               upd.Published,
		"last_publish_changed_by": upd.Actor,
		"updated_at":              now,
	}
	if upd.Published {
		set["last_published_at"] = now
	} else {
		set["last_unpublished_at"] = now
	}
	if upd.LockedByAdmin != nil {
		set["publish_locked_by_admin"] = *upd.LockedByAdmin
	}

	userIDs := seed.UserIDs
	if userIDs == nil {
		userIDs = []primitive.ObjectID{}
	}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"slug":       normalize.Slug(seed.Slug),
			"name":       seed.Name,
			"user_ids":   userIDs,
			"created_at": now,
		},
	}

	if _, err := s.c.UpdateByID(ctx, id, update, options.Update().SetUpsert(true)); err != nil {
		if wafflemongo.IsDup(err) {
			return models.AdminInstitute{}, ErrDuplicateSlug
		}
		return models.AdminInstitute{}, err
	}

	// Verify the write landed. A concurrent mutation can leave the stored
	// state different from what this caller asked for.
	var rec models.AdminInstitute
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		return models.AdminInstitute{}, err
	}

	if rec.Published != upd.Published {
		zap.L().Warn("publish state verification mismatch, repairing",
			zap.String("institute_id", id.Hex()),
			zap.Bool("wanted", upd.Published),
			zap.Bool("stored", rec.Published))
		repair := bson.M{
			"published":  upd.Published,
			"updated_at": time.Now().UTC(),
		}
		if _, err := s.c.UpdateByID(ctx, id, bson.M{"$set": repair}); err != nil {
			return models.AdminInstitute{}, err
		}
		rec.Published = upd.Published
	}

	return rec, nil
}
