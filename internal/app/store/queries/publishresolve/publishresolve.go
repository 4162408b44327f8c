// Package publishresolve resolves an institute's publish state across the
// primary institutes collection and the denormalized admin_institutes
// collection.
package publishresolve

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talentboard/careerhub/internal/app/policy/institutepolicy"
	admininstitutestore "github.com/talentboard/careerhub/internal/app/store/admininstitutes"
	institutestore "github.com/talentboard/careerhub/internal/app/store/institutes"
	"github.com/talentboard/careerhub/internal/domain/models"
)

// Source says which record produced the resolved state.
type Source string

const (
	// SourceAdminRecord: an admin_institutes document keyed by the requested ID.
	SourceAdminRecord Source = "admin_record"
	// SourceLegacySlug: the requested ID named an institutes document whose
	// slug led to an admin_institutes record keyed under a different ID.
	SourceLegacySlug Source = "legacy_slug"
	// SourceUnmanaged: no admin record exists yet; the institute is implicitly
	// published and unlocked.
	SourceUnmanaged Source = "unmanaged"
)

// State is the resolved publish state plus everything a subsequent write
// needs: the record ID to upsert against and the seed identity fields.
type State struct {
	RecordID primitive.ObjectID // upsert key for publish writes
	Slug     string
	Name     string
	UserIDs  []primitive.ObjectID

	Published            bool
	PublishLockedByAdmin bool
	LastPublishChangedBy string
	LastPublishedAt      *time.Time
	LastUnpublishedAt    *time.Time

	Source Source
}

// Owns reports whether the given user administers the resolved institute.
func (s State) Owns(userID primitive.ObjectID) bool {
	return institutepolicy.Owns(userID, s.UserIDs)
}

// Resolver answers publish-state lookups against both collections.
type Resolver struct {
	admin      *admininstitutestore.Store
	institutes *institutestore.Store
}

func New(db *mongo.Database) *Resolver {
	return &Resolver{
		admin:      admininstitutestore.New(db),
		institutes: institutestore.New(db),
	}
}

// Resolve looks up the publish state for an institute ID. Resolution order:
//
//  1. admin_institutes by ID — the record is authoritative.
//  2. institutes by ID, then admin_institutes by that institute's slug —
//     covers records created before IDs were aligned.
//  3. institutes by ID with no admin record — implicitly published, unlocked.
//
// Returns mongo.ErrNoDocuments when the ID matches nothing in either
// collection.
func (r *Resolver) Resolve(ctx context.Context, id primitive.ObjectID) (State, error) {
	if rec, err := r.admin.GetByID(ctx, id); err == nil {
		return fromAdminRecord(rec, SourceAdminRecord), nil
	} else if err != mongo.ErrNoDocuments {
		return State{}, err
	}

	inst, err := r.institutes.GetByID(ctx, id)
	if err != nil {
		return State{}, err
	}

	if rec, err := r.admin.GetBySlug(ctx, inst.PublicProfileID); err == nil {
		st := fromAdminRecord(rec, SourceLegacySlug)
		// Identity comes from the institute the caller asked about.
		st.Name = inst.Name
		return st, nil
	} else if err != mongo.ErrNoDocuments {
		return State{}, err
	}

	return State{
		RecordID:  inst.ID,
		Slug:      inst.PublicProfileID,
		Name:      inst.Name,
		UserIDs:   inst.UserIDs,
		Published: true,
		Source:    SourceUnmanaged,
	}, nil
}

func fromAdminRecord(rec *models.AdminInstitute, src Source) State {
	return State{
		RecordID:             rec.ID,
		Slug:                 rec.Slug,
		Name:                 rec.Name,
		UserIDs:              rec.UserIDs,
		Published:            rec.Published,
		PublishLockedByAdmin: rec.PublishLockedByAdmin,
		LastPublishChangedBy: rec.LastPublishChangedBy,
		LastPublishedAt:      rec.LastPublishedAt,
		LastUnpublishedAt:    rec.LastUnpublishedAt,
		Source:               src,
	}
}
