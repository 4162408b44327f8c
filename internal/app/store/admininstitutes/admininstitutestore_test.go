package admininstitutestore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	admininstitutestore "github.com/talentboard/careerhub/internal/app/store/admininstitutes"
	"github.com/talentboard/careerhub/internal/app/system/indexes"
	"github.com/talentboard/careerhub/internal/domain/models"
	"github.com/talentboard/careerhub/internal/testutil"
)

func boolPtr(b bool) *bool { return &b }

func TestStore_UpsertPublishState_CreatesRecord(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := admininstitutestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	instID := primitive.NewObjectID()
	owner := primitive.NewObjectID()

	rec, err := store.UpsertPublishState(ctx, instID,
		admininstitutestore.Seed{Slug: "Springfield-Tech", Name: "Springfield Tech", UserIDs: []primitive.ObjectID{owner}},
		admininstitutestore.PublishUpdate{Published: false, Actor: models.PublishActorInstituteAdmin},
	)
	if err != nil {
		t.Fatalf("UpsertPublishState failed: %v", err)
	}

	if rec.ID != instID {
		t.Errorf("record keyed by %s, want original institute ID %s", rec.ID.Hex(), instID.Hex())
	}
	if rec.Slug != "springfield-tech" {
		t.Errorf("Slug: got %q, want normalized slug", rec.Slug)
	}
	if rec.Published {
		t.Error("expected published=false")
	}
	if rec.LastPublishChangedBy != models.PublishActorInstituteAdmin {
		t.Errorf("LastPublishChangedBy: got %q", rec.LastPublishChangedBy)
	}
	if rec.LastUnpublishedAt == nil {
		t.Error("expected LastUnpublishedAt to be set")
	}
	if rec.LastPublishedAt != nil {
		t.Error("expected LastPublishedAt to be unset")
	}
	if len(rec.UserIDs) != 1 || rec.UserIDs[0] != owner {
		t.Errorf("UserIDs not seeded: %v", rec.UserIDs)
	}
}

func TestStore_UpsertPublishState_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := admininstitutestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	instID := primitive.NewObjectID()
	seed := admininstitutestore.Seed{Slug: "repeat", Name: "Repeat U"}
	upd := admininstitutestore.PublishUpdate{Published: true, Actor: models.PublishActorAdmin, LockedByAdmin: boolPtr(false)}

	first, err := store.UpsertPublishState(ctx, instID, seed, upd)
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	second, err := store.UpsertPublishState(ctx, instID, seed, upd)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if second.ID != first.ID {
		t.Error("repeated upsert created a new record")
	}
	if !second.Published || second.PublishLockedByAdmin {
		t.Errorf("repeated upsert changed state: published=%v locked=%v", second.Published, second.PublishLockedByAdmin)
	}
	if second.CreatedAt != first.CreatedAt {
		t.Error("repeated upsert rewrote CreatedAt")
	}
}

func TestStore_UpsertPublishState_SetOnInsertDoesNotOverwrite(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := admininstitutestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	instID := primitive.NewObjectID()
	_, err := store.UpsertPublishState(ctx, instID,
		admininstitutestore.Seed{Slug: "original", Name: "Original Name"},
		admininstitutestore.PublishUpdate{Published: true, Actor: models.PublishActorAdmin})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	// A later write with different seed values must not replace the stored identity.
	rec, err := store.UpsertPublishState(ctx, instID,
		admininstitutestore.Seed{Slug: "changed", Name: "Changed Name"},
		admininstitutestore.PublishUpdate{Published: false, Actor: models.PublishActorAdmin})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if rec.Slug != "original" || rec.Name != "Original Name" {
		t.Errorf("seed overwrote identity: slug=%q name=%q", rec.Slug, rec.Name)
	}
	if rec.Published {
		t.Error("expected published=false after second write")
	}
}

func TestStore_UpsertPublishState_DuplicateSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The unique slug index turns concurrent first-writes into duplicate-key errors.
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	store := admininstitutestore.New(db)

	_, err := store.UpsertPublishState(ctx, primitive.NewObjectID(),
		admininstitutestore.Seed{Slug: "contested", Name: "First"},
		admininstitutestore.PublishUpdate{Published: true, Actor: models.PublishActorAdmin})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	_, err = store.UpsertPublishState(ctx, primitive.NewObjectID(),
		admininstitutestore.Seed{Slug: "contested", Name: "Second"},
		admininstitutestore.PublishUpdate{Published: false, Actor: models.PublishActorAdmin})
	if err != admininstitutestore.ErrDuplicateSlug {
		t.Errorf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestStore_GetBySlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := admininstitutestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	instID := primitive.NewObjectID()
	_, err := store.UpsertPublishState(ctx, instID,
		admininstitutestore.Seed{Slug: "find-me", Name: "Find Me"},
		admininstitutestore.PublishUpdate{Published: true, Actor: models.PublishActorAdmin})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	rec, err := store.GetBySlug(ctx, "FIND-ME")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if rec.ID != instID {
		t.Errorf("got %s, want %s", rec.ID.Hex(), instID.Hex())
	}

	if _, err := store.GetBySlug(ctx, "missing"); err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_ExistingSlugs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := admininstitutestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, slug := range []string{"one", "two"} {
		_, err := store.UpsertPublishState(ctx, primitive.NewObjectID(),
			admininstitutestore.Seed{Slug: slug, Name: slug},
			admininstitutestore.PublishUpdate{Published: true, Actor: models.PublishActorAdmin})
		if err != nil {
			t.Fatalf("upsert %q failed: %v", slug, err)
		}
	}

	got, err := store.ExistingSlugs(ctx, []string{"one", "two", "three"})
	if err != nil {
		t.Fatalf("ExistingSlugs failed: %v", err)
	}
	if !got["one"] || !got["two"] || got["three"] {
		t.Errorf("unexpected result: %v", got)
	}
}
