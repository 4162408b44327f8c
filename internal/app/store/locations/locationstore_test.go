package locationstore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	locationstore "github.com/talentboard/careerhub/internal/app/store/locations"
	"github.com/talentboard/careerhub/internal/domain/models"
	"github.com/talentboard/careerhub/internal/testutil"
)

func TestStore_PrimaryIsExclusive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := locationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	instID := primitive.NewObjectID()

	first, err := store.Create(ctx, models.Location{
		InstituteID: instID,
		Address:     "1 Main St",
		City:        "Springfield",
		IsPrimary:   true,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	second, err := store.Create(ctx, models.Location{
		InstituteID: instID,
		Address:     "2 Oak Ave",
		City:        "Springfield",
		IsPrimary:   true,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.ListByInstitute(ctx, instID)
	if err != nil {
		t.Fatalf("ListByInstitute failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d locations, want 2", len(got))
	}
	// Primary sorts first; only the newest primary survives.
	if got[0].ID != second.ID || !got[0].IsPrimary {
		t.Error("expected the second location to be the primary")
	}
	if got[1].ID != first.ID || got[1].IsPrimary {
		t.Error("expected the first location to be demoted")
	}
}

func TestStore_UpdateScopedToInstitute(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := locationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	instID := primitive.NewObjectID()
	loc, err := store.Create(ctx, models.Location{
		InstituteID: instID,
		Address:     "1 Main St",
		City:        "Springfield",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Wrong institute cannot touch it.
	matched, err := store.Update(ctx, loc.ID, primitive.NewObjectID(), models.Location{Address: "Hijacked"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if matched != 0 {
		t.Error("update matched a location belonging to another institute")
	}

	matched, err = store.Update(ctx, loc.ID, instID, models.Location{Address: "3 Elm Rd", City: "Springfield"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if matched != 1 {
		t.Errorf("matched %d, want 1", matched)
	}

	found, err := store.GetByID(ctx, loc.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Address != "3 Elm Rd" {
		t.Errorf("Address: got %q", found.Address)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := locationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	instID := primitive.NewObjectID()
	loc, err := store.Create(ctx, models.Location{
		InstituteID: instID,
		Address:     "1 Main St",
		City:        "Springfield",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	deleted, err := store.Delete(ctx, loc.ID, instID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted %d, want 1", deleted)
	}

	deleted, err = store.Delete(ctx, loc.ID, instID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if deleted != 0 {
		t.Error("second delete should remove nothing")
	}
}
