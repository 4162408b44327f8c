package userstore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	userstore "github.com/talentboard/careerhub/internal/app/store/users"
	"github.com/talentboard/careerhub/internal/domain/models"
	"github.com/talentboard/careerhub/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		FullName: "  Jordan Reyes  ",
		Email:    "Jordan@Example.COM",
		Role:     "student",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.FullName != "Jordan Reyes" {
		t.Errorf("FullName: got %q, want trimmed", created.FullName)
	}
	if created.Email != "jordan@example.com" {
		t.Errorf("Email: got %q, want lowercased", created.Email)
	}
	if created.Status != "active" {
		t.Errorf("Status: got %q, want active", created.Status)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_Create_BadRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.User{
		FullName: "No Role",
		Email:    "norole@example.com",
		Role:     "superuser",
	})
	if err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestStore_GetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		FullName: "Casey Lin",
		Email:    "casey@example.com",
		Role:     "institute_admin",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Lookup is case-insensitive.
	found, err := store.GetByEmail(ctx, "CASEY@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("got user %s, want %s", found.ID.Hex(), created.ID.Hex())
	}

	_, err = store.GetByEmail(ctx, "missing@example.com")
	if err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_SetRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		FullName: "Promote Me",
		Email:    "promote@example.com",
		Role:     "student",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.SetRole(ctx, created.ID, "institute_admin"); err != nil {
		t.Fatalf("SetRole failed: %v", err)
	}
	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Role != "institute_admin" {
		t.Errorf("Role: got %q, want institute_admin", found.Role)
	}

	if err := store.SetRole(ctx, created.ID, "emperor"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := userstore.HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !userstore.CheckPassword(hash, "s3cret-pass") {
		t.Error("expected matching password to verify")
	}
	if userstore.CheckPassword(hash, "wrong-pass") {
		t.Error("expected mismatched password to fail")
	}
}
