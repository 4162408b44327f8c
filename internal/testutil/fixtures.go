package testutil

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talentboard/careerhub/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		FullName:  fullName,
		Email:     email,
		Role:      role,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateProfile creates a test profile for the given user.
func (f *Fixtures) CreateProfile(ctx context.Context, userID primitive.ObjectID, publicProfileID string) models.Profile {
	f.t.Helper()

	now := time.Now().UTC()
	profile := models.Profile{
		ID:              primitive.NewObjectID(),
		UserID:          userID,
		PublicProfileID: publicProfileID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := f.db.Collection("profiles").InsertOne(ctx, profile); err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateInstitute creates a test institute owned by the given users.
func (f *Fixtures) CreateInstitute(ctx context.Context, name, slug string, ownerIDs ...primitive.ObjectID) models.Institute {
	f.t.Helper()

	now := time.Now().UTC()
	inst := models.Institute{
		ID:              primitive.NewObjectID(),
		Name:            name,
		PublicProfileID: slug,
		UserIDs:         ownerIDs,
		City:            "Test City",
		State:           "TS",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := f.db.Collection("institutes").InsertOne(ctx, inst); err != nil {
		f.t.Fatalf("failed to create test institute: %v", err)
	}
	return inst
}

// CreateAdminInstitute creates a denormalized admin record for a slug.
func (f *Fixtures) CreateAdminInstitute(ctx context.Context, slug, name string, published, locked bool, ownerIDs ...primitive.ObjectID) models.AdminInstitute {
	f.t.Helper()

	now := time.Now().UTC()
	rec := models.AdminInstitute{
		ID:                   primitive.NewObjectID(),
		Slug:                 slug,
		Name:                 name,
		UserIDs:              ownerIDs,
		Published:            published,
		PublishLockedByAdmin: locked,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if _, err := f.db.Collection("admin_institutes").InsertOne(ctx, rec); err != nil {
		f.t.Fatalf("failed to create test admin institute: %v", err)
	}
	return rec
}

// CreateIntent creates a pending registration intent for the given user.
func (f *Fixtures) CreateIntent(ctx context.Context, userID primitive.ObjectID, orgName, orgType string) models.RegistrationIntent {
	f.t.Helper()
	return f.CreateIntentAt(ctx, userID, orgName, orgType, time.Now().UTC())
}

// CreateIntentAt creates a pending registration intent with a fixed creation time.
func (f *Fixtures) CreateIntentAt(ctx context.Context, userID primitive.ObjectID, orgName, orgType string, createdAt time.Time) models.RegistrationIntent {
	f.t.Helper()

	intent := models.RegistrationIntent{
		ID:               primitive.NewObjectID(),
		UserID:           userID,
		OrganizationType: orgType,
		OrganizationName: orgName,
		Email:            "apply@" + orgName + ".test",
		ContactName:      "Contact " + orgName,
		ContactPhone:     "555-0100",
		City:             "Springfield",
		State:            "IL",
		Status:           models.IntentStatusPending,
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}

	if _, err := f.db.Collection("registration_intents").InsertOne(ctx, intent); err != nil {
		f.t.Fatalf("failed to create test registration intent: %v", err)
	}
	return intent
}

// CreateNotification creates an unread notification for the given user.
func (f *Fixtures) CreateNotification(ctx context.Context, userID primitive.ObjectID, kind, title string) models.Notification {
	f.t.Helper()

	n := models.Notification{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("notifications").InsertOne(ctx, n); err != nil {
		f.t.Fatalf("failed to create test notification: %v", err)
	}
	return n
}

// CreateAward creates a test award for an institute.
func (f *Fixtures) CreateAward(ctx context.Context, instituteID primitive.ObjectID, title string) models.Award {
	f.t.Helper()

	now := time.Now().UTC()
	a := models.Award{
		ID:          primitive.NewObjectID(),
		InstituteID: instituteID,
		Title:       title,
		Year:        2025,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("awards").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test award: %v", err)
	}
	return a
}
