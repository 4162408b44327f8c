package validators

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/talentboard/careerhub/internal/testutil"
)

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := EnsureAll(ctx, db); err != nil {
		t.Fatalf("first EnsureAll failed: %v", err)
	}
	if err := EnsureAll(ctx, db); err != nil {
		t.Fatalf("second EnsureAll failed: %v", err)
	}
}

func TestValidators_AcceptValidDocuments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	now := time.Now().UTC()
	_, err := db.Collection("users").InsertOne(ctx, bson.M{
		"full_name": "Valid User",
		"email":     "valid@example.com",
		"role":      "student",
		"status":    "active",
	})
	if err != nil {
		t.Errorf("valid user rejected: %v", err)
	}

	_, err = db.Collection("registration_intents").InsertOne(ctx, bson.M{
		"user_id":           primitive.NewObjectID(),
		"organization_type": "institute",
		"organization_name": "Valid Org",
		"email":             "org@example.com",
		"status":            "pending",
		"created_at":        now,
		"updated_at":        now,
	})
	if err != nil {
		t.Errorf("valid intent rejected: %v", err)
	}

	_, err = db.Collection("admin_institutes").InsertOne(ctx, bson.M{
		"slug":      "valid-slug",
		"published": true,
	})
	if err != nil {
		t.Errorf("valid admin institute rejected: %v", err)
	}
}

func TestValidators_RejectInvalidDocuments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	cases := []struct {
		name string
		coll string
		doc  bson.M
	}{
		{
			name: "user with unknown role",
			coll: "users",
			doc: bson.M{
				"full_name": "Bad Role",
				"email":     "bad@example.com",
				"role":      "overlord",
				"status":    "active",
			},
		},
		{
			name: "intent with unknown status",
			coll: "registration_intents",
			doc: bson.M{
				"user_id":           primitive.NewObjectID(),
				"organization_type": "institute",
				"organization_name": "Bad Status Org",
				"email":             "org@example.com",
				"status":            "limbo",
			},
		},
		{
			name: "intent with unknown organization type",
			coll: "registration_intents",
			doc: bson.M{
				"user_id":           primitive.NewObjectID(),
				"organization_type": "guild",
				"organization_name": "Bad Type Org",
				"email":             "org@example.com",
				"status":            "pending",
			},
		},
		{
			name: "admin institute without slug",
			coll: "admin_institutes",
			doc:  bson.M{"published": true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := db.Collection(tc.coll).InsertOne(ctx, tc.doc); err == nil {
				t.Errorf("insert into %s should have been rejected", tc.coll)
			}
		})
	}
}
