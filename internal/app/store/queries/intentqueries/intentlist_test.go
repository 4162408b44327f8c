package intentqueries_test

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talentboard/careerhub/internal/app/store/queries/intentqueries"
	"github.com/talentboard/careerhub/internal/app/system/paging"
	"github.com/talentboard/careerhub/internal/domain/models"
	"github.com/talentboard/careerhub/internal/testutil"
)

// seedListing creates three applicants with intents spaced a day apart and
// returns the database. The middle intent is linked to an institute with an
// admin record.
func seedListing(t *testing.T) (*mongo.Database, models.RegistrationIntent) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	alice := fx.CreateUser(ctx, "Alice Ngo", "alice@example.com", "student")
	fx.CreateProfile(ctx, alice.ID, "alice-ngo")
	fx.CreateIntentAt(ctx, alice.ID, "Aurora Institute", models.IntentTypeInstitute, base)

	bob := fx.CreateUser(ctx, "Bob Marsh", "bob@example.com", "student")
	linked := fx.CreateIntentAt(ctx, bob.ID, "Borealis Labs", models.IntentTypeBusiness, base.AddDate(0, 0, 1))

	inst := fx.CreateInstitute(ctx, "Borealis Labs", "borealis-labs", bob.ID)
	fx.CreateAdminInstitute(ctx, "borealis-labs", "Borealis Labs", true, false, bob.ID)
	// Re-key the admin record to the institute ID the way the publish flow does.
	if _, err := db.Collection("admin_institutes").DeleteMany(ctx, bson.M{"slug": "borealis-labs"}); err != nil {
		t.Fatalf("reseed admin record: %v", err)
	}
	rec := models.AdminInstitute{
		ID: inst.ID, Slug: "borealis-labs", Name: "Borealis Labs",
		UserIDs: []primitive.ObjectID{bob.ID}, Published: true,
		CreatedAt: base, UpdatedAt: base,
	}
	if _, err := db.Collection("admin_institutes").InsertOne(ctx, rec); err != nil {
		t.Fatalf("insert admin record: %v", err)
	}
	if _, err := db.Collection("registration_intents").UpdateByID(ctx, linked.ID,
		bson.M{"$set": bson.M{"institute_id": inst.ID}}); err != nil {
		t.Fatalf("link intent: %v", err)
	}
	linked.InstituteID = &inst.ID

	carol := fx.CreateUser(ctx, "Carol Diaz", "carol@example.com", "student")
	fx.CreateIntentAt(ctx, carol.ID, "Cascade Academy", models.IntentTypeInstitute, base.AddDate(0, 0, 2))

	return db, linked
}

func strategies(db *mongo.Database) map[string]intentqueries.Strategy {
	return map[string]intentqueries.Strategy{
		"pipeline":   intentqueries.NewPipelineStrategy(db),
		"manualjoin": intentqueries.NewManualJoinStrategy(db),
	}
}

func TestList_JoinsApplicantData(t *testing.T) {
	db, linked := seedListing(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for name, s := range strategies(db) {
		t.Run(name, func(t *testing.T) {
			res, err := s.List(ctx, intentqueries.Filter{SortBy: "createdAt"}, paging.Params{Page: 1, Limit: 20})
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if res.Total != 3 {
				t.Fatalf("Total: got %d, want 3", res.Total)
			}
			if len(res.Items) != 3 {
				t.Fatalf("got %d items, want 3", len(res.Items))
			}

			first := res.Items[0]
			if first.User == nil || first.User.FullName != "Alice Ngo" {
				t.Errorf("expected joined user for first item, got %+v", first.User)
			}
			if first.Profile == nil || first.Profile.PublicProfileID != "alice-ngo" {
				t.Errorf("expected joined profile for first item, got %+v", first.Profile)
			}
			if first.HasAdminInstitute {
				t.Error("unlinked intent should not flag an admin record")
			}

			for _, item := range res.Items {
				if item.ID == linked.ID && !item.HasAdminInstitute {
					t.Error("linked intent should flag its admin record")
				}
			}
		})
	}
}

func TestList_SearchIsCaseInsensitiveOr(t *testing.T) {
	db, _ := seedListing(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for name, s := range strategies(db) {
		t.Run(name, func(t *testing.T) {
			// Matches "Borealis Labs" by organization name, case-insensitively.
			res, err := s.List(ctx, intentqueries.Filter{Search: "bOREALIS"}, paging.Params{Page: 1, Limit: 20})
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if res.Total != 1 || len(res.Items) != 1 {
				t.Fatalf("got total=%d items=%d, want 1/1", res.Total, len(res.Items))
			}
			if res.Items[0].OrganizationName != "Borealis Labs" {
				t.Errorf("got %q", res.Items[0].OrganizationName)
			}

			// Matches across a different field (contact name).
			res, err = s.List(ctx, intentqueries.Filter{Search: "contact aurora"}, paging.Params{Page: 1, Limit: 20})
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if res.Total != 1 {
				t.Errorf("contact search: got total=%d, want 1", res.Total)
			}
		})
	}
}

func TestList_FiltersAndDateWindow(t *testing.T) {
	db, _ := seedListing(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 2, 23, 59, 59, 0, time.UTC)

	for name, s := range strategies(db) {
		t.Run(name, func(t *testing.T) {
			res, err := s.List(ctx, intentqueries.Filter{Type: models.IntentTypeInstitute}, paging.Params{Page: 1, Limit: 20})
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if res.Total != 2 {
				t.Errorf("type filter: got total=%d, want 2", res.Total)
			}

			res, err = s.List(ctx, intentqueries.Filter{DateRangeStart: &start, DateRangeEnd: &end}, paging.Params{Page: 1, Limit: 20})
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if res.Total != 1 {
				t.Fatalf("date window: got total=%d, want 1", res.Total)
			}
			if res.Items[0].OrganizationName != "Borealis Labs" {
				t.Errorf("date window: got %q", res.Items[0].OrganizationName)
			}
		})
	}
}

func TestList_SortAndPagination(t *testing.T) {
	db, _ := seedListing(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for name, s := range strategies(db) {
		t.Run(name, func(t *testing.T) {
			res, err := s.List(ctx, intentqueries.Filter{SortBy: "organizationName", SortDesc: true}, paging.Params{Page: 1, Limit: 2})
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if res.Total != 3 {
				t.Errorf("Total: got %d, want 3", res.Total)
			}
			if len(res.Items) != 2 {
				t.Fatalf("got %d items, want 2", len(res.Items))
			}
			if res.Items[0].OrganizationName != "Cascade Academy" {
				t.Errorf("first item: got %q", res.Items[0].OrganizationName)
			}

			res, err = s.List(ctx, intentqueries.Filter{SortBy: "organizationName", SortDesc: true}, paging.Params{Page: 2, Limit: 2})
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(res.Items) != 1 {
				t.Fatalf("page 2: got %d items, want 1", len(res.Items))
			}
			if res.Items[0].OrganizationName != "Aurora Institute" {
				t.Errorf("page 2: got %q", res.Items[0].OrganizationName)
			}
		})
	}
}

func TestList_StrategiesAgree(t *testing.T) {
	db, _ := seedListing(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	filter := intentqueries.Filter{SortBy: "createdAt", SortDesc: true}
	page := paging.Params{Page: 1, Limit: 20}

	a, err := intentqueries.NewPipelineStrategy(db).List(ctx, filter, page)
	if err != nil {
		t.Fatalf("pipeline List failed: %v", err)
	}
	b, err := intentqueries.NewManualJoinStrategy(db).List(ctx, filter, page)
	if err != nil {
		t.Fatalf("manual List failed: %v", err)
	}

	if a.Total != b.Total {
		t.Errorf("totals differ: pipeline=%d manual=%d", a.Total, b.Total)
	}
	if len(a.Items) != len(b.Items) {
		t.Fatalf("item counts differ: pipeline=%d manual=%d", len(a.Items), len(b.Items))
	}
	for i := range a.Items {
		if a.Items[i].ID != b.Items[i].ID {
			t.Errorf("row %d differs: pipeline=%s manual=%s", i, a.Items[i].ID.Hex(), b.Items[i].ID.Hex())
		}
		if a.Items[i].HasAdminInstitute != b.Items[i].HasAdminInstitute {
			t.Errorf("row %d admin flag differs", i)
		}
		if (a.Items[i].User == nil) != (b.Items[i].User == nil) {
			t.Errorf("row %d user join differs", i)
		}
	}
}

func TestValidSortBy(t *testing.T) {
	for _, ok := range []string{"createdAt", "organizationName", "status", "email"} {
		if !intentqueries.ValidSortBy(ok) {
			t.Errorf("ValidSortBy(%q) = false, want true", ok)
		}
	}
	for _, bad := range []string{"", "password_hash", "created_at"} {
		if intentqueries.ValidSortBy(bad) {
			t.Errorf("ValidSortBy(%q) = true, want false", bad)
		}
	}
}
