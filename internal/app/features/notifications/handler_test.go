package notifications_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/talentboard/careerhub/internal/app/features/notifications"
	"github.com/talentboard/careerhub/internal/domain/models"
	"github.com/talentboard/careerhub/internal/testutil"
)

func TestServeFeed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	h := notifications.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	user := testutil.TestUser{ID: userID.Hex(), Name: "Feed User", Email: "feed@example.com", Role: "student"}
	for i := 0; i < 3; i++ {
		fx.CreateNotification(ctx, userID, models.NotificationSystem, "hello")
	}
	// Another user's entry stays out of the feed.
	fx.CreateNotification(ctx, primitive.NewObjectID(), models.NotificationSystem, "not yours")

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/api/notifications", user)
	rec := httptest.NewRecorder()
	h.ServeFeed(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (body: %s)", rec.Code, rec.Body.String())
	}
	body := testutil.DecodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]interface{})
	items, _ := data["items"].([]interface{})
	if len(items) != 3 {
		t.Errorf("got %d items, want 3", len(items))
	}
	if data["unread"] != float64(3) {
		t.Errorf("unread: got %v, want 3", data["unread"])
	}
	pagination, _ := body["pagination"].(map[string]interface{})
	if pagination["totalItems"] != float64(3) {
		t.Errorf("totalItems: got %v", pagination["totalItems"])
	}
}

func TestHandleMarkRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	h := notifications.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	user := testutil.TestUser{ID: userID.Hex(), Name: "Reader", Email: "r@example.com", Role: "student"}
	n := fx.CreateNotification(ctx, userID, models.NotificationIntentReviewed, "reviewed")

	req := testutil.NewAuthenticatedRequest(http.MethodPost, "/api/notifications/"+n.ID.Hex()+"/read", user)
	req = testutil.WithChiURLParam(req, "id", n.ID.Hex())
	rec := httptest.NewRecorder()
	h.HandleMarkRead(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (body: %s)", rec.Code, rec.Body.String())
	}

	// Marking someone else's notification 404s.
	other := fx.CreateNotification(ctx, primitive.NewObjectID(), models.NotificationSystem, "other")
	req = testutil.NewAuthenticatedRequest(http.MethodPost, "/x", user)
	req = testutil.WithChiURLParam(req, "id", other.ID.Hex())
	rec = httptest.NewRecorder()
	h.HandleMarkRead(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("foreign mark: got %d, want 404", rec.Code)
	}
}

func TestHandleMarkAllRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	h := notifications.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	user := testutil.TestUser{ID: userID.Hex(), Name: "Reader", Email: "r@example.com", Role: "student"}
	for i := 0; i < 2; i++ {
		fx.CreateNotification(ctx, userID, models.NotificationSystem, "unread")
	}

	req := testutil.NewAuthenticatedRequest(http.MethodPost, "/api/notifications/read-all", user)
	rec := httptest.NewRecorder()
	h.HandleMarkAllRead(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	body := testutil.DecodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]interface{})
	if data["updated"] != float64(2) {
		t.Errorf("updated: got %v, want 2", data["updated"])
	}

	unread, err := h.Notifications.CountUnread(ctx, userID)
	if err != nil {
		t.Fatalf("CountUnread failed: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread after read-all: got %d", unread)
	}
}
