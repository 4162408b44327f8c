package notificationstore_test

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	notificationstore "github.com/talentboard/careerhub/internal/app/store/notifications"
	"github.com/talentboard/careerhub/internal/domain/models"
	"github.com/talentboard/careerhub/internal/testutil"
)

func TestStore_CreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := notificationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	for i := 0; i < 3; i++ {
		_, err := store.Create(ctx, models.Notification{
			UserID: userID,
			Kind:   models.NotificationSystem,
			Title:  "hello",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	got, err := store.ListByUser(ctx, userID, 0, 10)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d notifications, want 3", len(got))
	}
	for _, n := range got {
		if n.Read {
			t.Error("new notification should be unread")
		}
	}

	// Pagination window.
	page, err := store.ListByUser(ctx, userID, 2, 10)
	if err != nil {
		t.Fatalf("ListByUser page failed: %v", err)
	}
	if len(page) != 1 {
		t.Errorf("got %d on second page, want 1", len(page))
	}
}

func TestStore_MarkRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := notificationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	n, err := store.Create(ctx, models.Notification{
		UserID: userID,
		Kind:   models.NotificationIntentReviewed,
		Title:  "reviewed",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Wrong user cannot mark it.
	count, err := store.MarkRead(ctx, n.ID, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if count != 0 {
		t.Error("foreign user marked another user's notification")
	}

	count, err = store.MarkRead(ctx, n.ID, userID)
	if err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d updated, want 1", count)
	}

	// Already read: no-op.
	count, err = store.MarkRead(ctx, n.ID, userID)
	if err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if count != 0 {
		t.Error("second mark should be a no-op")
	}
}

func TestStore_MarkAllReadAndUnreadCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := notificationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	for i := 0; i < 4; i++ {
		if _, err := store.Create(ctx, models.Notification{
			UserID: userID,
			Kind:   models.NotificationPublishChanged,
			Title:  "published",
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	unread, err := store.CountUnread(ctx, userID)
	if err != nil {
		t.Fatalf("CountUnread failed: %v", err)
	}
	if unread != 4 {
		t.Errorf("unread: got %d, want 4", unread)
	}

	count, err := store.MarkAllRead(ctx, userID)
	if err != nil {
		t.Fatalf("MarkAllRead failed: %v", err)
	}
	if count != 4 {
		t.Errorf("marked %d, want 4", count)
	}

	unread, err = store.CountUnread(ctx, userID)
	if err != nil {
		t.Fatalf("CountUnread failed: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread after mark-all: got %d, want 0", unread)
	}
}

func TestStore_PurgeRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := notificationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	old, err := store.Create(ctx, models.Notification{
		UserID: userID, Kind: models.NotificationSystem, Title: "old news",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Notification{
		UserID: userID, Kind: models.NotificationSystem, Title: "still unread",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.MarkRead(ctx, old.ID, userID); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}

	// Cutoff in the future catches the just-read notification; unread ones
	// are never purged.
	count, err := store.PurgeRead(ctx, time.Now().UTC().Add(time.Hour))
	if err != nil {
		t.Fatalf("PurgeRead failed: %v", err)
	}
	if count != 1 {
		t.Errorf("purged %d, want 1", count)
	}

	remaining, err := store.CountByUser(ctx, userID)
	if err != nil {
		t.Fatalf("CountByUser failed: %v", err)
	}
	if remaining != 1 {
		t.Errorf("remaining: got %d, want 1", remaining)
	}
}
