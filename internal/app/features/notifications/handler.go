// internal/app/features/notifications/handler.go
package notifications

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	notificationstore "github.com/talentboard/careerhub/internal/app/store/notifications"
	"github.com/talentboard/careerhub/internal/app/system/authz"
	"github.com/talentboard/careerhub/internal/app/system/httpjson"
	"github.com/talentboard/careerhub/internal/app/system/paging"
	"github.com/talentboard/careerhub/internal/app/system/requestid"
	"github.com/talentboard/careerhub/internal/domain/models"
)

const feedTimeout = 10 * time.Second

// Handler serves the signed-in user's notification feed.
type Handler struct {
	DB            *mongo.Database
	Log           *zap.Logger
	Notifications *notificationstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:            db,
		Log:           logger,
		Notifications: notificationstore.New(db),
	}
}

type feedView struct {
	Items  []models.Notification `json:"items"`
	Unread int64                 `json:"unread"`
}

// ServeFeed returns a page of the user's notifications plus the unread count.
//
// Route: GET /api/notifications
func (h *Handler) ServeFeed(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w)
		return
	}
	page := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), feedTimeout)
	defer cancel()

	items, err := h.Notifications.ListByUser(ctx, userID, page.Skip(), int64(page.Limit))
	if err != nil {
		h.Log.Error("notification feed failed",
			zap.Error(err),
			zap.String("request_id", requestid.FromRequest(r)))
		httpjson.Internal(w)
		return
	}
	if items == nil {
		items = []models.Notification{}
	}
	total, err := h.Notifications.CountByUser(ctx, userID)
	if err != nil {
		h.Log.Error("notification count failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	unread, err := h.Notifications.CountUnread(ctx, userID)
	if err != nil {
		h.Log.Error("unread count failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Page(w, feedView{Items: items, Unread: unread}, page.Meta(total))
}

// HandleMarkRead marks one of the user's notifications as read.
//
// Route: POST /api/notifications/{id}/read
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad notification id")
		return
	}
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), feedTimeout)
	defer cancel()

	count, err := h.Notifications.MarkRead(ctx, id, userID)
	if err != nil {
		h.Log.Error("mark read failed",
			zap.Error(err),
			zap.String("request_id", requestid.FromRequest(r)))
		httpjson.Internal(w)
		return
	}
	if count == 0 {
		httpjson.NotFound(w, "notification not found")
		return
	}
	httpjson.OKMessage(w, nil, "notification marked read")
}

// HandleMarkAllRead marks every unread notification as read.
//
// Route: POST /api/notifications/read-all
func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), feedTimeout)
	defer cancel()

	count, err := h.Notifications.MarkAllRead(ctx, userID)
	if err != nil {
		h.Log.Error("mark all read failed",
			zap.Error(err),
			zap.String("request_id", requestid.FromRequest(r)))
		httpjson.Internal(w)
		return
	}
	httpjson.OKMessage(w, map[string]int64{"updated": count}, "notifications marked read")
}
