// internal/app/features/publishstatus/update.go
package publishstatus

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	admininstitutestore "github.com/talentboard/careerhub/internal/app/store/admininstitutes"
	"github.com/talentboard/careerhub/internal/app/store/queries/publishresolve"
	"github.com/talentboard/careerhub/internal/app/system/authz"
	"github.com/talentboard/careerhub/internal/app/system/httpjson"
	"github.com/talentboard/careerhub/internal/app/system/requestid"
	"github.com/talentboard/careerhub/internal/domain/models"
)

type updateRequest struct {
	Published *bool `json:"published"`
}

// HandleUpdate sets an institute's publish state.
//
// Admins may always write; their writes set the lock to the opposite of the
// new published value, so an admin unpublish pins the institute down until an
// admin republishes it. Owners may write only their own institutes and may
// not publish while the admin lock is set; owner writes never touch the lock.
//
// Route: PATCH /api/institutes/{instituteId}/publish-status
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "instituteId")
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad institute id")
		return
	}

	var req updateRequest
	if err := httpjson.DecodeBody(r, &req); err != nil || req.Published == nil {
		httpjson.ErrorDetails(w, http.StatusBadRequest, "validation failed", map[string]string{
			"published": "required boolean",
		})
		return
	}
	published := *req.Published

	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w)
		return
	}
	isAdmin := authz.IsAdmin(r)

	ctx, cancel := context.WithTimeout(r.Context(), writeTimeout)
	defer cancel()

	st, err := h.Resolver.Resolve(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.NotFound(w, "institute not found")
		return
	}
	if err != nil {
		h.Log.Error("publish status resolve failed",
			zap.Error(err),
			zap.String("institute_id", idHex),
			zap.String("request_id", requestid.FromRequest(r)))
		httpjson.Internal(w)
		return
	}

	upd := admininstitutestore.PublishUpdate{Published: published}
	switch {
	case isAdmin:
		upd.Actor = models.PublishActorAdmin
		// Admin unpublish locks; admin publish unlocks.
		lock := !published
		upd.LockedByAdmin = &lock
	case st.Owns(userID):
		if st.PublishLockedByAdmin && published {
			httpjson.Forbidden(w, "publishing is locked by an administrator")
			return
		}
		upd.Actor = models.PublishActorInstituteAdmin
	default:
		httpjson.Forbidden(w, "not an administrator of this institute")
		return
	}

	seed := admininstitutestore.Seed{Slug: st.Slug, Name: st.Name, UserIDs: st.UserIDs}
	rec, err := h.Admin.UpsertPublishState(ctx, st.RecordID, seed, upd)
	if err == admininstitutestore.ErrDuplicateSlug {
		httpjson.ErrorDetails(w, http.StatusConflict, "publish record already exists", map[string]string{
			"slug": st.Slug,
		})
		return
	}
	if err != nil {
		h.Log.Error("publish state write failed",
			zap.Error(err),
			zap.String("institute_id", idHex),
			zap.String("request_id", requestid.FromRequest(r)))
		httpjson.Internal(w)
		return
	}

	h.Audit.PublishChanged(ctx, r, userID, rec.ID, published, upd.Actor)
	h.notifyOwners(ctx, rec, userID, published)

	updated := publishresolve.State{
		RecordID:             rec.ID,
		Slug:                 rec.Slug,
		Name:                 rec.Name,
		UserIDs:              rec.UserIDs,
		Published:            rec.Published,
		PublishLockedByAdmin: rec.PublishLockedByAdmin,
		LastPublishChangedBy: rec.LastPublishChangedBy,
		LastPublishedAt:      rec.LastPublishedAt,
		LastUnpublishedAt:    rec.LastUnpublishedAt,
		Source:               publishresolve.SourceAdminRecord,
	}
	httpjson.OKMessage(w, viewOf(idHex, updated), "publish status updated")
}

// notifyOwners tells the institute's other administrators about the change.
func (h *Handler) notifyOwners(ctx context.Context, rec models.AdminInstitute, actorID primitive.ObjectID, published bool) {
	title := "Institute unpublished"
	if published {
		title = "Institute published"
	}
	for _, ownerID := range rec.UserIDs {
		if ownerID == actorID {
			continue
		}
		if _, err := h.Notifications.Create(ctx, models.Notification{
			UserID: ownerID,
			Kind:   models.NotificationPublishChanged,
			Title:  title,
			Body:   rec.Name,
			RefID:  &rec.ID,
		}); err != nil {
			h.Log.Warn("publish notification failed",
				zap.Error(err),
				zap.String("owner_id", ownerID.Hex()))
		}
	}
}
