// internal/app/features/adminintents/review.go
package adminintents

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/talentboard/careerhub/internal/app/system/authz"
	"github.com/talentboard/careerhub/internal/app/system/htmlsanitize"
	"github.com/talentboard/careerhub/internal/app/system/httpjson"
	"github.com/talentboard/careerhub/internal/app/system/requestid"
	"github.com/talentboard/careerhub/internal/domain/models"
)

type reviewRequest struct {
	Status      string `json:"status"`
	AdminNotes  string `json:"adminNotes,omitempty"`
	InstituteID string `json:"instituteId,omitempty"`
}

// HandleReview records an admin decision on a registration intent, notifies
// the applicant, and promotes the applicant's role when an institute intent
// is approved.
//
// Route: PATCH /api/admin/registration-intents/{id}
func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad intent id")
		return
	}

	var req reviewRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !models.ValidIntentStatus(req.Status) {
		httpjson.ErrorDetails(w, http.StatusBadRequest, "validation failed", map[string]string{
			"status": "unknown status",
		})
		return
	}
	var instituteID *primitive.ObjectID
	if req.InstituteID != "" {
		oid, err := primitive.ObjectIDFromHex(req.InstituteID)
		if err != nil {
			httpjson.ErrorDetails(w, http.StatusBadRequest, "validation failed", map[string]string{
				"instituteId": "must be a valid object id",
			})
			return
		}
		instituteID = &oid
	}

	_, _, reviewerID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), reviewTimeout)
	defer cancel()

	notes := htmlsanitize.StripTags(req.AdminNotes)
	intent, err := h.Intents.Review(ctx, id, reviewerID, req.Status, notes)
	if err == mongo.ErrNoDocuments {
		httpjson.NotFound(w, "registration intent not found")
		return
	}
	if err != nil {
		h.Log.Error("intent review failed",
			zap.Error(err),
			zap.String("intent_id", id.Hex()),
			zap.String("request_id", requestid.FromRequest(r)))
		httpjson.Internal(w)
		return
	}

	if instituteID != nil {
		if err := h.Intents.LinkInstitute(ctx, id, *instituteID); err != nil {
			h.Log.Error("intent institute link failed",
				zap.Error(err),
				zap.String("intent_id", id.Hex()))
			httpjson.Internal(w)
			return
		}
		intent.InstituteID = instituteID
	}

	if req.Status == models.IntentStatusApproved && intent.OrganizationType == models.IntentTypeInstitute {
		if err := h.Users.SetRole(ctx, intent.UserID, authz.RoleInstituteAdmin); err != nil {
			h.Log.Error("applicant role promotion failed",
				zap.Error(err),
				zap.String("user_id", intent.UserID.Hex()))
			httpjson.Internal(w)
			return
		}
		h.Audit.RoleChanged(ctx, r, reviewerID, intent.UserID, authz.RoleInstituteAdmin)
	}

	h.Audit.IntentReviewed(ctx, r, reviewerID, intent.UserID, intent.ID, intent.Status)

	if _, err := h.Notifications.Create(ctx, models.Notification{
		UserID: intent.UserID,
		Kind:   models.NotificationIntentReviewed,
		Title:  "Your registration was reviewed",
		Body:   "Status: " + intent.Status,
		RefID:  &intent.ID,
	}); err != nil {
		// The review itself succeeded; a lost notification is not worth a 500.
		h.Log.Warn("review notification failed",
			zap.Error(err),
			zap.String("intent_id", id.Hex()))
	}

	httpjson.OKMessage(w, intent, "registration intent updated")
}
