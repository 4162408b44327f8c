// internal/app/features/publishstatus/status.go
package publishstatus

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/talentboard/careerhub/internal/app/system/authz"
	"github.com/talentboard/careerhub/internal/app/system/httpjson"
	"github.com/talentboard/careerhub/internal/app/system/requestid"
)

// ServeStatus reads an institute's publish state. Owners and platform admins
// may read it; the read never creates an admin record.
//
// Route: GET /api/institutes/{instituteId}/publish-status
func (h *Handler) ServeStatus(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "instituteId")
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad institute id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
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

	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w)
		return
	}
	if !authz.IsAdmin(r) && !st.Owns(userID) {
		httpjson.Forbidden(w, "not an administrator of this institute")
		return
	}

	httpjson.OK(w, viewOf(idHex, st))
}
