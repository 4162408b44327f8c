// internal/app/features/institutecontent/handler.go
package institutecontent

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/talentboard/careerhub/internal/app/policy/institutepolicy"
	awardstore "github.com/talentboard/careerhub/internal/app/store/awards"
	highlightstore "github.com/talentboard/careerhub/internal/app/store/highlights"
	institutestore "github.com/talentboard/careerhub/internal/app/store/institutes"
	locationstore "github.com/talentboard/careerhub/internal/app/store/locations"
	"github.com/talentboard/careerhub/internal/app/system/authz"
	"github.com/talentboard/careerhub/internal/app/system/httpjson"
	"github.com/talentboard/careerhub/internal/domain/models"
)

const contentTimeout = 10 * time.Second

// Handler manages the content blocks shown on an institute's public profile:
// awards, highlights, and locations.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	Institutes *institutestore.Store
	Awards     *awardstore.Store
	Highlights *highlightstore.Store
	Locations  *locationstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		Institutes: institutestore.New(db),
		Awards:     awardstore.New(db),
		Highlights: highlightstore.New(db),
		Locations:  locationstore.New(db),
	}
}

// instituteCtx loads the institute named in the URL. Writes additionally
// require the caller to own it (or be a platform admin). Returns nil after
// writing the error response when the request cannot proceed.
func (h *Handler) instituteCtx(w http.ResponseWriter, r *http.Request, write bool) *models.Institute {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "instituteId"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad institute id")
		return nil
	}

	ctx, cancel := context.WithTimeout(r.Context(), contentTimeout)
	defer cancel()

	inst, err := h.Institutes.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.NotFound(w, "institute not found")
		return nil
	}
	if err != nil {
		h.Log.Error("institute load failed", zap.Error(err), zap.String("institute_id", id.Hex()))
		httpjson.Internal(w)
		return nil
	}

	if write {
		if _, _, _, ok := authz.UserCtx(r); !ok {
			httpjson.Unauthorized(w)
			return nil
		}
		if !institutepolicy.CanManage(r, inst.UserIDs) {
			httpjson.Forbidden(w, "not an administrator of this institute")
			return nil
		}
	}
	return inst
}

// subID parses the {id} URL parameter shared by the item routes.
func subID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad id")
		return primitive.NilObjectID, false
	}
	return id, true
}
