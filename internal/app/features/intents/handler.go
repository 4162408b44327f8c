// internal/app/features/intents/handler.go
package intents

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	intentstore "github.com/talentboard/careerhub/internal/app/store/registrationintents"
	"github.com/talentboard/careerhub/internal/app/system/authz"
	"github.com/talentboard/careerhub/internal/app/system/htmlsanitize"
	"github.com/talentboard/careerhub/internal/app/system/httpjson"
	"github.com/talentboard/careerhub/internal/app/system/requestid"
	"github.com/talentboard/careerhub/internal/domain/models"
)

const submitTimeout = 10 * time.Second

// Handler is the self-service surface for registration intents.
type Handler struct {
	DB      *mongo.Database
	Log     *zap.Logger
	Intents *intentstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Log:     logger,
		Intents: intentstore.New(db),
	}
}

type submitRequest struct {
	OrganizationType string `json:"organizationType"`
	OrganizationName string `json:"organizationName"`
	Email            string `json:"email"`
	ContactName      string `json:"contactName"`
	ContactPhone     string `json:"contactPhone"`
	Address          string `json:"address,omitempty"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
}

func (req submitRequest) problems() map[string]string {
	details := map[string]string{}
	if !models.ValidIntentType(req.OrganizationType) {
		details["organizationType"] = `must be "institute" or "business"`
	}
	if req.OrganizationName == "" {
		details["organizationName"] = "required"
	}
	if req.Email == "" {
		details["email"] = "required"
	}
	if req.ContactName == "" {
		details["contactName"] = "required"
	}
	return details
}

// HandleSubmit files a new registration intent for the signed-in user.
//
// Route: POST /api/registration-intents
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if details := req.problems(); len(details) > 0 {
		httpjson.ErrorDetails(w, http.StatusBadRequest, "validation failed", details)
		return
	}

	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), submitTimeout)
	defer cancel()

	created, err := h.Intents.Create(ctx, models.RegistrationIntent{
		UserID:           userID,
		OrganizationType: req.OrganizationType,
		OrganizationName: htmlsanitize.StripTags(req.OrganizationName),
		Email:            req.Email,
		ContactName:      htmlsanitize.StripTags(req.ContactName),
		ContactPhone:     req.ContactPhone,
		Address:          htmlsanitize.StripTags(req.Address),
		City:             htmlsanitize.StripTags(req.City),
		State:            htmlsanitize.StripTags(req.State),
	})
	if err == intentstore.ErrPendingExists {
		httpjson.ErrorDetails(w, http.StatusConflict, "a pending application already exists", map[string]string{
			"organizationName": req.OrganizationName,
		})
		return
	}
	if err != nil {
		h.Log.Error("intent submission failed",
			zap.Error(err),
			zap.String("request_id", requestid.FromRequest(r)))
		httpjson.Internal(w)
		return
	}

	httpjson.Created(w, created)
}

// ServeMine lists the signed-in user's own intents, newest first.
//
// Route: GET /api/registration-intents
func (h *Handler) ServeMine(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), submitTimeout)
	defer cancel()

	list, err := h.Intents.ListByUser(ctx, userID)
	if err != nil {
		h.Log.Error("intent listing failed",
			zap.Error(err),
			zap.String("request_id", requestid.FromRequest(r)))
		httpjson.Internal(w)
		return
	}
	if list == nil {
		list = []models.RegistrationIntent{}
	}
	httpjson.OK(w, list)
}
