// internal/app/features/institutecontent/locations.go
package institutecontent

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/talentboard/careerhub/internal/app/system/htmlsanitize"
	"github.com/talentboard/careerhub/internal/app/system/httpjson"
	"github.com/talentboard/careerhub/internal/domain/models"
)

type locationRequest struct {
	Label      string `json:"label,omitempty"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	IsPrimary  bool   `json:"isPrimary,omitempty"`
}

func (req locationRequest) problems() map[string]string {
	details := map[string]string{}
	if req.Address == "" {
		details["address"] = "required"
	}
	if req.City == "" {
		details["city"] = "required"
	}
	return details
}

func (req locationRequest) model(instituteID primitive.ObjectID) models.Location {
	return models.Location{
		InstituteID: instituteID,
		Label:       htmlsanitize.StripTags(req.Label),
		Address:     htmlsanitize.StripTags(req.Address),
		City:        htmlsanitize.StripTags(req.City),
		State:       htmlsanitize.StripTags(req.State),
		Country:     htmlsanitize.StripTags(req.Country),
		PostalCode:  htmlsanitize.StripTags(req.PostalCode),
		IsPrimary:   req.IsPrimary,
	}
}

// ServeLocations lists an institute's locations, primary first.
//
// Route: GET /api/institutes/{instituteId}/locations
func (h *Handler) ServeLocations(w http.ResponseWriter, r *http.Request) {
	inst := h.instituteCtx(w, r, false)
	if inst == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), contentTimeout)
	defer cancel()

	list, err := h.Locations.ListByInstitute(ctx, inst.ID)
	if err != nil {
		h.Log.Error("location listing failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	if list == nil {
		list = []models.Location{}
	}
	httpjson.OK(w, list)
}

// HandleCreateLocation adds a location to an institute.
//
// Route: POST /api/institutes/{instituteId}/locations
func (h *Handler) HandleCreateLocation(w http.ResponseWriter, r *http.Request) {
	inst := h.instituteCtx(w, r, true)
	if inst == nil {
		return
	}

	var req locationRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if details := req.problems(); len(details) > 0 {
		httpjson.ErrorDetails(w, http.StatusBadRequest, "validation failed", details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), contentTimeout)
	defer cancel()

	created, err := h.Locations.Create(ctx, req.model(inst.ID))
	if err != nil {
		h.Log.Error("location create failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	httpjson.Created(w, created)
}

// HandleUpdateLocation edits a location.
//
// Route: PUT /api/institutes/{instituteId}/locations/{id}
func (h *Handler) HandleUpdateLocation(w http.ResponseWriter, r *http.Request) {
	inst := h.instituteCtx(w, r, true)
	if inst == nil {
		return
	}
	id, ok := subID(w, r)
	if !ok {
		return
	}

	var req locationRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if details := req.problems(); len(details) > 0 {
		httpjson.ErrorDetails(w, http.StatusBadRequest, "validation failed", details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), contentTimeout)
	defer cancel()

	matched, err := h.Locations.Update(ctx, id, inst.ID, req.model(inst.ID))
	if err != nil {
		h.Log.Error("location update failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	if matched == 0 {
		httpjson.NotFound(w, "location not found")
		return
	}
	httpjson.OKMessage(w, nil, "location updated")
}

// HandleDeleteLocation removes a location.
//
// Route: DELETE /api/institutes/{instituteId}/locations/{id}
func (h *Handler) HandleDeleteLocation(w http.ResponseWriter, r *http.Request) {
	inst := h.instituteCtx(w, r, true)
	if inst == nil {
		return
	}
	id, ok := subID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), contentTimeout)
	defer cancel()

	deleted, err := h.Locations.Delete(ctx, id, inst.ID)
	if err != nil {
		h.Log.Error("location delete failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w, "location not found")
		return
	}
	httpjson.OKMessage(w, nil, "location deleted")
}
