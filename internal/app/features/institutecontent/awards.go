// internal/app/features/institutecontent/awards.go
package institutecontent

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/talentboard/careerhub/internal/app/system/htmlsanitize"
	"github.com/talentboard/careerhub/internal/app/system/httpjson"
	"github.com/talentboard/careerhub/internal/domain/models"
)

type awardRequest struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer,omitempty"`
	Year        int    `json:"year,omitempty"`
	Description string `json:"description,omitempty"`
}

func (req awardRequest) problems() map[string]string {
	details := map[string]string{}
	if req.Title == "" {
		details["title"] = "required"
	}
	if req.Year != 0 && (req.Year < 1900 || req.Year > time.Now().Year()+1) {
		details["year"] = "implausible year"
	}
	return details
}

// ServeAwards lists an institute's awards.
//
// Route: GET /api/institutes/{instituteId}/awards
func (h *Handler) ServeAwards(w http.ResponseWriter, r *http.Request) {
	inst := h.instituteCtx(w, r, false)
	if inst == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), contentTimeout)
	defer cancel()

	list, err := h.Awards.ListByInstitute(ctx, inst.ID)
	if err != nil {
		h.Log.Error("award listing failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	if list == nil {
		list = []models.Award{}
	}
	httpjson.OK(w, list)
}

// HandleCreateAward adds an award to an institute.
//
// Route: POST /api/institutes/{instituteId}/awards
func (h *Handler) HandleCreateAward(w http.ResponseWriter, r *http.Request) {
	inst := h.instituteCtx(w, r, true)
	if inst == nil {
		return
	}

	var req awardRequest
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

	created, err := h.Awards.Create(ctx, models.Award{
		InstituteID: inst.ID,
		Title:       htmlsanitize.StripTags(req.Title),
		Issuer:      htmlsanitize.StripTags(req.Issuer),
		Year:        req.Year,
		Description: htmlsanitize.Sanitize(req.Description),
	})
	if err != nil {
		h.Log.Error("award create failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	httpjson.Created(w, created)
}

// HandleUpdateAward edits an award.
//
// Route: PUT /api/institutes/{instituteId}/awards/{id}
func (h *Handler) HandleUpdateAward(w http.ResponseWriter, r *http.Request) {
	inst := h.instituteCtx(w, r, true)
	if inst == nil {
		return
	}
	id, ok := subID(w, r)
	if !ok {
		return
	}

	var req awardRequest
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

	matched, err := h.Awards.Update(ctx, id, inst.ID, models.Award{
		Title:       htmlsanitize.StripTags(req.Title),
		Issuer:      htmlsanitize.StripTags(req.Issuer),
		Year:        req.Year,
		Description: htmlsanitize.Sanitize(req.Description),
	})
	if err != nil {
		h.Log.Error("award update failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	if matched == 0 {
		httpjson.NotFound(w, "award not found")
		return
	}
	httpjson.OKMessage(w, nil, "award updated")
}

// HandleDeleteAward removes an award.
//
// Route: DELETE /api/institutes/{instituteId}/awards/{id}
func (h *Handler) HandleDeleteAward(w http.ResponseWriter, r *http.Request) {
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

	deleted, err := h.Awards.Delete(ctx, id, inst.ID)
	if err != nil {
		h.Log.Error("award delete failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w, "award not found")
		return
	}
	httpjson.OKMessage(w, nil, "award deleted")
}
