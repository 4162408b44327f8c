// internal/app/features/institutecontent/highlights.go
package institutecontent

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/talentboard/careerhub/internal/app/system/htmlsanitize"
	"github.com/talentboard/careerhub/internal/app/system/httpjson"
	"github.com/talentboard/careerhub/internal/domain/models"
)

type highlightRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Position    int    `json:"position,omitempty"`
}

// ServeHighlights lists an institute's highlights in display order.
//
// Route: GET /api/institutes/{instituteId}/highlights
func (h *Handler) ServeHighlights(w http.ResponseWriter, r *http.Request) {
	inst := h.instituteCtx(w, r, false)
	if inst == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), contentTimeout)
	defer cancel()

	list, err := h.Highlights.ListByInstitute(ctx, inst.ID)
	if err != nil {
		h.Log.Error("highlight listing failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	if list == nil {
		list = []models.Highlight{}
	}
	httpjson.OK(w, list)
}

// HandleCreateHighlight adds a highlight to an institute.
//
// Route: POST /api/institutes/{instituteId}/highlights
func (h *Handler) HandleCreateHighlight(w http.ResponseWriter, r *http.Request) {
	inst := h.instituteCtx(w, r, true)
	if inst == nil {
		return
	}

	var req highlightRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		httpjson.ErrorDetails(w, http.StatusBadRequest, "validation failed", map[string]string{
			"title": "required",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), contentTimeout)
	defer cancel()

	created, err := h.Highlights.Create(ctx, models.Highlight{
		InstituteID: inst.ID,
		Title:       htmlsanitize.StripTags(req.Title),
		Description: htmlsanitize.Sanitize(req.Description),
		Position:    req.Position,
	})
	if err != nil {
		h.Log.Error("highlight create failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	httpjson.Created(w, created)
}

// HandleUpdateHighlight edits a highlight.
//
// Route: PUT /api/institutes/{instituteId}/highlights/{id}
func (h *Handler) HandleUpdateHighlight(w http.ResponseWriter, r *http.Request) {
	inst := h.instituteCtx(w, r, true)
	if inst == nil {
		return
	}
	id, ok := subID(w, r)
	if !ok {
		return
	}

	var req highlightRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		httpjson.ErrorDetails(w, http.StatusBadRequest, "validation failed", map[string]string{
			"title": "required",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), contentTimeout)
	defer cancel()

	matched, err := h.Highlights.Update(ctx, id, inst.ID, models.Highlight{
		Title:       htmlsanitize.StripTags(req.Title),
		Description: htmlsanitize.Sanitize(req.Description),
		Position:    req.Position,
	})
	if err != nil {
		h.Log.Error("highlight update failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	if matched == 0 {
		httpjson.NotFound(w, "highlight not found")
		return
	}
	httpjson.OKMessage(w, nil, "highlight updated")
}

// HandleDeleteHighlight removes a highlight.
//
// Route: DELETE /api/institutes/{instituteId}/highlights/{id}
func (h *Handler) HandleDeleteHighlight(w http.ResponseWriter, r *http.Request) {
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

	deleted, err := h.Highlights.Delete(ctx, id, inst.ID)
	if err != nil {
		h.Log.Error("highlight delete failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w, "highlight not found")
		return
	}
	httpjson.OKMessage(w, nil, "highlight deleted")
}
