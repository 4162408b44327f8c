// internal/app/features/adminintents/export.go
package adminintents

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/talentboard/careerhub/internal/app/store/queries/intentqueries"
	"github.com/talentboard/careerhub/internal/app/system/csvutil"
	"github.com/talentboard/careerhub/internal/app/system/httpjson"
	"github.com/talentboard/careerhub/internal/app/system/paging"
	"github.com/talentboard/careerhub/internal/app/system/requestid"
)

const (
	exportTimeout = 60 * time.Second

	// exportLimit caps a single export; filters narrow the set below it.
	exportLimit = 10000
)

// ServeExport streams the filtered registration-intent listing as a CSV
// download. It accepts the same filter parameters as the listing but
// ignores pagination.
//
// Route: GET /api/admin/registration-intents/export
func (h *Handler) ServeExport(w http.ResponseWriter, r *http.Request) {
	filter, details := parseListFilter(r)
	if len(details) > 0 {
		httpjson.ErrorDetails(w, http.StatusBadRequest, "validation failed", details)
		return
	}
	page := paging.Params{Page: 1, Limit: exportLimit}

	ctx, cancel := context.WithTimeout(r.Context(), exportTimeout)
	defer cancel()

	res, err := intentqueries.List(ctx, h.DB, filter, page)
	if err != nil {
		h.Log.Error("intent export failed",
			zap.Error(err),
			zap.String("request_id", requestid.FromRequest(r)))
		httpjson.Internal(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		`attachment; filename="registration-intents-`+time.Now().UTC().Format("2006-01-02")+`.csv"`)
	if err := csvutil.WriteIntents(w, res.Items); err != nil {
		h.Log.Error("intent export write failed",
			zap.Error(err),
			zap.String("request_id", requestid.FromRequest(r)))
	}
}
