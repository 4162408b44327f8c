// internal/app/features/adminintents/list.go
package adminintents

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"

	"github.com/talentboard/careerhub/internal/app/store/queries/intentqueries"
	"github.com/talentboard/careerhub/internal/app/system/httpjson"
	"github.com/talentboard/careerhub/internal/app/system/paging"
	"github.com/talentboard/careerhub/internal/app/system/requestid"
	"github.com/talentboard/careerhub/internal/domain/models"
)

// ServeList returns the paginated, filtered registration-intent listing with
// applicant account and profile joins.
//
// Route: GET /api/admin/registration-intents
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	filter, details := parseListFilter(r)
	if len(details) > 0 {
		httpjson.ErrorDetails(w, http.StatusBadRequest, "validation failed", details)
		return
	}
	page := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()

	res, err := intentqueries.List(ctx, h.DB, filter, page)
	if err != nil {
		h.Log.Error("intent listing failed",
			zap.Error(err),
			zap.String("request_id", requestid.FromRequest(r)))
		httpjson.Internal(w)
		return
	}

	items := res.Items
	if items == nil {
		items = []intentqueries.Item{}
	}
	httpjson.Page(w, items, page.Meta(res.Total))
}

// parseListFilter validates the listing's query parameters. It returns the
// filter plus a field→problem map; an empty map means the filter is usable.
func parseListFilter(r *http.Request) (intentqueries.Filter, map[string]string) {
	details := map[string]string{}
	var f intentqueries.Filter

	if s := query.Get(r, "status"); s != "" {
		if !models.ValidIntentStatus(s) {
			details["status"] = "unknown status"
		}
		f.Status = s
	}
	if s := query.Get(r, "type"); s != "" {
		if !models.ValidIntentType(s) {
			details["type"] = `must be "institute" or "business"`
		}
		f.Type = s
	}
	f.Search = query.Get(r, "search")

	if s := query.Get(r, "dateRangeStart"); s != "" {
		ts, err := parseDate(s, false)
		if err != nil {
			details["dateRangeStart"] = "must be RFC 3339 or YYYY-MM-DD"
		} else {
			f.DateRangeStart = &ts
		}
	}
	if s := query.Get(r, "dateRangeEnd"); s != "" {
		ts, err := parseDate(s, true)
		if err != nil {
			details["dateRangeEnd"] = "must be RFC 3339 or YYYY-MM-DD"
		} else {
			f.DateRangeEnd = &ts
		}
	}

	f.SortBy = "createdAt"
	if s := query.Get(r, "sortBy"); s != "" {
		if !intentqueries.ValidSortBy(s) {
			details["sortBy"] = "unknown sort field"
		}
		f.SortBy = s
	}
	switch query.Get(r, "sortOrder") {
	case "", "desc":
		f.SortDesc = true
	case "asc":
		f.SortDesc = false
	default:
		details["sortOrder"] = `must be "asc" or "desc"`
	}

	return f, details
}

// parseDate accepts RFC 3339 timestamps or bare dates. A bare end date is
// widened to the end of that day so the range stays inclusive.
func parseDate(s string, endOfDay bool) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC(), nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		return d.Add(24*time.Hour - time.Nanosecond).UTC(), nil
	}
	return d.UTC(), nil
}
