// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"

	"github.com/talentboard/careerhub/internal/app/system/httpjson"
)

// DefaultLimit is the page size used when the client does not send one.
const DefaultLimit = 20

// MaxLimit caps the page size a client can request.
const MaxLimit = 100

// Params holds offset pagination inputs parsed from the request.
type Params struct {
	Page  int
	Limit int
}

// Parse extracts `page` and `limit` query parameters with defaults and caps.
// Invalid or out-of-range values fall back to the defaults rather than error;
// the list endpoints treat pagination as a hint, not a contract.
func Parse(r *http.Request) Params {
	p := Params{Page: 1, Limit: DefaultLimit}

	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if s := query.Get(r, "limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Limit = n
			if p.Limit > MaxLimit {
				p.Limit = MaxLimit
			}
		}
	}
	return p
}

// Skip returns the number of documents to skip for the current page.
func (p Params) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// Meta builds the pagination envelope block for a total item count.
// totalPages is ceil(total/limit); a page past the end yields
// hasNextPage=false and (for page>1) hasPrevPage=true.
func (p Params) Meta(total int64) httpjson.Pagination {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return httpjson.Pagination{
		Page:        p.Page,
		Limit:       p.Limit,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1 && total > 0,
	}
}
