package paging_test

import (
	"net/http/httptest"
	"testing"

	"github.com/talentboard/careerhub/internal/app/system/paging"
)

func TestParse_Defaults(t *testing.T) {
	p := paging.Parse(httptest.NewRequest("GET", "/list", nil))
	if p.Page != 1 || p.Limit != paging.DefaultLimit {
		t.Errorf("expected defaults 1/%d, got %d/%d", paging.DefaultLimit, p.Page, p.Limit)
	}
}

func TestParse_Values(t *testing.T) {
	p := paging.Parse(httptest.NewRequest("GET", "/list?page=3&limit=50", nil))
	if p.Page != 3 || p.Limit != 50 {
		t.Errorf("got %d/%d, want 3/50", p.Page, p.Limit)
	}
	if p.Skip() != 100 {
		t.Errorf("Skip: got %d, want 100", p.Skip())
	}
}

func TestParse_InvalidFallsBack(t *testing.T) {
	cases := []string{
		"/list?page=0&limit=-5",
		"/list?page=abc&limit=xyz",
	}
	for _, target := range cases {
		p := paging.Parse(httptest.NewRequest("GET", target, nil))
		if p.Page != 1 || p.Limit != paging.DefaultLimit {
			t.Errorf("%s: expected defaults, got %d/%d", target, p.Page, p.Limit)
		}
	}
}

func TestParse_CapsLimit(t *testing.T) {
	p := paging.Parse(httptest.NewRequest("GET", "/list?limit=5000", nil))
	if p.Limit != paging.MaxLimit {
		t.Errorf("expected cap %d, got %d", paging.MaxLimit, p.Limit)
	}
}

func TestMeta_Ceiling(t *testing.T) {
	p := paging.Params{Page: 1, Limit: 20}

	m := p.Meta(41)
	if m.TotalPages != 3 {
		t.Errorf("TotalPages: got %d, want 3", m.TotalPages)
	}
	if !m.HasNextPage || m.HasPrevPage {
		t.Errorf("page 1 of 3: hasNext=%v hasPrev=%v", m.HasNextPage, m.HasPrevPage)
	}
}

func TestMeta_PastEnd(t *testing.T) {
	p := paging.Params{Page: 5, Limit: 20}

	m := p.Meta(41)
	if m.HasNextPage {
		t.Error("page past end should have hasNextPage=false")
	}
	if !m.HasPrevPage {
		t.Error("page past end should have hasPrevPage=true")
	}
}

func TestMeta_Empty(t *testing.T) {
	p := paging.Params{Page: 1, Limit: 20}

	m := p.Meta(0)
	if m.TotalPages != 0 || m.HasNextPage || m.HasPrevPage {
		t.Errorf("empty set: %+v", m)
	}
}
