// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package uikit

import (
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(2, 5, 48, 10, "/units", nil, "Showing 11-20 of 48")

	if !p.HasPrev {
		t.Error("page 2 of 5 should have prev")
	}
	if !p.HasNext {
		t.Error("page 2 of 5 should have next")
	}
	if p.PrevPage != 1 || p.NextPage != 3 {
		t.Errorf("prev/next = %d/%d, want 1/3", p.PrevPage, p.NextPage)
	}
	if got := p.PageURL(3); got != "/units?page=3" {
		t.Errorf("PageURL(3) = %q", got)
	}
}

func TestBuildPaginationPreservesFilters(t *testing.T) {
	params := url.Values{}
	params.Set("q", "nasr city")
	params.Set("page", "4")

	p := BuildPagination(4, 9, 83, 10, "/projects", params, "")

	url3 := p.PageURL(3)
	if url3 != "/projects?q=nasr+city&page=3" {
		t.Errorf("PageURL(3) = %q, want filter preserved and page replaced", url3)
	}
}

func TestBuildPaginationDropsEmptyFilters(t *testing.T) {
	params := url.Values{}
	params.Set("q", "")

	p := BuildPagination(1, 2, 12, 10, "/blogs", params, "")
	if p.QueryString != "" {
		t.Errorf("empty filter should be dropped, got %q", p.QueryString)
	}
}

func TestShouldShow(t *testing.T) {
	tests := []struct {
		name       string
		totalPages int
		want       bool
	}{
		{"empty collection", 0, false},
		{"single page", 1, false},
		{"two pages", 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPagination(1, tt.totalPages, tt.totalPages*10, 10, "/x", nil, "")
			if got := p.ShouldShow(); got != tt.want {
				t.Errorf("ShouldShow() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildPagesEllipsis(t *testing.T) {
	pageURL := func(n int) string { return "" }

	t.Run("few pages no ellipsis", func(t *testing.T) {
		pages := buildPages(2, 4, pageURL)
		if len(pages) != 4 {
			t.Fatalf("got %d pages, want 4", len(pages))
		}
		for _, pg := range pages {
			if pg.IsEllipsis {
				t.Error("unexpected ellipsis with 4 pages")
			}
		}
	})

	t.Run("middle of many pages", func(t *testing.T) {
		pages := buildPages(10, 20, pageURL)
		// 1, ..., 8 9 10 11 12, ..., 20
		if len(pages) != 9 {
			t.Fatalf("got %d entries, want 9", len(pages))
		}
		if pages[0].Number != 1 {
			t.Errorf("first entry = %d, want 1", pages[0].Number)
		}
		if !pages[1].IsEllipsis {
			t.Error("second entry should be ellipsis")
		}
		if !pages[len(pages)-2].IsEllipsis {
			t.Error("second to last entry should be ellipsis")
		}
		if pages[len(pages)-1].Number != 20 {
			t.Errorf("last entry = %d, want 20", pages[len(pages)-1].Number)
		}
	})

	t.Run("current page marked", func(t *testing.T) {
		pages := buildPages(3, 5, pageURL)
		for _, pg := range pages {
			if pg.Number == 3 && !pg.IsCurrent {
				t.Error("page 3 should be current")
			}
			if pg.Number != 3 && pg.IsCurrent {
				t.Errorf("page %d should not be current", pg.Number)
			}
		}
	})
}

func TestParsePageParam(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 1},
		{"page=3", 3},
		{"page=abc", 1},
		{"page=0", 1},
		{"page=-5", 1},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/units?"+tt.query, nil)
		if got := ParsePageParam(r); got != tt.want {
			t.Errorf("ParsePageParam(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestParseIntParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/units?per=25", nil)
	if got := ParseIntParam(r, "per", 10, 1, 100); got != 25 {
		t.Errorf("got %d, want 25", got)
	}
	if got := ParseIntParam(r, "missing", 10, 1, 100); got != 10 {
		t.Errorf("missing param = %d, want default 10", got)
	}

	r = httptest.NewRequest("GET", "/units?per=500", nil)
	if got := ParseIntParam(r, "per", 10, 1, 100); got != 10 {
		t.Errorf("over max = %d, want default 10", got)
	}
}
