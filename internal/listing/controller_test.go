// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package listing

import (
	"fmt"
	"reflect"
	"testing"
)

type category struct {
	ID     int64
	DescAR string
	DescEN string
}

func categoryFilters() map[string]Filter[category] {
	return map[string]Filter[category]{
		"global": Any(
			Literal(func(c category) string { return c.DescAR }),
			Text(func(c category) string { return c.DescEN }),
		),
		"arabic":  Literal(func(c category) string { return c.DescAR }),
		"english": Text(func(c category) string { return c.DescEN }),
	}
}

func makeCategories(n int) []category {
	items := make([]category, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, category{
			ID:     int64(i),
			DescAR: fmt.Sprintf("تصنيف %d", i),
			DescEN: fmt.Sprintf("Category %d", i),
		})
	}
	return items
}

func TestApplyPaging(t *testing.T) {
	items := makeCategories(25)

	tests := []struct {
		name       string
		page       int
		wantLen    int
		wantFirst  int64
		wantLabel  string
		wantPages  int
		wantNumber int
	}{
		{"first page", 1, 10, 1, "Showing 1-10 of 25 entries", 3, 1},
		{"second page", 2, 10, 11, "Showing 11-20 of 25 entries", 3, 2},
		{"last short page", 3, 5, 21, "Showing 21-25 of 25 entries", 3, 3},
		{"past the end clamps", 4, 5, 21, "Showing 21-25 of 25 entries", 3, 3},
		{"way past the end clamps", 100, 5, 21, "Showing 21-25 of 25 entries", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(categoryFilters())
			c.SetPage(tt.page)
			page := c.Apply(items)

			if len(page.Items) != tt.wantLen {
				t.Errorf("len(Items) = %d, want %d", len(page.Items), tt.wantLen)
			}
			if page.Items[0].ID != tt.wantFirst {
				t.Errorf("first item ID = %d, want %d", page.Items[0].ID, tt.wantFirst)
			}
			if got := page.RangeLabel(); got != tt.wantLabel {
				t.Errorf("RangeLabel() = %q, want %q", got, tt.wantLabel)
			}
			if page.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", page.TotalPages, tt.wantPages)
			}
			if page.Number != tt.wantNumber {
				t.Errorf("Number = %d, want %d", page.Number, tt.wantNumber)
			}
		})
	}
}

func TestApplyPageSizeBound(t *testing.T) {
	// Page length never exceeds the page size, and equals it except
	// possibly on the last page.
	for _, n := range []int{0, 1, 9, 10, 11, 25, 30, 101} {
		items := makeCategories(n)
		c := NewController(categoryFilters())
		total := TotalPagesFor(n, DefaultPageSize)
		for p := 1; p <= total; p++ {
			c.SetPage(p)
			page := c.Apply(items)
			if len(page.Items) > DefaultPageSize {
				t.Fatalf("n=%d page=%d: len=%d exceeds page size", n, p, len(page.Items))
			}
			if p < total && len(page.Items) != DefaultPageSize {
				t.Fatalf("n=%d page=%d: len=%d, want full page", n, p, len(page.Items))
			}
		}
	}
}

func TestApplyEmptyCollection(t *testing.T) {
	c := NewController(categoryFilters())
	page := c.Apply(nil)

	if !page.Empty() {
		t.Error("Empty() = false for empty collection")
	}
	if page.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", page.TotalPages)
	}
	if page.TotalCount != 0 {
		t.Errorf("TotalCount = %d, want 0", page.TotalCount)
	}
	if got := page.RangeLabel(); got != "" {
		t.Errorf("RangeLabel() = %q, want empty", got)
	}
	if len(page.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(page.Items))
	}
	if page.HasPrev() || page.HasNext() {
		t.Error("empty page reports prev/next")
	}
}

func TestFilteredIsOrderedSubset(t *testing.T) {
	items := makeCategories(30)
	c := NewController(categoryFilters())
	c.SetFilter("english", "category 1") // matches 1, 10-19

	filtered := c.Filtered(items)
	if len(filtered) != 11 {
		t.Fatalf("len(filtered) = %d, want 11", len(filtered))
	}
	var prev int64
	for _, item := range filtered {
		if item.ID <= prev {
			t.Fatalf("order not preserved: %d after %d", item.ID, prev)
		}
		prev = item.ID
	}
}

func TestEmptyFilterSetIsIdentity(t *testing.T) {
	items := makeCategories(7)
	c := NewController(categoryFilters())

	filtered := c.Filtered(items)
	if !reflect.DeepEqual(filtered, items) {
		t.Error("no active filters should preserve membership and order")
	}
}

func TestTotalPagesMatchesFilteredCount(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
		{30, 3},
	}
	for _, tt := range tests {
		if got := TotalPagesFor(tt.count, DefaultPageSize); got != tt.want {
			t.Errorf("TotalPagesFor(%d, 10) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestFilterChangeResetsPage(t *testing.T) {
	items := makeCategories(25)
	c := NewController(categoryFilters())
	c.SetPage(3)

	c.SetFilter("english", "category")
	page := c.Apply(items)
	if page.Number != 1 {
		t.Errorf("page after filter change = %d, want 1", page.Number)
	}

	// Re-setting the same value must not reset the page.
	c.SetPage(2)
	c.SetFilter("english", "category")
	if got := c.Apply(items).Number; got != 2 {
		t.Errorf("page after unchanged filter = %d, want 2", got)
	}

	// Clearing the filter is a change too.
	c.SetFilter("english", "")
	if got := c.Apply(items).Number; got != 1 {
		t.Errorf("page after clearing filter = %d, want 1", got)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	items := makeCategories(25)
	c := NewController(categoryFilters())
	c.SetFilter("global", "Category 1")
	c.SetPage(2)

	first := c.Apply(items)
	second := c.Apply(items)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different pages")
	}
}

func TestWhitespaceFilterIsActive(t *testing.T) {
	items := []category{
		{ID: 1, DescEN: "Town House"},
		{ID: 2, DescEN: "Penthouse"},
	}
	c := NewController(categoryFilters())
	c.SetFilter("english", " ")

	filtered := c.Filtered(items)
	if len(filtered) != 1 || filtered[0].ID != 1 {
		t.Errorf("whitespace filter matched %d items, want only the one containing a space", len(filtered))
	}
}

func TestGlobalFilterFieldSemantics(t *testing.T) {
	type unit struct {
		DescAR string
		DescEN string
	}
	filters := map[string]Filter[unit]{
		"global": Any(
			Literal(func(u unit) string { return u.DescAR }),
			Text(func(u unit) string { return u.DescEN }),
		),
	}

	items := []unit{
		{DescAR: "شقة فاخرة", DescEN: "Luxury Villa"},
		{DescAR: "فيلا مستقلة", DescEN: "Standalone Apartment"},
		{DescAR: "دوبلكس", DescEN: "Duplex"},
	}

	c := NewController(filters)
	c.SetFilter("global", "villa")
	filtered := c.Filtered(items)

	// Case-insensitive on the English field, but "villa" is not a literal
	// substring of any Arabic description, so only the first unit matches.
	if len(filtered) != 1 || filtered[0].DescEN != "Luxury Villa" {
		t.Fatalf("global \"villa\" matched %d items, want exactly the English match", len(filtered))
	}

	c.SetFilter("global", "فيلا")
	filtered = c.Filtered(items)
	if len(filtered) != 1 || filtered[0].DescEN != "Standalone Apartment" {
		t.Fatalf("global Arabic match failed, got %d items", len(filtered))
	}
}

func TestGlobalAndsWithOtherFilters(t *testing.T) {
	type project struct {
		DescAR string
		DescEN string
		Hot    bool
		DevID  int64
	}
	filters := map[string]Filter[project]{
		"global": Any(
			Literal(func(p project) string { return p.DescAR }),
			Text(func(p project) string { return p.DescEN }),
		),
		"developer": EqualsID(func(p project) int64 { return p.DevID }),
		"hotDeal": func(p project, value string) bool {
			switch value {
			case "hot":
				return p.Hot
			case "normal":
				return !p.Hot
			}
			return true
		},
	}

	items := []project{
		{DescEN: "Palm Towers", Hot: true, DevID: 1},
		{DescEN: "Palm Gardens", Hot: false, DevID: 1},
		{DescEN: "Nile View", Hot: true, DevID: 2},
	}

	c := NewController(filters)
	c.SetFilter("global", "palm")
	c.SetFilter("hotDeal", "hot")
	filtered := c.Filtered(items)
	if len(filtered) != 1 || filtered[0].DescEN != "Palm Towers" {
		t.Fatalf("AND of global+hotDeal matched %d items", len(filtered))
	}
}

func TestHotDealFilterScenario(t *testing.T) {
	type project struct{ Hot bool }
	filters := map[string]Filter[project]{
		"hotDeal": func(p project, value string) bool {
			return (value == "hot" && p.Hot) || (value == "normal" && !p.Hot)
		},
	}
	items := []project{{Hot: false}, {Hot: true}, {Hot: false}}

	c := NewController(filters)
	c.SetFilter("hotDeal", "hot")
	filtered := c.Filtered(items)
	if len(filtered) != 1 || !filtered[0].Hot {
		t.Fatalf("hot-deal filter matched %d items, want the single flagged project", len(filtered))
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, totalPages, want int
	}{
		{1, 5, 1},
		{5, 5, 5},
		{6, 5, 5},
		{0, 5, 1},
		{-3, 5, 1},
		{1, 0, 1},
		{7, 0, 1},
	}
	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.totalPages); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.totalPages, got, tt.want)
		}
	}
}
