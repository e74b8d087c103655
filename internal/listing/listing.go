// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package listing implements the in-memory list pipeline shared by every
// entity screen: apply the active filters to a fetched collection, then
// page the result. It performs no I/O and holds no references to the
// collections it is given, so the same controller can be replayed against
// a freshly fetched snapshot after every mutation.
package listing

import "fmt"

// DefaultPageSize is the fixed page size used by every entity table.
const DefaultPageSize = 10

// Page is one visible slice of a filtered collection together with the
// numbers the table chrome needs.
type Page[T any] struct {
	Items      []T
	Number     int // current page, 1-indexed; 1 when the collection is empty
	PageSize   int
	TotalCount int // records after filtering
	TotalPages int // 0 when TotalCount is 0
	Start      int // 1-indexed inclusive bound of Items within the filtered set; 0 when empty
	End        int
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// Empty reports whether the filtered collection has no records at all.
// Tables render an empty-state row and omit pagination controls entirely
// in that case.
func (p Page[T]) Empty() bool { return p.TotalCount == 0 }

// RangeLabel returns the "Showing 1-10 of 25 entries" descriptor, or the
// empty string when there is nothing to show.
func (p Page[T]) RangeLabel() string {
	if p.TotalCount == 0 {
		return ""
	}
	return fmt.Sprintf("Showing %d-%d of %d entries", p.Start, p.End, p.TotalCount)
}

// TotalPagesFor calculates the number of pages for a filtered count.
// An empty collection has zero pages, not one.
func TotalPagesFor(totalCount, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// ClampPage bounds a requested page to [1, totalPages]. Out-of-range
// requests are clamped rather than honored; with zero pages the result
// is always 1 so an empty table still renders deterministically.
func ClampPage(page, totalPages int) int {
	if page < 1 || totalPages == 0 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
