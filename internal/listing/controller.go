// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package listing

// Controller owns the filter values and current page for one entity table
// and turns a raw collection into the visible page. Apply never mutates
// the controller or the input slice, so computing the same page twice
// yields identical output.
//
// Controllers are not safe for concurrent use; each request builds its own.
type Controller[T any] struct {
	pageSize int
	filters  map[string]Filter[T]
	values   map[string]string
	page     int
}

// NewController creates a controller with the given named filters and the
// default page size.
func NewController[T any](filters map[string]Filter[T]) *Controller[T] {
	return &Controller[T]{
		pageSize: DefaultPageSize,
		filters:  filters,
		values:   make(map[string]string),
		page:     1,
	}
}

// SetFilter sets the value of a named filter. An empty value deactivates
// the filter. Changing any value resets the current page to 1 so the user
// is never left on a page past the end of the new result set. Values are
// taken verbatim; a whitespace-only string is an active filter.
func (c *Controller[T]) SetFilter(name, value string) {
	if c.values[name] == value {
		return
	}
	c.values[name] = value
	c.page = 1
}

// FilterValue returns the current value of a named filter.
func (c *Controller[T]) FilterValue(name string) string {
	return c.values[name]
}

// SetPage requests a page. The request is bounded when the page is
// computed; callers render prev/next controls disabled at the edges.
func (c *Controller[T]) SetPage(page int) {
	if page < 1 {
		return
	}
	c.page = page
}

// Filtered returns the items matching every active filter, preserving the
// input order. With no active filters it returns a copy of the input.
func (c *Controller[T]) Filtered(items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if c.matches(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Controller[T]) matches(item T) bool {
	for name, value := range c.values {
		if value == "" {
			continue
		}
		f, ok := c.filters[name]
		if !ok {
			continue
		}
		if !f(item, value) {
			return false
		}
	}
	return true
}

// Apply filters and pages the collection, producing the visible page.
func (c *Controller[T]) Apply(items []T) Page[T] {
	filtered := c.Filtered(items)

	totalCount := len(filtered)
	totalPages := TotalPagesFor(totalCount, c.pageSize)
	page := ClampPage(c.page, totalPages)

	result := Page[T]{
		Number:     page,
		PageSize:   c.pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
	if totalCount == 0 {
		result.Items = []T{}
		return result
	}

	start := (page - 1) * c.pageSize
	end := start + c.pageSize
	if end > totalCount {
		end = totalCount
	}
	result.Items = filtered[start:end]
	result.Start = start + 1
	result.End = end
	return result
}
