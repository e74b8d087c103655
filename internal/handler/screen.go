// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/olegiv/aqardesk/internal/cache"
	"github.com/olegiv/aqardesk/internal/listing"
	"github.com/olegiv/aqardesk/internal/render"
	"github.com/olegiv/aqardesk/internal/uikit"
)

// screen describes one entity table: where it lives, how it filters,
// and how rows are deleted. The list and delete flows are shared across
// all entities; only the descriptor differs.
type screen[T any] struct {
	entity   string // singular, for logs and messages: "category"
	title    string // page heading: "Categories"
	active   string // sidebar nav key
	path     string // list URL: "/categories"
	template string // list template: "admin/categories"

	cache   *cache.ListCache[T]
	filters map[string]listing.Filter[T]

	id func(T) int64

	// label renders the row's display name in flash messages and the
	// delete confirm page.
	label func(T) string

	// dependents counts attached child records for the delete warning;
	// nil when the entity has none.
	dependents func(T) int

	delete func(ctx context.Context, id int64) error
}

// TableData is the template payload of every entity list page.
type TableData[T any] struct {
	Items      []T
	Filters    map[string]string
	RangeLabel string
	Empty      bool
	Pagination uikit.Pagination
}

// ConfirmDeleteData is the template payload of the delete confirm page.
type ConfirmDeleteData struct {
	Entity         string
	Label          string
	ID             int64
	DependentCount int
	CancelURL      string
	ConfirmURL     string
}

// controllerFor builds a list controller from the request's query
// parameters. Every registered filter name doubles as its query key.
func controllerFor[T any](r *http.Request, sc screen[T]) *listing.Controller[T] {
	ctrl := listing.NewController(sc.filters)
	query := r.URL.Query()
	for name := range sc.filters {
		if query.Has(name) {
			ctrl.SetFilter(name, query.Get(name))
		}
	}
	// Page after filters: setting a filter resets the page, the explicit
	// page request wins only when it arrived with the same filters.
	ctrl.SetPage(uikit.ParsePageParam(r))
	return ctrl
}

// listScreen renders the entity table: cached fetch, in-memory filter,
// page slice, chrome.
func listScreen[T any](h *Handler, sc screen[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := sc.cache.Get(r.Context())
		if err != nil {
			h.fetchFailed(w, r, sc.entity, err)
			return
		}

		ctrl := controllerFor(r, sc)
		page := ctrl.Apply(items)

		filterValues := make(map[string]string, len(sc.filters))
		for name := range sc.filters {
			filterValues[name] = ctrl.FilterValue(name)
		}

		data := TableData[T]{
			Items:      page.Items,
			Filters:    filterValues,
			RangeLabel: page.RangeLabel(),
			Empty:      page.Empty(),
			Pagination: uikit.BuildPagination(page.Number, page.TotalPages,
				page.TotalCount, page.PageSize, sc.path, r.URL.Query(), page.RangeLabel()),
		}

		if err := h.renderer.Render(w, r, sc.template, render.TemplateData{
			Title:  sc.title,
			Active: sc.active,
			Data:   data,
		}); err != nil {
			h.serverError(w, "rendering "+sc.entity+" list", err)
		}
	}
}

// findByID locates one row of the cached collection.
func findByID[T any](items []T, id func(T) int64, want int64) (T, bool) {
	for _, item := range items {
		if id(item) == want {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// confirmDeleteScreen renders the two-step delete confirmation. No
// backend request is issued here; dependent records are counted from
// the cached row and shown as a warning, never as a block.
func confirmDeleteScreen[T any](h *Handler, sc screen[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ParseIDParam(r)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		items, err := sc.cache.Get(r.Context())
		if err != nil {
			h.fetchFailed(w, r, sc.entity, err)
			return
		}

		item, ok := findByID(items, sc.id, id)
		if !ok {
			h.renderer.SetFlash(r, "Record not found. The list may have changed.", flashError)
			http.Redirect(w, r, sc.path, http.StatusSeeOther)
			return
		}

		data := ConfirmDeleteData{
			Entity:     sc.entity,
			Label:      sc.label(item),
			ID:         id,
			CancelURL:  sc.path,
			ConfirmURL: fmt.Sprintf("%s/%d/delete", sc.path, id),
		}
		if sc.dependents != nil {
			data.DependentCount = sc.dependents(item)
		}

		if err := h.renderer.Render(w, r, "admin/confirm_delete", render.TemplateData{
			Title:  "Delete " + sc.title,
			Active: sc.active,
			Data:   data,
		}); err != nil {
			h.serverError(w, "rendering delete confirm", err)
		}
	}
}

// deleteScreen performs the confirmed delete through the coordinator.
func deleteScreen[T any](h *Handler, sc screen[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ParseIDParam(r)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		res := h.coordinator.Do(r.Context(), sc.entity, sc.cache, func(ctx context.Context) error {
			return sc.delete(ctx, id)
		})

		h.finishMutation(w, r, res,
			"Deleted successfully.", sc.path, sc.path)
	}
}
