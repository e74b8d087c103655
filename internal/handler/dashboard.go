// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/olegiv/aqardesk/internal/api"
	"github.com/olegiv/aqardesk/internal/model"
	"github.com/olegiv/aqardesk/internal/render"
)

// DashboardData is the template payload of the landing page.
type DashboardData struct {
	Counts       map[string]int
	RecentEvents []model.Event
	CurrentAdmin model.Admin
}

// Dashboard handles GET /: entity counts from the cached lists plus
// the newest audit events. Individual fetch failures degrade to a zero
// count so one broken collection does not blank the whole page.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	counts := make(map[string]int)

	count := func(name string, n int, err error) bool {
		if err != nil {
			h.logger.Error("counting "+name, "error", err)
			counts[name] = 0
			return false
		}
		counts[name] = n
		return true
	}

	admins, err := h.caches.Admins.Get(ctx)
	if !count("admins", len(admins), err) && api.IsUnauthorized(err) {
		h.sessionExpired(w, r)
		return
	}
	categories, err := h.caches.Categories.Get(ctx)
	count("categories", len(categories), err)
	locations, err := h.caches.Locations.Get(ctx)
	count("locations", len(locations), err)
	developers, err := h.caches.Developers.Get(ctx)
	count("developers", len(developers), err)
	finishings, err := h.caches.Finishings.Get(ctx)
	count("finishings", len(finishings), err)
	projects, err := h.caches.Projects.Get(ctx)
	count("projects", len(projects), err)
	units, err := h.caches.Units.Get(ctx)
	count("units", len(units), err)
	blogs, err := h.caches.Blogs.Get(ctx)
	count("blogs", len(blogs), err)

	data := DashboardData{Counts: counts}

	if h.events != nil {
		events, err := h.events.Recent(ctx, 10)
		if err != nil {
			h.logger.Error("loading recent events", "error", err)
		}
		data.RecentEvents = events
	}

	if admin, err := h.api.CurrentAdmin(ctx); err == nil {
		data.CurrentAdmin = admin
	}

	if err := h.renderer.Render(w, r, "admin/dashboard", render.TemplateData{
		Title:  "Dashboard",
		Active: "dashboard",
		Data:   data,
	}); err != nil {
		h.serverError(w, "rendering dashboard", err)
	}
}
