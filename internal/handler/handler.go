// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler contains the HTTP handlers of the admin dashboard.
// Every entity screen follows the same shape — fetch the cached
// collection, filter and page it in memory, render — so the table and
// delete flows are generic and the per-entity handlers only contribute
// a screen descriptor and their form logic.
package handler

import (
	"log/slog"

	"github.com/alexedwards/scs/v2"
	"github.com/microcosm-cc/bluemonday"

	"github.com/olegiv/aqardesk/internal/api"
	"github.com/olegiv/aqardesk/internal/cache"
	"github.com/olegiv/aqardesk/internal/imaging"
	"github.com/olegiv/aqardesk/internal/middleware"
	"github.com/olegiv/aqardesk/internal/model"
	"github.com/olegiv/aqardesk/internal/mutation"
	"github.com/olegiv/aqardesk/internal/render"
	"github.com/olegiv/aqardesk/internal/store"
)

// Caches holds one read-through list cache per backend collection.
type Caches struct {
	Admins     *cache.ListCache[model.Admin]
	Categories *cache.ListCache[model.Category]
	Locations  *cache.ListCache[model.Location]
	Developers *cache.ListCache[model.Developer]
	Finishings *cache.ListCache[model.Finishing]
	Projects   *cache.ListCache[model.Project]
	Units      *cache.ListCache[model.Unit]
	Blogs      *cache.ListCache[model.Blog]
}

// Handler carries the shared dependencies of every dashboard route.
type Handler struct {
	api             *api.Client
	renderer        *render.Renderer
	sessionManager  *scs.SessionManager
	coordinator     *mutation.Coordinator
	caches          *Caches
	events          *store.Events
	loginProtection *middleware.LoginProtection
	processor       *imaging.Processor
	sanitizer       *bluemonday.Policy
	logger          *slog.Logger
}

// Config holds the dependencies for New.
type Config struct {
	API             *api.Client
	Renderer        *render.Renderer
	SessionManager  *scs.SessionManager
	Coordinator     *mutation.Coordinator
	Caches          *Caches
	Events          *store.Events
	LoginProtection *middleware.LoginProtection
	Processor       *imaging.Processor
	Logger          *slog.Logger
}

// New creates the dashboard handler set.
func New(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	processor := cfg.Processor
	if processor == nil {
		processor = imaging.NewProcessor(0, 0)
	}

	return &Handler{
		api:             cfg.API,
		renderer:        cfg.Renderer,
		sessionManager:  cfg.SessionManager,
		coordinator:     cfg.Coordinator,
		caches:          cfg.Caches,
		events:          cfg.Events,
		loginProtection: cfg.LoginProtection,
		processor:       processor,
		sanitizer:       bluemonday.UGCPolicy(),
		logger:          logger,
	}
}
