// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/aqardesk/internal/middleware"
)

// Routes builds the dashboard router. Session loading, CSRF and the
// security headers wrap this router in main.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(middleware.RedirectIfAuthenticated(h.sessionManager))
		r.Get("/login", h.LoginForm)
	})

	r.Group(func(r chi.Router) {
		if h.loginProtection != nil {
			r.Use(h.loginProtection.Middleware())
		}
		r.Post("/login", h.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.sessionManager))

		r.Get("/", h.Dashboard)
		r.Post("/logout", h.Logout)
		r.Get("/events", h.EventLog)

		routeBilingual(r, h, h.categoryScreen())
		routeBilingual(r, h, h.locationScreen())
		routeBilingual(r, h, h.developerScreen())
		routeBilingual(r, h, h.finishingScreen())

		routeScreen(r, h, h.adminScreen())
		r.Get("/admins/new", h.NewAdminForm)
		r.Post("/admins/new", h.CreateAdmin)
		r.Get("/admins/{id}/edit", h.EditAdminForm)
		r.Post("/admins/{id}/edit", h.UpdateAdmin)
		r.Get("/admins/{id}/reset-password", h.ResetPasswordForm)
		r.Post("/admins/{id}/reset-password", h.ResetPassword)

		routeScreen(r, h, h.projectScreen())
		r.Get("/projects/new", h.NewProjectForm)
		r.Post("/projects/new", h.CreateProject)
		r.Get("/projects/{id}/edit", h.EditProjectForm)
		r.Post("/projects/{id}/edit", h.UpdateProject)

		routeScreen(r, h, h.unitScreen())
		r.Get("/units/new", h.NewUnitForm)
		r.Post("/units/new", h.CreateUnit)
		r.Get("/units/{id}/edit", h.EditUnitForm)
		r.Post("/units/{id}/edit", h.UpdateUnit)

		routeScreen(r, h, h.blogScreen())
		r.Get("/blogs/new", h.NewBlogForm)
		r.Post("/blogs/new", h.CreateBlog)
		r.Get("/blogs/{id}", h.PreviewBlog)
		r.Get("/blogs/{id}/edit", h.EditBlogForm)
		r.Post("/blogs/{id}/edit", h.UpdateBlog)
	})

	return r
}

// routeScreen registers the shared list and delete routes of a screen.
func routeScreen[T any](r chi.Router, h *Handler, sc screen[T]) {
	r.Get(sc.path, listScreen(h, sc))
	r.Get(sc.path+"/{id}/delete", confirmDeleteScreen(h, sc))
	r.Post(sc.path+"/{id}/delete", deleteScreen(h, sc))
}

// routeBilingual registers a full CRUD surface for a shared-form entity.
func routeBilingual[T any](r chi.Router, h *Handler, sc bilingualScreen[T]) {
	routeScreen(r, h, sc.screen)
	r.Get(sc.path+"/new", newBilingualForm(h, sc))
	r.Post(sc.path+"/new", createBilingual(h, sc))
	r.Get(sc.path+"/{id}/edit", editBilingualForm(h, sc))
	r.Post(sc.path+"/{id}/edit", updateBilingual(h, sc))
}
