// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/olegiv/aqardesk/internal/api"
	"github.com/olegiv/aqardesk/internal/form"
	"github.com/olegiv/aqardesk/internal/model"
	"github.com/olegiv/aqardesk/internal/render"
)

// AdminFormData is the template payload of the admin user forms.
type AdminFormData struct {
	Editing bool
	ID      int64
	Action  string
	Back    string
	Roles   []string
	Name    string
	Desc    string
	Role    string
}

// ResetPasswordData is the template payload of the reset-password form.
type ResetPasswordData struct {
	ID     int64
	Name   string
	Action string
	Back   string
}

func (h *Handler) renderAdminForm(w http.ResponseWriter, r *http.Request, title string, data AdminFormData, errs form.Errors) {
	data.Roles = model.ValidRoles
	if err := h.renderer.Render(w, r, "admin/admin_form", render.TemplateData{
		Title:  title,
		Active: "admins",
		Data:   data,
		Errors: errs,
	}); err != nil {
		h.serverError(w, "rendering admin form", err)
	}
}

// NewAdminForm handles GET /admins/new.
func (h *Handler) NewAdminForm(w http.ResponseWriter, r *http.Request) {
	h.renderAdminForm(w, r, "Add Admin User", AdminFormData{
		Action: "/admins/new",
		Back:   "/admins",
		Role:   model.RoleAdmin,
	}, nil)
}

// CreateAdmin handles POST /admins/new.
func (h *Handler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.SetFlash(r, "Invalid form data", flashError)
		http.Redirect(w, r, "/admins/new", http.StatusSeeOther)
		return
	}

	draft := form.AdminCreate{
		Name:        r.PostFormValue("userName"),
		Description: r.PostFormValue("userDescription"),
		Role:        r.PostFormValue("userRole"),
		Password:    r.PostFormValue("userPassword"),
		Confirm:     r.PostFormValue("confirmPassword"),
	}
	data := AdminFormData{
		Action: "/admins/new",
		Back:   "/admins",
		Name:   draft.Name,
		Desc:   draft.Description,
		Role:   draft.Role,
	}

	if errs := draft.Validate(); !errs.Valid() {
		h.renderAdminForm(w, r, "Add Admin User", data, errs)
		return
	}

	res := h.coordinator.Do(r.Context(), "admin user", h.caches.Admins, func(ctx context.Context) error {
		return h.api.CreateAdmin(ctx, api.AdminRequest{
			UserName:        draft.Name,
			UserDescription: draft.Description,
			UserPassword:    draft.Password,
			UserRole:        draft.Role,
		})
	})
	h.finishMutation(w, r, res, "Admin user added.", "/admins", "/admins/new")
}

// EditAdminForm handles GET /admins/{id}/edit.
func (h *Handler) EditAdminForm(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	admins, err := h.caches.Admins.Get(r.Context())
	if err != nil {
		h.fetchFailed(w, r, "admin user", err)
		return
	}
	admin, ok := findByID(admins, func(a model.Admin) int64 { return a.ID }, id)
	if !ok {
		h.renderer.SetFlash(r, "Record not found. The list may have changed.", flashError)
		http.Redirect(w, r, "/admins", http.StatusSeeOther)
		return
	}

	h.renderAdminForm(w, r, "Edit Admin User", AdminFormData{
		Editing: true,
		ID:      id,
		Action:  fmt.Sprintf("/admins/%d/edit", id),
		Back:    "/admins",
		Name:    admin.Name,
		Desc:    admin.Description,
		Role:    admin.Role,
	}, nil)
}

// UpdateAdmin handles POST /admins/{id}/edit. Passwords change only
// through the reset flow.
func (h *Handler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderer.SetFlash(r, "Invalid form data", flashError)
		http.Redirect(w, r, "/admins", http.StatusSeeOther)
		return
	}

	draft := form.AdminUpdate{
		Name:        r.PostFormValue("userName"),
		Description: r.PostFormValue("userDescription"),
		Role:        r.PostFormValue("userRole"),
	}
	action := fmt.Sprintf("/admins/%d/edit", id)
	data := AdminFormData{
		Editing: true,
		ID:      id,
		Action:  action,
		Back:    "/admins",
		Name:    draft.Name,
		Desc:    draft.Description,
		Role:    draft.Role,
	}

	if errs := draft.Validate(); !errs.Valid() {
		h.renderAdminForm(w, r, "Edit Admin User", data, errs)
		return
	}

	res := h.coordinator.Do(r.Context(), "admin user", h.caches.Admins, func(ctx context.Context) error {
		return h.api.UpdateAdmin(ctx, id, api.AdminRequest{
			UserName:        draft.Name,
			UserDescription: draft.Description,
			UserRole:        draft.Role,
		})
	})
	h.finishMutation(w, r, res, "Admin user updated.", "/admins", action)
}

// ResetPasswordForm handles GET /admins/{id}/reset-password.
func (h *Handler) ResetPasswordForm(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	admins, err := h.caches.Admins.Get(r.Context())
	if err != nil {
		h.fetchFailed(w, r, "admin user", err)
		return
	}
	admin, ok := findByID(admins, func(a model.Admin) int64 { return a.ID }, id)
	if !ok {
		h.renderer.SetFlash(r, "Record not found. The list may have changed.", flashError)
		http.Redirect(w, r, "/admins", http.StatusSeeOther)
		return
	}

	if err := h.renderer.Render(w, r, "admin/reset_password", render.TemplateData{
		Title:  "Reset Password",
		Active: "admins",
		Data: ResetPasswordData{
			ID:     id,
			Name:   admin.Name,
			Action: fmt.Sprintf("/admins/%d/reset-password", id),
			Back:   "/admins",
		},
	}); err != nil {
		h.serverError(w, "rendering reset password form", err)
	}
}

// ResetPassword handles POST /admins/{id}/reset-password. No list cache
// is touched: the password is not part of the list payload.
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderer.SetFlash(r, "Invalid form data", flashError)
		http.Redirect(w, r, "/admins", http.StatusSeeOther)
		return
	}

	draft := form.ResetPassword{
		NewPassword: r.PostFormValue("newPassword"),
		Confirm:     r.PostFormValue("confirmPassword"),
	}
	action := fmt.Sprintf("/admins/%d/reset-password", id)

	if errs := draft.Validate(); !errs.Valid() {
		if err := h.renderer.Render(w, r, "admin/reset_password", render.TemplateData{
			Title:  "Reset Password",
			Active: "admins",
			Data: ResetPasswordData{
				ID:     id,
				Action: action,
				Back:   "/admins",
			},
			Errors: errs,
		}); err != nil {
			h.serverError(w, "rendering reset password form", err)
		}
		return
	}

	res := h.coordinator.Do(r.Context(), "admin password", nil, func(ctx context.Context) error {
		return h.api.ResetAdminPassword(ctx, id, api.ResetPasswordRequest{
			NewPassword:     draft.NewPassword,
			ConfirmPassword: draft.Confirm,
		})
	})
	h.finishMutation(w, r, res, "Password reset.", "/admins", action)
}
