// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/olegiv/aqardesk/internal/api"
	"github.com/olegiv/aqardesk/internal/form"
	"github.com/olegiv/aqardesk/internal/render"
)

// bilingualScreen extends screen for the four text-only entities that
// share the Arabic/English description form: categories, locations,
// developers and finishing statuses.
type bilingualScreen[T any] struct {
	screen[T]

	formTemplate string
	seed         func(T) form.Bilingual
	create       func(ctx context.Context, req api.BilingualRequest) error
	update       func(ctx context.Context, id int64, req api.BilingualRequest) error
}

// BilingualFormData is the template payload of the shared description
// form, for both add and edit.
type BilingualFormData struct {
	Entity  string
	Editing bool
	ID      int64
	Action  string
	Back    string
	Draft   form.Bilingual
}

func (sc bilingualScreen[T]) request(draft form.Bilingual) api.BilingualRequest {
	return api.BilingualRequest{DescAR: draft.DescAR, DescEN: draft.DescEN}
}

func (sc bilingualScreen[T]) renderForm(h *Handler, w http.ResponseWriter, r *http.Request, data BilingualFormData, errs form.Errors) {
	title := "Add " + sc.entity
	if data.Editing {
		title = "Edit " + sc.entity
	}
	if err := h.renderer.Render(w, r, sc.formTemplate, render.TemplateData{
		Title:  title,
		Active: sc.active,
		Data:   data,
		Form:   data.Draft,
		Errors: errs,
	}); err != nil {
		h.serverError(w, "rendering "+sc.entity+" form", err)
	}
}

// newBilingualForm renders the empty add form.
func newBilingualForm[T any](h *Handler, sc bilingualScreen[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc.renderForm(h, w, r, BilingualFormData{
			Entity: sc.entity,
			Action: sc.path + "/new",
			Back:   sc.path,
		}, nil)
	}
}

// createBilingual validates the submitted draft and creates the record.
func createBilingual[T any](h *Handler, sc bilingualScreen[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.renderer.SetFlash(r, "Invalid form data", flashError)
			http.Redirect(w, r, sc.path+"/new", http.StatusSeeOther)
			return
		}

		draft := form.Bilingual{
			DescAR: r.PostFormValue("descAR"),
			DescEN: r.PostFormValue("descEN"),
		}
		data := BilingualFormData{
			Entity: sc.entity,
			Action: sc.path + "/new",
			Back:   sc.path,
			Draft:  draft,
		}

		if errs := draft.Validate(); !errs.Valid() {
			sc.renderForm(h, w, r, data, errs)
			return
		}

		res := h.coordinator.Do(r.Context(), sc.entity, sc.cache, func(ctx context.Context) error {
			return sc.create(ctx, sc.request(draft))
		})
		h.finishMutation(w, r, res, "Added successfully.", sc.path, sc.path+"/new")
	}
}

// editBilingualForm renders the edit form seeded from the cached row.
func editBilingualForm[T any](h *Handler, sc bilingualScreen[T]) http.HandlerFunc {
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

		sc.renderForm(h, w, r, BilingualFormData{
			Entity:  sc.entity,
			Editing: true,
			ID:      id,
			Action:  fmt.Sprintf("%s/%d/edit", sc.path, id),
			Back:    sc.path,
			Draft:   sc.seed(item),
		}, nil)
	}
}

// updateBilingual validates the submitted draft and updates the record.
func updateBilingual[T any](h *Handler, sc bilingualScreen[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ParseIDParam(r)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseForm(); err != nil {
			h.renderer.SetFlash(r, "Invalid form data", flashError)
			http.Redirect(w, r, sc.path, http.StatusSeeOther)
			return
		}

		draft := form.Bilingual{
			DescAR: r.PostFormValue("descAR"),
			DescEN: r.PostFormValue("descEN"),
		}
		action := fmt.Sprintf("%s/%d/edit", sc.path, id)
		data := BilingualFormData{
			Entity:  sc.entity,
			Editing: true,
			ID:      id,
			Action:  action,
			Back:    sc.path,
			Draft:   draft,
		}

		if errs := draft.Validate(); !errs.Valid() {
			sc.renderForm(h, w, r, data, errs)
			return
		}

		res := h.coordinator.Do(r.Context(), sc.entity, sc.cache, func(ctx context.Context) error {
			return sc.update(ctx, id, sc.request(draft))
		})
		h.finishMutation(w, r, res, "Updated successfully.", sc.path, action)
	}
}
