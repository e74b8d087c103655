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

// UnitFormData is the template payload of the unit form. The four
// select inputs come from the cached reference lists.
type UnitFormData struct {
	Editing    bool
	ID         int64
	Action     string
	Back       string
	Draft      form.Unit
	ImagePath  string
	Projects   []model.Project
	Categories []model.Category
	Locations  []model.Location
	Finishings []model.Finishing
}

func (h *Handler) renderUnitForm(w http.ResponseWriter, r *http.Request, title string, data UnitFormData, errs form.Errors) {
	ctx := r.Context()

	var err error
	if data.Projects, err = h.caches.Projects.Get(ctx); err != nil {
		if api.IsUnauthorized(err) {
			h.sessionExpired(w, r)
			return
		}
		h.logger.Error("fetching projects for unit form", "error", err)
	}
	if data.Categories, err = h.caches.Categories.Get(ctx); err != nil {
		h.logger.Error("fetching categories for unit form", "error", err)
	}
	if data.Locations, err = h.caches.Locations.Get(ctx); err != nil {
		h.logger.Error("fetching locations for unit form", "error", err)
	}
	if data.Finishings, err = h.caches.Finishings.Get(ctx); err != nil {
		h.logger.Error("fetching finishings for unit form", "error", err)
	}

	if err := h.renderer.Render(w, r, "admin/unit_form", render.TemplateData{
		Title:  title,
		Active: "units",
		Data:   data,
		Errors: errs,
	}); err != nil {
		h.serverError(w, "rendering unit form", err)
	}
}

// NewUnitForm handles GET /units/new.
func (h *Handler) NewUnitForm(w http.ResponseWriter, r *http.Request) {
	h.renderUnitForm(w, r, "Add Unit", UnitFormData{
		Action: "/units/new",
		Back:   "/units",
	}, nil)
}

func parseUnitDraft(r *http.Request, editing bool) (form.Unit, form.Errors) {
	errs := make(form.Errors)
	draft := form.Unit{
		DescAR:        r.PostFormValue("UnitDescriptionAR"),
		DescEN:        r.PostFormValue("UnitDescriptionEN"),
		Bedrooms:      form.ParseInt(errs, "NumberOfBedrooms", r.PostFormValue("NumberOfBedrooms")),
		StartingPrice: form.ParseFloat(errs, "StartingPrice", r.PostFormValue("StartingPrice")),
		DeliveryYears: form.ParseInt(errs, "DeliveryDate", r.PostFormValue("DeliveryDate")),
		ProjectID:     form.ParseInt(errs, "ProjectId", r.PostFormValue("ProjectId")),
		CategoryID:    form.ParseInt(errs, "CategoryId", r.PostFormValue("CategoryId")),
		LocationID:    form.ParseInt(errs, "LocationId", r.PostFormValue("LocationId")),
		FinishingID:   form.ParseInt(errs, "FinishingStatusId", r.PostFormValue("FinishingStatusId")),
		HasImage:      hasFormFile(r, "UnitImage"),
		Editing:       editing,
	}
	errs.Merge(draft.Validate())
	return draft, errs
}

func unitRequest(draft form.Unit, image *api.File) api.UnitRequest {
	return api.UnitRequest{
		DescAR:        draft.DescAR,
		DescEN:        draft.DescEN,
		Bedrooms:      draft.Bedrooms,
		StartingPrice: draft.StartingPrice,
		DeliveryYears: draft.DeliveryYears,
		ProjectID:     int64(draft.ProjectID),
		CategoryID:    int64(draft.CategoryID),
		LocationID:    int64(draft.LocationID),
		FinishingID:   int64(draft.FinishingID),
		Image:         image,
	}
}

// CreateUnit handles POST /units/new.
func (h *Handler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.renderer.SetFlash(r, "Invalid form data", flashError)
		http.Redirect(w, r, "/units/new", http.StatusSeeOther)
		return
	}

	draft, errs := parseUnitDraft(r, false)
	data := UnitFormData{
		Action: "/units/new",
		Back:   "/units",
		Draft:  draft,
	}

	if !errs.Valid() {
		h.renderUnitForm(w, r, "Add Unit", data, errs)
		return
	}

	image, err := h.formImage(r, "UnitImage")
	if err != nil {
		errs.Add("UnitImage", "The file could not be read as an image.")
		h.renderUnitForm(w, r, "Add Unit", data, errs)
		return
	}

	res := h.coordinator.Do(r.Context(), "unit", h.caches.Units, func(ctx context.Context) error {
		return h.api.CreateUnit(ctx, unitRequest(draft, image))
	})
	h.finishMutation(w, r, res, "Unit added.", "/units", "/units/new")
}

// EditUnitForm handles GET /units/{id}/edit.
func (h *Handler) EditUnitForm(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	units, err := h.caches.Units.Get(r.Context())
	if err != nil {
		h.fetchFailed(w, r, "unit", err)
		return
	}
	unit, ok := findByID(units, func(u model.Unit) int64 { return u.ID }, id)
	if !ok {
		h.renderer.SetFlash(r, "Record not found. The list may have changed.", flashError)
		http.Redirect(w, r, "/units", http.StatusSeeOther)
		return
	}

	h.renderUnitForm(w, r, "Edit Unit", UnitFormData{
		Editing:   true,
		ID:        id,
		Action:    fmt.Sprintf("/units/%d/edit", id),
		Back:      "/units",
		ImagePath: unit.ImagePath,
		Draft: form.Unit{
			DescAR:        unit.DescAR,
			DescEN:        unit.DescEN,
			Bedrooms:      unit.Bedrooms,
			StartingPrice: unit.StartingPrice,
			DeliveryYears: unit.DeliveryYears,
			ProjectID:     int(unit.ProjectID),
			CategoryID:    int(unit.CategoryID),
			LocationID:    int(unit.LocationID),
			FinishingID:   int(unit.FinishingID),
			Editing:       true,
		},
	}, nil)
}

// UpdateUnit handles POST /units/{id}/edit, re-sending the stored image
// when no new file was uploaded.
func (h *Handler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.renderer.SetFlash(r, "Invalid form data", flashError)
		http.Redirect(w, r, "/units", http.StatusSeeOther)
		return
	}

	draft, errs := parseUnitDraft(r, true)
	action := fmt.Sprintf("/units/%d/edit", id)
	data := UnitFormData{
		Editing: true,
		ID:      id,
		Action:  action,
		Back:    "/units",
		Draft:   draft,
	}

	if !errs.Valid() {
		h.renderUnitForm(w, r, "Edit Unit", data, errs)
		return
	}

	image, err := h.formImage(r, "UnitImage")
	if err != nil {
		errs.Add("UnitImage", "The file could not be read as an image.")
		h.renderUnitForm(w, r, "Edit Unit", data, errs)
		return
	}
	if image == nil {
		image, err = h.existingImage(r.Context(), h.unitImagePath(r.Context(), id))
		if err != nil {
			h.fetchFailed(w, r, "unit image", err)
			return
		}
	}

	res := h.coordinator.Do(r.Context(), "unit", h.caches.Units, func(ctx context.Context) error {
		return h.api.UpdateUnit(ctx, id, unitRequest(draft, image))
	})
	h.finishMutation(w, r, res, "Unit updated.", "/units", action)
}

func (h *Handler) unitImagePath(ctx context.Context, id int64) string {
	units, err := h.caches.Units.Get(ctx)
	if err != nil {
		return ""
	}
	unit, ok := findByID(units, func(u model.Unit) int64 { return u.ID }, id)
	if !ok {
		return ""
	}
	return unit.ImagePath
}
