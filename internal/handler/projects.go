// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"fmt"
	"net/http"
	"path"

	"github.com/google/uuid"

	"github.com/olegiv/aqardesk/internal/api"
	"github.com/olegiv/aqardesk/internal/form"
	"github.com/olegiv/aqardesk/internal/model"
	"github.com/olegiv/aqardesk/internal/render"
)

// ProjectFormData is the template payload of the project form.
type ProjectFormData struct {
	Editing    bool
	ID         int64
	Action     string
	Back       string
	Draft      form.Project
	ImagePath  string // stored image of the edited row, for preview
	Locations  []model.Location
	Developers []model.Developer
}

// renderProjectForm loads the reference lists for the select inputs and
// renders the form. Reference fetch failures degrade to empty selects;
// the 401 case still ends the session.
func (h *Handler) renderProjectForm(w http.ResponseWriter, r *http.Request, title string, data ProjectFormData, errs form.Errors) {
	locations, err := h.caches.Locations.Get(r.Context())
	if err != nil {
		if api.IsUnauthorized(err) {
			h.sessionExpired(w, r)
			return
		}
		h.logger.Error("fetching locations for project form", "error", err)
	}
	developers, err := h.caches.Developers.Get(r.Context())
	if err != nil {
		if api.IsUnauthorized(err) {
			h.sessionExpired(w, r)
			return
		}
		h.logger.Error("fetching developers for project form", "error", err)
	}

	data.Locations = locations
	data.Developers = developers

	if err := h.renderer.Render(w, r, "admin/project_form", render.TemplateData{
		Title:  title,
		Active: "projects",
		Data:   data,
		Errors: errs,
	}); err != nil {
		h.serverError(w, "rendering project form", err)
	}
}

// NewProjectForm handles GET /projects/new.
func (h *Handler) NewProjectForm(w http.ResponseWriter, r *http.Request) {
	h.renderProjectForm(w, r, "Add Project", ProjectFormData{
		Action: "/projects/new",
		Back:   "/projects",
	}, nil)
}

// parseProjectDraft reads the multipart project form into a draft.
func parseProjectDraft(r *http.Request, editing bool) (form.Project, form.Errors) {
	errs := make(form.Errors)

	// Down payment is optional; a blank input means zero.
	downPayment := 0.0
	if raw := r.PostFormValue("DownPayment"); raw != "" {
		downPayment = form.ParseFloat(errs, "DownPayment", raw)
	}

	draft := form.Project{
		DescAR:            r.PostFormValue("ProjectDescAr"),
		DescEN:            r.PostFormValue("ProjectDescEn"),
		InstallmentPeriod: form.ParseFloat(errs, "InstallmentPeriod", r.PostFormValue("InstallmentPeriod")),
		DownPayment:       downPayment,
		MapLink:           r.PostFormValue("ActualLocation"),
		LocationID:        form.ParseInt(errs, "LocationId", r.PostFormValue("LocationId")),
		DeveloperID:       form.ParseInt(errs, "DeveloperId", r.PostFormValue("DeveloperId")),
		HotDeal:           r.PostFormValue("Flag") == "on" || r.PostFormValue("Flag") == "true",
		HasImage:          hasFormFile(r, "ProjectImage"),
		Editing:           editing,
	}
	errs.Merge(draft.Validate())
	return draft, errs
}

func projectRequest(draft form.Project, image *api.File) api.ProjectRequest {
	return api.ProjectRequest{
		DescAR:            draft.DescAR,
		DescEN:            draft.DescEN,
		HotDeal:           draft.HotDeal,
		InstallmentPeriod: int(draft.InstallmentPeriod),
		DownPayment:       draft.DownPayment,
		MapLink:           draft.MapLink,
		LocationID:        int64(draft.LocationID),
		DeveloperID:       int64(draft.DeveloperID),
		Image:             image,
	}
}

// CreateProject handles POST /projects/new.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.renderer.SetFlash(r, "Invalid form data", flashError)
		http.Redirect(w, r, "/projects/new", http.StatusSeeOther)
		return
	}

	draft, errs := parseProjectDraft(r, false)
	data := ProjectFormData{
		Action: "/projects/new",
		Back:   "/projects",
		Draft:  draft,
	}

	if !errs.Valid() {
		h.renderProjectForm(w, r, "Add Project", data, errs)
		return
	}

	image, err := h.formImage(r, "ProjectImage")
	if err != nil {
		errs.Add("ProjectImage", "The file could not be read as an image.")
		h.renderProjectForm(w, r, "Add Project", data, errs)
		return
	}

	res := h.coordinator.Do(r.Context(), "project", h.caches.Projects, func(ctx context.Context) error {
		return h.api.CreateProject(ctx, projectRequest(draft, image))
	})
	h.finishMutation(w, r, res, "Project added.", "/projects", "/projects/new")
}

// EditProjectForm handles GET /projects/{id}/edit.
func (h *Handler) EditProjectForm(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	projects, err := h.caches.Projects.Get(r.Context())
	if err != nil {
		h.fetchFailed(w, r, "project", err)
		return
	}
	project, ok := findByID(projects, func(p model.Project) int64 { return p.ID }, id)
	if !ok {
		h.renderer.SetFlash(r, "Record not found. The list may have changed.", flashError)
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
		return
	}

	h.renderProjectForm(w, r, "Edit Project", ProjectFormData{
		Editing:   true,
		ID:        id,
		Action:    fmt.Sprintf("/projects/%d/edit", id),
		Back:      "/projects",
		ImagePath: project.ImagePath,
		Draft: form.Project{
			DescAR:            project.DescAR,
			DescEN:            project.DescEN,
			InstallmentPeriod: float64(project.InstallmentPeriod),
			DownPayment:       project.DownPayment,
			MapLink:           project.MapLink,
			LocationID:        int(project.LocationID),
			DeveloperID:       int(project.DeveloperID),
			HotDeal:           project.HotDeal,
			Editing:           true,
		},
	}, nil)
}

// UpdateProject handles POST /projects/{id}/edit. When no new file is
// uploaded the stored image is fetched from the backend and re-sent:
// the update endpoint treats a missing image field as "remove".
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.renderer.SetFlash(r, "Invalid form data", flashError)
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
		return
	}

	draft, errs := parseProjectDraft(r, true)
	action := fmt.Sprintf("/projects/%d/edit", id)
	data := ProjectFormData{
		Editing: true,
		ID:      id,
		Action:  action,
		Back:    "/projects",
		Draft:   draft,
	}

	if !errs.Valid() {
		h.renderProjectForm(w, r, "Edit Project", data, errs)
		return
	}

	image, err := h.formImage(r, "ProjectImage")
	if err != nil {
		errs.Add("ProjectImage", "The file could not be read as an image.")
		h.renderProjectForm(w, r, "Edit Project", data, errs)
		return
	}
	if image == nil {
		image, err = h.existingImage(r.Context(), h.projectImagePath(r.Context(), id))
		if err != nil {
			h.fetchFailed(w, r, "project image", err)
			return
		}
	}

	res := h.coordinator.Do(r.Context(), "project", h.caches.Projects, func(ctx context.Context) error {
		return h.api.UpdateProject(ctx, id, projectRequest(draft, image))
	})
	h.finishMutation(w, r, res, "Project updated.", "/projects", action)
}

// projectImagePath returns the stored image path of a project, or ""
// when the row is gone from the cached list.
func (h *Handler) projectImagePath(ctx context.Context, id int64) string {
	projects, err := h.caches.Projects.Get(ctx)
	if err != nil {
		return ""
	}
	project, ok := findByID(projects, func(p model.Project) int64 { return p.ID }, id)
	if !ok {
		return ""
	}
	return project.ImagePath
}

// existingImage downloads the stored image so an update without a new
// upload keeps it. A blank path yields no image part.
func (h *Handler) existingImage(ctx context.Context, imagePath string) (*api.File, error) {
	if imagePath == "" {
		return nil, nil
	}

	data, contentType, err := h.api.FetchImage(ctx, imagePath)
	if err != nil {
		return nil, fmt.Errorf("refetching stored image: %w", err)
	}

	name := path.Base(imagePath)
	if name == "." || name == "/" {
		name = uuid.NewString() + ".jpg"
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &api.File{Name: name, ContentType: contentType, Data: data}, nil
}
