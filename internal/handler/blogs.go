// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/olegiv/aqardesk/internal/api"
	"github.com/olegiv/aqardesk/internal/form"
	"github.com/olegiv/aqardesk/internal/render"
)

// BlogFormData is the template payload of the blog form.
type BlogFormData struct {
	Editing   bool
	ID        int64
	Action    string
	Back      string
	Draft     form.Blog
	ImagePath string
}

// BlogPreviewData is the template payload of the blog preview page.
// Content is sanitized before it is marked as trusted HTML.
type BlogPreviewData struct {
	ID        int64
	Title     string
	Content   template.HTML
	ImagePath string
	CreatedBy string
	CreatedAt time.Time
}

func (h *Handler) renderBlogForm(w http.ResponseWriter, r *http.Request, title string, data BlogFormData, errs form.Errors) {
	if err := h.renderer.Render(w, r, "admin/blog_form", render.TemplateData{
		Title:  title,
		Active: "blogs",
		Data:   data,
		Errors: errs,
	}); err != nil {
		h.serverError(w, "rendering blog form", err)
	}
}

// NewBlogForm handles GET /blogs/new.
func (h *Handler) NewBlogForm(w http.ResponseWriter, r *http.Request) {
	h.renderBlogForm(w, r, "Add Blog", BlogFormData{
		Action: "/blogs/new",
		Back:   "/blogs",
	}, nil)
}

// CreateBlog handles POST /blogs/new. The image is optional here: a
// blog without one is published without a cover.
func (h *Handler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.renderer.SetFlash(r, "Invalid form data", flashError)
		http.Redirect(w, r, "/blogs/new", http.StatusSeeOther)
		return
	}

	draft := form.Blog{
		Title:   r.PostFormValue("BlogTitle"),
		Content: r.PostFormValue("BlogContent"),
	}
	data := BlogFormData{
		Action: "/blogs/new",
		Back:   "/blogs",
		Draft:  draft,
	}

	if errs := draft.Validate(); !errs.Valid() {
		h.renderBlogForm(w, r, "Add Blog", data, errs)
		return
	}

	image, err := h.formImage(r, "Image")
	if err != nil {
		errs := make(form.Errors)
		errs.Add("Image", "The file could not be read as an image.")
		h.renderBlogForm(w, r, "Add Blog", data, errs)
		return
	}

	res := h.coordinator.Do(r.Context(), "blog", h.caches.Blogs, func(ctx context.Context) error {
		return h.api.CreateBlog(ctx, api.BlogRequest{
			Title:   draft.Title,
			Content: draft.Content,
			Image:   image,
		})
	})
	h.finishMutation(w, r, res, "Blog added.", "/blogs", "/blogs/new")
}

// EditBlogForm handles GET /blogs/{id}/edit. The list payload omits the
// content body, so the draft is seeded from GetBlogByID.
func (h *Handler) EditBlogForm(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	blog, err := h.api.GetBlog(r.Context(), id)
	if err != nil {
		h.fetchFailed(w, r, "blog", err)
		return
	}

	h.renderBlogForm(w, r, "Edit Blog", BlogFormData{
		Editing:   true,
		ID:        id,
		Action:    fmt.Sprintf("/blogs/%d/edit", id),
		Back:      "/blogs",
		ImagePath: blog.ImagePath,
		Draft: form.Blog{
			Title:   blog.Title,
			Content: blog.Content,
		},
	}, nil)
}

// UpdateBlog handles POST /blogs/{id}/edit. Without a new upload the
// stored image, if any, is refetched and re-sent; a blog that never had
// one stays imageless.
func (h *Handler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.renderer.SetFlash(r, "Invalid form data", flashError)
		http.Redirect(w, r, "/blogs", http.StatusSeeOther)
		return
	}

	draft := form.Blog{
		Title:   r.PostFormValue("BlogTitle"),
		Content: r.PostFormValue("BlogContent"),
	}
	action := fmt.Sprintf("/blogs/%d/edit", id)
	data := BlogFormData{
		Editing: true,
		ID:      id,
		Action:  action,
		Back:    "/blogs",
		Draft:   draft,
	}

	if errs := draft.Validate(); !errs.Valid() {
		h.renderBlogForm(w, r, "Edit Blog", data, errs)
		return
	}

	image, err := h.formImage(r, "Image")
	if err != nil {
		errs := make(form.Errors)
		errs.Add("Image", "The file could not be read as an image.")
		h.renderBlogForm(w, r, "Edit Blog", data, errs)
		return
	}
	if image == nil {
		if blog, gerr := h.api.GetBlog(r.Context(), id); gerr == nil && blog.ImagePath != "" {
			image, err = h.existingImage(r.Context(), blog.ImagePath)
			if err != nil {
				h.fetchFailed(w, r, "blog image", err)
				return
			}
		}
	}

	res := h.coordinator.Do(r.Context(), "blog", h.caches.Blogs, func(ctx context.Context) error {
		return h.api.UpdateBlog(ctx, id, api.BlogRequest{
			Title:   draft.Title,
			Content: draft.Content,
			Image:   image,
		})
	})
	h.finishMutation(w, r, res, "Blog updated.", "/blogs", action)
}

// PreviewBlog handles GET /blogs/{id}: the full article as readers
// would see it, with the stored HTML run through the sanitizer.
func (h *Handler) PreviewBlog(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	blog, err := h.api.GetBlog(r.Context(), id)
	if err != nil {
		h.fetchFailed(w, r, "blog", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/blog_preview", render.TemplateData{
		Title:  blog.Title,
		Active: "blogs",
		Data: BlogPreviewData{
			ID:        blog.ID,
			Title:     blog.Title,
			Content:   template.HTML(h.sanitizer.Sanitize(blog.Content)),
			ImagePath: blog.ImagePath,
			CreatedBy: blog.CreatedBy,
			CreatedAt: blog.CreatedDate,
		},
	}); err != nil {
		h.serverError(w, "rendering blog preview", err)
	}
}
