// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/aqardesk/internal/api"
	"github.com/olegiv/aqardesk/internal/mutation"
	"github.com/olegiv/aqardesk/internal/session"
)

// maxUploadSize bounds multipart form parsing for the image screens.
const maxUploadSize = 32 << 20

const (
	flashSuccess = "success"
	flashError   = "error"
	flashInfo    = "info"
)

// ParseIDParam reads the {id} route parameter.
func ParseIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// serverError logs an unexpected failure and renders a bare 500.
func (h *Handler) serverError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// sessionExpired clears the session and sends the admin back to the
// login screen. Cached lists are left alone; they are keyed by entity,
// not by session.
func (h *Handler) sessionExpired(w http.ResponseWriter, r *http.Request) {
	if err := session.SignOut(r.Context(), h.sessionManager); err != nil {
		h.logger.Error("destroying expired session", "error", err)
	}
	h.renderer.SetFlash(r, "Your session has expired. Please sign in again.", flashError)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// fetchFailed handles an error from a cached list fetch: a 401 ends the
// session, anything else renders a 500.
func (h *Handler) fetchFailed(w http.ResponseWriter, r *http.Request, entity string, err error) {
	if api.IsUnauthorized(err) {
		h.sessionExpired(w, r)
		return
	}
	h.serverError(w, "fetching "+entity, err)
}

// finishMutation turns a mutation result into the response: redirect on
// success, session teardown on 401, flash and redirect back otherwise.
// successMsg and backURL belong to the calling screen. Returns true when
// the mutation succeeded.
func (h *Handler) finishMutation(w http.ResponseWriter, r *http.Request, res mutation.Result, successMsg, listURL, backURL string) bool {
	switch res.Outcome {
	case mutation.OutcomeSuccess:
		h.renderer.SetFlash(r, successMsg, flashSuccess)
		http.Redirect(w, r, listURL, http.StatusSeeOther)
		return true

	case mutation.OutcomeSessionExpired:
		h.sessionExpired(w, r)
		return false

	case mutation.OutcomeForbidden:
		h.renderer.SetFlash(r, "You are not authorized to perform this action.", flashError)
		http.Redirect(w, r, backURL, http.StatusSeeOther)
		return false

	default:
		h.renderer.SetFlash(r, res.Message, flashError)
		http.Redirect(w, r, backURL, http.StatusSeeOther)
		return false
	}
}

// formImage extracts and normalizes the optional image file of a
// multipart form. Returns nil without error when the field is empty.
func (h *Handler) formImage(r *http.Request, field string) (*api.File, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", field, err)
	}
	defer file.Close()

	upload, err := h.processor.Process(file, header.Filename)
	if err != nil {
		return nil, fmt.Errorf("processing %s: %w", field, err)
	}
	return &api.File{
		Name:        upload.Filename,
		ContentType: upload.MimeType,
		Data:        upload.Data,
	}, nil
}

// hasFormFile reports whether the multipart form carries a non-empty
// file under the given field.
func hasFormFile(r *http.Request, field string) bool {
	if r.MultipartForm == nil {
		return false
	}
	files := r.MultipartForm.File[field]
	return len(files) > 0 && files[0].Size > 0
}

// encodeMetadata serializes audit event metadata. A map that cannot
// marshal degrades to the empty object rather than failing the event.
func encodeMetadata(meta map[string]string) string {
	if len(meta) == 0 {
		return "{}"
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return "{}"
	}
	return string(data)
}
