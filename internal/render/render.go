// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render parses and executes the admin HTML templates.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/aqardesk/internal/form"
	"github.com/olegiv/aqardesk/internal/session"
	"github.com/olegiv/aqardesk/internal/uikit"
)

// Renderer handles template rendering with caching.
// In dev mode templates are reparsed on every render so edits show up
// without a restart.
type Renderer struct {
	templates      map[string]*template.Template
	templatesFS    fs.FS
	sessionManager *scs.SessionManager
	funcs          template.FuncMap
	isDev          bool
}

// Config holds renderer configuration. Funcs are merged over the
// uikit defaults; the main package injects imageURL here so templates
// can resolve backend-hosted image paths.
type Config struct {
	TemplatesFS    fs.FS
	SessionManager *scs.SessionManager
	Funcs          template.FuncMap
	IsDev          bool
}

// New creates a new Renderer with parsed templates.
func New(cfg Config) (*Renderer, error) {
	funcs := uikit.TemplateFuncs()
	for name, fn := range cfg.Funcs {
		funcs[name] = fn
	}

	r := &Renderer{
		templates:      make(map[string]*template.Template),
		templatesFS:    cfg.TemplatesFS,
		sessionManager: cfg.SessionManager,
		funcs:          funcs,
		isDev:          cfg.IsDev,
	}

	if err := r.parseTemplates(); err != nil {
		return nil, err
	}

	return r, nil
}

// parseTemplates parses all templates from the filesystem. Admin pages
// get the base and admin layouts, auth pages the base layout only.
func (r *Renderer) parseTemplates() error {
	partials, err := r.getTemplateFiles("partials")
	if err != nil {
		return fmt.Errorf("getting partials: %w", err)
	}

	baseLayout := "layouts/base.html"
	adminLayout := "layouts/admin.html"

	adminTemplates, err := r.getTemplateFiles("admin")
	if err != nil {
		return fmt.Errorf("getting admin templates: %w", err)
	}

	for _, tmplPath := range adminTemplates {
		name := "admin/" + strings.TrimSuffix(filepath.Base(tmplPath), ".html")

		files := []string{baseLayout, adminLayout}
		files = append(files, partials...)
		files = append(files, tmplPath)

		tmpl, err := template.New("").Funcs(r.funcs).ParseFS(r.templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}

		r.templates[name] = tmpl
	}

	authTemplates, err := r.getTemplateFiles("auth")
	if err != nil {
		return fmt.Errorf("getting auth templates: %w", err)
	}

	for _, tmplPath := range authTemplates {
		name := "auth/" + strings.TrimSuffix(filepath.Base(tmplPath), ".html")

		files := []string{baseLayout}
		files = append(files, partials...)
		files = append(files, tmplPath)

		tmpl, err := template.New("").Funcs(r.funcs).ParseFS(r.templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}

		r.templates[name] = tmpl
	}

	return nil
}

// getTemplateFiles returns all .html files in a directory.
func (r *Renderer) getTemplateFiles(dir string) ([]string, error) {
	var files []string

	entries, err := fs.ReadDir(r.templatesFS, dir)
	if err != nil {
		// Directory might not exist yet, that's ok
		return files, nil
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".html") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	return files, nil
}

// TemplateData holds data passed to templates.
type TemplateData struct {
	Title       string
	Active      string // sidebar nav highlight, e.g. "projects"
	AdminName   string
	Data        any
	Form        any
	Errors      form.Errors
	Flash       string
	FlashType   string
	CurrentYear int
}

// Render renders a template with the given data.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, name string, data TemplateData) error {
	if r.isDev {
		if err := r.parseTemplates(); err != nil {
			return fmt.Errorf("reparsing templates: %w", err)
		}
	}

	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	data.CurrentYear = time.Now().Year()

	if r.sessionManager != nil {
		ctx := req.Context()
		if data.AdminName == "" {
			data.AdminName = session.AdminName(ctx, r.sessionManager)
		}
		if flash := r.sessionManager.PopString(ctx, "flash"); flash != "" {
			data.Flash = flash
			data.FlashType = r.sessionManager.PopString(ctx, "flash_type")
			if data.FlashType == "" {
				data.FlashType = "info"
			}
		}
	}

	// Render to buffer first to catch errors
	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, "base", data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
	return nil
}

// SetFlash sets a flash message in the session.
func (r *Renderer) SetFlash(req *http.Request, message, flashType string) {
	if r.sessionManager != nil {
		r.sessionManager.Put(req.Context(), "flash", message)
		r.sessionManager.Put(req.Context(), "flash_type", flashType)
	}
}
