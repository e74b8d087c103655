// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"fmt"
	"net/http"
	"time"

	ua "github.com/mileusna/useragent"

	"github.com/olegiv/aqardesk/internal/form"
	"github.com/olegiv/aqardesk/internal/middleware"
	"github.com/olegiv/aqardesk/internal/model"
	"github.com/olegiv/aqardesk/internal/render"
	"github.com/olegiv/aqardesk/internal/session"
	"github.com/olegiv/aqardesk/internal/store"
)

// LoginForm handles GET /login.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "auth/login", render.TemplateData{
		Title: "Sign In",
	}); err != nil {
		h.serverError(w, "rendering login form", err)
	}
}

// Login handles POST /login: validate the credentials locally, check
// the account lockout, exchange them for a bearer token, and open the
// session. Every attempt lands in the audit log.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.SetFlash(r, "Invalid form data", flashError)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	draft := form.Login{
		Username: r.PostFormValue("userName"),
		Password: r.PostFormValue("userPassword"),
	}

	if errs := draft.Validate(); !errs.Valid() {
		if err := h.renderer.Render(w, r, "auth/login", render.TemplateData{
			Title:  "Sign In",
			Form:   draft,
			Errors: errs,
		}); err != nil {
			h.serverError(w, "rendering login form", err)
		}
		return
	}

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsAccountLocked(draft.Username); locked {
			h.auditLogin(r, draft.Username, false, "account locked")
			h.renderer.SetFlash(r, fmt.Sprintf(
				"Too many failed attempts. Try again in %s.", remaining.Round(time.Minute)), flashError)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
	}

	token, err := h.api.Login(r.Context(), draft.Username, draft.Password)
	if err != nil {
		h.loginFailed(w, r, draft)
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(draft.Username)
	}
	if err := session.SignIn(r.Context(), h.sessionManager, token, draft.Username); err != nil {
		h.serverError(w, "opening session", err)
		return
	}

	h.auditLogin(r, draft.Username, true, "")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) loginFailed(w http.ResponseWriter, r *http.Request, draft form.Login) {
	h.auditLogin(r, draft.Username, false, "invalid credentials")

	msg := "Invalid username or password."
	if h.loginProtection != nil {
		if lockedNow, lockout := h.loginProtection.RecordFailedAttempt(draft.Username); lockedNow {
			msg = fmt.Sprintf("Too many failed attempts. Account locked for %s.", lockout.Round(time.Minute))
		} else if left := h.loginProtection.RemainingAttempts(draft.Username); left > 0 && left <= 2 {
			msg = fmt.Sprintf("Invalid username or password. %d attempts remaining.", left)
		}
	}

	h.renderer.SetFlash(r, msg, flashError)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout handles POST /logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	name := session.AdminName(r.Context(), h.sessionManager)
	if err := session.SignOut(r.Context(), h.sessionManager); err != nil {
		h.serverError(w, "destroying session", err)
		return
	}

	h.audit(r, model.EventLevelInfo, "logout", map[string]string{"user": name})
	h.renderer.SetFlash(r, "You have been signed out.", flashInfo)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// auditLogin records a login attempt with client details.
func (h *Handler) auditLogin(r *http.Request, username string, success bool, reason string) {
	agent := ua.Parse(r.UserAgent())
	meta := map[string]string{
		"user":    username,
		"ip":      middleware.ClientIP(r),
		"browser": agent.Name,
		"os":      agent.OS,
	}

	if success {
		h.audit(r, model.EventLevelInfo, "login succeeded", meta)
		return
	}
	meta["reason"] = reason
	h.audit(r, model.EventLevelWarning, "login failed", meta)
}

// audit writes an auth event to the local event log. Failures are
// logged, never surfaced; the audit trail must not break the flow.
func (h *Handler) audit(r *http.Request, level, message string, meta map[string]string) {
	if h.events == nil {
		return
	}
	_, err := h.events.Create(r.Context(), store.CreateEventParams{
		Level:    level,
		Category: model.EventCategoryAuth,
		Message:  message,
		Metadata: encodeMetadata(meta),
	})
	if err != nil {
		h.logger.Error("writing audit event", "message", message, "error", err)
	}
}
