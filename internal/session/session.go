// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session manages the admin's server-side session. The bearer
// token issued by the listing backend lives here, never in a client
// cookie or browser storage.
package session

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

const (
	keyToken     = "apiToken"
	keyAdminName = "adminName"
)

// New creates a new session manager configured with SQLite store.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()

	// Use SQLite store
	sm.Store = sqlite3store.New(db)

	// Configure session
	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev // Secure cookies in production only

	if !isDev {
		sm.Cookie.Name = "__Host-session"
		sm.Cookie.Path = "/"
	}

	return sm
}

// SignIn stores the backend token after a successful login. The
// session id is renewed to prevent fixation.
func SignIn(ctx context.Context, sm *scs.SessionManager, token, adminName string) error {
	if err := sm.RenewToken(ctx); err != nil {
		return err
	}
	sm.Put(ctx, keyToken, token)
	sm.Put(ctx, keyAdminName, adminName)
	return nil
}

// SignOut destroys the session. Called on logout and whenever the
// backend answers 401.
func SignOut(ctx context.Context, sm *scs.SessionManager) error {
	return sm.Destroy(ctx)
}

// Token returns the stored backend token, or "" when signed out.
func Token(ctx context.Context, sm *scs.SessionManager) string {
	return sm.GetString(ctx, keyToken)
}

// AdminName returns the signed-in admin's username, or "".
func AdminName(ctx context.Context, sm *scs.SessionManager) string {
	return sm.GetString(ctx, keyAdminName)
}

// IsAuthenticated reports whether the session holds a backend token.
func IsAuthenticated(ctx context.Context, sm *scs.SessionManager) bool {
	return Token(ctx, sm) != ""
}
