// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLoginProtection_LockoutAfterMaxFailures(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})

	for i := 0; i < 2; i++ {
		locked, _ := lp.RecordFailedAttempt("sara")
		if locked {
			t.Fatalf("locked too early on attempt %d", i+1)
		}
	}

	locked, dur := lp.RecordFailedAttempt("sara")
	if !locked {
		t.Fatal("expected lockout on third failure")
	}
	if dur != time.Minute {
		t.Errorf("lock duration = %v, want 1m", dur)
	}

	isLocked, remaining := lp.IsAccountLocked("sara")
	if !isLocked {
		t.Error("expected account to report locked")
	}
	if remaining <= 0 || remaining > time.Minute {
		t.Errorf("remaining = %v", remaining)
	}
}

func TestLoginProtection_ExponentialBackoff(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		MaxFailedAttempts: 1,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Hour,
	})

	_, first := lp.RecordFailedAttempt("sara")
	if first != time.Minute {
		t.Errorf("first lockout = %v, want 1m", first)
	}

	_, second := lp.RecordFailedAttempt("sara")
	if second != 2*time.Minute {
		t.Errorf("second lockout = %v, want 2m", second)
	}
}

func TestLoginProtection_SuccessClearsAttempts(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		MaxFailedAttempts: 3,
		AttemptWindow:     time.Minute,
	})

	lp.RecordFailedAttempt("sara")
	lp.RecordFailedAttempt("sara")
	if got := lp.RemainingAttempts("sara"); got != 1 {
		t.Errorf("RemainingAttempts = %d, want 1", got)
	}

	lp.RecordSuccessfulLogin("sara")
	if got := lp.RemainingAttempts("sara"); got != 3 {
		t.Errorf("RemainingAttempts after success = %d, want 3", got)
	}
}

func TestLoginProtection_AccountsAreIndependent(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		MaxFailedAttempts: 2,
		AttemptWindow:     time.Minute,
	})

	lp.RecordFailedAttempt("sara")
	lp.RecordFailedAttempt("sara")

	if locked, _ := lp.IsAccountLocked("omar"); locked {
		t.Error("unrelated account locked")
	}
	if got := lp.RemainingAttempts("omar"); got != 2 {
		t.Errorf("RemainingAttempts(omar) = %d, want 2", got)
	}
}

func TestLoginProtection_MiddlewareRateLimitsPost(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		IPRateLimit: 0.0001, // effectively one request
		IPBurst:     1,
	})

	h := lp.Middleware()(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "203.0.113.9:1234"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want 429", rec.Code)
	}

	// GETs are never rate limited.
	get := httptest.NewRequest(http.MethodGet, "/login", nil)
	get.RemoteAddr = "203.0.113.9:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, get)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET: status = %d, want 200", rec.Code)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"x-real-ip wins", map[string]string{"X-Real-IP": "198.51.100.1"}, "10.0.0.1:80", "198.51.100.1"},
		{"x-forwarded-for", map[string]string{"X-Forwarded-For": "198.51.100.2"}, "10.0.0.1:80", "198.51.100.2"},
		{"remote addr fallback", nil, "10.0.0.1:80", "10.0.0.1:80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := ClientIP(req); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
