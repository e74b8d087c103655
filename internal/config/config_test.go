// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"log/slog"
	"os"
	"testing"
	"time"
)

const testSecret = "test-secret-key-32-bytes-long!!!"

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	os.Clearenv()
	setEnv(t, "AQARDESK_BACKEND_URL", "https://api.example.com")
	setEnv(t, "AQARDESK_SESSION_SECRET", testSecret)
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBPath != "./data/aqardesk.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "./data/aqardesk.db")
	}
	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "localhost")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.CacheTTLDuration() != 5*time.Minute {
		t.Errorf("CacheTTLDuration() = %v, want %v", cfg.CacheTTLDuration(), 5*time.Minute)
	}
	if cfg.HTTPTimeoutDuration() != 30*time.Second {
		t.Errorf("HTTPTimeoutDuration() = %v, want %v", cfg.HTTPTimeoutDuration(), 30*time.Second)
	}
	if cfg.EventRetention() != 90*24*time.Hour {
		t.Errorf("EventRetention() = %v, want %v", cfg.EventRetention(), 90*24*time.Hour)
	}
	if cfg.PruneSchedule != "17 3 * * *" {
		t.Errorf("PruneSchedule = %q, want %q", cfg.PruneSchedule, "17 3 * * *")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	setRequired(t)
	setEnv(t, "AQARDESK_DB_PATH", "/custom/path.db")
	setEnv(t, "AQARDESK_SERVER_HOST", "0.0.0.0")
	setEnv(t, "AQARDESK_SERVER_PORT", "3000")
	setEnv(t, "AQARDESK_ENV", "production")
	setEnv(t, "AQARDESK_LOG_LEVEL", "debug")
	setEnv(t, "AQARDESK_REDIS_URL", "redis://localhost:6379/0")
	setEnv(t, "AQARDESK_CACHE_TTL", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBPath != "/custom/path.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/custom/path.db")
	}
	if cfg.ServerAddr() != "0.0.0.0:3000" {
		t.Errorf("ServerAddr() = %q, want %q", cfg.ServerAddr(), "0.0.0.0:3000")
	}
	if cfg.Env != "production" || cfg.IsDevelopment() {
		t.Errorf("Env = %q, IsDevelopment() = %v", cfg.Env, cfg.IsDevelopment())
	}
	if !cfg.UseRedisCache() {
		t.Error("UseRedisCache() = false, want true")
	}
	if cfg.CacheTTLDuration() != time.Minute {
		t.Errorf("CacheTTLDuration() = %v, want %v", cfg.CacheTTLDuration(), time.Minute)
	}
}

func TestLoad_RequiredBackendURL(t *testing.T) {
	os.Clearenv()
	setEnv(t, "AQARDESK_SESSION_SECRET", testSecret)

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail when AQARDESK_BACKEND_URL is not set")
	}
}

func TestLoad_InvalidBackendURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"no scheme", "api.example.com"},
		{"bad scheme", "ftp://api.example.com"},
		{"no host", "https://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			setEnv(t, "AQARDESK_BACKEND_URL", tt.url)

			if _, err := Load(); err == nil {
				t.Fatalf("Load() should reject backend URL %q", tt.url)
			}
		})
	}
}

func TestLoad_TrimsBackendURLSlash(t *testing.T) {
	setRequired(t)
	setEnv(t, "AQARDESK_BACKEND_URL", "https://api.example.com/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.BackendURL != "https://api.example.com" {
		t.Errorf("BackendURL = %q, want trailing slash removed", cfg.BackendURL)
	}
}

func TestLoad_RequiredSessionSecret(t *testing.T) {
	os.Clearenv()
	setEnv(t, "AQARDESK_BACKEND_URL", "https://api.example.com")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail when AQARDESK_SESSION_SECRET is not set")
	}
}

func TestLoad_SessionSecretTooShort(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"empty", ""},
		{"short", "short"},
		{"31_bytes", "1234567890123456789012345678901"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			setEnv(t, "AQARDESK_SESSION_SECRET", tt.secret)

			if _, err := Load(); err == nil {
				t.Fatalf("Load() should fail with %d-byte secret", len(tt.secret))
			}
		})
	}
}

func TestLoad_RejectsKnownWeakSecret(t *testing.T) {
	setRequired(t)
	setEnv(t, "AQARDESK_SESSION_SECRET", "change-me-to-32-byte-secret-key!")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject a known default secret")
	}
}

func TestLoad_RejectsZeroRetention(t *testing.T) {
	setRequired(t)
	setEnv(t, "AQARDESK_EVENT_RETENTION_DAYS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject a zero retention window")
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config{LogLevel: tt.level}
			if got := cfg.SlogLevel(); got != tt.want {
				t.Errorf("SlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
