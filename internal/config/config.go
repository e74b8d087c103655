// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	// BackendURL is the base URL of the listing REST backend, e.g.
	// https://api.example.com. All entity data lives behind it; the
	// dashboard itself stores only sessions and the audit log.
	BackendURL    string `env:"AQARDESK_BACKEND_URL,required"`
	SessionSecret string `env:"AQARDESK_SESSION_SECRET,required"`

	DBPath     string `env:"AQARDESK_DB_PATH" envDefault:"./data/aqardesk.db"`
	ServerHost string `env:"AQARDESK_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"AQARDESK_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"AQARDESK_ENV" envDefault:"development"`
	LogLevel   string `env:"AQARDESK_LOG_LEVEL" envDefault:"info"`

	// HTTPTimeout caps one backend request, in seconds. Image refetches
	// ride the same client, so keep it generous enough for uploads.
	HTTPTimeout int `env:"AQARDESK_HTTP_TIMEOUT" envDefault:"30"`

	// Cache configuration
	RedisURL    string `env:"AQARDESK_REDIS_URL"`                           // Optional Redis URL for shared caching
	CachePrefix string `env:"AQARDESK_CACHE_PREFIX" envDefault:"aqardesk:"` // Redis key prefix
	CacheTTL    int    `env:"AQARDESK_CACHE_TTL" envDefault:"300"`          // List cache TTL in seconds

	// Upload processing
	MaxImageDimension int `env:"AQARDESK_MAX_IMAGE_DIMENSION" envDefault:"2000"` // Longest edge after resize, px
	ImageQuality      int `env:"AQARDESK_IMAGE_QUALITY" envDefault:"85"`         // JPEG quality

	// Maintenance
	EventRetentionDays int    `env:"AQARDESK_EVENT_RETENTION_DAYS" envDefault:"90"`
	PruneSchedule      string `env:"AQARDESK_PRUNE_SCHEDULE" envDefault:"17 3 * * *"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// CacheTTLDuration returns the list cache TTL as a duration.
func (c Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// HTTPTimeoutDuration returns the backend request timeout as a duration.
func (c Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// EventRetention returns the audit log retention window as a duration.
func (c Config) EventRetention() time.Duration {
	return time.Duration(c.EventRetentionDays) * 24 * time.Hour
}

// SlogLevel maps the configured log level name onto slog's levels.
// Unknown names fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	parsed, err := url.Parse(cfg.BackendURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("AQARDESK_BACKEND_URL must be an http(s) URL, got %q", cfg.BackendURL)
	}
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("AQARDESK_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("AQARDESK_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("AQARDESK_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	if cfg.EventRetentionDays < 1 {
		return nil, fmt.Errorf("AQARDESK_EVENT_RETENTION_DAYS must be at least 1, got %d", cfg.EventRetentionDays)
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
