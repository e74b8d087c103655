// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/aqardesk/internal/api"
	"github.com/olegiv/aqardesk/internal/cache"
	"github.com/olegiv/aqardesk/internal/config"
	"github.com/olegiv/aqardesk/internal/handler"
	"github.com/olegiv/aqardesk/internal/imaging"
	"github.com/olegiv/aqardesk/internal/logging"
	"github.com/olegiv/aqardesk/internal/middleware"
	"github.com/olegiv/aqardesk/internal/mutation"
	"github.com/olegiv/aqardesk/internal/render"
	"github.com/olegiv/aqardesk/internal/scheduler"
	"github.com/olegiv/aqardesk/internal/session"
	"github.com/olegiv/aqardesk/internal/store"
	"github.com/olegiv/aqardesk/internal/version"
	"github.com/olegiv/aqardesk/web"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "AqarDesk - Real Estate Listings Admin Dashboard\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AQARDESK_BACKEND_URL       Listing backend base URL (required)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AQARDESK_SESSION_SECRET    Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AQARDESK_DB_PATH           SQLite database path (default: ./data/aqardesk.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AQARDESK_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AQARDESK_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AQARDESK_REDIS_URL         Redis URL for shared caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AQARDESK_CACHE_TTL         List cache TTL in seconds (default: 300)\n")
		_, _ = fmt.Fprintf(os.Stderr, "\nFor more information, see: https://github.com/olegiv/aqardesk\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("aqardesk %s\n", version.String())
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// The local database holds sessions and the audit log only; all
	// listing data lives in the backend.
	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the event log
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	events := store.NewEvents(db)

	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Cache backend: in-process memory by default, Redis when configured
	// so multiple dashboard instances share invalidations.
	cacher, err := cache.New(cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      cfg.CacheTTLDuration(),
		CleanupInterval: time.Minute,
	})
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer func() {
		if err := cacher.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()
	if cfg.UseRedisCache() {
		slog.Info("cache initialized", "backend", "redis", "url", cfg.RedisURL)
	} else {
		slog.Info("cache initialized", "backend", "memory")
	}

	// Backend client. The bearer token rides in from the caller's
	// session on every request.
	apiClient := api.New(api.Config{
		BaseURL: cfg.BackendURL,
		Timeout: cfg.HTTPTimeoutDuration(),
		Token: func(ctx context.Context) string {
			return session.Token(ctx, sessionManager)
		},
	})
	slog.Info("backend client initialized", "base_url", cfg.BackendURL)

	ttl := cfg.CacheTTLDuration()
	caches := &handler.Caches{
		Admins:     cache.NewListCache(cacher, "admins", ttl, apiClient.ListAdmins),
		Categories: cache.NewListCache(cacher, "categories", ttl, apiClient.ListCategories),
		Locations:  cache.NewListCache(cacher, "locations", ttl, apiClient.ListLocations),
		Developers: cache.NewListCache(cacher, "developers", ttl, apiClient.ListDevelopers),
		Finishings: cache.NewListCache(cacher, "finishings", ttl, apiClient.ListFinishings),
		Projects:   cache.NewListCache(cacher, "projects", ttl, apiClient.ListProjects),
		Units:      cache.NewListCache(cacher, "units", ttl, apiClient.ListUnits),
		Blogs:      cache.NewListCache(cacher, "blogs", ttl, apiClient.ListBlogs),
	}

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}

	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
		Funcs: template.FuncMap{
			"imageURL": apiClient.ImageURL,
		},
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	slog.Info("template renderer initialized")

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	slog.Info("login protection initialized",
		"max_failed_attempts", 5,
		"lockout_duration", "15m",
	)

	h := handler.New(handler.Config{
		API:             apiClient,
		Renderer:        renderer,
		SessionManager:  sessionManager,
		Coordinator:     mutation.NewCoordinator(logger),
		Caches:          caches,
		Events:          events,
		LoginProtection: loginProtection,
		Processor:       imaging.NewProcessor(cfg.MaxImageDimension, cfg.ImageQuality),
		Logger:          logger,
	})

	// Maintenance: prune the audit log on schedule. List caches fill
	// lazily per request; every fetch needs the signed-in admin's
	// bearer token, so there is no credential to warm them with.
	sched := scheduler.New(logger)
	if err := sched.Add(scheduler.PruneEvents(events, cfg.EventRetention(), cfg.PruneSchedule)); err != nil {
		return fmt.Errorf("adding prune job: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)

	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())))
	slog.Info("CSRF protection initialized", "secure", !cfg.IsDevelopment())

	r.Mount("/", h.Routes())

	// Static assets: embedded, cache for 1 year
	staticFS, err := fs.Sub(web.Static, "static/dist")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
	r.Get("/static/*", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=31536000")
		fileServer.ServeHTTP(w, req)
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // allow for image uploads riding through to the backend
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server",
			"addr", cfg.ServerAddr(), "env", cfg.Env, "version", version.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
