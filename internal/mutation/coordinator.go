// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mutation runs create/update/delete calls against the listing
// backend and classifies their outcome for the handlers.
package mutation

import (
	"context"
	"log/slog"

	"github.com/olegiv/aqardesk/internal/api"
)

// Outcome classifies how a mutation ended.
type Outcome int

const (
	// OutcomeSuccess means the backend accepted the mutation.
	OutcomeSuccess Outcome = iota

	// OutcomeSessionExpired means the backend rejected the bearer
	// token (401). The session must be cleared and the admin sent
	// back to the login screen.
	OutcomeSessionExpired

	// OutcomeForbidden means the admin's role does not permit the
	// operation (403). The session stays valid.
	OutcomeForbidden

	// OutcomeFailed covers every other error: backend validation,
	// server errors, network failures.
	OutcomeFailed
)

// Result is the classified outcome of a mutation.
type Result struct {
	Outcome Outcome

	// Message carries the backend's error message for OutcomeFailed,
	// or a generic fallback when the backend provided none.
	Message string

	// Err is the underlying error for outcomes other than success.
	Err error
}

// OK reports whether the mutation succeeded.
func (r Result) OK() bool {
	return r.Outcome == OutcomeSuccess
}

// Invalidator drops a cached entity list after a successful mutation.
// *cache.ListCache[T] satisfies it.
type Invalidator interface {
	Invalidate(ctx context.Context) error
	Key() string
}

// Op is a single backend mutation call.
type Op func(ctx context.Context) error

// Coordinator sequences mutations: run the backend call, classify the
// error, and on success invalidate the mutated entity's cached list.
// Only that entity's list is touched, and only after the backend confirmed.
type Coordinator struct {
	logger *slog.Logger
}

// NewCoordinator creates a mutation coordinator.
func NewCoordinator(logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{logger: logger}
}

// Do runs op and classifies the result. entity names the mutated
// collection for logging; inv may be nil for operations without a
// cached list (e.g. password resets).
func (c *Coordinator) Do(ctx context.Context, entity string, inv Invalidator, op Op) Result {
	err := op(ctx)
	if err == nil {
		if inv != nil {
			if ierr := inv.Invalidate(ctx); ierr != nil {
				// The mutation went through; a stale list expires
				// on its own TTL.
				c.logger.Warn("cache invalidation failed",
					"entity", entity, "key", inv.Key(), "error", ierr)
			}
		}
		return Result{Outcome: OutcomeSuccess}
	}

	return c.classify(entity, err)
}

func (c *Coordinator) classify(entity string, err error) Result {
	switch {
	case api.IsUnauthorized(err):
		c.logger.Info("mutation rejected: session expired", "entity", entity)
		return Result{Outcome: OutcomeSessionExpired, Err: err}

	case api.IsForbidden(err):
		c.logger.Warn("mutation rejected: forbidden", "entity", entity)
		return Result{Outcome: OutcomeForbidden, Err: err}

	default:
		msg := api.Message(err)
		if msg == "" {
			msg = "Something went wrong. Please try again."
		}
		c.logger.Error("mutation failed", "entity", entity, "error", err)
		return Result{Outcome: OutcomeFailed, Message: msg, Err: err}
	}
}
