// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/olegiv/aqardesk/internal/model"
)

// Events provides access to the audit event log.
type Events struct {
	db *sql.DB
}

// NewEvents creates an event log accessor.
func NewEvents(db *sql.DB) *Events {
	return &Events{db: db}
}

// CreateEventParams holds the fields for a new event.
type CreateEventParams struct {
	Level     string
	Category  string
	Message   string
	Metadata  string
	CreatedAt time.Time
}

// Create inserts an event and returns its id.
func (e *Events) Create(ctx context.Context, p CreateEventParams) (int64, error) {
	if p.Metadata == "" {
		p.Metadata = "{}"
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	res, err := e.db.ExecContext(ctx,
		`INSERT INTO events (level, category, message, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.Level, p.Category, p.Message, p.Metadata, p.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("inserting event: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns the newest events, newest first.
func (e *Events) Recent(ctx context.Context, limit int) ([]model.Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := e.db.QueryContext(ctx,
		`SELECT id, level, category, message, metadata, created_at
		 FROM events ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var ev model.Event
		if err := rows.Scan(&ev.ID, &ev.Level, &ev.Category, &ev.Message, &ev.Metadata, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// CountSince counts events in a category since the given time.
// Used by the login lockout to count recent failures.
func (e *Events) CountSince(ctx context.Context, category string, since time.Time) (int, error) {
	var n int
	err := e.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events WHERE category = ? AND created_at >= ?`,
		category, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting events: %w", err)
	}
	return n, nil
}

// DeleteBefore prunes events older than the cutoff and reports how
// many rows were removed.
func (e *Events) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := e.db.ExecContext(ctx,
		`DELETE FROM events WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning events: %w", err)
	}
	return res.RowsAffected()
}
