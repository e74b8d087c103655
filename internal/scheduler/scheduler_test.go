// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/olegiv/aqardesk/internal/model"
	"github.com/olegiv/aqardesk/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAddRejectsInvalidSchedule(t *testing.T) {
	s := New(discardLogger())

	err := s.Add(Job{
		Name:     "broken",
		Schedule: "not a cron spec",
		Run:      func(ctx context.Context) error { return nil },
	})
	if err == nil {
		t.Fatal("expected error for invalid schedule")
	}
}

func TestAddRejectsIncompleteJob(t *testing.T) {
	s := New(discardLogger())

	if err := s.Add(Job{Schedule: "* * * * *"}); err == nil {
		t.Fatal("expected error for job without name and run function")
	}
}

func TestJobsReportsOutcome(t *testing.T) {
	s := New(discardLogger())

	err := s.Add(Job{
		Name:     "failing",
		Schedule: "* * * * *",
		Run:      func(ctx context.Context) error { return errors.New("backend down") },
	})
	if err != nil {
		t.Fatalf("adding job: %v", err)
	}

	s.run(s.jobs[0])

	jobs := s.Jobs()
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	if jobs[0].LastRun.IsZero() {
		t.Error("LastRun not recorded")
	}
	if jobs[0].LastErr != "backend down" {
		t.Errorf("LastErr = %q, want %q", jobs[0].LastErr, "backend down")
	}

	// A later success clears the recorded error.
	s.jobs[0].job.Run = func(ctx context.Context) error { return nil }
	s.run(s.jobs[0])
	if got := s.Jobs()[0].LastErr; got != "" {
		t.Errorf("LastErr after success = %q, want empty", got)
	}
}

func TestPruneEventsDeletesOldAndRecordsSweep(t *testing.T) {
	db, err := store.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db))

	events := store.NewEvents(db)
	ctx := context.Background()

	_, err = events.Create(ctx, store.CreateEventParams{
		Level:     model.EventLevelInfo,
		Category:  model.EventCategoryAuth,
		Message:   "stale login",
		CreatedAt: time.Now().Add(-48 * time.Hour),
	})
	require.NoError(t, err)
	_, err = events.Create(ctx, store.CreateEventParams{
		Level:    model.EventLevelInfo,
		Category: model.EventCategoryAuth,
		Message:  "fresh login",
	})
	require.NoError(t, err)

	job := PruneEvents(events, 24*time.Hour, "17 3 * * *")
	require.NoError(t, job.Run(ctx))

	recent, err := events.Recent(ctx, 10)
	require.NoError(t, err)

	var sawStale, sawSweep bool
	for _, ev := range recent {
		if ev.Message == "stale login" {
			sawStale = true
		}
		if ev.Category == model.EventCategorySystem {
			sawSweep = true
		}
	}
	if sawStale {
		t.Error("stale event survived pruning")
	}
	if !sawSweep {
		t.Error("sweep was not recorded in the event log")
	}
}

func TestRunContainsPanickingJob(t *testing.T) {
	s := New(discardLogger())

	// A job that blows up the way code does when handed a context it
	// cannot work with must not take the scheduler goroutine down.
	err := s.Add(Job{
		Name:     "exploding",
		Schedule: "* * * * *",
		Run: func(ctx context.Context) error {
			panic("no session data in context")
		},
	})
	if err != nil {
		t.Fatalf("adding job: %v", err)
	}

	s.run(s.jobs[0])

	info := s.Jobs()[0]
	if info.LastRun.IsZero() {
		t.Error("LastRun not recorded for panicking job")
	}
	if !strings.Contains(info.LastErr, "panicked") || !strings.Contains(info.LastErr, "no session data") {
		t.Errorf("LastErr = %q, want recorded panic", info.LastErr)
	}
}
