// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs recurring maintenance jobs on cron schedules,
// currently pruning the local event log.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// jobTimeout bounds a single job run. Maintenance jobs touch the local
// database and the backend; neither should hold a run open for long.
const jobTimeout = 2 * time.Minute

// Job is one recurring maintenance task.
type Job struct {
	Name     string
	Schedule string // standard five-field cron spec
	Run      func(ctx context.Context) error
}

// JobInfo describes a registered job and its last outcome.
type JobInfo struct {
	Name     string
	Schedule string
	LastRun  time.Time
	LastErr  string
}

type jobState struct {
	job     Job
	lastRun time.Time
	lastErr string
}

// Scheduler owns the cron instance and tracks job outcomes.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger

	mu   sync.Mutex
	jobs []*jobState
}

// New creates a scheduler. Jobs are added with Add before Start.
func New(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:   cron.New(),
		logger: logger,
	}
}

// Add registers a job. The schedule is validated here so a bad config
// value fails at startup, not at first fire.
func (s *Scheduler) Add(job Job) error {
	if job.Name == "" || job.Run == nil {
		return fmt.Errorf("scheduler: job needs a name and a run function")
	}

	state := &jobState{job: job}
	_, err := s.cron.AddFunc(job.Schedule, func() { s.run(state) })
	if err != nil {
		return fmt.Errorf("scheduler: invalid schedule %q for job %s: %w", job.Schedule, job.Name, err)
	}

	s.mu.Lock()
	s.jobs = append(s.jobs, state)
	s.mu.Unlock()
	return nil
}

func (s *Scheduler) run(state *jobState) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	err := runContained(ctx, state.job)

	s.mu.Lock()
	state.lastRun = start
	if err != nil {
		state.lastErr = err.Error()
	} else {
		state.lastErr = ""
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("maintenance job failed",
			"job", state.job.Name, "duration", time.Since(start), "error", err)
		return
	}
	s.logger.Debug("maintenance job finished",
		"job", state.job.Name, "duration", time.Since(start))
}

// runContained converts a panicking job into an error. cron fires jobs
// on its own goroutine, so an uncaught panic here would take down the
// whole process.
func runContained(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.Name, r)
		}
	}()
	return job.Run(ctx)
}

// Start begins firing jobs on their schedules.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// Jobs returns a snapshot of registered jobs and their last outcomes.
func (s *Scheduler) Jobs() []JobInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]JobInfo, 0, len(s.jobs))
	for _, st := range s.jobs {
		infos = append(infos, JobInfo{
			Name:     st.job.Name,
			Schedule: st.job.Schedule,
			LastRun:  st.lastRun,
			LastErr:  st.lastErr,
		})
	}
	return infos
}
