// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/olegiv/aqardesk/internal/model"
	"github.com/olegiv/aqardesk/internal/store"
)

// PruneEvents builds the job that deletes audit events older than the
// retention window and records the sweep in the event log itself.
func PruneEvents(events *store.Events, retention time.Duration, schedule string) Job {
	return Job{
		Name:     "prune-events",
		Schedule: schedule,
		Run: func(ctx context.Context) error {
			cutoff := time.Now().Add(-retention)
			deleted, err := events.DeleteBefore(ctx, cutoff)
			if err != nil {
				return fmt.Errorf("pruning events before %s: %w", cutoff.Format(time.RFC3339), err)
			}
			if deleted == 0 {
				return nil
			}
			_, err = events.Create(ctx, store.CreateEventParams{
				Level:    model.EventLevelInfo,
				Category: model.EventCategorySystem,
				Message:  fmt.Sprintf("Pruned %d event(s) older than %s", deleted, retention),
			})
			return err
		},
	}
}
