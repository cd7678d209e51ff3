// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

// Package scheduler runs the recurring full synchronization.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/logging"
)

// DefaultSyncInterval is how often a full sync runs when not configured.
const DefaultSyncInterval = time.Hour

// SyncRunner is the part of the sync service the scheduler invokes.
type SyncRunner interface {
	SyncAll(ctx context.Context) (models.SyncStats, error)
}

// Scheduler triggers periodic full syncs until its context is cancelled.
// It holds no durable state, so restarting the process reschedules cleanly.
type Scheduler struct {
	runner     SyncRunner
	interval   time.Duration
	runOnStart bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithInterval overrides the default sync interval.
func WithInterval(interval time.Duration) Option {
	return func(s *Scheduler) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

// WithRunOnStart makes the scheduler run one sync immediately instead of
// waiting a full interval for the first tick.
func WithRunOnStart(runOnStart bool) Option {
	return func(s *Scheduler) {
		s.runOnStart = runOnStart
	}
}

func NewScheduler(runner SyncRunner, opts ...Option) *Scheduler {
	s := &Scheduler{
		runner:   runner,
		interval: DefaultSyncInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run blocks until ctx is cancelled, invoking a full sync every interval.
func (s *Scheduler) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "starting sync scheduler", "interval", s.interval.String(), "run_on_start", s.runOnStart)

	if s.runOnStart {
		s.runOnce(ctx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "stopping sync scheduler")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	stats, err := s.runner.SyncAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "scheduled sync run failed", logging.ErrKey, err)
		return
	}

	slog.InfoContext(ctx, "scheduled sync run finished",
		"sync_run_id", stats.RunID,
		"created", stats.Created,
		"updated", stats.Updated,
		"failed", stats.Failed,
	)
}
