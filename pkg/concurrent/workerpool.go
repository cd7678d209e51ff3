// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

// Package concurrent provides a bounded worker pool for running
// independent tasks in parallel.
package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// WorkerPool limits how many tasks run at the same time.
type WorkerPool struct {
	workerCount int
}

// NewWorkerPool creates a worker pool with the given concurrency limit.
func NewWorkerPool(workerCount int) *WorkerPool {
	if workerCount <= 0 {
		workerCount = 1
	}
	return &WorkerPool{workerCount: workerCount}
}

// RunAll executes every task, at most workerCount at a time, and waits
// for all of them. A failing task never cancels the others; the non-nil
// errors are collected and returned. Tasks not yet started when ctx is
// cancelled report the context error instead of running.
func (wp *WorkerPool) RunAll(ctx context.Context, tasks ...func() error) []error {
	if len(tasks) == 0 {
		return nil
	}

	errChan := make(chan error, len(tasks))

	g := new(errgroup.Group)
	g.SetLimit(wp.workerCount)

	for _, task := range tasks {
		task := task
		g.Go(func() error {
			select {
			case <-ctx.Done():
				errChan <- ctx.Err()
				return nil
			default:
			}

			if err := task(); err != nil {
				errChan <- err
			}
			return nil
		})
	}

	_ = g.Wait()
	close(errChan)

	var errs []error
	for err := range errChan {
		errs = append(errs, err)
	}
	return errs
}
