package services

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"studyflow/internal/logging"
)

// DefaultMaxConcurrentWrites bounds concurrent write-through tasks
const DefaultMaxConcurrentWrites = 4

// TaskRunner runs fire-and-forget background work.
// Go never blocks the caller; failures are logged and dropped.
type TaskRunner struct {
	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

// NewTaskRunner creates a TaskRunner allowing maxConcurrent tasks at once
func NewTaskRunner(maxConcurrent int) *TaskRunner {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentWrites
	}
	return &TaskRunner{sem: semaphore.NewWeighted(int64(maxConcurrent))}
}

// Go schedules fn in the background
func (r *TaskRunner) Go(name string, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx := context.Background()
		if err := r.sem.Acquire(ctx, 1); err != nil {
			logging.Logger.Error("Background task not started", "task", name, "error", err)
			return
		}
		defer r.sem.Release(1)

		if err := fn(ctx); err != nil {
			logging.Logger.Error("Background task failed", "task", name, "error", err)
			return
		}
		logging.Logger.Debug("Background task done", "task", name)
	}()
}

// Flush waits until every scheduled task finished or ctx is done
func (r *TaskRunner) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
