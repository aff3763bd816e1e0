package services

import (
	"context"
	"sync"
	"time"

	"studyflow/internal/domain"
	"studyflow/internal/logging"
	"studyflow/internal/ports"
)

// SyncSource is the local state the sync worker reconciles.
// LocalCache implements it.
type SyncSource interface {
	FetchReflections(ctx context.Context, sessionID string) []domain.Reflection
	FetchUnsyncedSessions(ctx context.Context) []domain.Session
	MarkSessionSyncedAt(id string, revision uint64) bool
	RefreshSession(ctx context.Context, id string) (domain.Session, bool)
	Revision(id string) uint64
	Session(id string) (domain.Session, bool)
}

var _ SyncSource = (*LocalCache)(nil)

// SyncConfig holds the worker's timing parameters
type SyncConfig struct {
	Interval time.Duration // wait after a successful pass
	MaxDelay time.Duration // backoff cap
	MinDelay time.Duration // floor for any wait
}

// DefaultSyncConfig returns the production timings
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		Interval: 30 * time.Second,
		MaxDelay: 5 * time.Minute,
		MinDelay: time.Second,
	}
}

// SyncWorker periodically uploads unsynced sessions and backs off
// exponentially while uploads fail
type SyncWorker struct {
	cfg      SyncConfig
	source   SyncSource
	uploader ports.Uploader

	mu       sync.Mutex
	cancel   context.CancelFunc
	delay    time.Duration
	done     chan struct{}
	failures int
}

// NewSyncWorker creates a stopped SyncWorker
func NewSyncWorker(source SyncSource, uploader ports.Uploader, cfg SyncConfig) *SyncWorker {
	defaults := DefaultSyncConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = defaults.Interval
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = defaults.MaxDelay
	}
	if cfg.MinDelay <= 0 {
		cfg.MinDelay = defaults.MinDelay
	}

	return &SyncWorker{
		cfg:      cfg,
		delay:    cfg.Interval,
		source:   source,
		uploader: uploader,
	}
}

// Start launches the sync loop with a cleared failure count. Calling Start
// on a running worker does nothing.
func (w *SyncWorker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running() {
		logging.Logger.Debug("Sync worker already running")
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	w.cancel = cancel
	w.done = done
	w.delay = w.cfg.Interval
	w.failures = 0

	logging.Logger.Info("Sync worker started",
		"interval", w.cfg.Interval,
		"max_delay", w.cfg.MaxDelay)
	go w.run(loopCtx, done)
}

// Stop cancels the pending wait and any in-flight upload, then waits for
// the loop to exit. Stopping a stopped worker does nothing.
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	logging.Logger.Info("Sync worker stopped")
}

// Running reports whether the sync loop is active
func (w *SyncWorker) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running()
}

func (w *SyncWorker) running() bool {
	if w.done == nil {
		return false
	}
	select {
	case <-w.done:
		return false
	default:
		return true
	}
}

// ConsecutiveFailures returns the number of failed passes since the last success
func (w *SyncWorker) ConsecutiveFailures() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failures
}

// CurrentDelay returns the wait scheduled after the most recent pass
func (w *SyncWorker) CurrentDelay() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.delay
}

func (w *SyncWorker) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		ok := w.PerformSync(ctx)
		if ctx.Err() != nil {
			return
		}

		delay := w.nextDelay(ok)
		logging.Logger.Debug("Next sync scheduled", "delay", delay, "success", ok)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

func (w *SyncWorker) nextDelay(success bool) time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	if success {
		w.failures = 0
	} else {
		w.failures++
	}
	w.delay = BackoffDelay(w.cfg.Interval, w.cfg.MaxDelay, w.cfg.MinDelay, w.failures)
	return w.delay
}

// PerformSync uploads every unsynced session once, oldest first.
// A failed upload does not stop the pass. It returns true only when every
// upload succeeded, and false as soon as ctx is cancelled.
func (w *SyncWorker) PerformSync(ctx context.Context) bool {
	sessions := w.source.FetchUnsyncedSessions(ctx)
	if len(sessions) == 0 {
		logging.Logger.Debug("Nothing to sync")
		return true
	}

	var synced, failed int
	for _, s := range sessions {
		if ctx.Err() != nil {
			logging.Logger.Info("Sync pass cancelled", "synced", synced, "failed", failed)
			return false
		}

		// Pick up changes other processes made to the row, then read the
		// revision before the data so a concurrent change keeps the
		// session unsynced
		w.source.RefreshSession(ctx, s.ID)
		revision := w.source.Revision(s.ID)
		if cached, ok := w.source.Session(s.ID); ok {
			s = cached
		}
		reflections := w.source.FetchReflections(ctx, s.ID)

		ok, err := w.uploader.UploadSession(ctx, s, reflections)
		if err != nil || !ok {
			failed++
			logging.Logger.Warn("Session upload failed",
				"id", s.ID,
				"reflections", len(reflections),
				"error", err)
			continue
		}

		if !w.source.MarkSessionSyncedAt(s.ID, revision) {
			logging.Logger.Debug("Session modified during upload", "id", s.ID)
		}
		synced++
	}

	logging.Logger.Info("Sync pass finished",
		"attempted", len(sessions),
		"synced", synced,
		"failed", failed)
	return failed == 0
}
