package cmd

import (
	"context"
	"time"

	"studyflow/internal/adapters/api"
	adapterstorage "studyflow/internal/adapters/storage"
	"studyflow/internal/config"
	"studyflow/internal/ports"
	"studyflow/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Cache    *services.LocalCache
	Config   config.Resolved
	Uploader *api.Client
}

// NewContainer creates a new Container with all dependencies wired.
// An unavailable record store leaves the cache in memory-only mode.
func NewContainer(ctx context.Context, cfg config.Resolved) *Container {
	opener := func() (ports.RecordStore, error) {
		return adapterstorage.NewSQLiteRepository(config.GetDBPath())
	}

	return &Container{
		Cache: services.NewLocalCache(ctx, opener, services.CacheConfig{
			MaxConcurrentWrites: cfg.MaxConcurrentWrites,
		}),
		Config:   cfg,
		Uploader: api.NewClient(cfg.APIURL, cfg.RequestTimeout),
	}
}

// NewSyncWorker creates a sync worker. Zero durations use the configured values.
func (c *Container) NewSyncWorker(interval, backoffCap time.Duration) *services.SyncWorker {
	if interval <= 0 {
		interval = c.Config.SyncInterval
	}
	if backoffCap <= 0 {
		backoffCap = c.Config.BackoffCap
	}

	return services.NewSyncWorker(c.Cache, c.Uploader, services.SyncConfig{
		Interval: interval,
		MaxDelay: backoffCap,
		MinDelay: time.Second,
	})
}

// Close flushes pending writes and closes the store
func (c *Container) Close() error {
	if c.Cache != nil {
		return c.Cache.Close()
	}
	return nil
}
