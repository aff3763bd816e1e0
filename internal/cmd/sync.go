package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"studyflow/internal/theme"
)

// SyncCmd runs a single sync pass
type SyncCmd struct{}

// Run executes the sync command
func (s *SyncCmd) Run(container *Container) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache := container.Cache
	pending := cache.UnsyncedCount()
	if pending == 0 {
		fmt.Println(theme.SyncedStyle.Render("Everything is synced."))
		return nil
	}

	fmt.Printf("Uploading %d session(s) to %s...\n", pending, container.Config.APIURL)
	ok := container.NewSyncWorker(0, 0).PerformSync(ctx)

	if err := cache.Flush(ctx); err != nil {
		return err
	}

	remaining := cache.UnsyncedCount()
	fmt.Printf("Synced %d of %d session(s)\n", pending-remaining, pending)
	if !ok {
		return fmt.Errorf("%d session(s) still waiting for upload (run with --debug for details)", remaining)
	}
	return nil
}
