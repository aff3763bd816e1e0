package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"studyflow/internal/logging"
	"studyflow/internal/theme"
)

// DaemonCmd runs the background sync worker until interrupted
type DaemonCmd struct {
	BackoffCap time.Duration `help:"Maximum wait between failing sync passes (default from settings)"`
	Interval   time.Duration `help:"Wait between successful sync passes (default from settings)"`
}

// Run executes the daemon command
func (d *DaemonCmd) Run(container *Container) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	healthCtx, cancel := context.WithTimeout(ctx, container.Config.RequestTimeout)
	if err := container.Uploader.Health(healthCtx); err != nil {
		fmt.Printf("%s %v\n", theme.UnsyncedStyle.Render("warning: service unreachable, will keep retrying:"), err)
	}
	cancel()

	worker := container.NewSyncWorker(d.Interval, d.BackoffCap)
	events, unsubscribe := container.Cache.Subscribe()
	defer unsubscribe()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		worker.Start(gctx)
		<-gctx.Done()
		worker.Stop()
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case ev := <-events:
				logging.Logger.Info("Cache event",
					"kind", ev.Kind,
					"session_id", ev.SessionID,
					"reflection_id", ev.ReflectionID)
			}
		}
	})

	fmt.Printf("Syncing to %s (Ctrl+C to stop)\n", container.Config.APIURL)
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Stopped. %d session(s) still unsynced.\n", container.Cache.UnsyncedCount())
	return nil
}
