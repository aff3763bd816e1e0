package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	adapterstorage "studyflow/internal/adapters/storage"
	"studyflow/internal/config"
	"studyflow/internal/server"
)

// RemoteCmd groups commands for the reference service
type RemoteCmd struct {
	Serve RemoteServeCmd `cmd:"serve" help:"Run the reference StudyFlow service"`
}

// RemoteServeCmd runs the HTTP service that accepts uploads
type RemoteServeCmd struct {
	Addr string `help:"Listen address" default:":8080"`
	DB   string `help:"Database path for uploaded records (default: $STUDYFLOW_HOME/remote.db)"`
}

// Run executes the serve command
func (r *RemoteServeCmd) Run(container *Container) error {
	if !container.Config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	dbPath := config.GetRemoteDBPath()
	if r.DB != "" {
		dbPath = config.ExpandPath(r.DB)
	}

	store, err := adapterstorage.NewSQLiteRepository(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving on %s (records in %s)\n", r.Addr, dbPath)
	return server.NewServer(r.Addr, store).Start(ctx)
}
