package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studyflow/internal/logging"
	"studyflow/internal/ports"
)

const shutdownTimeout = 30 * time.Second

// Server is the reference StudyFlow remote service
type Server struct {
	addr   string
	engine *gin.Engine
}

// NewServer creates a server listening on addr backed by store
func NewServer(addr string, store ports.RecordStore) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())
	NewHandler(store).RegisterRoutes(engine)

	return &Server{
		addr:   addr,
		engine: engine,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start with a caller-provided listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logging.Logger.Info("Starting remote server", "address", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("remote server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down remote server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown remote server: %w", err)
	}

	logging.Logger.Info("Remote server stopped")
	return nil
}
