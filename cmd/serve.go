package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hmans/boards/internal/graph"
	"github.com/hmans/boards/internal/server"
)

var (
	servePort  int
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the GraphQL server",
	Long: `Start an HTTP server that serves the GraphQL API.

The server exposes:
  - GraphQL endpoint at /graphql (POST)
  - GraphQL Playground at /graphql (GET) for interactive queries
  - Prometheus metrics at /metrics
  - Liveness probe at /healthz

Examples:
  # Start server on the configured port (default 4000)
  boards serve

  # Start server on a custom port
  boards serve --port 3000

  # Seed from a fixture file and reload it whenever it changes
  boards serve --seed fixtures.yaml --watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func runServer() error {
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if serveWatch {
		cfg.Seed.Watch = true
	}

	schema, err := graph.NewSchema(newResolver())
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	srv := server.New(schema, logger, reg)

	if cfg.Seed.Watch {
		if cfg.Seed.File == "" {
			return errors.New("watching requires a seed file (--seed or seed.file)")
		}
		if err := core.WatchSeed(cfg.Seed.File, nil); err != nil {
			return fmt.Errorf("watching seed file: %w", err)
		}
		logger.Info("watching seed file", zap.String("path", cfg.Seed.File))
	}

	// Bind first so the resolved address can be logged
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.Addr(), err)
	}

	httpServer := &http.Server{
		Handler:      srv.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Set up signal handling with context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to listen for server errors
	serverErr := make(chan error, 1)

	go func() {
		logger.Info("server started",
			zap.String("url", fmt.Sprintf("http://%s/graphql", ln.Addr())),
		)
		serverErr <- httpServer.Serve(ln)
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server stopped")
	}

	return nil
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "Reload the store when the seed file changes")
	rootCmd.AddCommand(serveCmd)
}
