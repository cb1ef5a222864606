package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vokinneberg/askdesk/internal/config"
	"github.com/vokinneberg/askdesk/internal/dispatcher"
	"github.com/vokinneberg/askdesk/internal/logging"
	"github.com/vokinneberg/askdesk/internal/probe"
	"github.com/vokinneberg/askdesk/internal/qa"

	httphandler "github.com/vokinneberg/askdesk/internal/http"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// run serves until ctx is done or the listener fails, and returns the exit code
func run(ctx context.Context, args []string) int {
	// Load configuration
	cfg, err := config.LoadConfig("server", args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Usage: server [flags]\n\n%s", config.Usage("server"))
			return 0
		}
		slog.Error("Failed to load config", "error", err)
		return 1
	}

	_, closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile, os.Stderr)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		return 1
	}
	defer closeLog()

	// Initialize answer client
	client, err := qa.NewClient(cfg.BackendURL, nil)
	if err != nil {
		slog.Error("Failed to create answer client", "error", err)
		return 1
	}
	slog.Info("Initialized answer client", "endpoint", client.Endpoint())

	if cfg.ProbeOnStart {
		probe.New(client, slog.Default()).Start(ctx)
	}

	// Initialize HTTP handlers
	handler := httphandler.NewHandlers(client,
		dispatcher.WithPolicy(cfg.OverlapPolicy),
		dispatcher.WithBackendAddress(client.BackendAddress()),
		dispatcher.WithCitations(cfg.ShowCitations),
	)

	// Create router
	r := httphandler.NewRouter(handler)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		slog.Error("Server failed", "error", err)
		return 1
	case <-ctx.Done():
	}

	// Graceful shutdown
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return 1
	}

	slog.Info("Server exited")
	return 0
}
