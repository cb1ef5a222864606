package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/vokinneberg/askdesk/internal/config"
	"github.com/vokinneberg/askdesk/internal/logging"
	"github.com/vokinneberg/askdesk/internal/probe"
	"github.com/vokinneberg/askdesk/internal/qa"
)

func main() {
	cfg, err := config.LoadConfig("probe", os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Usage: probe [flags]\n\n%s", config.Usage("probe"))
			os.Exit(0)
		}
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile, os.Stderr)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	client, err := qa.NewClient(cfg.BackendURL, nil)
	if err != nil {
		slog.Error("Failed to create answer client", "error", err)
		os.Exit(1)
	}

	result := probe.New(client, logger).Check(context.Background())
	slog.Info("Probe complete", "endpoint", client.Endpoint(), "result", result.String())

	if result != probe.Reachable {
		closeLog()
		os.Exit(1)
	}
}
