package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vokinneberg/askdesk/internal/config"
	"github.com/vokinneberg/askdesk/internal/dispatcher"
	"github.com/vokinneberg/askdesk/internal/logging"
	"github.com/vokinneberg/askdesk/internal/probe"
	"github.com/vokinneberg/askdesk/internal/qa"
	"github.com/vokinneberg/askdesk/internal/render"
	"github.com/vokinneberg/askdesk/internal/tui"
)

const usage = `askdesk - ask the web development advisor

Usage:
  askdesk [flags]               Open the terminal page
  askdesk [flags] <question>    Ask once and print the answer

Flags:
%s`

// defaultTUILogFile keeps logs off the terminal the TUI owns
const defaultTUILogFile = "askdesk.log"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	cfg, err := config.LoadConfig("askdesk", args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stdout, usage, config.Usage("askdesk"))
			return 0
		}
		ancli.PrintErr(fmt.Sprintf("failed to load config: %v\n", err))
		return 1
	}

	interactive := len(cfg.Args) == 0
	logFile := cfg.LogFile
	if interactive && logFile == "" {
		logFile = defaultTUILogFile
	}

	logger, closeLog, err := logging.Setup(cfg.LogLevel, logFile, os.Stderr)
	if err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to set up logging: %v\n", err))
		return 1
	}
	defer closeLog()

	client, err := qa.NewClient(cfg.BackendURL, nil)
	if err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to create answer client: %v\n", err))
		return 1
	}

	opts := []dispatcher.Option{
		dispatcher.WithPolicy(cfg.OverlapPolicy),
		dispatcher.WithBackendAddress(client.BackendAddress()),
		dispatcher.WithCitations(cfg.ShowCitations),
		dispatcher.WithLogger(logger),
	}

	if !interactive {
		return askOnce(ctx, client, strings.Join(cfg.Args, " "), stdout, opts)
	}

	var prober *probe.Prober
	if cfg.ProbeOnStart {
		prober = probe.New(client, logger)
	}

	_, err = tea.NewProgram(tui.New(ctx, client, prober, opts...), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		slog.Error("Terminal page failed", "error", err)
		ancli.PrintErr(fmt.Sprintf("terminal page failed: %v\n", err))
		return 1
	}
	return 0
}

// askOnce runs one question cycle and prints the region as text
func askOnce(ctx context.Context, asker dispatcher.Asker, question string, stdout io.Writer, opts []dispatcher.Option) int {
	region := dispatcher.NewMemoryRegion()
	button := dispatcher.NewSubmitButton()
	dispatcher.Bind(ctx, asker, dispatcher.Controls{
		Input:  dispatcher.StaticInput(question),
		Submit: button,
		Output: region,
	}, opts...)

	button.Click()

	view := region.Current()
	text := render.PlainText(view.Content)
	switch view.Kind {
	case dispatcher.KindAnswer:
		fmt.Fprintln(stdout, text)
		return 0
	case dispatcher.KindError:
		ancli.PrintErr(text + "\n")
		return 1
	}

	ancli.PrintWarn("the backend returned no answer\n")
	return 0
}
