// Package probe checks once whether the question endpoint is reachable.
// Results only ever go to the log.
package probe

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/vokinneberg/askdesk/internal/types"
)

//go:generate mockgen -source=probe.go -destination=mock_sender.go -package=probe Sender

// Sender defines the interface for POSTing a question without decoding the answer
type Sender interface {
	Send(ctx context.Context, question string) (*http.Response, error)
}

// Result is the outcome of a probe
type Result int

const (
	// Reachable means the endpoint answered with a 2xx status
	Reachable Result = iota
	// Unhealthy means the endpoint answered with any other status
	Unhealthy
	// Unreachable means the request itself failed
	Unreachable
)

func (r Result) String() string {
	switch r {
	case Reachable:
		return "reachable"
	case Unhealthy:
		return "unhealthy"
	case Unreachable:
		return "unreachable"
	}
	return "unknown"
}

// Prober sends a placeholder question to the endpoint
type Prober struct {
	sender   Sender
	logger   *slog.Logger
	question string
}

// New creates a prober. A nil logger means slog.Default().
func New(sender Sender, logger *slog.Logger) *Prober {
	if logger == nil {
		logger = slog.Default()
	}
	return &Prober{
		sender:   sender,
		logger:   logger,
		question: types.ProbeQuestion,
	}
}

// Check sends the placeholder question and logs the result
func (p *Prober) Check(ctx context.Context) Result {
	resp, err := p.sender.Send(ctx, p.question)
	if err != nil {
		p.logger.Error("Failed to connect to backend", "error", err)
		return Unreachable
	}
	defer resp.Body.Close()
	// drain so the connection can be reused
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.logger.Warn("Backend is not responding correctly", "status", resp.StatusCode)
		return Unhealthy
	}

	p.logger.Info("Backend is reachable", "status", resp.StatusCode)
	return Reachable
}

// Start runs Check once in the background. Nothing waits for it.
func (p *Prober) Start(ctx context.Context) {
	go p.Check(ctx)
}
