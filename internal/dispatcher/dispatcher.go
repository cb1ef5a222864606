// Package dispatcher turns a question typed into an input control into a
// rendered answer region.
//
// A Dispatcher is bound once to the host's controls with Bind. From then
// on every call into it (clicks, key presses, input changes, and the
// delivery of outcomes by the Executor) must happen on the host's single
// event loop; only that loop writes to the output region.
package dispatcher

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vokinneberg/askdesk/internal/render"
	"github.com/vokinneberg/askdesk/internal/types"
)

//go:generate mockgen -source=dispatcher.go -destination=mock_asker.go -package=dispatcher Asker

// Asker defines the interface for sending a question to the remote endpoint
type Asker interface {
	Ask(ctx context.Context, question string) (*types.AnswerPayload, error)
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithExecutor sets how round trips are run. Defaults to Inline.
func WithExecutor(e Executor) Option {
	return func(d *Dispatcher) {
		d.exec = e
	}
}

// WithPolicy sets the overlap policy. Defaults to PolicyRace.
func WithPolicy(p Policy) Option {
	return func(d *Dispatcher) {
		d.policy = p
	}
}

// WithBackendAddress sets the address named in failure messages
func WithBackendAddress(addr string) Option {
	return func(d *Dispatcher) {
		d.backendAddress = addr
	}
}

// WithCitations lists the answer's citations below it
func WithCitations(show bool) Option {
	return func(d *Dispatcher) {
		d.showCitations = show
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// Dispatcher orchestrates the question cycle:
// read input, validate, show loading, ask, render answer or error.
type Dispatcher struct {
	ctx    context.Context
	asker  Asker
	input  Input
	submit Button
	output Region

	exec           Executor
	policy         Policy
	backendAddress string
	showCitations  bool
	logger         *slog.Logger

	seq      uint64
	inFlight int
	cancel   context.CancelFunc
}

// Bind creates a dispatcher for asker and wires it to the controls.
// ctx bounds every request the dispatcher makes.
func Bind(ctx context.Context, asker Asker, c Controls, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		ctx:            ctx,
		asker:          asker,
		input:          c.Input,
		submit:         c.Submit,
		output:         c.Output,
		exec:           Inline,
		policy:         PolicyRace,
		backendAddress: types.DefaultBackendAddress,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}

	c.Submit.OnClick(func() {
		d.Submit(d.input.Value())
	})

	return d
}

// HandleKey handles a key press inside the input control and reports
// whether the default behavior of the key must be suppressed.
// Enter without the modifier activates the submit control.
func (d *Dispatcher) HandleKey(ev KeyEvent) bool {
	if ev.Key != KeyEnter || ev.Modified {
		return false
	}
	d.submit.Click()
	return true
}

// HandleInput must be called after every change to the input control.
// It clears the region once the input becomes blank.
func (d *Dispatcher) HandleInput() {
	if d.output.Current().Empty() {
		return
	}
	if strings.TrimSpace(d.input.Value()) == "" {
		d.output.Show(View{Kind: KindEmpty})
	}
}

// Pending returns the number of questions still in flight
func (d *Dispatcher) Pending() int {
	return d.inFlight
}

// Submit runs one question cycle for raw
func (d *Dispatcher) Submit(raw string) {
	question := strings.TrimSpace(raw)
	if question == "" {
		d.output.Show(View{Kind: KindError, Content: render.Warning()})
		return
	}

	switch d.policy {
	case PolicyIgnorePending:
		if d.inFlight > 0 {
			d.logger.Info("Ignoring question while another is pending", "question", question, "pending", d.inFlight)
			return
		}
	case PolicyCancelPrevious:
		if d.cancel != nil {
			d.cancel()
		}
	}

	ctx, cancel := context.WithCancel(d.ctx)
	d.seq++
	id := d.seq
	d.inFlight++
	d.cancel = cancel

	d.output.Show(View{Kind: KindLoading, Content: render.Loading()})
	d.logger.Debug("Sending question", "id", id, "question", question)

	asker := d.asker
	d.exec.Go(func() Outcome {
		defer cancel()
		payload, err := asker.Ask(ctx, question)
		return Outcome{ID: id, Question: question, Payload: payload, Err: err}
	}, d.finish)
}

func (d *Dispatcher) finish(o Outcome) {
	d.inFlight--
	if o.ID == d.seq {
		d.cancel = nil
	}

	if d.policy == PolicyCancelPrevious && o.ID != d.seq {
		d.logger.Debug("Discarding superseded answer", "id", o.ID, "latest", d.seq)
		return
	}

	d.output.Show(d.viewFor(o))
}

func (d *Dispatcher) viewFor(o Outcome) View {
	if o.Err != nil {
		d.logger.Error("Failed to get answer", "error", o.Err, "question", o.Question)
		return View{Kind: KindError, Content: render.Failure(d.backendAddress, o.Err)}
	}

	if !o.Payload.HasAnswer() {
		d.logger.Debug("Answer payload has no answer", "id", o.ID)
		return View{Kind: KindEmpty}
	}

	d.logger.Debug("Received answer", "id", o.ID, "final_action", o.Payload.FinalAction, "citations", len(o.Payload.Citations))

	var citations []types.Citation
	if d.showCitations {
		citations = o.Payload.Citations
	}

	return View{Kind: KindAnswer, Content: render.Answer(o.Payload.Answer, citations)}
}
