package dispatcher

import "github.com/vokinneberg/askdesk/internal/types"

// Outcome is the result of one question round trip
type Outcome struct {
	ID       uint64
	Question string
	Payload  *types.AnswerPayload
	Err      error
}

// Executor runs fetch away from the event loop and hands its outcome to
// deliver on the event loop. deliver must never run concurrently with
// other dispatcher calls.
type Executor interface {
	Go(fetch func() Outcome, deliver func(Outcome))
}

// ExecutorFunc adapts a function to Executor
type ExecutorFunc func(fetch func() Outcome, deliver func(Outcome))

func (f ExecutorFunc) Go(fetch func() Outcome, deliver func(Outcome)) {
	f(fetch, deliver)
}

// Inline runs fetch and deliver synchronously on the calling goroutine.
// Submit does not return until the outcome is rendered.
var Inline Executor = ExecutorFunc(func(fetch func() Outcome, deliver func(Outcome)) {
	deliver(fetch())
})
