package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vokinneberg/askdesk/internal/dispatcher"
)

// outcomeMsg carries a finished round trip back into Update
type outcomeMsg struct {
	outcome dispatcher.Outcome
	deliver func(dispatcher.Outcome)
}

// cmdQueue is the dispatcher.Executor of the TUI. Round trips started
// during one Update become tea.Cmds, so they run off the event loop and
// their outcomes come back as messages.
type cmdQueue struct {
	cmds []tea.Cmd
}

func (q *cmdQueue) Go(fetch func() dispatcher.Outcome, deliver func(dispatcher.Outcome)) {
	q.cmds = append(q.cmds, func() tea.Msg {
		return outcomeMsg{outcome: fetch(), deliver: deliver}
	})
}

func (q *cmdQueue) drain() []tea.Cmd {
	cmds := q.cmds
	q.cmds = nil
	return cmds
}
