// Package tui is a terminal page for asking questions: a question input,
// an answer region and a spinner while the backend is thinking.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vokinneberg/askdesk/internal/dispatcher"
	"github.com/vokinneberg/askdesk/internal/probe"
	"github.com/vokinneberg/askdesk/internal/render"
)

const helpText = "enter/ctrl+s: ask • alt+enter: new line • pgup/pgdown: scroll • esc: quit"

// inputControl exposes the textarea to the dispatcher
type inputControl struct {
	m *Model
}

func (i inputControl) Value() string {
	return i.m.input.Value()
}

// Model is the Bubble Tea model of the terminal page
type Model struct {
	// UI Components
	input    textarea.Model
	spinner  spinner.Model
	viewport viewport.Model
	styles   styles

	// Controls the dispatcher is bound to
	region *dispatcher.MemoryRegion
	button *dispatcher.SubmitButton
	disp   *dispatcher.Dispatcher
	queue  *cmdQueue

	ctx      context.Context
	prober   *probe.Prober
	spinning bool
	width    int
}

// New creates the terminal page. prober may be nil to skip the
// connectivity check on start.
func New(ctx context.Context, asker dispatcher.Asker, prober *probe.Prober, opts ...dispatcher.Option) *Model {
	ta := textarea.New()
	ta.Placeholder = "Ask a question about web development..."
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "insert newline"))
	ta.Focus()

	m := &Model{
		input:    ta,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport: viewport.New(80, 10),
		styles:   defaultStyles(),
		region:   dispatcher.NewMemoryRegion(),
		button:   dispatcher.NewSubmitButton(),
		queue:    &cmdQueue{},
		ctx:      ctx,
		prober:   prober,
		width:    80,
	}

	// the executor must stay the command queue
	opts = append(opts[:len(opts):len(opts)], dispatcher.WithExecutor(m.queue))
	m.disp = dispatcher.Bind(ctx, asker, dispatcher.Controls{
		Input:  inputControl{m: m},
		Submit: m.button,
		Output: m.region,
	}, opts...)

	return m
}

// Region returns the answer region
func (m *Model) Region() dispatcher.Region {
	return m.region
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.prober != nil {
		cmds = append(cmds, func() tea.Msg {
			m.prober.Check(m.ctx)
			return nil
		})
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlS:
			m.button.Click()
			return m, m.afterDispatch()
		case tea.KeyEnter:
			if m.disp.HandleKey(dispatcher.KeyEvent{Key: dispatcher.KeyEnter, Modified: msg.Alt}) {
				return m, m.afterDispatch()
			}
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		if m.input.Value() != before {
			m.disp.HandleInput()
		}

	case outcomeMsg:
		msg.deliver(msg.outcome)
		cmds = append(cmds, m.queue.drain()...)

	case spinner.TickMsg:
		if m.region.Current().Kind != dispatcher.KindLoading {
			m.spinning = false
			break
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.refresh()
	return m, tea.Batch(cmds...)
}

// afterDispatch collects the round trips the dispatcher started and
// starts the spinner when the region went into loading
func (m *Model) afterDispatch() tea.Cmd {
	cmds := m.queue.drain()
	if m.region.Current().Kind == dispatcher.KindLoading && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	m.refresh()
	return tea.Batch(cmds...)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.input.SetWidth(width)
	m.viewport.Width = width
	// title, input, help and spacing take the rest
	m.viewport.Height = max(height-m.input.Height()-6, 3)
	m.refresh()
}

// refresh copies the region into the viewport
func (m *Model) refresh() {
	m.viewport.SetContent(m.regionText())
}

func (m *Model) regionText() string {
	view := m.region.Current()
	text := render.PlainText(view.Content)
	if text == "" {
		return ""
	}

	width := max(m.width-2, 10)
	switch view.Kind {
	case dispatcher.KindError:
		return m.styles.failure.Width(width).Render(text)
	case dispatcher.KindLoading:
		return m.styles.loading.Width(width).Render(m.spinner.View() + " " + text)
	}
	return m.styles.answer.Width(width).Render(text)
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("askdesk"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(helpText))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	return b.String()
}
