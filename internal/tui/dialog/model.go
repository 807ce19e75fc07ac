package dialog

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/StarNumber12046/rocket/internal/events"
	"github.com/StarNumber12046/rocket/internal/history"
	"github.com/StarNumber12046/rocket/internal/launcher"
)

// maxTranscript bounds the scrollback kept in memory.
const maxTranscript = 500

// Runner executes command lines.
type Runner interface {
	RunNow(l launcher.Launcher, line string) (string, error)
}

// Recorder stores executed lines. *history.Store satisfies it.
type Recorder interface {
	Exec(ctx context.Context, source history.Source, line string, fn func(string) (string, error)) (string, error)
}

type eventMsg events.Event

// Model is the BubbleTea model for the command dialog.
type Model struct {
	ctx      context.Context
	runner   Runner
	launcher launcher.Launcher
	recorder Recorder
	hub      <-chan events.Event

	input    textinput.Model
	viewport viewport.Model
	theme    Theme

	transcript []string
	recall     []string
	recallIdx  int

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithRecorder records every submitted line.
func WithRecorder(r Recorder) Option {
	return func(m *Model) { m.recorder = r }
}

// WithEvents shows launcher events in the transcript.
func WithEvents(ch <-chan events.Event) Option {
	return func(m *Model) { m.hub = ch }
}

// WithRecall seeds the Up/Down recall list, oldest first.
func WithRecall(lines []string) Option {
	return func(m *Model) { m.recall = append([]string(nil), lines...) }
}

// New creates a dialog that runs lines through runner against l.
func New(ctx context.Context, runner Runner, l launcher.Launcher, opts ...Option) Model {
	input := textinput.New()
	input.Placeholder = "help"
	input.Prompt = "> "
	input.CharLimit = 1024
	input.Focus()

	m := Model{
		ctx:      ctx,
		runner:   runner,
		launcher: l,
		input:    input,
		viewport: viewport.New(80, 10),
		theme:    NewDefaultTheme(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.input.PromptStyle = m.theme.Prompt
	m.recallIdx = len(m.recall)
	return m
}

func (m Model) Init() tea.Cmd {
	if m.hub == nil {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, receiveNextEvent(m.hub))
}

func receiveNextEvent(ch <-chan events.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit(m.input.Value())
			return m, nil
		case tea.KeyUp:
			m.recallPrev()
			return m, nil
		case tea.KeyDown:
			m.recallNext()
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-4, 10)
		m.viewport.Height = max(msg.Height-6, 3)
		m.input.Width = max(msg.Width-8, 10)
		m.refresh()
		return m, nil

	case eventMsg:
		m.appendLines(m.theme.Event.Render("· " + describeEvent(events.Event(msg))))
		m.refresh()
		return m, receiveNextEvent(m.hub)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(line string) {
	m.input.Reset()
	if strings.TrimSpace(line) == "" {
		m.recallIdx = len(m.recall)
		return
	}

	run := func(l string) (string, error) { return m.runner.RunNow(m.launcher, l) }
	var (
		out string
		err error
	)
	if m.recorder != nil {
		out, err = m.recorder.Exec(m.ctx, history.SourceDialog, line, run)
	} else {
		out, err = run(line)
	}

	m.appendLines(m.theme.Echo.Render("> " + line))
	if err != nil {
		m.appendLines(m.theme.Error.Render(err.Error()))
	} else if out != "" {
		for _, l := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
			m.appendLines(m.theme.OK.Render(l))
		}
	}

	if n := len(m.recall); n == 0 || m.recall[n-1] != line {
		m.recall = append(m.recall, line)
	}
	m.recallIdx = len(m.recall)
	m.refresh()
}

func (m *Model) recallPrev() {
	if m.recallIdx == 0 {
		return
	}
	m.recallIdx--
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}

func (m *Model) recallNext() {
	if m.recallIdx >= len(m.recall) {
		return
	}
	m.recallIdx++
	if m.recallIdx == len(m.recall) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}

func (m *Model) appendLines(lines ...string) {
	m.transcript = append(m.transcript, lines...)
	if over := len(m.transcript) - maxTranscript; over > 0 {
		m.transcript = m.transcript[over:]
	}
}

func (m *Model) refresh() {
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

func describeEvent(ev events.Event) string {
	if len(ev.Data) == 0 || string(ev.Data) == "{}" {
		return ev.Type
	}
	return ev.Type + " " + string(ev.Data)
}

func (m Model) View() string {
	title := m.theme.Title.Render("rocket")
	body := m.theme.Border.Render(m.viewport.View())
	help := m.theme.Help.Render(" [enter] Run • [↑/↓] Recall • [esc] Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, body, m.input.View(), help)
}

// Transcript returns the rendered scrollback lines.
func (m Model) Transcript() []string {
	return append([]string(nil), m.transcript...)
}

// Input returns the current prompt text.
func (m Model) Input() string {
	return m.input.Value()
}
