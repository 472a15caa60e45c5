// Package debugger is the terminal monitor for the demonstration window. It
// prints reports about the state of the control registry and forwards
// commands to the window, which owns the registry.
package debugger

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/inputmaster/ui"
	"github.com/jetsetilly/inputmaster/version"
)

type keyMap struct {
	quit    key.Binding
	submit  key.Binding
	prev    key.Binding
	next    key.Binding
	scrollU key.Binding
	scrollD key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		prev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous command"),
		),
		next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next command"),
		),
		scrollU: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		scrollD: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "scroll down"),
		),
	}
}

// reportMsg carries a report from the window into the bubbletea program
type reportMsg ui.Report

type debugger struct {
	u *ui.UI

	viewport viewport.Model
	input    textinput.Model
	output   []string
	styles   styles
	keys     keyMap

	// the most recent report from the window. the zero value means that no
	// report has been received yet
	report ui.Report

	// command history. histIdx is equal to len(history) when no history
	// entry is selected
	history []string
	histIdx int

	// if follow is true the viewport is scrolled to the bottom whenever
	// there is new output
	follow bool
}

func newDebugger(u *ui.UI) *debugger {
	m := &debugger{
		u:      u,
		styles: newStyles(),
		keys:   newKeyMap(),
		follow: true,
	}

	m.input = textinput.New()
	m.input.Placeholder = "HELP for a list of commands"
	m.input.Prompt = m.styles.prompt.Render("> ")
	m.input.Focus()
	m.input.CharLimit = 256
	m.input.Width = 50

	m.viewport = viewport.New(80, 20)

	m.print(m.styles.debugger, version.Title())

	return m
}

// waitForReport returns a command that waits for the next report from the
// window
func (m *debugger) waitForReport() tea.Cmd {
	return func() tea.Msg {
		return reportMsg(<-m.u.Report)
	}
}

func (m *debugger) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForReport())
}

// print one or more lines of output using the style
func (m *debugger) print(style lipgloss.Style, s ...string) {
	for _, l := range s {
		m.output = append(m.output, style.Render(l))
	}
}

func (m *debugger) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 1

	case reportMsg:
		m.report = ui.Report(msg)
		m.print(m.styles.feedback, m.report.Feedback...)
		cmds = append(cmds, m.waitForReport())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.submit):
			s := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			m.follow = true
			if s != "" {
				m.history = append(m.history, s)
				m.histIdx = len(m.history)
				m.print(m.styles.command, s)
			}
			if m.commands(strings.Fields(s)) {
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.prev):
			if m.histIdx > 0 {
				m.histIdx--
				m.input.SetValue(m.history[m.histIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, m.keys.next):
			if m.histIdx < len(m.history)-1 {
				m.histIdx++
				m.input.SetValue(m.history[m.histIdx])
				m.input.CursorEnd()
			} else {
				m.histIdx = len(m.history)
				m.input.SetValue("")
			}
			return m, nil

		case key.Matches(msg, m.keys.scrollU):
			m.follow = false
			m.viewport.HalfViewUp()
			return m, nil

		case key.Matches(msg, m.keys.scrollD):
			m.viewport.HalfViewDown()
			m.follow = m.viewport.AtBottom()
			return m, nil
		}
	}

	m.viewport.SetContent(strings.Join(m.output, "\n"))
	if m.follow {
		m.viewport.GotoBottom()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m debugger) View() string {
	return fmt.Sprintf("%s\n%s",
		m.viewport.View(),
		m.input.View(),
	)
}

// Launch the terminal monitor. The function returns when the user quits or
// when endDebugger receives a value
func Launch(endDebugger chan bool, u *ui.UI) error {
	m := newDebugger(u)
	p := tea.NewProgram(m)

	go func() {
		<-endDebugger
		p.Quit()
	}()

	_, err := p.Run()
	return err
}
