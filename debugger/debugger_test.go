package debugger

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jetsetilly/inputmaster/logger"
	"github.com/jetsetilly/inputmaster/test"
	"github.com/jetsetilly/inputmaster/ui"
)

func lastOutput(m *debugger) string {
	if len(m.output) == 0 {
		return ""
	}
	return m.output[len(m.output)-1]
}

func testReport() ui.Report {
	return ui.Report{
		Frame:   10,
		Context: "game",
		Scene:   "square: 10,10 speed 200",
		Controls: []string{
			"jump action value=0.00",
			"horizontal digital value=0.40 blocked",
		},
		Outputs: []string{
			"move value=0.40 fixed=1 members=horizontal",
		},
	}
}

func TestNoReport(t *testing.T) {
	m := newDebugger(ui.NewUI())
	test.ExpectEquality(t, m.commands([]string{"CONTROLS"}), false)
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "no report"), true)
}

func TestReportMessage(t *testing.T) {
	m := newDebugger(ui.NewUI())

	r := testReport()
	r.Feedback = []string{"all controls reset"}
	_, cmd := m.Update(reportMsg(r))
	if cmd == nil {
		t.Errorf("expected a command to wait for the next report")
	}
	test.ExpectEquality(t, m.report.Frame, 10)
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "all controls reset"), true)
}

func TestControlCommands(t *testing.T) {
	m := newDebugger(ui.NewUI())
	m.report = testReport()

	n := len(m.output)
	m.commands([]string{"controls"})
	test.ExpectEquality(t, len(m.output), n+2)

	m.commands([]string{"CONTROL", "JUMP"})
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "jump action"), true)

	m.commands([]string{"CONTROL", "missing"})
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "no control named missing"), true)

	m.commands([]string{"OUTPUTS"})
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "members=horizontal"), true)
}

func TestForward(t *testing.T) {
	u := ui.NewUI()
	m := newDebugger(u)

	m.commands([]string{"PRESS", "Space"})
	select {
	case cmd := <-u.Commands:
		test.ExpectEquality(t, strings.Join(cmd, " "), "PRESS Space")
	default:
		t.Errorf("command was not forwarded")
	}

	// commands are dropped rather than blocking when the window is not
	// consuming them
	for range cap(u.Commands) {
		m.commands([]string{"RESET"})
	}
	m.commands([]string{"RESET"})
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "not accepting"), true)
}

func TestLog(t *testing.T) {
	logger.Clear()
	m := newDebugger(ui.NewUI())

	m.commands([]string{"LOG"})
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "log is empty"), true)

	logger.Log(logger.Allow, "test", "first")
	logger.Log(logger.Allow, "test", "second")
	n := len(m.output)
	m.commands([]string{"LOG", "1"})
	test.ExpectEquality(t, len(m.output), n+1)
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "second"), true)

	m.commands([]string{"LOG", "x"})
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "cannot use LOG"), true)
}

func TestQuit(t *testing.T) {
	m := newDebugger(ui.NewUI())
	test.ExpectEquality(t, m.commands([]string{"quit"}), true)
	test.ExpectEquality(t, m.commands(nil), false)

	m.input.SetValue("QUIT")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Errorf("expected quit command")
	}
	test.ExpectEquality(t, m.history[len(m.history)-1], "QUIT")
}

func TestUnrecognised(t *testing.T) {
	m := newDebugger(ui.NewUI())
	m.commands([]string{"FOO", "bar"})
	test.ExpectEquality(t, strings.Contains(lastOutput(m), "unrecognised command: FOO bar"), true)
}
