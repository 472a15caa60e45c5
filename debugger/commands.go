package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/inputmaster/logger"
)

const help = `CONTROLS            list every control
CONTROL <id>        show a single control
OUTPUTS             list every combined output
STATUS              show the scene, the mouse and the context
RESET               reset every control
BLOCK [id]          block every control or a single control
UNBLOCK [id]        unblock every control or a single control
EDITOR [ON|OFF]     toggle or set the editor context
PRESS <binding> [v] press a binding on the virtual device
RELEASE <binding>   release a binding on the virtual device
RELEASEALL          release everything on the virtual device
LOG [n]             show the most recent log entries
CLEAR               clear the output
QUIT                quit the program`

// the number of log entries shown by the LOG command if no number is given
const logDefault = 10

// returns true if debugger is to quit
func (m *debugger) commands(cmd []string) bool {
	if len(cmd) == 0 {
		return false
	}

	switch strings.ToUpper(cmd[0]) {
	case "HELP":
		m.print(m.styles.status, strings.Split(help, "\n")...)

	case "CONTROLS":
		if !m.haveReport() {
			break // switch
		}
		for _, c := range m.report.Controls {
			m.printControl(c)
		}

	case "CONTROL":
		if len(cmd) < 2 {
			m.print(m.styles.err, "CONTROL requires an identifier")
			break // switch
		}
		if !m.haveReport() {
			break // switch
		}
		var found bool
		for _, c := range m.report.Controls {
			if strings.EqualFold(identifier(c), cmd[1]) {
				m.printControl(c)
				found = true
			}
		}
		if !found {
			m.print(m.styles.err, fmt.Sprintf("no control named %s", cmd[1]))
		}

	case "OUTPUTS":
		if !m.haveReport() {
			break // switch
		}
		m.print(m.styles.output, m.report.Outputs...)

	case "STATUS":
		if !m.haveReport() {
			break // switch
		}
		m.print(m.styles.status,
			fmt.Sprintf("frame %d", m.report.Frame),
			fmt.Sprintf("context: %s", m.report.Context),
			m.report.Scene,
			fmt.Sprintf("mouse: %s", m.report.Mouse),
		)

	case "RESET", "BLOCK", "UNBLOCK", "EDITOR", "PRESS", "RELEASE", "RELEASEALL":
		m.forward(cmd)

	case "LOG":
		n := logDefault
		if len(cmd) == 2 {
			var err error
			n, err = strconv.Atoi(cmd[1])
			if err != nil {
				m.print(m.styles.err, fmt.Sprintf("cannot use LOG %s", cmd[1]))
				break // switch
			}
		}
		var s strings.Builder
		logger.Tail(&s, n)
		if s.Len() == 0 {
			m.print(m.styles.log, "log is empty")
			break // switch
		}
		m.print(m.styles.log, strings.Split(strings.TrimRight(s.String(), "\n"), "\n")...)

	case "CLEAR":
		m.output = m.output[:0]

	case "QUIT":
		return true

	default:
		m.print(m.styles.err, fmt.Sprintf("unrecognised command: %s", strings.Join(cmd, " ")))
	}

	return false
}

// forward the command to the window. the command is dropped if the window is
// not keeping up
func (m *debugger) forward(cmd []string) {
	select {
	case m.u.Commands <- cmd:
	default:
		m.print(m.styles.err, "window is not accepting commands")
	}
}

func (m *debugger) haveReport() bool {
	if m.report.Frame == 0 {
		m.print(m.styles.err, "no report from the window yet")
		return false
	}
	return true
}

// identifier is the first field of a control or output description
func identifier(s string) string {
	id, _, _ := strings.Cut(s, " ")
	return id
}

func (m *debugger) printControl(s string) {
	if strings.HasSuffix(s, " blocked") {
		m.print(m.styles.blocked, s)
		return
	}
	m.print(m.styles.control, s)
}
