package gui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jetsetilly/inputmaster/binding"
	"github.com/jetsetilly/inputmaster/control"
	"github.com/jetsetilly/inputmaster/ui"
)

// commands drains the commands channel without blocking
func (g *guiEbiten) commands() {
	for {
		select {
		case cmd := <-g.u.Commands:
			g.command(cmd)
		default:
			return
		}
	}
}

func (g *guiEbiten) command(cmd []string) {
	if len(cmd) == 0 {
		return
	}

	switch strings.ToUpper(cmd[0]) {
	case "RESET":
		g.reset()

	case "BLOCK", "UNBLOCK":
		block := strings.ToUpper(cmd[0]) == "BLOCK"
		if len(cmd) == 1 {
			g.setBlocked(block)
			break // switch
		}
		c, ok := g.master.Control(cmd[1])
		if !ok {
			g.output(fmt.Sprintf("no control named %s", cmd[1]))
			break // switch
		}
		c.SetBlocked(block)
		g.output(fmt.Sprintf("%s blocked: %v", c.Identifier(), block))

	case "EDITOR":
		ctx := g.master.Context()
		if len(cmd) > 1 {
			switch strings.ToUpper(cmd[1]) {
			case "ON":
				ctx.Editor = true
			case "OFF":
				ctx.Editor = false
			default:
				g.output(fmt.Sprintf("EDITOR %s not recognised", cmd[1]))
				return
			}
		} else {
			ctx.Editor = !ctx.Editor
		}
		g.master.SetContext(ctx)
		g.output(fmt.Sprintf("context: %s", ctx))

	case "PRESS", "RELEASE":
		press := strings.ToUpper(cmd[0]) == "PRESS"
		if len(cmd) < 2 {
			g.output(fmt.Sprintf("%s requires a binding", strings.ToUpper(cmd[0])))
			break // switch
		}
		b, err := binding.Parse(cmd[1])
		if err != nil {
			g.output(err.Error())
			break // switch
		}

		v := 1.0
		if len(cmd) > 2 {
			v, err = strconv.ParseFloat(cmd[2], 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				g.output(fmt.Sprintf("value is not valid: %s", cmd[2]))
				break // switch
			}
		}

		g.overlay.Virtual.Apply(b, press, v)
		if press {
			g.output(fmt.Sprintf("pressed %s", b))
		} else {
			g.output(fmt.Sprintf("released %s", b))
		}

	case "RELEASEALL":
		g.overlay.Virtual.ReleaseAll()
		g.output("released all virtual input")

	default:
		g.output(fmt.Sprintf("window does not understand %s", strings.Join(cmd, " ")))
	}
}

func describeControl(c *control.Control) string {
	s := c.Snapshot()
	var blocked string
	if c.Blocked() {
		blocked = " blocked"
	}
	return fmt.Sprintf("%s %s value=%.2f real=%.2f fixed=%d down=%s held=%s up=%s%s",
		c.Identifier(), c.Config().Variant, s.Value, s.RealValue, s.FixedValue,
		s.Down, s.Held, s.Up, blocked)
}

// report sends the state of the registry to the monitor. the report is
// dropped if the monitor has not consumed the previous one
func (g *guiEbiten) report() {
	r := ui.Report{
		Frame:    g.frame,
		Context:  g.master.Context().String(),
		Scene:    g.scene.String(),
		Feedback: g.feedback,
	}

	mouse := g.master.Mouse()
	r.Mouse = fmt.Sprintf("dx=%.0f dy=%.0f wheel=%.0f", mouse.X, mouse.Y, mouse.Wheel)

	for _, c := range g.master.Controls() {
		r.Controls = append(r.Controls, describeControl(c))
	}
	for _, o := range g.master.Outputs() {
		r.Outputs = append(r.Outputs, fmt.Sprintf("%s value=%.2f fixed=%d members=%s",
			o.Identifier(), o.Value(), o.FixedValue(), strings.Join(o.Members(), ",")))
	}

	select {
	case g.u.Report <- r:
		g.feedback = nil
	default:
	}
}
