package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jetsetilly/inputmaster/demo"
)

var (
	colBackground = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}
	colBar        = color.RGBA{R: 0x50, G: 0x50, B: 0x60, A: 0xff}
	colPositive   = color.RGBA{R: 0x40, G: 0xc0, B: 0x40, A: 0xff}
	colNegative   = color.RGBA{R: 0xc0, G: 0x40, B: 0x40, A: 0xff}
	colPanel      = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xe0}
	colSelected   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colBlocked    = color.RGBA{R: 0xc0, G: 0x40, B: 0x40, A: 0x40}
)

func swatch(i int) color.RGBA {
	c := demo.Swatches[i]
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

const (
	barWidth  = 80
	barHeight = 6
)

// drawBar draws the value of an output as a bar growing from the centre
func (g *guiEbiten) drawBar(screen *ebiten.Image, id string, x, y float32) {
	o, ok := g.master.Output(id)
	if !ok {
		return
	}

	vector.DrawFilledRect(screen, x, y, barWidth, barHeight, colBar, false)

	v := float32(o.Value())
	mid := x + barWidth/2
	if v > 0 {
		vector.DrawFilledRect(screen, mid, y, v*barWidth/2, barHeight, colPositive, false)
	} else if v < 0 {
		vector.DrawFilledRect(screen, mid+v*barWidth/2, y, -v*barWidth/2, barHeight, colNegative, false)
	}

	ebitenutil.DebugPrintAt(screen, id, int(x+barWidth)+4, int(y)-5)
}

func (g *guiEbiten) drawMenu(screen *ebiten.Image) {
	const size = 20
	const gap = 4

	h := float32(len(demo.Swatches)*(size+gap) + gap)
	x := float32(screenWidth-size-gap*2) / 2
	y := (float32(screenHeight) - h) / 2

	vector.DrawFilledRect(screen, x, y, size+gap*2, h, colPanel, false)

	for i := range demo.Swatches {
		sy := y + gap + float32(i*(size+gap))
		vector.DrawFilledRect(screen, x+gap, sy, size, size, swatch(i), false)
		if i == g.scene.Selected {
			vector.StrokeRect(screen, x+gap-2, sy-2, size+4, size+4, 2, colSelected, false)
		}
	}
}

func (g *guiEbiten) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	if g.blocked {
		vector.DrawFilledRect(screen, 0, 0, screenWidth, screenHeight, colBlocked, false)
	}

	vector.DrawFilledRect(screen, float32(g.scene.X), float32(g.scene.Y),
		demo.Size, demo.Size, swatch(g.scene.Colour), false)

	g.drawBar(screen, demo.Horizontal, 4, screenHeight-36)
	g.drawBar(screen, demo.Vertical, 4, screenHeight-24)
	g.drawBar(screen, demo.Accelerate, 4, screenHeight-12)

	if g.scene.MenuOpen {
		g.drawMenu(screen)
	}

	status := g.scene.String()
	if g.blocked {
		status = fmt.Sprintf("%s [blocked]", status)
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 2)
	ebitenutil.DebugPrintAt(screen, g.master.Context().String(), 4, 14)

	g.geom.x, g.geom.y = ebiten.WindowPosition()
	g.geom.w, g.geom.h = ebiten.WindowSize()
}
