package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/gridframe/geometry"
)

// Stage scale: simulated pixels per terminal cell
const (
	pxPerCellX = 10.0
	pxPerCellY = 20.0
)

var (
	styleBg      = tcell.StyleDefault.Background(tcell.NewRGBColor(16, 16, 24))
	styleBorder  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(80, 100, 140)).Background(tcell.NewRGBColor(16, 16, 24))
	styleChrome  = tcell.StyleDefault.Background(tcell.NewRGBColor(40, 50, 70))
	styleContent = tcell.StyleDefault.Background(tcell.NewRGBColor(24, 28, 38))
	styleText    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 200)).Background(tcell.NewRGBColor(24, 28, 38))
	styleHeader  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 200, 220)).Background(tcell.NewRGBColor(16, 16, 24))
	styleStatus  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 100, 100)).Background(tcell.NewRGBColor(16, 16, 24))

	indicatorColor = colorful.Color{R: 0.4, G: 0.8, B: 0.9}
	contentColor   = colorful.Color{R: 0.09, G: 0.11, B: 0.15}
)

func (a *app) render() {
	s := a.screen
	w, h := s.Size()
	if w < 4 || h < 4 {
		return
	}
	s.Fill(' ', styleBg)

	stageBottom := h - 2 // Last stage row; row h-1 is the status line

	frame := a.win.Frame()
	content := geometry.ContentBounds(frame, a.coord.Insets())

	a.drawRect(frame, stageBottom, styleChrome)
	a.drawRect(content, stageBottom, styleContent)
	a.drawBorder(frame, stageBottom)

	// Tab-bar band just under the window top edge
	if a.tabCount > 1 {
		x0, _ := a.pxToCell(frame.X, 0)
		x1, _ := a.pxToCell(frame.MaxX(), 0)
		_, ty := a.pxToCell(0, frame.MaxY())
		row := ty + 1
		if row >= 0 && row <= stageBottom {
			for x := x0 + 1; x < x1-1 && x < w; x++ {
				s.SetContent(x, row, '▔', nil, styleBorder)
			}
			label := fmt.Sprintf(" %d tabs ", a.tabCount)
			a.drawText(x0+2, row, label, styleHeader)
		}
	}

	// Grid dimensions centered in the content area
	dims := a.grid.Dimensions()
	label := fmt.Sprintf("%d x %d @ %.0fpt", dims.Cols, dims.Rows, a.grid.font.Size)
	cx, cy := a.pxToCell(content.X+content.W/2, content.Y+content.H/2)
	a.drawText(cx-len(label)/2, clampInt(cy, 0, stageBottom), label, styleText)

	a.drawIndicator(content, stageBottom)

	// Header and status lines
	header := " gridframe-demo   +/- font  t tabs  r live-resize  j/k scroll  g/s/i oscillator  q quit"
	a.drawText(0, 0, header, styleHeader)
	a.drawText(0, h-1, a.statusLine(), styleStatus)

	s.Show()
}

// drawIndicator paints the auto-hiding knob, fading via opacity blend
func (a *app) drawIndicator(content geometry.Rect, stageBottom int) {
	opacity := a.ind.Opacity(a.clock.Now())
	a.opacity.Store(opacity)
	if opacity <= 0.01 {
		return
	}
	knob := a.ind.Rect(content, a.scrollPos, a.knobProp)

	blended := indicatorColor.BlendRgb(contentColor, 1-opacity)
	r, g, b := blended.RGB255()
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))

	a.drawRect(knob, stageBottom, style)
}

func (a *app) statusLine() string {
	ignored := a.reg.Ints.Get("coordinator.intents_ignored").Load()
	frames := a.reg.Ints.Get("coordinator.frames_set").Load()
	resizes := a.reg.Ints.Get("coordinator.grid_resizes").Load()
	flips := a.reg.Ints.Get("oscillator.flips").Load()

	state := "idle"
	if a.liveFlag.Load() {
		state = "live-resize (arrows drag)"
	}
	return fmt.Sprintf(" frames=%d resizes=%d ignored=%d flips=%d op=%.2f  %s",
		frames, resizes, ignored, flips, a.opacity.Load(), state)
}

// pxToCell maps stage pixel coordinates (bottom-left origin) to terminal
// cells (top-left origin). The caller supplies the stage's bottom row
func (a *app) pxToCell(px, py float64) (int, int) {
	_, h := a.screen.Size()
	stageBottom := h - 2
	return int(px / pxPerCellX), stageBottom - int(py/pxPerCellY)
}

// drawRect fills the cell area covered by a pixel rect
func (a *app) drawRect(r geometry.Rect, stageBottom int, style tcell.Style) {
	w, _ := a.screen.Size()
	x0, yBottom := a.pxToCell(r.X, r.Y)
	x1, yTop := a.pxToCell(r.MaxX(), r.MaxY())
	for y := yTop; y <= yBottom && y <= stageBottom; y++ {
		if y < 1 {
			continue
		}
		for x := x0; x <= x1 && x < w; x++ {
			if x < 0 {
				continue
			}
			a.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawBorder outlines a pixel rect with box-drawing runes
func (a *app) drawBorder(r geometry.Rect, stageBottom int) {
	w, _ := a.screen.Size()
	x0, yBottom := a.pxToCell(r.X, r.Y)
	x1, yTop := a.pxToCell(r.MaxX(), r.MaxY())
	if yTop < 1 {
		yTop = 1
	}
	if yBottom > stageBottom {
		yBottom = stageBottom
	}
	for x := x0; x <= x1 && x < w; x++ {
		a.screen.SetContent(x, yTop, '─', nil, styleBorder)
		a.screen.SetContent(x, yBottom, '─', nil, styleBorder)
	}
	for y := yTop; y <= yBottom; y++ {
		a.screen.SetContent(x0, y, '│', nil, styleBorder)
		a.screen.SetContent(x1, y, '│', nil, styleBorder)
	}
	a.screen.SetContent(x0, yTop, '┌', nil, styleBorder)
	a.screen.SetContent(x1, yTop, '┐', nil, styleBorder)
	a.screen.SetContent(x0, yBottom, '└', nil, styleBorder)
	a.screen.SetContent(x1, yBottom, '┘', nil, styleBorder)
}

func (a *app) drawText(x, y int, text string, style tcell.Style) {
	w, h := a.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for i, ch := range text {
		if x+i < 0 || x+i >= w {
			continue
		}
		a.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
