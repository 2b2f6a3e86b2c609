package main

import (
	"math"

	"github.com/lixenwraith/gridframe/geometry"
	"github.com/lixenwraith/gridframe/viewport"
)

// simGrid stands in for the external terminal-emulation engine.
// Cell metrics are synthesized from the font size; the character grid
// itself is out of scope, only its dimensions matter here.
type simGrid struct {
	dims geometry.GridSize
	font viewport.Font
}

func newSimGrid(cols, rows int) *simGrid {
	return &simGrid{
		dims: geometry.GridSize{Cols: cols, Rows: rows},
		font: viewport.Font{Name: "Demo Mono", Size: 13},
	}
}

func (g *simGrid) Dimensions() geometry.GridSize {
	return g.dims
}

func (g *simGrid) RequestResize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g.dims = geometry.GridSize{Cols: cols, Rows: rows}
}

func (g *simGrid) OptimalPixelSize(cols, rows int) geometry.Size {
	cell := g.CellSize()
	return geometry.Size{W: float64(cols) * cell.W, H: float64(rows) * cell.H}
}

func (g *simGrid) CellSize() geometry.Size {
	return geometry.Size{
		W: math.Round(g.font.Size * 0.6),
		H: math.Round(g.font.Size * 1.3),
	}
}

func (g *simGrid) SetFont(f viewport.Font) {
	g.font = f
}

// simWindow stands in for the host windowing layer: a pixel-space frame
// on the stage. Like a real toolkit, SetFrame notifies the frame-change
// callback synchronously, which exercises the coordinator's reentrancy
// guard for real
type simWindow struct {
	frame    geometry.Rect
	attached bool
	onFrame  func()
}

func newSimWindow(frame geometry.Rect) *simWindow {
	return &simWindow{frame: frame, attached: true}
}

func (w *simWindow) Frame() geometry.Rect {
	return w.frame
}

func (w *simWindow) SetFrame(f geometry.Rect) {
	w.frame = f
	if w.onFrame != nil {
		w.onFrame()
	}
}

func (w *simWindow) Attached() bool {
	return w.attached
}

// drag applies a user edge-drag delta directly to the frame, the way a
// window server moves the frame underneath the application
func (w *simWindow) drag(dw, dh float64) {
	f := w.frame
	f.W += dw
	if f.W < 80 {
		f.W = 80
	}
	// Dragging the bottom edge: top stays, height changes downward
	top := f.MaxY()
	f.H += dh
	if f.H < 60 {
		f.H = 60
	}
	f.Y = top - f.H
	w.frame = f
}
