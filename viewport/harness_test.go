package viewport

import (
	"math"
	"time"

	"github.com/lixenwraith/gridframe/config"
	"github.com/lixenwraith/gridframe/geometry"
	"github.com/lixenwraith/gridframe/sched"
	"github.com/lixenwraith/gridframe/status"
)

// fakeGrid implements GridEngine with synthetic font metrics
// Cell size scales with font size so font changes move pixel metrics
type fakeGrid struct {
	dims    geometry.GridSize
	font    Font
	resizes int
}

func newFakeGrid(cols, rows int) *fakeGrid {
	return &fakeGrid{
		dims: geometry.GridSize{Cols: cols, Rows: rows},
		font: Font{Name: "Test Mono", Size: 13},
	}
}

func (g *fakeGrid) Dimensions() geometry.GridSize {
	return g.dims
}

func (g *fakeGrid) RequestResize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g.dims = geometry.GridSize{Cols: cols, Rows: rows}
	g.resizes++
}

func (g *fakeGrid) OptimalPixelSize(cols, rows int) geometry.Size {
	cell := g.CellSize()
	return geometry.Size{W: float64(cols) * cell.W, H: float64(rows) * cell.H}
}

func (g *fakeGrid) CellSize() geometry.Size {
	return geometry.Size{
		W: math.Round(g.font.Size * 0.6),
		H: math.Round(g.font.Size * 1.3),
	}
}

func (g *fakeGrid) SetFont(f Font) {
	g.font = f
	// Font application alone perturbs the displayed dimensions, mirroring
	// the real engine re-flowing the grid under new cell metrics
	g.dims.Cols++
}

// fakeWindow implements WindowHost and, like a real toolkit, calls the
// frame-change notification synchronously from inside SetFrame
type fakeWindow struct {
	frame     geometry.Rect
	attached  bool
	onFrame   func()
	setFrames int
}

func newFakeWindow(frame geometry.Rect) *fakeWindow {
	return &fakeWindow{frame: frame, attached: true}
}

func (w *fakeWindow) Frame() geometry.Rect {
	return w.frame
}

func (w *fakeWindow) SetFrame(f geometry.Rect) {
	w.frame = f
	w.setFrames++
	if w.onFrame != nil {
		w.onFrame()
	}
}

func (w *fakeWindow) Attached() bool {
	return w.attached
}

// rig bundles the component graph most viewport tests need
type rig struct {
	grid  *fakeGrid
	win   *fakeWindow
	clock *sched.MockTimeProvider
	sched *sched.Scheduler
	reg   *status.Registry
	tun   config.Tuning
	coord *Coordinator
}

func newRig(cols, rows int) *rig {
	r := &rig{
		grid:  newFakeGrid(cols, rows),
		win:   newFakeWindow(geometry.Rect{X: 100, Y: 100, W: 800, H: 600}),
		clock: sched.NewMockTimeProvider(time.Unix(0, 0)),
		reg:   status.NewRegistry(),
		tun:   config.Default(),
	}
	r.sched = sched.NewScheduler(r.clock)
	r.coord = NewCoordinator(r.grid, r.win, r.tun, r.reg)
	// Wire the synchronous host callback the way a toolkit would
	r.win.onFrame = r.coord.OnWindowFrameChanged
	return r
}

// advance moves mock time forward and fires due callbacks
func (r *rig) advance(d time.Duration) {
	r.clock.Advance(d)
	r.sched.RunDue()
}
