package viewport

import (
	"sync/atomic"

	"github.com/lixenwraith/gridframe/config"
	"github.com/lixenwraith/gridframe/events"
	"github.com/lixenwraith/gridframe/geometry"
	"github.com/lixenwraith/gridframe/status"
)

// Coordinator serializes grid-size intent and window-frame intent so they
// never recursively trigger each other.
//
// Two states: Idle and ProgrammaticUpdate, tracked by the inFlight flag.
// Any intent arriving while an update is in flight is ignored, not queued:
// the in-flight update produces the next legitimate change notification
// itself. During a live-resize drag, frame changes are observed but grid
// adoption is deferred until the gesture ends.
//
// All methods must run on the UI loop goroutine.
type Coordinator struct {
	grid GridEngine
	host WindowHost

	insets       geometry.Insets
	inFlight     bool
	liveResize   bool
	framePending bool
	lastGrid     geometry.GridSize

	statFrames   *atomic.Int64
	statResizes  *atomic.Int64
	statIgnored  *atomic.Int64
	statDeferred *atomic.Int64
	statInFlight *atomic.Bool
	statLive     *atomic.Bool
}

// NewCoordinator creates a coordinator bound to its external collaborators
// Initial insets assume a default title bar and a single tab
func NewCoordinator(grid GridEngine, host WindowHost, tun config.Tuning, reg *status.Registry) *Coordinator {
	return &Coordinator{
		grid: grid,
		host: host,
		insets: geometry.Insets{
			Top:    tun.DefaultTitleBarHeight + tun.TitleBarPadding,
			Left:   tun.ContentPaddingLeft,
			Right:  tun.ContentPaddingRight,
			Bottom: tun.ContentPaddingBottom,
		},
		lastGrid: grid.Dimensions(),

		statFrames:   reg.Ints.Get("coordinator.frames_set"),
		statResizes:  reg.Ints.Get("coordinator.grid_resizes"),
		statIgnored:  reg.Ints.Get("coordinator.intents_ignored"),
		statDeferred: reg.Ints.Get("coordinator.frames_deferred"),
		statInFlight: reg.Bools.Get("coordinator.in_flight"),
		statLive:     reg.Bools.Get("coordinator.live_resize"),
	}
}

// Insets returns the chrome insets currently in effect
func (c *Coordinator) Insets() geometry.Insets {
	return c.insets
}

// LastGrid returns the grid size last adopted by the coordinator
func (c *Coordinator) LastGrid() geometry.GridSize {
	return c.lastGrid
}

// LiveResizing reports whether a live-resize gesture is in progress
func (c *Coordinator) LiveResizing() bool {
	return c.liveResize
}

// OnWindowFrameChanged handles a frame-change notification from the host
// During live resize the change is noted and deferred; during an in-flight
// update it is ignored as already satisfied
func (c *Coordinator) OnWindowFrameChanged() {
	if c.inFlight {
		c.statIgnored.Add(1)
		return
	}
	if c.liveResize {
		c.framePending = true
		c.statDeferred.Add(1)
		return
	}
	c.adoptHostFrame()
}

// RequestGridSize adopts an explicit cols x rows request: the window frame
// is recomputed for the requested size (top edge anchored) and the grid is
// instructed to resize
func (c *Coordinator) RequestGridSize(cols, rows int) {
	if cols < 1 || rows < 1 {
		return
	}
	if c.inFlight {
		c.statIgnored.Add(1)
		return
	}
	c.begin()
	defer c.end()

	if c.host.Attached() {
		c.applyFrameFor(cols, rows)
	}
	c.requestResize(cols, rows)
}

// ApplyFont swaps the grid font. With preserveGrid the on-screen cols x rows
// survive the metric change: the frame is recomputed for the same grid size
// under the new metrics, then the dimensions are explicitly re-requested
// because font application alone may transiently change them
func (c *Coordinator) ApplyFont(f Font, preserveGrid bool) {
	if c.inFlight {
		c.statIgnored.Add(1)
		return
	}
	c.begin()
	defer c.end()

	prev := c.grid.Dimensions()
	c.grid.SetFont(f)
	if !preserveGrid {
		return
	}
	if c.host.Attached() {
		c.applyFrameFor(prev.Cols, prev.Rows)
	}
	c.requestResize(prev.Cols, prev.Rows)
}

// OnChromeInsetsChanged adopts new chrome insets without perturbing the
// grid: the frame is recomputed for the current dimensions so the content
// region absorbs the chrome change. During a live-resize drag the new
// insets are stored but the frame is left to the user's hand; adoption
// happens when the gesture ends
func (c *Coordinator) OnChromeInsetsChanged(in geometry.Insets) {
	c.insets = in
	if c.inFlight {
		c.statIgnored.Add(1)
		return
	}
	if c.liveResize {
		c.framePending = true
		c.statDeferred.Add(1)
		return
	}
	c.begin()
	defer c.end()

	dims := c.grid.Dimensions()
	if c.host.Attached() {
		c.applyFrameFor(dims.Cols, dims.Rows)
	}
	c.lastGrid = dims
}

// OnLiveResizeBegin marks the start of a user drag gesture
func (c *Coordinator) OnLiveResizeBegin() {
	c.liveResize = true
	c.statLive.Store(true)
}

// OnLiveResizeEnd finishes the drag gesture and adopts any frame change
// that arrived during it
func (c *Coordinator) OnLiveResizeEnd() {
	c.liveResize = false
	c.statLive.Store(false)
	if c.framePending {
		c.framePending = false
		c.adoptHostFrame()
	}
}

// adoptHostFrame derives the grid size that fits the current host frame
// and instructs the grid to adopt it
func (c *Coordinator) adoptHostFrame() {
	c.begin()
	defer c.end()

	if !c.host.Attached() {
		return
	}
	content := geometry.ContentBounds(c.host.Frame(), c.insets)
	cell := c.grid.CellSize()
	if cell.W <= 0 || cell.H <= 0 {
		return
	}
	cols := int(content.W / cell.W)
	rows := int(content.H / cell.H)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.requestResize(cols, rows)
}

// applyFrameFor sets the window frame that fits cols x rows plus insets,
// anchoring the top edge: max-Y stays fixed, height grows downward.
// Caller holds the in-flight flag, so the host's synchronous frame-change
// callback lands in the ignore path
func (c *Coordinator) applyFrameFor(cols, rows int) {
	opt := c.grid.OptimalPixelSize(cols, rows)
	old := c.host.Frame()
	w := opt.W + c.insets.Left + c.insets.Right
	h := opt.H + c.insets.Top + c.insets.Bottom
	c.host.SetFrame(geometry.Rect{
		X: old.X,
		Y: old.MaxY() - h,
		W: w,
		H: h,
	})
	c.statFrames.Add(1)
}

// requestResize forwards the dimensions to the grid and records them
func (c *Coordinator) requestResize(cols, rows int) {
	c.grid.RequestResize(cols, rows)
	c.lastGrid = geometry.GridSize{Cols: cols, Rows: rows}
	c.statResizes.Add(1)
}

// begin enters ProgrammaticUpdate
func (c *Coordinator) begin() {
	c.inFlight = true
	c.statInFlight.Store(true)
}

// end returns to Idle
func (c *Coordinator) end() {
	c.inFlight = false
	c.statInFlight.Store(false)
}

// IntentTypes implements events.Handler
func (c *Coordinator) IntentTypes() []events.IntentType {
	return []events.IntentType{
		events.IntentWindowFrameChanged,
		events.IntentGridResizeRequested,
		events.IntentFontChanged,
		events.IntentLiveResizeBegan,
		events.IntentLiveResizeEnded,
	}
}

// HandleIntent implements events.Handler
func (c *Coordinator) HandleIntent(in events.Intent) {
	switch in.Type {
	case events.IntentWindowFrameChanged:
		c.OnWindowFrameChanged()
	case events.IntentGridResizeRequested:
		if p, ok := in.Payload.(*events.GridResizePayload); ok {
			c.RequestGridSize(p.Cols, p.Rows)
		}
	case events.IntentFontChanged:
		if p, ok := in.Payload.(*events.FontChangedPayload); ok {
			c.ApplyFont(Font{Name: p.Name, Size: p.Size}, p.PreserveGrid)
		}
	case events.IntentLiveResizeBegan:
		c.OnLiveResizeBegin()
	case events.IntentLiveResizeEnded:
		c.OnLiveResizeEnd()
	}
}
