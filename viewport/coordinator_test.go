package viewport

import (
	"testing"

	"github.com/lixenwraith/gridframe/geometry"
)

// TestRequestGridSizeAnchorsTopEdge verifies the window's top edge and
// left edge stay fixed across a grid-size request; only width and the
// downward extent change
func TestRequestGridSizeAnchorsTopEdge(t *testing.T) {
	r := newRig(80, 24)
	before := r.win.Frame()

	r.coord.RequestGridSize(100, 40)

	after := r.win.Frame()
	if after.MaxY() != before.MaxY() {
		t.Errorf("Top edge moved: before maxY=%v, after maxY=%v", before.MaxY(), after.MaxY())
	}
	if after.X != before.X {
		t.Errorf("Left edge moved: before x=%v, after x=%v", before.X, after.X)
	}

	cell := r.grid.CellSize()
	in := r.coord.Insets()
	wantW := 100*cell.W + in.Left + in.Right
	wantH := 40*cell.H + in.Top + in.Bottom
	if after.W != wantW || after.H != wantH {
		t.Errorf("Frame size mismatch: got %vx%v, want %vx%v", after.W, after.H, wantW, wantH)
	}

	if r.grid.Dimensions() != (geometry.GridSize{Cols: 100, Rows: 40}) {
		t.Errorf("Grid did not adopt request: %+v", r.grid.Dimensions())
	}
}

// TestReentrantFrameChangeIgnored verifies the coordination hazard policy:
// the host's synchronous frame-change callback from inside the
// coordinator's own SetFrame call must be a no-op
func TestReentrantFrameChangeIgnored(t *testing.T) {
	r := newRig(80, 24)

	r.coord.RequestGridSize(90, 30)

	// Exactly one grid resize: the explicit request. The reentrant
	// notification must not have triggered a second adoption
	if r.grid.resizes != 1 {
		t.Errorf("Expected 1 grid resize, got %d", r.grid.resizes)
	}
	if r.grid.Dimensions() != (geometry.GridSize{Cols: 90, Rows: 30}) {
		t.Errorf("Inner callback altered grid: %+v", r.grid.Dimensions())
	}
	if got := r.reg.Ints.Get("coordinator.intents_ignored").Load(); got != 1 {
		t.Errorf("Expected 1 ignored intent, got %d", got)
	}
}

// TestFontChangePreservesGrid verifies a font swap with preserveGrid keeps
// the on-screen dimensions even though pixel metrics changed
func TestFontChangePreservesGrid(t *testing.T) {
	r := newRig(80, 24)
	// Fit the frame to the grid under the current font first
	r.coord.RequestGridSize(80, 24)
	frameBefore := r.win.Frame()

	r.coord.ApplyFont(Font{Name: "Test Mono", Size: 18}, true)

	if r.grid.Dimensions() != (geometry.GridSize{Cols: 80, Rows: 24}) {
		t.Errorf("Grid dimensions not preserved: %+v", r.grid.Dimensions())
	}
	if r.grid.font.Size != 18 {
		t.Errorf("Font not applied: %+v", r.grid.font)
	}

	// Larger font, same grid: the window must have grown downward with the
	// top edge anchored
	frameAfter := r.win.Frame()
	if frameAfter.MaxY() != frameBefore.MaxY() {
		t.Errorf("Top edge moved on font change")
	}
	if frameAfter.H <= frameBefore.H {
		t.Errorf("Expected taller frame under larger font: %v -> %v", frameBefore.H, frameAfter.H)
	}
}

// TestFontChangeWithoutPreserve verifies the non-preserving path applies
// the font and leaves frame adoption to the engine
func TestFontChangeWithoutPreserve(t *testing.T) {
	r := newRig(80, 24)
	frameBefore := r.win.Frame()

	r.coord.ApplyFont(Font{Name: "Test Mono", Size: 11}, false)

	if r.grid.font.Size != 11 {
		t.Errorf("Font not applied: %+v", r.grid.font)
	}
	if r.win.Frame() != frameBefore {
		t.Errorf("Frame changed without preserve: %+v", r.win.Frame())
	}
}

// TestLiveResizeSuppression verifies frame intents during a drag gesture
// do not alter grid size and adoption happens once the gesture ends
func TestLiveResizeSuppression(t *testing.T) {
	r := newRig(80, 24)
	dimsBefore := r.grid.Dimensions()

	r.coord.OnLiveResizeBegin()

	// User drags the window smaller; toolkit reports the frame change
	r.win.frame = geometry.Rect{X: 100, Y: 300, W: 400, H: 400}
	r.coord.OnWindowFrameChanged()

	if r.grid.Dimensions() != dimsBefore {
		t.Errorf("Grid changed during live resize: %+v", r.grid.Dimensions())
	}

	r.coord.OnLiveResizeEnd()

	// Deferred adoption: the grid now fits the dragged frame
	cell := r.grid.CellSize()
	content := geometry.ContentBounds(r.win.Frame(), r.coord.Insets())
	want := geometry.GridSize{
		Cols: int(content.W / cell.W),
		Rows: int(content.H / cell.H),
	}
	if r.grid.Dimensions() != want {
		t.Errorf("Expected deferred adoption to %+v, got %+v", want, r.grid.Dimensions())
	}
}

// TestFrameChangeAfterLiveResizeProcessed verifies an intent arriving
// immediately after the gesture ends is handled normally
func TestFrameChangeAfterLiveResizeProcessed(t *testing.T) {
	r := newRig(80, 24)

	r.coord.OnLiveResizeBegin()
	r.coord.OnLiveResizeEnd()

	r.win.frame = geometry.Rect{X: 100, Y: 100, W: 500, H: 380}
	r.coord.OnWindowFrameChanged()

	cell := r.grid.CellSize()
	content := geometry.ContentBounds(r.win.Frame(), r.coord.Insets())
	want := geometry.GridSize{
		Cols: int(content.W / cell.W),
		Rows: int(content.H / cell.H),
	}
	if r.grid.Dimensions() != want {
		t.Errorf("Post-gesture intent not processed: got %+v, want %+v", r.grid.Dimensions(), want)
	}
}

// TestDetachedWindowDegrades verifies property-only updates when no window
// context is available: grid and font still change, frame does not
func TestDetachedWindowDegrades(t *testing.T) {
	r := newRig(80, 24)
	r.win.attached = false
	frameBefore := r.win.Frame()

	r.coord.RequestGridSize(120, 50)
	if r.grid.Dimensions() != (geometry.GridSize{Cols: 120, Rows: 50}) {
		t.Errorf("Grid request dropped while detached: %+v", r.grid.Dimensions())
	}

	r.coord.ApplyFont(Font{Name: "Test Mono", Size: 15}, true)
	if r.grid.Dimensions() != (geometry.GridSize{Cols: 120, Rows: 50}) {
		t.Errorf("Preserve failed while detached: %+v", r.grid.Dimensions())
	}

	if r.win.setFrames != 0 || r.win.Frame() != frameBefore {
		t.Errorf("Frame touched while detached: %d sets", r.win.setFrames)
	}
}

// TestChromeInsetsChangeKeepsGrid verifies a tab-bar appearance resizes
// the window, not the grid
func TestChromeInsetsChangeKeepsGrid(t *testing.T) {
	r := newRig(80, 24)
	r.coord.RequestGridSize(80, 24)
	dimsBefore := r.grid.Dimensions()
	frameBefore := r.win.Frame()

	in := r.coord.Insets()
	in.Top += r.tun.TabBarIncrement
	r.coord.OnChromeInsetsChanged(in)

	if r.grid.Dimensions() != dimsBefore {
		t.Errorf("Insets change perturbed grid: %+v", r.grid.Dimensions())
	}
	after := r.win.Frame()
	if after.MaxY() != frameBefore.MaxY() {
		t.Errorf("Top edge moved on insets change")
	}
	if after.H != frameBefore.H+r.tun.TabBarIncrement {
		t.Errorf("Expected frame to absorb exactly the tab-bar increment: %v -> %v", frameBefore.H, after.H)
	}
}

// TestChromeInsetsDuringLiveResizeDeferred verifies an inset delivery
// arriving mid-drag stores the insets but leaves the frame to the user's
// hand; the gesture end adopts the dragged frame under the new insets
func TestChromeInsetsDuringLiveResizeDeferred(t *testing.T) {
	r := newRig(80, 24)
	r.coord.RequestGridSize(80, 24)
	setsBefore := r.win.setFrames

	r.coord.OnLiveResizeBegin()

	in := r.coord.Insets()
	in.Top += r.tun.TabBarIncrement
	r.coord.OnChromeInsetsChanged(in)

	if r.win.setFrames != setsBefore {
		t.Errorf("Frame set during live resize: %d sets", r.win.setFrames-setsBefore)
	}
	if r.coord.Insets() != in {
		t.Errorf("New insets not stored: %+v", r.coord.Insets())
	}

	r.coord.OnLiveResizeEnd()

	// Deferred adoption fits the grid to the untouched frame under the
	// new insets
	cell := r.grid.CellSize()
	content := geometry.ContentBounds(r.win.Frame(), in)
	want := geometry.GridSize{
		Cols: int(content.W / cell.W),
		Rows: int(content.H / cell.H),
	}
	if r.grid.Dimensions() != want {
		t.Errorf("Expected post-gesture adoption to %+v, got %+v", want, r.grid.Dimensions())
	}
}

// TestStatusFlagsTrackStates verifies the registry booleans mirror the
// in-flight and live-resize states
func TestStatusFlagsTrackStates(t *testing.T) {
	r := newRig(80, 24)
	inFlight := r.reg.Bools.Get("coordinator.in_flight")
	live := r.reg.Bools.Get("coordinator.live_resize")

	// The reentrant host callback observes the in-flight window
	var seenInFlight bool
	orig := r.win.onFrame
	r.win.onFrame = func() {
		seenInFlight = inFlight.Load()
		orig()
	}
	r.coord.RequestGridSize(90, 30)
	if !seenInFlight {
		t.Error("Expected in-flight flag set during programmatic update")
	}
	if inFlight.Load() {
		t.Error("Expected in-flight flag cleared after update")
	}

	r.coord.OnLiveResizeBegin()
	if !live.Load() {
		t.Error("Expected live-resize flag set during gesture")
	}
	r.coord.OnLiveResizeEnd()
	if live.Load() {
		t.Error("Expected live-resize flag cleared after gesture")
	}
}

// TestInvalidGridRequestRejected verifies degenerate requests are dropped
func TestInvalidGridRequestRejected(t *testing.T) {
	r := newRig(80, 24)

	r.coord.RequestGridSize(0, 24)
	r.coord.RequestGridSize(80, -1)

	if r.grid.resizes != 0 {
		t.Errorf("Degenerate request reached grid: %d resizes", r.grid.resizes)
	}
}
