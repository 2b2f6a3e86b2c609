package viewport

import "github.com/lixenwraith/gridframe/geometry"

// Font describes the active terminal font
type Font struct {
	Name string
	Size float64
}

// GridEngine is the external terminal-emulation engine
// It owns the character grid; the coordinator only requests changes and
// reads the current value
type GridEngine interface {
	// Dimensions returns the current logical grid size
	Dimensions() geometry.GridSize

	// RequestResize asks the engine to adopt cols x rows
	RequestResize(cols, rows int)

	// OptimalPixelSize returns the pixel size needed to display cols x rows
	// under the current font
	OptimalPixelSize(cols, rows int) geometry.Size

	// CellSize returns the pixel size of one character cell under the
	// current font
	CellSize() geometry.Size

	// SetFont swaps the active font; metrics change immediately
	SetFont(f Font)
}

// WindowHost is the host windowing layer
// SetFrame may synchronously call back into the coordinator's frame-change
// notification; the coordinator absorbs that reentrancy
type WindowHost interface {
	// Frame returns the current window frame, bottom-left origin
	Frame() geometry.Rect

	// SetFrame applies a new window frame
	SetFrame(f geometry.Rect)

	// Attached reports whether a window context is available
	// Detached views degrade to property-only updates with no frame change
	Attached() bool
}
