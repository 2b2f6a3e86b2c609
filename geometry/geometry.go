// Package geometry provides the pixel-space value types and pure layout
// math for the viewport subsystem.
//
// Coordinates use a bottom-left origin: Y grows upward, so a window's top
// edge is its maximum Y. All functions are side-effect free and safe to
// call from any goroutine.
package geometry

// Size is a width/height pair in pixel space
type Size struct {
	W, H float64
}

// GridSize is the terminal's logical dimensions in character cells
// Owned by the external grid engine; this package only carries the value
type GridSize struct {
	Cols, Rows int
}

// Insets describes the chrome reserved around the content rectangle
// All fields are >= 0 by construction
type Insets struct {
	Top, Left, Right, Bottom float64
}

// Rect is an axis-aligned rectangle in pixel space, bottom-left origin
type Rect struct {
	X, Y, W, H float64
}

// MaxX returns the rectangle's right edge
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// MaxY returns the rectangle's top edge
func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// ContentBounds returns the sub-rectangle of view available for the grid
// after removing chrome insets. Negative results clamp to zero: a too-small
// view yields an empty rectangle, never an error
func ContentBounds(view Rect, in Insets) Rect {
	w := view.W - in.Left - in.Right
	h := view.H - in.Top - in.Bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{
		X: view.X + in.Left,
		Y: view.Y + in.Bottom,
		W: w,
		H: h,
	}
}
