package constant

// Content Padding Constants (pixels)
const (
	// ContentPaddingLeft is the fixed gap between the window edge and the grid
	ContentPaddingLeft = 5.0

	// ContentPaddingRight is the fixed gap on the right window edge
	ContentPaddingRight = 5.0

	// ContentPaddingBottom is the fixed gap below the grid
	ContentPaddingBottom = 5.0
)

// Chrome Constants (pixels)
const (
	// TitleBarPadding is breathing room added below the reported title-bar height
	TitleBarPadding = 4.0

	// TabBarIncrement is the extra top inset when more than one tab is present
	// Empirical visual constant, tunable via config
	TabBarIncrement = 7.0

	// DefaultTitleBarHeight is used when no window context is available
	DefaultTitleBarHeight = 22.0
)

// Scroll Indicator Constants (pixels)
const (
	// ScrollIndicatorWidth is the width of the custom indicator knob
	ScrollIndicatorWidth = 7.0

	// ScrollIndicatorInset is the gap between the knob and the container edges
	ScrollIndicatorInset = 2.0

	// MinScrollKnobHeight keeps the knob grabbable on long buffers
	MinScrollKnobHeight = 30.0
)

// Oscillator Grid Bounds (cells)
const (
	// OscillatorMinCols is the lower column bound for the resize oscillator
	OscillatorMinCols = 80

	// OscillatorMinRows is the lower row bound for the resize oscillator
	OscillatorMinRows = 25

	// OscillatorMaxCols is the upper column bound for the resize oscillator
	OscillatorMaxCols = 160

	// OscillatorMaxRows is the upper row bound for the resize oscillator
	OscillatorMaxRows = 60
)
