// Package events carries resize and chrome intents from toolkit callbacks
// to the viewport components.
//
// Host-toolkit adapters may run on their own goroutines (signal handlers,
// input pollers); they push intents into the lock-free Queue. The UI loop
// consumes the queue through a Router, which dispatches to registered
// handlers in FIFO order. Within the loop, components may also call each
// other directly; the queue exists for cross-goroutine ingress, not for
// intra-loop signaling.
package events

import "time"

// IntentType identifies a viewport intent
type IntentType int

const (
	// IntentWindowFrameChanged signals the host window frame moved or resized
	// Trigger: host frame callback | Consumer: Coordinator | Payload: nil
	IntentWindowFrameChanged IntentType = iota

	// IntentGridResizeRequested signals an explicit cols x rows request
	// Trigger: menu item, oscillator, API caller
	// Consumer: Coordinator | Payload: *GridResizePayload
	IntentGridResizeRequested

	// IntentFontChanged signals the active font was swapped
	// Trigger: font panel glue
	// Consumer: Coordinator | Payload: *FontChangedPayload
	IntentFontChanged

	// IntentChromeContextChanged signals title-bar height or tab count changed
	// Trigger: tab-group / window chrome callbacks
	// Consumer: InsetTracker | Payload: *ChromeContextPayload
	IntentChromeContextChanged

	// IntentLiveResizeBegan signals the user started dragging a window edge
	// Consumer: Coordinator, ScrollIndicator | Payload: nil
	IntentLiveResizeBegan

	// IntentLiveResizeEnded signals the drag gesture finished
	// Consumer: Coordinator, ScrollIndicator | Payload: nil
	IntentLiveResizeEnded

	// IntentScrollInput signals scroll wheel or scrollbar activity
	// Consumer: ScrollIndicator | Payload: *ScrollInputPayload
	IntentScrollInput

	// IntentOscillatorDirection changes the continuous-resize driver direction
	// Trigger: demo/diagnostic key binding
	// Consumer: Oscillator | Payload: *OscillatorDirectionPayload
	IntentOscillatorDirection
)

// Intent is a single transient viewport intent with metadata
type Intent struct {
	Type      IntentType
	Payload   any
	Timestamp time.Time
}

// GridResizePayload carries an explicit grid dimension request
type GridResizePayload struct {
	Cols, Rows int
}

// FontChangedPayload carries the new font and the preserve-grid policy
type FontChangedPayload struct {
	Name         string
	Size         float64
	PreserveGrid bool
}

// ChromeContextPayload carries host-reported chrome measurements
// TitleBarHeight <= 0 means no window context is available
type ChromeContextPayload struct {
	TitleBarHeight float64
	TabCount       int
}

// ScrollInputPayload reports whether the scroll landed inside the container
type ScrollInputPayload struct {
	Inside bool
}

// OscillatorDirectionPayload carries the requested oscillator direction
// Value matches viewport.Direction
type OscillatorDirectionPayload struct {
	Direction int
}
