package viewport

import (
	"sync/atomic"

	"github.com/lixenwraith/gridframe/config"
	"github.com/lixenwraith/gridframe/events"
	"github.com/lixenwraith/gridframe/geometry"
	"github.com/lixenwraith/gridframe/sched"
	"github.com/lixenwraith/gridframe/status"
)

// InsetSink receives recomputed chrome insets
// The Coordinator is the production sink
type InsetSink interface {
	OnChromeInsetsChanged(in geometry.Insets)
}

// InsetTracker observes title-bar height and tab-group count and
// recomputes the chrome insets consumed by the geometry math.
//
// Chrome notifications arrive in bursts while the toolkit settles tab-bar
// geometry, so delivery to the sink is debounced by a settle delay; a new
// recomputation cancels and replaces the pending delivery. The tracker
// never touches the window frame or grid itself.
type InsetTracker struct {
	tun   config.Tuning
	sched *sched.Scheduler
	sink  InsetSink

	current geometry.Insets
	settle  *sched.Deferred

	statChanges *atomic.Int64
}

// NewInsetTracker creates a tracker delivering inset changes to sink
func NewInsetTracker(tun config.Tuning, scheduler *sched.Scheduler, sink InsetSink, reg *status.Registry) *InsetTracker {
	return &InsetTracker{
		tun:   tun,
		sched: scheduler,
		sink:  sink,
		current: geometry.Insets{
			Top:    tun.DefaultTitleBarHeight + tun.TitleBarPadding,
			Left:   tun.ContentPaddingLeft,
			Right:  tun.ContentPaddingRight,
			Bottom: tun.ContentPaddingBottom,
		},
		statChanges: reg.Ints.Get("tracker.inset_changes"),
	}
}

// CurrentInsets returns the most recently computed insets
func (t *InsetTracker) CurrentInsets() geometry.Insets {
	return t.current
}

// OnChromeContextChanged recomputes the top inset from host-reported
// chrome. A non-positive titleBarHeight means no window context is
// available and the default height applies. More than one tab adds the
// fixed tab-bar increment
func (t *InsetTracker) OnChromeContextChanged(titleBarHeight float64, tabCount int) {
	tb := titleBarHeight
	if tb <= 0 {
		tb = t.tun.DefaultTitleBarHeight
	}
	top := tb + t.tun.TitleBarPadding
	if tabCount > 1 {
		top += t.tun.TabBarIncrement
	}

	next := geometry.Insets{
		Top:    top,
		Left:   t.tun.ContentPaddingLeft,
		Right:  t.tun.ContentPaddingRight,
		Bottom: t.tun.ContentPaddingBottom,
	}
	if next == t.current {
		return
	}
	t.current = next
	t.statChanges.Add(1)

	// Cancel-and-replace: only the last recomputation in the settle
	// window reaches the sink
	if t.settle != nil {
		t.settle.Cancel()
		t.settle = nil
	}
	if t.tun.ChromeSettle() <= 0 {
		t.sink.OnChromeInsetsChanged(next)
		return
	}
	t.settle = t.sched.After(t.tun.ChromeSettle(), func() {
		t.settle = nil
		t.sink.OnChromeInsetsChanged(t.current)
	})
}

// IntentTypes implements events.Handler
func (t *InsetTracker) IntentTypes() []events.IntentType {
	return []events.IntentType{events.IntentChromeContextChanged}
}

// HandleIntent implements events.Handler
func (t *InsetTracker) HandleIntent(in events.Intent) {
	if p, ok := in.Payload.(*events.ChromeContextPayload); ok {
		t.OnChromeContextChanged(p.TitleBarHeight, p.TabCount)
	}
}
