package viewport

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gridframe/config"
	"github.com/lixenwraith/gridframe/events"
	"github.com/lixenwraith/gridframe/geometry"
	"github.com/lixenwraith/gridframe/sched"
	"github.com/lixenwraith/gridframe/status"
)

// ScrollIndicator maps external scrollbar state onto a custom indicator
// rectangle and runs the auto-hide fade machine.
//
// Two states, Hidden and Shown. Scroll input inside the container shows
// the knob and arms the hide deadline; a new qualifying scroll re-arms the
// single pending timer rather than stacking another. A live-resize gesture
// hard-cuts to Hidden with no animation and suppresses scroll input until
// the gesture ends.
type ScrollIndicator struct {
	tun   config.Tuning
	clock sched.Clock
	sched *sched.Scheduler

	shown      bool
	suppressed bool
	hide       *sched.Deferred

	fadeFrom  float64
	fadeTo    float64
	fadeStart time.Time
	fadeDur   time.Duration

	statShows *atomic.Int64
	statHides *atomic.Int64
}

// NewScrollIndicator creates an indicator in the Hidden state
func NewScrollIndicator(tun config.Tuning, clock sched.Clock, scheduler *sched.Scheduler, reg *status.Registry) *ScrollIndicator {
	return &ScrollIndicator{
		tun:       tun,
		clock:     clock,
		sched:     scheduler,
		statShows: reg.Ints.Get("indicator.shows"),
		statHides: reg.Ints.Get("indicator.hides"),
	}
}

// Rect maps scrollbar state onto the indicator's pixel rectangle.
// position and knobProportion are clamped into [0,1]. The coordinate
// origin is bottom-left and position 0 is the top of the buffer, so the
// knob travel is inverted
func (s *ScrollIndicator) Rect(container geometry.Rect, position, knobProportion float64) geometry.Rect {
	position = clamp01(position)
	knobProportion = clamp01(knobProportion)

	inset := s.tun.IndicatorInset
	trackH := container.H - 2*inset
	if trackH < 0 {
		trackH = 0
	}
	knobH := trackH * knobProportion
	if knobH < s.tun.MinKnobHeight {
		knobH = s.tun.MinKnobHeight
	}
	if knobH > trackH {
		knobH = trackH
	}
	travel := trackH - knobH
	return geometry.Rect{
		X: container.MaxX() - s.tun.IndicatorWidth - inset,
		Y: container.Y + inset + travel*(1-position),
		W: s.tun.IndicatorWidth,
		H: knobH,
	}
}

// OnScrollInput feeds a scroll event into the visibility machine
// Events outside the container or during a live resize are ignored
func (s *ScrollIndicator) OnScrollInput(inside bool) {
	if s.suppressed || !inside {
		return
	}
	if s.hide != nil {
		s.hide.Cancel()
		s.hide = nil
	}
	if !s.shown {
		s.shown = true
		s.statShows.Add(1)
		s.beginFade(1, s.tun.ShowFade())
	}
	s.hide = s.sched.After(s.tun.HideDelay(), s.hideDeadline)
}

// OnLiveResizeBegin hides the indicator immediately with no animation and
// suppresses scroll input for the duration of the gesture
func (s *ScrollIndicator) OnLiveResizeBegin() {
	s.suppressed = true
	if s.hide != nil {
		s.hide.Cancel()
		s.hide = nil
	}
	if s.shown {
		s.shown = false
		s.statHides.Add(1)
	}
	// Hard cut
	s.fadeFrom = 0
	s.fadeTo = 0
	s.fadeDur = 0
}

// OnLiveResizeEnd lifts the scroll-input suppression
func (s *ScrollIndicator) OnLiveResizeEnd() {
	s.suppressed = false
}

// Shown reports whether the indicator is in the Shown state
func (s *ScrollIndicator) Shown() bool {
	return s.shown
}

// Opacity returns the indicator alpha at the given instant, interpolating
// the current fade ramp
func (s *ScrollIndicator) Opacity(now time.Time) float64 {
	if s.fadeDur <= 0 {
		return s.fadeTo
	}
	elapsed := now.Sub(s.fadeStart)
	if elapsed <= 0 {
		return s.fadeFrom
	}
	if elapsed >= s.fadeDur {
		return s.fadeTo
	}
	frac := float64(elapsed) / float64(s.fadeDur)
	return s.fadeFrom + (s.fadeTo-s.fadeFrom)*frac
}

// hideDeadline fires when the hide delay elapses with no new scroll input
func (s *ScrollIndicator) hideDeadline() {
	s.hide = nil
	if !s.shown {
		return
	}
	s.shown = false
	s.statHides.Add(1)
	s.beginFade(0, s.tun.HideFade())
}

// beginFade starts a ramp from the current opacity toward target
func (s *ScrollIndicator) beginFade(target float64, dur time.Duration) {
	now := s.clock.Now()
	s.fadeFrom = s.Opacity(now)
	s.fadeTo = target
	s.fadeStart = now
	s.fadeDur = dur
}

// IntentTypes implements events.Handler
func (s *ScrollIndicator) IntentTypes() []events.IntentType {
	return []events.IntentType{
		events.IntentScrollInput,
		events.IntentLiveResizeBegan,
		events.IntentLiveResizeEnded,
	}
}

// HandleIntent implements events.Handler
func (s *ScrollIndicator) HandleIntent(in events.Intent) {
	switch in.Type {
	case events.IntentScrollInput:
		if p, ok := in.Payload.(*events.ScrollInputPayload); ok {
			s.OnScrollInput(p.Inside)
		}
	case events.IntentLiveResizeBegan:
		s.OnLiveResizeBegin()
	case events.IntentLiveResizeEnded:
		s.OnLiveResizeEnd()
	}
}

// clamp01 clamps v into [0,1]
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
