package viewport

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gridframe/config"
	"github.com/lixenwraith/gridframe/events"
	"github.com/lixenwraith/gridframe/sched"
	"github.com/lixenwraith/gridframe/status"
)

// Direction selects the oscillator's resize direction
type Direction int

const (
	// DirectionIdle stops the oscillator permanently until redirected
	DirectionIdle Direction = iota

	// DirectionGrowing increments toward the upper grid bound
	DirectionGrowing

	// DirectionShrinking decrements toward the lower grid bound
	DirectionShrinking
)

// Oscillator is a self-rescheduling diagnostic driver that exercises the
// Coordinator under sustained load, bouncing the grid between two bounds.
//
// Each tick requests a one-cell delta per axis, clamped to the bounds;
// when both axes sit at the bound the direction flips. Setting
// DirectionIdle cancels the pending tick and the oscillator does not
// self-resume.
type Oscillator struct {
	coord *Coordinator
	grid  GridEngine
	sched *sched.Scheduler
	tun   config.Tuning

	dir     Direction
	pending *sched.Deferred

	statTicks *atomic.Int64
	statFlips *atomic.Int64
}

// NewOscillator creates an idle oscillator driving coord
func NewOscillator(coord *Coordinator, grid GridEngine, scheduler *sched.Scheduler, tun config.Tuning, reg *status.Registry) *Oscillator {
	return &Oscillator{
		coord:     coord,
		grid:      grid,
		sched:     scheduler,
		tun:       tun,
		statTicks: reg.Ints.Get("oscillator.ticks"),
		statFlips: reg.Ints.Get("oscillator.flips"),
	}
}

// Direction returns the current oscillator direction
func (o *Oscillator) Direction() Direction {
	return o.dir
}

// SetDirection starts, redirects, or permanently stops the oscillator
func (o *Oscillator) SetDirection(d Direction) {
	if d == o.dir {
		return
	}
	o.dir = d
	if o.pending != nil {
		o.pending.Cancel()
		o.pending = nil
	}
	if d == DirectionIdle {
		return
	}
	o.schedule()
}

// schedule arms the next tick at the configured cadence, floored at 1ms
// so a tick armed from inside its own callback is never already due
func (o *Oscillator) schedule() {
	d := o.tun.OscillatorTick()
	if d < time.Millisecond {
		d = time.Millisecond
	}
	o.pending = o.sched.After(d, o.tick)
}

// tick requests the next grid delta and reschedules
func (o *Oscillator) tick() {
	o.pending = nil
	if o.dir == DirectionIdle {
		return
	}
	o.statTicks.Add(1)

	dims := o.grid.Dimensions()
	lower := o.tun.OscillatorLower()
	upper := o.tun.OscillatorUpper()

	switch o.dir {
	case DirectionGrowing:
		if dims.Cols >= upper.Cols && dims.Rows >= upper.Rows {
			o.dir = DirectionShrinking
			o.statFlips.Add(1)
		} else {
			cols := min(dims.Cols+1, upper.Cols)
			rows := min(dims.Rows+1, upper.Rows)
			o.coord.RequestGridSize(cols, rows)
		}
	case DirectionShrinking:
		if dims.Cols <= lower.Cols && dims.Rows <= lower.Rows {
			o.dir = DirectionGrowing
			o.statFlips.Add(1)
		} else {
			cols := max(dims.Cols-1, lower.Cols)
			rows := max(dims.Rows-1, lower.Rows)
			o.coord.RequestGridSize(cols, rows)
		}
	}
	o.schedule()
}

// IntentTypes implements events.Handler
func (o *Oscillator) IntentTypes() []events.IntentType {
	return []events.IntentType{events.IntentOscillatorDirection}
}

// HandleIntent implements events.Handler
func (o *Oscillator) HandleIntent(in events.Intent) {
	if p, ok := in.Payload.(*events.OscillatorDirectionPayload); ok {
		o.SetDirection(Direction(p.Direction))
	}
}
