// Package sched provides the cancellable deferred-callback primitive for
// the single-threaded viewport event loop.
//
// All timers in the subsystem (indicator hide deadline, chrome settle
// delay, oscillator cadence) are one-shot callbacks armed on a Scheduler.
// The key contract is cancel-and-replace: arming a superseding callback
// cancels the stale one, it never merely shadows it.
//
// The Scheduler is NOT safe for concurrent use. After, Cancel, and RunDue
// must all happen on the owning loop goroutine; cross-goroutine producers
// hand work over through the events queue instead.
package sched

import "time"

// Deferred is a pending one-shot callback
type Deferred struct {
	deadline time.Time
	seq      uint64
	fn       func()
	done     bool
}

// Cancel prevents the callback from firing
// Returns false if it already fired or was cancelled before
func (d *Deferred) Cancel() bool {
	if d.done {
		return false
	}
	d.done = true
	d.fn = nil
	return true
}

// Pending returns true while the callback is armed and unfired
func (d *Deferred) Pending() bool {
	return !d.done
}

// Scheduler runs one-shot deferred callbacks against an injected Clock
type Scheduler struct {
	clock  Clock
	seq    uint64
	timers []*Deferred
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After arms fn to run once d from now and returns its cancellation handle
func (s *Scheduler) After(d time.Duration, fn func()) *Deferred {
	s.seq++
	t := &Deferred{
		deadline: s.clock.Now().Add(d),
		seq:      s.seq,
		fn:       fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// RunDue fires every armed callback whose deadline has passed, in deadline
// order (arming order breaks ties), and returns the number fired.
// Callbacks may arm new timers; a timer armed during RunDue fires in the
// same pass only if its deadline is already due
func (s *Scheduler) RunDue() int {
	fired := 0
	for {
		t := s.popDue()
		if t == nil {
			break
		}
		fn := t.fn
		t.done = true
		t.fn = nil
		fn()
		fired++
	}
	s.compact()
	return fired
}

// NextDeadline returns the earliest pending deadline, if any
func (s *Scheduler) NextDeadline() (time.Time, bool) {
	var best *Deferred
	for _, t := range s.timers {
		if t.done {
			continue
		}
		if best == nil || t.deadline.Before(best.deadline) ||
			(t.deadline.Equal(best.deadline) && t.seq < best.seq) {
			best = t
		}
	}
	if best == nil {
		return time.Time{}, false
	}
	return best.deadline, true
}

// PendingCount returns the number of armed, unfired callbacks
func (s *Scheduler) PendingCount() int {
	n := 0
	for _, t := range s.timers {
		if !t.done {
			n++
		}
	}
	return n
}

// popDue returns the earliest due pending timer or nil
func (s *Scheduler) popDue() *Deferred {
	now := s.clock.Now()
	var best *Deferred
	for _, t := range s.timers {
		if t.done || t.deadline.After(now) {
			continue
		}
		if best == nil || t.deadline.Before(best.deadline) ||
			(t.deadline.Equal(best.deadline) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// compact drops fired and cancelled timers from the backing slice
func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	s.timers = live
}
