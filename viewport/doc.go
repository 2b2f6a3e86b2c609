// Package viewport keeps four interdependent quantities consistent for a
// terminal-emulator frontend: the logical grid size, the active font's
// pixel metrics, the window frame, and the transient chrome insets.
//
// Components:
//   - Coordinator: serializes grid-size and window-frame intent so they
//     never recursively trigger each other
//   - InsetTracker: recomputes chrome insets from title-bar height and
//     tab count, with a settle-delay debounce
//   - ScrollIndicator: maps scrollbar state to an indicator rectangle and
//     runs the auto-hide fade machine
//   - Oscillator: self-rescheduling continuous-resize stress driver
//
// Everything runs on a single UI loop goroutine. Timers are one-shot
// deferred callbacks on a sched.Scheduler; cross-goroutine producers push
// intents through events.Queue. The only shared-state discipline is the
// Coordinator's in-flight flag: check and set it before mutating frame or
// grid, clear it before returning to the event source.
package viewport
