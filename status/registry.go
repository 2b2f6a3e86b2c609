// Package status provides the atomic metrics registry for the viewport
// subsystem. Components cache metric pointers during setup; hot paths
// write directly to atomics with no map lookups.
//
// The coordinator's backpressure mechanism is the silent no-op (an intent
// ignored while an update is in flight); these counters make those no-ops
// observable without logging.
package status

import "sync/atomic"

// Registry is the central metrics facade
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}
