package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a lock-free float64 gauge stored as raw bits
// The zero value reads as 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Store sets the gauge value
func (f *AtomicFloat) Store(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Load reads the gauge value
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add adds delta and returns the new value, retrying on contention
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
