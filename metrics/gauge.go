// Package metrics provides lock-free numeric gauges for publishing search
// progress (the best fitness seen) to the visualization
// server without contending with the mutex an HTTP collaborator holds
// around applander.App.
package metrics

import (
	"math"
	"sync/atomic"
	"unsafe"
)

// Gauge encapsulates a float64 for non-locking atomic reads and writes.
type Gauge struct {
	val float64
}

// NewGauge returns a Gauge initialized to val.
func NewGauge(val float64) *Gauge {
	return &Gauge{val: val}
}

// Read atomically loads the current value.
func (g *Gauge) Read() float64 {
	bits := atomic.LoadUint64((*uint64)(unsafe.Pointer(&g.val)))
	return math.Float64frombits(bits)
}

// Set atomically stores a new value.
func (g *Gauge) Set(newVal float64) {
	atomic.StoreUint64((*uint64)(unsafe.Pointer(&g.val)), math.Float64bits(newVal))
}

// CompareAndSwap atomically replaces the value if it still equals old,
// for callers that need to combine a read-modify-write without racing
// other writers (e.g. tracking a running maximum).
func (g *Gauge) CompareAndSwap(old, newVal float64) bool {
	return atomic.CompareAndSwapUint64(
		(*uint64)(unsafe.Pointer(&g.val)),
		math.Float64bits(old),
		math.Float64bits(newVal))
}

// RaiseTo atomically sets the gauge to newVal if it is larger than the
// current value, retrying under concurrent writers.
func (g *Gauge) RaiseTo(newVal float64) {
	for {
		old := g.Read()
		if newVal <= old {
			return
		}
		if g.CompareAndSwap(old, newVal) {
			return
		}
	}
}
