// Package clock selects and queries the host's monotonic time primitive.
//
// Primitive selection is a runtime capability-detection step performed
// once; the result is an immutable Source that callers hold on to. All
// timestamps produced by one Source come from the same primitive, so
// deltas between them are meaningful within a process.
package clock

import (
	"sync"
)

const (
	nanosPerSecond  = 1000000000
	microsPerSecond = 1000000
)

// Kind identifies the primitive backing a Source.
type Kind int

const (
	// KindUnsupported is the zero value; the Source cannot produce
	// timestamps.
	KindUnsupported Kind = iota
	// KindMonotonic is the OS high-resolution monotonic clock.
	KindMonotonic
	// KindTickCounter is the runtime's raw tick counter.
	KindTickCounter
	// KindWallFallback is a coarse wall-clock fallback. Subject to clock
	// adjustments; used only when nothing better exists.
	KindWallFallback
)

func (k Kind) String() string {
	switch k {
	case KindMonotonic:
		return "monotonic"
	case KindTickCounter:
		return "tick-counter"
	case KindWallFallback:
		return "wall-fallback"
	default:
		return "unsupported"
	}
}

// Source is an immutable handle on the primitive selected at detection.
// The zero value is unsupported.
type Source struct {
	kind           Kind
	ticksPerSecond uint64
}

// Kind returns the primitive backing this source.
func (s Source) Kind() Kind { return s.kind }

// Supported reports whether the source can produce timestamps.
func (s Source) Supported() bool { return s.kind != KindUnsupported }

// TicksPerSecond returns the fixed tick rate of the source. Zero when
// unsupported.
func (s Source) TicksPerSecond() uint64 { return s.ticksPerSecond }

// Now returns the current raw tick value. Every call on one Source uses
// the primitive selected at detection. The boolean is false only when the
// underlying query fails, which for the monotonic and tick-counter
// primitives does not happen on a healthy system.
func (s Source) Now() (uint64, bool) {
	switch s.kind {
	case KindMonotonic:
		return monotonicNow()
	case KindTickCounter:
		return uint64(nanotime()), true
	case KindWallFallback:
		return wallNow()
	default:
		return 0, false
	}
}

// Detect probes the host for a usable primitive, in preference order:
// OS monotonic clock, runtime tick counter, wall-clock fallback. The
// probe verifies the monotonic clock actually answers so Now never has to
// branch on availability.
func Detect() Source {
	if probeMonotonic() {
		return Source{kind: KindMonotonic, ticksPerSecond: nanosPerSecond}
	}
	if probeTickCounter() {
		return Source{kind: KindTickCounter, ticksPerSecond: nanosPerSecond}
	}
	if _, ok := wallNow(); ok {
		return Source{kind: KindWallFallback, ticksPerSecond: wallTicksPerSecond}
	}
	return Source{}
}

var (
	defaultOnce   sync.Once
	defaultSource Source
)

// Default returns the process-wide Source, detecting it on first use.
func Default() Source {
	defaultOnce.Do(func() {
		defaultSource = Detect()
	})
	return defaultSource
}

// AbsoluteNow returns the raw runtime tick counter, the analogue of a
// hardware absolute-time register. Ticks are nanoseconds, so the timebase
// conversion fraction is the identity.
func AbsoluteNow() (uint64, bool) {
	if !probeTickCounter() {
		return 0, false
	}
	return uint64(nanotime()), true
}

// TimebaseInfo returns the fraction converting AbsoluteNow ticks to
// nanoseconds.
func TimebaseInfo() (numer, denom uint32) {
	return 1, 1
}
