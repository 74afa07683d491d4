package clock

import (
	_ "unsafe" // for go:linkname
)

// nanotime is the runtime's raw monotonic tick counter. It is the same
// counter the runtime uses for timers, so it is available wherever Go
// runs.
//
//go:noescape
//go:linkname nanotime runtime.nanotime
func nanotime() int64

func probeTickCounter() bool {
	// The runtime cannot schedule without its clock, so the counter is
	// usable whenever this code runs at all.
	return true
}
