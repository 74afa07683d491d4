//go:build !linux && !darwin

package clock

import "time"

const wallTicksPerSecond = nanosPerSecond

// No clock_gettime here; detection falls through to the runtime tick
// counter.
func probeMonotonic() bool {
	return false
}

func monotonicNow() (uint64, bool) {
	return 0, false
}

func wallNow() (uint64, bool) {
	return uint64(time.Now().UnixNano()), true
}
