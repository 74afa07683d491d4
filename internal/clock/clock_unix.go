//go:build linux || darwin

package clock

import (
	"golang.org/x/sys/unix"
)

const wallTicksPerSecond = microsPerSecond

// probeMonotonic verifies clock_gettime answers for the monotonic clock
// id. Resolution queries call this up front so the hot Now path never has
// to branch on availability.
func probeMonotonic() bool {
	var ts unix.Timespec
	return unix.ClockGettime(monotonicClockID, &ts) == nil
}

func monotonicNow() (uint64, bool) {
	var ts unix.Timespec
	if err := unix.ClockGettime(monotonicClockID, &ts); err != nil {
		return 0, false
	}
	return uint64(ts.Sec)*nanosPerSecond + uint64(ts.Nsec), true
}

// wallNow is the gettimeofday fallback tier. Microsecond ticks.
func wallNow() (uint64, bool) {
	var tv unix.Timeval
	if err := unix.Gettimeofday(&tv); err != nil {
		return 0, false
	}
	return uint64(tv.Sec)*microsPerSecond + uint64(tv.Usec), true
}
