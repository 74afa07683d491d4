//go:build darwin

package clock

import "golang.org/x/sys/unix"

// CLOCK_UPTIME_RAW is the clock_gettime face of mach_absolute_time.
const monotonicClockID = unix.CLOCK_UPTIME_RAW
