//go:build linux

package clock

import "golang.org/x/sys/unix"

const monotonicClockID = unix.CLOCK_MONOTONIC
