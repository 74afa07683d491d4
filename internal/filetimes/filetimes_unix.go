//go:build linux || darwin

package filetimes

import (
	"time"

	"golang.org/x/sys/unix"
)

// Syscall entry point, swappable so tests can inject interruptions.
var sysUtimesNanoAt = unix.UtimesNanoAt

func setFileTimes(path string, atime, mtime time.Time) error {
	// TimeToTimespec builds the timespec from the split second and
	// fractional fields, so the full time_t range survives; it reports
	// ERANGE where the platform's time_t is too narrow.
	ats, err := unix.TimeToTimespec(atime)
	if err != nil {
		return err
	}
	mts, err := unix.TimeToTimespec(mtime)
	if err != nil {
		return err
	}
	return sysUtimesNanoAt(unix.AT_FDCWD, path, []unix.Timespec{ats, mts}, 0)
}
