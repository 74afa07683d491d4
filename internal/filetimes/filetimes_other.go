//go:build !linux && !darwin

package filetimes

import (
	"os"
	"time"
)

// os.Chtimes covers the platforms without utimes-family syscalls at the
// cost of sub-second precision being filesystem dependent.
func setFileTimes(path string, atime, mtime time.Time) error {
	return os.Chtimes(path, atime, mtime)
}

func accessTime(info os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
