//go:build linux || darwin

package filetimes

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/flibitijibibo/corefx/internal/portability"
)

func TestInterruptedSyscallIsInvisible(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	real := sysUtimesNanoAt
	calls := 0
	sysUtimesNanoAt = func(dirfd int, p string, ts []unix.Timespec, flags int) error {
		calls++
		if calls < 4 {
			return unix.EINTR
		}
		return real(dirfd, p, ts, flags)
	}
	t.Cleanup(func() { sysUtimesNanoAt = real })

	s := disabledSetter()
	require.NoError(t, s.SetTimesMicro(path, 100, 0, 200, 0))
	require.Equal(t, 4, calls)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(200), info.ModTime().Unix())
}

func TestInterruptedFallbackRetriesToo(t *testing.T) {
	dir := t.TempDir()
	actual := filepath.Join(dir, "Data.bin")
	require.NoError(t, os.WriteFile(actual, []byte("x"), 0o644))

	real := sysUtimesNanoAt
	interruptsLeft := 2
	sysUtimesNanoAt = func(dirfd int, p string, ts []unix.Timespec, flags int) error {
		if interruptsLeft > 0 {
			interruptsLeft--
			return unix.EINTR
		}
		return real(dirfd, p, ts, flags)
	}
	t.Cleanup(func() { sysUtimesNanoAt = real })

	s := NewSetter(portability.NewResolver(portability.Options{IgnoreCase: true}))
	require.NoError(t, s.SetTimes(filepath.Join(dir, "data.bin"), 100, 300))

	info, err := os.Stat(actual)
	require.NoError(t, err)
	require.Equal(t, int64(300), info.ModTime().Unix())
}

func TestAccessTimeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	s := disabledSetter()
	require.NoError(t, s.SetTimesMicro(path, 4000, 0, 5000, 0))

	info, err := os.Stat(path)
	require.NoError(t, err)
	atime, ok := accessTime(info)
	require.True(t, ok)
	require.True(t, atime.Equal(time.Unix(4000, 0)))
}

func TestSetTimesNanoTimeOmitKeepsAccessTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	s := disabledSetter()
	require.NoError(t, s.SetTimesMicro(path, 4000, 0, 5000, 0))
	require.NoError(t, s.SetTimesNano(path, 0, TimeOmit, 9000, 0))

	info, err := os.Stat(path)
	require.NoError(t, err)
	atime, ok := accessTime(info)
	require.True(t, ok)
	require.True(t, atime.Equal(time.Unix(4000, 0)))
	require.Equal(t, int64(9000), info.ModTime().Unix())
}
