package filetimes

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flibitijibibo/corefx/internal/portability"
)

func tempFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func disabledSetter() *Setter {
	return NewSetter(portability.NewResolver(portability.Options{}))
}

func TestSetTimesWholeSeconds(t *testing.T) {
	path := tempFile(t)
	s := disabledSetter()

	require.NoError(t, s.SetTimes(path, 1_000_000, 2_000_000))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.True(t, info.ModTime().Equal(time.Unix(2_000_000, 0)))
}

func TestSetTimesMicroRoundTrip(t *testing.T) {
	path := tempFile(t)
	s := disabledSetter()

	require.NoError(t, s.SetTimesMicro(path, 1_234_567, 250_000, 7_654_321, 500_000))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.True(t, info.ModTime().Equal(time.Unix(7_654_321, 500_000*1000)),
		"got %v", info.ModTime())
}

func TestSetTimesFarFutureRoundTrip(t *testing.T) {
	// Past the point where whole seconds stop fitting in an int64 of
	// nanoseconds (mid-2262), but within what common filesystems store.
	const year2300 = int64(10_413_792_000)
	path := tempFile(t)
	s := disabledSetter()

	require.NoError(t, s.SetTimes(path, year2300, year2300))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, year2300, info.ModTime().Unix())

	require.NoError(t, s.SetTimesNano(path, year2300, 0, year2300+1, 0))
	info, err = os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, year2300+1, info.ModTime().Unix())
}

func TestSetTimesNanoRoundTrip(t *testing.T) {
	path := tempFile(t)
	s := disabledSetter()

	require.NoError(t, s.SetTimesNano(path, 1_234_567, 111, 7_654_321, 222))

	info, err := os.Stat(path)
	require.NoError(t, err)
	// Filesystems may truncate sub-second precision, but the seconds
	// survive everywhere.
	require.Equal(t, int64(7_654_321), info.ModTime().Unix())
}

func TestSetTimesNanoTimeNow(t *testing.T) {
	path := tempFile(t)
	s := disabledSetter()
	require.NoError(t, s.SetTimesMicro(path, 1000, 0, 1000, 0))

	require.NoError(t, s.SetTimesNano(path, 0, TimeNow, 0, TimeNow))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now(), info.ModTime(), 5*time.Second)
}

func TestSetTimesNanoTimeOmitKeepsModTime(t *testing.T) {
	path := tempFile(t)
	s := disabledSetter()
	require.NoError(t, s.SetTimesMicro(path, 1000, 0, 2000, 0))

	require.NoError(t, s.SetTimesNano(path, 3000, 0, 0, TimeOmit))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(2000), info.ModTime().Unix())
}

func TestMissingFileReturnsNotFound(t *testing.T) {
	s := disabledSetter()
	err := s.SetTimesMicro(filepath.Join(t.TempDir(), "missing"), 1, 0, 1, 0)
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFallbackMissRestoresNotFound(t *testing.T) {
	s := NewSetter(portability.NewResolver(portability.Options{IgnoreCase: true}))
	err := s.SetTimes(filepath.Join(t.TempDir(), "missing"), 1, 1)
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFallbackFindsCaseMismatch(t *testing.T) {
	dir := t.TempDir()
	actual := filepath.Join(dir, "Notes.TXT")
	require.NoError(t, os.WriteFile(actual, []byte("x"), 0o644))

	s := NewSetter(portability.NewResolver(portability.Options{IgnoreCase: true}))
	require.NoError(t, s.SetTimes(filepath.Join(dir, "notes.txt"), 5000, 6000))

	info, err := os.Stat(actual)
	require.NoError(t, err)
	require.Equal(t, int64(6000), info.ModTime().Unix())
}

func TestRetryOnInterruptStopsOnDefinitiveResult(t *testing.T) {
	calls := 0
	err := retryOnInterrupt(func() error {
		calls++
		if calls < 3 {
			return syscall.EINTR
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)

	sentinel := errors.New("boom")
	calls = 0
	err = retryOnInterrupt(func() error {
		calls++
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 1, calls)
}
