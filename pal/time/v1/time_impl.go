package v1

import (
	"context"
	"errors"
	"io/fs"
	"syscall"

	"github.com/tetratelabs/wazero/api"

	"github.com/flibitijibibo/corefx/internal/clock"
	"github.com/flibitijibibo/corefx/internal/filetimes"
	"github.com/flibitijibibo/corefx/internal/interop"
	"github.com/flibitijibibo/corefx/pal"
)

type timeImpl struct {
	host  *pal.Host
	src   clock.Source
	files *filetimes.Setter
}

func newTimeImpl(host *pal.Host, src clock.Source, files *filetimes.Setter) *timeImpl {
	return &timeImpl{host: host, src: src, files: files}
}

// GetTimestampResolution writes the tick rate of the selected primitive.
// Returns 0 with a zero resolution when no usable primitive exists.
func (i *timeImpl) GetTimestampResolution(_ context.Context, mod api.Module, outPtr uint32) int32 {
	if !i.src.Supported() {
		if !interop.WriteUint64(mod, outPtr, 0) {
			return i.fail(syscall.EFAULT)
		}
		return resultUnavailable
	}
	if !interop.WriteUint64(mod, outPtr, i.src.TicksPerSecond()) {
		return i.fail(syscall.EFAULT)
	}
	return resultOK
}

// GetTimestamp writes the current raw tick value from the primitive
// selected at detection.
func (i *timeImpl) GetTimestamp(_ context.Context, mod api.Module, outPtr uint32) int32 {
	ticks, ok := i.src.Now()
	if !ok {
		if !interop.WriteUint64(mod, outPtr, 0) {
			return i.fail(syscall.EFAULT)
		}
		return resultUnavailable
	}
	if !interop.WriteUint64(mod, outPtr, ticks) {
		return i.fail(syscall.EFAULT)
	}
	return resultOK
}

// GetAbsoluteTime writes the raw tick counter, when the host has one.
func (i *timeImpl) GetAbsoluteTime(_ context.Context, mod api.Module, outPtr uint32) int32 {
	ticks, ok := clock.AbsoluteNow()
	if !ok {
		if !interop.WriteUint64(mod, outPtr, 0) {
			return i.fail(syscall.EFAULT)
		}
		return resultUnavailable
	}
	if !interop.WriteUint64(mod, outPtr, ticks) {
		return i.fail(syscall.EFAULT)
	}
	return resultOK
}

// GetTimebaseInfo writes the tick-to-nanosecond conversion fraction.
func (i *timeImpl) GetTimebaseInfo(_ context.Context, mod api.Module, numerPtr, denomPtr uint32) int32 {
	numer, denom := clock.TimebaseInfo()
	if !interop.WriteUint32(mod, numerPtr, numer) || !interop.WriteUint32(mod, denomPtr, denom) {
		return i.fail(syscall.EFAULT)
	}
	return resultOK
}

// SetFileTimes applies a whole-second access/modification pair, the
// utime(2) surface.
func (i *timeImpl) SetFileTimes(_ context.Context, mod api.Module, pathPtr, pathLen, timesPtr uint32) int32 {
	path, ok := interop.ReadString(mod, pathPtr, pathLen)
	if !ok {
		return i.fail(syscall.EFAULT)
	}
	times, ok := readUTimBuf(mod, timesPtr)
	if !ok {
		return i.fail(syscall.EFAULT)
	}
	if err := i.files.SetTimes(path, times.AcTime, times.ModTime); err != nil {
		return i.fail(errnoOf(err))
	}
	return resultOK
}

// SetFileTimesLegacy applies a microsecond-precision pair, the utimes(2)
// surface.
func (i *timeImpl) SetFileTimesLegacy(_ context.Context, mod api.Module, pathPtr, pathLen, timesPtr uint32) int32 {
	path, ok := interop.ReadString(mod, pathPtr, pathLen)
	if !ok {
		return i.fail(syscall.EFAULT)
	}
	times, ok := readTimeValPair(mod, timesPtr)
	if !ok {
		return i.fail(syscall.EFAULT)
	}
	err := i.files.SetTimesMicro(path,
		times.AcTimeSec, times.AcTimeUSec,
		times.ModTimeSec, times.ModTimeUSec)
	if err != nil {
		return i.fail(errnoOf(err))
	}
	return resultOK
}

// SetFileTimesPosix applies a nanosecond-precision pair, the utimensat(2)
// surface.
func (i *timeImpl) SetFileTimesPosix(_ context.Context, mod api.Module, pathPtr, pathLen, timesPtr uint32) int32 {
	path, ok := interop.ReadString(mod, pathPtr, pathLen)
	if !ok {
		return i.fail(syscall.EFAULT)
	}
	times, ok := readTimeSpecPair(mod, timesPtr)
	if !ok {
		return i.fail(syscall.EFAULT)
	}
	err := i.files.SetTimesNano(path,
		times.AcTimeSec, times.AcTimeNSec,
		times.ModTimeSec, times.ModTimeNSec)
	if err != nil {
		return i.fail(errnoOf(err))
	}
	return resultOK
}

// fail records the platform error code for the errno module and returns
// the error result.
func (i *timeImpl) fail(errno syscall.Errno) int32 {
	i.host.SetLastError(int32(errno))
	return resultError
}

// errnoOf extracts the platform error code, keeping it verbatim whenever
// the failure came from a syscall.
func errnoOf(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	if errors.Is(err, fs.ErrNotExist) {
		return syscall.ENOENT
	}
	if errors.Is(err, fs.ErrPermission) {
		return syscall.EACCES
	}
	return syscall.EIO
}
