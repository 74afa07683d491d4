// Package filetimes sets file access/modification times with the legacy
// failure semantics the managed callers expect: interrupted syscalls are
// retried until they return a definitive result, and a "not found"
// failure consults the portability resolver for a differently-cased match
// before the original error is reported.
package filetimes

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
	"time"

	"github.com/flibitijibibo/corefx/internal/portability"
)

const nanosPerMicro = 1000

// Nanosecond-field sentinels, mirroring the utimensat special values.
const (
	// TimeNow sets the timestamp to the current time.
	TimeNow int64 = -1
	// TimeOmit leaves the timestamp unchanged.
	TimeOmit int64 = -2
)

// Setter applies file time updates. The resolver may be nil or disabled,
// in which case "not found" is final.
type Setter struct {
	resolver *portability.Resolver
}

// NewSetter creates a Setter consulting the given resolver on "not found".
func NewSetter(resolver *portability.Resolver) *Setter {
	return &Setter{resolver: resolver}
}

// SetTimes sets access and modification time with whole-second precision,
// utime(2) semantics.
func (s *Setter) SetTimes(path string, atimeSec, mtimeSec int64) error {
	return s.SetTimesMicro(path, atimeSec, 0, mtimeSec, 0)
}

// SetTimesMicro sets access and modification time with microsecond
// precision, utimes(2) semantics. Seconds and fraction stay split until
// the platform layer builds its timespec, so the full time_t range is
// representable.
func (s *Setter) SetTimesMicro(path string, atimeSec, atimeUsec, mtimeSec, mtimeUsec int64) error {
	atime := time.Unix(atimeSec, atimeUsec*nanosPerMicro)
	mtime := time.Unix(mtimeSec, mtimeUsec*nanosPerMicro)
	return s.set(path, func(p string) error {
		return setFileTimes(p, atime, mtime)
	})
}

// SetTimesNano sets access and modification time with nanosecond
// precision, utimensat(2) semantics. The nanosecond fields accept the
// TimeNow and TimeOmit sentinels.
func (s *Setter) SetTimesNano(path string, atimeSec, atimeNsec, mtimeSec, mtimeNsec int64) error {
	return s.set(path, func(p string) error {
		atime, mtime, err := resolveSpecial(p, atimeSec, atimeNsec, mtimeSec, mtimeNsec)
		if err != nil {
			return err
		}
		return setFileTimes(p, atime, mtime)
	})
}

// set runs apply with interrupt retry, falling back to a portability
// lookup on "not found". When the lookup finds nothing the original error
// is returned unchanged.
func (s *Setter) set(path string, apply func(string) error) error {
	err := retryOnInterrupt(func() error { return apply(path) })
	if err == nil || !errors.Is(err, fs.ErrNotExist) || !s.resolver.Enabled() {
		return err
	}
	located, ok := s.resolver.Find(path, true)
	if !ok {
		return err
	}
	return retryOnInterrupt(func() error { return apply(located) })
}

// retryOnInterrupt re-issues fn until it returns something other than an
// EINTR-class interruption. Interruption is never surfaced to callers.
func retryOnInterrupt(fn func() error) error {
	for {
		err := fn()
		if !errors.Is(err, syscall.EINTR) {
			return err
		}
	}
}

// resolveSpecial replaces the sentinel nanosecond values with concrete
// timestamps. TimeOmit needs the file's current times, so it stats p.
func resolveSpecial(p string, atimeSec, atimeNsec, mtimeSec, mtimeNsec int64) (atime, mtime time.Time, err error) {
	atime = time.Unix(atimeSec, atimeNsec)
	mtime = time.Unix(mtimeSec, mtimeNsec)
	if atimeNsec != TimeNow && atimeNsec != TimeOmit && mtimeNsec != TimeNow && mtimeNsec != TimeOmit {
		return atime, mtime, nil
	}

	now := time.Now()
	var info os.FileInfo
	if atimeNsec == TimeOmit || mtimeNsec == TimeOmit {
		info, err = os.Stat(p)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	switch atimeNsec {
	case TimeNow:
		atime = now
	case TimeOmit:
		if at, ok := accessTime(info); ok {
			atime = at
		} else {
			atime = info.ModTime()
		}
	}
	switch mtimeNsec {
	case TimeNow:
		mtime = now
	case TimeOmit:
		mtime = info.ModTime()
	}
	return atime, mtime, nil
}
