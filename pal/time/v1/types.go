package v1

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/flibitijibibo/corefx/internal/interop"
)

// Call results on the fixed surface. Every function returns resultOK or
// resultError except the timestamp queries, which use resultUnavailable
// when no primitive serves them.
const (
	resultOK          int32 = 1
	resultUnavailable int32 = 0
	resultError       int32 = -1
)

// UTimBuf is the whole-second access/modification pair, two i64 fields.
type UTimBuf struct {
	AcTime  int64
	ModTime int64
}

// TimeValPair is the microsecond-precision pair, four i64 fields.
type TimeValPair struct {
	AcTimeSec   int64
	AcTimeUSec  int64
	ModTimeSec  int64
	ModTimeUSec int64
}

// TimeSpecPair is the nanosecond-precision pair, four i64 fields. The
// nanosecond fields accept the utimensat sentinels.
type TimeSpecPair struct {
	AcTimeSec   int64
	AcTimeNSec  int64
	ModTimeSec  int64
	ModTimeNSec int64
}

func readUTimBuf(mod api.Module, ptr uint32) (UTimBuf, bool) {
	vals, ok := interop.ReadInt64s(mod, ptr, 2)
	if !ok {
		return UTimBuf{}, false
	}
	return UTimBuf{AcTime: vals[0], ModTime: vals[1]}, true
}

func readTimeValPair(mod api.Module, ptr uint32) (TimeValPair, bool) {
	vals, ok := interop.ReadInt64s(mod, ptr, 4)
	if !ok {
		return TimeValPair{}, false
	}
	return TimeValPair{
		AcTimeSec:   vals[0],
		AcTimeUSec:  vals[1],
		ModTimeSec:  vals[2],
		ModTimeUSec: vals[3],
	}, true
}

func readTimeSpecPair(mod api.Module, ptr uint32) (TimeSpecPair, bool) {
	vals, ok := interop.ReadInt64s(mod, ptr, 4)
	if !ok {
		return TimeSpecPair{}, false
	}
	return TimeSpecPair{
		AcTimeSec:   vals[0],
		AcTimeNSec:  vals[1],
		ModTimeSec:  vals[2],
		ModTimeNSec: vals[3],
	}, true
}
