package interop

import (
	"github.com/tetratelabs/wazero/api"
)

// ReadString reads a byte-string of the given length from guest memory.
// The bytes are copied, so the result stays valid after the guest resizes
// or reuses its memory.
func ReadString(mod api.Module, ptr, length uint32) (string, bool) {
	buf, ok := mod.Memory().Read(ptr, length)
	if !ok {
		return "", false
	}
	return string(buf), true
}

// ReadInt64s reads count little-endian 64-bit integers laid out
// contiguously at ptr, the layout fixed-size argument structs use.
func ReadInt64s(mod api.Module, ptr uint32, count int) ([]int64, bool) {
	out := make([]int64, count)
	for i := 0; i < count; i++ {
		v, ok := mod.Memory().ReadUint64Le(ptr + uint32(i*8))
		if !ok {
			return nil, false
		}
		out[i] = int64(v)
	}
	return out, true
}

// WriteUint64 writes a little-endian 64-bit value to an out-parameter
// pointer in guest memory.
func WriteUint64(mod api.Module, ptr uint32, v uint64) bool {
	return mod.Memory().WriteUint64Le(ptr, v)
}

// WriteUint32 writes a little-endian 32-bit value to an out-parameter
// pointer in guest memory.
func WriteUint32(mod api.Module, ptr uint32, v uint32) bool {
	return mod.Memory().WriteUint32Le(ptr, v)
}
