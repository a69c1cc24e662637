package internal

import (
	"bytes"
	"encoding/binary"

	"github.com/ahtheerr/mbego/internal/warn"
)

// ReadU32LE reads a little-endian u32 at offset. An out-of-range
// read is tolerated per §4.1: it logs a warning and returns the zero
// value rather than aborting the parse.
func ReadU32LE(buf []byte, offset int64) uint32 {
	if offset < 0 || offset+4 > int64(len(buf)) {
		warn.Warnf("read u32 at %d: out of range (buffer size %d)", offset, len(buf))
		return 0
	}
	return binary.LittleEndian.Uint32(buf[offset : offset+4])
}

// ReadI32LE reads a little-endian signed i32 at offset, same
// tolerance as ReadU32LE.
func ReadI32LE(buf []byte, offset int64) int32 {
	return int32(ReadU32LE(buf, offset))
}

// WriteU32LE writes v at offset, growing buf if necessary so callers
// never need to pre-size the buffer before a write.
func WriteU32LE(buf []byte, offset int64, v uint32) []byte {
	buf = ensureCapacity(buf, offset+4)
	binary.LittleEndian.PutUint32(buf[offset:offset+4], v)
	return buf
}

// WriteI32LE writes a signed i32 at offset, reinterpreting its bits
// as a u32 per §4.4's two's-complement rule.
func WriteI32LE(buf []byte, offset int64, v int32) []byte {
	return WriteU32LE(buf, offset, uint32(v))
}

func ensureCapacity(buf []byte, n int64) []byte {
	if int64(len(buf)) >= n {
		return buf
	}
	grown := make([]byte, n)
	copy(grown, buf)
	return grown
}

// FindMagic returns the first index >= start at which needle occurs
// in buf, or -1 if it does not occur. Used to locate the optional
// "CHNK" string-pool magic starting from the earliest position it
// may begin (§4.3 Pass 3).
func FindMagic(buf []byte, needle []byte, start int64) int64 {
	if start < 0 {
		start = 0
	}
	if start >= int64(len(buf)) {
		return -1
	}
	n := len(needle)
	if n == 0 {
		return start
	}
	for i := start; i+int64(n) <= int64(len(buf)); i++ {
		if bytes.Equal(buf[i:i+int64(n)], needle) {
			return i
		}
	}
	return -1
}
