package bsatn

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Reader decodes BSATN bytes from an immutable slice via a cursor (spec
// §3.1/§4.1): no seeks, no random access, just sequential consumption.
// Like Writer, it records the first error and makes subsequent reads
// no-ops so a decode sequence can be written straight-line and checked
// once at the end.
type Reader struct {
	buf []byte
	pos int
	err error
}

// NewReader wraps buf for sequential decoding. buf must not be mutated by
// the caller for the lifetime of the Reader (spec §5).
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Error returns the first error encountered during reading, if any.
func (r *Reader) Error() error {
	return r.err
}

// Pos returns the number of bytes consumed so far.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// AtEnd reports whether the cursor has consumed the entire buffer. Callers
// that must enforce spec §6.2's "trailing bytes are an error at the call
// site's discretion" call this after a top-level decode.
func (r *Reader) AtEnd() bool {
	return r.pos >= len(r.buf)
}

// Fail records err as the Reader's error if none is set yet, pinning the
// cursor the same way an internal decode failure would. Higher layers
// (pkg/sats, pkg/satn) use this to report domain-specific violations
// (an out-of-range sum tag, an unknown kind byte) through the same
// sticky-error path the Byte Codec itself uses.
func (r *Reader) Fail(err error) {
	r.recordError(err)
}

func (r *Reader) recordError(err error) {
	if r.err == nil && err != nil {
		r.err = err
		// Pin the cursor past the buffer so Pos()/Remaining() stay
		// consistent and a caller that ignores the error can't silently
		// read garbage from a stale position.
		r.pos = len(r.buf)
	}
}

// take returns the next n bytes and advances the cursor, or records
// ErrShortBuffer and returns nil if fewer than n bytes remain.
func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.pos+n > len(r.buf) {
		r.recordError(ErrShortBuffer)
		return nil
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

// ReadRawBytes reads exactly n bytes with no length prefix. The returned
// slice aliases the Reader's backing buffer; callers that retain it past
// the decode must copy.
func (r *Reader) ReadRawBytes(n int) []byte {
	return r.take(n)
}

// ReadBool reads a single byte and requires it be 0 or 1 (spec §3.4,
// §7 InvalidBool).
func (r *Reader) ReadBool() bool {
	b := r.take(1)
	if b == nil {
		return false
	}
	switch b[0] {
	case 0:
		return false
	case 1:
		return true
	default:
		r.recordError(ErrInvalidBool)
		return false
	}
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// ReadI8 reads a single byte as two's complement.
func (r *Reader) ReadI8() int8 {
	return int8(r.ReadU8())
}

// ReadU16LE reads 2 little-endian bytes.
func (r *Reader) ReadU16LE() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// ReadI16LE reads 2 little-endian bytes as two's complement.
func (r *Reader) ReadI16LE() int16 {
	return int16(r.ReadU16LE())
}

// ReadU32LE reads 4 little-endian bytes.
func (r *Reader) ReadU32LE() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// ReadI32LE reads 4 little-endian bytes as two's complement.
func (r *Reader) ReadI32LE() int32 {
	return int32(r.ReadU32LE())
}

// ReadU64LE reads 8 little-endian bytes.
func (r *Reader) ReadU64LE() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// ReadI64LE reads 8 little-endian bytes as two's complement.
func (r *Reader) ReadI64LE() int64 {
	return int64(r.ReadU64LE())
}

// ReadU128LE reads a 16-byte little-endian unsigned integer, returning
// (low 64 bits, high 64 bits) per spec §3.4.
func (r *Reader) ReadU128LE() (lo, hi uint64) {
	lo = r.ReadU64LE()
	hi = r.ReadU64LE()
	return
}

// ReadI128LE reads a 16-byte little-endian two's-complement integer.
func (r *Reader) ReadI128LE() (lo uint64, hi int64) {
	lo = r.ReadU64LE()
	hi = r.ReadI64LE()
	return
}

// ReadU256LE reads a 32-byte little-endian unsigned integer.
func (r *Reader) ReadU256LE() [32]byte {
	var out [32]byte
	b := r.take(32)
	if b == nil {
		return out
	}
	copy(out[:], b)
	return out
}

// ReadI256LE reads a 32-byte little-endian two's-complement integer.
func (r *Reader) ReadI256LE() [32]byte {
	return r.ReadU256LE()
}

// ReadF32LE reads 4 little-endian bytes as IEEE-754 bits. NaN payloads
// round-trip faithfully (spec §8.1); this never rejects NaN/Inf.
func (r *Reader) ReadF32LE() float32 {
	return math.Float32frombits(r.ReadU32LE())
}

// ReadF64LE reads 8 little-endian bytes as IEEE-754 bits.
func (r *Reader) ReadF64LE() float64 {
	return math.Float64frombits(r.ReadU64LE())
}

// ReadString reads a u32 length prefix then that many UTF-8 bytes (spec
// §3.4). Invalid UTF-8 is ErrInvalidUTF8; a length prefix past what
// remains (or past MaxPayloadLen) is ErrLengthOverflow before any read is
// attempted against the underlying buffer.
func (r *Reader) ReadString() string {
	n := r.readFrameLen()
	if r.err != nil {
		return ""
	}
	b := r.take(n)
	if b == nil {
		return ""
	}
	if !utf8.Valid(b) {
		r.recordError(ErrInvalidUTF8)
		return ""
	}
	return string(b)
}

// ReadBytes reads a u32 length prefix then that many raw bytes (spec
// §3.4). The returned slice is a copy; it does not alias the input.
func (r *Reader) ReadBytes() []byte {
	n := r.readFrameLen()
	if r.err != nil {
		return nil
	}
	b := r.take(n)
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// ReadLen reads a u32 element count for an Array<T>, validated the same
// way ReadString/ReadBytes validate their byte length prefixes: a count
// past MaxPayloadLen or past the bytes actually remaining is
// ErrLengthOverflow, raised before the caller allocates a slice sized
// off it (spec §7). Mirrors the teacher's own "array too long" guard in
// its collections.go, generalized from a fixed 1<<20 cap to the same
// remaining-buffer check readFrameLen already does for strings/bytes.
func (r *Reader) ReadLen() int {
	return r.readFrameLen()
}

// ReadSumTag reads the single tag byte preceding a Sum's payload.
func (r *Reader) ReadSumTag() uint8 {
	return r.ReadU8()
}

// readFrameLen reads a u32 length prefix and validates it against
// MaxPayloadLen and the bytes actually remaining, without consuming the
// payload itself.
func (r *Reader) readFrameLen() int {
	n := r.ReadU32LE()
	if r.err != nil {
		return 0
	}
	if n > MaxPayloadLen || int64(n) > int64(r.Remaining()) {
		r.recordError(ErrLengthOverflow)
		return 0
	}
	return int(n)
}
