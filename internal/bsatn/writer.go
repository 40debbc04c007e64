package bsatn

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Writer encodes Go values into the BSATN wire format (spec §3.4). It is
// append-only: there are no seeks. Like the teacher's Writer, it records
// the first error it encounters and turns every subsequent method into a
// no-op, so callers can chain a sequence of writes and check Error() once
// at the end instead of after every call.
type Writer struct {
	buf []byte
	err error
}

// NewWriter returns a Writer with no pre-allocated capacity.
func NewWriter() *Writer {
	return &Writer{}
}

// NewWriterSize returns a Writer whose backing buffer is pre-sized to n
// bytes, typically the result of a prior SizeWriter pass (spec §4.4).
func NewWriterSize(n int) *Writer {
	return &Writer{buf: make([]byte, 0, n)}
}

// Bytes returns the bytes written so far, or nil if an error occurred.
func (w *Writer) Bytes() []byte {
	if w.err != nil {
		return nil
	}
	return w.buf
}

// Error returns the first error encountered during writing, if any.
func (w *Writer) Error() error {
	return w.err
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Fail records err as the Writer's error if none is set yet. Higher
// layers use this to report domain-specific violations through the same
// sticky-error path the Byte Codec itself uses.
func (w *Writer) Fail(err error) {
	w.recordError(err)
}

func (w *Writer) recordError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// WriteRawBytes appends buf without any length prefix. Used by higher
// layers (Product/Sum/Array composition) that have already written their
// own framing; direct callers are responsible for the receiver knowing
// how many bytes to expect.
func (w *Writer) WriteRawBytes(buf []byte) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, buf...)
}

// WriteBool writes a single 0/1 byte (spec §3.4).
func (w *Writer) WriteBool(val bool) {
	if w.err != nil {
		return
	}
	if val {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

// WriteU8 writes val as a single byte.
func (w *Writer) WriteU8(val uint8) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, val)
}

// WriteI8 writes val as a single byte (two's complement).
func (w *Writer) WriteI8(val int8) {
	w.WriteU8(uint8(val))
}

// WriteU16LE writes val little-endian in 2 bytes.
func (w *Writer) WriteU16LE(val uint16) {
	if w.err != nil {
		return
	}
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], val)
	w.buf = append(w.buf, b[:]...)
}

// WriteI16LE writes val little-endian in 2 bytes.
func (w *Writer) WriteI16LE(val int16) {
	w.WriteU16LE(uint16(val))
}

// WriteU32LE writes val little-endian in 4 bytes.
func (w *Writer) WriteU32LE(val uint32) {
	if w.err != nil {
		return
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], val)
	w.buf = append(w.buf, b[:]...)
}

// WriteI32LE writes val little-endian in 4 bytes.
func (w *Writer) WriteI32LE(val int32) {
	w.WriteU32LE(uint32(val))
}

// WriteU64LE writes val little-endian in 8 bytes.
func (w *Writer) WriteU64LE(val uint64) {
	if w.err != nil {
		return
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], val)
	w.buf = append(w.buf, b[:]...)
}

// WriteI64LE writes val little-endian in 8 bytes.
func (w *Writer) WriteI64LE(val int64) {
	w.WriteU64LE(uint64(val))
}

// WriteU128LE writes val little-endian: low 64 bits first, then high 64
// bits (spec §3.4).
func (w *Writer) WriteU128LE(lo, hi uint64) {
	w.WriteU64LE(lo)
	w.WriteU64LE(hi)
}

// WriteI128LE writes val little-endian: low 64 bits first, then high 64
// bits, two's complement across the pair.
func (w *Writer) WriteI128LE(lo uint64, hi int64) {
	w.WriteU64LE(lo)
	w.WriteI64LE(hi)
}

// WriteU256LE writes a 32-byte little-endian unsigned integer.
func (w *Writer) WriteU256LE(b [32]byte) {
	w.WriteRawBytes(b[:])
}

// WriteI256LE writes a 32-byte little-endian two's-complement integer.
func (w *Writer) WriteI256LE(b [32]byte) {
	w.WriteRawBytes(b[:])
}

// WriteF32LE writes val as IEEE-754 little-endian bits. A NaN or Inf
// payload is written faithfully; round-tripping a NaN bit pattern is
// well-defined per spec §8.1 ("NaN equals itself for this purpose").
func (w *Writer) WriteF32LE(val float32) {
	w.WriteU32LE(math.Float32bits(val))
}

// WriteF64LE writes val as IEEE-754 little-endian bits.
func (w *Writer) WriteF64LE(val float64) {
	w.WriteU64LE(math.Float64bits(val))
}

// WriteString writes a u32 length prefix followed by the UTF-8 bytes of
// val (spec §3.4). Writing an invalid-UTF-8 Go string is a programmer
// error surfaced eagerly rather than silently emitting garbage bytes.
func (w *Writer) WriteString(val string) {
	if w.err != nil {
		return
	}
	if !utf8.ValidString(val) {
		w.recordError(ErrInvalidUTF8)
		return
	}
	if len(val) > MaxPayloadLen {
		w.recordError(ErrLengthOverflow)
		return
	}
	w.WriteU32LE(uint32(len(val)))
	w.WriteRawBytes([]byte(val))
}

// WriteBytes writes a u32 length prefix followed by val verbatim (spec
// §3.4), the same framing WriteString uses for its payload.
func (w *Writer) WriteBytes(val []byte) {
	if w.err != nil {
		return
	}
	if len(val) > MaxPayloadLen {
		w.recordError(ErrLengthOverflow)
		return
	}
	w.WriteU32LE(uint32(len(val)))
	w.WriteRawBytes(val)
}

// WriteLen writes a u32 element count for an Array<T> (spec §3.4); the
// caller writes each element immediately afterward.
func (w *Writer) WriteLen(n int) {
	w.WriteU32LE(uint32(n))
}

// WriteSumTag writes the single tag byte that precedes a Sum's payload
// (spec §3.4). Callers write the selected variant's payload immediately
// afterward.
func (w *Writer) WriteSumTag(tag uint8) {
	w.WriteU8(tag)
}
