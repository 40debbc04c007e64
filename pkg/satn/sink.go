// Package satn is the Trait Framework and Composition layer (spec §4.4,
// §4.5, §4.6): it binds Go values to (serialize, deserialize,
// algebraic_type) triples on top of pkg/sats's schema tree and
// internal/bsatn's byte codec.
package satn

// Sink is the write-side interface every Codec serializes through. Both
// *bsatn.Writer and *bsatn.SizeWriter implement it, so a single
// serializer function drives either the real writer or the
// size-calculating variant required by spec §4.4 without duplicating any
// composition logic.
type Sink interface {
	WriteRawBytes(buf []byte)
	WriteBool(val bool)
	WriteU8(val uint8)
	WriteI8(val int8)
	WriteU16LE(val uint16)
	WriteI16LE(val int16)
	WriteU32LE(val uint32)
	WriteI32LE(val int32)
	WriteU64LE(val uint64)
	WriteI64LE(val int64)
	WriteU128LE(lo, hi uint64)
	WriteI128LE(lo uint64, hi int64)
	WriteU256LE(b [32]byte)
	WriteI256LE(b [32]byte)
	WriteF32LE(val float32)
	WriteF64LE(val float64)
	WriteString(val string)
	WriteBytes(val []byte)
	WriteLen(n int)
	WriteSumTag(tag uint8)
}
