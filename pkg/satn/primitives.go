package satn

import (
	"github.com/clockworklabs/spacetimedb-bsatn-go/internal/bsatn"
	"github.com/clockworklabs/spacetimedb-bsatn-go/pkg/sats"
)

// Bool, U8, I8, ... are the Trait Framework's bindings for the
// primitives of spec §3.4. Each is a package-level Codec value rather
// than a constructor since a primitive carries no configuration.
var (
	Bool Codec[bool] = newFuncCodec(
		func(w Sink, v bool) { w.WriteBool(v) },
		func(r *bsatn.Reader) bool { return r.ReadBool() },
		sats.BoolType,
	)
	U8 Codec[uint8] = newFuncCodec(
		func(w Sink, v uint8) { w.WriteU8(v) },
		func(r *bsatn.Reader) uint8 { return r.ReadU8() },
		sats.U8Type,
	)
	I8 Codec[int8] = newFuncCodec(
		func(w Sink, v int8) { w.WriteI8(v) },
		func(r *bsatn.Reader) int8 { return r.ReadI8() },
		sats.I8Type,
	)
	U16 Codec[uint16] = newFuncCodec(
		func(w Sink, v uint16) { w.WriteU16LE(v) },
		func(r *bsatn.Reader) uint16 { return r.ReadU16LE() },
		sats.U16Type,
	)
	I16 Codec[int16] = newFuncCodec(
		func(w Sink, v int16) { w.WriteI16LE(v) },
		func(r *bsatn.Reader) int16 { return r.ReadI16LE() },
		sats.I16Type,
	)
	U32 Codec[uint32] = newFuncCodec(
		func(w Sink, v uint32) { w.WriteU32LE(v) },
		func(r *bsatn.Reader) uint32 { return r.ReadU32LE() },
		sats.U32Type,
	)
	I32 Codec[int32] = newFuncCodec(
		func(w Sink, v int32) { w.WriteI32LE(v) },
		func(r *bsatn.Reader) int32 { return r.ReadI32LE() },
		sats.I32Type,
	)
	U64 Codec[uint64] = newFuncCodec(
		func(w Sink, v uint64) { w.WriteU64LE(v) },
		func(r *bsatn.Reader) uint64 { return r.ReadU64LE() },
		sats.U64Type,
	)
	I64 Codec[int64] = newFuncCodec(
		func(w Sink, v int64) { w.WriteI64LE(v) },
		func(r *bsatn.Reader) int64 { return r.ReadI64LE() },
		sats.I64Type,
	)
	F32 Codec[float32] = newFuncCodec(
		func(w Sink, v float32) { w.WriteF32LE(v) },
		func(r *bsatn.Reader) float32 { return r.ReadF32LE() },
		sats.F32Type,
	)
	F64 Codec[float64] = newFuncCodec(
		func(w Sink, v float64) { w.WriteF64LE(v) },
		func(r *bsatn.Reader) float64 { return r.ReadF64LE() },
		sats.F64Type,
	)
	String Codec[string] = newFuncCodec(
		func(w Sink, v string) { w.WriteString(v) },
		func(r *bsatn.Reader) string { return r.ReadString() },
		sats.StringType,
	)
	Bytes Codec[[]byte] = newFuncCodec(
		func(w Sink, v []byte) { w.WriteBytes(v) },
		func(r *bsatn.Reader) []byte { return r.ReadBytes() },
		func() sats.AlgebraicType { return sats.Array(sats.U8Type()) },
	)
)

// U128 represents a 128-bit value as its low and high 64-bit halves
// (spec §3.4: "16 bytes, low 64 bits first, then high 64 bits").
type U128 struct{ Lo, Hi uint64 }

var U128Codec Codec[U128] = newFuncCodec(
	func(w Sink, v U128) { w.WriteU128LE(v.Lo, v.Hi) },
	func(r *bsatn.Reader) U128 { lo, hi := r.ReadU128LE(); return U128{Lo: lo, Hi: hi} },
	sats.U128Type,
)

// I128 is the signed counterpart of U128.
type I128 struct {
	Lo uint64
	Hi int64
}

var I128Codec Codec[I128] = newFuncCodec(
	func(w Sink, v I128) { w.WriteI128LE(v.Lo, v.Hi) },
	func(r *bsatn.Reader) I128 { lo, hi := r.ReadI128LE(); return I128{Lo: lo, Hi: hi} },
	sats.I128Type,
)

// U256 is a raw 32-byte little-endian unsigned integer.
type U256 [32]byte

var U256Codec Codec[U256] = newFuncCodec(
	func(w Sink, v U256) { w.WriteU256LE(v) },
	func(r *bsatn.Reader) U256 { return U256(r.ReadU256LE()) },
	sats.U256Type,
)

// I256 is the signed counterpart of U256.
type I256 [32]byte

var I256Codec Codec[I256] = newFuncCodec(
	func(w Sink, v I256) { w.WriteI256LE(v) },
	func(r *bsatn.Reader) I256 { return I256(r.ReadI256LE()) },
	sats.I256Type,
)
