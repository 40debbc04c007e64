// Package bsatn implements the Byte Codec: a little-endian reader/writer
// for the primitives, strings, byte arrays and sized counts that make up
// the BSATN wire format. It knows nothing about AlgebraicType or the type
// registry — those live in pkg/sats and pkg/satn, built on top of this
// package.
package bsatn

// MaxPayloadLen is a safety cap on the length prefix of strings and byte
// arrays, and (on read, via Reader.ReadLen) on Array element counts. It
// guards against a corrupt or hostile length prefix causing an
// unbounded allocation before the short-buffer check can fire.
const MaxPayloadLen = 1 << 24 // 16 MiB
