package sats

import "errors"

// Sentinel errors for the Algebraic Type and Type Registry components
// (spec §7's RegistryConflict, plus the decode-time failures this layer
// adds on top of internal/bsatn's byte-level ones).
var (
	// ErrRegistryConflict names an attempt to register a type the registry
	// must always inline: a primitive, Option, Array, or one of the special
	// products (spec §4.3, §4.5). Registry.Register does not return it; it
	// reports that case through its inline=true result.
	ErrRegistryConflict = errors.New("sats: cannot register an inline-only type")
	// ErrUnknownRef names a Ref resolved against an index that has no entry
	// in the Typespace. Typespace.At does not return it; it reports a miss
	// through its bool result.
	ErrUnknownRef = errors.New("sats: unknown Ref index")
	// ErrInvalidKindTag is returned when an AlgebraicType's own tag byte
	// (spec §3.2) is outside the 0-19 range.
	ErrInvalidKindTag = errors.New("sats: invalid AlgebraicType kind tag")
)
