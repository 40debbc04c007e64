package bsatn

import "errors"

// Sentinel errors for the Byte Codec (spec §7). Higher layers (pkg/sats,
// pkg/satn) define their own sentinels for registry- and schema-level
// failures; these cover only malformed bytes.
var (
	// ErrShortBuffer is returned when a read asks for more bytes than remain.
	ErrShortBuffer = errors.New("bsatn: short buffer")
	// ErrInvalidBool is returned when a bool byte is not 0 or 1.
	ErrInvalidBool = errors.New("bsatn: invalid bool byte")
	// ErrInvalidUTF8 is returned when string bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("bsatn: invalid utf8 string")
	// ErrInvalidSumTag is returned when a sum's variant tag is out of range.
	ErrInvalidSumTag = errors.New("bsatn: sum variant tag out of range")
	// ErrInvalidOptionTag is returned when an Option tag is not 0 or 1.
	ErrInvalidOptionTag = errors.New("bsatn: option tag out of range")
	// ErrTrailingBytes is returned by callers that enforce full-buffer
	// consumption after a decode (spec §6.2); the codec itself never raises it.
	ErrTrailingBytes = errors.New("bsatn: trailing bytes after decode")
	// ErrLengthOverflow is returned when a length prefix exceeds the
	// remaining buffer or MaxPayloadLen.
	ErrLengthOverflow = errors.New("bsatn: length prefix overflow")
)
