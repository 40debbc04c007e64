package bsatn

import "unicode/utf8"

// SizeWriter counts the bytes a real Writer would produce without
// allocating or copying any payload (spec §4.4: "a size-calculating
// variant of the writer ... must produce exactly the count the real
// writer produces"). It exposes the same Write* method set as Writer so a
// serializer written against an interface can run against either one —
// see pkg/satn.Sink.
type SizeWriter struct {
	n   int
	err error
}

// NewSizeWriter returns a zeroed SizeWriter.
func NewSizeWriter() *SizeWriter {
	return &SizeWriter{}
}

// Size returns the byte count accumulated so far, or -1 if an error was
// recorded (mirroring Writer.Bytes() returning nil on error).
func (s *SizeWriter) Size() int {
	if s.err != nil {
		return -1
	}
	return s.n
}

// Error returns the first error encountered, if any.
func (s *SizeWriter) Error() error {
	return s.err
}

func (s *SizeWriter) recordError(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

func (s *SizeWriter) add(n int) {
	if s.err == nil {
		s.n += n
	}
}

func (s *SizeWriter) WriteRawBytes(buf []byte)         { s.add(len(buf)) }
func (s *SizeWriter) WriteBool(bool)                   { s.add(1) }
func (s *SizeWriter) WriteU8(uint8)                    { s.add(1) }
func (s *SizeWriter) WriteI8(int8)                     { s.add(1) }
func (s *SizeWriter) WriteU16LE(uint16)                { s.add(2) }
func (s *SizeWriter) WriteI16LE(int16)                 { s.add(2) }
func (s *SizeWriter) WriteU32LE(uint32)                { s.add(4) }
func (s *SizeWriter) WriteI32LE(int32)                 { s.add(4) }
func (s *SizeWriter) WriteU64LE(uint64)                { s.add(8) }
func (s *SizeWriter) WriteI64LE(int64)                 { s.add(8) }
func (s *SizeWriter) WriteU128LE(lo, hi uint64)        { s.add(16) }
func (s *SizeWriter) WriteI128LE(lo uint64, hi int64)  { s.add(16) }
func (s *SizeWriter) WriteU256LE(b [32]byte)           { s.add(32) }
func (s *SizeWriter) WriteI256LE(b [32]byte)           { s.add(32) }
func (s *SizeWriter) WriteF32LE(float32)               { s.add(4) }
func (s *SizeWriter) WriteF64LE(float64)               { s.add(8) }
func (s *SizeWriter) WriteLen(int)                     { s.add(4) }
func (s *SizeWriter) WriteSumTag(uint8)                { s.add(1) }

func (s *SizeWriter) WriteString(val string) {
	if s.err != nil {
		return
	}
	if !utf8.ValidString(val) {
		s.recordError(ErrInvalidUTF8)
		return
	}
	if len(val) > MaxPayloadLen {
		s.recordError(ErrLengthOverflow)
		return
	}
	s.add(4 + len(val))
}

func (s *SizeWriter) WriteBytes(val []byte) {
	if s.err != nil {
		return
	}
	if len(val) > MaxPayloadLen {
		s.recordError(ErrLengthOverflow)
		return
	}
	s.add(4 + len(val))
}
