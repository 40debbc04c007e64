package bsatn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderShortBuffer(t *testing.T) {
	r := NewReader([]byte{1, 2})
	r.ReadU8()
	r.ReadU64LE()
	require.ErrorIs(t, r.Error(), ErrShortBuffer)
	require.True(t, r.AtEnd(), "cursor must be pinned past the buffer after the first error")
}

func TestReaderInvalidBool(t *testing.T) {
	r := NewReader([]byte{2})
	r.ReadBool()
	require.ErrorIs(t, r.Error(), ErrInvalidBool)
}

func TestReaderStickyErrorIgnoresFurtherReads(t *testing.T) {
	r := NewReader([]byte{0})
	r.ReadU32LE() // too short, records ErrShortBuffer
	require.ErrorIs(t, r.Error(), ErrShortBuffer)

	got := r.ReadU8()
	require.Equal(t, uint8(0), got)
	require.ErrorIs(t, r.Error(), ErrShortBuffer)
}

func TestReaderLengthOverflowBeforeConsuming(t *testing.T) {
	w := NewWriter()
	w.WriteU32LE(1 << 30) // absurd length prefix, no payload follows
	r := NewReader(w.Bytes())
	r.ReadString()
	require.ErrorIs(t, r.Error(), ErrLengthOverflow)
}

func TestReaderTrailingBytesDetectedByCaller(t *testing.T) {
	w := NewWriter()
	w.WriteU8(1)
	w.WriteU8(2)
	r := NewReader(w.Bytes())
	r.ReadU8()
	require.False(t, r.AtEnd())
	require.Equal(t, 1, r.Remaining())
}

func TestReadLenRejectsOversizedPrefixBeforeAllocating(t *testing.T) {
	w := NewWriter()
	w.WriteU32LE(0xFFFFFFFF) // would allocate billions of elements if unchecked
	r := NewReader(w.Bytes())
	n := r.ReadLen()
	require.ErrorIs(t, r.Error(), ErrLengthOverflow)
	require.Equal(t, 0, n)
}

func TestReadLenRejectsCountPastRemainingBuffer(t *testing.T) {
	w := NewWriter()
	w.WriteU32LE(1000) // well under MaxPayloadLen, but no such data follows
	r := NewReader(w.Bytes())
	n := r.ReadLen()
	require.ErrorIs(t, r.Error(), ErrLengthOverflow)
	require.Equal(t, 0, n)
}

func TestReadLenAcceptsCountWithinRemainingBuffer(t *testing.T) {
	w := NewWriter()
	w.WriteU32LE(3)
	w.WriteU8(1)
	w.WriteU8(2)
	w.WriteU8(3)
	r := NewReader(w.Bytes())
	n := r.ReadLen()
	require.NoError(t, r.Error())
	require.Equal(t, 3, n)
}

func TestReadBytesReturnsCopyNotAlias(t *testing.T) {
	w := NewWriter()
	w.WriteBytes([]byte{9, 9, 9})
	buf := w.Bytes()
	r := NewReader(buf)
	got := r.ReadBytes()
	got[0] = 0
	require.Equal(t, byte(9), buf[4], "ReadBytes must not alias the input buffer")
}
