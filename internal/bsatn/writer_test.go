package bsatn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterPrimitivesRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteBool(true)
	w.WriteU8(0xAB)
	w.WriteI8(-5)
	w.WriteU16LE(0x1234)
	w.WriteI32LE(-12345)
	w.WriteU64LE(0xDEADBEEFCAFEBABE)
	w.WriteF32LE(3.5)
	w.WriteF64LE(2.71828)
	require.NoError(t, w.Error())

	r := NewReader(w.Bytes())
	require.Equal(t, true, r.ReadBool())
	require.Equal(t, uint8(0xAB), r.ReadU8())
	require.Equal(t, int8(-5), r.ReadI8())
	require.Equal(t, uint16(0x1234), r.ReadU16LE())
	require.Equal(t, int32(-12345), r.ReadI32LE())
	require.Equal(t, uint64(0xDEADBEEFCAFEBABE), r.ReadU64LE())
	require.Equal(t, float32(3.5), r.ReadF32LE())
	require.Equal(t, 2.71828, r.ReadF64LE())
	require.NoError(t, r.Error())
	require.True(t, r.AtEnd())
}

func TestWriterU128LowHighOrder(t *testing.T) {
	w := NewWriter()
	w.WriteU128LE(0x1111111111111111, 0x2222222222222222)
	require.NoError(t, w.Error())

	r := NewReader(w.Bytes())
	lo, hi := r.ReadU128LE()
	require.Equal(t, uint64(0x1111111111111111), lo)
	require.Equal(t, uint64(0x2222222222222222), hi)
}

func TestWriterStringFraming(t *testing.T) {
	w := NewWriter()
	w.WriteString("hello, bsatn")
	require.NoError(t, w.Error())
	require.Equal(t, 4+len("hello, bsatn"), w.Len())

	r := NewReader(w.Bytes())
	require.Equal(t, "hello, bsatn", r.ReadString())
	require.NoError(t, r.Error())
}

func TestWriterInvalidUTF8Sticky(t *testing.T) {
	w := NewWriter()
	w.WriteString("ok")
	w.WriteString(string([]byte{0xff, 0xfe}))
	require.ErrorIs(t, w.Error(), ErrInvalidUTF8)

	before := w.Len()
	w.WriteU8(1)
	require.Equal(t, before, w.Len(), "writer must be a no-op after its first error")
	require.Nil(t, w.Bytes())
}

func TestWriterBytesFraming(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	w := NewWriter()
	w.WriteBytes(payload)
	require.NoError(t, w.Error())

	r := NewReader(w.Bytes())
	require.Equal(t, payload, r.ReadBytes())
}

func TestWriterNaNRoundTrips(t *testing.T) {
	w := NewWriter()
	w.WriteF64LE(math.NaN())
	require.NoError(t, w.Error())

	r := NewReader(w.Bytes())
	got := r.ReadF64LE()
	require.True(t, math.IsNaN(got))
}

func TestSizeWriterMatchesRealWriter(t *testing.T) {
	sw := NewSizeWriter()
	sw.WriteBool(true)
	sw.WriteU64LE(42)
	sw.WriteString("payload")
	sw.WriteSumTag(1)
	sw.WriteLen(3)
	sw.WriteU256LE([32]byte{})

	w := NewWriter()
	w.WriteBool(true)
	w.WriteU64LE(42)
	w.WriteString("payload")
	w.WriteSumTag(1)
	w.WriteLen(3)
	w.WriteU256LE([32]byte{})

	require.Equal(t, w.Len(), sw.Size())
}

func TestWriteStringOverflowRejected(t *testing.T) {
	huge := make([]byte, MaxPayloadLen+1)
	for i := range huge {
		huge[i] = 'a'
	}
	w := NewWriter()
	w.WriteString(string(huge))
	require.ErrorIs(t, w.Error(), ErrLengthOverflow)
}
