package sats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clockworklabs/spacetimedb-bsatn-go/internal/bsatn"
)

func TestTypespaceSerializeDeserializeRoundTrip(t *testing.T) {
	reg := NewRegistry(0)
	point := Product(NamedElement("x", I32Type()), NamedElement("y", I32Type()))
	pointIdx, _ := reg.Register(point, nil, "Point")

	line := Product(
		NamedElement("from", Ref(pointIdx)),
		NamedElement("to", Ref(pointIdx)),
	)
	reg.Register(line, nil, "Line")

	ts := reg.Freeze()

	w := bsatn.NewWriter()
	ts.Serialize(w)
	require.NoError(t, w.Error())

	r := bsatn.NewReader(w.Bytes())
	got := DeserializeTypespace(r)
	require.NoError(t, r.Error())
	require.True(t, r.AtEnd())

	require.Equal(t, ts.Len(), got.Len())
	for i := 0; i < ts.Len(); i++ {
		want, _ := ts.At(uint32(i))
		gotType, ok := got.At(uint32(i))
		require.True(t, ok)
		require.True(t, want.Equal(gotType))
	}
}

func TestTypespaceSerializeCountPrefixed(t *testing.T) {
	reg := NewRegistry(0)
	reg.Register(Product(NamedElement("a", BoolType())), nil, "A")
	ts := reg.Freeze()

	w := bsatn.NewWriter()
	ts.Serialize(w)
	require.NoError(t, w.Error())

	buf := w.Bytes()
	require.GreaterOrEqual(t, len(buf), 4)
	count := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	require.EqualValues(t, 1, count)
}
