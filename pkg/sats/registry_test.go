package sats

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct{ X, Y int32 }
type point3 struct{ X, Y, Z int32 }

func TestRegistryStructuralDedup(t *testing.T) {
	reg := NewRegistry(0)

	xy := Product(NamedElement("x", I32Type()), NamedElement("y", I32Type()))
	idx0, inline0 := reg.Register(xy, nil, "Point")
	require.False(t, inline0)
	require.Equal(t, uint32(0), idx0)

	idx1, inline1 := reg.Register(xy, nil, "Point")
	require.False(t, inline1)
	require.Equal(t, uint32(0), idx1, "re-registering the same structure must be idempotent")
	require.Equal(t, 1, reg.Len())

	xyz := Product(NamedElement("x", I32Type()), NamedElement("y", I32Type()), NamedElement("z", I32Type()))
	idx2, inline2 := reg.Register(xyz, nil, "Point3")
	require.False(t, inline2)
	require.Equal(t, uint32(1), idx2)
	require.Equal(t, 2, reg.Len())
}

func TestRegistryIdentityDistinguishesSameStructure(t *testing.T) {
	reg := NewRegistry(0)
	xy := Product(NamedElement("x", I32Type()), NamedElement("y", I32Type()))

	idxA, _ := reg.Register(xy, reflect.TypeOf(point{}), "PointA")
	idxB, _ := reg.Register(xy, reflect.TypeOf(point3{}), "PointB")
	require.NotEqual(t, idxA, idxB, "distinct TypeIds with identical structure must register as two entries")
	require.Equal(t, 2, reg.Len())
}

func TestRegistryRejectsInlineOnlyTypes(t *testing.T) {
	reg := NewRegistry(0)

	idx, inline := reg.Register(U32Type(), nil, "u32")
	require.True(t, inline)
	require.Equal(t, uint32(0), idx)
	require.Equal(t, 0, reg.Len())

	_, inline = reg.Register(Array(StringType()), nil, "")
	require.True(t, inline)
	require.Equal(t, 0, reg.Len())

	identity := Product(NamedElement(FieldIdentity, U256Type()))
	_, inline = reg.Register(identity, nil, "Identity")
	require.True(t, inline)
	require.Equal(t, 0, reg.Len())

	option := Sum(NamedVariant(VariantOptionSome, U8Type()), NamedVariant(VariantOptionNone, Product()))
	_, inline = reg.Register(option, nil, "")
	require.True(t, inline)
	require.Equal(t, 0, reg.Len())
}

func TestRegistryFindByStructureAndIdentity(t *testing.T) {
	reg := NewRegistry(0)
	xy := Product(NamedElement("x", I32Type()), NamedElement("y", I32Type()))
	tid := reflect.TypeOf(point{})
	idx, _ := reg.Register(xy, tid, "Point")

	found, ok := reg.FindByIdentity(tid)
	require.True(t, ok)
	require.Equal(t, idx, found)

	found, ok = reg.FindByStructure(xy)
	require.True(t, ok)
	require.Equal(t, idx, found)

	_, ok = reg.FindByIdentity(reflect.TypeOf(point3{}))
	require.False(t, ok)
}

func TestRegistryFreezeProducesStableTypespace(t *testing.T) {
	reg := NewRegistry(0)
	xy := Product(NamedElement("x", I32Type()), NamedElement("y", I32Type()))
	idx, _ := reg.Register(xy, nil, "Point")

	ts := reg.Freeze()
	require.Equal(t, 1, ts.Len())

	got, ok := ts.At(idx)
	require.True(t, ok)
	require.True(t, xy.Equal(got))

	resolved, ok := ts.Resolve("Point")
	require.True(t, ok)
	require.Equal(t, idx, resolved)

	_, ok = ts.At(99)
	require.False(t, ok)
}

func TestRegistryIterOrderIsAppendOrder(t *testing.T) {
	reg := NewRegistry(0)
	a := Product(NamedElement("a", U8Type()))
	b := Product(NamedElement("a", U8Type()), NamedElement("b", U8Type()))
	reg.Register(a, nil, "A")
	reg.Register(b, nil, "B")

	types := reg.Iter()
	require.Len(t, types, 2)
	require.True(t, a.Equal(types[0]))
	require.True(t, b.Equal(types[1]))
}
