package sats

import (
	"testing"

	"github.com/clockworklabs/spacetimedb-bsatn-go/internal/bsatn"
	"github.com/stretchr/testify/require"
)

func TestAlgebraicTypeSerializeRoundTrip(t *testing.T) {
	at := Product(
		NamedElement("a", U8Type()),
		NamedElement("b", U16Type()),
		NamedElement("c", StringType()),
	)

	w := bsatn.NewWriter()
	at.Serialize(w)
	require.NoError(t, w.Error())

	r := bsatn.NewReader(w.Bytes())
	got := Deserialize(r)
	require.NoError(t, r.Error())
	require.True(t, r.AtEnd())
	require.True(t, at.Equal(got))
}

func TestAlgebraicTypeSumRoundTrip(t *testing.T) {
	at := Sum(
		UnnamedVariant(U8Type()),
		NamedVariant("V1", StringType()),
	)
	w := bsatn.NewWriter()
	at.Serialize(w)
	r := bsatn.NewReader(w.Bytes())
	got := Deserialize(r)
	require.NoError(t, r.Error())
	require.True(t, at.Equal(got))
	require.Nil(t, got.Sum.Variants[0].Name)
	require.Equal(t, "V1", *got.Sum.Variants[1].Name)
}

func TestAlgebraicTypeArrayAndRefRoundTrip(t *testing.T) {
	at := Array(Ref(3))
	w := bsatn.NewWriter()
	at.Serialize(w)
	r := bsatn.NewReader(w.Bytes())
	got := Deserialize(r)
	require.NoError(t, r.Error())
	require.Equal(t, KindArray, got.Kind)
	require.Equal(t, KindRef, got.Array.Elem.Kind)
	require.Equal(t, uint32(3), got.Array.Elem.Ref)
}

func TestEqualIgnoresNames(t *testing.T) {
	a := Product(NamedElement("x", I32Type()))
	b := Product(NamedElement("y", I32Type()))
	require.True(t, a.Equal(b))
}

func TestEqualDetectsFieldOrderDifference(t *testing.T) {
	a := Product(NamedElement("x", I32Type()), NamedElement("y", StringType()))
	b := Product(NamedElement("x", StringType()), NamedElement("y", I32Type()))
	require.False(t, a.Equal(b))
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	orig := Product(NamedElement("x", Array(I32Type())))
	clone := orig.Clone()
	require.True(t, orig.Equal(clone))

	// Mutate the clone's nested structure; original must be untouched.
	clone.Product.Elements[0].Type.Array.Elem = StringType()
	require.Equal(t, KindI32, orig.Product.Elements[0].Type.Array.Elem.Kind)
}

func TestIsSpecialProduct(t *testing.T) {
	identity := Product(NamedElement(FieldIdentity, U256Type()))
	require.True(t, IsSpecialProduct(identity.Product))

	ordinary := Product(NamedElement("value", U256Type()))
	require.False(t, IsSpecialProduct(ordinary.Product))

	twoFields := Product(NamedElement(FieldIdentity, U256Type()), NamedElement("extra", BoolType()))
	require.False(t, IsSpecialProduct(twoFields.Product))
}

func TestIsInlineOnly(t *testing.T) {
	require.True(t, IsInlineOnly(U8Type()))
	require.True(t, IsInlineOnly(Array(StringType())))
	require.True(t, IsInlineOnly(Product(NamedElement(FieldUuid, U128Type()))))
	require.True(t, IsInlineOnly(Sum(NamedVariant(VariantOptionSome, U8Type()), NamedVariant(VariantOptionNone, Product()))))
	require.False(t, IsInlineOnly(Product(NamedElement("x", I32Type()), NamedElement("y", I32Type()))))
}
