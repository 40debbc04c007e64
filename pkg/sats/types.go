// Package sats implements the algebraic type system: the tagged tree that
// describes the schema of any BSATN value, and the Typespace/Registry that
// deduplicates named complex types across a module.
//
// sats knows nothing about the trait framework or the special-product
// codecs that bind user-defined Go types to this schema — that composition
// lives in pkg/satn, built on top of this package and internal/bsatn.
// sats only recognizes the special shapes by their reserved names
// (special.go).
package sats

// Kind is the discriminant (variant tag) of an AlgebraicType when it is
// itself serialized as part of a typespace. The order mirrors the wire
// contract exactly and must not be reordered.
//
// 0  Ref(u32)
// 1  Sum(SumType)
// 2  Product(ProductType)
// 3  Array(elem AlgebraicType)
// 4  String
// 5  Bool
// 6  I8   7  U8   8  I16   9  U16  10 I32  11 U32
// 12 I64  13 U64  14 I128  15 U128 16 I256 17 U256
// 18 F32  19 F64
type Kind uint8

const (
	KindRef Kind = iota
	KindSum
	KindProduct
	KindArray
	KindString
	KindBool
	KindI8
	KindU8
	KindI16
	KindU16
	KindI32
	KindU32
	KindI64
	KindU64
	KindI128
	KindU128
	KindI256
	KindU256
	KindF32
	KindF64
)

// String renders the kind's name, used by the Registry's debug logging to
// name a tag without duplicating a switch at every call site.
func (k Kind) String() string {
	switch k {
	case KindRef:
		return "Ref"
	case KindSum:
		return "Sum"
	case KindProduct:
		return "Product"
	case KindArray:
		return "Array"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindI8:
		return "I8"
	case KindU8:
		return "U8"
	case KindI16:
		return "I16"
	case KindU16:
		return "U16"
	case KindI32:
		return "I32"
	case KindU32:
		return "U32"
	case KindI64:
		return "I64"
	case KindU64:
		return "U64"
	case KindI128:
		return "I128"
	case KindU128:
		return "U128"
	case KindI256:
		return "I256"
	case KindU256:
		return "U256"
	case KindF32:
		return "F32"
	case KindF64:
		return "F64"
	default:
		return "Unknown"
	}
}

// AlgebraicType is the schema tree (spec §3.2): a tagged union over a
// reference, a sum, a product, an array, or a primitive unit kind.
type AlgebraicType struct {
	Kind    Kind
	Ref     uint32
	Sum     *SumType
	Product *ProductType
	Array   *ArrayType
}

// SumType is an ordered list of named variants; a value of this type
// carries a variant tag and that variant's payload.
type SumType struct {
	Variants []SumVariant
}

// SumVariant is one arm of a SumType. Name is metadata: it never affects
// the wire encoding of a value, only the encoding of the AlgebraicType
// itself and special-product recognition.
type SumVariant struct {
	Name *string
	Type AlgebraicType
}

// ProductType is an ordered list of named fields.
type ProductType struct {
	Elements []ProductElement
}

// ProductElement is one field of a ProductType.
type ProductElement struct {
	Name *string
	Type AlgebraicType
}

// ArrayType wraps the element type of an Array<T>.
type ArrayType struct {
	Elem AlgebraicType
}

// Ref constructs a reference to index i in the containing Typespace.
func Ref(i uint32) AlgebraicType { return AlgebraicType{Kind: KindRef, Ref: i} }

// Sum constructs a Sum type from its variants, in declared order.
func Sum(variants ...SumVariant) AlgebraicType {
	return AlgebraicType{Kind: KindSum, Sum: &SumType{Variants: variants}}
}

// Product constructs a Product type from its elements, in declared order.
func Product(elems ...ProductElement) AlgebraicType {
	return AlgebraicType{Kind: KindProduct, Product: &ProductType{Elements: elems}}
}

// Array constructs an Array<elem> type.
func Array(elem AlgebraicType) AlgebraicType {
	return AlgebraicType{Kind: KindArray, Array: &ArrayType{Elem: elem}}
}

// NamedVariant builds a SumVariant with a present name.
func NamedVariant(name string, t AlgebraicType) SumVariant {
	n := name
	return SumVariant{Name: &n, Type: t}
}

// UnnamedVariant builds a SumVariant with no name.
func UnnamedVariant(t AlgebraicType) SumVariant {
	return SumVariant{Type: t}
}

// NamedElement builds a ProductElement with a present name.
func NamedElement(name string, t AlgebraicType) ProductElement {
	n := name
	return ProductElement{Name: &n, Type: t}
}

// UnnamedElement builds a ProductElement with no name.
func UnnamedElement(t AlgebraicType) ProductElement {
	return ProductElement{Type: t}
}

// Unit type constructors; none carry a payload.
func StringType() AlgebraicType { return AlgebraicType{Kind: KindString} }
func BoolType() AlgebraicType   { return AlgebraicType{Kind: KindBool} }
func I8Type() AlgebraicType     { return AlgebraicType{Kind: KindI8} }
func U8Type() AlgebraicType     { return AlgebraicType{Kind: KindU8} }
func I16Type() AlgebraicType    { return AlgebraicType{Kind: KindI16} }
func U16Type() AlgebraicType    { return AlgebraicType{Kind: KindU16} }
func I32Type() AlgebraicType    { return AlgebraicType{Kind: KindI32} }
func U32Type() AlgebraicType    { return AlgebraicType{Kind: KindU32} }
func I64Type() AlgebraicType    { return AlgebraicType{Kind: KindI64} }
func U64Type() AlgebraicType    { return AlgebraicType{Kind: KindU64} }
func I128Type() AlgebraicType   { return AlgebraicType{Kind: KindI128} }
func U128Type() AlgebraicType   { return AlgebraicType{Kind: KindU128} }
func I256Type() AlgebraicType   { return AlgebraicType{Kind: KindI256} }
func U256Type() AlgebraicType   { return AlgebraicType{Kind: KindU256} }
func F32Type() AlgebraicType    { return AlgebraicType{Kind: KindF32} }
func F64Type() AlgebraicType    { return AlgebraicType{Kind: KindF64} }

// IsPrimitive reports whether the type carries no payload (String, Bool,
// or one of the integer/float unit kinds).
func (t AlgebraicType) IsPrimitive() bool {
	switch t.Kind {
	case KindString, KindBool, KindI8, KindU8, KindI16, KindU16, KindI32, KindU32,
		KindI64, KindU64, KindI128, KindU128, KindI256, KindU256, KindF32, KindF64:
		return true
	default:
		return false
	}
}
