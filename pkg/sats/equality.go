package sats

// Equal reports whether t and other describe the same schema structurally.
// Field/variant names are metadata (spec §3.2) and are ignored; only Kind,
// Ref index, and the ordered shape of Sum/Product/Array payloads matter.
//
// A plain reflect.DeepEqual over AlgebraicType would wrongly distinguish
// two structurally identical trees built through different constructor
// call sequences (e.g. one built via Sum() with no arguments, whose
// Variants slice is nil, vs. one whose Variants is an empty non-nil
// slice), and would compare names too; Equal walks the tree explicitly
// instead. A nil Sum/Product/Array pointer is equal only to another nil.
func (t AlgebraicType) Equal(other AlgebraicType) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindRef:
		return t.Ref == other.Ref
	case KindSum:
		return sumEqual(t.Sum, other.Sum)
	case KindProduct:
		return productEqual(t.Product, other.Product)
	case KindArray:
		return arrayEqual(t.Array, other.Array)
	default:
		return true // unit kinds carry no payload
	}
}

func sumEqual(a, b *SumType) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Variants) != len(b.Variants) {
		return false
	}
	for i := range a.Variants {
		if !a.Variants[i].Type.Equal(b.Variants[i].Type) {
			return false
		}
	}
	return true
}

func productEqual(a, b *ProductType) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Elements) != len(b.Elements) {
		return false
	}
	for i := range a.Elements {
		if !a.Elements[i].Type.Equal(b.Elements[i].Type) {
			return false
		}
	}
	return true
}

func arrayEqual(a, b *ArrayType) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Elem.Equal(b.Elem)
}

// Clone returns a deep copy of t. Ownership of child types is unique
// (spec §9 "Ownership"); sharing the same *SumType/*ProductType/*ArrayType
// pointer across two AlgebraicType values would let a mutation of one
// silently alias the other.
func (t AlgebraicType) Clone() AlgebraicType {
	out := AlgebraicType{Kind: t.Kind, Ref: t.Ref}
	if t.Sum != nil {
		variants := make([]SumVariant, len(t.Sum.Variants))
		for i, v := range t.Sum.Variants {
			variants[i] = SumVariant{Name: cloneStringPtr(v.Name), Type: v.Type.Clone()}
		}
		out.Sum = &SumType{Variants: variants}
	}
	if t.Product != nil {
		elems := make([]ProductElement, len(t.Product.Elements))
		for i, e := range t.Product.Elements {
			elems[i] = ProductElement{Name: cloneStringPtr(e.Name), Type: e.Type.Clone()}
		}
		out.Product = &ProductType{Elements: elems}
	}
	if t.Array != nil {
		out.Array = &ArrayType{Elem: t.Array.Elem.Clone()}
	}
	return out
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
