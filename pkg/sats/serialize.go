package sats

import (
	"github.com/clockworklabs/spacetimedb-bsatn-go/internal/bsatn"
)

// optSomeTag/optNoneTag mirror the Option<T> tag assignment in spec §3.5
// (some=0, none=1). AlgebraicType's own optional-name fields use this
// encoding directly rather than going through pkg/satn's generic Option
// composition, since pkg/satn is built on top of pkg/sats and must not be
// imported back into it.
const (
	optSomeTag uint8 = 0
	optNoneTag uint8 = 1
)

func writeOptionalName(w *bsatn.Writer, name *string) {
	if name == nil {
		w.WriteSumTag(optNoneTag)
		return
	}
	w.WriteSumTag(optSomeTag)
	w.WriteString(*name)
}

func readOptionalName(r *bsatn.Reader) *string {
	tag := r.ReadSumTag()
	if r.Error() != nil {
		return nil
	}
	switch tag {
	case optSomeTag:
		s := r.ReadString()
		return &s
	case optNoneTag:
		return nil
	default:
		r.Fail(bsatn.ErrInvalidOptionTag)
		return nil
	}
}

// Serialize writes t's own schema description onto w, following the
// variant layout of spec §4.2: a tag byte, then a payload whose shape
// depends on the tag. Sum and Product deliberately share one encoding
// path below (§4.2 "deliberate symmetry").
func (t AlgebraicType) Serialize(w *bsatn.Writer) {
	w.WriteU8(uint8(t.Kind))
	switch t.Kind {
	case KindRef:
		w.WriteU32LE(t.Ref)
	case KindSum:
		writeNamedList(w, sumToNamedList(t.Sum))
	case KindProduct:
		writeNamedList(w, productToNamedList(t.Product))
	case KindArray:
		t.Array.Elem.Serialize(w)
	default:
		// tags 4-19: no payload
	}
}

type namedType struct {
	Name *string
	Type AlgebraicType
}

func sumToNamedList(s *SumType) []namedType {
	out := make([]namedType, len(s.Variants))
	for i, v := range s.Variants {
		out[i] = namedType{Name: v.Name, Type: v.Type}
	}
	return out
}

func productToNamedList(p *ProductType) []namedType {
	out := make([]namedType, len(p.Elements))
	for i, e := range p.Elements {
		out[i] = namedType{Name: e.Name, Type: e.Type}
	}
	return out
}

func writeNamedList(w *bsatn.Writer, items []namedType) {
	w.WriteLen(len(items))
	for _, it := range items {
		writeOptionalName(w, it.Name)
		it.Type.Serialize(w)
	}
}

// Deserialize reads an AlgebraicType's schema description from r, the
// inverse of Serialize.
func Deserialize(r *bsatn.Reader) AlgebraicType {
	tag := r.ReadU8()
	if r.Error() != nil {
		return AlgebraicType{}
	}
	kind := Kind(tag)
	switch kind {
	case KindRef:
		idx := r.ReadU32LE()
		return AlgebraicType{Kind: KindRef, Ref: idx}
	case KindSum:
		items := readNamedList(r)
		variants := make([]SumVariant, len(items))
		for i, it := range items {
			variants[i] = SumVariant{Name: it.Name, Type: it.Type}
		}
		return AlgebraicType{Kind: KindSum, Sum: &SumType{Variants: variants}}
	case KindProduct:
		items := readNamedList(r)
		elems := make([]ProductElement, len(items))
		for i, it := range items {
			elems[i] = ProductElement{Name: it.Name, Type: it.Type}
		}
		return AlgebraicType{Kind: KindProduct, Product: &ProductType{Elements: elems}}
	case KindArray:
		elem := Deserialize(r)
		return AlgebraicType{Kind: KindArray, Array: &ArrayType{Elem: elem}}
	case KindString, KindBool, KindI8, KindU8, KindI16, KindU16, KindI32, KindU32,
		KindI64, KindU64, KindI128, KindU128, KindI256, KindU256, KindF32, KindF64:
		return AlgebraicType{Kind: kind}
	default:
		r.Fail(ErrInvalidKindTag)
		return AlgebraicType{}
	}
}

func readNamedList(r *bsatn.Reader) []namedType {
	n := r.ReadLen()
	if r.Error() != nil {
		return nil
	}
	items := make([]namedType, n)
	for i := 0; i < n; i++ {
		name := readOptionalName(r)
		typ := Deserialize(r)
		items[i] = namedType{Name: name, Type: typ}
	}
	return items
}
