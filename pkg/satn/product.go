package satn

import (
	"github.com/clockworklabs/spacetimedb-bsatn-go/internal/bsatn"
	"github.com/clockworklabs/spacetimedb-bsatn-go/pkg/sats"
)

// Field describes one element of a Product type over a Go struct S: its
// optional name, its schema, and accessors that move the field's value
// into and out of an S (spec §3.4: "fields in declared order;
// deserialization constructs the aggregate by reading fields in the same
// order").
type Field[S any] struct {
	name      *string
	algType   sats.AlgebraicType
	serialize func(w Sink, s *S)
	apply     func(r *bsatn.Reader, s *S)
}

// NamedField builds a Field with a present name, bound to codec via get
// (read the field out of S) and set (write the decoded value into S).
func NamedField[S, T any](name string, codec Codec[T], get func(*S) T, set func(*S, T)) Field[S] {
	return Field[S]{
		name:      &name,
		algType:   codec.AlgebraicType(),
		serialize: func(w Sink, s *S) { codec.Serialize(w, get(s)) },
		apply: func(r *bsatn.Reader, s *S) {
			set(s, codec.Deserialize(r))
		},
	}
}

// UnnamedField is NamedField without a field name, for tuple-like
// products.
func UnnamedField[S, T any](codec Codec[T], get func(*S) T, set func(*S, T)) Field[S] {
	return Field[S]{
		algType:   codec.AlgebraicType(),
		serialize: func(w Sink, s *S) { codec.Serialize(w, get(s)) },
		apply: func(r *bsatn.Reader, s *S) {
			set(s, codec.Deserialize(r))
		},
	}
}

// ProductOf builds a Codec[S] over a Go struct S from an ordered list of
// Fields. Order is load-bearing (spec §8.1.7): permuting the Field list
// changes the encoded bytes. Field names never reach the wire (spec
// §4.5); they exist only in the returned AlgebraicType.
func ProductOf[S any](fields ...Field[S]) Codec[S] {
	return newFuncCodec(
		func(w Sink, v S) {
			for _, f := range fields {
				f.serialize(w, &v)
			}
		},
		func(r *bsatn.Reader) S {
			var v S
			for _, f := range fields {
				f.apply(r, &v)
				if r.Error() != nil {
					return v
				}
			}
			return v
		},
		func() sats.AlgebraicType {
			elems := make([]sats.ProductElement, len(fields))
			for i, f := range fields {
				elems[i] = sats.ProductElement{Name: f.name, Type: f.algType}
			}
			return sats.AlgebraicType{Kind: sats.KindProduct, Product: &sats.ProductType{Elements: elems}}
		},
	)
}
