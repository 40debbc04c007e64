package satn

import (
	"github.com/clockworklabs/spacetimedb-bsatn-go/internal/bsatn"
	"github.com/clockworklabs/spacetimedb-bsatn-go/pkg/sats"
)

// SumValue is the generic representation of a value of a user-defined Sum
// type (spec §4.4, §4.6): a variant tag plus that variant's payload,
// type-erased since Go has no native tagged-union type. Bindings that
// want a named Go enum type typically wrap SumValue rather than using it
// directly.
type SumValue struct {
	Tag     uint8
	Payload any
}

// Variant describes one arm of a Sum for the purposes of SumOf: its
// optional name, its schema, and how to move its payload through a Sink
// or Reader with the payload type erased to any.
type Variant struct {
	name        *string
	algType     sats.AlgebraicType
	serialize   func(w Sink, payload any)
	deserialize func(r *bsatn.Reader) any
}

// VariantFor builds a Variant carrying a named payload of type T, bound
// to codec.
func VariantFor[T any](name string, codec Codec[T]) Variant {
	return Variant{
		name:        &name,
		algType:     codec.AlgebraicType(),
		serialize:   func(w Sink, payload any) { codec.Serialize(w, payload.(T)) },
		deserialize: func(r *bsatn.Reader) any { return codec.Deserialize(r) },
	}
}

// UnnamedVariantFor builds a Variant with no name, carrying a payload of
// type T bound to codec.
func UnnamedVariantFor[T any](codec Codec[T]) Variant {
	return Variant{
		algType:     codec.AlgebraicType(),
		serialize:   func(w Sink, payload any) { codec.Serialize(w, payload.(T)) },
		deserialize: func(r *bsatn.Reader) any { return codec.Deserialize(r) },
	}
}

// SumOf builds a Codec[SumValue] from an ordered list of variants (spec
// §4.4: "variant tag then the selected variant's payload ... error on
// out-of-range tag").
func SumOf(variants ...Variant) Codec[SumValue] {
	return newFuncCodec(
		func(w Sink, v SumValue) {
			if int(v.Tag) >= len(variants) {
				return // caller error; nothing sane to write
			}
			w.WriteSumTag(v.Tag)
			variants[v.Tag].serialize(w, v.Payload)
		},
		func(r *bsatn.Reader) SumValue {
			tag := r.ReadSumTag()
			if r.Error() != nil {
				return SumValue{}
			}
			if int(tag) >= len(variants) {
				logger.Debugw("satn: rejected out-of-range sum tag", "tag", tag, "variants", len(variants))
				r.Fail(bsatn.ErrInvalidSumTag)
				return SumValue{}
			}
			payload := variants[tag].deserialize(r)
			return SumValue{Tag: tag, Payload: payload}
		},
		func() sats.AlgebraicType {
			svs := make([]sats.SumVariant, len(variants))
			for i, v := range variants {
				svs[i] = sats.SumVariant{Name: v.name, Type: v.algType}
			}
			return sats.AlgebraicType{Kind: sats.KindSum, Sum: &sats.SumType{Variants: svs}}
		},
	)
}
