package satn

import (
	"github.com/clockworklabs/spacetimedb-bsatn-go/internal/bsatn"
	"github.com/clockworklabs/spacetimedb-bsatn-go/pkg/sats"
)

// Option tag assignment (spec §3.5): some=0, none=1. Non-standard
// relative to many ecosystems' Option encodings; spec §9 open question 1
// says to follow this exactly rather than the more common 0=none/1=some.
const (
	optionTagSome uint8 = 0
	optionTagNone uint8 = 1
)

// Option represents a possibly-absent T (spec §3.5, §4.6). Zero value is
// None.
type Option[T any] struct {
	some  bool
	value T
}

// Some wraps v as a present Option.
func Some[T any](v T) Option[T] { return Option[T]{some: true, value: v} }

// None returns the absent Option for T.
func None[T any]() Option[T] { return Option[T]{} }

// IsSome reports whether the option carries a value.
func (o Option[T]) IsSome() bool { return o.some }

// Value returns the wrapped value, or T's zero value if the option is
// None.
func (o Option[T]) Value() T { return o.value }

// OptionOf builds a Codec for Option<T> from inner's codec. Its
// algebraic_type is a two-variant sum named "some"/"none" (spec §3.5);
// the registry recognizes this shape via sats.IsOptionSum and refuses to
// register it (spec §3.3).
func OptionOf[T any](inner Codec[T]) Codec[Option[T]] {
	return newFuncCodec(
		func(w Sink, v Option[T]) {
			if v.some {
				w.WriteSumTag(optionTagSome)
				inner.Serialize(w, v.value)
				return
			}
			w.WriteSumTag(optionTagNone)
		},
		func(r *bsatn.Reader) Option[T] {
			tag := r.ReadSumTag()
			if r.Error() != nil {
				return Option[T]{}
			}
			switch tag {
			case optionTagSome:
				return Some(inner.Deserialize(r))
			case optionTagNone:
				return None[T]()
			default:
				logger.Debugw("satn: rejected out-of-range option tag", "tag", tag)
				r.Fail(bsatn.ErrInvalidOptionTag)
				return Option[T]{}
			}
		},
		func() sats.AlgebraicType {
			return sats.Sum(
				sats.NamedVariant(sats.VariantOptionSome, inner.AlgebraicType()),
				sats.NamedVariant(sats.VariantOptionNone, sats.Product()),
			)
		},
	)
}
