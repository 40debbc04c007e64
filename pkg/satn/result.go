package satn

import (
	"github.com/clockworklabs/spacetimedb-bsatn-go/internal/bsatn"
	"github.com/clockworklabs/spacetimedb-bsatn-go/pkg/sats"
)

// Result tag assignment (spec §3.5): ok=0, err=1.
const (
	resultTagOk  uint8 = 0
	resultTagErr uint8 = 1
)

// Result represents either a success value T or a failure value E (spec
// §3.5, §4.6).
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Ok wraps v as a successful Result.
func Ok[T, E any](v T) Result[T, E] { return Result[T, E]{ok: true, value: v} }

// Err wraps e as a failed Result.
func Err[T, E any](e E) Result[T, E] { return Result[T, E]{err: e} }

// IsOk reports whether the result is the success variant.
func (r Result[T, E]) IsOk() bool { return r.ok }

// Value returns the success payload, or T's zero value if this is an
// Err.
func (r Result[T, E]) Value() T { return r.value }

// ErrValue returns the failure payload, or E's zero value if this is an
// Ok.
func (r Result[T, E]) ErrValue() E { return r.err }

// ResultOf builds a Codec for Result<T,E> from its two variant codecs.
// Its algebraic_type is a two-variant sum named "ok"/"err".
func ResultOf[T, E any](okCodec Codec[T], errCodec Codec[E]) Codec[Result[T, E]] {
	return newFuncCodec(
		func(w Sink, v Result[T, E]) {
			if v.ok {
				w.WriteSumTag(resultTagOk)
				okCodec.Serialize(w, v.value)
				return
			}
			w.WriteSumTag(resultTagErr)
			errCodec.Serialize(w, v.err)
		},
		func(r *bsatn.Reader) Result[T, E] {
			tag := r.ReadSumTag()
			if r.Error() != nil {
				return Result[T, E]{}
			}
			switch tag {
			case resultTagOk:
				return Ok[T, E](okCodec.Deserialize(r))
			case resultTagErr:
				return Err[T, E](errCodec.Deserialize(r))
			default:
				r.Fail(bsatn.ErrInvalidSumTag)
				return Result[T, E]{}
			}
		},
		func() sats.AlgebraicType {
			return sats.Sum(
				sats.NamedVariant(sats.VariantResultOk, okCodec.AlgebraicType()),
				sats.NamedVariant(sats.VariantResultErr, errCodec.AlgebraicType()),
			)
		},
	)
}
