package satn

import (
	"github.com/clockworklabs/spacetimedb-bsatn-go/internal/bsatn"
	"github.com/clockworklabs/spacetimedb-bsatn-go/pkg/sats"
)

// ArrayOf builds a Codec for Array<T> from elem's codec: a length prefix
// followed by that many elem-encoded values, in order (spec §3.4, §4.4).
func ArrayOf[T any](elem Codec[T]) Codec[[]T] {
	return newFuncCodec(
		func(w Sink, v []T) {
			w.WriteLen(len(v))
			for _, item := range v {
				elem.Serialize(w, item)
			}
		},
		func(r *bsatn.Reader) []T {
			n := r.ReadLen()
			if r.Error() != nil {
				return nil
			}
			out := make([]T, n)
			for i := 0; i < n; i++ {
				out[i] = elem.Deserialize(r)
				if r.Error() != nil {
					return nil
				}
			}
			return out
		},
		func() sats.AlgebraicType { return sats.Array(elem.AlgebraicType()) },
	)
}
