package satn

import (
	"github.com/clockworklabs/spacetimedb-bsatn-go/internal/bsatn"
	"github.com/clockworklabs/spacetimedb-bsatn-go/pkg/sats"
)

// Codec binds a Go type T to the three operations the Trait Framework
// requires (spec §4.4): writing v's bytes, reconstructing a T from bytes,
// and describing T's schema. Adding a new type means constructing a new
// Codec[T] value — never modifying this package (spec §9 "Polymorphism").
type Codec[T any] interface {
	Serialize(w Sink, v T)
	Deserialize(r *bsatn.Reader) T
	AlgebraicType() sats.AlgebraicType
}

// funcCodec adapts three plain functions into a Codec[T], the same shape
// the teacher's pkg/spacetimedb/bsatn uses for its per-type
// Encode/Decode/BsatnSize trio, generalized here into a single value so
// composition helpers (ArrayOf, OptionOf, ProductOf, ...) can return a
// Codec[T] without declaring a named type per composition.
type funcCodec[T any] struct {
	serialize     func(w Sink, v T)
	deserialize   func(r *bsatn.Reader) T
	algebraicType func() sats.AlgebraicType
}

func (c funcCodec[T]) Serialize(w Sink, v T)       { c.serialize(w, v) }
func (c funcCodec[T]) Deserialize(r *bsatn.Reader) T { return c.deserialize(r) }
func (c funcCodec[T]) AlgebraicType() sats.AlgebraicType { return c.algebraicType() }

// newFuncCodec is the single constructor every composition helper in this
// package funnels through.
func newFuncCodec[T any](
	serialize func(w Sink, v T),
	deserialize func(r *bsatn.Reader) T,
	algebraicType func() sats.AlgebraicType,
) Codec[T] {
	return funcCodec[T]{serialize: serialize, deserialize: deserialize, algebraicType: algebraicType}
}

// ToBytes runs codec's Serialize against a fresh Writer and returns the
// resulting bytes, or the codec's error if one occurred.
func ToBytes[T any](codec Codec[T], v T) ([]byte, error) {
	w := bsatn.NewWriter()
	codec.Serialize(w, v)
	if err := w.Error(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// SizedBytes is ToBytes but pre-sizes the Writer's backing buffer with a
// SizeWriter pass first (spec §4.4: the size calculator "is used to
// pre-size buffers before serialization on hot paths").
func SizedBytes[T any](codec Codec[T], v T) ([]byte, error) {
	sw := bsatn.NewSizeWriter()
	codec.Serialize(sw, v)
	if err := sw.Error(); err != nil {
		return nil, err
	}
	w := bsatn.NewWriterSize(sw.Size())
	codec.Serialize(w, v)
	if err := w.Error(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// FromBytes runs codec's Deserialize against buf and returns the result,
// or the codec's error if one occurred. It does not check for trailing
// bytes; callers that need that check (spec §6.2) call r.AtEnd()
// themselves via FromBytesStrict.
func FromBytes[T any](codec Codec[T], buf []byte) (T, error) {
	r := bsatn.NewReader(buf)
	v := codec.Deserialize(r)
	if err := r.Error(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// FromBytesStrict is FromBytes but additionally requires the decode to
// consume the entire buffer (spec §6.2's trailing-bytes check), returning
// bsatn.ErrTrailingBytes otherwise.
func FromBytesStrict[T any](codec Codec[T], buf []byte) (T, error) {
	r := bsatn.NewReader(buf)
	v := codec.Deserialize(r)
	if err := r.Error(); err != nil {
		var zero T
		return zero, err
	}
	if !r.AtEnd() {
		var zero T
		return zero, bsatn.ErrTrailingBytes
	}
	return v, nil
}
