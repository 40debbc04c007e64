package satn

import (
	"fmt"
	"reflect"

	"github.com/clockworklabs/spacetimedb-bsatn-go/internal/bsatn"
	"github.com/clockworklabs/spacetimedb-bsatn-go/pkg/sats"
)

// ReflectProduct builds a Codec[T] over a Go struct T using reflection,
// generalizing the teacher's EncodeStruct/encodeValue prototyping path
// (pkg/spacetimedb/bsatn/collections.go) from its untyped io.Writer
// switch into a typed, schema-aware composition. Unlike the teacher's
// version it never writes field names onto the wire (spec §4.5) and
// never sorts or counts fields into the stream — declared struct field
// order is the wire order (spec §8.1.7), matching ProductOf.
//
// Struct tag `bsatn:"name"` overrides the field's AlgebraicType element
// name; `bsatn:"-"` serializes the field as unnamed. Unexported fields
// are skipped. Supported field kinds are the primitive Sink/Reader
// pairs (bool, (u)int8/16/32/64, float32/64, string, []byte) plus
// nested structs (recursively reflected) and slices of a supported
// element kind. Panics at construction time if T has a field of an
// unsupported kind, since this failure is a binding-author bug rather
// than a runtime data condition.
func ReflectProduct[T any]() Codec[T] {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() != reflect.Struct {
		panic(fmt.Sprintf("satn.ReflectProduct: %s is not a struct", rt))
	}
	fields := reflectFields(rt)

	return newFuncCodec(
		func(w Sink, v T) {
			rv := reflect.ValueOf(v)
			for _, f := range fields {
				f.serialize(w, rv.Field(f.index))
			}
		},
		func(r *bsatn.Reader) T {
			var v T
			rv := reflect.ValueOf(&v).Elem()
			for _, f := range fields {
				if r.Error() != nil {
					break
				}
				f.deserialize(r, rv.Field(f.index))
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

type reflectField struct {
	index       int
	name        *string
	algType     sats.AlgebraicType
	serialize   func(w Sink, fv reflect.Value)
	deserialize func(r *bsatn.Reader, fv reflect.Value)
}

func reflectFields(rt reflect.Type) []reflectField {
	out := make([]reflectField, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("bsatn"); ok {
			if tag == "-" {
				out = append(out, reflectFieldFor(i, nil, sf.Type))
				continue
			}
			name = tag
		}
		out = append(out, reflectFieldFor(i, &name, sf.Type))
	}
	return out
}

func reflectFieldFor(index int, name *string, ft reflect.Type) reflectField {
	ser, deser, at := reflectCodecFor(ft)
	return reflectField{index: index, name: name, algType: at, serialize: ser, deserialize: deser}
}

func reflectCodecFor(ft reflect.Type) (func(Sink, reflect.Value), func(*bsatn.Reader, reflect.Value), sats.AlgebraicType) {
	switch ft.Kind() {
	case reflect.Bool:
		return func(w Sink, v reflect.Value) { w.WriteBool(v.Bool()) },
			func(r *bsatn.Reader, v reflect.Value) { v.SetBool(r.ReadBool()) },
			sats.BoolType()
	case reflect.Uint8:
		return func(w Sink, v reflect.Value) { w.WriteU8(uint8(v.Uint())) },
			func(r *bsatn.Reader, v reflect.Value) { v.SetUint(uint64(r.ReadU8())) },
			sats.U8Type()
	case reflect.Int8:
		return func(w Sink, v reflect.Value) { w.WriteI8(int8(v.Int())) },
			func(r *bsatn.Reader, v reflect.Value) { v.SetInt(int64(r.ReadI8())) },
			sats.I8Type()
	case reflect.Uint16:
		return func(w Sink, v reflect.Value) { w.WriteU16LE(uint16(v.Uint())) },
			func(r *bsatn.Reader, v reflect.Value) { v.SetUint(uint64(r.ReadU16LE())) },
			sats.U16Type()
	case reflect.Int16:
		return func(w Sink, v reflect.Value) { w.WriteI16LE(int16(v.Int())) },
			func(r *bsatn.Reader, v reflect.Value) { v.SetInt(int64(r.ReadI16LE())) },
			sats.I16Type()
	case reflect.Uint32:
		return func(w Sink, v reflect.Value) { w.WriteU32LE(uint32(v.Uint())) },
			func(r *bsatn.Reader, v reflect.Value) { v.SetUint(uint64(r.ReadU32LE())) },
			sats.U32Type()
	case reflect.Int32:
		return func(w Sink, v reflect.Value) { w.WriteI32LE(int32(v.Int())) },
			func(r *bsatn.Reader, v reflect.Value) { v.SetInt(int64(r.ReadI32LE())) },
			sats.I32Type()
	case reflect.Uint64:
		return func(w Sink, v reflect.Value) { w.WriteU64LE(v.Uint()) },
			func(r *bsatn.Reader, v reflect.Value) { v.SetUint(r.ReadU64LE()) },
			sats.U64Type()
	case reflect.Int64:
		return func(w Sink, v reflect.Value) { w.WriteI64LE(v.Int()) },
			func(r *bsatn.Reader, v reflect.Value) { v.SetInt(r.ReadI64LE()) },
			sats.I64Type()
	case reflect.Float32:
		return func(w Sink, v reflect.Value) { w.WriteF32LE(float32(v.Float())) },
			func(r *bsatn.Reader, v reflect.Value) { v.SetFloat(float64(r.ReadF32LE())) },
			sats.F32Type()
	case reflect.Float64:
		return func(w Sink, v reflect.Value) { w.WriteF64LE(v.Float()) },
			func(r *bsatn.Reader, v reflect.Value) { v.SetFloat(r.ReadF64LE()) },
			sats.F64Type()
	case reflect.String:
		return func(w Sink, v reflect.Value) { w.WriteString(v.String()) },
			func(r *bsatn.Reader, v reflect.Value) { v.SetString(r.ReadString()) },
			sats.StringType()
	case reflect.Slice:
		if ft.Elem().Kind() == reflect.Uint8 {
			return func(w Sink, v reflect.Value) { w.WriteBytes(v.Bytes()) },
				func(r *bsatn.Reader, v reflect.Value) { v.SetBytes(r.ReadBytes()) },
				sats.Array(sats.U8Type())
		}
		elemSer, elemDeser, elemAT := reflectCodecFor(ft.Elem())
		return func(w Sink, v reflect.Value) {
				w.WriteLen(v.Len())
				for i := 0; i < v.Len(); i++ {
					elemSer(w, v.Index(i))
				}
			},
			func(r *bsatn.Reader, v reflect.Value) {
				n := r.ReadLen()
				if r.Error() != nil {
					return
				}
				out := reflect.MakeSlice(ft, n, n)
				for i := 0; i < n; i++ {
					elemDeser(r, out.Index(i))
					if r.Error() != nil {
						return
					}
				}
				v.Set(out)
			},
			sats.Array(elemAT)
	case reflect.Struct:
		nested := reflectFields(ft)
		elems := make([]sats.ProductElement, len(nested))
		for i, f := range nested {
			elems[i] = sats.ProductElement{Name: f.name, Type: f.algType}
		}
		return func(w Sink, v reflect.Value) {
				for _, f := range nested {
					f.serialize(w, v.Field(f.index))
				}
			},
			func(r *bsatn.Reader, v reflect.Value) {
				for _, f := range nested {
					if r.Error() != nil {
						return
					}
					f.deserialize(r, v.Field(f.index))
				}
			},
			sats.AlgebraicType{Kind: sats.KindProduct, Product: &sats.ProductType{Elements: elems}}
	default:
		panic(fmt.Sprintf("satn.ReflectProduct: unsupported field kind %s", ft.Kind()))
	}
}
