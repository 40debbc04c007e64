package sats

import (
	"encoding/binary"
	"reflect"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/clockworklabs/spacetimedb-bsatn-go/internal/bsatn"
)

// Registry is the Type Registry (spec §4.3): an ordered, append-only list
// of AlgebraicTypes plus two side indices — one keyed by the identity of
// the originating user-defined Go type, one keyed by a structural hash —
// used to deduplicate registrations. It must be mutated from exactly one
// goroutine during module description (spec §5); call Freeze once
// description is complete to obtain a read-only, concurrency-safe view.
type Registry struct {
	mu              sync.Mutex
	types           []AlgebraicType
	names           []string
	byIdentity      map[reflect.Type]uint32
	byStructureHash map[uint64][]uint32
	frozen          bool
}

// NewRegistry returns an empty Registry, optionally pre-sizing its
// backing slice/maps to expectedTypes (a capacity hint only; zero is
// fine).
func NewRegistry(expectedTypes int) *Registry {
	if expectedTypes < 0 {
		expectedTypes = 0
	}
	return &Registry{
		types:           make([]AlgebraicType, 0, expectedTypes),
		names:           make([]string, 0, expectedTypes),
		byIdentity:      make(map[reflect.Type]uint32, expectedTypes),
		byStructureHash: make(map[uint64][]uint32, expectedTypes),
	}
}

// FindByIdentity returns the index previously registered for the
// user-defined Go type tid, if any (spec §4.3 find_by_cpp_type).
func (reg *Registry) FindByIdentity(tid reflect.Type) (uint32, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	idx, ok := reg.byIdentity[tid]
	return idx, ok
}

// FindByStructure returns the index of a previously registered type
// structurally equal to t, if any (spec §4.3 find_by_structure). Used to
// deduplicate anonymous composites that carry no Go type identity.
func (reg *Registry) FindByStructure(t AlgebraicType) (uint32, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.findByStructureLocked(t)
}

func (reg *Registry) findByStructureLocked(t AlgebraicType) (uint32, bool) {
	h := structuralHash(t)
	for _, idx := range reg.byStructureHash[h] {
		if reg.types[idx].Equal(t) {
			return idx, true
		}
	}
	return 0, false
}

// Register adds t to the registry under the optional Go type identity tid
// and human-readable name, returning its stable index. If t is one of the
// inline-only shapes (spec §3.3: primitives, Array, Option, Result,
// ScheduleAt, special products), Register does not append anything and
// returns inline=true — callers must treat this as "emit t inline at the
// use site, never a Ref". Registering the same (structure, identity) pair
// twice is idempotent: it returns the existing index and appends nothing
// (spec §8.1.4).
func (reg *Registry) Register(t AlgebraicType, tid reflect.Type, name string) (idx uint32, inline bool) {
	if IsInlineOnly(t) {
		logger.Debugw("sats: rejected inline-only type from registration", "kind", t.Kind.String(), "name", name)
		return 0, true
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if reg.frozen {
		panic("sats: Register called on a frozen Registry")
	}

	if tid != nil {
		if existing, ok := reg.byIdentity[tid]; ok {
			return existing, false
		}
	}
	if existing, ok := reg.findByStructureLocked(t); ok && tid == nil {
		return existing, false
	}

	idx = uint32(len(reg.types))
	reg.types = append(reg.types, t.Clone())
	reg.names = append(reg.names, name)
	if tid != nil {
		reg.byIdentity[tid] = idx
	}
	h := structuralHash(t)
	reg.byStructureHash[h] = append(reg.byStructureHash[h], idx)

	logger.Debugw("sats: registered type", "index", idx, "name", name, "kind", t.Kind.String())
	return idx, false
}

// Len returns the number of registered types.
func (reg *Registry) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.types)
}

// Iter returns the registered types in registration order, for emitting
// the typespace (spec §6.1). The returned slice is a defensive copy.
func (reg *Registry) Iter() []AlgebraicType {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	out := make([]AlgebraicType, len(reg.types))
	for i, t := range reg.types {
		out[i] = t.Clone()
	}
	return out
}

// Typespace is the frozen, read-only view of a Registry produced once
// module description completes (spec §3.6, §5: "after freezing, it is
// read-only and shareable without synchronization"). Its name->index
// lookup is served from a concurrent-safe cache so serializers running on
// separate goroutines never contend on a mutex.
type Typespace struct {
	types []AlgebraicType
	cache *xsync.MapOf[string, uint32]
}

// Freeze converts reg into an immutable Typespace. reg must not be used
// for further registration afterward.
func (reg *Registry) Freeze() *Typespace {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.frozen = true

	cache := xsync.NewMapOf[string, uint32]()
	types := make([]AlgebraicType, len(reg.types))
	for i, t := range reg.types {
		types[i] = t.Clone()
		if reg.names[i] != "" {
			cache.Store(reg.names[i], uint32(i))
		}
	}
	return &Typespace{types: types, cache: cache}
}

// Len returns the number of types in the typespace.
func (ts *Typespace) Len() int { return len(ts.types) }

// At returns the type registered at index i (spec §3.3: indices are
// stable and append-only) and whether i was in range.
func (ts *Typespace) At(i uint32) (AlgebraicType, bool) {
	if int(i) >= len(ts.types) {
		return AlgebraicType{}, false
	}
	return ts.types[i], true
}

// Resolve looks up a type's index by its registered name.
func (ts *Typespace) Resolve(name string) (uint32, bool) {
	return ts.cache.Load(name)
}

// Iter returns the frozen types in registration order.
func (ts *Typespace) Iter() []AlgebraicType {
	out := make([]AlgebraicType, len(ts.types))
	copy(out, ts.types)
	return out
}

// Serialize writes the typespace wire format (spec §6.1): a u32 count
// followed by each registered type serialized per §4.2, in registration
// order. This is the module-description step a host loads once at
// module load.
func (ts *Typespace) Serialize(w *bsatn.Writer) {
	w.WriteLen(len(ts.types))
	for _, t := range ts.types {
		t.Serialize(w)
	}
}

// DeserializeTypespace reads back a typespace previously written by
// Serialize. The result is unnamed: §6.1's wire format carries no type
// names, only positional Refs, so Resolve on the returned Typespace
// always misses.
func DeserializeTypespace(r *bsatn.Reader) *Typespace {
	n := r.ReadLen()
	if r.Error() != nil {
		return &Typespace{cache: xsync.NewMapOf[string, uint32]()}
	}
	types := make([]AlgebraicType, 0, n)
	for i := 0; i < n; i++ {
		types = append(types, Deserialize(r))
		if r.Error() != nil {
			break
		}
	}
	return &Typespace{types: types, cache: xsync.NewMapOf[string, uint32]()}
}

// structuralHash computes an xxhash64 over a canonical byte encoding of
// t's shape, ignoring names (names are metadata, not structure — spec
// §3.2). A Ref's target is hashed as its raw index only; the hash never
// dereferences through the registry (spec §9 "Cyclic structures").
func structuralHash(t AlgebraicType) uint64 {
	var buf []byte
	buf = appendStructuralKey(buf, t)
	return xxhash.Sum64(buf)
}

func appendStructuralKey(buf []byte, t AlgebraicType) []byte {
	buf = append(buf, byte(t.Kind))
	switch t.Kind {
	case KindRef:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], t.Ref)
		buf = append(buf, b[:]...)
	case KindSum:
		buf = appendLen(buf, len(t.Sum.Variants))
		for _, v := range t.Sum.Variants {
			buf = appendStructuralKey(buf, v.Type)
		}
	case KindProduct:
		buf = appendLen(buf, len(t.Product.Elements))
		for _, e := range t.Product.Elements {
			buf = appendStructuralKey(buf, e.Type)
		}
	case KindArray:
		buf = appendStructuralKey(buf, t.Array.Elem)
	}
	return buf
}

func appendLen(buf []byte, n int) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(n))
	return append(buf, b[:]...)
}
