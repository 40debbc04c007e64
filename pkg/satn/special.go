package satn

import (
	"github.com/clockworklabs/spacetimedb-bsatn-go/internal/bsatn"
	"github.com/clockworklabs/spacetimedb-bsatn-go/pkg/sats"
)

// Identity, ConnectionId, Timestamp, TimeDuration, and Uuid are the
// special products of spec §3.5 (Uuid supplemented per SPEC_FULL.md §C.4
// from original_source/.../bindings-cpp/include/spacetimedb/bsatn/uuid.h).
// Each serializes as its payload only: the sentinel field name is schema
// metadata and never reaches the wire (spec §4.5).

// Identity wraps the 32-byte value behind SpacetimeDB's __identity__
// sentinel product.
type Identity struct{ Bytes [32]byte }

var IdentityCodec Codec[Identity] = newFuncCodec(
	func(w Sink, v Identity) { w.WriteU256LE(v.Bytes) },
	func(r *bsatn.Reader) Identity { return Identity{Bytes: r.ReadU256LE()} },
	func() sats.AlgebraicType {
		return sats.Product(sats.NamedElement(sats.FieldIdentity, sats.U256Type()))
	},
)

// ConnectionId wraps the 16-byte value behind __connection_id__.
type ConnectionId struct{ Bytes [16]byte }

var ConnectionIdCodec Codec[ConnectionId] = newFuncCodec(
	func(w Sink, v ConnectionId) { w.WriteRawBytes(v.Bytes[:]) },
	func(r *bsatn.Reader) ConnectionId {
		var c ConnectionId
		copy(c.Bytes[:], r.ReadRawBytes(16))
		return c
	},
	func() sats.AlgebraicType {
		return sats.Product(sats.NamedElement(sats.FieldConnectionId, sats.U128Type()))
	},
)

// Uuid wraps a 16-byte value behind __uuid__, structurally identical to
// ConnectionId but with its own sentinel name (SPEC_FULL.md §C.4).
type Uuid struct{ Bytes [16]byte }

var UuidCodec Codec[Uuid] = newFuncCodec(
	func(w Sink, v Uuid) { w.WriteRawBytes(v.Bytes[:]) },
	func(r *bsatn.Reader) Uuid {
		var u Uuid
		copy(u.Bytes[:], r.ReadRawBytes(16))
		return u
	},
	func() sats.AlgebraicType {
		return sats.Product(sats.NamedElement(sats.FieldUuid, sats.U128Type()))
	},
)

// Timestamp wraps microseconds since the Unix epoch behind
// __timestamp_micros_since_unix_epoch__.
type Timestamp struct{ MicrosSinceUnixEpoch int64 }

var TimestampCodec Codec[Timestamp] = newFuncCodec(
	func(w Sink, v Timestamp) { w.WriteI64LE(v.MicrosSinceUnixEpoch) },
	func(r *bsatn.Reader) Timestamp { return Timestamp{MicrosSinceUnixEpoch: r.ReadI64LE()} },
	func() sats.AlgebraicType {
		return sats.Product(sats.NamedElement(sats.FieldTimestamp, sats.I64Type()))
	},
)

// TimeDuration wraps a microsecond count behind __time_duration_micros__.
type TimeDuration struct{ Micros int64 }

var TimeDurationCodec Codec[TimeDuration] = newFuncCodec(
	func(w Sink, v TimeDuration) { w.WriteI64LE(v.Micros) },
	func(r *bsatn.Reader) TimeDuration { return TimeDuration{Micros: r.ReadI64LE()} },
	func() sats.AlgebraicType {
		return sats.Product(sats.NamedElement(sats.FieldTimeDuration, sats.I64Type()))
	},
)

// ScheduleAt tag assignment: Interval=0, Time=1 (SPEC_FULL.md §C.3,
// following original_source/include/spacetimedb/bsatn/schedule_at_impl.h
// since spec.md itself leaves the order implicit).
const (
	scheduleAtTagInterval uint8 = 0
	scheduleAtTagTime     uint8 = 1
)

// ScheduleAt is the sum of { Interval: TimeDuration, Time: Timestamp }
// (spec §3.5), never registered — always inlined.
type ScheduleAt struct {
	IsInterval bool
	Interval   TimeDuration
	Time       Timestamp
}

// ScheduleAtInterval builds a ScheduleAt firing after d.
func ScheduleAtInterval(d TimeDuration) ScheduleAt {
	return ScheduleAt{IsInterval: true, Interval: d}
}

// ScheduleAtTime builds a ScheduleAt firing at t.
func ScheduleAtTime(t Timestamp) ScheduleAt {
	return ScheduleAt{Time: t}
}

var ScheduleAtCodec Codec[ScheduleAt] = newFuncCodec(
	func(w Sink, v ScheduleAt) {
		if v.IsInterval {
			w.WriteSumTag(scheduleAtTagInterval)
			TimeDurationCodec.Serialize(w, v.Interval)
			return
		}
		w.WriteSumTag(scheduleAtTagTime)
		TimestampCodec.Serialize(w, v.Time)
	},
	func(r *bsatn.Reader) ScheduleAt {
		tag := r.ReadSumTag()
		if r.Error() != nil {
			return ScheduleAt{}
		}
		switch tag {
		case scheduleAtTagInterval:
			return ScheduleAtInterval(TimeDurationCodec.Deserialize(r))
		case scheduleAtTagTime:
			return ScheduleAtTime(TimestampCodec.Deserialize(r))
		default:
			logger.Debugw("satn: rejected out-of-range ScheduleAt tag", "tag", tag)
			r.Fail(bsatn.ErrInvalidSumTag)
			return ScheduleAt{}
		}
	},
	func() sats.AlgebraicType {
		return sats.Sum(
			sats.NamedVariant(sats.VariantScheduleAtInterval, TimeDurationCodec.AlgebraicType()),
			sats.NamedVariant(sats.VariantScheduleAtTime, TimestampCodec.AlgebraicType()),
		)
	},
)
