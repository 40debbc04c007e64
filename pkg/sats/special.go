package sats

// Reserved sentinel field names (spec §3.5, §6.4) that mark a one-element
// Product as a special product rather than an ordinary user type. Uuid is
// not part of the distilled spec's table; it is supplemented from the
// original C++ source's bindings-cpp uuid.h, which documents it as a
// sixth special product structurally identical to Identity/ConnectionId.
const (
	FieldIdentity     = "__identity__"
	FieldConnectionId = "__connection_id__"
	FieldTimestamp    = "__timestamp_micros_since_unix_epoch__"
	FieldTimeDuration = "__time_duration_micros__"
	FieldUuid         = "__uuid__"
)

var reservedFieldNames = map[string]bool{
	FieldIdentity:     true,
	FieldConnectionId: true,
	FieldTimestamp:    true,
	FieldTimeDuration: true,
	FieldUuid:         true,
}

// Reserved sum variant names for Option, Result, and ScheduleAt (spec
// §3.5, §6.4). A user-defined Sum must not reuse these name sets; the
// registry treats a Sum whose variant names match one of them as inline
// regardless of how it was constructed.
const (
	VariantOptionSome = "some"
	VariantOptionNone = "none"
	VariantResultOk   = "ok"
	VariantResultErr  = "err"
	VariantScheduleAtInterval = "Interval"
	VariantScheduleAtTime     = "Time"
)

// IsReservedFieldName reports whether name is one of the sentinel field
// names in §3.5/§6.4.
func IsReservedFieldName(name string) bool {
	return reservedFieldNames[name]
}

// IsSpecialProduct reports whether p is recognized structurally as a
// special product (spec §4.5): exactly one element, that element named,
// and the name in the reserved set.
func IsSpecialProduct(p *ProductType) bool {
	if p == nil || len(p.Elements) != 1 {
		return false
	}
	el := p.Elements[0]
	return el.Name != nil && IsReservedFieldName(*el.Name)
}

// IsOptionSum reports whether s is the two-variant Option sum shape
// (variant names "some" then "none", in that order — spec §3.5).
func IsOptionSum(s *SumType) bool {
	return sumVariantNamesMatch(s, VariantOptionSome, VariantOptionNone)
}

// IsResultSum reports whether s is the two-variant Result sum shape
// ("ok" then "err").
func IsResultSum(s *SumType) bool {
	return sumVariantNamesMatch(s, VariantResultOk, VariantResultErr)
}

// IsScheduleAtSum reports whether s is the ScheduleAt sum shape
// ("Interval" then "Time" — spec §3.5, tag order from original_source per
// SPEC_FULL.md §C.3).
func IsScheduleAtSum(s *SumType) bool {
	return sumVariantNamesMatch(s, VariantScheduleAtInterval, VariantScheduleAtTime)
}

func sumVariantNamesMatch(s *SumType, first, second string) bool {
	if s == nil || len(s.Variants) != 2 {
		return false
	}
	a, b := s.Variants[0].Name, s.Variants[1].Name
	return a != nil && b != nil && *a == first && *b == second
}

// IsInlineOnly reports whether t must always be inlined at its use site
// rather than registered in a Typespace (spec §3.3, §4.3): a primitive,
// an Array, or any of the special Sum/Product shapes above.
func IsInlineOnly(t AlgebraicType) bool {
	switch t.Kind {
	case KindArray:
		return true
	case KindProduct:
		return IsSpecialProduct(t.Product)
	case KindSum:
		return IsOptionSum(t.Sum) || IsResultSum(t.Sum) || IsScheduleAtSum(t.Sum)
	default:
		return t.IsPrimitive()
	}
}
