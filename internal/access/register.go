package access

import (
	"reflect"

	"github.com/papilio-go/papilio/internal/core"
)

func init() {
	core.GenericAccessor = DispatchGeneric
}

// DispatchGeneric is the core.GenericAccessor hook: it picks a generic
// Accessor by reflect.Kind so that any slice, array, or map type gains
// projection support without per-type registration, mirroring the
// reflect.Kind switch spewerspew-spew's common.go uses to dump
// arbitrary values.
func DispatchGeneric(v any) *core.Accessor {
	switch v.(type) {
	case hasOptional:
		return OptionalAccessor()
	case Union:
		return UnionAccessor()
	case hasExpected:
		return ExpectedAccessor()
	case TypeID:
		return TypeIDAccessor()
	case BrokenDownTime:
		return ChronoAccessor()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Bool {
			return BitSequence()
		}
		// Only a fixed-size array is a plausible tuple/pair stand-in; a
		// dynamically-sized slice that merely happens to have length 2
		// is an ordinary contiguous sequence, not tuple-like.
		if rv.Kind() == reflect.Array && rv.Len() == 2 {
			return Tuple()
		}
		return Sequence()
	case reflect.Map:
		return Mapping()
	default:
		return nil
	}
}
