package core

import (
	"reflect"

	"github.com/papilio-go/papilio/internal/uchar"
)

// FromAny converts an arbitrary Go value into a Value, choosing the
// inline primitive representation whenever v's dynamic type matches
// one of spec.md §3's small payloads, and erasing everything else
// behind a Handle (spec.md §9: "a closed enum over the handful of
// primitive payloads plus a vtable for user types").
//
// Handles built by FromAny take their Accessor and formatter factory
// from the GenericAccessor and GenericFormatter hooks below; a hook
// that is nil leaves the corresponding Handle field nil.
func FromAny(v any) Value {
	switch x := v.(type) {
	case nil:
		return None
	case bool:
		return Bool(x)
	case uchar.Codepoint:
		return Codepoint(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Uint(uint64(x))
	case uint8:
		return Uint(uint64(x))
	case uint16:
		return Uint(uint64(x))
	case uint32:
		return Uint(uint64(x))
	case uint64:
		return Uint(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case string:
		return StringRef(x)
	case Value:
		return x
	default:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
			return Pointer(rv.Pointer())
		}
		return wrapHandle(v)
	}
}

// GenericAccessor is a dependency-injection hook: internal/access sets
// this in its package init() to supply reflect-based projection
// support for arbitrary slice/array/map types, without core needing to
// import internal/access (which itself imports core). The same
// function-variable pattern is used between internal/builtin and
// internal/interp for dynamic width/precision fields.
var GenericAccessor func(v any) *Accessor

// GenericFormatter is the equivalent hook for formatters. No package
// in this module sets it; when it is set, internal/interp consults it
// for a handle that has no formatter factory of its own.
var GenericFormatter func(v any) FormatterFactory

func wrapHandle(v any) Value {
	h := &Handle{
		Data:        v,
		TypeName:    reflect.TypeOf(v).String(),
		Formattable: true,
	}
	if GenericAccessor != nil {
		h.Access = GenericAccessor(v)
	}
	if GenericFormatter != nil {
		h.NewFormatter = GenericFormatter(v)
	}
	return FromHandle(h)
}
