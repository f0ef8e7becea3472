// Package access implements the accessor registry of spec.md §4.2/§9:
// per-type projection vtables for the built-in container and
// vocabulary types a Handle may wrap. Reflect-based generic dispatch
// over arbitrary slice/map types is grounded on spewerspew-spew's
// common.go, which drives its own type-agnostic dump logic the same
// way (a reflect.Kind switch rather than per-type code).
package access

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/uchar"
)

// Sequence builds an Accessor for a contiguous sequence: any Go slice
// or array. Integer indexing supports negative indices (from the end)
// and yields the empty value out of range; slicing yields a
// sub-sequence. spec.md §4.2 accessor table, row "contiguous sequence".
// The "joined" attribute is the recovered util/join.hpp helper
// (SPEC_FULL.md §D.2): each element's default textual rendering,
// joined with ", ".
func Sequence() *core.Accessor {
	return &core.Accessor{
		IndexInt: func(data any, i int64) (core.Value, error) {
			rv := reflect.ValueOf(data)
			length := rv.Len()
			idx, ok := uchar.NormalizeIndex(int(i), length)
			if !ok {
				return core.None, nil
			}
			return core.FromAny(rv.Index(idx).Interface()), nil
		},
		IndexSlice: func(data any, lo, hi int64) (core.Value, error) {
			rv := reflect.ValueOf(data)
			if rv.Kind() == reflect.Array {
				// reflect can only slice an addressable array.
				cp := reflect.New(rv.Type()).Elem()
				cp.Set(rv)
				rv = cp
			}
			length := rv.Len()
			a, b, ok := uchar.NormalizeSlice(int(lo), int(hi), length)
			if !ok {
				return wrapEmptySlice(rv.Slice(0, 0).Interface()), nil
			}
			sub := rv.Slice(a, b)
			return core.FromAny(sub.Interface()), nil
		},
		Attribute: func(data any, name string) (core.Value, error) {
			switch name {
			case "length", "size":
				return core.Int(int64(reflect.ValueOf(data).Len())), nil
			case "joined":
				return core.OwnedString(joinElements(data)), nil
			default:
				return core.None, core.ErrAttributeUnavailable
			}
		},
	}
}

func joinElements(data any) string {
	rv := reflect.ValueOf(data)
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return strings.Join(parts, ", ")
}

func wrapEmptySlice(data any) core.Value {
	rv := reflect.ValueOf(data)
	empty := reflect.MakeSlice(rv.Type(), 0, 0)
	return core.FromAny(empty.Interface())
}

// BitSequence builds an Accessor for a bool slice or array "bit sequence": integer
// indexing returns a bool, negative counts from the end, out-of-range
// yields the empty value. spec.md §4.2 row "bit sequence".
func BitSequence() *core.Accessor {
	return &core.Accessor{
		IndexInt: func(data any, i int64) (core.Value, error) {
			bits := reflect.ValueOf(data)
			idx, ok := uchar.NormalizeIndex(int(i), bits.Len())
			if !ok {
				return core.None, nil
			}
			return core.Bool(bits.Index(idx).Bool()), nil
		},
	}
}
