package access

import (
	"cmp"
	"reflect"

	"golang.org/x/exp/slices"

	"github.com/papilio-go/papilio/internal/core"
)

// Mapping builds an Accessor for an arbitrary Go map: text-keyed
// indexing looks up a string key directly; integer indexing looks up
// an integer- or unsigned-integer-keyed map by its key's native type,
// rejecting a negative index against an unsigned key type (spec.md
// §4.2 row "mapping", "Integer index"). "min"/"max" attributes report
// the value stored under the smallest/largest key for maps whose key
// type is ordered (the
// spec.md §4.2 row "mapping" note: "min/max are only meaningful for
// ordered key types").
func Mapping() *core.Accessor {
	return &core.Accessor{
		IndexText: func(data any, key string) (core.Value, error) {
			rv := reflect.ValueOf(data)
			kt := rv.Type().Key()
			kv, ok := mapKeyFor(kt, key)
			if !ok {
				return core.None, nil
			}
			mv := rv.MapIndex(kv)
			if !mv.IsValid() {
				return core.None, nil
			}
			return core.FromAny(mv.Interface()), nil
		},
		IndexInt: func(data any, i int64) (core.Value, error) {
			rv := reflect.ValueOf(data)
			kt := rv.Type().Key()
			kv, ok := mapIntKeyFor(kt, i)
			if !ok {
				return core.None, nil
			}
			mv := rv.MapIndex(kv)
			if !mv.IsValid() {
				return core.None, nil
			}
			return core.FromAny(mv.Interface()), nil
		},
		Attribute: func(data any, name string) (core.Value, error) {
			switch name {
			case "length", "size":
				return core.Int(int64(reflect.ValueOf(data).Len())), nil
			case "min", "max":
				return mapExtremeKey(data, name == "max")
			default:
				return core.None, core.ErrAttributeUnavailable
			}
		},
	}
}

func mapKeyFor(kt reflect.Type, key string) (reflect.Value, bool) {
	if kt.Kind() == reflect.String {
		return reflect.ValueOf(key).Convert(kt), true
	}
	return reflect.Value{}, false
}

// mapIntKeyFor converts an integer index i into a reflect.Value of the
// map's key type kt, for mapping's "Integer index" accessor table row
// (spec.md §4.2: "value for integer key (unsigned keys reject negative)").
func mapIntKeyFor(kt reflect.Type, i int64) (reflect.Value, bool) {
	switch kt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.ValueOf(i).Convert(kt), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if i < 0 {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(uint64(i)).Convert(kt), true
	default:
		return reflect.Value{}, false
	}
}

// mapExtremeKey scans the map's keys with sort.Slice-compatible
// reflection for orderable (string, integer, float) key types, and
// returns the value stored under the extreme key.
func mapExtremeKey(data any, max bool) (core.Value, error) {
	rv := reflect.ValueOf(data)
	keys := rv.MapKeys()
	if len(keys) == 0 {
		return core.None, nil
	}
	kt := rv.Type().Key()
	var order []int
	switch kt.Kind() {
	case reflect.String:
		vals := make([]string, len(keys))
		for i, k := range keys {
			vals[i] = k.String()
		}
		order = argsortString(vals)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		vals := make([]int64, len(keys))
		for i, k := range keys {
			vals[i] = k.Int()
		}
		order = argsortInt64(vals)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		vals := make([]uint64, len(keys))
		for i, k := range keys {
			vals[i] = k.Uint()
		}
		order = argsortUint64(vals)
	case reflect.Float32, reflect.Float64:
		vals := make([]float64, len(keys))
		for i, k := range keys {
			vals[i] = k.Float()
		}
		order = argsortFloat64(vals)
	default:
		return core.None, core.ErrAttributeUnavailable
	}
	idx := order[0]
	if max {
		idx = order[len(order)-1]
	}
	mv := rv.MapIndex(keys[idx])
	return core.FromAny(mv.Interface()), nil
}

// argsort* return the permutation of indices that sorts vals
// ascending, built on golang.org/x/exp/slices so the mapping
// accessor's min/max ordering shares the same sort primitive the rest
// of the package uses rather than hand-rolling a comparator.

func argsortString(vals []string) []int {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int { return cmp.Compare(vals[a], vals[b]) })
	return idx
}

func argsortInt64(vals []int64) []int {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int { return cmp.Compare(vals[a], vals[b]) })
	return idx
}

func argsortUint64(vals []uint64) []int {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int { return cmp.Compare(vals[a], vals[b]) })
	return idx
}

func argsortFloat64(vals []float64) []int {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int { return cmp.Compare(vals[a], vals[b]) })
	return idx
}
