package access

import (
	"reflect"

	"github.com/papilio-go/papilio/internal/core"
)

// Tuple builds an Accessor for a length-2 sequence exposed as a
// pair-like type: "first"/"second" attributes alongside ordinary
// integer indexing, spec.md §4.2 row "tuple-like (arity 2)".
func Tuple() *core.Accessor {
	seq := Sequence()
	return &core.Accessor{
		IndexInt:   seq.IndexInt,
		IndexSlice: seq.IndexSlice,
		Attribute: func(data any, name string) (core.Value, error) {
			rv := reflect.ValueOf(data)
			switch name {
			case "first":
				return core.FromAny(rv.Index(0).Interface()), nil
			case "second":
				return core.FromAny(rv.Index(1).Interface()), nil
			default:
				return core.None, core.ErrAttributeUnavailable
			}
		},
	}
}
