package access

import "github.com/papilio-go/papilio/internal/core"

// Optional is the Go reinterpretation of the C++ optional<T> vocabulary
// type referenced by spec.md §9 ("no direct Go equivalent; represented
// here as an explicit two-field struct rather than a pointer, so that
// zero-value T doesn't get mistaken for the empty state").
type Optional[T any] struct {
	Val T
	Ok  bool
}

// Some constructs an engaged Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{Val: v, Ok: true} }

// NoneOf constructs a disengaged Optional.
func NoneOf[T any]() Optional[T] { return Optional[T]{} }

func (o Optional[T]) HasValue() bool { return o.Ok }
func (o Optional[T]) Get() any       { return o.Val }

type hasOptional interface {
	HasValue() bool
	Get() any
}

// OptionalAccessor exposes "has_value" and "value" for any Optional[T],
// matching spec.md §4.2's "optional" accessor row: formatting an
// engaged optional formats its contained value; a disengaged one
// yields the empty value for "value" and false for "has_value".
func OptionalAccessor() *core.Accessor {
	return &core.Accessor{
		Attribute: func(data any, name string) (core.Value, error) {
			o, ok := data.(hasOptional)
			if !ok {
				return core.None, core.ErrAttributeUnavailable
			}
			switch name {
			case "has_value":
				return core.Bool(o.HasValue()), nil
			case "value":
				if !o.HasValue() {
					return core.None, nil
				}
				return core.FromAny(o.Get()), nil
			default:
				return core.None, core.ErrAttributeUnavailable
			}
		},
	}
}

// Union is the Go reinterpretation of a tagged variant/union
// vocabulary type: exactly one of Alternatives is active, selected by
// Active. spec.md §9 notes this is the same closed-enum-plus-payload
// shape as Value itself, generalized to caller-supplied alternatives.
type Union struct {
	Active       int
	Alternatives []any
}

func NewUnion(active int, alternatives ...any) Union {
	return Union{Active: active, Alternatives: alternatives}
}

// UnionAccessor exposes "index" (the active alternative's ordinal) and
// integer indexing into the alternative list (out-of-range yields the
// empty value; indexing any alternative other than the active one is
// likewise empty, matching variant's "only the active alternative is
// accessible" invariant).
func UnionAccessor() *core.Accessor {
	return &core.Accessor{
		IndexInt: func(data any, i int64) (core.Value, error) {
			u := data.(Union)
			if int(i) != u.Active || i < 0 || int(i) >= len(u.Alternatives) {
				return core.None, nil
			}
			return core.FromAny(u.Alternatives[u.Active]), nil
		},
		Attribute: func(data any, name string) (core.Value, error) {
			u := data.(Union)
			switch name {
			case "index":
				return core.Int(int64(u.Active)), nil
			case "value":
				if u.Active < 0 || u.Active >= len(u.Alternatives) {
					return core.None, nil
				}
				return core.FromAny(u.Alternatives[u.Active]), nil
			default:
				return core.None, core.ErrAttributeUnavailable
			}
		},
	}
}

// Expected is the Go reinterpretation of expected<T,E>: either a
// success value or an error payload, never both. spec.md §9.
type Expected[T any] struct {
	Val   T
	Err   any
	HasOk bool
}

func Ok[T any](v T) Expected[T]            { return Expected[T]{Val: v, HasOk: true} }
func Err[T any](e any) Expected[T]         { return Expected[T]{Err: e} }
func (e Expected[T]) HasValue() bool       { return e.HasOk }
func (e Expected[T]) Value() any           { return e.Val }
func (e Expected[T]) Error() any           { return e.Err }

type hasExpected interface {
	HasValue() bool
	Value() any
	Error() any
}

// ExpectedAccessor exposes "has_value", "value", and "error" for any
// Expected[T], matching spec.md §4.2's "expected" accessor row.
func ExpectedAccessor() *core.Accessor {
	return &core.Accessor{
		Attribute: func(data any, name string) (core.Value, error) {
			e, ok := data.(hasExpected)
			if !ok {
				return core.None, core.ErrAttributeUnavailable
			}
			switch name {
			case "has_value":
				return core.Bool(e.HasValue()), nil
			case "value":
				if !e.HasValue() {
					return core.None, nil
				}
				return core.FromAny(e.Value()), nil
			case "error":
				if e.HasValue() {
					return core.None, nil
				}
				return core.FromAny(e.Error()), nil
			default:
				return core.None, core.ErrAttributeUnavailable
			}
		},
	}
}

// TypeID is the Go reinterpretation of type_info/type_id: a handle's
// reported type name, already carried by core.Handle.TypeName, exposed
// here as its own accessor for values that wrap a TypeID directly
// (e.g. a field computed from another value's runtime type).
type TypeID struct {
	Name string
}

func TypeIDAccessor() *core.Accessor {
	return &core.Accessor{
		Attribute: func(data any, name string) (core.Value, error) {
			t, ok := data.(TypeID)
			if !ok {
				return core.None, core.ErrAttributeUnavailable
			}
			if name != "name" {
				return core.None, core.ErrAttributeUnavailable
			}
			return core.StringRef(t.Name), nil
		},
	}
}
