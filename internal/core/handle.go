package core

// Accessor is the per-type projection vtable of spec.md §4.2 ("the
// accessor registry provides, per source type T, zero or more of:
// index(T,integer), index(T,slice), index(T,text), attribute(T,name)").
// A nil field means the operation is unavailable for the type, which
// is the closed-enum/function-pointer-vtable design spec.md §9
// recommends in place of template specialization.
type Accessor struct {
	IndexInt   func(data any, i int64) (Value, error)
	IndexSlice func(data any, lo, hi int64) (Value, error)
	IndexText  func(data any, key string) (Value, error)
	Attribute  func(data any, name string) (Value, error)
}

// FormatterFactory produces a fresh SpecFormatter for one replacement
// field occurrence. A factory is used (rather than a shared instance)
// because a SpecFormatter's Parse step accumulates per-field state
// (spec.md §4.6).
type FormatterFactory func() SpecFormatter

// Formatter is the minimal formatter contract of spec.md §4.6 variant
// (a): no spec parsing, format only.
type Formatter interface {
	Format(data any, fc *FormatContext) error
}

// SpecFormatter is spec.md §4.6 variant (b): Parse consumes the parse
// context up to (but not including) the terminating '}' — or ':' when
// called before that has been consumed — and returns the advanced
// state via pc's own cursor. Format then uses the parsed state.
type SpecFormatter interface {
	Formatter
	Parse(pc *ParseContext) error
	// SkipSpec scans forward over an un-executed field's spec without
	// formatting, tracking balanced '{...}' until an unbalanced '}'
	// (spec.md §4.4 "Skipping"). internal/builtin's formatters implement
	// it with that package's skipBalancedBraces; internal/interp skips
	// un-executed script bodies itself and does not call SkipSpec.
	SkipSpec(pc *ParseContext) error
}

// Handle type-erases a non-primitive user value (spec.md §3 "handle").
// It stores Data as given and never copies it: a Handle is a
// non-owning reference whose lifetime is the caller's responsibility.
// There is no constructor that copies the data into an owned buffer.
type Handle struct {
	Data     any
	TypeName string

	// Access is nil if the type supports no projection operations.
	Access *Accessor

	// NewFormatter is nil if no formatter is registered for this type;
	// the interpreter then falls back to GenericFormatter (when set),
	// then a fmt.Stringer implementation, then ErrInvalidFormat.
	NewFormatter FormatterFactory

	// Formattable is spec.md's "is_formattable": when false, formatting
	// the handle fails with ErrInvalidFormat at format time. FromAny
	// always sets it to true.
	Formattable bool
}

// TypeID returns the handle's reported type name (spec.md §3
// "type_id").
func (h *Handle) TypeID() string { return h.TypeName }

// IndexKind discriminates the operand of IndexValue.
type IndexKind uint8

const (
	IndexKindInt IndexKind = iota
	IndexKindSlice
	IndexKindText
)

// IndexValue is spec.md §3 "Indexing value": an integer index, a
// slice, or a text key, supplied to accessors at runtime.
type IndexValue struct {
	Kind IndexKind

	Int int64

	// Lo/Hi are the raw (possibly negative, possibly Npos) slice
	// bounds; normalization happens in the accessor, since only it
	// knows the target's length.
	Lo, Hi int

	Text string
}

func IndexInt(i int64) IndexValue { return IndexValue{Kind: IndexKindInt, Int: i} }
func IndexSlice(lo, hi int) IndexValue {
	return IndexValue{Kind: IndexKindSlice, Lo: lo, Hi: hi}
}
func IndexText(key string) IndexValue { return IndexValue{Kind: IndexKindText, Text: key} }

// Index dispatches v against idx using the handle's accessor,
// returning ErrIndexUnavailable if the operation isn't supported.
func (h *Handle) Index(idx IndexValue) (Value, error) {
	if h.Access == nil {
		return None, ErrIndexUnavailable
	}
	switch idx.Kind {
	case IndexKindInt:
		if h.Access.IndexInt == nil {
			return None, ErrIndexUnavailable
		}
		return h.Access.IndexInt(h.Data, idx.Int)
	case IndexKindSlice:
		if h.Access.IndexSlice == nil {
			return None, ErrIndexUnavailable
		}
		return h.Access.IndexSlice(h.Data, int64(idx.Lo), int64(idx.Hi))
	case IndexKindText:
		if h.Access.IndexText == nil {
			return None, ErrIndexUnavailable
		}
		return h.Access.IndexText(h.Data, idx.Text)
	default:
		return None, ErrIndexUnavailable
	}
}

// Attribute dispatches a named attribute projection.
func (h *Handle) Attribute(name string) (Value, error) {
	if h.Access == nil || h.Access.Attribute == nil {
		return None, ErrAttributeUnavailable
	}
	return h.Access.Attribute(h.Data, name)
}

// Index projects idx against v, dispatching to the handle's accessor
// for KindHandle values, or to the built-in behaviour for strings
// (codepoint indexing/slicing is intrinsic to Value, not a registered
// accessor, since every string Value supports it uniformly — spec.md
// §4.2 accessor table, row "text").
func (v Value) Index(idx IndexValue) (Value, error) {
	switch v.kind {
	case KindHandle:
		return v.h.Index(idx)
	case KindString:
		return v.indexString(idx)
	default:
		return None, ErrIndexUnavailable
	}
}

// Attribute projects a named attribute against v.
func (v Value) Attribute(name string) (Value, error) {
	switch v.kind {
	case KindHandle:
		return v.h.Attribute(name)
	case KindString:
		return v.attributeString(name)
	default:
		return None, ErrAttributeUnavailable
	}
}
