package core

import "github.com/papilio-go/papilio/internal/uchar"

// Kind discriminates the tagged variant held by a Value. spec.md §3
// "Argument value".
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindCodepoint
	KindInt
	KindUint
	KindFloat
	KindString
	KindPointer
	KindHandle
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindCodepoint:
		return "codepoint"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindPointer:
		return "pointer"
	case KindHandle:
		return "handle"
	default:
		return "invalid"
	}
}

// Value is the tagged-variant argument container of spec.md §3: either
// a small inline primitive, or a type-erased Handle to a user type. A
// Value is immutable once constructed.
type Value struct {
	kind Kind

	b  bool
	cp uchar.Codepoint
	i  int64
	u  uint64
	f  float64

	s     string
	owned bool // true if s is an owned copy rather than a borrowed ref

	ptr uintptr // raw pointer value, for KindPointer

	h *Handle
}

// None is the absent value (spec.md's monostate).
var None = Value{kind: KindNone}

func Bool(b bool) Value                  { return Value{kind: KindBool, b: b} }
func Codepoint(c uchar.Codepoint) Value   { return Value{kind: KindCodepoint, cp: c} }
func Int(i int64) Value                  { return Value{kind: KindInt, i: i} }
func Uint(u uint64) Value                { return Value{kind: KindUint, u: u} }
func Float(f float64) Value              { return Value{kind: KindFloat, f: f} }
func Pointer(p uintptr) Value            { return Value{kind: KindPointer, ptr: p} }

// StringRef constructs a borrowed string value; the caller's string
// must outlive the format call (spec.md §5 resource lifetimes).
func StringRef(s string) Value { return Value{kind: KindString, s: s, owned: false} }

// OwnedString constructs an owning string value. Used for the results
// of string slicing (text.go) and for the sequence accessor's "joined"
// attribute.
func OwnedString(s string) Value { return Value{kind: KindString, s: s, owned: true} }

// FromHandle wraps a type-erased user value.
func FromHandle(h *Handle) Value { return Value{kind: KindHandle, h: h} }

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsNone() bool  { return v.kind == KindNone }
func (v Value) IsOwned() bool { return v.owned }

// AsBool returns the bool payload; ok is false if Kind() != KindBool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsCodepoint returns the codepoint payload.
func (v Value) AsCodepoint() (uchar.Codepoint, bool) { return v.cp, v.kind == KindCodepoint }

// AsInt returns the signed integer payload.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsUint returns the unsigned integer payload.
func (v Value) AsUint() (uint64, bool) { return v.u, v.kind == KindUint }

// AsFloat returns the float payload.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the string payload (string-like Values only).
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsPointer returns the raw pointer payload.
func (v Value) AsPointer() (uintptr, bool) { return v.ptr, v.kind == KindPointer }

// AsHandle returns the erased handle payload.
func (v Value) AsHandle() (*Handle, bool) { return v.h, v.kind == KindHandle }

// IsArithmetic reports whether v carries a numeric payload (bool and
// codepoint are intentionally excluded, matching spec.md §4.5's
// distinction between narrow-pass-through kinds and "any other
// arithmetic").
func (v Value) IsArithmetic() bool {
	switch v.kind {
	case KindInt, KindUint, KindFloat:
		return true
	default:
		return false
	}
}
