// Package variable implements the narrower script-variable type used
// inside embedded script conditions (spec.md §3 "Script variable",
// §4.5).
package variable

// Kind discriminates a Variable's payload.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindText
)

// Variable is the {bool, i64, float, text} variant of spec.md §3.
type Variable struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

func Bool(b bool) Variable    { return Variable{kind: KindBool, b: b} }
func Int(i int64) Variable    { return Variable{kind: KindInt, i: i} }
func Float(f float64) Variable { return Variable{kind: KindFloat, f: f} }
func Text(s string) Variable  { return Variable{kind: KindText, s: s} }

func (v Variable) Kind() Kind { return v.kind }

// AsBoolRaw/AsIntRaw/etc. return the payload without coercion; callers
// that need coercion should use the As* methods in coerce.go.
func (v Variable) AsBoolRaw() bool    { return v.b }
func (v Variable) AsIntRaw() int64    { return v.i }
func (v Variable) AsFloatRaw() float64 { return v.f }
func (v Variable) AsTextRaw() string  { return v.s }

// IsNumeric reports whether the variable holds Int or Float.
func (v Variable) IsNumeric() bool { return v.kind == KindInt || v.kind == KindFloat }

func (v Variable) numericFloat() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}
