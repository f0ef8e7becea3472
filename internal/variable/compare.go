package variable

import "math"

// Order is the result of comparing two Variables. Unordered models
// spec.md §9's "explicit unordered sentinel" for string-vs-number
// comparisons, used so callers can treat '<'/'>' as false and '!=' as
// true without special-casing (spec.md §4.5 "Condition").
type Order uint8

const (
	Less Order = iota
	Equal
	Greater
	Unordered
)

func (v Variable) numericLike() (float64, bool) {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindInt, KindFloat:
		return v.numericFloat(), true
	default:
		return 0, false
	}
}

// Compare orders a against b per spec.md §3/§9: numeric kinds (and
// bool, treated as 0/1) compare in the common float64 domain with an
// epsilon-threshold equality check; text compares lexicographically
// against text; any other pairing is Unordered.
func Compare(a, b Variable) Order {
	if a.kind == KindText && b.kind == KindText {
		switch {
		case a.s < b.s:
			return Less
		case a.s > b.s:
			return Greater
		default:
			return Equal
		}
	}

	af, aok := a.numericLike()
	bf, bok := b.numericLike()
	if aok && bok {
		if nearlyEqual(af, bf) {
			return Equal
		}
		if af < bf {
			return Less
		}
		return Greater
	}

	return Unordered
}

// nearlyEqual implements spec.md §3's epsilon-threshold equality
// between mixed float/int variables, using float64's machine epsilon
// as the default threshold.
func nearlyEqual(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= math.Nextafter(1, 2)-1
}

// Equal reports whether a == b under script semantics.
func Equal(a, b Variable) bool { return Compare(a, b) == Equal }

// NotEqual reports whether a != b; Unordered compares unequal
// (spec.md §9: "!= as true").
func NotEqual(a, b Variable) bool { return Compare(a, b) != Equal }

// LessThan reports a < b; Unordered is false (spec.md §9).
func LessThan(a, b Variable) bool { return Compare(a, b) == Less }

// GreaterThan reports a > b; Unordered is false.
func GreaterThan(a, b Variable) bool { return Compare(a, b) == Greater }

// LessEqual reports a <= b.
func LessEqual(a, b Variable) bool {
	o := Compare(a, b)
	return o == Less || o == Equal
}

// GreaterEqual reports a >= b.
func GreaterEqual(a, b Variable) bool {
	o := Compare(a, b)
	return o == Greater || o == Equal
}
