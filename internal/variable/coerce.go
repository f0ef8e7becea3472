package variable

import (
	"fmt"
	"math"

	"github.com/papilio-go/papilio/internal/core"
)

// FromValue coerces an argument Value into a script Variable, applying
// spec.md §4.5's rules: bool/int64/float/text pass through narrow;
// codepoint becomes a length-1 text; any other arithmetic kind is cast
// to the closest of {int64, float}; a handle is a conversion error.
// The switch-per-source-type shape follows a common Go coercion-helper
// style; the error text is "unable to cast %#v of kind %s to a script
// variable".
func FromValue(v core.Value) (Variable, error) {
	switch v.Kind() {
	case core.KindBool:
		b, _ := v.AsBool()
		return Bool(b), nil
	case core.KindInt:
		i, _ := v.AsInt()
		return Int(i), nil
	case core.KindFloat:
		f, _ := v.AsFloat()
		return Float(f), nil
	case core.KindString:
		s, _ := v.AsString()
		return Text(s), nil
	case core.KindCodepoint:
		cp, _ := v.AsCodepoint()
		return Text(string(rune(cp))), nil
	case core.KindUint:
		u, _ := v.AsUint()
		if u <= math.MaxInt64 {
			return Int(int64(u)), nil
		}
		return Float(float64(u)), nil
	case core.KindHandle, core.KindPointer, core.KindNone:
		return Variable{}, fmt.Errorf("%w: unable to cast %#v of kind %s to a script variable", core.ErrInvalidConversion, v, v.Kind())
	default:
		return Variable{}, fmt.Errorf("%w: unable to cast value of kind %s to a script variable", core.ErrInvalidConversion, v.Kind())
	}
}

// AsBool coerces v to bool: non-zero numeric, or non-empty string
// (spec.md §4.5 "as<bool>()").
func (v Variable) AsBool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindText:
		return v.s != ""
	default:
		return false
	}
}

// AsInt64 coerces v to int64: numeric widening/narrowing; a text
// source is an error (spec.md §4.5 "as<int64>()").
func (v Variable) AsInt64() (int64, error) {
	switch v.kind {
	case KindInt:
		return v.i, nil
	case KindFloat:
		return int64(v.f), nil
	case KindBool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case KindText:
		return 0, fmt.Errorf("%w: unable to cast %q of type text to int64", core.ErrInvalidConversion, v.s)
	default:
		return 0, fmt.Errorf("%w: unable to cast variable to int64", core.ErrInvalidConversion)
	}
}

// AsFloat coerces v to float64; a text source is an error.
func (v Variable) AsFloat() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.f, nil
	case KindInt:
		return float64(v.i), nil
	case KindBool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case KindText:
		return 0, fmt.Errorf("%w: unable to cast %q of type text to float64", core.ErrInvalidConversion, v.s)
	default:
		return 0, fmt.Errorf("%w: unable to cast variable to float64", core.ErrInvalidConversion)
	}
}

// AsText coerces v to text: text passes through; a numeric source is
// an error (spec.md §4.5 "as<text>()").
func (v Variable) AsText() (string, error) {
	switch v.kind {
	case KindText:
		return v.s, nil
	default:
		return "", fmt.Errorf("%w: unable to cast numeric variable to text", core.ErrInvalidConversion)
	}
}
