package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/specparse"
)

// IntFormatter is the default formatter for KindInt/KindUint values:
// type chars `b B o d x X` (bases 2/8/10/16, uppercase variants
// uppercase both digits and the alt-form prefix), plus `c` to render
// the value as a codepoint (spec.md §6 external-interfaces table, row
// "integer"). Uses base-conversion logic adapted to this package's
// spec struct instead of printf verbs; digits are not grouped.
type IntFormatter struct {
	spec specparse.StandardSpec
}

func NewInt() *IntFormatter { return &IntFormatter{} }

func (f *IntFormatter) Parse(pc *core.ParseContext) error {
	spec, err := specparse.ParseStandard(pc, DynamicFieldResolver)
	if err != nil {
		return err
	}
	f.spec = spec
	return nil
}

func (f *IntFormatter) SkipSpec(pc *core.ParseContext) error { return skipBalancedBraces(pc) }

func (f *IntFormatter) Format(data any, fc *core.FormatContext) error {
	v, ok := data.(core.Value)
	if !ok {
		return fmt.Errorf("%w: IntFormatter given a non-Value argument", core.ErrInvalidFormat)
	}

	if f.spec.Type == 'c' {
		var cp rune
		if i, ok := v.AsInt(); ok {
			if i < 0 || i > 0x10FFFF {
				return fmt.Errorf("%w: integer %d out of range for codepoint conversion", core.ErrInvalidFormat, i)
			}
			cp = rune(i)
		} else if u, ok := v.AsUint(); ok {
			if u > 0x10FFFF {
				return fmt.Errorf("%w: integer %d out of range for codepoint conversion", core.ErrInvalidFormat, u)
			}
			cp = rune(u)
		}
		out := pad(string(cp), f.spec.Width, f.spec.HasWidth, f.spec.Fill, f.spec.Align, false)
		_, err := fc.Sink.WriteString(out)
		return err
	}

	out, err := formatIntValue(v, f.spec)
	if err != nil {
		return err
	}
	_, err = fc.Sink.WriteString(out)
	return err
}

func formatIntValue(v core.Value, spec specparse.StandardSpec) (string, error) {
	var unsignedVal uint64
	var negative bool

	switch {
	case v.Kind() == core.KindInt:
		i, _ := v.AsInt()
		if i < 0 {
			negative = true
			unsignedVal = uint64(-i)
		} else {
			unsignedVal = uint64(i)
		}
	case v.Kind() == core.KindUint:
		u, _ := v.AsUint()
		unsignedVal = u
	default:
		return "", fmt.Errorf("%w: IntFormatter given a non-integer value", core.ErrInvalidFormat)
	}

	base := 10
	upper := false
	prefix := ""
	switch spec.Type {
	case 0, 'd':
		base = 10
	case 'b':
		base = 2
		prefix = "0b"
	case 'B':
		base = 2
		prefix = "0B"
		upper = true
	case 'o':
		base = 8
		prefix = "0o"
	case 'x':
		base = 16
		prefix = "0x"
	case 'X':
		base = 16
		prefix = "0X"
		upper = true
	default:
		return "", fmt.Errorf("%w: unrecognised integer type character %q", core.ErrInvalidFormat, spec.Type)
	}
	if !spec.Alt || base == 10 {
		prefix = ""
	}

	digits := strconv.FormatUint(unsignedVal, base)
	if upper {
		digits = strings.ToUpper(digits)
	}

	sign := ""
	if negative {
		sign = "-"
	} else {
		switch spec.Sign {
		case specparse.SignPlus:
			sign = "+"
		case specparse.SignSpace:
			sign = " "
		}
	}

	if spec.ZeroFill && spec.HasWidth {
		prefixLen := len(sign) + len(prefix)
		if prefixLen+len(digits) < spec.Width {
			digits = strings.Repeat("0", spec.Width-prefixLen-len(digits)) + digits
		}
		return sign + prefix + digits, nil
	}

	body := sign + prefix + digits
	return pad(body, spec.Width, spec.HasWidth, spec.Fill, spec.Align, true), nil
}
