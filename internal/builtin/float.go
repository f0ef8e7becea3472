package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/specparse"
)

// FloatFormatter is the default formatter for KindFloat values: type
// chars `a A e E f F g G` (hexfloat / scientific / fixed / general,
// uppercase variants uppercase both digits and the exponent/inf/nan
// text), using scientific-notation formatting and precision-rounding
// conventions.
type FloatFormatter struct {
	spec specparse.StandardSpec
}

func NewFloat() *FloatFormatter { return &FloatFormatter{} }

func (f *FloatFormatter) Parse(pc *core.ParseContext) error {
	spec, err := specparse.ParseStandard(pc, DynamicFieldResolver)
	if err != nil {
		return err
	}
	f.spec = spec
	return nil
}

func (f *FloatFormatter) SkipSpec(pc *core.ParseContext) error { return skipBalancedBraces(pc) }

func (f *FloatFormatter) Format(data any, fc *core.FormatContext) error {
	v, ok := data.(core.Value)
	if !ok {
		return fmt.Errorf("%w: FloatFormatter given a non-Value argument", core.ErrInvalidFormat)
	}
	val, ok := v.AsFloat()
	if !ok {
		return fmt.Errorf("%w: FloatFormatter given a non-float value", core.ErrInvalidFormat)
	}

	out, err := formatFloatValue(val, f.spec)
	if err != nil {
		return err
	}
	_, err = fc.Sink.WriteString(out)
	return err
}

func formatFloatValue(val float64, spec specparse.StandardSpec) (string, error) {
	precision := -1
	if spec.HasPrecision {
		precision = spec.Precision
	}

	var verb byte
	upper := false
	switch spec.Type {
	case 0, 'g':
		verb = 'g'
	case 'G':
		verb = 'g'
		upper = true
	case 'f':
		verb = 'f'
		if !spec.HasPrecision {
			precision = 6
		}
	case 'F':
		verb = 'f'
		upper = true
		if !spec.HasPrecision {
			precision = 6
		}
	case 'e':
		verb = 'e'
		if !spec.HasPrecision {
			precision = 6
		}
	case 'E':
		verb = 'e'
		upper = true
		if !spec.HasPrecision {
			precision = 6
		}
	case 'a':
		verb = 'x'
	case 'A':
		verb = 'x'
		upper = true
	default:
		return "", fmt.Errorf("%w: unrecognised float type character %q", core.ErrInvalidFormat, spec.Type)
	}

	abs := val
	negative := false
	if abs < 0 || (abs == 0 && 1/abs < 0) {
		negative = true
		abs = -abs
	}

	digits := strconv.FormatFloat(abs, verb, precision, 64)
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
		if len(sign)+len(digits) < spec.Width {
			digits = strings.Repeat("0", spec.Width-len(sign)-len(digits)) + digits
		}
		return sign + digits, nil
	}

	return pad(sign+digits, spec.Width, spec.HasWidth, spec.Fill, spec.Align, true), nil
}
