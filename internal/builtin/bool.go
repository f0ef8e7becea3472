package builtin

import (
	"fmt"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/specparse"
)

// BoolFormatter is the default formatter for KindBool values: the
// unset type renders the word form ("true"/"false"); any of
// `b B o d x X` renders the integer form (0 or 1) in that base, per
// spec.md §6's "bool" row (word form / integer).
type BoolFormatter struct {
	spec specparse.StandardSpec
}

func NewBool() *BoolFormatter { return &BoolFormatter{} }

func (f *BoolFormatter) Parse(pc *core.ParseContext) error {
	spec, err := specparse.ParseStandard(pc, DynamicFieldResolver)
	if err != nil {
		return err
	}
	f.spec = spec
	return nil
}

func (f *BoolFormatter) SkipSpec(pc *core.ParseContext) error { return skipBalancedBraces(pc) }

func (f *BoolFormatter) Format(data any, fc *core.FormatContext) error {
	v, ok := data.(core.Value)
	if !ok {
		return fmt.Errorf("%w: BoolFormatter given a non-Value argument", core.ErrInvalidFormat)
	}
	b, ok := v.AsBool()
	if !ok {
		return fmt.Errorf("%w: BoolFormatter given a non-bool value", core.ErrInvalidFormat)
	}

	switch f.spec.Type {
	case 0, 's':
		word := "false"
		if b {
			word = "true"
		}
		out := pad(word, f.spec.Width, f.spec.HasWidth, f.spec.Fill, f.spec.Align, false)
		_, err := fc.Sink.WriteString(out)
		return err
	case 'b', 'B', 'o', 'd', 'x', 'X':
		n := int64(0)
		if b {
			n = 1
		}
		spec := f.spec
		spec.Type = f.spec.Type
		if spec.Type == 's' {
			spec.Type = 'd'
		}
		out, err := formatIntValue(core.Int(n), spec)
		if err != nil {
			return err
		}
		_, err = fc.Sink.WriteString(out)
		return err
	default:
		return fmt.Errorf("%w: unrecognised bool type character %q", core.ErrInvalidFormat, f.spec.Type)
	}
}
