package builtin

import (
	"fmt"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/sink"
	"github.com/papilio-go/papilio/internal/specparse"
	"github.com/papilio-go/papilio/internal/uchar"
)

// StringFormatter is the default formatter for KindString values: type
// `s` (the default) emits the text, truncated to precision codepoints
// when given; `?` emits its debug-escaped, quoted form (spec.md §6
// "string" row).
type StringFormatter struct {
	spec specparse.StandardSpec
}

func NewString() *StringFormatter { return &StringFormatter{} }

func (f *StringFormatter) Parse(pc *core.ParseContext) error {
	spec, err := specparse.ParseStandard(pc, DynamicFieldResolver)
	if err != nil {
		return err
	}
	f.spec = spec
	return nil
}

func (f *StringFormatter) SkipSpec(pc *core.ParseContext) error { return skipBalancedBraces(pc) }

func (f *StringFormatter) Format(data any, fc *core.FormatContext) error {
	v, ok := data.(core.Value)
	if !ok {
		return fmt.Errorf("%w: StringFormatter given a non-Value argument", core.ErrInvalidFormat)
	}
	s, ok := v.AsString()
	if !ok {
		return fmt.Errorf("%w: StringFormatter given a non-string value", core.ErrInvalidFormat)
	}

	if f.spec.HasPrecision {
		view := uchar.NewText8(s, fc.Policy)
		sub := view.Slice(0, f.spec.Precision)
		s = sub.String()
	}

	switch f.spec.Type {
	case 0, 's':
		// fall through to padding below
	case '?':
		s = "\"" + sink.Escape(s) + "\""
	default:
		return fmt.Errorf("%w: unrecognised string type character %q", core.ErrInvalidFormat, f.spec.Type)
	}

	out := pad(s, f.spec.Width, f.spec.HasWidth, f.spec.Fill, f.spec.Align, false)
	_, err := fc.Sink.WriteString(out)
	return err
}
