package builtin

import (
	"fmt"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/sink"
	"github.com/papilio-go/papilio/internal/specparse"
)

// CodepointFormatter is the default formatter for KindCodepoint
// values: type `c` (the default) emits the raw character, `?` emits
// its debug-escaped form (spec.md §6 "codepoint" row).
type CodepointFormatter struct {
	spec specparse.StandardSpec
}

func NewCodepoint() *CodepointFormatter { return &CodepointFormatter{} }

func (f *CodepointFormatter) Parse(pc *core.ParseContext) error {
	spec, err := specparse.ParseStandard(pc, DynamicFieldResolver)
	if err != nil {
		return err
	}
	f.spec = spec
	return nil
}

func (f *CodepointFormatter) SkipSpec(pc *core.ParseContext) error { return skipBalancedBraces(pc) }

func (f *CodepointFormatter) Format(data any, fc *core.FormatContext) error {
	v, ok := data.(core.Value)
	if !ok {
		return fmt.Errorf("%w: CodepointFormatter given a non-Value argument", core.ErrInvalidFormat)
	}
	cp, ok := v.AsCodepoint()
	if !ok {
		return fmt.Errorf("%w: CodepointFormatter given a non-codepoint value", core.ErrInvalidFormat)
	}

	var text string
	switch f.spec.Type {
	case 0, 'c':
		text = string(rune(cp))
	case '?':
		text = "'" + sink.EscapeCodepoint(cp) + "'"
	default:
		return fmt.Errorf("%w: unrecognised codepoint type character %q", core.ErrInvalidFormat, f.spec.Type)
	}

	out := pad(text, f.spec.Width, f.spec.HasWidth, f.spec.Fill, f.spec.Align, false)
	_, err := fc.Sink.WriteString(out)
	return err
}
