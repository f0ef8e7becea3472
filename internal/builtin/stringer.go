package builtin

import (
	"fmt"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/specparse"
)

// StringerFormatter is the final fallback tier of spec.md §4.6's
// formatter-resolution chain: a handle with no registered formatter
// and no generic accessor match, but whose underlying value implements
// fmt.Stringer (Go's nearest analogue to the original's
// stream-insertion-operator fallback), renders via String().
//
// It accepts only the standard fill/align/width subset of a spec — a
// Stringer's result is opaque text, so precision/sign/alt-form/type
// characters have no meaning here.
type StringerFormatter struct {
	spec specparse.StandardSpec
	s    fmt.Stringer
}

// NewStringer returns a FormatterFactory closing over one Stringer
// value, installed as a Handle.NewFormatter by internal/interp when no
// other formatter tier matches.
func NewStringer(s fmt.Stringer) core.FormatterFactory {
	return func() core.SpecFormatter {
		return &StringerFormatter{s: s}
	}
}

func (f *StringerFormatter) Parse(pc *core.ParseContext) error {
	spec, err := specparse.ParseStandard(pc, DynamicFieldResolver)
	if err != nil {
		return err
	}
	if spec.Type != 0 {
		return fmt.Errorf("%w: a Stringer fallback formatter accepts no type character", core.ErrInvalidFormat)
	}
	f.spec = spec
	return nil
}

func (f *StringerFormatter) SkipSpec(pc *core.ParseContext) error { return skipBalancedBraces(pc) }

func (f *StringerFormatter) Format(data any, fc *core.FormatContext) error {
	out := pad(f.s.String(), f.spec.Width, f.spec.HasWidth, f.spec.Fill, f.spec.Align, false)
	_, err := fc.Sink.WriteString(out)
	return err
}
