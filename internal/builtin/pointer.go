package builtin

import (
	"fmt"
	"strconv"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/specparse"
)

// PointerFormatter is the default formatter for KindPointer values:
// type `p`/`P` render the address as a hex literal with the alternate
// form prefix, `0x` lowercase or `0X` uppercase (spec.md §6 "pointer"
// row).
type PointerFormatter struct {
	spec specparse.StandardSpec
}

func NewPointer() *PointerFormatter { return &PointerFormatter{} }

func (f *PointerFormatter) Parse(pc *core.ParseContext) error {
	spec, err := specparse.ParseStandard(pc, DynamicFieldResolver)
	if err != nil {
		return err
	}
	f.spec = spec
	return nil
}

func (f *PointerFormatter) SkipSpec(pc *core.ParseContext) error { return skipBalancedBraces(pc) }

func (f *PointerFormatter) Format(data any, fc *core.FormatContext) error {
	v, ok := data.(core.Value)
	if !ok {
		return fmt.Errorf("%w: PointerFormatter given a non-Value argument", core.ErrInvalidFormat)
	}
	p, ok := v.AsPointer()
	if !ok {
		return fmt.Errorf("%w: PointerFormatter given a non-pointer value", core.ErrInvalidFormat)
	}

	hex := strconv.FormatUint(uint64(p), 16)
	switch f.spec.Type {
	case 'P':
		hex = "0X" + toUpperHex(hex)
	case 0, 'p':
		hex = "0x" + hex
	default:
		return fmt.Errorf("%w: unrecognised pointer type character %q", core.ErrInvalidFormat, f.spec.Type)
	}

	out := pad(hex, f.spec.Width, f.spec.HasWidth, f.spec.Fill, f.spec.Align, true)
	_, err := fc.Sink.WriteString(out)
	return err
}

func toUpperHex(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
