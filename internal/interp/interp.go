package interp

import (
	"fmt"

	"github.com/papilio-go/papilio/internal/builtin"
	"github.com/papilio-go/papilio/internal/core"
)

func init() {
	builtin.DynamicFieldResolver = ResolveDynamicField
}

// Run drives the outer Literal/OpenBrace/OpenScript state machine of
// spec.md §4.8, consuming all of pc.Src and writing to fc.Sink.
func Run(pc *core.ParseContext, fc *core.FormatContext) error {
	for {
		b, ok := pc.Peek()
		if !ok {
			return nil
		}
		switch b {
		case '{':
			pc.Advance(1)
			b2, ok := pc.Peek()
			if !ok {
				return core.NewScriptError(core.ErrEndOfString, pc.Pos)
			}
			switch b2 {
			case '{':
				pc.Advance(1)
				if err := fc.Sink.WriteByte('{'); err != nil {
					return err
				}
			case '$':
				pc.Advance(1)
				if err := EvalScript(pc, fc); err != nil {
					return core.NewScriptError(err, pc.Pos)
				}
			default:
				if err := evalField(pc, fc); err != nil {
					return core.NewScriptError(err, pc.Pos)
				}
			}
		case '}':
			pc.Advance(1)
			b2, ok := pc.Peek()
			if !ok || b2 != '}' {
				return core.NewScriptError(core.ErrUnenclosedBrace, pc.Pos)
			}
			pc.Advance(1)
			if err := fc.Sink.WriteByte('}'); err != nil {
				return err
			}
		default:
			start := pc.Pos
			for {
				c, ok := pc.Peek()
				if !ok || c == '{' || c == '}' {
					break
				}
				pc.Advance(1)
			}
			if _, err := fc.Sink.WriteString(pc.Src[start:pc.Pos]); err != nil {
				return err
			}
		}
	}
}

// evalField parses and evaluates one `field` production (spec.md §4.4
// "Replacement field evaluation"). pc's cursor must be positioned
// immediately after the field's opening '{'; on success it is left
// immediately after the closing '}'.
func evalField(pc *core.ParseContext, fc *core.FormatContext) error {
	v, err := EvalAccess(pc)
	if err != nil {
		return err
	}

	f, err := selectFormatter(v)
	if err != nil {
		return err
	}

	b, ok := pc.Peek()
	if !ok {
		return core.ErrEndOfString
	}
	switch b {
	case '}':
		pc.Advance(1)
	case ':':
		pc.Advance(1)
		if err := f.Parse(pc); err != nil {
			return err
		}
		b2, ok := pc.Peek()
		if !ok {
			return core.ErrEndOfString
		}
		if b2 != '}' {
			return core.ErrUnenclosedBrace
		}
		pc.Advance(1)
	default:
		return core.ErrUnenclosedBrace
	}

	return f.Format(v, fc)
}

// selectFormatter implements spec.md §4.6's per-kind dispatch: the
// primitive kinds each have a fixed builtin formatter; a KindHandle
// value walks a fallback chain — the handle's own factory, then
// core.GenericFormatter when it is set, then a fmt.Stringer fallback (this module's substitute
// for the original's ADL-discovered free function / stream-insertion
// operator tiers, which have no Go equivalent).
func selectFormatter(v core.Value) (core.SpecFormatter, error) {
	switch v.Kind() {
	case core.KindBool:
		return builtin.NewBool(), nil
	case core.KindCodepoint:
		return builtin.NewCodepoint(), nil
	case core.KindInt, core.KindUint:
		return builtin.NewInt(), nil
	case core.KindFloat:
		return builtin.NewFloat(), nil
	case core.KindString:
		return builtin.NewString(), nil
	case core.KindPointer:
		return builtin.NewPointer(), nil
	case core.KindHandle:
		return selectHandleFormatter(v)
	default:
		return nil, fmt.Errorf("%w: no value to format", core.ErrInvalidFormat)
	}
}

func selectHandleFormatter(v core.Value) (core.SpecFormatter, error) {
	h, _ := v.AsHandle()
	if !h.Formattable {
		return nil, fmt.Errorf("%w: type %s has formatting disabled", core.ErrInvalidFormat, h.TypeName)
	}
	if h.NewFormatter != nil {
		return h.NewFormatter(), nil
	}
	if core.GenericFormatter != nil {
		if factory := core.GenericFormatter(h.Data); factory != nil {
			return factory(), nil
		}
	}
	if s, ok := h.Data.(fmt.Stringer); ok {
		return builtin.NewStringer(s)(), nil
	}
	return nil, fmt.Errorf("%w: no formatter registered for type %s", core.ErrInvalidFormat, h.TypeName)
}
