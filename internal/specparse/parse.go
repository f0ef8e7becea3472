package specparse

import (
	"fmt"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/uchar"
)

// FieldResolver re-enters the full access language (spec.md §4.4) to
// evaluate a `{field-id}` appearing inside a width or precision, then
// coerces the result to an integer. It is supplied by internal/interp
// so that specparse never needs to depend on the interpreter package.
type FieldResolver func(pc *core.ParseContext) (int64, error)

// ParseStandard parses the standard spec grammar of spec.md §4.3,
// stopping at (and not consuming) the terminating '}'.
func ParseStandard(pc *core.ParseContext, resolve FieldResolver) (StandardSpec, error) {
	var spec StandardSpec

	if err := parseFillAlign(pc, &spec.Fill, &spec.Align); err != nil {
		return spec, err
	}

	if b, ok := pc.Peek(); ok {
		switch b {
		case '+':
			spec.Sign = SignPlus
			pc.Advance(1)
		case '-':
			spec.Sign = SignMinus
			pc.Advance(1)
		case ' ':
			spec.Sign = SignSpace
			pc.Advance(1)
		}
	}

	if b, ok := pc.Peek(); ok && b == '#' {
		spec.Alt = true
		pc.Advance(1)
	}

	if b, ok := pc.Peek(); ok && b == '0' {
		spec.ZeroFill = true
		pc.Advance(1)
	}

	if err := parseWidth(pc, resolve, &spec.Width, &spec.HasWidth); err != nil {
		return spec, err
	}

	if b, ok := pc.Peek(); ok && b == '.' {
		pc.Advance(1)
		if err := parsePrecision(pc, resolve, &spec.Precision, &spec.HasPrecision); err != nil {
			return spec, err
		}
	}

	if b, ok := pc.Peek(); ok && b == 'L' {
		spec.Locale = true
		pc.Advance(1)
	}

	if b, ok := pc.Peek(); ok && b != '}' && b != ':' {
		spec.Type = b
		pc.Advance(1)
	}

	return spec, nil
}

// ParseSimple parses the simple spec grammar: [fill align] [width] [L].
func ParseSimple(pc *core.ParseContext, resolve FieldResolver) (SimpleSpec, error) {
	var spec SimpleSpec

	if err := parseFillAlign(pc, &spec.Fill, &spec.Align); err != nil {
		return spec, err
	}

	if err := parseWidth(pc, resolve, &spec.Width, &spec.HasWidth); err != nil {
		return spec, err
	}

	if b, ok := pc.Peek(); ok && b == 'L' {
		spec.Locale = true
		pc.Advance(1)
	}

	return spec, nil
}

func parseFillAlign(pc *core.ParseContext, fill *rune, align *Align) error {
	if b, ok := pc.Peek(); ok {
		if a, isAlign := alignChar(b); isAlign {
			*align = a
			pc.Advance(1)
			return nil
		}
	}

	// Two-codepoint lookahead: fill char (any codepoint except '{'/'}')
	// followed immediately by an align char.
	if pc.AtEnd() {
		return nil
	}
	cp, size, err := uchar.DecodeUTF8(pc.Remaining(), 0, uchar.PolicyReplace)
	if err != nil || size == 0 {
		return nil
	}
	if cp == '{' || cp == '}' {
		return nil
	}
	if b, ok := pc.PeekAt(size); ok {
		if a, isAlign := alignChar(b); isAlign {
			*fill = rune(cp)
			*align = a
			pc.Advance(size + 1)
		}
	}
	return nil
}

func alignChar(b byte) (Align, bool) {
	switch b {
	case '<':
		return AlignLeft, true
	case '>':
		return AlignRight, true
	case '^':
		return AlignCenter, true
	default:
		return AlignDefault, false
	}
}

func parseWidth(pc *core.ParseContext, resolve FieldResolver, width *int, has *bool) error {
	if b, ok := pc.Peek(); ok && b == '{' {
		n, err := parseDynamicField(pc, resolve)
		if err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("%w: width must be a positive integer", core.ErrInvalidFormat)
		}
		*width = int(n)
		*has = true
		return nil
	}

	n, digits, err := parseDigits(pc)
	if err != nil {
		return err
	}
	if digits == 0 {
		return nil
	}
	if digits > 1 && pc.Src[pc.Pos-digits] == '0' {
		return fmt.Errorf("%w: leading zero in literal width", core.ErrInvalidFormat)
	}
	if n <= 0 {
		return fmt.Errorf("%w: width must be a positive integer", core.ErrInvalidFormat)
	}
	*width = n
	*has = true
	return nil
}

func parsePrecision(pc *core.ParseContext, resolve FieldResolver, precision *int, has *bool) error {
	if b, ok := pc.Peek(); ok && b == '{' {
		n, err := parseDynamicField(pc, resolve)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("%w: precision must be a non-negative integer", core.ErrInvalidFormat)
		}
		*precision = int(n)
		*has = true
		return nil
	}

	n, digits, err := parseDigits(pc)
	if err != nil {
		return err
	}
	if digits == 0 {
		return fmt.Errorf("%w: expected a precision after '.'", core.ErrInvalidFormat)
	}
	if digits > 1 && pc.Src[pc.Pos-digits] == '0' {
		return fmt.Errorf("%w: leading zero in literal precision", core.ErrInvalidFormat)
	}
	*precision = n
	*has = true
	return nil
}

// parseDynamicField parses "{" field-id "}" and resolves it to an
// integer via resolve, per spec.md §4.3: "{…} inside a width/precision
// re-enters the full access language and the result is coerced to
// integer; non-integer raises invalid format".
func parseDynamicField(pc *core.ParseContext, resolve FieldResolver) (int64, error) {
	if resolve == nil {
		return 0, fmt.Errorf("%w: dynamic width/precision not supported in this context", core.ErrInvalidFormat)
	}
	return resolve(pc)
}

func parseDigits(pc *core.ParseContext) (value int, count int, err error) {
	for {
		b, ok := pc.Peek()
		if !ok || b < '0' || b > '9' {
			break
		}
		value = value*10 + int(b-'0')
		count++
		pc.Advance(1)
	}
	return value, count, nil
}
