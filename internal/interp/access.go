// Package interp implements the format-string interpreter of spec.md
// §4.4/§4.8: the outer Literal/OpenBrace/OpenScript state machine, the
// access-language evaluator shared by replacement fields and script
// variables, and the embedded conditional script sub-language.
package interp

import (
	"fmt"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/uchar"
)

// isIdentStart/isIdentCont implement spec.md §3's attribute-name
// grammar: `[A-Za-z_-\U0010FFFF][A-Za-z0-9_-\U0010FFFF]*`.
func isIdentStart(cp uchar.Codepoint) bool {
	return cp == '_' ||
		(cp >= 'A' && cp <= 'Z') ||
		(cp >= 'a' && cp <= 'z') ||
		cp >= 0x80
}

func isIdentCont(cp uchar.Codepoint) bool {
	return isIdentStart(cp) || (cp >= '0' && cp <= '9')
}

// scanIdentifier consumes an identifier at pc's cursor, returning its
// text. Returns ok=false (without advancing) if no identifier starts
// there.
func scanIdentifier(pc *core.ParseContext) (string, bool) {
	start := pc.Pos
	cp, n, err := uchar.DecodeUTF8(pc.Remaining(), 0, uchar.PolicyStop)
	if err != nil || n == 0 || !isIdentStart(cp) {
		return "", false
	}
	pc.Advance(n)
	for {
		cp, n, err := uchar.DecodeUTF8(pc.Remaining(), 0, uchar.PolicyStop)
		if err != nil || n == 0 || !isIdentCont(cp) {
			break
		}
		pc.Advance(n)
	}
	return pc.Src[start:pc.Pos], true
}

// scanInt consumes an optionally-signed decimal integer, returning
// ok=false without advancing if none is present.
func scanInt(pc *core.ParseContext) (int64, bool) {
	start := pc.Pos
	neg := false
	if b, ok := pc.Peek(); ok && b == '-' {
		neg = true
		pc.Advance(1)
	}
	digitsStart := pc.Pos
	var n int64
	for {
		b, ok := pc.Peek()
		if !ok || b < '0' || b > '9' {
			break
		}
		n = n*10 + int64(b-'0')
		pc.Advance(1)
	}
	if pc.Pos == digitsStart {
		pc.Pos = start
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// scanTextLiteral consumes a single-quoted string with C-style escapes
// \n \t \\ \' (spec.md §4.4 "text-literal").
func scanTextLiteral(pc *core.ParseContext) (string, error) {
	if b, ok := pc.Peek(); !ok || b != '\'' {
		return "", fmt.Errorf("%w: expected a string literal", core.ErrInvalidString)
	}
	pc.Advance(1)
	var out []byte
	for {
		b, ok := pc.Peek()
		if !ok {
			return "", fmt.Errorf("%w: unterminated string literal", core.ErrInvalidString)
		}
		if b == '\'' {
			pc.Advance(1)
			return string(out), nil
		}
		if b == '\\' {
			pc.Advance(1)
			esc, ok := pc.Peek()
			if !ok {
				return "", fmt.Errorf("%w: unterminated escape in string literal", core.ErrInvalidString)
			}
			pc.Advance(1)
			switch esc {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case '\\':
				out = append(out, '\\')
			case '\'':
				out = append(out, '\'')
			default:
				return "", fmt.Errorf("%w: unrecognised escape '\\%c'", core.ErrInvalidString, esc)
			}
			continue
		}
		out = append(out, b)
		pc.Advance(1)
	}
}

// skipWS consumes ASCII spaces, used between script tokens for the
// readability spec.md's worked examples show (e.g. "{$ {}: 'true'}").
func skipWS(pc *core.ParseContext) {
	for {
		b, ok := pc.Peek()
		if !ok || b != ' ' {
			return
		}
		pc.Advance(1)
	}
}

// resolveFieldID parses the field-id production and returns the
// argument it names: an empty field-id consumes the next auto index,
// a bare integer is an explicit positional index, and an identifier is
// a named argument (spec.md §4.4 "Auto vs. manual indexing").
func resolveFieldID(pc *core.ParseContext) (core.Value, error) {
	if name, ok := scanIdentifier(pc); ok {
		if err := pc.LatchManual(); err != nil {
			return core.None, err
		}
		return pc.Args.GetNamed(name)
	}
	if i, ok := scanInt(pc); ok {
		if err := pc.LatchManual(); err != nil {
			return core.None, err
		}
		return pc.Args.Get(int(i))
	}
	i, err := pc.NextAutoIndex()
	if err != nil {
		return core.None, err
	}
	return pc.Args.Get(i)
}

// parseSubscript parses the "[" (integer | text-literal | slice) "]"
// production, returning the IndexValue to project with.
func parseSubscript(pc *core.ParseContext) (core.IndexValue, error) {
	if b, ok := pc.Peek(); !ok || b != '[' {
		return core.IndexValue{}, fmt.Errorf("%w: expected '['", core.ErrInvalidIndex)
	}
	pc.Advance(1)

	lo, hasLo := scanInt(pc)
	if b, ok := pc.Peek(); ok && b == ':' {
		pc.Advance(1)
		hi, hasHi := scanInt(pc)
		if !hasLo {
			lo = 0
		}
		if !hasHi {
			hi = int64(uchar.Npos)
		}
		if b, ok := pc.Peek(); !ok || b != ']' {
			return core.IndexValue{}, fmt.Errorf("%w: expected ']'", core.ErrInvalidIndex)
		}
		pc.Advance(1)
		return core.IndexSlice(int(lo), int(hi)), nil
	}

	if hasLo {
		if b, ok := pc.Peek(); !ok || b != ']' {
			return core.IndexValue{}, fmt.Errorf("%w: expected ']'", core.ErrInvalidIndex)
		}
		pc.Advance(1)
		return core.IndexInt(lo), nil
	}

	if b, ok := pc.Peek(); ok && b == '\'' {
		text, err := scanTextLiteral(pc)
		if err != nil {
			return core.IndexValue{}, err
		}
		if b, ok := pc.Peek(); !ok || b != ']' {
			return core.IndexValue{}, fmt.Errorf("%w: expected ']'", core.ErrInvalidIndex)
		}
		pc.Advance(1)
		return core.IndexText(text), nil
	}

	return core.IndexValue{}, fmt.Errorf("%w: empty subscript", core.ErrInvalidIndex)
}

// EvalAccess parses and evaluates one full `access` production
// (field-id followed by any number of `.attr`/`[index]` operations),
// advancing pc past it (spec.md §4.4 "access").
func EvalAccess(pc *core.ParseContext) (core.Value, error) {
	v, err := resolveFieldID(pc)
	if err != nil {
		return core.None, err
	}
	for {
		b, ok := pc.Peek()
		if !ok {
			return v, nil
		}
		switch b {
		case '.':
			pc.Advance(1)
			name, ok := scanIdentifier(pc)
			if !ok {
				return core.None, fmt.Errorf("%w: expected an identifier after '.'", core.ErrInvalidAttribute)
			}
			v, err = v.Attribute(name)
			if err != nil {
				return core.None, err
			}
		case '[':
			idx, err2 := parseSubscript(pc)
			if err2 != nil {
				return core.None, err2
			}
			v, err = v.Index(idx)
			if err != nil {
				return core.None, err
			}
		default:
			return v, nil
		}
	}
}
