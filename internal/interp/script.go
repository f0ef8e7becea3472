package interp

import (
	"fmt"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/variable"
)

// condResult is a successfully parsed script condition (spec.md §4.4
// "cond ::= [\"$\"] [\"!\"] var (op var)? \":\"").
type condResult struct {
	negate bool
	left   variable.Variable
	op     string
	right  variable.Variable
	hasOp  bool
}

// evaluate applies spec.md §4.5's condition semantics: a bare var
// coerces to bool; an operator pair compares under script-variable
// order/equality; "!" negates the final result.
func (c condResult) evaluate() bool {
	var result bool
	if !c.hasOp {
		result = c.left.AsBool()
	} else {
		switch c.op {
		case "==":
			result = variable.Equal(c.left, c.right)
		case "!=":
			result = variable.NotEqual(c.left, c.right)
		case "<":
			result = variable.LessThan(c.left, c.right)
		case "<=":
			result = variable.LessEqual(c.left, c.right)
		case ">":
			result = variable.GreaterThan(c.left, c.right)
		case ">=":
			result = variable.GreaterEqual(c.left, c.right)
		}
	}
	if c.negate {
		result = !result
	}
	return result
}

// parseVar parses the `var` production: a braced access expression (no
// spec allowed — spec.md's var grammar is "{" access "}" only, unlike
// a full field which also permits ":" format-spec), a text literal, or
// a number. Returning an error here is the single-branch-parse signal
// that the input doesn't look like a var at all, which the caller
// (tryParseCond) uses to decide this isn't a condition.
func parseVar(pc *core.ParseContext) (variable.Variable, error) {
	b, ok := pc.Peek()
	if !ok {
		return variable.Variable{}, fmt.Errorf("%w: expected a var", core.ErrInvalidCondition)
	}
	switch {
	case b == '{':
		pc.Advance(1)
		v, err := EvalAccess(pc)
		if err != nil {
			return variable.Variable{}, err
		}
		if b, ok := pc.Peek(); !ok || b != '}' {
			return variable.Variable{}, fmt.Errorf("%w: a condition's var takes no format spec", core.ErrInvalidCondition)
		}
		pc.Advance(1)
		return variable.FromValue(v)
	case b == '\'':
		s, err := scanTextLiteral(pc)
		if err != nil {
			return variable.Variable{}, err
		}
		return variable.Text(s), nil
	default:
		return scanNumberVar(pc)
	}
}

// scanNumberVar parses an (optionally signed, optionally fractional)
// numeric literal into an int or float script Variable.
func scanNumberVar(pc *core.ParseContext) (variable.Variable, error) {
	start := pc.Pos
	if b, ok := pc.Peek(); ok && b == '-' {
		pc.Advance(1)
	}
	digitsStart := pc.Pos
	for {
		b, ok := pc.Peek()
		if !ok || b < '0' || b > '9' {
			break
		}
		pc.Advance(1)
	}
	isFloat := false
	if b, ok := pc.Peek(); ok && b == '.' {
		save := pc.Pos
		pc.Advance(1)
		fracStart := pc.Pos
		for {
			b, ok := pc.Peek()
			if !ok || b < '0' || b > '9' {
				break
			}
			pc.Advance(1)
		}
		if pc.Pos == fracStart {
			pc.Pos = save
		} else {
			isFloat = true
		}
	}
	if pc.Pos == digitsStart {
		pc.Pos = start
		return variable.Variable{}, fmt.Errorf("%w: expected a number", core.ErrInvalidCondition)
	}
	text := pc.Src[start:pc.Pos]
	if isFloat {
		var f float64
		if _, err := fmt.Sscanf(text, "%g", &f); err != nil {
			return variable.Variable{}, fmt.Errorf("%w: malformed numeric literal %q", core.ErrInvalidCondition, text)
		}
		return variable.Float(f), nil
	}
	var i int64
	if _, err := fmt.Sscanf(text, "%d", &i); err != nil {
		return variable.Variable{}, fmt.Errorf("%w: malformed numeric literal %q", core.ErrInvalidCondition, text)
	}
	return variable.Int(i), nil
}

func scanOp(pc *core.ParseContext) (string, bool) {
	two, ok2 := pc.Peek()
	if ok2 {
		if next, ok3 := pc.PeekAt(1); ok3 {
			switch string([]byte{two, next}) {
			case "==", "!=", "<=", ">=":
				pc.Advance(2)
				return string([]byte{two, next}), true
			}
		}
	}
	if ok2 && (two == '<' || two == '>') {
		pc.Advance(1)
		return string(two), true
	}
	return "", false
}

// tryParseCond attempts to parse a full condition ending in ':'. It
// never returns an error: a malformed or absent condition simply
// yields ok=false, signalling the caller to fall back to treating this
// branch as terminal (body-only). Because it operates on pc directly,
// callers must pass a scratch copy and only commit it back on success
// (see EvalScript) — discarding a failed attempt is then free, since a
// core.ParseContext is a plain value struct.
func tryParseCond(pc *core.ParseContext) (condResult, bool) {
	var c condResult
	skipWS(pc)
	if b, ok := pc.Peek(); ok && b == '!' {
		c.negate = true
		pc.Advance(1)
	}
	left, err := parseVar(pc)
	if err != nil {
		return condResult{}, false
	}
	c.left = left
	skipWS(pc)
	if op, ok := scanOp(pc); ok {
		skipWS(pc)
		right, err := parseVar(pc)
		if err != nil {
			return condResult{}, false
		}
		c.op = op
		c.right = right
		c.hasOp = true
	}
	skipWS(pc)
	if b, ok := pc.Peek(); !ok || b != ':' {
		return condResult{}, false
	}
	pc.Advance(1)
	return c, true
}

// skipBalancedBraces consumes up to and including the '}' that matches
// the '{' already consumed by the caller (depth starts at 1), used to
// skip a non-executed field body without evaluating it (spec.md §4.4
// "Skipping": the default implementation scans forward tracking
// balanced {…} until an unbalanced '}').
func skipBalancedBraces(pc *core.ParseContext) error {
	depth := 1
	for depth > 0 {
		b, ok := pc.Peek()
		if !ok {
			return core.ErrEndOfString
		}
		switch b {
		case '{':
			depth++
		case '}':
			depth--
		}
		pc.Advance(1)
	}
	return nil
}

// executeBody parses one `body` production, writing its output to
// fc.Sink only when execute is true; a skipped literal body still runs
// the string parser (spec.md §4.4 "Skipping literal bodies just runs
// the string parser"), and a skipped field body is skipped generically
// via skipBalancedBraces rather than evaluated.
func executeBody(pc *core.ParseContext, fc *core.FormatContext, execute bool) error {
	b, ok := pc.Peek()
	if !ok {
		return core.ErrEndOfString
	}
	switch b {
	case '\'':
		text, err := scanTextLiteral(pc)
		if err != nil {
			return err
		}
		if execute {
			_, err := fc.Sink.WriteString(text)
			return err
		}
		return nil
	case '{':
		pc.Advance(1)
		if execute {
			return evalField(pc, fc)
		}
		return skipBalancedBraces(pc)
	default:
		return fmt.Errorf("%w: expected a string literal or field as a script body", core.ErrInvalidString)
	}
}

// EvalScript evaluates the script sub-machine of spec.md §4.4/§4.8.
// pc's cursor must be positioned immediately after the opening "{$";
// on success it is left immediately after the closing "}".
//
// Branch separation: the distilled grammar's
// `script ::= "{$" branch (":" branch)* "}"` collides its top-level
// branch separator with the ":" that already ends every cond, and
// cond's own grammar shows an optional leading "$" ("terminal branch
// omits leading '$'"). This implementation resolves that by using "$"
// literally as the separator between branches (so a script with N
// branches reads `{$ cond1: body1 $ cond2: body2 $ bodyN }`), which is
// the only reading consistent with "$" appearing in cond's own
// grammar. See DESIGN.md's Open Question decisions.
func EvalScript(pc *core.ParseContext, fc *core.FormatContext) error {
	executed := false
	for {
		skipWS(pc)

		scratch := *pc
		cond, isCond := tryParseCond(&scratch)

		var shouldExec bool
		if isCond {
			*pc = scratch
			shouldExec = cond.evaluate() && !executed
		} else {
			shouldExec = !executed
		}

		skipWS(pc)
		if err := executeBody(pc, fc, shouldExec); err != nil {
			return err
		}
		if shouldExec {
			executed = true
		}

		skipWS(pc)
		b, ok := pc.Peek()
		if !ok {
			return core.ErrEndOfString
		}
		switch b {
		case '}':
			pc.Advance(1)
			return nil
		case '$':
			pc.Advance(1)
			continue
		default:
			return core.ErrUnenclosedBrace
		}
	}
}
