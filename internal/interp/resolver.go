package interp

import (
	"fmt"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/variable"
)

// ResolveDynamicField is the internal/specparse.FieldResolver
// implementation: it expects pc's cursor at the opening '{' of a
// `{field-id...}` dynamic width/precision, evaluates the access chain,
// consumes the closing '}', and coerces the result to int64 (spec.md
// §4.3 "{…} inside a width/precision re-enters the full access
// language ... coerced to integer").
func ResolveDynamicField(pc *core.ParseContext) (int64, error) {
	if b, ok := pc.Peek(); !ok || b != '{' {
		return 0, fmt.Errorf("%w: expected '{'", core.ErrInvalidFormat)
	}
	pc.Advance(1)

	v, err := EvalAccess(pc)
	if err != nil {
		return 0, err
	}

	if b, ok := pc.Peek(); !ok || b != '}' {
		return 0, fmt.Errorf("%w: unenclosed dynamic field", core.ErrUnenclosedBrace)
	}
	pc.Advance(1)

	sv, err := variable.FromValue(v)
	if err != nil {
		return 0, err
	}
	n, err := sv.AsInt64()
	if err != nil {
		return 0, fmt.Errorf("%w: dynamic width/precision field did not evaluate to an integer", core.ErrInvalidFormat)
	}
	return n, nil
}
