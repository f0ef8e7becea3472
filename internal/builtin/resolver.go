package builtin

import (
	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/specparse"
)

// DynamicFieldResolver is set by internal/interp's package init() to
// internal/interp.ResolveDynamicField, so that builtin formatters can
// resolve `{field-id}` dynamic widths/precisions without builtin
// importing interp (which itself imports builtin to select a
// formatter for a given value — the same one-directional
// dependency-injection shape used between internal/core and
// internal/access for generic accessor dispatch).
var DynamicFieldResolver specparse.FieldResolver

// skipBalancedBraces scans forward from the current cursor (positioned
// just after the ':' that introduced a spec) over balanced "{...}"
// until it reaches an unbalanced '}', without consuming that final
// '}' (spec.md §4.4 "Skipping": the default skip_spec implementation).
func skipBalancedBraces(pc *core.ParseContext) error {
	depth := 0
	for {
		b, ok := pc.Peek()
		if !ok {
			return core.ErrEndOfString
		}
		if b == '{' {
			depth++
			pc.Advance(1)
			continue
		}
		if b == '}' {
			if depth == 0 {
				return nil
			}
			depth--
			pc.Advance(1)
			continue
		}
		pc.Advance(1)
	}
}
