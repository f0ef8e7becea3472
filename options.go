package papilio

import (
	"golang.org/x/text/language"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/uchar"
)

// Option configures one of the four surface calls, following a
// functional-options idiom.
type Option func(*core.FormatContext)

// WithLocale attaches a locale handle to the format context. The core
// never inspects it (spec.md §3/§5); it exists purely for locale-aware
// formatters outside this module's scope to consult.
func WithLocale(locale language.Tag) Option {
	return func(fc *core.FormatContext) { fc.Locale = locale }
}

// WithMalformedPolicy selects how malformed or partial UTF-8 in a
// string argument is handled by precision truncation. Codepoint
// indexing and slicing of strings always use uchar.PolicyReplace.
// Default is uchar.PolicyReplace.
func WithMalformedPolicy(policy uchar.Policy) Option {
	return func(fc *core.FormatContext) { fc.Policy = policy }
}

func applyOptions(fc *core.FormatContext, opts []Option) {
	for _, opt := range opts {
		opt(fc)
	}
}
