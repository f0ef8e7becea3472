package uchar

import "errors"

// Policy selects how malformed code-unit sequences are handled during
// decode. spec.md §4.1: {replace-as-single-unit, skip, stop, raise}.
type Policy uint8

const (
	// PolicyReplace substitutes ReplacementChar and consumes one code
	// unit. This is the interpreter's default.
	PolicyReplace Policy = iota
	// PolicySkip consumes one code unit and produces no codepoint.
	PolicySkip
	// PolicyStop halts decoding at the malformed unit.
	PolicyStop
	// PolicyRaise returns ErrMalformedSequence.
	PolicyRaise
)

// ErrMalformedSequence is returned by Decode* under PolicyRaise.
var ErrMalformedSequence = errors.New("uchar: malformed code unit sequence")

// ErrStopped is returned internally to signal PolicyStop; callers that
// iterate should treat it as end-of-input, not as a hard failure.
var ErrStopped = errors.New("uchar: decoding stopped at malformed sequence")
