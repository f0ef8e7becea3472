package core

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/papilio-go/papilio/internal/uchar"
)

// Locale is the opaque locale handle threaded through a format call.
// The core never interprets its subtags (spec.md §1/§5); it exists so
// that locale-aware formatters (external to this module, per spec.md
// §1 scope) have something to consult.
type Locale = language.Tag

// Sink is the minimal write surface a Formatter needs (spec.md §4.7).
// internal/sink.Sink is the concrete implementation; interpreter and
// formatter code only ever see this interface, so internal/core
// doesn't need to depend on internal/sink.
type Sink interface {
	WriteString(s string) (int, error)
	WriteByte(b byte) error
	WriteRune(r rune) (int, error)
	AppendEscaped(s string) error
}

// FormatContext carries the sink, a read-only argument store
// reference, and an optional locale handle (spec.md §3 "Format
// context"). It lives only for the duration of one top-level format
// call.
type FormatContext struct {
	Sink   Sink
	Args   *ArgStore
	Locale Locale

	// Policy governs how a string-valued argument's malformed/partial
	// UTF-8 is handled by precision truncation in the string formatter
	// (the root package's WithMalformedPolicy option). Codepoint indexing
	// and slicing of strings always decode with uchar.PolicyReplace.
	// Zero value is uchar.PolicyReplace.
	Policy uchar.Policy
}

// ParseContext carries the format-string view, a cursor, a reference
// to the argument store, the next auto-index counter, and the
// "manual indexing used" latch (spec.md §3 "Parse context").
type ParseContext struct {
	Src string
	Pos int

	Args *ArgStore

	autoIdx int
	manual  bool
}

// NewParseContext constructs a parse context over src, referencing
// args for auto/manual index resolution.
func NewParseContext(src string, args *ArgStore) *ParseContext {
	return &ParseContext{Src: src, Args: args}
}

// AtEnd reports whether the cursor has reached the end of Src.
func (pc *ParseContext) AtEnd() bool { return pc.Pos >= len(pc.Src) }

// Peek returns the byte at the cursor without advancing, or ok=false
// at end of input.
func (pc *ParseContext) Peek() (byte, bool) {
	if pc.AtEnd() {
		return 0, false
	}
	return pc.Src[pc.Pos], true
}

// PeekAt returns the byte offset bytes ahead of the cursor.
func (pc *ParseContext) PeekAt(offset int) (byte, bool) {
	i := pc.Pos + offset
	if i < 0 || i >= len(pc.Src) {
		return 0, false
	}
	return pc.Src[i], true
}

// Advance moves the cursor forward n bytes.
func (pc *ParseContext) Advance(n int) { pc.Pos += n }

// Remaining returns the unconsumed suffix of Src.
func (pc *ParseContext) Remaining() string { return pc.Src[pc.Pos:] }

// NextAutoIndex returns the next auto-increment positional index, or
// an error if manual indexing has already been latched (spec.md §3/§4.4
// auto/manual exclusivity).
func (pc *ParseContext) NextAutoIndex() (int, error) {
	if pc.manual {
		return 0, fmt.Errorf("%w: cannot mix automatic and manual field indexing", ErrInvalidFormat)
	}
	i := pc.autoIdx
	pc.autoIdx++
	return i, nil
}

// LatchManual permanently disables auto-indexing for the remainder of
// this parse context, returning an error if auto-indexing was already
// used.
func (pc *ParseContext) LatchManual() error {
	if pc.autoIdx > 0 {
		return fmt.Errorf("%w: cannot mix automatic and manual field indexing", ErrInvalidFormat)
	}
	pc.manual = true
	return nil
}
