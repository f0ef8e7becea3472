// Package papilio implements a format-string interpreter in the
// spirit of Python's str.format/C++'s std::format: a small embedded
// access language (`{field.attr[idx]}`) plus an embedded conditional
// script sub-language (`{$ cond: body $ ... }`) for pluralisation-style
// branching, dispatching to per-type formatters.
//
// Concrete per-type formatters beyond the built-in primitives,
// terminal color/printing, locale data acquisition, and generic
// container utilities are not provided. The Value/Handle/Accessor
// types live in internal packages and are not exported.
package papilio

import (
	"io"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/interp"
	"github.com/papilio-go/papilio/internal/sink"

	// internal/access registers core.GenericAccessor from its package
	// init(); nothing else in the call path from Format/FormatTo down to
	// internal/interp imports internal/access directly (interp selects
	// formatters via internal/builtin, not accessors), so without this
	// blank import the handle-access fallback never switches on for
	// arbitrary slice/map/vocabulary-typed arguments.
	_ "github.com/papilio-go/papilio/internal/access"
)

// Format parses format and evaluates it against args, returning the
// resulting text (spec.md §6 `vformat`). An Option value anywhere in
// args (e.g. WithLocale(...)) configures the call rather than binding
// a positional argument.
func Format(format string, args ...any) (string, error) {
	store, opts := buildArgStore(args)
	buf := sink.NewBuffer()
	fc := &core.FormatContext{Sink: buf, Args: store}
	applyOptions(fc, opts)

	pc := core.NewParseContext(format, store)
	if err := interp.Run(pc, fc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatTo parses format and evaluates it against args, writing
// directly to w (spec.md §6 `vformat_to`). It returns the number of
// bytes written.
func FormatTo(w io.Writer, format string, args ...any) (int, error) {
	store, opts := buildArgStore(args)
	writer := sink.NewWriter(w)
	fc := &core.FormatContext{Sink: writer, Args: store}
	applyOptions(fc, opts)

	pc := core.NewParseContext(format, store)
	if err := interp.Run(pc, fc); err != nil {
		return writer.Written(), err
	}
	return writer.Written(), writer.Err()
}

// FormatToN is FormatTo with an output cap: at most n bytes are
// written to w, but the full formatted length is still computed and
// returned (spec.md §6 `format_to_n` — "silently drops writes past the
// limit while still counting them").
func FormatToN(w io.Writer, n int, format string, args ...any) (written int, counted int, err error) {
	store, opts := buildArgStore(args)
	limited := sink.NewLimited(w, n)
	fc := &core.FormatContext{Sink: limited, Args: store}
	applyOptions(fc, opts)

	pc := core.NewParseContext(format, store)
	if err := interp.Run(pc, fc); err != nil {
		return 0, limited.Counted(), err
	}
	written = limited.Counted()
	if written > n {
		written = n
	}
	return written, limited.Counted(), nil
}

// FormattedSize returns the length of Format(format, args...)'s output
// without materialising it (spec.md §6 `formatted_size`), by running
// the interpreter against a counting-only sink.
func FormattedSize(format string, args ...any) (int, error) {
	store, opts := buildArgStore(args)
	counter := &countingSink{}
	fc := &core.FormatContext{Sink: counter, Args: store}
	applyOptions(fc, opts)

	pc := core.NewParseContext(format, store)
	if err := interp.Run(pc, fc); err != nil {
		return 0, err
	}
	return counter.n, nil
}

// countingSink implements core.Sink, discarding all written text and
// only accumulating its codepoint-agnostic byte length — invariant 8
// (`formatted_size(F, A) == |vformat(F, A)|`) holds by construction
// since both paths drive the same interpreter.
type countingSink struct{ n int }

func (c *countingSink) WriteString(s string) (int, error) {
	c.n += len(s)
	return len(s), nil
}

func (c *countingSink) WriteByte(b byte) error {
	c.n++
	return nil
}

func (c *countingSink) WriteRune(r rune) (int, error) {
	n := len(string(r))
	c.n += n
	return n, nil
}

func (c *countingSink) AppendEscaped(s string) error {
	_, err := c.WriteString(sink.Escape(s))
	return err
}

// Fprintln is the §D1 supplemented print front-door: it formats and
// writes the result to w followed by a newline, mirroring
// original_source's print.hpp convenience wrapper over format_to
// without adopting its terminal-color styling (out of scope, §1).
func Fprintln(w io.Writer, format string, args ...any) (int, error) {
	n, err := FormatTo(w, format, args...)
	if err != nil {
		return n, err
	}
	extra, err := w.Write([]byte{'\n'})
	return n + extra, err
}
