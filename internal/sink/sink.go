// Package sink implements the output-iterator abstraction of spec.md
// §4.7: append code units, append a repeated codepoint, and append
// debug-escaped text. Buffer
// growth uses an append-based doubling style; AppendEscaped implements
// a control-character escaping switch.
package sink

import (
	"io"

	"github.com/papilio-go/papilio/internal/uchar"
)

// Buffer is an in-memory sink, used by the Sprintf-equivalent surface
// call.
type Buffer struct {
	buf []byte
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer { return &Buffer{} }

func (b *Buffer) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}

func (b *Buffer) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

func (b *Buffer) WriteRune(r rune) (int, error) {
	enc := uchar.EncodeUTF8(uchar.Codepoint(r))
	b.buf = append(b.buf, enc...)
	return len(enc), nil
}

// AppendRune appends cp, encoded once and emitted n times (spec.md
// §4.7 "append(codepoint, n=1)").
func (b *Buffer) AppendRune(cp uchar.Codepoint, n int) {
	enc := uchar.EncodeUTF8(cp)
	for i := 0; i < n; i++ {
		b.buf = append(b.buf, enc...)
	}
}

func (b *Buffer) AppendEscaped(s string) error {
	_, err := b.WriteString(Escape(s))
	return err
}

func (b *Buffer) String() string { return string(b.buf) }
func (b *Buffer) Bytes() []byte  { return b.buf }
func (b *Buffer) Len() int       { return len(b.buf) }

// Writer adapts an io.Writer to the Sink contract, used by the
// format_to-equivalent surface call. Writes happen immediately; Err
// reports the first write error encountered.
type Writer struct {
	w       io.Writer
	written int
	err     error
}

// NewWriter wraps w as a Sink.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

func (s *Writer) write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.written += n
	if err != nil {
		s.err = err
	}
	return n, err
}

func (s *Writer) WriteString(str string) (int, error) { return s.write([]byte(str)) }
func (s *Writer) WriteByte(b byte) error               { _, err := s.write([]byte{b}); return err }
func (s *Writer) WriteRune(r rune) (int, error) {
	return s.write([]byte(uchar.EncodeUTF8(uchar.Codepoint(r))))
}
func (s *Writer) AppendEscaped(str string) error { _, err := s.write([]byte(Escape(str))); return err }

// Written returns the number of bytes successfully written so far.
func (s *Writer) Written() int { return s.written }

// Err returns the first write error encountered, if any.
func (s *Writer) Err() error { return s.err }

// Limited wraps an io.Writer and tracks a remaining capacity: writes
// past the limit are silently dropped while still being counted
// (spec.md §5 "format-to-n sink"), implementing the format_to_n
// surface call.
type Limited struct {
	inner     io.Writer
	remaining int
	counted   int
}

// NewLimited wraps w, accepting at most n bytes; all further bytes are
// dropped but still counted in Counted().
func NewLimited(w io.Writer, n int) *Limited {
	return &Limited{inner: w, remaining: n}
}

func (l *Limited) writeBytes(p []byte) (int, error) {
	l.counted += len(p)
	if l.remaining <= 0 {
		return len(p), nil
	}
	take := len(p)
	if take > l.remaining {
		take = l.remaining
	}
	n, err := l.inner.Write(p[:take])
	l.remaining -= n
	if err != nil {
		return n, err
	}
	return len(p), nil
}

func (l *Limited) WriteString(s string) (int, error) { return l.writeBytes([]byte(s)) }
func (l *Limited) WriteByte(b byte) error             { _, err := l.writeBytes([]byte{b}); return err }
func (l *Limited) WriteRune(r rune) (int, error) {
	return l.writeBytes([]byte(uchar.EncodeUTF8(uchar.Codepoint(r))))
}
func (l *Limited) AppendEscaped(s string) error { _, err := l.writeBytes([]byte(Escape(s))); return err }

// Counted returns the total number of bytes that would have been
// written absent the limit (spec.md's "written-count").
func (l *Limited) Counted() int { return l.counted }
