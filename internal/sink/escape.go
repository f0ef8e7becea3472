package sink

import (
	"strconv"
	"strings"

	"github.com/papilio-go/papilio/internal/uchar"
)

// controlEscapes maps the control characters spec.md §4.7 requires a
// two-character escape for; everything else uses \u{HEX}.
var controlEscapes = map[byte]string{
	'\t': `\t`,
	'\n': `\n`,
	'\r': `\r`,
	'\\': `\\`,
	'"':  `\"`,
}

// Escape implements spec.md §4.7 append_escaped for UTF-8 text: \t, \n,
// \r, \\ and " get their two-character escape; other bytes below 0x20
// and malformed bytes are escaped byte-wise as \u{HEX} without
// attempting to decode the malformed run
// (spec.md §9 design note).
func Escape(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	for off := 0; off < len(s); {
		b := s[off]
		if esc, ok := controlEscapes[b]; ok {
			out.WriteString(esc)
			off++
			continue
		}
		if b < 0x20 {
			out.WriteString(`\u{`)
			out.WriteString(strconv.FormatInt(int64(b), 16))
			out.WriteByte('}')
			off++
			continue
		}

		cp, size, err := uchar.DecodeUTF8(s, off, uchar.PolicyStop)
		if err != nil || size == 0 {
			// Malformed: escape this one byte and move on.
			out.WriteString(`\u{`)
			out.WriteString(strconv.FormatInt(int64(b), 16))
			out.WriteByte('}')
			off++
			continue
		}
		out.WriteString(uchar.EncodeUTF8(cp))
		off += size
	}
	return out.String()
}

// EscapeCodepoint escapes a single codepoint per the same rules.
func EscapeCodepoint(cp uchar.Codepoint) string {
	return Escape(uchar.EncodeUTF8(cp))
}
