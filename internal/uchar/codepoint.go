// Package uchar implements codepoint decoding/encoding and
// codepoint-indexed text views over UTF-8, UTF-16 and UTF-32 code unit
// sequences.
package uchar

// Codepoint is a Unicode scalar value (0..0x10FFFF, excluding
// surrogates).
type Codepoint rune

// ReplacementChar is substituted for malformed input under PolicyReplace.
const ReplacementChar Codepoint = 0xFFFD

// Valid reports whether c is a Unicode scalar value.
func (c Codepoint) Valid() bool {
	if c < 0 || c > 0x10FFFF {
		return false
	}
	if c >= 0xD800 && c <= 0xDFFF {
		return false
	}
	return true
}

// wideRanges are the fixed intervals from spec.md §4.1; codepoints in
// one of these ranges have display width 2, all others width 1.
var wideRanges = [][2]rune{
	{0x1100, 0x1160},
	{0x2329, 0x232B},
	{0x2E80, 0x303F},
	{0x3040, 0xA4D0},
	{0xAC00, 0xD7A4},
	{0xF900, 0xFB00},
	{0xFE10, 0xFE1A},
	{0xFE30, 0xFE70},
	{0xFF00, 0xFF61},
	{0xFFE0, 0xFFE7},
	{0x1F300, 0x1F650},
	{0x1F900, 0x1FA00},
	{0x20000, 0x2FFFE},
	{0x30000, 0x3FFFE},
}

// Width estimates the terminal display width of c as 1 or 2, using the
// fixed CJK/emoji intervals from spec.md §4.1.
func (c Codepoint) Width() int {
	r := rune(c)
	for _, rg := range wideRanges {
		if r >= rg[0] && r < rg[1] {
			return 2
		}
	}
	return 1
}
