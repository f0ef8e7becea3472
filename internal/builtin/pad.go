// Package builtin supplies the default per-type formatters the
// interpreter falls back to for argument values of the built-in
// primitive kinds (spec.md §9's formatter contract instantiated for
// bool/int/float/codepoint/string/pointer), adapted to the
// standard/simple spec structs of internal/specparse.
package builtin

import (
	"strings"

	"github.com/papilio-go/papilio/internal/specparse"
	"github.com/papilio-go/papilio/internal/uchar"
)

// displayWidth sums each rune's estimated terminal display width (1 or
// 2 columns, spec.md §4.1), rather than just counting codepoints, so
// CJK/emoji text pads to the same visual column count as narrow text.
func displayWidth(s string) int {
	total := 0
	for _, r := range s {
		total += uchar.Codepoint(r).Width()
	}
	return total
}

// pad applies a standard/simple spec's fill/align/width to s, measuring
// width via displayWidth (spec.md §4.1's estimated terminal column
// count), not a raw codepoint or byte count.
func pad(s string, width int, hasWidth bool, fill rune, align specparse.Align, numeric bool) string {
	if !hasWidth {
		return s
	}
	length := displayWidth(s)
	if length >= width {
		return s
	}
	extra := width - length
	if fill == 0 {
		fill = ' '
	}
	effective := align
	if effective == specparse.AlignDefault {
		if numeric {
			effective = specparse.AlignRight
		} else {
			effective = specparse.AlignLeft
		}
	}
	padStr := func(n int) string {
		if n <= 0 {
			return ""
		}
		return strings.Repeat(string(fill), n)
	}
	switch effective {
	case specparse.AlignLeft:
		return s + padStr(extra)
	case specparse.AlignRight:
		return padStr(extra) + s
	case specparse.AlignCenter:
		left := extra / 2
		right := extra - left
		return padStr(left) + s + padStr(right)
	default:
		return s
	}
}
