package core

import "github.com/papilio-go/papilio/internal/uchar"

// indexString implements the "text" row of spec.md §4.2's accessor
// table directly on string Values: integer index yields the codepoint
// at that position (negative counts from the end, out-of-range yields
// the empty value per §3's "Indexing value" rule); a slice index
// yields the codepoint substring. Text-keyed indexing is unavailable
// for plain strings.
func (v Value) indexString(idx IndexValue) (Value, error) {
	view := uchar.NewText8(v.s, uchar.PolicyReplace)
	switch idx.Kind {
	case IndexKindInt:
		cp, ok := view.At(int(idx.Int))
		if !ok {
			return None, nil
		}
		return Codepoint(cp), nil
	case IndexKindSlice:
		sub := view.Slice(idx.Lo, idx.Hi)
		return OwnedString(sub.String()), nil
	default:
		return None, ErrIndexUnavailable
	}
}

// attributeString exposes "length" (codepoint count) on string
// Values, matching the accessor table's "length" column for text.
func (v Value) attributeString(name string) (Value, error) {
	switch name {
	case "length":
		view := uchar.NewText8(v.s, uchar.PolicyReplace)
		return Int(int64(view.Length())), nil
	case "size":
		return Int(int64(len(v.s))), nil
	default:
		return None, ErrAttributeUnavailable
	}
}
