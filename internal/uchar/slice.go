package uchar

// Npos marks an unspecified slice bound ("b=npos" in spec.md §3).
const Npos = int(^uint(0) >> 1) // max int, used as a sentinel

// NormalizeSlice normalizes half-open slice bounds [a,b) against a
// codepoint length L, per spec.md §3:
//
//	a <- a+L if a<0
//	b <- b+L if b<0
//	b <- L   if b==Npos
//
// The result is then clamped to [0,L] and, if the clamped lo exceeds
// the clamped hi, (0,0,false) is returned — callers must treat this as
// "projection yields the empty value" (spec.md §3 invariant).
func NormalizeSlice(a, b, length int) (lo, hi int, ok bool) {
	if a < 0 {
		a += length
	}
	if b == Npos {
		b = length
	} else if b < 0 {
		b += length
	}

	if a < 0 {
		a = 0
	}
	if a > length {
		a = length
	}
	if b < 0 {
		b = 0
	}
	if b > length {
		b = length
	}

	if a > b {
		return 0, 0, false
	}
	return a, b, true
}

// NormalizeIndex resolves a possibly-negative codepoint index i
// against length L. Returns false if out of range after adjustment.
func NormalizeIndex(i, length int) (int, bool) {
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, false
	}
	return i, true
}
