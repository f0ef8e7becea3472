package uchar

// Iterator walks a View forward and backward one codepoint at a time.
// spec.md §4.1 "iterate".
type Iterator struct {
	v   View
	pos int // codepoint index of the next Next()/ after Prev()
}

// Iterate returns a bidirectional iterator positioned before the
// first codepoint of v.
func Iterate(v View) *Iterator {
	return &Iterator{v: v, pos: 0}
}

// Next returns the next codepoint and advances, or ok=false at end.
func (it *Iterator) Next() (Codepoint, bool) {
	cp, ok := it.v.At(it.pos)
	if !ok {
		return 0, false
	}
	it.pos++
	return cp, true
}

// Prev rewinds to the preceding codepoint and returns it, or ok=false
// at the start.
func (it *Iterator) Prev() (Codepoint, bool) {
	if it.pos <= 0 {
		return 0, false
	}
	it.pos--
	return it.v.At(it.pos)
}

// HasNext reports whether Next would succeed.
func (it *Iterator) HasNext() bool {
	_, ok := it.v.At(it.pos)
	return ok
}
