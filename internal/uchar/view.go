package uchar

// View is a borrowed code-unit range exposing codepoint-indexed
// operations, independent of its underlying code-unit width. spec.md
// §3 "Text view".
type View interface {
	// Size returns the code-unit count.
	Size() int
	// Length returns the codepoint count.
	Length() int
	// At returns the codepoint at codepoint index i (negative counts
	// from the end). ok is false if i is out of range.
	At(i int) (Codepoint, bool)
	// Slice returns the codepoint-indexed half-open sub-view [a,b),
	// normalized per NormalizeSlice. An out-of-order result after
	// clamping yields an empty view.
	Slice(a, b int) View
	// CodepointOffset returns the code-unit offset of the i-th
	// codepoint (or, if fromEnd, the i-th codepoint counting from the
	// end), or ok=false if i is out of range.
	CodepointOffset(i int, fromEnd bool) (offset int, ok bool)
	// String materializes the view as a UTF-8 Go string.
	String() string
}

// NewText8 wraps a UTF-8 string as a View.
func NewText8(s string, policy Policy) View { return text8{s: s, policy: policy} }

// NewText16 wraps UTF-16 code units as a View.
func NewText16(u []uint16, policy Policy) View { return text16{u: u, policy: policy} }

// NewText32 wraps UTF-32 code units (runes) as a View.
func NewText32(u []rune, policy Policy) View { return text32{u: u, policy: policy} }

type text8 struct {
	s      string
	policy Policy
}

func (t text8) Size() int   { return len(t.s) }
func (t text8) Length() int { return LengthUTF8(t.s, t.policy) }

func (t text8) offsets() []int {
	offs := make([]int, 0, len(t.s)+1)
	for off := 0; off < len(t.s); {
		offs = append(offs, off)
		_, size, err := DecodeUTF8(t.s, off, t.policy)
		if err == ErrStopped || size == 0 {
			break
		}
		off += size
	}
	offs = append(offs, len(t.s))
	return offs
}

func (t text8) At(i int) (Codepoint, bool) {
	offs := t.offsets()
	length := len(offs) - 1
	idx, ok := NormalizeIndex(i, length)
	if !ok {
		return 0, false
	}
	cp, _, _ := DecodeUTF8(t.s, offs[idx], t.policy)
	return cp, true
}

func (t text8) Slice(a, b int) View {
	offs := t.offsets()
	length := len(offs) - 1
	lo, hi, ok := NormalizeSlice(a, b, length)
	if !ok {
		return text8{s: "", policy: t.policy}
	}
	return text8{s: t.s[offs[lo]:offs[hi]], policy: t.policy}
}

func (t text8) CodepointOffset(i int, fromEnd bool) (int, bool) {
	offs := t.offsets()
	length := len(offs) - 1
	if fromEnd {
		i = length - 1 - i
	}
	if i < 0 || i >= length {
		return 0, false
	}
	return offs[i], true
}

func (t text8) String() string { return t.s }

type text16 struct {
	u      []uint16
	policy Policy
}

func (t text16) Size() int   { return len(t.u) }
func (t text16) Length() int { return LengthUTF16(t.u, t.policy) }

func (t text16) offsets() []int {
	offs := make([]int, 0, len(t.u)+1)
	for off := 0; off < len(t.u); {
		offs = append(offs, off)
		_, size, err := DecodeUTF16(t.u, off, t.policy)
		if err == ErrStopped || size == 0 {
			break
		}
		off += size
	}
	offs = append(offs, len(t.u))
	return offs
}

func (t text16) At(i int) (Codepoint, bool) {
	offs := t.offsets()
	length := len(offs) - 1
	idx, ok := NormalizeIndex(i, length)
	if !ok {
		return 0, false
	}
	cp, _, _ := DecodeUTF16(t.u, offs[idx], t.policy)
	return cp, true
}

func (t text16) Slice(a, b int) View {
	offs := t.offsets()
	length := len(offs) - 1
	lo, hi, ok := NormalizeSlice(a, b, length)
	if !ok {
		return text16{u: nil, policy: t.policy}
	}
	cp := make([]uint16, offs[hi]-offs[lo])
	copy(cp, t.u[offs[lo]:offs[hi]])
	return text16{u: cp, policy: t.policy}
}

func (t text16) CodepointOffset(i int, fromEnd bool) (int, bool) {
	offs := t.offsets()
	length := len(offs) - 1
	if fromEnd {
		i = length - 1 - i
	}
	if i < 0 || i >= length {
		return 0, false
	}
	return offs[i], true
}

func (t text16) String() string {
	var out []byte
	for off := 0; off < len(t.u); {
		cp, size, err := DecodeUTF16(t.u, off, t.policy)
		if err == ErrStopped || size == 0 {
			break
		}
		out = append(out, EncodeUTF8(cp)...)
		off += size
	}
	return string(out)
}

type text32 struct {
	u      []rune
	policy Policy
}

func (t text32) Size() int   { return len(t.u) }
func (t text32) Length() int { return len(t.u) }

func (t text32) At(i int) (Codepoint, bool) {
	idx, ok := NormalizeIndex(i, len(t.u))
	if !ok {
		return 0, false
	}
	cp, _, _ := DecodeUTF32(t.u, idx, t.policy)
	return cp, true
}

func (t text32) Slice(a, b int) View {
	lo, hi, ok := NormalizeSlice(a, b, len(t.u))
	if !ok {
		return text32{u: nil, policy: t.policy}
	}
	cp := make([]rune, hi-lo)
	copy(cp, t.u[lo:hi])
	return text32{u: cp, policy: t.policy}
}

func (t text32) CodepointOffset(i int, fromEnd bool) (int, bool) {
	length := len(t.u)
	if fromEnd {
		i = length - 1 - i
	}
	if i < 0 || i >= length {
		return 0, false
	}
	return i, true
}

func (t text32) String() string {
	var out []byte
	for _, r := range t.u {
		out = append(out, EncodeUTF8(Codepoint(r))...)
	}
	return string(out)
}
