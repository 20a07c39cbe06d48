package inputbuf

// Buffer holds the original and current (possibly preprocessed) text of a
// sentence as codepoint slices, so callers can address spans by codepoint
// boundary rather than by byte offset.
//
// orig and curr are expected to have the same codepoint length: curr is a
// preprocessing-normalized view of orig (e.g. full-width to half-width
// folding applied upstream of the lattice), never a differently-segmented
// text.
type Buffer struct {
	orig []rune
	curr []rune
}

// New builds a Buffer from separately tracked original and current text.
func New(orig, curr string) *Buffer {
	return &Buffer{orig: []rune(orig), curr: []rune(curr)}
}

// NewFromText builds a Buffer whose original and current text are
// identical, the common case when no preprocessing has modified the input.
func NewFromText(text string) *Buffer {
	runes := []rune(text)
	return &Buffer{orig: runes, curr: runes}
}

// Len returns the codepoint length of the buffer.
func (b *Buffer) Len() int {
	return len(b.curr)
}

func clampRange(n, begin, end int) (int, int) {
	if begin < 0 {
		begin = 0
	}
	if end > n {
		end = n
	}
	if begin > end {
		begin = end
	}
	return begin, end
}

// CurrSliceC returns the current-text substring spanning codepoints
// [begin, end). Out-of-range bounds are clamped rather than causing a
// panic, since boundaries are always derived from a lattice built over
// this same buffer's length.
func (b *Buffer) CurrSliceC(begin, end int) string {
	begin, end = clampRange(len(b.curr), begin, end)
	return string(b.curr[begin:end])
}

// OrigSliceC returns the original-text substring spanning codepoints
// [begin, end), clamped the same way as CurrSliceC.
func (b *Buffer) OrigSliceC(begin, end int) string {
	begin, end = clampRange(len(b.orig), begin, end)
	return string(b.orig[begin:end])
}
