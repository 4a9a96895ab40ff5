package suffixtree

// Sentinel symbols appended around the two inputs. Input bytes map to 0-255,
// so neither sentinel can collide with input content.
const (
	Separator  int32 = 256
	Terminator int32 = 257
)

// Sequence is the combined analysis buffer s1 + Separator + s2 + Terminator.
// It is immutable once created.
type Sequence struct {
	syms  []int32
	s1Len int
}

// NewSequence joins s1 and s2 into a combined sequence.
func NewSequence(s1, s2 []byte) *Sequence {
	syms := make([]int32, 0, len(s1)+len(s2)+2)
	for _, b := range s1 {
		syms = append(syms, int32(b))
	}
	syms = append(syms, Separator)
	for _, b := range s2 {
		syms = append(syms, int32(b))
	}
	syms = append(syms, Terminator)

	return &Sequence{syms: syms, s1Len: len(s1)}
}

// Len returns the combined length, len(s1)+len(s2)+2.
func (s *Sequence) Len() int {
	return len(s.syms)
}

// At returns the symbol at a combined offset.
func (s *Sequence) At(offset int) int32 {
	return s.syms[offset]
}

// S1Len returns the length of the first input.
func (s *Sequence) S1Len() int {
	return s.s1Len
}

// S2Len returns the length of the second input.
func (s *Sequence) S2Len() int {
	return len(s.syms) - s.s1Len - 2
}

// SeparatorOffset returns the combined offset of the separator, which equals len(s1).
func (s *Sequence) SeparatorOffset() int {
	return s.s1Len
}

// TerminatorOffset returns the combined offset of the terminator.
func (s *Sequence) TerminatorOffset() int {
	return len(s.syms) - 1
}

// InS1 reports whether a combined offset falls inside s1.
func (s *Sequence) InS1(offset int) bool {
	return offset >= 0 && offset < s.s1Len
}

// InS2 reports whether a combined offset falls inside s2.
func (s *Sequence) InS2(offset int) bool {
	return offset > s.s1Len && offset < len(s.syms)-1
}

// S2Offset converts a combined offset inside s2 to an offset into s2.
func (s *Sequence) S2Offset(offset int) int {
	return offset - s.s1Len - 1
}
