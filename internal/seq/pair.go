package seq

import (
	"alnview/internal/errors"
)

// Pair is an immutable snapshot of two pre-aligned sequences of equal
// length, both upper-cased and alphabet-validated by NewPair. Code past the
// constructor indexes both strings without bounds checks.
type Pair struct {
	Seq1 string
	Seq2 string
}

// NewPair validates and normalizes two raw input strings into a Pair.
// It rejects empty input, characters outside the alphabet, and unequal
// lengths. No gap insertion or scoring happens here: the inputs are assumed
// to be already aligned position by position.
func NewPair(s1, s2 string) (Pair, error) {
	if err := Validate("seq1", s1); err != nil {
		return Pair{}, err
	}
	if err := Validate("seq2", s2); err != nil {
		return Pair{}, err
	}
	if len(s1) != len(s2) {
		return Pair{}, errors.NewValidationError("seq2",
			"length %d does not match seq1 length %d", len(s2), len(s1))
	}
	return Pair{Seq1: Normalize(s1), Seq2: Normalize(s2)}, nil
}

// Len returns the shared length of both sequences.
func (p Pair) Len() int { return len(p.Seq1) }

// Mismatch reports whether the two sequences differ at position i.
// The comparison is always against the full original strings, never
// chunk-relative, so display wrapping cannot affect it.
func (p Pair) Mismatch(i int) bool {
	return p.Seq1[i] != p.Seq2[i]
}

// Mismatches returns the per-position mismatch flags for the whole pair.
func (p Pair) Mismatches() []bool {
	flags := make([]bool, len(p.Seq1))
	for i := range flags {
		flags[i] = p.Seq1[i] != p.Seq2[i]
	}
	return flags
}

// Distance returns the Hamming distance: the number of positions at which
// the two sequences differ.
func (p Pair) Distance() int {
	d := 0
	for i := 0; i < len(p.Seq1); i++ {
		if p.Seq1[i] != p.Seq2[i] {
			d++
		}
	}
	return d
}

// Identity returns the fraction of matching positions, in [0, 1].
func (p Pair) Identity() float64 {
	if p.Len() == 0 {
		return 0
	}
	return float64(p.Len()-p.Distance()) / float64(p.Len())
}
