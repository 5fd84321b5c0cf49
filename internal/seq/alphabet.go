// Package seq holds the sequence domain: the amino-acid alphabet, validated
// sequence pairs, position-wise mismatch computation, and the chunking used
// to wrap an alignment to a display width.
package seq

import (
	"strings"

	"alnview/internal/errors"
)

// Gap is the alignment gap symbol. It is a valid sequence character but
// carries no residue color.
const Gap = '-'

// Residues lists the 20 standard amino-acid letters.
const Residues = "ARNDCEQGHILKMFPSTWYV"

// ValidChar reports whether c is an allowed sequence character: one of the
// 20 standard amino-acid letters (either case) or the gap symbol.
func ValidChar(c byte) bool {
	if c == Gap {
		return true
	}
	upper := c &^ 0x20
	return upper >= 'A' && upper <= 'Z' && strings.IndexByte(Residues, upper) >= 0
}

// Validate checks that s is non-empty and contains only allowed characters.
func Validate(field, s string) error {
	if s == "" {
		return errors.NewValidationError(field, "sequence must not be empty")
	}
	for i := 0; i < len(s); i++ {
		if !ValidChar(s[i]) {
			return errors.NewValidationError(field,
				"invalid character %q at position %d (allowed: %s and %c)",
				s[i], i, Residues, Gap)
		}
	}
	return nil
}

// Normalize upper-cases a sequence. Validation is case-insensitive; the
// rest of the package only ever sees normalized strings.
func Normalize(s string) string {
	return strings.ToUpper(s)
}
