package seq

import (
	"testing"

	"alnview/internal/errors"
)

func TestValidChar(t *testing.T) {
	for i := 0; i < len(Residues); i++ {
		c := Residues[i]
		if !ValidChar(c) {
			t.Errorf("ValidChar(%q) = false, want true", c)
		}
		lower := c | 0x20
		if !ValidChar(lower) {
			t.Errorf("ValidChar(%q) = false, want true (lowercase)", lower)
		}
	}

	if !ValidChar('-') {
		t.Error("ValidChar('-') = false, want true")
	}

	for _, c := range []byte{'B', 'J', 'O', 'U', 'X', 'Z', '*', ' ', '1', '\n', 0} {
		if ValidChar(c) {
			t.Errorf("ValidChar(%q) = true, want false", c)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"all residues", Residues, false},
		{"lowercase", "acdefg", false},
		{"with gaps", "AC--DE", false},
		{"empty", "", true},
		{"ambiguity code", "ACDX", true},
		{"whitespace", "AC DE", true},
		{"digits", "ACD3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate("seq1", tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.IsValidation(err) {
				t.Errorf("Validate(%q) returned a non-validation error: %v", tt.input, err)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("ac-De"); got != "AC-DE" {
		t.Errorf("Normalize(\"ac-De\") = %q, want \"AC-DE\"", got)
	}
}
