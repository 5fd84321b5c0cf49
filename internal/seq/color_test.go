package seq

import "testing"

func TestGroupOf_TotalOverResidues(t *testing.T) {
	for i := 0; i < len(Residues); i++ {
		if _, ok := GroupOf(Residues[i]); !ok {
			t.Errorf("GroupOf(%q) has no group; mapping must be total over the 20 letters", Residues[i])
		}
	}
}

func TestGroupOf_Membership(t *testing.T) {
	tests := []struct {
		residue byte
		want    Group
	}{
		{'A', GroupHydrophobic},
		{'W', GroupHydrophobic},
		{'P', GroupHydrophobic},
		{'S', GroupPolar},
		{'Q', GroupPolar},
		{'K', GroupBasic},
		{'H', GroupBasic},
		{'D', GroupAcidic},
		{'E', GroupAcidic},
		{'C', GroupCysteine},
		{'G', GroupGlycine},
	}

	for _, tt := range tests {
		got, ok := GroupOf(tt.residue)
		if !ok {
			t.Errorf("GroupOf(%q) not found", tt.residue)
			continue
		}
		if got != tt.want {
			t.Errorf("GroupOf(%q) = %v, want %v", tt.residue, got, tt.want)
		}
	}
}

func TestGroupOf_GapAndUnknown(t *testing.T) {
	for _, c := range []byte{'-', 'X', 'a', ' ', 0} {
		if _, ok := GroupOf(c); ok {
			t.Errorf("GroupOf(%q) = ok, want no group", c)
		}
	}
}

func TestGroup_String(t *testing.T) {
	want := map[Group]string{
		GroupHydrophobic: "hydrophobic",
		GroupPolar:       "polar",
		GroupBasic:       "basic",
		GroupAcidic:      "acidic",
		GroupCysteine:    "cysteine",
		GroupGlycine:     "glycine",
	}
	for g, name := range want {
		if g.String() != name {
			t.Errorf("Group(%d).String() = %q, want %q", g, g.String(), name)
		}
	}
	if Group(99).String() != "unknown" {
		t.Errorf("out-of-range group should stringify as unknown")
	}
}
