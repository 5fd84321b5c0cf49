package seq

// Group classifies a residue by side-chain property. Every one of the 20
// standard letters belongs to exactly one group; the gap symbol belongs to
// none.
type Group int

const (
	GroupHydrophobic Group = iota // A V L I M F W Y P
	GroupPolar                    // S T N Q
	GroupBasic                    // K R H
	GroupAcidic                   // D E
	GroupCysteine                 // C
	GroupGlycine                  // G
)

// String returns the group's lowercase name, matching the keys accepted by
// palette files.
func (g Group) String() string {
	switch g {
	case GroupHydrophobic:
		return "hydrophobic"
	case GroupPolar:
		return "polar"
	case GroupBasic:
		return "basic"
	case GroupAcidic:
		return "acidic"
	case GroupCysteine:
		return "cysteine"
	case GroupGlycine:
		return "glycine"
	default:
		return "unknown"
	}
}

// Groups returns all residue groups in display order.
func Groups() []Group {
	return []Group{
		GroupHydrophobic,
		GroupPolar,
		GroupBasic,
		GroupAcidic,
		GroupCysteine,
		GroupGlycine,
	}
}

var groupOf = map[byte]Group{
	'A': GroupHydrophobic,
	'V': GroupHydrophobic,
	'L': GroupHydrophobic,
	'I': GroupHydrophobic,
	'M': GroupHydrophobic,
	'F': GroupHydrophobic,
	'W': GroupHydrophobic,
	'Y': GroupHydrophobic,
	'P': GroupHydrophobic,
	'S': GroupPolar,
	'T': GroupPolar,
	'N': GroupPolar,
	'Q': GroupPolar,
	'K': GroupBasic,
	'R': GroupBasic,
	'H': GroupBasic,
	'D': GroupAcidic,
	'E': GroupAcidic,
	'C': GroupCysteine,
	'G': GroupGlycine,
}

// GroupOf returns the side-chain group of an upper-case residue letter.
// ok is false for the gap symbol and anything else outside the 20 letters;
// such characters render with no highlight.
func GroupOf(c byte) (Group, bool) {
	g, ok := groupOf[c]
	return g, ok
}
