// Package styles defines the lipgloss styles and the residue color palette
// used by the alignment views.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"alnview/internal/seq"
)

// Palette assigns one background color per residue group plus the mismatch
// highlight. All values are hex strings (#RRGGBB). An empty value means no
// highlight for that group.
type Palette struct {
	Hydrophobic string `yaml:"hydrophobic"`
	Polar       string `yaml:"polar"`
	Basic       string `yaml:"basic"`
	Acidic      string `yaml:"acidic"`
	Cysteine    string `yaml:"cysteine"`
	Glycine     string `yaml:"glycine"`
	Mismatch    string `yaml:"mismatch"`
}

// DefaultPalette returns the built-in residue colors.
func DefaultPalette() Palette {
	return Palette{
		Hydrophobic: "#67E4A6",
		Polar:       "#4FC3F7",
		Basic:       "#B39DDB",
		Acidic:      "#FC9CAC",
		Cysteine:    "#FFEA00",
		Glycine:     "#FFB74D",
		Mismatch:    "#F87171",
	}
}

// GroupColor returns the hex color assigned to a residue group.
func (p Palette) GroupColor(g seq.Group) string {
	switch g {
	case seq.GroupHydrophobic:
		return p.Hydrophobic
	case seq.GroupPolar:
		return p.Polar
	case seq.GroupBasic:
		return p.Basic
	case seq.GroupAcidic:
		return p.Acidic
	case seq.GroupCysteine:
		return p.Cysteine
	case seq.GroupGlycine:
		return p.Glycine
	default:
		return ""
	}
}

// ResidueColor returns the background color for a first-sequence character.
// ok is false (no highlight) for the gap symbol and anything outside the
// 20 standard letters.
func (p Palette) ResidueColor(c byte) (string, bool) {
	g, ok := seq.GroupOf(c)
	if !ok {
		return "", false
	}
	hex := p.GroupColor(g)
	return hex, hex != ""
}

// ResidueStyle returns the lipgloss style for a first-sequence cell:
// the residue group background, or an unstyled cell for gaps.
func (p Palette) ResidueStyle(c byte) lipgloss.Style {
	hex, ok := p.ResidueColor(c)
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(cellTextColor)
}

// MismatchStyle returns the lipgloss style for a mismatched second-sequence
// cell.
func (p Palette) MismatchStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(p.Mismatch)).
		Foreground(cellTextColor)
}
