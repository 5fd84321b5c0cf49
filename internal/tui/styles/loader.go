package styles

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// hexColorRegex matches #RGB and #RRGGBB hex colors.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// isValidHexColor checks if a string is a valid hex color (#RGB or #RRGGBB).
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// LoadPalette reads a palette override from a YAML file. Keys are the
// residue group names plus "mismatch"; values are hex colors. Omitted keys
// keep the built-in defaults, so a file may remap a single group.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to read palette file: %w", err)
	}

	pal := DefaultPalette()
	// KnownFields rejects misspelled group names instead of silently
	// ignoring them.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&pal); err != nil {
		return Palette{}, fmt.Errorf("%s: %w", path, err)
	}

	if err := pal.validate(); err != nil {
		return Palette{}, fmt.Errorf("%s: %w", path, err)
	}
	return pal, nil
}

// validate checks that every palette entry is a well-formed hex color.
func (p Palette) validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"hydrophobic", p.Hydrophobic},
		{"polar", p.Polar},
		{"basic", p.Basic},
		{"acidic", p.Acidic},
		{"cysteine", p.Cysteine},
		{"glycine", p.Glycine},
		{"mismatch", p.Mismatch},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if !isValidHexColor(f.value) {
			return fmt.Errorf("invalid hex color for %s: %q", f.name, f.value)
		}
	}
	return nil
}
