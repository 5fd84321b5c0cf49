package cmd

import (
	"fmt"

	"alnview/internal/fasta"
	"alnview/internal/seq"
	"alnview/internal/tui/styles"
)

// loadPair resolves the sequence inputs shared by the view and render
// commands: a FASTA file beats the sequence flags, and mixing both is an
// error.
func loadPair(fastaPath, s1, s2 string) (seq.Pair, error) {
	if fastaPath != "" {
		if s1 != "" || s2 != "" {
			return seq.Pair{}, fmt.Errorf("--fasta cannot be combined with --seq1/--seq2")
		}
		return fasta.LoadPair(fastaPath)
	}
	return seq.NewPair(s1, s2)
}

// loadPalette resolves the residue palette: an explicit flag beats the
// configured palette file, and no file means the built-in colors.
func loadPalette(flagPath, cfgPath string) (styles.Palette, error) {
	path := flagPath
	if path == "" {
		path = cfgPath
	}
	if path == "" {
		return styles.DefaultPalette(), nil
	}
	return styles.LoadPalette(path)
}
