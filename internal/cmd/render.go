package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"alnview/internal/config"
	"alnview/internal/render"
	"alnview/internal/seq"
)

var (
	renderSeq1    string
	renderSeq2    string
	renderFasta   string
	renderPalette string
	renderFormat  string
	renderWidth   int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an alignment to stdout",
	Long: `Render prints the colorized alignment non-interactively, for piping or
snapshotting. The ansi format wraps to --width terminal columns; the html
format lays out fixed-width pixel cells for a --width pixel container.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderSeq1, "seq1", "", "first sequence")
	renderCmd.Flags().StringVar(&renderSeq2, "seq2", "", "second sequence")
	renderCmd.Flags().StringVar(&renderFasta, "fasta", "", "FASTA file holding the two aligned records")
	renderCmd.Flags().StringVar(&renderPalette, "palette", "", "YAML palette file overriding residue colors")
	renderCmd.Flags().StringVar(&renderFormat, "format", "ansi", "output format: ansi or html")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "container width: columns for ansi, pixels for html (default from config)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pair, err := loadPair(renderFasta, renderSeq1, renderSeq2)
	if err != nil {
		return err
	}

	pal, err := loadPalette(renderPalette, cfg.TUI.PaletteFile)
	if err != nil {
		return err
	}

	width := renderWidth
	if width <= 0 {
		width = cfg.Render.DefaultWidth
	}

	switch renderFormat {
	case "ansi":
		size := seq.ChunkSize(width-render.LabelWidth(pair.Len()), 1)
		fmt.Fprint(cmd.OutOrStdout(), render.ANSI(pair, size, pal))
	case "html":
		fmt.Fprint(cmd.OutOrStdout(), render.HTML(pair, width, pal))
	default:
		return fmt.Errorf("unknown format %q (want ansi or html)", renderFormat)
	}
	return nil
}
