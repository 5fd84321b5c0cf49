package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"alnview/internal/config"
	"alnview/internal/logging"
	"alnview/internal/seq"
	"alnview/internal/tui"
)

var (
	viewSeq1    string
	viewSeq2    string
	viewFasta   string
	viewPalette string
	viewWatch   bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive alignment viewer",
	Long: `View opens the interactive viewer. With --seq1/--seq2 or --fasta the
alignment shows immediately; otherwise a form collects the two sequences.
With --watch the FASTA file is observed and edits reload the alignment.`,
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVar(&viewSeq1, "seq1", "", "first sequence")
	viewCmd.Flags().StringVar(&viewSeq2, "seq2", "", "second sequence")
	viewCmd.Flags().StringVar(&viewFasta, "fasta", "", "FASTA file holding the two aligned records")
	viewCmd.Flags().StringVar(&viewPalette, "palette", "", "YAML palette file overriding residue colors")
	viewCmd.Flags().BoolVar(&viewWatch, "watch", false, "reload when the FASTA file changes (requires --fasta)")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if viewWatch && viewFasta == "" {
		return fmt.Errorf("--watch requires --fasta")
	}

	pal, err := loadPalette(viewPalette, cfg.TUI.PaletteFile)
	if err != nil {
		return err
	}

	// Stderr logging would fight the TUI for the terminal, so without a
	// configured log directory the logger is a no-op.
	logger := logging.NopLogger()
	if cfg.Logging.Dir != "" {
		logger, err = logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
		if err != nil {
			return err
		}
		defer logger.Close()
	}

	opts := tui.Options{
		Palette:  pal,
		Debounce: time.Duration(cfg.TUI.DebounceMs) * time.Millisecond,
		Notice:   time.Duration(cfg.TUI.NoticeMs) * time.Millisecond,
		Log:      logger,
	}

	// Start in the viewer when the sequences arrive via flags or file;
	// start on the form otherwise, prefilled with whatever was given.
	if viewFasta != "" || (viewSeq1 != "" && viewSeq2 != "") {
		pair, err := loadPair(viewFasta, viewSeq1, viewSeq2)
		if err != nil {
			return err
		}
		opts.Pair = &pair
	} else {
		opts.Seq1 = seq.Normalize(viewSeq1)
		opts.Seq2 = seq.Normalize(viewSeq2)
	}

	watchPath := ""
	if viewWatch {
		watchPath = viewFasta
	}

	return tui.New(tui.NewModel(opts), watchPath).Run()
}
