package render

import (
	"strings"
	"testing"

	"alnview/internal/seq"
	"alnview/internal/tui/styles"
)

func mustPair(t *testing.T, s1, s2 string) seq.Pair {
	t.Helper()
	p, err := seq.NewPair(s1, s2)
	if err != nil {
		t.Fatalf("NewPair failed: %v", err)
	}
	return p
}

func TestLabelWidth(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{4, 2},
		{9, 2},
		{10, 3},
		{100, 4},
	}
	for _, tt := range tests {
		if got := LabelWidth(tt.n); got != tt.want {
			t.Errorf("LabelWidth(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestANSI_RowStructure(t *testing.T) {
	p := mustPair(t, "ACDE", "ACDF")
	out := ANSI(p, 2, styles.DefaultPalette())

	// Two chunks, two rows each, one separating blank line.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if lines[2] != "" {
		t.Errorf("expected a blank line between chunks, got %q", lines[2])
	}

	// Position labels are 1-based chunk start offsets.
	if !strings.Contains(lines[0], "1") {
		t.Errorf("first chunk label missing position 1: %q", lines[0])
	}
	if !strings.Contains(lines[3], "3") {
		t.Errorf("second chunk label missing position 3: %q", lines[3])
	}
}

func TestANSI_EmptyPair(t *testing.T) {
	if out := ANSI(seq.Pair{}, 10, styles.DefaultPalette()); out != "" {
		t.Errorf("ANSI of an empty pair = %q, want empty", out)
	}
}

func TestHTML_WorkedExample(t *testing.T) {
	// chunkSize 2 needs a container two cells wide.
	p := mustPair(t, "ACDE", "ACDF")
	out := HTML(p, 2*seq.PerCharWidthPx, styles.DefaultPalette())

	if got := strings.Count(out, `<div class="chunk">`); got != 2 {
		t.Errorf("chunk count = %d, want 2", got)
	}

	// seq1 colors per the residue map.
	for _, want := range []string{
		`background-color:#67E4A6">A`,
		`background-color:#FFEA00">C`,
		`background-color:#FC9CAC">D`,
		`background-color:#FC9CAC">E`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Only the final seq2 position mismatches.
	if got := strings.Count(out, "#F87171"); got != 1 {
		t.Errorf("mismatch highlight count = %d, want 1", got)
	}
	if !strings.Contains(out, `background-color:#F87171">F`) {
		t.Errorf("mismatched F cell not highlighted:\n%s", out)
	}

	// Matching seq2 cells are transparent.
	if got := strings.Count(out, `background-color:transparent">A`); got != 1 {
		t.Errorf("transparent A cells = %d, want 1", got)
	}
}

func TestHTML_GapHasNoHighlight(t *testing.T) {
	p := mustPair(t, "A-DE", "A-DE")
	out := HTML(p, 4*seq.PerCharWidthPx, styles.DefaultPalette())

	if !strings.Contains(out, `background-color:transparent">-`) {
		t.Errorf("gap cell should be transparent:\n%s", out)
	}
	if strings.Contains(out, "#F87171") {
		t.Errorf("identical pair should have no mismatch highlight:\n%s", out)
	}
}

func TestHTML_CellWidthUsesFixedConstant(t *testing.T) {
	p := mustPair(t, "AC", "AC")
	out := HTML(p, 100, styles.DefaultPalette())
	if !strings.Contains(out, "width:19px") {
		t.Errorf("cells should be %dpx wide:\n%s", seq.PerCharWidthPx, out)
	}
}

func TestHTML_UnmeasuredContainerClampsToOneCell(t *testing.T) {
	// Width 0 yields chunk size 0, which the partition clamps to 1: every
	// residue lands in its own chunk rather than looping forever.
	p := mustPair(t, "ACD", "ACD")
	out := HTML(p, 0, styles.DefaultPalette())
	if got := strings.Count(out, `<div class="chunk">`); got != 3 {
		t.Errorf("chunk count = %d, want 3 (one residue per chunk)", got)
	}
}
