// Package render turns a sequence pair into a chunked, colorized alignment:
// ANSI rows for the terminal and an HTML fragment for pixel-based layouts.
// First-sequence cells are colored by residue group; second-sequence cells
// carry the mismatch highlight or nothing. Rendering never re-diffs inside a
// chunk: mismatch flags come from the full strings.
package render

import (
	"fmt"
	"strings"

	"alnview/internal/seq"
	"alnview/internal/tui/styles"
)

// LabelWidth returns the width of the position label column for a sequence
// of length n: the digits of the largest 1-based position plus one space.
func LabelWidth(n int) int {
	return len(fmt.Sprintf("%d", n)) + 1
}

// ANSI renders the alignment as styled terminal rows. Each chunk is two
// rows (seq1 over seq2) prefixed with the 1-based start position; chunks
// are separated by a blank line. A chunkSize below 1 is clamped by the
// partition step.
func ANSI(p seq.Pair, chunkSize int, pal styles.Palette) string {
	chunks := seq.Partition(p, chunkSize)
	if len(chunks) == 0 {
		return ""
	}

	labelW := LabelWidth(p.Len())
	mismatch := pal.MismatchStyle()

	var b strings.Builder
	offset := 0
	for ci, chunk := range chunks {
		if ci > 0 {
			b.WriteString("\n")
		}

		b.WriteString(styles.RowLabel.Render(fmt.Sprintf("%*d ", labelW-1, offset+1)))
		for i := 0; i < len(chunk.A); i++ {
			b.WriteString(pal.ResidueStyle(chunk.A[i]).Render(string(chunk.A[i])))
		}
		b.WriteString("\n")

		b.WriteString(strings.Repeat(" ", labelW))
		for i := 0; i < len(chunk.B); i++ {
			if p.Mismatch(offset + i) {
				b.WriteString(mismatch.Render(string(chunk.B[i])))
			} else {
				b.WriteString(string(chunk.B[i]))
			}
		}
		b.WriteString("\n")

		offset += len(chunk.A)
	}
	return b.String()
}

// HTML renders the alignment as a self-contained HTML fragment laid out for
// a container of the given pixel width, with one fixed-width cell per
// residue. Gap cells and matching second-row cells get a transparent
// background.
func HTML(p seq.Pair, containerWidthPx int, pal styles.Palette) string {
	chunkSize := seq.ChunkSizePx(containerWidthPx)
	chunks := seq.Partition(p, chunkSize)
	if len(chunks) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="alignment" style="font-family:monospace">` + "\n")

	offset := 0
	for _, chunk := range chunks {
		b.WriteString(`<div class="chunk">` + "\n")

		b.WriteString(`<div class="row">`)
		for i := 0; i < len(chunk.A); i++ {
			color, ok := pal.ResidueColor(chunk.A[i])
			if !ok {
				color = "transparent"
			}
			writeCell(&b, chunk.A[i], color)
		}
		b.WriteString("</div>\n")

		b.WriteString(`<div class="row">`)
		for i := 0; i < len(chunk.B); i++ {
			color := "transparent"
			if p.Mismatch(offset + i) {
				color = pal.Mismatch
			}
			writeCell(&b, chunk.B[i], color)
		}
		b.WriteString("</div>\n")

		b.WriteString("</div>\n")
		offset += len(chunk.A)
	}

	b.WriteString("</div>\n")
	return b.String()
}

func writeCell(b *strings.Builder, c byte, color string) {
	fmt.Fprintf(b,
		`<span style="display:inline-block;width:%dpx;text-align:center;background-color:%s">%c</span>`,
		seq.PerCharWidthPx, color, c)
}
