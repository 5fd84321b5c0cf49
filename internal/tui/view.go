package tui

import (
	"fmt"
	"strings"

	"alnview/internal/render"
	"alnview/internal/tui/styles"
	"alnview/internal/util"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.measured {
		return "Loading..."
	}
	if m.mode == modeForm {
		return m.viewForm()
	}
	return m.viewAlignment()
}

func (m Model) viewForm() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("alnview"))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Enter two aligned sequences of equal length."))
	b.WriteString("\n\n")

	labels := []string{"Sequence 1", "Sequence 2"}
	for i, input := range m.inputs {
		style := styles.InputLabel
		if i == m.focus {
			style = styles.InputLabelFocused
		}
		b.WriteString(style.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	if m.errMsg != "" {
		b.WriteString(styles.ErrorMsg.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp([][2]string{
		{"tab", "next field"},
		{"enter", "view alignment"},
		{"esc", "quit"},
	}))
	return b.String()
}

func (m Model) viewAlignment() string {
	var b strings.Builder

	header := fmt.Sprintf("alnview: %d residues, %d mismatches, %.1f%% identity",
		m.pair.Len(), m.pair.Distance(), m.pair.Identity()*100)
	b.WriteString(styles.Header.Render(util.TruncateANSI(header, m.width)))
	b.WriteString("\n\n")

	if m.chunkSize < 1 {
		b.WriteString(styles.Muted.Render("Window too narrow to display the alignment."))
		b.WriteString("\n")
	} else {
		b.WriteString(render.ANSI(m.pair, m.chunkSize, m.opts.Palette))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(m.errMsg))
		b.WriteString("\n")
	}

	if m.showNotice {
		b.WriteString("\n")
		b.WriteString(styles.NoticeBadge.Render("Copied to clipboard"))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp([][2]string{
		{"c", "copy seq1"},
		{"x", "copy seq2"},
		{"e", "edit"},
		{"q", "quit"},
	}))
	return b.String()
}

func (m Model) renderHelp(entries [][2]string) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, styles.HelpKey.Render(e[0])+" "+e[1])
	}
	return styles.HelpBar.Render(strings.Join(parts, "  •  "))
}
