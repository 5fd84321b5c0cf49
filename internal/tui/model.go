// Package tui implements the interactive alignment viewer: a two-field
// sequence form gating a chunked, color-coded alignment display.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"alnview/internal/clipboard"
	"alnview/internal/errors"
	"alnview/internal/logging"
	"alnview/internal/render"
	"alnview/internal/seq"
	"alnview/internal/tui/styles"
)

type mode int

const (
	modeForm mode = iota
	modeView
)

// Options configures the TUI model.
type Options struct {
	// Pair, when non-nil, skips the form and opens the viewer directly.
	Pair *seq.Pair
	// Seq1 and Seq2 prefill the form fields.
	Seq1, Seq2 string
	// Palette provides the residue and mismatch colors.
	Palette styles.Palette
	// Debounce is the resize quiescence delay.
	Debounce time.Duration
	// Notice is how long the "copied" confirmation stays visible.
	Notice time.Duration
	// Log receives debug events; nil means discard.
	Log *logging.Logger
}

// Model is the Bubbletea model for the alignment viewer.
type Model struct {
	opts Options
	log  *logging.Logger

	mode   mode
	inputs [2]textinput.Model
	focus  int
	errMsg string

	pair      seq.Pair
	width     int
	height    int
	chunkSize int
	measured  bool

	// repartitions counts effective chunk-size changes; an unchanged
	// recomputation must not bump it.
	repartitions int

	resizeSeq  int
	noticeSeq  int
	showNotice bool

	// copyFn is swapped out in tests; the default writes to the system
	// clipboard.
	copyFn func(string) (bool, error)

	quitting bool
}

// NewModel creates the TUI model.
func NewModel(opts Options) Model {
	if opts.Log == nil {
		opts.Log = logging.NopLogger()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 150 * time.Millisecond
	}
	if opts.Notice <= 0 {
		opts.Notice = time.Second
	}

	m := Model{
		opts:   opts,
		log:    opts.Log.WithComponent("tui"),
		copyFn: clipboard.CopyStripped,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 0
		ti.Prompt = "> "
		m.inputs[i] = ti
	}
	m.inputs[0].Placeholder = "first sequence"
	m.inputs[1].Placeholder = "second sequence"
	m.inputs[0].SetValue(opts.Seq1)
	m.inputs[1].SetValue(opts.Seq2)
	m.inputs[0].Focus()

	if opts.Pair != nil {
		m.pair = *opts.Pair
		m.mode = modeView
		m.inputs[0].SetValue(m.pair.Seq1)
		m.inputs[1].SetValue(m.pair.Seq2)
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.measured {
			// First measurement applies eagerly so the initial render
			// uses a real width instead of a stale default.
			m.measured = true
			m.applyChunkSize()
			return m, nil
		}
		m.resizeSeq++
		settled := m.resizeSeq
		return m, tea.Tick(m.opts.Debounce, func(time.Time) tea.Msg {
			return resizeSettledMsg{seq: settled}
		})

	case resizeSettledMsg:
		if msg.seq != m.resizeSeq {
			// A newer resize superseded this burst.
			return m, nil
		}
		m.applyChunkSize()
		return m, nil

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.showNotice = false
		}
		return m, nil

	case pairReloadedMsg:
		m.pair = msg.pair
		m.inputs[0].SetValue(m.pair.Seq1)
		m.inputs[1].SetValue(m.pair.Seq2)
		m.errMsg = ""
		m.applyChunkSize()
		m.log.Debug("pair reloaded", "length", m.pair.Len())
		return m, nil

	case reloadFailedMsg:
		if errors.IsUserFacing(msg.err) {
			m.errMsg = msg.err.Error()
		} else {
			m.errMsg = "reload failed, keeping previous sequences"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.mode == modeForm {
		return m.handleFormKey(msg)
	}
	return m.handleViewKey(msg)
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab", "down":
		m.setFocus((m.focus + 1) % len(m.inputs))
		return m, nil

	case "shift+tab", "up":
		m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		return m, nil

	case "enter":
		if m.focus < len(m.inputs)-1 {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		return m.submit()
	}

	// Printable input is filtered to the alphabet before the field sees it,
	// so an invalid character can never land in a form value.
	if msg.Type == tea.KeySpace {
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		kept := make([]rune, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r < 128 && seq.ValidChar(byte(r)) {
				kept = append(kept, r)
			}
		}
		if len(kept) == 0 {
			return m, nil
		}
		msg.Runes = kept
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "e":
		m.mode = modeForm
		m.errMsg = ""
		m.setFocus(0)
		return m, nil

	case "c":
		return m.copySequence(m.pair.Seq1)

	case "x":
		return m.copySequence(m.pair.Seq2)
	}
	return m, nil
}

// submit validates the form fields into a pair and switches to the viewer.
func (m Model) submit() (tea.Model, tea.Cmd) {
	pair, err := seq.NewPair(m.inputs[0].Value(), m.inputs[1].Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.pair = pair
	m.errMsg = ""
	m.mode = modeView
	m.applyChunkSize()
	m.log.Debug("pair accepted", "length", pair.Len(), "distance", pair.Distance())
	return m, nil
}

// copySequence writes the wrapped display text of one sequence to the
// clipboard, line breaks stripped. Empty text is a no-op; write failures
// are logged and swallowed (best-effort).
func (m Model) copySequence(s string) (tea.Model, tea.Cmd) {
	wrote, err := m.copyFn(m.wrappedText(s))
	if err != nil {
		m.log.Warn("clipboard write failed", "error", err)
		return m, nil
	}
	if !wrote {
		return m, nil
	}

	m.showNotice = true
	m.noticeSeq++
	expired := m.noticeSeq
	return m, tea.Tick(m.opts.Notice, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: expired}
	})
}

// wrappedText reproduces the chunk-wrapped display text of one sequence,
// line breaks included, mirroring what a selection of the rendered rows
// would contain.
func (m Model) wrappedText(s string) string {
	size := m.chunkSize
	if size < 1 {
		return s
	}
	var out []byte
	for start := 0; start < len(s); start += size {
		end := start + size
		if end > len(s) {
			end = len(s)
		}
		if start > 0 {
			out = append(out, '\n')
		}
		out = append(out, s[start:end]...)
	}
	return string(out)
}

// applyChunkSize recomputes the chunk size from the measured width. An
// unchanged result is an idempotent no-op.
func (m *Model) applyChunkSize() {
	next := seq.ChunkSize(m.contentWidth(), 1)
	if next == m.chunkSize {
		return
	}
	m.chunkSize = next
	m.repartitions++
	m.log.Debug("chunk size changed", "width", m.width, "chunk_size", next)
}

// contentWidth is the cell count available for residue columns: the window
// minus the position label column and a right margin.
func (m Model) contentWidth() int {
	n := m.pair.Len()
	if n == 0 {
		// No pair yet: reserve a typical label column so the first
		// submission does not immediately re-partition.
		n = 1
	}
	return m.width - render.LabelWidth(n) - 1
}

func (m *Model) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}
