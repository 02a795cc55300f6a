package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	glyphOn       = '█'
	glyphOff      = '·'
	glyphFloatOn  = '▓'
	glyphFloatOff = '░'
)

type cellClass int

const (
	classNormal cellClass = iota
	classSelection
	classFloating
	classCursor
)

var (
	styleSelection = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	styleFloating  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleCursor    = lipgloss.NewStyle().Reverse(true)
)

// renderCanvas rasterizes the editor state into viewport lines: background
// cells, the floating layer drawn over them, and the selection rectangle
// tinted. The floating layer suppresses the selection tint.
func (m *model) renderCanvas(viewW, viewH int) []string {
	ed := m.editor
	b := ed.Bitmap()
	fl := ed.Float()

	var sel Rect
	var showSel bool
	switch ed.State() {
	case StateSelecting:
		sel = ed.PendingSelection()
		showSel = true
	case StateSelected:
		sel, showSel = ed.Selection()
	}

	lines := make([]string, 0, viewH)
	for vy := 0; vy < viewH; vy++ {
		y := vy + m.panY
		var sb strings.Builder
		run := make([]rune, 0, viewW)
		runClass := classNormal
		flush := func() {
			if len(run) == 0 {
				return
			}
			s := string(run)
			switch runClass {
			case classSelection:
				s = styleSelection.Render(s)
			case classFloating:
				s = styleFloating.Render(s)
			case classCursor:
				s = styleCursor.Render(s)
			}
			sb.WriteString(s)
			run = run[:0]
		}

		for vx := 0; vx < viewW; vx++ {
			x := vx + m.panX

			var glyph rune
			class := classNormal
			switch {
			case !b.InBounds(x, y):
				glyph = ' '
			case fl != nil && fl.data.InBounds(x-fl.X, y-fl.Y):
				class = classFloating
				if fl.Get(x-fl.X, y-fl.Y) {
					glyph = glyphFloatOn
				} else {
					glyph = glyphFloatOff
				}
			default:
				if b.Get(x, y) {
					glyph = glyphOn
				} else {
					glyph = glyphOff
				}
				if showSel && fl == nil && sel.Contains(x, y) {
					class = classSelection
				}
			}

			if m.showCursor() && x == m.cursorX && y == m.cursorY {
				class = classCursor
			}

			if class != runClass {
				flush()
				runClass = class
			}
			run = append(run, glyph)
		}
		flush()
		lines = append(lines, sb.String())
	}
	return lines
}

func (m *model) showCursor() bool {
	switch m.mode {
	case ModeNormal, ModeSelect, ModeFloat:
		return true
	}
	return false
}
