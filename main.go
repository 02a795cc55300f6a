package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type model struct {
	width  int
	height int

	cursorX int
	cursorY int
	panX    int
	panY    int

	editor   *Editor
	scanMode ScanMode
	bitOrder BitOrder

	mode          Mode
	help          bool
	helpScroll    int
	textInput     string
	fileOp        FileOperation
	confirmAction ConfirmAction

	errorMessage   string
	successMessage string

	config *Config
}

func initialModel() model {
	config := loadConfig()
	m := model{
		editor:   NewEditor(config.DefaultWidth, config.DefaultHeight),
		scanMode: config.ScanMode,
		bitOrder: config.BitOrder,
		mode:     ModeNormal,
		config:   config,
	}
	if config.StartMenu {
		m.mode = ModeStartup
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.KeyMsg:
		if m.help && m.mode != ModeStartup {
			return m.updateHelp(msg)
		}

		switch m.mode {
		case ModeStartup:
			return m.updateStartup(msg)
		case ModeNormal:
			return m.updateNormal(msg)
		case ModeSelect:
			return m.updateSelect(msg)
		case ModeFloat:
			return m.updateFloat(msg)
		case ModeDimInput, ModeFileInput:
			return m.updateTextInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		}
	}
	return m, nil
}

func (m model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		maxScroll := len(helpLines()) - (m.height - 1)
		if maxScroll < 0 {
			maxScroll = 0
		}
		if m.helpScroll < maxScroll {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
	return m, nil
}

func (m model) updateStartup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n", "enter":
		m.mode = ModeNormal
		m.errorMessage = ""
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""

	switch key := msg.String(); key {
	case "q", "ctrl+c":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit

	case "?":
		m.help = true
		return m, nil

	case "esc":
		m.editor.Deselect()
		return m, nil

	case "h", "j", "k", "l", "left", "down", "up", "right",
		"H", "J", "K", "L", "shift+left", "shift+down", "shift+up", "shift+right":
		m.handleNavigation(key, m.getMoveSpeed(key))
		return m, nil

	case " ", "enter":
		on := !m.editor.Bitmap().Get(m.cursorX, m.cursorY)
		m.editor.SetPixel(m.cursorX, m.cursorY, on)
		m.editor.CommitStroke()
		return m, nil

	case "v":
		m.editor.BeginSelection(m.cursorX, m.cursorY)
		m.mode = ModeSelect
		return m, nil

	case "y":
		m.editor.Copy()
		if m.editor.HasClipboard() {
			m.successMessage = "copied selection"
		}
		return m, nil

	case "x":
		m.editor.Cut()
		return m, nil

	case "f":
		m.editor.Lift()
		if m.editor.State() == StateFloating {
			m.mode = ModeFloat
		}
		return m, nil

	case "p":
		m.editor.Paste()
		if m.editor.State() == StateFloating {
			fl := m.editor.Float()
			m.cursorX, m.cursorY = fl.X, fl.Y
			m.ensureCursorInBounds()
			m.mode = ModeFloat
		}
		return m, nil

	case "u":
		m.editor.Undo()
		m.ensureCursorInBounds()
		return m, nil

	case "U", "ctrl+r":
		m.editor.Redo()
		m.ensureCursorInBounds()
		return m, nil

	case "I":
		m.editor.InvertAll()
		return m, nil

	case "D":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmClearCanvas
			return m, nil
		}
		m.editor.ClearAll()
		return m, nil

	case "n":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmNewCanvas
			return m, nil
		}
		m.newCanvas()
		return m, nil

	case "M":
		if m.scanMode == ScanHorizontal {
			m.scanMode = ScanVertical
		} else {
			m.scanMode = ScanHorizontal
		}
		return m, nil

	case "B":
		if m.bitOrder == MSBFirst {
			m.bitOrder = LSBFirst
		} else {
			m.bitOrder = MSBFirst
		}
		return m, nil

	case "R":
		m.mode = ModeDimInput
		m.textInput = ""
		return m, nil

	case "e":
		b := m.editor.Composite()
		text := FormatBytes(Pack(b, m.scanMode, m.bitOrder), m.config.HexPerLine)
		if err := writeClipboardText(text); err != nil {
			m.errorMessage = "clipboard: " + err.Error()
		} else {
			m.successMessage = fmt.Sprintf("copied %d bytes to clipboard",
				ByteCount(b.Width(), b.Height(), m.scanMode))
		}
		return m, nil

	case "i":
		m.importFromClipboard()
		return m, nil

	case "E":
		m.mode = ModeFileInput
		m.fileOp = FileOpSaveArray
		m.textInput = ""
		return m, nil

	case "P":
		m.mode = ModeFileInput
		m.fileOp = FileOpSavePNG
		m.textInput = ""
		return m, nil

	case "o":
		m.mode = ModeFileInput
		m.fileOp = FileOpImportImage
		m.textInput = ""
		return m, nil
	}
	return m, nil
}

func (m model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "esc":
		m.editor.EndSelection()
		m.editor.Deselect()
		m.mode = ModeNormal
		return m, nil

	case "v", "enter", " ":
		m.editor.EndSelection()
		m.mode = ModeNormal
		return m, nil

	case "h", "j", "k", "l", "left", "down", "up", "right",
		"H", "J", "K", "L", "shift+left", "shift+down", "shift+up", "shift+right":
		m.handleNavigation(key, m.getMoveSpeed(key))
		m.editor.UpdateSelection(m.cursorX, m.cursorY)
		return m, nil
	}
	return m, nil
}

func (m model) updateFloat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "enter", " ":
		m.editor.CommitFloat()
		m.mode = ModeNormal
		return m, nil

	case "esc":
		m.editor.DiscardFloat()
		m.mode = ModeNormal
		return m, nil

	case "u":
		// undo while a layer floats means discard, not a history pop
		m.editor.Undo()
		m.mode = ModeNormal
		return m, nil

	case "p":
		m.editor.Paste()
		if fl := m.editor.Float(); fl != nil {
			m.cursorX, m.cursorY = fl.X, fl.Y
			m.ensureCursorInBounds()
		}
		return m, nil

	case "h", "j", "k", "l", "left", "down", "up", "right",
		"H", "J", "K", "L", "shift+left", "shift+down", "shift+up", "shift+right":
		speed := m.getMoveSpeed(key)
		dx, dy := 0, 0
		switch key {
		case "h", "left", "H", "shift+left":
			dx = -speed
		case "l", "right", "L", "shift+right":
			dx = speed
		case "k", "up", "K", "shift+up":
			dy = -speed
		case "j", "down", "J", "shift+down":
			dy = speed
		}
		m.editor.MoveFloat(dx, dy)
		m.cursorX += dx
		m.cursorY += dy
		m.ensureCursorInBounds()
		return m, nil
	}
	return m, nil
}

func (m model) updateTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.textInput = ""
		return m, nil
	case "enter":
		input := strings.TrimSpace(m.textInput)
		m.textInput = ""
		if m.mode == ModeDimInput {
			m.mode = ModeNormal
			m.applyResize(input)
			return m, nil
		}
		m.mode = ModeNormal
		m.runFileOp(input)
		return m, nil
	case "backspace":
		if len(m.textInput) > 0 {
			m.textInput = m.textInput[:len(m.textInput)-1]
		}
		return m, nil
	default:
		if msg.Type == tea.KeyRunes {
			m.textInput += string(msg.Runes)
		} else if msg.String() == " " {
			m.textInput += " "
		}
		return m, nil
	}
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmNewCanvas:
			m.newCanvas()
		case ConfirmClearCanvas:
			m.editor.ClearAll()
		}
		return m, nil
	default:
		m.mode = ModeNormal
		return m, nil
	}
}

func (m *model) newCanvas() {
	m.editor.Resize(m.config.DefaultWidth, m.config.DefaultHeight)
	m.cursorX, m.cursorY = 0, 0
	m.panX, m.panY = 0, 0
}

// applyResize parses "WxH" input and resizes the canvas. The canvas comes
// back zero-filled with a fresh single-entry history.
func (m *model) applyResize(input string) {
	parts := strings.SplitN(strings.ToLower(input), "x", 2)
	if len(parts) != 2 {
		m.errorMessage = "expected WIDTHxHEIGHT, e.g. 128x64"
		return
	}
	w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil || w < minCanvasDim || h < minCanvasDim || w > maxCanvasDim || h > maxCanvasDim {
		m.errorMessage = fmt.Sprintf("dimensions must be %d..%d", minCanvasDim, maxCanvasDim)
		return
	}
	m.editor.Resize(w, h)
	m.cursorX, m.cursorY = 0, 0
	m.panX, m.panY = 0, 0
	m.successMessage = fmt.Sprintf("canvas resized to %dx%d", w, h)
}

// importFromClipboard parses array text from the system clipboard with the
// current dimensions, scan mode and bit order. A failed parse leaves the
// canvas and history untouched.
func (m *model) importFromClipboard() {
	raw, err := readClipboardText()
	if err != nil {
		m.errorMessage = "clipboard: " + err.Error()
		return
	}
	b := m.editor.Bitmap()
	parsed, err := ParseArray(cleanClipboardText(raw), b.Width(), b.Height(), m.scanMode, m.bitOrder)
	if err != nil {
		m.errorMessage = "import: " + err.Error()
		return
	}
	m.editor.Adopt(parsed)
	m.successMessage = "imported bitmap from clipboard"
}

func (m *model) runFileOp(input string) {
	if input == "" {
		m.errorMessage = "no filename given"
		return
	}
	switch m.fileOp {
	case FileOpSaveArray:
		if !strings.Contains(input, ".") {
			input += ".h"
		}
		path := m.config.GetSavePath(input)
		if err := m.exportArrayFile(path); err != nil {
			m.errorMessage = "save: " + err.Error()
			return
		}
		m.successMessage = "saved " + path

	case FileOpSavePNG:
		if !strings.HasSuffix(strings.ToLower(input), ".png") {
			input += ".png"
		}
		path := m.config.GetSavePath(input)
		if err := m.exportPNG(path, 4); err != nil {
			m.errorMessage = "save: " + err.Error()
			return
		}
		m.successMessage = "saved " + path

	case FileOpImportImage:
		b := m.editor.Bitmap()
		decoded, err := DecodeImageFile(input, b.Width(), b.Height(),
			m.config.ScalePolicy, m.config.Threshold, m.config.InvertImport)
		if err != nil {
			m.errorMessage = "import: " + err.Error()
			return
		}
		m.editor.Adopt(decoded)
		m.successMessage = "imported " + input
	}
}

func (m *model) canvasViewSize() (int, int) {
	w := m.width
	h := m.height - 1 // status line
	if w < 1 {
		w = 80
	}
	if h < 1 {
		h = 24
	}
	return w, h
}

var (
	styleStatus  = lipgloss.NewStyle().Reverse(true)
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleDim     = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	if m.help && m.mode != ModeStartup {
		return m.helpView()
	}
	if m.mode == ModeStartup {
		return m.startupView()
	}

	viewW, viewH := m.canvasViewSize()
	lines := m.renderCanvas(viewW, viewH)

	var result strings.Builder
	for _, line := range lines {
		result.WriteString(line)
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine(viewW))
	return result.String()
}

func (m model) statusLine(width int) string {
	if m.mode == ModeDimInput {
		return styleStatus.Render("new size (WIDTHxHEIGHT): " + m.textInput + "█")
	}
	if m.mode == ModeFileInput {
		label := "filename: "
		if m.fileOp == FileOpImportImage {
			label = "image file: "
		}
		return styleStatus.Render(label + m.textInput + "█")
	}
	if m.mode == ModeConfirm {
		var prompt string
		switch m.confirmAction {
		case ConfirmQuit:
			prompt = "quit? (y/n)"
		case ConfirmNewCanvas:
			prompt = "discard canvas and start over? (y/n)"
		case ConfirmClearCanvas:
			prompt = "clear the whole canvas? (y/n)"
		}
		return styleStatus.Render(prompt)
	}

	if m.errorMessage != "" {
		return styleError.Render(m.errorMessage)
	}
	if m.successMessage != "" {
		return styleSuccess.Render(m.successMessage)
	}

	b := m.editor.Bitmap()
	left := fmt.Sprintf(" %s | %dx%d | %s/%s | %d bytes | (%d,%d)",
		m.modeString(), b.Width(), b.Height(), m.scanMode, m.bitOrder,
		ByteCount(b.Width(), b.Height(), m.scanMode), m.cursorX, m.cursorY)
	right := "? help "
	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return styleStatus.Render(left + strings.Repeat(" ", pad) + right)
}

func (m model) modeString() string {
	switch m.mode {
	case ModeSelect:
		return "SELECT"
	case ModeFloat:
		return "FLOAT"
	default:
		switch m.editor.State() {
		case StateSelected:
			return "SELECTED"
		case StateFloating:
			return "FLOAT"
		}
		return "PAINT"
	}
}

func (m model) startupView() string {
	lines := []string{
		"",
		"  dotpad - monochrome bitmap editor",
		"  =================================",
		"",
		fmt.Sprintf("  canvas: %dx%d, %s scan, %s first",
			m.config.DefaultWidth, m.config.DefaultHeight, m.config.ScanMode, m.config.BitOrder),
		"",
		"  n / enter   start painting",
		"  q           quit",
		"",
		styleDim.Render("  settings live in ~/.dotpadrc"),
	}
	return strings.Join(lines, "\n")
}

func helpLines() []string {
	return []string{
		"dotpad help",
		"===========",
		"",
		"Navigation:",
		"  h/←  j/↓  k/↑  l/→   Move cursor",
		"  Shift+h/j/k/l        Move 4x faster",
		"",
		"Painting:",
		"  space/enter          Toggle pixel under cursor",
		"  I                    Invert the whole canvas",
		"  D                    Clear the whole canvas",
		"  u / U                Undo / redo",
		"",
		"Selection:",
		"  v                    Start selection, v/enter to finish",
		"  y                    Copy selection to internal clipboard",
		"  x                    Cut selection (clears it in place)",
		"  f                    Lift selection into a floating layer",
		"  p                    Paste clipboard as a floating layer",
		"  esc                  Drop selection / commit floating layer",
		"",
		"Floating layer:",
		"  h/j/k/l              Drag the layer",
		"  enter/space          Commit layer into the canvas",
		"  esc or u             Discard layer, restore background",
		"",
		"Codec:",
		"  M                    Toggle scan mode (horizontal/vertical pages)",
		"  B                    Toggle bit order (MSB/LSB first)",
		"  e                    Copy packed array text to system clipboard",
		"  i                    Import array text from system clipboard",
		"",
		"Files:",
		"  E                    Save array as C header",
		"  P                    Save PNG preview",
		"  o                    Import an image file (PNG/JPG/GIF/BMP)",
		"",
		"General:",
		"  R                    Resize canvas (clears it)",
		"  n                    New canvas at default size",
		"  ?                    Toggle this help",
		"  q / Ctrl+C           Quit",
	}
}

func (m model) helpView() string {
	lines := helpLines()
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	start := m.helpScroll
	if start > len(lines) {
		start = len(lines)
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], "\n")
}
