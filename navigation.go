package main

func (m *model) handleNavigation(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 4
	default:
		return 1
	}
}

// ensureCursorInBounds clamps the cursor to the bitmap and pans the
// viewport so the cursor stays visible.
func (m *model) ensureCursorInBounds() {
	b := m.editor.Bitmap()
	m.cursorX = clampInt(m.cursorX, 0, b.Width()-1)
	m.cursorY = clampInt(m.cursorY, 0, b.Height()-1)

	viewW, viewH := m.canvasViewSize()
	if viewW < 1 || viewH < 1 {
		return
	}
	if m.cursorX < m.panX {
		m.panX = m.cursorX
	}
	if m.cursorX >= m.panX+viewW {
		m.panX = m.cursorX - viewW + 1
	}
	if m.cursorY < m.panY {
		m.panY = m.cursorY
	}
	if m.cursorY >= m.panY+viewH {
		m.panY = m.cursorY - viewH + 1
	}
	if m.panX < 0 {
		m.panX = 0
	}
	if m.panY < 0 {
		m.panY = 0
	}
}
