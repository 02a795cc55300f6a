package main

// EngineState is the selection/clipboard state machine position.
type EngineState int

const (
	StateIdle EngineState = iota
	StateSelecting
	StateSelected
	StateFloating
)

// FloatingLayer is an uncommitted, draggable pixel patch. While one exists
// the background bitmap is provisional: the editor holds a snapshot taken
// at creation time so Discard can restore it verbatim.
type FloatingLayer struct {
	X, Y int
	data *Bitmap
}

func (f *FloatingLayer) Get(x, y int) bool {
	return f.data.Get(x, y)
}

// Editor owns the bitmap, its history, and the selection/clipboard/floating
// lifecycle. All operations are synchronous and run to completion; calling
// one in the wrong state is a no-op, never a corruption.
type Editor struct {
	bitmap  *Bitmap
	history *History

	state        EngineState
	anchorX      int
	anchorY      int
	cursorX      int
	cursorY      int
	selection    Rect
	hasSelection bool

	clipboard *Bitmap
	float     *FloatingLayer
	snapshot  *Bitmap // background as of floating-layer creation
}

func NewEditor(width, height int) *Editor {
	b := NewBitmap(width, height)
	return &Editor{
		bitmap:  b,
		history: NewHistory(b),
		state:   StateIdle,
	}
}

func (e *Editor) Bitmap() *Bitmap   { return e.bitmap }
func (e *Editor) History() *History { return e.history }
func (e *Editor) State() EngineState {
	return e.state
}

// Selection returns the active rectangle and whether one exists. While a
// floating layer is live the rectangle is suppressed from rendering but the
// value is still reported here.
func (e *Editor) Selection() (Rect, bool) {
	return e.selection, e.hasSelection
}

// PendingSelection is the drag rectangle while in StateSelecting.
func (e *Editor) PendingSelection() Rect {
	return NormalizeRect(e.anchorX, e.anchorY, e.cursorX, e.cursorY)
}

func (e *Editor) Float() *FloatingLayer {
	return e.float
}

func (e *Editor) HasClipboard() bool {
	return e.clipboard != nil
}

// SetPixel paints a single cell on the background. Undoable strokes end
// with an explicit CommitStroke.
func (e *Editor) SetPixel(x, y int, on bool) {
	e.bitmap.Set(x, y, on)
}

// CommitStroke pushes the current bitmap to history after a completed
// paint gesture.
func (e *Editor) CommitStroke() {
	e.history.Push(e.bitmap)
}

// ClearAll zeroes the bitmap and records it. No-op while floating.
func (e *Editor) ClearAll() {
	if e.state == StateFloating {
		return
	}
	e.bitmap.Clear()
	e.history.Push(e.bitmap)
}

// InvertAll flips every cell and records it. No-op while floating.
func (e *Editor) InvertAll() {
	if e.state == StateFloating {
		return
	}
	e.bitmap.Invert()
	e.history.Push(e.bitmap)
}

// Resize replaces the canvas with a fresh zero-filled bitmap and reseeds
// history. Old content is not preserved; re-import drives any rescale.
func (e *Editor) Resize(width, height int) {
	e.float = nil
	e.snapshot = nil
	e.hasSelection = false
	e.state = StateIdle
	e.bitmap = NewBitmap(width, height)
	e.history.Reset(e.bitmap)
}

// Adopt replaces the canvas with an imported bitmap (codec or image
// collaborator output) and reseeds history. The editor deep-copies; the
// caller keeps ownership of b.
func (e *Editor) Adopt(b *Bitmap) {
	e.float = nil
	e.snapshot = nil
	e.hasSelection = false
	e.state = StateIdle
	e.bitmap = b.Clone()
	e.history.Reset(e.bitmap)
}

// BeginSelection starts a selection drag at (x, y). An existing floating
// layer is force-committed first.
func (e *Editor) BeginSelection(x, y int) {
	if e.state == StateFloating {
		e.CommitFloat()
	}
	e.anchorX, e.anchorY = x, y
	e.cursorX, e.cursorY = x, y
	e.hasSelection = false
	e.state = StateSelecting
}

func (e *Editor) UpdateSelection(x, y int) {
	if e.state != StateSelecting {
		return
	}
	e.cursorX, e.cursorY = x, y
}

// EndSelection finishes the drag. The rectangle is clamped to the bitmap;
// a zero-area result collapses back to no selection.
func (e *Editor) EndSelection() {
	if e.state != StateSelecting {
		return
	}
	r := e.PendingSelection().Clamp(e.bitmap.Width(), e.bitmap.Height())
	if r.Empty() {
		e.hasSelection = false
		e.state = StateIdle
		return
	}
	e.selection = r
	e.hasSelection = true
	e.state = StateSelected
}

// Copy duplicates the selected cells into the clipboard. Requires
// StateSelected; the single clipboard slot is overwritten.
func (e *Editor) Copy() {
	if e.state != StateSelected || !e.hasSelection {
		return
	}
	if data := e.bitmap.ExtractRect(e.selection); data != nil {
		e.clipboard = data
	}
}

// Cut copies the selection, zeroes it in place, and records the result.
// Unlike Lift the removed cells are not kept live or movable.
func (e *Editor) Cut() {
	if e.state != StateSelected || !e.hasSelection {
		return
	}
	e.Copy()
	e.bitmap.ZeroRect(e.selection)
	e.history.Push(e.bitmap)
}

// Lift turns the selection into a floating layer with cut semantics: the
// selected cells move into the layer and are zeroed in the background. The
// pre-lift background is snapshotted so Discard can restore it exactly.
func (e *Editor) Lift() {
	if e.state != StateSelected || !e.hasSelection {
		return
	}
	data := e.bitmap.ExtractRect(e.selection)
	if data == nil {
		return
	}
	e.snapshot = e.bitmap.Clone()
	e.bitmap.ZeroRect(e.selection)
	e.float = &FloatingLayer{X: e.selection.X, Y: e.selection.Y, data: data}
	e.state = StateFloating
}

// Paste creates a floating layer from the clipboard, force-committing any
// existing layer first. The layer lands at the selection origin, or (0,0)
// with no selection. No-op with an empty clipboard.
func (e *Editor) Paste() {
	if e.clipboard == nil {
		return
	}
	if e.state == StateFloating {
		e.CommitFloat()
	}
	x, y := 0, 0
	if e.hasSelection {
		x, y = e.selection.X, e.selection.Y
	}
	e.snapshot = e.bitmap.Clone()
	e.float = &FloatingLayer{X: x, Y: y, data: e.clipboard.Clone()}
	e.state = StateFloating
}

// MoveFloat repositions the floating layer. Background and history are
// untouched until commit.
func (e *Editor) MoveFloat(dx, dy int) {
	if e.state != StateFloating {
		return
	}
	e.float.X += dx
	e.float.Y += dy
}

// CommitFloat merges the floating layer into the background with opaque
// overwrite, dropping cells outside the bitmap, then records the result.
// The layer, its snapshot, and the selection are all cleared.
func (e *Editor) CommitFloat() {
	if e.state != StateFloating {
		return
	}
	e.bitmap.BlitOpaque(e.float.data, e.float.X, e.float.Y)
	e.history.Push(e.bitmap)
	e.float = nil
	e.snapshot = nil
	e.hasSelection = false
	e.state = StateIdle
}

// DiscardFloat throws the floating layer away and restores the background
// snapshot verbatim, undoing any implicit cut. History is untouched.
func (e *Editor) DiscardFloat() {
	if e.state != StateFloating {
		return
	}
	e.bitmap = e.snapshot
	e.float = nil
	e.snapshot = nil
	if e.hasSelection {
		e.state = StateSelected
	} else {
		e.state = StateIdle
	}
}

// Deselect commits a floating layer if one exists, otherwise drops the
// selection rectangle.
func (e *Editor) Deselect() {
	if e.state == StateFloating {
		e.CommitFloat()
		return
	}
	e.hasSelection = false
	e.state = StateIdle
}

// Undo steps history back. While floating it behaves as Discard instead of
// popping history.
func (e *Editor) Undo() {
	if e.state == StateFloating {
		e.DiscardFloat()
		return
	}
	if b := e.history.Undo(); b != nil {
		e.bitmap = b
		e.hasSelection = false
		e.state = StateIdle
	}
}

// Redo steps history forward. Disallowed while floating.
func (e *Editor) Redo() {
	if e.state == StateFloating {
		return
	}
	if b := e.history.Redo(); b != nil {
		e.bitmap = b
		e.hasSelection = false
		e.state = StateIdle
	}
}

// Composite returns background plus floating layer merged, for export and
// rendering. Always an independent copy.
func (e *Editor) Composite() *Bitmap {
	out := e.bitmap.Clone()
	if e.float != nil {
		out.BlitOpaque(e.float.data, e.float.X, e.float.Y)
	}
	return out
}
