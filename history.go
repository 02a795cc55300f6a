package main

// History is a bounded, linear undo/redo stack of bitmap snapshots.
// Entries beyond the current index are the redo branch; pushing a new
// snapshot discards it. When the stack outgrows historyCap the oldest
// entry is evicted.
type History struct {
	snapshots []*Bitmap
	index     int
}

// NewHistory seeds the stack with a deep copy of the initial state.
func NewHistory(initial *Bitmap) *History {
	return &History{
		snapshots: []*Bitmap{initial.Clone()},
		index:     0,
	}
}

// Push records a completed edit. The snapshot is deep-copied, any redo
// entries are dropped, and the oldest entry is evicted past historyCap.
func (h *History) Push(snapshot *Bitmap) {
	h.snapshots = h.snapshots[:h.index+1]
	h.snapshots = append(h.snapshots, snapshot.Clone())
	if len(h.snapshots) > historyCap {
		h.snapshots = h.snapshots[len(h.snapshots)-historyCap:]
	}
	h.index = len(h.snapshots) - 1
}

// Undo steps back one snapshot and returns a copy of it, or nil when
// already at the oldest entry.
func (h *History) Undo() *Bitmap {
	if h.index == 0 {
		return nil
	}
	h.index--
	return h.snapshots[h.index].Clone()
}

// Redo steps forward one snapshot and returns a copy of it, or nil when
// there is nothing to redo.
func (h *History) Redo() *Bitmap {
	if h.index >= len(h.snapshots)-1 {
		return nil
	}
	h.index++
	return h.snapshots[h.index].Clone()
}

func (h *History) CanUndo() bool {
	return h.index > 0
}

func (h *History) CanRedo() bool {
	return h.index < len(h.snapshots)-1
}

func (h *History) Len() int {
	return len(h.snapshots)
}

// Reset discards everything and starts a fresh single-entry history.
// Used on dimension change and on import, where prior undo context no
// longer refers to the current canvas.
func (h *History) Reset(snapshot *Bitmap) {
	h.snapshots = []*Bitmap{snapshot.Clone()}
	h.index = 0
}
