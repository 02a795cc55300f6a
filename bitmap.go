package main

// Bitmap is the canonical in-memory pixel grid. Cells are stored row-major:
// index = y*width + x. A true cell is a lit pixel.
type Bitmap struct {
	width  int
	height int
	cells  []bool
}

func NewBitmap(width, height int) *Bitmap {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Bitmap{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

func (b *Bitmap) Width() int {
	return b.width
}

func (b *Bitmap) Height() int {
	return b.height
}

func (b *Bitmap) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns false for out-of-bounds coordinates.
func (b *Bitmap) Get(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	return b.cells[y*b.width+x]
}

// Set ignores out-of-bounds coordinates.
func (b *Bitmap) Set(x, y int, on bool) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = on
}

func (b *Bitmap) Clear() {
	for i := range b.cells {
		b.cells[i] = false
	}
}

func (b *Bitmap) Invert() {
	for i := range b.cells {
		b.cells[i] = !b.cells[i]
	}
}

// Clone returns an independent deep copy. Snapshots handed across component
// boundaries (history, clipboard, floating layers) always go through Clone so
// later edits never reach back into stored state.
func (b *Bitmap) Clone() *Bitmap {
	c := &Bitmap{
		width:  b.width,
		height: b.height,
		cells:  make([]bool, len(b.cells)),
	}
	copy(c.cells, b.cells)
	return c
}

func (b *Bitmap) Equal(other *Bitmap) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// ZeroRect clears every cell inside the rectangle, clipped to the bitmap.
func (b *Bitmap) ZeroRect(r Rect) {
	r = r.Clamp(b.width, b.height)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			b.cells[y*b.width+x] = false
		}
	}
}

// ExtractRect copies the rectangle's cells into a new bitmap. The rectangle
// is clipped to the source first; a degenerate rectangle yields nil.
func (b *Bitmap) ExtractRect(r Rect) *Bitmap {
	r = r.Clamp(b.width, b.height)
	if r.W == 0 || r.H == 0 {
		return nil
	}
	out := NewBitmap(r.W, r.H)
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			out.cells[y*r.W+x] = b.cells[(r.Y+y)*b.width+(r.X+x)]
		}
	}
	return out
}

// BlitOpaque overwrites cells starting at (dx, dy) with src's cells.
// Source cells that land outside the destination are dropped.
func (b *Bitmap) BlitOpaque(src *Bitmap, dx, dy int) {
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			tx, ty := dx+x, dy+y
			if !b.InBounds(tx, ty) {
				continue
			}
			b.cells[ty*b.width+tx] = src.cells[y*src.width+x]
		}
	}
}

// Rect is an integer rectangle on a bitmap. W and H are never negative
// once a rect has passed through Clamp or Normalize.
type Rect struct {
	X, Y, W, H int
}

// NormalizeRect builds a rect from two corner points in any order,
// inclusive of both.
func NormalizeRect(x0, y0, x1, y1 int) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
}

// Clamp clips the rect to [0,w) x [0,h). The result may be empty.
func (r Rect) Clamp(w, h int) Rect {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > w {
		x1 = w
	}
	if y1 > h {
		y1 = h
	}
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
