package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ScanMode is the traversal order used to group pixels into bytes.
type ScanMode int

const (
	// ScanHorizontal packs 8 horizontally consecutive pixels per byte,
	// emitted row by row.
	ScanHorizontal ScanMode = iota
	// ScanVertical packs 8 vertically consecutive pixels per byte, grouped
	// into 8-row pages and emitted column by column within each page. This
	// is the native memory layout of SSD1306-style OLED controllers.
	ScanVertical
)

func (m ScanMode) String() string {
	if m == ScanVertical {
		return "vertical"
	}
	return "horizontal"
}

// BitOrder is the bit-within-byte assignment direction.
type BitOrder int

const (
	// MSBFirst puts the first pixel of a group in bit 7.
	MSBFirst BitOrder = iota
	// LSBFirst puts the first pixel of a group in bit 0.
	LSBFirst
)

func (o BitOrder) String() string {
	if o == LSBFirst {
		return "lsb"
	}
	return "msb"
}

var (
	ErrBadDimensions = errors.New("width and height must be positive")
	ErrNoTokens      = errors.New("no numeric values found")
	ErrTokenRange    = errors.New("value does not fit in a byte")
	ErrBadToken      = errors.New("malformed numeric literal")
	ErrByteCount     = errors.New("byte count does not match dimensions")
)

// ByteCount returns the packed size for the given dimensions and scan mode.
func ByteCount(width, height int, mode ScanMode) int {
	if mode == ScanVertical {
		return width * ((height + 7) / 8)
	}
	return ((width + 7) / 8) * height
}

// pixelAt maps (byte index, bit-visit index) to the pixel it samples.
// Returns ok=false for padding positions past the bitmap edge; those bits
// are zero when packing and skipped when unpacking.
func pixelAt(i, k, width, height int, mode ScanMode) (x, y int, ok bool) {
	if mode == ScanVertical {
		x = i % width
		y = (i/width)*8 + k
		return x, y, y < height
	}
	groups := (width + 7) / 8
	x = (i%groups)*8 + k
	y = i / groups
	return x, y, x < width
}

// bitShift maps the k-th visited pixel of a group to its bit position.
// Pack and Unpack share it, so pack->unpack is the identity by construction.
func bitShift(order BitOrder, k int) uint {
	if order == LSBFirst {
		return uint(k)
	}
	return uint(7 - k)
}

// Pack converts a bitmap to its packed byte representation.
func Pack(b *Bitmap, mode ScanMode, order BitOrder) []byte {
	out := make([]byte, ByteCount(b.Width(), b.Height(), mode))
	for i := range out {
		var v byte
		for k := 0; k < 8; k++ {
			x, y, ok := pixelAt(i, k, b.Width(), b.Height(), mode)
			if ok && b.Get(x, y) {
				v |= 1 << bitShift(order, k)
			}
		}
		out[i] = v
	}
	return out
}

// Unpack scatters packed bytes back into a fresh bitmap. The caller must
// supply the same configuration used to pack; only the byte count is
// verifiable here.
func Unpack(data []byte, width, height int, mode ScanMode, order BitOrder) (*Bitmap, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}
	want := ByteCount(width, height, mode)
	if len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d %s",
			ErrByteCount, len(data), want, width, height, mode)
	}
	b := NewBitmap(width, height)
	for i, v := range data {
		for k := 0; k < 8; k++ {
			x, y, ok := pixelAt(i, k, width, height, mode)
			if !ok {
				continue
			}
			if v&(1<<bitShift(order, k)) != 0 {
				b.Set(x, y, true)
			}
		}
	}
	return b, nil
}

// FormatBytes renders bytes as comma-separated 0xNN literals wrapped to
// perLine values per row. The wrapping is cosmetic only; ParseBytes ignores
// all layout.
func FormatBytes(data []byte, perLine int) string {
	if perLine < 1 {
		perLine = hexWrapDefault
	}
	var sb strings.Builder
	for i, v := range data {
		fmt.Fprintf(&sb, "0x%02x", v)
		if i != len(data)-1 {
			sb.WriteString(",")
			if (i+1)%perLine == 0 {
				sb.WriteString("\n")
			} else {
				sb.WriteString(" ")
			}
		}
	}
	return sb.String()
}

// ParseBytes extracts every numeric literal from free-form array text.
// Identifiers, braces, brackets, commas and comments are skipped as noise.
// A run starting with a digit must parse as a hex (0x) or decimal literal
// no larger than 0xff, otherwise the whole parse fails.
func ParseBytes(text string) ([]byte, error) {
	var out []byte
	n := len(text)
	for i := 0; i < n; {
		c := text[i]
		if !isWordByte(c) {
			i++
			continue
		}
		j := i
		for j < n && isWordByte(text[j]) {
			j++
		}
		tok := text[i:j]
		i = j
		if tok[0] < '0' || tok[0] > '9' {
			// identifier noise such as uint8_t or PROGMEM
			continue
		}
		var (
			v   uint64
			err error
		)
		if strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X") {
			v, err = strconv.ParseUint(tok[2:], 16, 32)
		} else {
			v, err = strconv.ParseUint(tok, 10, 32)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, tok)
		}
		if v > 0xff {
			return nil, fmt.Errorf("%w: %q", ErrTokenRange, tok)
		}
		out = append(out, byte(v))
	}
	if len(out) == 0 {
		return nil, ErrNoTokens
	}
	return out, nil
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// ParseArray is the full import path: free-form text to bitmap. A byte count
// that does not match the dimensions is rejected, never truncated or padded.
func ParseArray(text string, width, height int, mode ScanMode, order BitOrder) (*Bitmap, error) {
	data, err := ParseBytes(text)
	if err != nil {
		return nil, err
	}
	return Unpack(data, width, height, mode, order)
}
