package main

import (
	"errors"
	"testing"
)

// bitmapFromRows builds a bitmap from strings where '#' is a lit pixel.
func bitmapFromRows(t *testing.T, rows []string) *Bitmap {
	t.Helper()
	b := NewBitmap(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			t.Fatalf("ragged row %d", y)
		}
		for x, c := range row {
			b.Set(x, y, c == '#')
		}
	}
	return b
}

func TestByteCount(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		mode ScanMode
		want int
	}{
		{"8x8 horizontal", 8, 8, ScanHorizontal, 8},
		{"8x8 vertical", 8, 8, ScanVertical, 8},
		{"128x64 horizontal", 128, 64, ScanHorizontal, 1024},
		{"128x64 vertical", 128, 64, ScanVertical, 1024},
		{"10x6 horizontal rounds up per row", 10, 6, ScanHorizontal, 12},
		{"10x6 vertical rounds up per page", 10, 6, ScanVertical, 10},
		{"1x1 horizontal", 1, 1, ScanHorizontal, 1},
		{"1x1 vertical", 1, 1, ScanVertical, 1},
		{"13x13 horizontal", 13, 13, ScanHorizontal, 26},
		{"13x13 vertical", 13, 13, ScanVertical, 26},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ByteCount(tt.w, tt.h, tt.mode); got != tt.want {
				t.Errorf("ByteCount(%d, %d, %s) = %d, want %d", tt.w, tt.h, tt.mode, got, tt.want)
			}
		})
	}
}

func TestPackSinglePixel(t *testing.T) {
	b := NewBitmap(8, 8)
	b.Set(0, 0, true)

	got := Pack(b, ScanHorizontal, MSBFirst)
	if got[0] != 0x80 {
		t.Errorf("horizontal msb: first byte = %#02x, want 0x80", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i] != 0 {
			t.Errorf("horizontal msb: byte %d = %#02x, want 0", i, got[i])
		}
	}

	got = Pack(b, ScanHorizontal, LSBFirst)
	if got[0] != 0x01 {
		t.Errorf("horizontal lsb: first byte = %#02x, want 0x01", got[0])
	}

	got = Pack(b, ScanVertical, MSBFirst)
	if len(got) != 8 {
		t.Fatalf("vertical: got %d bytes, want 8", len(got))
	}
	if got[0] != 0x80 {
		t.Errorf("vertical msb: column 0 = %#02x, want 0x80", got[0])
	}
	for i := 1; i < 8; i++ {
		if got[i] != 0 {
			t.Errorf("vertical msb: column %d = %#02x, want 0", i, got[i])
		}
	}

	got = Pack(b, ScanVertical, LSBFirst)
	if got[0] != 0x01 {
		t.Errorf("vertical lsb: column 0 = %#02x, want 0x01", got[0])
	}
}

func TestPackHorizontalRowOrder(t *testing.T) {
	// Second row fully lit on a 16x2 canvas: bytes 2 and 3.
	b := bitmapFromRows(t, []string{
		"................",
		"################",
	})
	got := Pack(b, ScanHorizontal, MSBFirst)
	want := []byte{0x00, 0x00, 0xff, 0xff}
	if len(got) != len(want) {
		t.Fatalf("got %d bytes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d = %#02x, want %#02x", i, got[i], want[i])
		}
	}
}

func TestPackVerticalPageOrder(t *testing.T) {
	// 4x16: two pages of four columns. Pixel (1,9) lives in page 1,
	// column 1, bit 1 of the visit order.
	b := NewBitmap(4, 16)
	b.Set(1, 9, true)

	got := Pack(b, ScanVertical, MSBFirst)
	if len(got) != 8 {
		t.Fatalf("got %d bytes, want 8", len(got))
	}
	for i, v := range got {
		want := byte(0)
		if i == 5 { // page 1 starts at byte 4, column 1 is byte 5
			want = 0x40 // y=9 is visit index 1, msb-first bit 6
		}
		if v != want {
			t.Errorf("byte %d = %#02x, want %#02x", i, v, want)
		}
	}
}

func TestPackPadsPartialGroupsWithZero(t *testing.T) {
	// All pixels lit on a 10x6 canvas: the last horizontal group of each
	// row has only 2 real pixels, so its padding bits stay zero.
	b := NewBitmap(10, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			b.Set(x, y, true)
		}
	}

	got := Pack(b, ScanHorizontal, MSBFirst)
	for i, v := range got {
		want := byte(0xff)
		if i%2 == 1 { // second group of each row: pixels 8,9 only
			want = 0xc0
		}
		if v != want {
			t.Errorf("byte %d = %#02x, want %#02x", i, v, want)
		}
	}

	// Vertically the last page covers rows 0..5 of an 8-row page.
	got = Pack(b, ScanVertical, MSBFirst)
	for i, v := range got {
		if v != 0xfc {
			t.Errorf("byte %d = %#02x, want 0xfc", i, v)
		}
	}
}

func TestRoundTripAllModes(t *testing.T) {
	dims := []struct{ w, h int }{
		{8, 8}, {1, 1}, {10, 6}, {13, 13}, {128, 64}, {7, 9},
	}
	modes := []ScanMode{ScanHorizontal, ScanVertical}
	orders := []BitOrder{MSBFirst, LSBFirst}

	for _, d := range dims {
		b := NewBitmap(d.w, d.h)
		for y := 0; y < d.h; y++ {
			for x := 0; x < d.w; x++ {
				b.Set(x, y, (x*31+y*17)%3 == 0)
			}
		}
		for _, mode := range modes {
			for _, order := range orders {
				text := FormatBytes(Pack(b, mode, order), 8)
				got, err := ParseArray(text, d.w, d.h, mode, order)
				if err != nil {
					t.Fatalf("%dx%d %s/%s: parse failed: %v", d.w, d.h, mode, order, err)
				}
				if !got.Equal(b) {
					t.Errorf("%dx%d %s/%s: round trip is not the identity", d.w, d.h, mode, order)
				}
			}
		}
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []byte
		wantErr error
	}{
		{
			name: "c array with noise",
			text: "const unsigned char img[] PROGMEM = {\n  0x80, 0x01, 255, 0,\n};",
			want: []byte{0x80, 0x01, 0xff, 0x00},
		},
		{
			name: "bare decimal list",
			text: "1 2 3 4",
			want: []byte{1, 2, 3, 4},
		},
		{
			name: "uppercase hex prefix",
			text: "0XAB 0xcd",
			want: []byte{0xab, 0xcd},
		},
		{
			name:    "empty input",
			text:    "",
			wantErr: ErrNoTokens,
		},
		{
			name:    "only identifiers",
			text:    "static const uint8_t[] = {};",
			wantErr: ErrNoTokens,
		},
		{
			name:    "hex out of range",
			text:    "0x00, 0x100",
			wantErr: ErrTokenRange,
		},
		{
			name:    "decimal out of range",
			text:    "12, 256",
			wantErr: ErrTokenRange,
		},
		{
			name:    "malformed hex",
			text:    "0xZZ",
			wantErr: ErrBadToken,
		},
		{
			name:    "digit-leading junk",
			text:    "0x01, 12ab",
			wantErr: ErrBadToken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBytes(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d bytes, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("byte %d = %#02x, want %#02x", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseArrayRejectsWrongByteCount(t *testing.T) {
	// 8x8 horizontal expects 8 bytes; 5 must be rejected, not padded.
	_, err := ParseArray("0x01, 0x02, 0x03, 0x04, 0x05", 8, 8, ScanHorizontal, MSBFirst)
	if !errors.Is(err, ErrByteCount) {
		t.Fatalf("err = %v, want ErrByteCount", err)
	}

	// Too many bytes must be rejected too, never truncated.
	_, err = ParseArray("1 2 3 4 5 6 7 8 9", 8, 8, ScanHorizontal, MSBFirst)
	if !errors.Is(err, ErrByteCount) {
		t.Fatalf("err = %v, want ErrByteCount", err)
	}

	// The expected count depends on the scan mode: 8 bytes fit a 8x8
	// canvas either way, but 10x6 wants 12 horizontal vs 10 vertical.
	ten := "0 0 0 0 0 0 0 0 0 0"
	if _, err := ParseArray(ten, 10, 6, ScanVertical, MSBFirst); err != nil {
		t.Errorf("vertical: unexpected error: %v", err)
	}
	if _, err := ParseArray(ten, 10, 6, ScanHorizontal, MSBFirst); !errors.Is(err, ErrByteCount) {
		t.Errorf("horizontal: err = %v, want ErrByteCount", err)
	}
}

func TestUnpackRejectsBadDimensions(t *testing.T) {
	for _, d := range []struct{ w, h int }{{0, 8}, {8, 0}, {-1, 8}, {0, 0}} {
		if _, err := Unpack(nil, d.w, d.h, ScanHorizontal, MSBFirst); !errors.Is(err, ErrBadDimensions) {
			t.Errorf("Unpack(%d, %d): err = %v, want ErrBadDimensions", d.w, d.h, err)
		}
	}
}

func TestFormatBytesWrapIsCosmetic(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6}
	for _, perLine := range []int{1, 3, 16, 0} {
		text := FormatBytes(data, perLine)
		got, err := ParseBytes(text)
		if err != nil {
			t.Fatalf("perLine=%d: %v", perLine, err)
		}
		if len(got) != len(data) {
			t.Fatalf("perLine=%d: got %d bytes, want %d", perLine, len(got), len(data))
		}
		for i := range data {
			if got[i] != data[i] {
				t.Errorf("perLine=%d: byte %d = %#02x, want %#02x", perLine, i, got[i], data[i])
			}
		}
	}

	if got := FormatBytes([]byte{0xab, 0x05}, 16); got != "0xab, 0x05" {
		t.Errorf("FormatBytes = %q", got)
	}
}
