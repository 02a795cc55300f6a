package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// exportArrayText wraps the packed bytes in a C array declaration, the form
// firmware projects paste straight into a source file.
func exportArrayText(b *Bitmap, mode ScanMode, order BitOrder, perLine int, name string) string {
	data := Pack(b, mode, order)
	body := FormatBytes(data, perLine)

	var sb strings.Builder
	fmt.Fprintf(&sb, "// %dx%d, %s scan, %s first (%d bytes)\n",
		b.Width(), b.Height(), mode, order, len(data))
	fmt.Fprintf(&sb, "const unsigned char %s[%d] = {\n", name, len(data))
	for _, line := range strings.Split(body, "\n") {
		sb.WriteString("    ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("};\n")
	return sb.String()
}

func (m *model) exportArrayFile(filename string) error {
	text := exportArrayText(m.editor.Composite(), m.scanMode, m.bitOrder, m.config.HexPerLine, arrayIdent(filename))
	return os.WriteFile(filename, []byte(text), 0644)
}

// arrayIdent derives a C identifier from the output filename.
func arrayIdent(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	var sb strings.Builder
	for i, r := range base {
		ok := r == '_' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(i > 0 && r >= '0' && r <= '9')
		if ok {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "bitmap"
	}
	return sb.String()
}

// exportPNG renders the merged bitmap at pixelSize screen pixels per cell,
// lit cells white on black like the target OLED, with a dimension caption
// underneath.
func (m *model) exportPNG(filename string, pixelSize int) error {
	if pixelSize < 1 {
		pixelSize = 4
	}
	b := m.editor.Composite()

	captionHeight := 18
	imageWidth := b.Width() * pixelSize
	imageHeight := b.Height()*pixelSize + captionHeight

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.Black)
	dc.Clear()

	dc.SetColor(color.White)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Get(x, y) {
				dc.DrawRectangle(float64(x*pixelSize), float64(y*pixelSize),
					float64(pixelSize), float64(pixelSize))
			}
		}
	}
	dc.Fill()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	caption := fmt.Sprintf("%dx%d %s/%s", b.Width(), b.Height(), m.scanMode, m.bitOrder)
	dc.SetColor(color.Gray{Y: 180})
	dc.DrawString(caption, 4, float64(imageHeight-5))

	return dc.SavePNG(filename)
}
