package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// ScalePolicy controls how a decoded image is mapped onto the target
// canvas dimensions.
type ScalePolicy int

const (
	// ScaleFit scales preserving aspect ratio so the image fits inside the
	// canvas, centered.
	ScaleFit ScalePolicy = iota
	// ScaleStretch scales to exactly the canvas dimensions.
	ScaleStretch
	// ScaleCenter does no scaling; the image is centered and cropped or
	// padded as needed.
	ScaleCenter
)

var ErrBadScalePolicy = errors.New("unknown scale policy")

func ParseScalePolicy(s string) (ScalePolicy, error) {
	switch s {
	case "fit":
		return ScaleFit, nil
	case "stretch":
		return ScaleStretch, nil
	case "center":
		return ScaleCenter, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadScalePolicy, s)
}

// DecodeImage turns an arbitrary raster image into a monochrome bitmap of
// the requested dimensions. Pixels whose luminance is at or above threshold
// come out lit; invert flips that. Any failure leaves the caller's state
// untouched, it only ever returns a fresh bitmap.
func DecodeImage(r io.Reader, width, height int, policy ScalePolicy, threshold uint8, invert bool) (*Bitmap, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return rasterize(img, width, height, policy, threshold, invert), nil
}

// DecodeImageFile is DecodeImage over a file path, trying BMP when the
// stdlib decoders do not recognize the format.
func DecodeImageFile(path string, width, height int, policy ScalePolicy, threshold uint8, invert bool) (*Bitmap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		img, err = bmp.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decode %s: unsupported image format", path)
		}
	}
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}
	return rasterize(img, width, height, policy, threshold, invert), nil
}

func rasterize(img image.Image, width, height int, policy ScalePolicy, threshold uint8, invert bool) *Bitmap {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	src := img.Bounds()

	var target image.Rectangle
	switch policy {
	case ScaleStretch:
		target = dst.Bounds()
	case ScaleCenter:
		ox := (width - src.Dx()) / 2
		oy := (height - src.Dy()) / 2
		target = image.Rect(ox, oy, ox+src.Dx(), oy+src.Dy())
	default: // ScaleFit
		sw, sh := src.Dx(), src.Dy()
		tw, th := width, sh*width/sw
		if th > height {
			tw, th = sw*height/sh, height
		}
		if tw < 1 {
			tw = 1
		}
		if th < 1 {
			th = 1
		}
		ox := (width - tw) / 2
		oy := (height - th) / 2
		target = image.Rect(ox, oy, ox+tw, oy+th)
	}
	xdraw.ApproxBiLinear.Scale(dst, target, img, src, xdraw.Src, nil)

	b := NewBitmap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			lum := color.GrayModel.Convert(dst.At(x, y)).(color.Gray).Y
			on := lum >= threshold
			if invert {
				on = !on
			}
			b.Set(x, y, on)
		}
	}
	return b
}
