package qrcode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// Canvas is a raster drawing surface. Pixels start light.
type Canvas interface {
	// Fill paints the rectangle dark. It is clipped to the canvas.
	Fill(x, y, width, height int)
	// Encode returns the encoded image and its MIME type.
	Encode() ([]byte, string, error)
}

// Platform creates raster surfaces for the host environment.
type Platform interface {
	NewCanvas(width, height int) (Canvas, error)
}

// PNGPlatform draws into an in-memory two-colour palette image encoded as
// PNG. Zero colours default to black on white.
type PNGPlatform struct {
	Foreground color.Color
	Background color.Color
}

// MaxCanvasPixels is the largest canvas area PNGPlatform allocates.
const MaxCanvasPixels = 4096 * 4096

func (p PNGPlatform) NewCanvas(width, height int) (Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas size %dx%d", ErrInvalidOptions, width, height)
	}
	if width > MaxCanvasPixels/height {
		return nil, fmt.Errorf("%w: canvas size %dx%d exceeds %d pixels", ErrInvalidOptions, width, height, MaxCanvasPixels)
	}
	fg, bg := p.Foreground, p.Background
	if fg == nil {
		fg = color.Black
	}
	if bg == nil {
		bg = color.White
	}
	img := image.NewPaletted(image.Rect(0, 0, width, height), color.Palette{bg, fg})
	return &pngCanvas{img: img}, nil
}

type pngCanvas struct {
	img *image.Paletted
}

func (c *pngCanvas) Fill(x, y, width, height int) {
	r := image.Rect(x, y, x+width, y+height).Intersect(c.img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			c.img.SetColorIndex(px, py, 1)
		}
	}
}

func (c *pngCanvas) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, "", errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return buf.Bytes(), "image/png", nil
}

// HeadlessPlatform has no raster capability; markup output still works.
type HeadlessPlatform struct{}

func (HeadlessPlatform) NewCanvas(int, int) (Canvas, error) {
	return nil, ErrNoCanvas
}
