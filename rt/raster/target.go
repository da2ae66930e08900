package raster

import (
	"image"
	stdcolor "image/color"

	"glint/rt/color"
)

// Target is a pixel sink for the raster scan.
//
// Implementations clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c color.Color)
	Clear(c color.Color)
}

// RGB565Target writes little-endian 5-6-5 pixels into a caller-provided
// buffer, as used by SPI panels and the host framebuffer.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) Clear(c color.Color) { fill16(t.Buf, t.Stride, t.W, t.H, c.RGB565()) }

func (t *RGB565Target) SetPixel(x, y int, c color.Color) {
	put16(t.Buf, t.Stride, t.W, t.H, x, y, c.RGB565())
}

// VRAMTarget stores display colors unchanged (r<<11 | g<<6 | b, little
// endian) for panels that scan that layout directly.
type VRAMTarget struct {
	Buf    []byte
	Stride int
	W      int
	H      int
}

func (t *VRAMTarget) Size() (w, h int) { return t.W, t.H }

func (t *VRAMTarget) Clear(c color.Color) { fill16(t.Buf, t.Stride, t.W, t.H, uint16(c)) }

func (t *VRAMTarget) SetPixel(x, y int, c color.Color) {
	put16(t.Buf, t.Stride, t.W, t.H, x, y, uint16(c))
}

// ImageTarget renders into an RGBA image, e.g. for PNG output.
type ImageTarget struct {
	Img *image.RGBA
}

// NewImageTarget allocates a w x h image target.
func NewImageTarget(w, h int) *ImageTarget {
	return &ImageTarget{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *ImageTarget) Size() (w, h int) {
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ImageTarget) Clear(c color.Color) {
	w, h := t.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t.SetPixel(x, y, c)
		}
	}
}

func (t *ImageTarget) SetPixel(x, y int, c color.Color) {
	b := t.Img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return
	}
	r, g, bl := c.RGB888()
	t.Img.SetRGBA(b.Min.X+x, b.Min.Y+y, stdcolor.RGBA{R: r, G: g, B: bl, A: 0xFF})
}

func put16(buf []byte, stride, w, h, x, y int, p uint16) {
	if buf == nil || stride <= 0 || x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	off := y*stride + x*2
	if off+1 >= len(buf) {
		return
	}
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

func fill16(buf []byte, stride, w, h int, p uint16) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			put16(buf, stride, w, h, x, y, p)
		}
	}
}
