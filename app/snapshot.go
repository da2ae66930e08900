//go:build !tinygo

package app

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"glint/hal"
)

// snapshot assembles framebuffer tiles into one image for PNG export.
type snapshot struct {
	img *image.RGBA
}

func newSnapshot(w, h int) *snapshot {
	return &snapshot{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// addTile copies fb into tile (tx, ty) of the snapshot.
func (s *snapshot) addTile(fb hal.Framebuffer, tx, ty int) {
	w, h := fb.Width(), fb.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := hal.PixelAt(fb, x, y)
			s.img.SetRGBA(tx*w+x, ty*h+y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
}

func (s *snapshot) save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
