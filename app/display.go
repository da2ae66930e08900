package app

import (
	"image/color"
	"sync"

	"glint/hal"

	"tinygo.org/x/drivers"
)

// fbDisplay lets tinyfont draw into a hal framebuffer of either pixel format.
type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = fbDisplay{}

func (d fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if buf == nil || ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off+1 >= len(buf) {
		return
	}
	p := hal.EncodePixel(d.fb.Format(), c.R, c.G, c.B)
	mu := fbLock(d.fb)
	mu.Lock()
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
	mu.Unlock()
}

func (d fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d fbDisplay) fillRect(x0, y0, w, h int16, c color.RGBA) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			d.SetPixel(x, y, c)
		}
	}
}

// fbLock returns the framebuffer's write lock, or a no-op lock when nothing
// else reads the buffer.
func fbLock(fb hal.Framebuffer) sync.Locker {
	if l, ok := fb.(sync.Locker); ok {
		return l
	}
	return noLock{}
}

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}
