//go:build tinygo

package hal

// memFramebuffer renders into RAM only, for targets without a panel.
type memFramebuffer struct {
	w, h   int
	format PixelFormat
	buf    []byte
}

func newMemFramebuffer(w, h int, format PixelFormat) *memFramebuffer {
	return &memFramebuffer{w: w, h: h, format: format, buf: make([]byte, w*h*2)}
}

func (f *memFramebuffer) Width() int             { return f.w }
func (f *memFramebuffer) Height() int            { return f.h }
func (f *memFramebuffer) Format() PixelFormat    { return f.format }
func (f *memFramebuffer) StrideBytes() int       { return f.w * 2 }
func (f *memFramebuffer) Buffer() []byte         { return f.buf }
func (f *memFramebuffer) ClearRGB(r, g, b uint8) { fill16(f.buf, EncodePixel(f.format, r, g, b)) }
func (f *memFramebuffer) Present() error         { return nil }

type stubKeyboard struct{}

func (k *stubKeyboard) Events() <-chan KeyEvent { return nil }
