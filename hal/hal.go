package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrShutdown is returned by an app step to stop the runner cleanly.
	ErrShutdown = errors.New("shutdown")
)

// PixelFormat defines the framebuffer pixel encoding. Pixels are 16 bits,
// stored little-endian.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
	// PixelFormatRGB555 is rrrrrggggg0bbbbb, the renderer's native display
	// color with a dead bit between green and blue.
	PixelFormatRGB555
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGB565:
		return "rgb565"
	case PixelFormatRGB555:
		return "rgb555"
	}
	return "unknown"
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Framebuffers that another goroutine reads for presentation also implement
// sync.Locker; hold the lock while writing Buffer.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
)

// KeyEvent is a keyboard event. Text keys carry Rune with Code KeyUnknown.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL is the renderer's only contact point with the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
