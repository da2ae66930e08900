//go:build tinygo && baremetal && !picocalc

package hal

type tinyGoHAL struct {
	logger *uartLogger
	fb     Framebuffer
	kbd    Keyboard
}

// New returns a bare Pico 2 (RP2350) HAL: UART logging and an off-screen
// framebuffer.
func New() HAL {
	return &tinyGoHAL{
		logger: newUARTLogger(),
		fb:     newMemFramebuffer(160, 120, PixelFormatRGB565),
		kbd:    &stubKeyboard{},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
