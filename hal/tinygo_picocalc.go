//go:build tinygo && baremetal && picocalc

package hal

import "time"

const (
	picoCalcWidth  = 320
	picoCalcHeight = 320
)

type picoCalcHAL struct {
	logger *uartLogger
	fb     Framebuffer
	kbd    Keyboard
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// The framebuffer holds native display colors (PixelFormatRGB555); Present
// widens green to the panel's 16bpp 5-6-5 order while streaming.
func New() HAL {
	var fb Framebuffer
	if lcd, err := initILI9488(); err == nil {
		fb = &picoCalcFramebuffer{
			memFramebuffer: newMemFramebuffer(picoCalcWidth, picoCalcHeight, PixelFormatRGB555),
			lcd:            lcd,
		}
	} else {
		fb = newMemFramebuffer(picoCalcWidth, picoCalcHeight, PixelFormatRGB555)
	}

	var kbd Keyboard
	if kb, err := newPicoCalcKeyboard(); err == nil {
		kbd = kb
	} else {
		kbd = &stubKeyboard{}
	}

	return &picoCalcHAL{
		logger: newUARTLogger(),
		fb:     fb,
		kbd:    kbd,
	}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *picoCalcHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }

type picoCalcFramebuffer struct {
	*memFramebuffer
	lcd *ili9488
}

func (f *picoCalcFramebuffer) Present() error {
	return f.lcd.blit(f.buf, f.w, f.h)
}

type picoCalcKeyboard struct {
	ch chan KeyEvent
}

func (k *picoCalcKeyboard) Events() <-chan KeyEvent { return k.ch }

func newPicoCalcKeyboard() (*picoCalcKeyboard, error) {
	dev := &picoCalcKeyboard{ch: make(chan KeyEvent, 16)}
	kbd, err := initI2CKeyboard()
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			if ev, ok := kbd.readEvent(); ok {
				select {
				case dev.ch <- ev:
				default:
				}
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()

	return dev, nil
}
