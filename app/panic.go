package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"glint/hal"

	"tinygo.org/x/tinyfont"
)

var panicBG = color.RGBA{R: 0x80, A: 0xFF}

// guard runs fn, turning a panic into an error after reporting it on the
// logger and the framebuffer.
func guard(h hal.HAL, fn func() error) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		showPanic(h, v, debug.Stack())
		err = fmt.Errorf("panic: %v", v)
	}()
	return fn()
}

func showPanic(h hal.HAL, v any, stack []byte) {
	lines := []string{"glint panic:", fmt.Sprintf("%v", v)}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Buffer() == nil {
		return
	}

	d := fbDisplay{fb: fb}
	w, hgt := d.Size()
	d.fillRect(0, 0, w, hgt, panicBG)

	font := consoleFont()
	lh := int16(font.GetYAdvance())
	_, outbox := tinyfont.LineWidth(font, "0")
	cw := int16(outbox)
	if lh <= 0 || cw <= 0 {
		_ = fb.Present()
		return
	}
	cols := w / cw
	y := lh
	for _, line := range lines {
		for len(line) > 0 && y <= hgt {
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y, chunk, consoleFG)
			y += lh
			line = strings.TrimLeft(rest, " \t")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 {
		return s, ""
	}
	var i int
	for count := int16(0); i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], s[i:]
}
