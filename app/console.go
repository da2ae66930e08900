package app

import (
	"image/color"
	"sync"

	"glint/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const consoleLines = 6

var (
	consoleFG = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	consoleBG = color.RGBA{A: 0xFF}
)

func consoleFont() tinyfont.Fonter { return &proggy.TinySZ8pt7b }

// console forwards progress lines to the hal logger and, while on screen,
// mirrors the most recent ones at the bottom of the framebuffer.
type console struct {
	mu     sync.Mutex
	log    hal.Logger
	disp   fbDisplay
	font   tinyfont.Fonter
	lines  []string
	screen bool
}

func newConsole(h hal.HAL, overlay bool) *console {
	c := &console{log: h.Logger(), font: consoleFont()}
	if d := h.Display(); d != nil && overlay {
		if fb := d.Framebuffer(); fb != nil && fb.Buffer() != nil {
			c.disp = fbDisplay{fb: fb}
			c.screen = true
		}
	}
	return c
}

func (c *console) WriteLineString(s string) {
	if c.log != nil {
		c.log.WriteLineString(s)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, s)
	if len(c.lines) > consoleLines {
		c.lines = c.lines[len(c.lines)-consoleLines:]
	}
	if c.screen {
		c.draw()
	}
}

// hide stops mirroring to the framebuffer; later lines only reach the log.
func (c *console) hide() {
	c.mu.Lock()
	c.screen = false
	c.mu.Unlock()
}

func (c *console) draw() {
	lh := int16(c.font.GetYAdvance())
	w, h := c.disp.Size()
	if lh <= 0 || w <= 0 || h <= 0 {
		return
	}
	top := h - lh*consoleLines - 2
	c.disp.fillRect(0, top, w, h-top, consoleBG)
	y := top + lh
	for _, line := range c.lines {
		tinyfont.WriteLine(c.disp, c.font, 2, y, line, consoleFG)
		y += lh
	}
	_ = c.disp.Display()
}
