//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"os"

	"github.com/gdamore/tcell/v2"
)

// RunTerminal shows the framebuffer in a truecolor terminal, two pixels per
// cell using upper half blocks, and forwards key presses to the app. Log
// lines are held back until the screen is released.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg HostConfig) error {
	cfg = cfg.withDefaults()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	var logs bytes.Buffer
	h := newHost(cfg, &logs)
	defer func() {
		screen.Fini()
		h.logger.mu.Lock()
		os.Stdout.Write(logs.Bytes())
		h.logger.mu.Unlock()
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if !termEvent(screen, h.kbd, ev) {
				cancel()
				return
			}
		}
	}()

	v := &termView{screen: screen, fb: h.fb}
	err = runStepper(ctx, newApp(h), cfg, v.draw)
	if err == context.Canceled {
		return nil
	}
	return err
}

// termEvent translates ev into a key event. It returns false on Ctrl-C.
func termEvent(screen tcell.Screen, kbd *hostKeyboard, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			kbd.push(KeyEvent{Press: true, Rune: ev.Rune()})
		case tcell.KeyEscape:
			kbd.push(KeyEvent{Code: KeyEscape, Press: true})
		case tcell.KeyEnter:
			kbd.push(KeyEvent{Code: KeyEnter, Press: true})
		case tcell.KeyUp:
			kbd.push(KeyEvent{Code: KeyUp, Press: true})
		case tcell.KeyDown:
			kbd.push(KeyEvent{Code: KeyDown, Press: true})
		case tcell.KeyLeft:
			kbd.push(KeyEvent{Code: KeyLeft, Press: true})
		case tcell.KeyRight:
			kbd.push(KeyEvent{Code: KeyRight, Press: true})
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			kbd.push(KeyEvent{Code: KeyBackspace, Press: true})
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}

type termView struct {
	screen tcell.Screen
	fb     *hostFramebuffer
	rgba   []byte
}

func (v *termView) draw() {
	fw, fh := v.fb.width, v.fb.height
	if len(v.rgba) != fw*fh*4 {
		v.rgba = make([]byte, fw*fh*4)
	}
	v.fb.snapshotRGBA(v.rgba)

	cols, rows := v.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	for cy := 0; cy < rows; cy++ {
		top := (2 * cy) * fh / (2 * rows)
		bot := (2*cy + 1) * fh / (2 * rows)
		for cx := 0; cx < cols; cx++ {
			fx := cx * fw / cols
			style := tcell.StyleDefault.
				Foreground(v.color(fx, top)).
				Background(v.color(fx, bot))
			v.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	v.screen.Show()
}

func (v *termView) color(x, y int) tcell.Color {
	i := (y*v.fb.width + x) * 4
	return tcell.NewRGBColor(int32(v.rgba[i]), int32(v.rgba[i+1]), int32(v.rgba[i+2]))
}
