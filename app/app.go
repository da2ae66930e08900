// Package app wires the renderer to a hal: it bakes the scene's radiosity,
// traces a frame into the display framebuffer and waits for a key.
package app

import (
	"errors"
	"fmt"
	"sync"

	"glint/hal"
	"glint/internal/buildinfo"
	"glint/rt/color"
	"glint/rt/fixed"
	"glint/rt/radiosity"
	"glint/rt/raster"
	"glint/rt/scene"
	"glint/rt/shade"
)

// presentEvery is how many traced rows pass between framebuffer presents.
const presentEvery = 16

type Config struct {
	// Scene to render; nil selects scene.CornellBox().
	Scene *scene.Scene

	Grain       int
	Supersample int
	Exposure    fixed.Fixed
	MaxDepth    int
	Bounces     int

	// SnapshotPath, when set, receives the finished frame as PNG (host only).
	// Supersampled renders are assembled at full resolution first.
	SnapshotPath string
	// ExitWhenDone shuts down once the frame is finished instead of waiting
	// for a key.
	ExitWhenDone bool
	// Overlay mirrors bake progress onto the framebuffer.
	Overlay bool
}

// DefaultConfig renders the Cornell box at full resolution with on-screen
// progress.
func DefaultConfig() Config {
	return Config{
		Grain:       1,
		Supersample: 1,
		Exposure:    shade.DefaultExposure,
		MaxDepth:    shade.DefaultMaxDepth,
		Bounces:     radiosity.DefaultBounces,
		Overlay:     true,
	}
}

type app struct {
	h    hal.HAL
	cfg  Config
	con  *console
	keys <-chan hal.KeyEvent

	done     chan error
	finished bool
}

// New starts rendering with the default config and returns the step
// function the host runners call every frame.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig starts a render in the background. The returned step
// function reports render errors and returns hal.ErrShutdown once the user
// quits (Escape or q at any time, any key after the frame is done).
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	a := newApp(h, cfg)
	go func() {
		a.done <- guard(h, a.render)
	}()
	return a.step
}

// Run renders once and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

func RunWithConfig(h hal.HAL, cfg Config) {
	a := newApp(h, cfg)
	if err := guard(h, a.render); err != nil {
		a.con.WriteLineString("glint: " + err.Error())
	}
	select {}
}

func newApp(h hal.HAL, cfg Config) *app {
	a := &app{
		h:    h,
		cfg:  cfg,
		con:  newConsole(h, cfg.Overlay),
		done: make(chan error, 1),
	}
	if in := h.Input(); in != nil {
		if kb := in.Keyboard(); kb != nil {
			a.keys = kb.Events()
		}
	}
	return a
}

func (a *app) step() error {
	if !a.finished {
		select {
		case err := <-a.done:
			a.finished = true
			if err != nil {
				return err
			}
			if a.cfg.ExitWhenDone {
				return hal.ErrShutdown
			}
			a.con.WriteLineString("glint: press any key to exit")
		default:
		}
	}

	for {
		select {
		case ev := <-a.keys:
			if !ev.Press {
				continue
			}
			if a.finished || ev.Code == hal.KeyEscape || ev.Rune == 'q' {
				return hal.ErrShutdown
			}
		default:
			return nil
		}
	}
}

func (a *app) render() error {
	disp := a.h.Display()
	if disp == nil {
		return hal.ErrNotImplemented
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Buffer() == nil {
		return hal.ErrNotImplemented
	}
	tgt, err := target(fb)
	if err != nil {
		return err
	}

	s := a.cfg.Scene
	if s == nil {
		s = scene.CornellBox()
	}

	fb.ClearRGB(0, 0, 0)
	a.con.WriteLineString(fmt.Sprintf("glint %s: %dx%d %v", buildinfo.Short(), fb.Width(), fb.Height(), fb.Format()))

	sol := radiosity.New(s, a.con)
	if a.cfg.Bounces > 0 {
		sol.Bounces = a.cfg.Bounces
	}
	sol.Run()
	a.con.hide()

	in := shade.New(s)
	if a.cfg.Exposure != 0 {
		in.Exposure = a.cfg.Exposure
	}
	if a.cfg.MaxDepth > 0 {
		in.MaxDepth = a.cfg.MaxDepth
	}

	r := raster.New(in)
	r.Grain = max(a.cfg.Grain, 1)
	r.Supersample = max(a.cfg.Supersample, 1)
	r.Log = a.con
	r.RowDone = func(y int) {
		if y%presentEvery == 0 {
			_ = fb.Present()
		}
	}

	var snap *snapshot
	if a.cfg.SnapshotPath != "" {
		snap = newSnapshot(fb.Width()*r.Supersample, fb.Height()*r.Supersample)
	}

	if r.Supersample > 1 {
		err := r.RenderSupersampled(tgt, func(tx, ty int) error {
			if err := presentErr(fb.Present()); err != nil {
				return err
			}
			if snap != nil {
				snap.addTile(fb, tx, ty)
			}
			return nil
		})
		if err != nil {
			return err
		}
	} else {
		r.Render(tgt)
		if err := presentErr(fb.Present()); err != nil {
			return err
		}
		if snap != nil {
			snap.addTile(fb, 0, 0)
		}
	}

	if snap == nil {
		return nil
	}
	return a.save(snap)
}

func (a *app) save(snap *snapshot) error {
	if err := snap.save(a.cfg.SnapshotPath); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	a.con.WriteLineString("glint: wrote " + a.cfg.SnapshotPath)
	return nil
}

// target picks the raster target matching the framebuffer's pixel layout.
func target(fb hal.Framebuffer) (raster.Target, error) {
	buf, stride, w, h := fb.Buffer(), fb.StrideBytes(), fb.Width(), fb.Height()
	var t raster.Target
	switch fb.Format() {
	case hal.PixelFormatRGB565:
		t = &raster.RGB565Target{Buf: buf, Stride: stride, W: w, H: h}
	case hal.PixelFormatRGB555:
		t = &raster.VRAMTarget{Buf: buf, Stride: stride, W: w, H: h}
	default:
		return nil, fmt.Errorf("unsupported pixel format %v", fb.Format())
	}
	if l, ok := fb.(sync.Locker); ok {
		t = lockedTarget{Target: t, mu: l}
	}
	return t, nil
}

// lockedTarget takes the framebuffer lock around every write.
type lockedTarget struct {
	raster.Target
	mu sync.Locker
}

func (t lockedTarget) SetPixel(x, y int, c color.Color) {
	t.mu.Lock()
	t.Target.SetPixel(x, y, c)
	t.mu.Unlock()
}

func (t lockedTarget) Clear(c color.Color) {
	t.mu.Lock()
	t.Target.Clear(c)
	t.mu.Unlock()
}

// presentErr ignores displays that cannot present.
func presentErr(err error) error {
	if errors.Is(err, hal.ErrNotImplemented) {
		return nil
	}
	return err
}
