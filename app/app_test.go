//go:build !tinygo

package app

import (
	"context"
	"errors"
	stdcolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"glint/hal"
	"glint/rt/color"
	"glint/rt/raster"
)

type testLog struct {
	mu    sync.Mutex
	lines []string
}

func (l *testLog) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *testLog) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *testLog) has(prefix string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.lines {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

type testFB struct {
	w, h     int
	format   hal.PixelFormat
	buf      []byte
	presents int
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return f.format }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { f.presents++; return nil }

func (f *testFB) ClearRGB(r, g, b uint8) {
	p := hal.EncodePixel(f.format, r, g, b)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i], f.buf[i+1] = byte(p), byte(p>>8)
	}
}

type testHAL struct {
	log  *testLog
	fb   *testFB
	keys chan hal.KeyEvent
}

func newTestHAL(w, h int, format hal.PixelFormat) *testHAL {
	return &testHAL{
		log:  &testLog{},
		fb:   &testFB{w: w, h: h, format: format, buf: make([]byte, w*h*2)},
		keys: make(chan hal.KeyEvent, 4),
	}
}

func (t *testHAL) Logger() hal.Logger   { return t.log }
func (t *testHAL) Display() hal.Display { return t }
func (t *testHAL) Input() hal.Input     { return t }

func (t *testHAL) Framebuffer() hal.Framebuffer { return t.fb }
func (t *testHAL) Keyboard() hal.Keyboard       { return t }
func (t *testHAL) Events() <-chan hal.KeyEvent  { return t.keys }

func lit(fb hal.Framebuffer) bool {
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if r, g, b := hal.PixelAt(fb, x, y); r|g|b != 0 {
				return true
			}
		}
	}
	return false
}

func TestRenderNativeFormat(t *testing.T) {
	h := newTestHAL(32, 24, hal.PixelFormatRGB555)
	cfg := DefaultConfig()
	cfg.Overlay = false
	a := newApp(h, cfg)
	if err := a.render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !lit(h.fb) {
		t.Fatal("frame is black")
	}
	if h.fb.presents < 2 {
		t.Fatalf("presents=%d", h.fb.presents)
	}
	for _, want := range []string{"glint ", "radiosity: Computing Shadows", "render: 32x24 grain 1", "render: done"} {
		if !h.log.has(want) {
			t.Errorf("missing log line %q in %q", want, h.log.lines)
		}
	}
}

// lockingFB counts lock use so tests can tell whether writes were guarded.
type lockingFB struct {
	*testFB
	locks  int
	held   bool
	nested bool
}

func (f *lockingFB) Lock() {
	f.nested = f.nested || f.held
	f.held = true
	f.locks++
}

func (f *lockingFB) Unlock() { f.held = false }

func TestWritesHoldFramebufferLock(t *testing.T) {
	fb := &lockingFB{testFB: &testFB{w: 4, h: 2, format: hal.PixelFormatRGB565, buf: make([]byte, 16)}}

	tgt, err := target(fb)
	if err != nil {
		t.Fatalf("target: %v", err)
	}
	tgt.SetPixel(1, 1, color.Red)
	tgt.Clear(color.Black)
	if fb.locks != 2 || fb.held || fb.nested {
		t.Fatalf("target: locks=%d held=%v nested=%v", fb.locks, fb.held, fb.nested)
	}

	fbDisplay{fb: fb}.SetPixel(0, 0, stdcolor.RGBA{R: 0xFF, A: 0xFF})
	if fb.locks != 3 || fb.held {
		t.Fatalf("display: locks=%d held=%v", fb.locks, fb.held)
	}
	if r, _, _ := hal.PixelAt(fb, 0, 0); r != 0xFF {
		t.Fatalf("display pixel red=%d", r)
	}

	if _, ok := mustTarget(t, newTestHAL(4, 2, hal.PixelFormatRGB565).fb).(lockedTarget); ok {
		t.Fatal("unshared framebuffer must not be wrapped")
	}
}

func mustTarget(t *testing.T, fb hal.Framebuffer) raster.Target {
	t.Helper()
	tgt, err := target(fb)
	if err != nil {
		t.Fatalf("target: %v", err)
	}
	return tgt
}

func TestStepWaitsForKey(t *testing.T) {
	h := newTestHAL(16, 12, hal.PixelFormatRGB565)
	cfg := DefaultConfig()
	cfg.Grain = 4
	step := NewWithConfig(h, cfg)

	// Drive the step function until the background render finishes.
	deadline := time.Now().Add(time.Minute)
	for !h.log.has("glint: press any key") {
		if time.Now().After(deadline) {
			t.Fatal("render never finished")
		}
		if err := step(); err != nil {
			t.Fatalf("step: %v", err)
		}
		time.Sleep(time.Millisecond)
	}
	if err := step(); err != nil {
		t.Fatalf("idle step: %v", err)
	}
	h.keys <- hal.KeyEvent{Code: hal.KeyEnter, Press: false}
	if err := step(); err != nil {
		t.Fatalf("key release must be ignored: %v", err)
	}
	h.keys <- hal.KeyEvent{Rune: ' ', Press: true}
	if err := step(); !errors.Is(err, hal.ErrShutdown) {
		t.Fatalf("step after key=%v, want ErrShutdown", err)
	}
}

func TestEscapeQuitsDuringRender(t *testing.T) {
	h := newTestHAL(16, 12, hal.PixelFormatRGB565)
	a := newApp(h, DefaultConfig())
	h.keys <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	if err := a.step(); !errors.Is(err, hal.ErrShutdown) {
		t.Fatalf("step=%v, want ErrShutdown", err)
	}
}

func TestHeadlessSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	cfg := DefaultConfig()
	cfg.Supersample = 2
	cfg.SnapshotPath = path
	cfg.ExitWhenDone = true

	err := hal.RunHeadless(context.Background(), func(h hal.HAL) func() error {
		return NewWithConfig(h, cfg)
	}, hal.HostConfig{Width: 24, Height: 16, Hz: 1000})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 32 {
		t.Fatalf("snapshot %v, want 48x32", b)
	}
}

func TestGuardReportsPanic(t *testing.T) {
	h := newTestHAL(64, 48, hal.PixelFormatRGB565)
	err := guard(h, func() error { panic("lightmap index out of range") })
	if err == nil || !strings.Contains(err.Error(), "lightmap index out of range") {
		t.Fatalf("err=%v", err)
	}
	if !h.log.has("glint panic:") {
		t.Fatalf("log=%q", h.log.lines)
	}
	bg := 0
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if r, g, b := hal.PixelAt(h.fb, x, y); r > 0 && g == 0 && b == 0 {
				bg++
			}
		}
	}
	if bg < 64*48/2 {
		t.Fatalf("only %d pixels show the panic background", bg)
	}
	if h.fb.presents != 1 {
		t.Fatalf("presents=%d", h.fb.presents)
	}
}

func TestConsoleOverlay(t *testing.T) {
	h := newTestHAL(160, 120, hal.PixelFormatRGB565)
	c := newConsole(h, true)
	c.WriteLineString("radiosity: Computing Shadows")
	if !lit(h.fb) {
		t.Fatal("overlay drew nothing")
	}
	if len(h.log.lines) != 1 {
		t.Fatalf("log=%q", h.log.lines)
	}

	h.fb.ClearRGB(0, 0, 0)
	c.hide()
	c.WriteLineString("render: done")
	if lit(h.fb) {
		t.Fatal("hidden console drew on screen")
	}
	for i := 0; i < consoleLines+3; i++ {
		c.WriteLineString("x")
	}
	if len(c.lines) != consoleLines {
		t.Fatalf("kept %d lines", len(c.lines))
	}
}

func TestTakeRunes(t *testing.T) {
	cases := []struct {
		s          string
		n          int16
		head, tail string
	}{
		{"abcdef", 4, "abcd", "ef"},
		{"abc", 4, "abc", ""},
		{"äöü", 2, "äö", "ü"},
		{"x", 0, "x", ""},
	}
	for _, tc := range cases {
		if h, r := takeRunes(tc.s, tc.n); h != tc.head || r != tc.tail {
			t.Errorf("takeRunes(%q,%d)=%q,%q", tc.s, tc.n, h, r)
		}
	}
}
