//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestPixelRoundTrip(t *testing.T) {
	cases := []struct {
		f       PixelFormat
		r, g, b uint8
		raw     uint16
	}{
		{PixelFormatRGB565, 0xFF, 0, 0, 0xF800},
		{PixelFormatRGB565, 0, 0xFF, 0, 0x07E0},
		{PixelFormatRGB565, 0, 0, 0xFF, 0x001F},
		{PixelFormatRGB555, 0xFF, 0, 0, 0xF800},
		{PixelFormatRGB555, 0, 0xFF, 0, 0x07C0},
		{PixelFormatRGB555, 0, 0, 0xFF, 0x001F},
		{PixelFormatRGB555, 0xFF, 0xFF, 0xFF, 0xFFDF},
	}
	for _, tc := range cases {
		if got := EncodePixel(tc.f, tc.r, tc.g, tc.b); got != tc.raw {
			t.Errorf("%v Encode(%d,%d,%d)=%#04x, want %#04x", tc.f, tc.r, tc.g, tc.b, got, tc.raw)
		}
		r, g, b := DecodePixel(tc.f, tc.raw)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("%v Decode(%#04x)=%d,%d,%d, want %d,%d,%d", tc.f, tc.raw, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestHostFramebuffer(t *testing.T) {
	fb := newHostFramebuffer(4, 2, PixelFormatRGB555)
	fb.ClearRGB(0, 0xFF, 0)
	if r, g, b := PixelAt(fb, 3, 1); r != 0 || g != 0xFF || b != 0 {
		t.Fatalf("PixelAt=%d,%d,%d", r, g, b)
	}
	if r, g, b := PixelAt(fb, 4, 0); r|g|b != 0 {
		t.Fatal("out-of-range read must be black")
	}

	rgba := make([]byte, 4*2*4)
	fb.snapshotRGBA(rgba)
	for i := 0; i < len(rgba); i += 4 {
		if rgba[i] != 0 || rgba[i+1] != 0xFF || rgba[i+2] != 0 || rgba[i+3] != 0xFF {
			t.Fatalf("snapshot pixel %d = %v", i/4, rgba[i:i+4])
		}
	}
}

func TestHostFramebufferLockHoldsOffSnapshot(t *testing.T) {
	fb := newHostFramebuffer(2, 2, PixelFormatRGB565)
	var _ sync.Locker = fb

	fb.Lock()
	done := make(chan struct{})
	go func() {
		fb.snapshotRGBA(make([]byte, 4*4))
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("snapshot ran while a writer held the lock")
	case <-time.After(20 * time.Millisecond):
	}
	fb.Unlock()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("snapshot did not resume after Unlock")
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newHost(HostConfig{}, &buf)
	h.Logger().WriteLineString("radiosity: 1.....")
	h.Logger().WriteLineBytes([]byte("render: done"))
	if got := buf.String(); got != "radiosity: 1.....\nrender: done\n" {
		t.Fatalf("log=%q", got)
	}
	fb := h.Display().Framebuffer()
	if fb.Width() != 320 || fb.Height() != 240 || fb.Format() != PixelFormatRGB565 {
		t.Fatalf("default framebuffer %dx%d %v", fb.Width(), fb.Height(), fb.Format())
	}
}

func TestRunStepperStopsOnShutdown(t *testing.T) {
	steps := 0
	step := func() error {
		steps++
		if steps == 3 {
			return ErrShutdown
		}
		return nil
	}
	frames := 0
	err := runStepper(context.Background(), step, HostConfig{Hz: 1000}, func() { frames++ })
	if err != nil {
		t.Fatalf("runStepper: %v", err)
	}
	if steps != 3 || frames != 2 {
		t.Fatalf("steps=%d frames=%d", steps, frames)
	}
}

func TestRunStepperTicksAndErrors(t *testing.T) {
	steps := 0
	err := runStepper(context.Background(), func() error { steps++; return nil }, HostConfig{Hz: 1000, Ticks: 5}, nil)
	if err != nil || steps != 5 {
		t.Fatalf("err=%v steps=%d", err, steps)
	}

	boom := errors.New("boom")
	err = runStepper(context.Background(), func() error { return boom }, HostConfig{Hz: 1000}, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = runStepper(ctx, nil, HostConfig{Hz: 1}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v", err)
	}
}

func TestRunHeadlessPassesFramebuffer(t *testing.T) {
	var seen Framebuffer
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		seen = h.Display().Framebuffer()
		return func() error { return ErrShutdown }
	}, HostConfig{Width: 40, Height: 30, Hz: 1000})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if seen == nil || seen.Width() != 40 || seen.Height() != 30 || seen.StrideBytes() != 80 {
		t.Fatalf("framebuffer=%v", seen)
	}
}
