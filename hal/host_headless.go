//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// RunHeadless runs the app without opening a window, stepping it cfg.Hz
// times per second. It returns nil when the app shuts down or cfg.Ticks
// steps have run.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HostConfig) error {
	cfg = cfg.withDefaults()
	h := newHost(cfg, os.Stdout)
	return runStepper(ctx, newApp(h), cfg, nil)
}

// runStepper drives step on a ticker, calling frame after each step.
func runStepper(ctx context.Context, step func() error, cfg HostConfig, frame func()) error {
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrShutdown) {
						return nil
					}
					return err
				}
			}
			if frame != nil {
				frame()
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
