//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"glint/app"
	"glint/hal"
	"glint/internal/buildinfo"
	"glint/rt/fixed"
	"glint/rt/scene"
)

func main() {
	hostCfg := hal.HostConfig{Format: hal.PixelFormatRGB565}
	cfg := app.DefaultConfig()

	var (
		headless    bool
		term        bool
		native      bool
		exposure    float64
		scenePath   string
		exportScene string
		version     bool
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window; exits when the frame is done.")
	flag.BoolVar(&term, "term", false, "Show the frame in the terminal instead of a window.")
	flag.BoolVar(&native, "native", false, "Use the native 5-5-5 framebuffer layout.")
	flag.IntVar(&hostCfg.Width, "width", 320, "Framebuffer width.")
	flag.IntVar(&hostCfg.Height, "height", 240, "Framebuffer height.")
	flag.IntVar(&hostCfg.Scale, "scale", 2, "Window zoom factor.")
	flag.IntVar(&hostCfg.Hz, "hz", 60, "Step rate in headless and terminal mode.")
	flag.Uint64Var(&hostCfg.Ticks, "ticks", 0, "Stop after N steps in headless and terminal mode (0 = run until done).")
	flag.IntVar(&cfg.Grain, "grain", cfg.Grain, "Trace one ray per NxN pixel block.")
	flag.IntVar(&cfg.Supersample, "supersample", cfg.Supersample, "Render an N times larger image in tiles (needs -out to keep it).")
	flag.Float64Var(&exposure, "exposure", cfg.Exposure.Float(), "Radiance scale before gamma.")
	flag.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "Mirror recursion limit.")
	flag.IntVar(&cfg.Bounces, "bounces", cfg.Bounces, "Radiosity gather rounds.")
	flag.StringVar(&scenePath, "scene", "", "Scene JSON file (default: built-in Cornell box).")
	flag.StringVar(&exportScene, "export-scene", "", "Write the built-in scene as JSON and exit.")
	flag.StringVar(&cfg.SnapshotPath, "out", "", "Write the finished frame as PNG.")
	flag.BoolVar(&version, "version", false, "Print build information and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Long())
		return
	}

	if exportScene != "" {
		if err := scene.Save(exportScene, scene.CornellBoxFile()); err != nil {
			fatal(err)
		}
		return
	}

	if native {
		hostCfg.Format = hal.PixelFormatRGB555
	}
	cfg.Exposure = fixed.FromFloat(float32(exposure))
	if scenePath != "" {
		s, err := scene.Load(scenePath)
		if err != nil {
			fatal(err)
		}
		cfg.Scene = s
	}

	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, cfg) }

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case headless:
		cfg.ExitWhenDone = true
		cfg.Overlay = false
		err = hal.RunHeadless(ctx, newApp, hostCfg)
	case term:
		err = hal.RunTerminal(ctx, newApp, hostCfg)
	default:
		err = hal.RunWindow(newApp, hostCfg)
	}
	if err != nil && err != context.Canceled {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
