// Package raster scans camera rays over a pixel target.
//
// The camera sits at Origin looking down +z with the image plane at z=1; one
// pixel spans 1/height scene units. Each row is traced left to right with
// error-diffusion dithering that restarts at the row's first pixel.
package raster

import (
	"fmt"

	"glint/rt/color"
	"glint/rt/fixed"
	"glint/rt/shade"
	"glint/rt/vec"
)

// Logger receives progress lines.
type Logger interface {
	WriteLineString(s string)
}

// Renderer draws frames through an Integrator.
type Renderer struct {
	Integrator *shade.Integrator
	Origin     vec.Vec3

	// Grain traces one ray per Grain x Grain block and fills the block.
	Grain int
	// Supersample renders Supersample² full-size tiles of a larger image.
	Supersample int

	Log Logger
	// RowDone is called after each traced row with its top pixel row.
	RowDone func(y int)
}

// New returns a full-resolution renderer with the camera at the origin.
func New(in *shade.Integrator) *Renderer {
	return &Renderer{Integrator: in, Grain: 1, Supersample: 1}
}

type camera struct {
	scale     fixed.Fixed
	left, top fixed.Fixed
}

func newCamera(w, h, grain int) camera {
	scale := fixed.FromRaw(fixed.One.Raw() / int32(h))
	return camera{
		scale: scale,
		left:  fixed.FromInt(-w/2 - grain).Mul(scale),
		top:   fixed.FromInt(h/2 - grain).Mul(scale),
	}
}

// Render traces one frame into t.
func (r *Renderer) Render(t Target) {
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	g := r.Grain
	if g < 1 {
		g = 1
	}
	in := r.Integrator
	in.RegisterCamera(r.Origin)
	in.ResetStats()
	r.logf("render: %dx%d grain %d", w, h, g)

	cam := newCamera(w, h, g)
	step := cam.scale.Mul(fixed.FromInt(g))
	ray := vec.Ray{Origin: r.Origin, Dir: vec.Vec3{Y: cam.top, Z: fixed.One}}

	var d color.Dither
	for y := 0; y < h; y += g {
		ray.Dir.Y -= step
		ray.Dir.X = cam.left
		d.Reset()
		for x := 0; x < w; x += g {
			ray.Dir.X += step
			c := d.Quantize(in.ComputeRay(ray, true).ToColor24())
			fillBlock(t, x, y, g, c)
		}
		if r.RowDone != nil {
			r.RowDone(y)
		}
	}
	r.logStats()
}

// RenderSupersampled traces a Supersample-times larger image as a grid of
// target-sized tiles. Each tile overwrites t; tileDone is called after each
// tile with its column and row so the caller can store or present it.
func (r *Renderer) RenderSupersampled(t Target, tileDone func(tx, ty int) error) error {
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	ss := r.Supersample
	if ss < 1 {
		ss = 1
	}
	in := r.Integrator
	in.RegisterCamera(r.Origin)
	in.ResetStats()
	r.logf("render: %dx%d supersample %d", w*ss, h*ss, ss)

	cam := newCamera(w, h, 1)
	sub := fixed.FromRaw(fixed.One.Raw() / int32(ss))
	ray := vec.Ray{Origin: r.Origin, Dir: vec.Vec3{Z: fixed.One}}

	var d color.Dither
	for sy := 0; sy < ss*h; sy += h {
		for sx := 0; sx < ss*w; sx += w {
			for y := 0; y < h; y++ {
				d.Reset()
				ray.Dir.Y = cam.top - fixed.FromInt(sy+y).Mul(cam.scale).Mul(sub)
				for x := 0; x < w; x++ {
					ray.Dir.X = cam.left + fixed.FromInt(sx+x).Mul(cam.scale).Mul(sub)
					t.SetPixel(x, y, d.Quantize(in.ComputeRay(ray, true).ToColor24()))
				}
				if r.RowDone != nil {
					r.RowDone(y)
				}
			}
			if tileDone != nil {
				if err := tileDone(sx/w, sy/h); err != nil {
					return fmt.Errorf("tile %d,%d: %w", sx/w, sy/h, err)
				}
			}
		}
	}
	r.logStats()
	return nil
}

func fillBlock(t Target, x, y, g int, c color.Color) {
	if g == 1 {
		t.SetPixel(x, y, c)
		return
	}
	for py := 0; py < g; py++ {
		for px := 0; px < g; px++ {
			t.SetPixel(x+px, y+py, c)
		}
	}
}

func (r *Renderer) logStats() {
	st := r.Integrator.Stats()
	r.logf("render: done, %d rays, %d mirror paths truncated", st.Rays, st.Truncated)
}

func (r *Renderer) logf(format string, args ...any) {
	if r.Log == nil {
		return
	}
	r.Log.WriteLineString(fmt.Sprintf(format, args...))
}
