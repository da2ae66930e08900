// Package radiosity bakes direct light and diffuse interreflection into the
// scene's lightmaps before rendering.
//
// The bake runs in two phases. ComputeIllumination stores the light each
// plane texel receives straight from the point light, with binary sphere
// shadows, as that texel's emission. ComputeRadiosity then gathers light
// between planes for a fixed number of bounces, and finally gathers the
// converged plane light onto diffuse spheres.
package radiosity

import (
	"fmt"
	"math"
	"strings"

	"glint/rt/fixed"
	"glint/rt/geom"
	"glint/rt/lightmap"
	"glint/rt/scene"
	"glint/rt/spectrum"
	"glint/rt/vec"
)

// DefaultBounces is enough for the closed box to converge visually.
const DefaultBounces = 2

var (
	patchArea = fixed.FromFloat(1.0 / (lightmap.MapSize * lightmap.MapSize))
	invPi     = fixed.FromFloat(1 / math.Pi)
	// Sphere gathering is boosted to emphasize color bleeding.
	sphereBoost = fixed.FromFloat(math.Pi)
)

// Logger receives progress lines.
type Logger interface {
	WriteLineString(s string)
}

// Solver owns one bake of a scene. It mutates the scene's lightmaps and must
// not run concurrently with rendering.
type Solver struct {
	Scene   *scene.Scene
	Log     Logger
	Bounces int
}

// New returns a solver with the default bounce count. log may be nil.
func New(s *scene.Scene, log Logger) *Solver {
	return &Solver{Scene: s, Log: log, Bounces: DefaultBounces}
}

// Run performs the full bake.
func (s *Solver) Run() {
	s.ComputeIllumination()
	s.ComputeRadiosity()
}

// ComputeIllumination sets every plane's Emissive grid to direct light and
// clears all Bitmaps.
func (s *Solver) ComputeIllumination() {
	s.logf("Computing Shadows")
	for _, p := range s.Scene.Planes {
		s.computeShadows(p)
		p.Lightmap.Clear()
	}
	for _, sp := range s.Scene.Spheres {
		sp.Lightmap.Clear()
	}
}

// ComputeRadiosity runs the plane bounces and bakes the diffuse spheres.
// ComputeIllumination must have run first.
func (s *Solver) ComputeRadiosity() {
	s.logf("Computing Plane Radiosity")
	for i := 0; i < s.Bounces; i++ {
		s.Bounce()
		s.logf("%d%s", i+1, strings.Repeat(".", len(s.Scene.Planes)))
	}
	s.logf("Computing Sphere Radiosity")
	s.BakeSpheres()
}

// Bounce gathers one bounce of light onto every plane, then promotes it to
// the next bounce's emission. Every plane gathers before any plane promotes.
func (s *Solver) Bounce() {
	for _, p := range s.Scene.Planes {
		s.gatherPlane(p)
	}
	for _, p := range s.Scene.Planes {
		p.Lightmap.Copy()
	}
}

// BakeSpheres makes the planes' accumulated light their emission and
// gathers it onto every diffuse sphere. Mirror spheres get no lightmap.
func (s *Solver) BakeSpheres() {
	for _, p := range s.Scene.Planes {
		p.Lightmap.FromBitmap()
	}
	for _, sp := range s.Scene.Spheres {
		if sp.Reflective {
			continue
		}
		for y := 0; y < lightmap.MapSize; y++ {
			for x := 0; x < lightmap.MapSize; x++ {
				n := lightmap.SphereSamplePos(x, y)
				pos := n.Scale(sp.Radius).Add(sp.Center)
				var in spectrum.Spectrum
				for _, src := range s.Scene.Planes {
					in = in.Add(incident(src, pos, n))
				}
				sp.Lightmap.Bitmap[x][y] = in.Scale(sphereBoost)
			}
		}
	}
}

func (s *Solver) computeShadows(p *geom.Plane) {
	for y := 0; y < lightmap.MapSize; y++ {
		for x := 0; x < lightmap.MapSize; x++ {
			origin := lightmap.SamplePos(p.Point, p.Normal, x, y)
			r := vec.Ray{Origin: origin, Dir: s.Scene.Light.Sub(origin)}

			att := fixed.Div(vec.Dot(p.Normal, r.Dir), r.Dir.Norm().Mul(r.Dir.NormSquared()))
			e := p.Albedo.Scale(fixed.Clamp0(att))
			if s.occluded(r) {
				e = spectrum.Spectrum{}
			}
			p.Lightmap.Emissive[x][y] = e
		}
	}
}

// occluded tests the full ray against every sphere. Any forward hit counts,
// even beyond the light; spheres never sit behind the light in a closed box.
func (s *Solver) occluded(r vec.Ray) bool {
	for _, sp := range s.Scene.Spheres {
		if sp.Intersect(r).Raw() > 0 {
			return true
		}
	}
	return false
}

func (s *Solver) gatherPlane(p *geom.Plane) {
	for y := 0; y < lightmap.MapSize; y++ {
		for x := 0; x < lightmap.MapSize; x++ {
			pos := lightmap.SamplePos(p.Point, p.Normal, x, y)
			var in spectrum.Spectrum
			for _, src := range s.Scene.Planes {
				if src == p {
					continue
				}
				in = in.Add(incident(src, pos, p.Normal))
			}
			p.Lightmap.Emissive2[x][y] = in.Mul(p.Albedo).Scale(invPi)
		}
	}
}

// incident sums the light src emits toward a receiver at pos facing normal.
// Each emitting texel is weighted by cos·cos/d⁴ with unnormalized directions,
// then the sum is averaged over the patch. Occlusion is ignored.
func incident(src *geom.Plane, pos, normal vec.Vec3) spectrum.Spectrum {
	var sum spectrum.Spectrum
	for y := 0; y < lightmap.MapSize; y++ {
		for x := 0; x < lightmap.MapSize; x++ {
			dir := lightmap.SamplePos(src.Point, src.Normal, x, y).Sub(pos)
			att := vec.Dot(normal, dir).Mul(-vec.Dot(src.Normal, dir))
			att = fixed.Clamp0(fixed.Div(att, fixed.Sqr(dir.NormSquared())))
			sum = sum.Add(src.Lightmap.Emissive[x][y].Scale(att))
		}
	}
	return sum.Scale(patchArea)
}

func (s *Solver) logf(format string, args ...any) {
	if s.Log == nil {
		return
	}
	s.Log.WriteLineString("radiosity: " + fmt.Sprintf(format, args...))
}
