// Package shade turns rays into radiance using the baked lightmaps plus a
// fresh direct-light term per hit.
package shade

import (
	"glint/rt/fixed"
	"glint/rt/geom"
	"glint/rt/scene"
	"glint/rt/spectrum"
	"glint/rt/vec"
)

const (
	// DefaultMaxDepth bounds mirror recursion.
	DefaultMaxDepth = 8
)

var (
	// DefaultExposure scales final radiance before gamma encoding.
	DefaultExposure = fixed.FromInt(2)

	// farClip is practical infinity for 12.12 distances.
	farClip = fixed.FromInt(2000)
	// Reflected rays start this far along the mirror direction.
	reflectBias = fixed.FromFloat(0.01)
)

// Stats counts integrator work since the last ResetStats.
type Stats struct {
	Rays      uint64
	Truncated uint64
}

// Integrator shades rays against a baked scene. It is not safe for
// concurrent use.
type Integrator struct {
	Scene    *scene.Scene
	Exposure fixed.Fixed
	MaxDepth int

	origin     vec.Vec3
	registered bool
	planeCams  []geom.PlaneCamera
	sphereCams []geom.SphereCamera
	stats      Stats
}

// New returns an integrator with the default exposure and depth limit.
func New(s *scene.Scene) *Integrator {
	return &Integrator{Scene: s, Exposure: DefaultExposure, MaxDepth: DefaultMaxDepth}
}

// RegisterCamera caches per-primitive intersection state for rays starting
// at origin. Call it again whenever the camera moves or the scene changes.
func (in *Integrator) RegisterCamera(origin vec.Vec3) {
	in.origin = origin
	in.registered = true
	in.planeCams = in.planeCams[:0]
	for _, p := range in.Scene.Planes {
		in.planeCams = append(in.planeCams, p.RegisterCamera(origin))
	}
	in.sphereCams = in.sphereCams[:0]
	for _, sp := range in.Scene.Spheres {
		in.sphereCams = append(in.sphereCams, sp.RegisterCamera(origin))
	}
}

// ComputeRay returns the exposed radiance seen along r. fromCamera selects
// the cached intersection path; it is ignored unless r starts at the
// registered camera origin.
func (in *Integrator) ComputeRay(r vec.Ray, fromCamera bool) spectrum.Spectrum {
	return in.trace(r, fromCamera, 0).Scale(in.Exposure)
}

// ComputeShading returns the radiance leaving obj at hit toward the origin
// of r. Diffuse surfaces are unexposed; a mirror returns what ComputeRay
// reports for the reflected ray.
func (in *Integrator) ComputeShading(r vec.Ray, hit vec.Vec3, obj geom.Object) spectrum.Spectrum {
	return in.shade(r, hit, obj, 0)
}

// Intersect returns the nearest object along r and its ray parameter, or nil
// when nothing is hit. Planes win ties with spheres.
func (in *Integrator) Intersect(r vec.Ray, fromCamera bool) (geom.Object, fixed.Fixed) {
	fast := fromCamera && in.registered && r.Origin == in.origin &&
		len(in.planeCams) == len(in.Scene.Planes) && len(in.sphereCams) == len(in.Scene.Spheres)

	var nearest geom.Object
	minT := farClip
	for i, p := range in.Scene.Planes {
		var t fixed.Fixed
		if fast {
			t = p.IntersectFast(in.planeCams[i], r)
		} else {
			t = p.Intersect(r)
		}
		if geom.Valid(t) && t < minT {
			nearest, minT = p, t
		}
	}
	for i, sp := range in.Scene.Spheres {
		var t fixed.Fixed
		if fast {
			t = sp.IntersectFast(in.sphereCams[i], r)
		} else {
			t = sp.Intersect(r)
		}
		if geom.Valid(t) && t < minT {
			nearest, minT = sp, t
		}
	}
	return nearest, minT
}

// Stats returns the counters accumulated so far.
func (in *Integrator) Stats() Stats { return in.stats }

// ResetStats zeroes the counters.
func (in *Integrator) ResetStats() { in.stats = Stats{} }

func (in *Integrator) trace(r vec.Ray, fromCamera bool, depth int) spectrum.Spectrum {
	in.stats.Rays++
	obj, t := in.Intersect(r, fromCamera)
	if obj == nil {
		return spectrum.Spectrum{}
	}
	return in.shade(r, r.At(t), obj, depth)
}

func (in *Integrator) shade(r vec.Ray, hit vec.Vec3, obj geom.Object, depth int) spectrum.Spectrum {
	switch o := obj.(type) {
	case *geom.Plane:
		return in.shadePlane(hit, o)
	case *geom.Sphere:
		return in.shadeSphere(r, hit, o, depth)
	}
	return spectrum.Spectrum{}
}

func (in *Integrator) shadePlane(hit vec.Vec3, p *geom.Plane) spectrum.Spectrum {
	local := hit.Sub(p.Point)
	c := p.Lightmap.Sample(local, p.Normal)

	if !in.Scene.Shadowed(hit) {
		c = c.Add(p.Albedo.Scale(lambert(p.Normal, in.Scene.Light.Sub(hit))))
	}

	// Swap the flat albedo for the texture's albedo at this point.
	if p.Texture != nil {
		c = c.Div(p.Albedo).Mul(spectrum.FromColor(p.Texture.Sample(local, p.Normal)))
	}
	return c
}

func (in *Integrator) shadeSphere(r vec.Ray, hit vec.Vec3, s *geom.Sphere, depth int) spectrum.Spectrum {
	n := s.Normal(hit)

	if s.Reflective {
		if depth >= in.MaxDepth {
			in.stats.Truncated++
			return spectrum.Spectrum{}
		}
		refl := r.Dir.Sub(n.Scale(fixed.Two.Mul(vec.Dot(r.Dir, n))))
		next := vec.Ray{Origin: hit.Add(refl.Scale(reflectBias)), Dir: refl}
		// The mirror shows the reflected ray's exposed color.
		return in.trace(next, false, depth+1).Scale(in.Exposure)
	}

	c := s.Lightmap.SampleSphere(n).Add(spectrum.Gray(lambert(n, in.Scene.Light.Sub(hit))))
	if s.Texture != nil {
		c = c.Mul(spectrum.FromColor(s.Texture.SampleSphere(n)))
	}
	return c
}

// lambert returns cosθ/d² for an unnormalized direction to the light,
// clamped to [0, 1].
func lambert(n, toLight vec.Vec3) fixed.Fixed {
	return fixed.Clamp01(fixed.Div(vec.Dot(n, toLight), toLight.Norm().Mul(toLight.NormSquared())))
}
