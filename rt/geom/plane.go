package geom

import (
	"glint/rt/color"
	"glint/rt/fixed"
	"glint/rt/lightmap"
	"glint/rt/spectrum"
	"glint/rt/vec"
)

// Planes are 2x2 wall segments extending from Point along the two axes
// perpendicular to Normal. Hits further than this slack outside the segment's
// bounding cube are rejected.
var (
	boundLo = fixed.FromFloat(-0.01)
	boundHi = fixed.FromFloat(2.01)
)

// Plane is an axis-aligned wall segment.
type Plane struct {
	Point    vec.Vec3
	Normal   vec.Vec3
	Albedo   spectrum.Spectrum
	Texture  *lightmap.Texture
	Lightmap lightmap.Lightmap
}

// NewPlane builds a plane with a display-color albedo. tex may be nil.
func NewPlane(point, normal vec.Vec3, albedo color.Color, tex *lightmap.Texture) *Plane {
	return &Plane{
		Point:   point,
		Normal:  normal,
		Albedo:  spectrum.FromColor(albedo),
		Texture: tex,
	}
}

// PlaneCamera caches the direction-independent part of the intersection for
// rays leaving Origin.
type PlaneCamera struct {
	Origin    vec.Vec3
	Numerator fixed.Fixed
}

// RegisterCamera precomputes intersection state for rays from origin.
func (p *Plane) RegisterCamera(origin vec.Vec3) PlaneCamera {
	return PlaneCamera{
		Origin:    origin,
		Numerator: vec.Dot(p.Point.Sub(origin), p.Normal),
	}
}

// IntersectFast intersects a ray that starts at cam.Origin.
func (p *Plane) IntersectFast(cam PlaneCamera, r vec.Ray) fixed.Fixed {
	return p.bound(r, fixed.Div(cam.Numerator, vec.Dot(r.Dir, p.Normal)))
}

// Intersect intersects an arbitrary ray.
func (p *Plane) Intersect(r vec.Ray) fixed.Fixed {
	num := vec.Dot(p.Point.Sub(r.Origin), p.Normal)
	return p.bound(r, fixed.Div(num, vec.Dot(r.Dir, p.Normal)))
}

func (p *Plane) bound(r vec.Ray, t fixed.Fixed) fixed.Fixed {
	h := r.At(t).Sub(p.Point)
	if h.X > boundHi || h.Y > boundHi || h.Z > boundHi {
		return NoHit
	}
	if h.X < boundLo || h.Y < boundLo || h.Z < boundLo {
		return NoHit
	}
	return t
}

// AxisAligned reports whether Normal has exactly one non-zero component of
// unit length.
func (p *Plane) AxisAligned() bool {
	n := 0
	for _, c := range [3]fixed.Fixed{p.Normal.X, p.Normal.Y, p.Normal.Z} {
		switch c {
		case 0:
		case fixed.One, -fixed.One:
			n++
		default:
			return false
		}
	}
	return n == 1
}
