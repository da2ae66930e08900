package geom

import (
	"glint/rt/fixed"
	"glint/rt/lightmap"
	"glint/rt/vec"
)

// Sphere is a mirror or diffuse ball. Only the near root of the quadratic is
// used, so rays must start outside the sphere.
type Sphere struct {
	Center     vec.Vec3
	Radius     fixed.Fixed
	Reflective bool
	Texture    *lightmap.Texture
	Lightmap   lightmap.Lightmap
}

// SphereCamera caches the direction-independent part of the intersection
// for rays leaving Origin.
type SphereCamera struct {
	Origin vec.Vec3
	Offset vec.Vec3
	C      fixed.Fixed
}

// RegisterCamera precomputes intersection state for rays from origin.
func (s *Sphere) RegisterCamera(origin vec.Vec3) SphereCamera {
	off := origin.Sub(s.Center)
	return SphereCamera{
		Origin: origin,
		Offset: off,
		C:      off.NormSquared() - fixed.Sqr(s.Radius),
	}
}

// IntersectFast intersects a ray that starts at cam.Origin.
func (s *Sphere) IntersectFast(cam SphereCamera, r vec.Ray) fixed.Fixed {
	return nearRoot(r.Dir.NormSquared(), vec.Dot(cam.Offset, r.Dir), cam.C)
}

// Intersect intersects an arbitrary ray.
func (s *Sphere) Intersect(r vec.Ray) fixed.Fixed {
	off := r.Origin.Sub(s.Center)
	return nearRoot(r.Dir.NormSquared(), vec.Dot(off, r.Dir), off.NormSquared()-fixed.Sqr(s.Radius))
}

// ShadowIntersect reports whether the segment from origin to light enters
// the sphere before reaching light. origin must lie outside the sphere.
func (s *Sphere) ShadowIntersect(origin, light vec.Vec3) bool {
	dir := light.Sub(origin)
	off := origin.Sub(s.Center)
	a := dir.NormSquared()
	b2 := vec.Dot(off, dir)
	d := fixed.Sqr(b2) - a.Mul(off.NormSquared()-fixed.Sqr(s.Radius))
	if d < 0 {
		return false
	}
	// t < 1 without the division: -b - sqrt(d) < a.
	return -b2-fixed.Sqrt(d) < a
}

// Normal returns the unit surface normal at a point on the sphere.
func (s *Sphere) Normal(hit vec.Vec3) vec.Vec3 {
	n := hit.Sub(s.Center)
	return vec.Vec3{
		X: fixed.Div(n.X, s.Radius),
		Y: fixed.Div(n.Y, s.Radius),
		Z: fixed.Div(n.Z, s.Radius),
	}
}

// nearRoot solves a·t² + 2·b2·t + c = 0 for the smaller root.
func nearRoot(a, b2, c fixed.Fixed) fixed.Fixed {
	d := fixed.Sqr(b2) - a.Mul(c)
	if d < 0 {
		return NoHit
	}
	return fixed.Div(-b2-fixed.Sqrt(d), a)
}
