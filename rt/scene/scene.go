// Package scene assembles planes, spheres and the point light into the
// context consumed by the radiosity solver and the shading integrator.
//
// The renderer relies on a few scene-wide simplifications: planes are
// axis-aligned 2x2 segments that never occlude one another, only spheres cast
// shadows, and there is exactly one point light.
package scene

import (
	"errors"
	"fmt"

	"glint/rt/geom"
	"glint/rt/vec"
)

var (
	ErrObliquePlane = errors.New("scene: plane normal must be a unit axis vector")
	ErrBadRadius    = errors.New("scene: sphere radius must be positive")
	ErrBadColor     = errors.New("scene: color channel exceeds 31")
)

// Scene is the renderable world.
type Scene struct {
	Planes  []*geom.Plane
	Spheres []*geom.Sphere
	Light   vec.Vec3
}

// Validate checks the geometric assumptions the renderer depends on.
func (s *Scene) Validate() error {
	for i, p := range s.Planes {
		if !p.AxisAligned() {
			return fmt.Errorf("plane %d: %w", i, ErrObliquePlane)
		}
	}
	for i, sp := range s.Spheres {
		if sp.Radius <= 0 {
			return fmt.Errorf("sphere %d: %w", i, ErrBadRadius)
		}
	}
	return nil
}

// Shadowed reports whether any sphere blocks the segment from a surface
// point to the light.
func (s *Scene) Shadowed(from vec.Vec3) bool {
	for _, sp := range s.Spheres {
		if sp.ShadowIntersect(from, s.Light) {
			return true
		}
	}
	return false
}
