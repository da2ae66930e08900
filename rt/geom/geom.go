// Package geom implements the scene primitives and their ray intersections.
//
// Every intersection returns a ray parameter t. Misses return NoHit; callers
// accept a hit only when Valid(t) holds, which also rejects hits at the ray
// origin.
package geom

import "glint/rt/fixed"

// NoHit is the miss sentinel.
var NoHit = fixed.FromInt(-1)

// Valid reports whether t is a usable forward hit.
func Valid(t fixed.Fixed) bool { return t.Raw() > 1 }

// Object is a scene primitive: either *Plane or *Sphere.
type Object interface {
	isObject()
}

func (*Plane) isObject()  {}
func (*Sphere) isObject() {}
