// Package vec provides three-component fixed-point vectors and rays.
package vec

import (
	"fmt"

	"glint/rt/fixed"
)

// Vec3 is a point or direction in scene space.
type Vec3 struct {
	X, Y, Z fixed.Fixed
}

// Ints builds a vector from integer components.
func Ints(x, y, z int) Vec3 {
	return Vec3{fixed.FromInt(x), fixed.FromInt(y), fixed.FromInt(z)}
}

// Floats builds a vector from float components, truncating toward zero.
func Floats(x, y, z float32) Vec3 {
	return Vec3{fixed.FromFloat(x), fixed.FromFloat(y), fixed.FromFloat(z)}
}

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Neg() Vec3       { return Vec3{-a.X, -a.Y, -a.Z} }

// Mul multiplies component-wise.
func (a Vec3) Mul(b Vec3) Vec3 { return Vec3{a.X.Mul(b.X), a.Y.Mul(b.Y), a.Z.Mul(b.Z)} }

// Scale multiplies every component by s.
func (a Vec3) Scale(s fixed.Fixed) Vec3 { return Vec3{a.X.Mul(s), a.Y.Mul(s), a.Z.Mul(s)} }

// AddScalar adds s to every component.
func (a Vec3) AddScalar(s fixed.Fixed) Vec3 { return Vec3{a.X + s, a.Y + s, a.Z + s} }

// SubScalar subtracts s from every component.
func (a Vec3) SubScalar(s fixed.Fixed) Vec3 { return Vec3{a.X - s, a.Y - s, a.Z - s} }

func Dot(a, b Vec3) fixed.Fixed {
	return a.X.Mul(b.X) + a.Y.Mul(b.Y) + a.Z.Mul(b.Z)
}

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y.Mul(b.Z) - a.Z.Mul(b.Y),
		a.Z.Mul(b.X) - a.X.Mul(b.Z),
		a.X.Mul(b.Y) - a.Y.Mul(b.X),
	}
}

// NormSquared returns the squared length.
func (a Vec3) NormSquared() fixed.Fixed {
	return fixed.Sqr(a.X) + fixed.Sqr(a.Y) + fixed.Sqr(a.Z)
}

// Norm returns the length.
func (a Vec3) Norm() fixed.Fixed { return fixed.Sqrt(a.NormSquared()) }

func (a Vec3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", a.X, a.Y, a.Z)
}

// Ray is a half-line. Dir is not required to be unit length.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns Origin + Dir*t.
func (r Ray) At(t fixed.Fixed) Vec3 { return r.Origin.Add(r.Dir.Scale(t)) }
