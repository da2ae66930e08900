package vec

import (
	"testing"

	"glint/rt/fixed"
)

func TestDotCross(t *testing.T) {
	x := Ints(1, 0, 0)
	y := Ints(0, 1, 0)
	if got := Cross(x, y); got != Ints(0, 0, 1) {
		t.Fatalf("x cross y = %v", got)
	}
	if got := Dot(Ints(1, 2, 3), Ints(4, -5, 6)); got != fixed.FromInt(12) {
		t.Fatalf("dot=%v, want 12", got)
	}
}

func TestNorm(t *testing.T) {
	v := Ints(2, 3, 6)
	if got := v.NormSquared(); got != fixed.FromInt(49) {
		t.Fatalf("NormSquared=%v", got)
	}
	if got := v.Norm(); got != fixed.FromInt(7) {
		t.Fatalf("Norm=%v", got)
	}
}

func TestArithmetic(t *testing.T) {
	a := Floats(0.5, -1, 2)
	if got := a.Add(a).Sub(a); got != a {
		t.Fatalf("a+a-a=%v", got)
	}
	if got := a.Scale(fixed.FromInt(2)); got != Ints(1, -2, 4) {
		t.Fatalf("Scale=%v", got)
	}
	if got := a.Mul(Ints(2, 3, -1)); got != Ints(1, -3, -2) {
		t.Fatalf("Mul=%v", got)
	}
	if got := a.AddScalar(fixed.Half); got != Floats(1, -0.5, 2.5) {
		t.Fatalf("AddScalar=%v", got)
	}
	if got := a.Neg(); got != Floats(-0.5, 1, -2) {
		t.Fatalf("Neg=%v", got)
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: Ints(0, 0, 1), Dir: Ints(0, 1, 2)}
	if got := r.At(fixed.FromFloat(1.5)); got != Floats(0, 1.5, 4) {
		t.Fatalf("At(1.5)=%v", got)
	}
}
