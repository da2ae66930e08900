package spectrum

import (
	"testing"

	"glint/internal/lutgen"
	"glint/rt/color"
	"glint/rt/fixed"
)

func TestTablesMatchClosedForm(t *testing.T) {
	g := lutgen.Gamma(256)
	for i, v := range GammaLUT {
		if v != g[i] {
			t.Errorf("GammaLUT[%d]=%d, want %d", i, v, g[i])
		}
	}
	d := lutgen.Gamma(32)
	for i, v := range DegammaLUT {
		if v != d[i] {
			t.Errorf("DegammaLUT[%d]=%d, want %d", i, v, d[i])
		}
		if v != GammaLUT[8*i] {
			t.Errorf("DegammaLUT[%d]=%d, GammaLUT[%d]=%d", i, v, 8*i, GammaLUT[8*i])
		}
	}
	for i := 1; i < len(GammaLUT); i++ {
		if GammaLUT[i] < GammaLUT[i-1] {
			t.Fatalf("GammaLUT not monotonic at %d", i)
		}
	}
}

func TestGammaFloorSearch(t *testing.T) {
	cases := []struct {
		n    int32
		want uint8
	}{
		{-100, 0},
		{0, 4},
		{1, 6},
		{2, 8},
		{19681, 254},
		{19682, 255},
		{1 << 20, 255},
	}
	for _, c := range cases {
		if got := Gamma(fixed.FromRaw(c.n)); got != c.want {
			t.Errorf("Gamma(%d)=%d, want %d", c.n, got, c.want)
		}
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	for v := uint8(0); v < 32; v++ {
		c := color.RGB(v, 31-v, v/2)
		var res color.Color24
		if got := FromColor(c).ToColor24().ToColor16(&res); got != c {
			t.Errorf("round trip of %#04x gave %#04x", uint16(c), uint16(got))
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := Spectrum{fixed.One, fixed.Half, 0}
	if got := a.Add(a); got != (Spectrum{fixed.Two, fixed.One, 0}) {
		t.Fatalf("Add=%v", got)
	}
	if got := a.Scale(fixed.Half); got != (Spectrum{fixed.Half, fixed.FromFloat(0.25), 0}) {
		t.Fatalf("Scale=%v", got)
	}
	if got := a.Mul(Gray(fixed.Two)); got != (Spectrum{fixed.Two, fixed.One, 0}) {
		t.Fatalf("Mul=%v", got)
	}
	if got := a.Div(Gray(fixed.Two)); got != (Spectrum{fixed.Half, fixed.FromFloat(0.25), 0}) {
		t.Fatalf("Div=%v", got)
	}
}

func TestLerp(t *testing.T) {
	a := Gray(0)
	b := Gray(fixed.FromInt(31))
	if Lerp(a, b, 0) != a || Lerp(a, b, color.LerpMask) != b {
		t.Fatal("Lerp endpoints")
	}
	if got := Lerp(a, b, 1); got != Gray(fixed.One) {
		t.Fatalf("Lerp(t=1)=%v", got)
	}
	if got := Bilinear(a, b, a, b, color.LerpMask, 7); got != b {
		t.Fatalf("Bilinear=%v", got)
	}
}
