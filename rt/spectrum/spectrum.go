// Package spectrum holds linear-light RGB radiance in fixed point and the
// gamma tables that map it to and from display colors.
package spectrum

import (
	"sort"

	"glint/rt/color"
	"glint/rt/fixed"
)

// Spectrum is linear RGB radiance. Channels are normally non-negative.
type Spectrum struct {
	R, G, B fixed.Fixed
}

// Gray returns a spectrum with all channels set to f.
func Gray(f fixed.Fixed) Spectrum { return Spectrum{f, f, f} }

// FromColor converts a display color to linear light.
func FromColor(c color.Color) Spectrum {
	return Spectrum{
		R: fixed.FromRaw(DegammaLUT[c.R()]),
		G: fixed.FromRaw(DegammaLUT[c.G()]),
		B: fixed.FromRaw(DegammaLUT[c.B()]),
	}
}

// Gamma maps linear light to an 8-bit display level: the largest index whose
// GammaLUT entry does not exceed x, or 0 when x is below every entry.
func Gamma(x fixed.Fixed) uint8 {
	n := x.Raw()
	i := sort.Search(len(GammaLUT), func(i int) bool { return GammaLUT[i] > n })
	if i == 0 {
		return 0
	}
	return uint8(i - 1)
}

// ToColor24 gamma-encodes each channel.
func (s Spectrum) ToColor24() color.Color24 {
	return color.Color24{R: Gamma(s.R), G: Gamma(s.G), B: Gamma(s.B)}
}

func (s Spectrum) Add(o Spectrum) Spectrum { return Spectrum{s.R + o.R, s.G + o.G, s.B + o.B} }

// Scale multiplies every channel by f.
func (s Spectrum) Scale(f fixed.Fixed) Spectrum {
	return Spectrum{s.R.Mul(f), s.G.Mul(f), s.B.Mul(f)}
}

// Mul multiplies channel-wise.
func (s Spectrum) Mul(o Spectrum) Spectrum {
	return Spectrum{s.R.Mul(o.R), s.G.Mul(o.G), s.B.Mul(o.B)}
}

// Div divides channel-wise.
func (s Spectrum) Div(o Spectrum) Spectrum {
	return Spectrum{fixed.Div(s.R, o.R), fixed.Div(s.G, o.G), fixed.Div(s.B, o.B)}
}

// Lerp interpolates from c1 to c2; t runs from 0 to color.LerpMask.
func Lerp(c1, c2 Spectrum, t uint8) Spectrum {
	return Spectrum{
		R: lerpChannel(c1.R, c2.R, t),
		G: lerpChannel(c1.G, c2.G, t),
		B: lerpChannel(c1.B, c2.B, t),
	}
}

func lerpChannel(a, b fixed.Fixed, t uint8) fixed.Fixed {
	return a + fixed.Fixed(int64(b-a)*int64(t)/color.LerpMask)
}

// Bilinear blends a 2x2 neighbourhood, first along x then along y.
func Bilinear(tex00, tex10, tex01, tex11 Spectrum, subX, subY uint8) Spectrum {
	return Lerp(Lerp(tex00, tex10, subX), Lerp(tex01, tex11, subX), subY)
}
