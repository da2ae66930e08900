// Package color defines the 16-bit display color and the 24-bit staging color
// used to dither rendered output down to it.
//
// A Color packs three 5-bit channels as r<<11 | g<<6 | b; bit 5 is unused.
package color

const (
	Bits = 5
	Mask = 1<<Bits - 1

	LerpBits   = 5
	LerpMask   = 1<<LerpBits - 1
	LerpCenter = 1 << (LerpBits - 1)
)

// Color is a packed display color.
type Color uint16

// RGB packs 5-bit channels. Inputs are masked to 5 bits.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r&Mask)<<11 | uint16(g&Mask)<<6 | uint16(b&Mask))
}

var (
	Black = RGB(0, 0, 0)
	Grey  = RGB(16, 16, 16)
	White = RGB(31, 31, 31)
	Red   = RGB(31, 0, 0)
	Green = RGB(0, 31, 0)
	Blue  = RGB(0, 0, 31)
)

func (c Color) R() uint8 { return uint8(c>>11) & Mask }
func (c Color) G() uint8 { return uint8(c>>6) & Mask }
func (c Color) B() uint8 { return uint8(c) & Mask }

// RGB565 repacks c for panels that expect 5-6-5 pixels.
func (c Color) RGB565() uint16 {
	g := uint16(c.G())
	return uint16(c.R())<<11 | (g<<1|g>>4)<<5 | uint16(c.B())
}

// RGB888 expands c to 8 bits per channel.
func (c Color) RGB888() (r, g, b uint8) {
	return expand5(c.R()), expand5(c.G()), expand5(c.B())
}

func expand5(v uint8) uint8 { return v<<3 | v>>2 }

// LerpHalf returns the channel-wise midpoint of a and b.
func LerpHalf(a, b Color) Color {
	return RGB((a.R()+b.R())/2, (a.G()+b.G())/2, (a.B()+b.B())/2)
}

// Lerp interpolates from c1 to c2; t runs from 0 to LerpMask.
func Lerp(c1, c2 Color, t uint8) Color {
	return RGB(
		lerpChannel(c1.R(), c2.R(), t),
		lerpChannel(c1.G(), c2.G(), t),
		lerpChannel(c1.B(), c2.B(), t),
	)
}

func lerpChannel(a, b, t uint8) uint8 {
	return uint8(int(a) + (int(b)-int(a))*int(t)/LerpMask)
}

// Bilinear blends a 2x2 neighbourhood: first along x between the 0 and 1
// columns, then along y.
func Bilinear(tex00, tex10, tex01, tex11 Color, subX, subY uint8) Color {
	return Lerp(Lerp(tex00, tex10, subX), Lerp(tex01, tex11, subX), subY)
}

// Color24 is an 8-bit-per-channel color used before quantization.
type Color24 struct {
	R, G, B uint8
}

// Add adds o to c, saturating each channel at 255.
func (c *Color24) Add(o Color24) {
	c.R = addSat(c.R, o.R)
	c.G = addSat(c.G, o.G)
	c.B = addSat(c.B, o.B)
}

func addSat(a, b uint8) uint8 {
	s := a + b
	if s < b {
		return 255
	}
	return s
}

// ToColor16 truncates each channel to 5 bits and stores the dropped low bits
// in residual.
func (c Color24) ToColor16(residual *Color24) Color {
	residual.R = c.R & 7
	residual.G = c.G & 7
	residual.B = c.B & 7
	return RGB(c.R>>3, c.G>>3, c.B>>3)
}

// Dither carries truncation error from one pixel to the next along a
// scanline. Reset it at the start of every row.
type Dither struct {
	residual Color24
}

func (d *Dither) Reset() { d.residual = Color24{} }

// Quantize folds the pending residual into c and returns the display color.
func (d *Dither) Quantize(c Color24) Color {
	c.Add(d.residual)
	return c.ToColor16(&d.residual)
}
