package lightmap

import (
	"glint/rt/color"
	"glint/rt/vec"
)

// MaxTextureBits bounds textures to 256x256 texels.
const MaxTextureBits = 8

// Texture is a square display-color image addressed like a lightmap.
// Pix is stored column-major: texel (x, y) is Pix[x<<Bits | y].
type Texture struct {
	Bits uint
	Pix  []color.Color
}

// NewTexture allocates a black texture with 1<<bits texels per side.
func NewTexture(bits uint) *Texture {
	n := 1 << bits
	return &Texture{Bits: bits, Pix: make([]color.Color, n*n)}
}

// Size returns the number of texels per side.
func (t *Texture) Size() int { return 1 << t.Bits }

func (t *Texture) At(x, y int) color.Color      { return t.Pix[x<<t.Bits|y] }
func (t *Texture) Set(x, y int, c color.Color) { t.Pix[x<<t.Bits|y] = c }

// Sample interpolates the texture at pos relative to the plane's origin
// corner, using the same axis selection as Lightmap.Sample.
func (t *Texture) Sample(pos, normal vec.Vec3) color.Color {
	u, v := planarCoords(pos, normal)
	return t.sample(locate(u, v, t.Bits))
}

// SampleSphere interpolates the texture in the direction of a unit normal.
func (t *Texture) SampleSphere(normal vec.Vec3) color.Color {
	u, v := sphereCoords(normal)
	return t.sample(locate(u, v, t.Bits))
}

func (t *Texture) sample(l texel) color.Color {
	return color.Bilinear(t.At(l.x0, l.y0), t.At(l.x1, l.y0), t.At(l.x0, l.y1), t.At(l.x1, l.y1), l.subX, l.subY)
}
