// Package lightmap stores radiance baked at a small grid of sample points on
// each scene surface, and the display textures sampled with the same
// addressing.
//
// Planar grids cover a 2x2 wall segment and are addressed along the two axes
// perpendicular to the surface normal. Spherical grids are addressed by the
// normal's azimuth and elevation. Grids are indexed [x][y].
package lightmap

import (
	"glint/rt/color"
	"glint/rt/fixed"
	"glint/rt/spectrum"
	"glint/rt/vec"
)

const (
	MapBits = 3
	MapSize = 1 << MapBits
	MapMask = MapSize - 1
	MapHalf = 1 << (MapBits - 1)
)

// Distance between neighbouring planar sample points.
var stepSize = fixed.FromFloat(2.0 / MapSize)

// Grid holds one radiance value per texel.
type Grid [MapSize][MapSize]spectrum.Spectrum

// Lightmap is the per-surface radiosity state.
type Lightmap struct {
	// Bitmap accumulates the indirect radiance that shading samples.
	Bitmap Grid
	// Emissive is the radiance each texel sends out in the current bounce.
	Emissive Grid
	// Emissive2 gathers the radiance each texel receives in the current
	// bounce.
	Emissive2 Grid
}

// Clear zeroes Bitmap.
func (m *Lightmap) Clear() { m.Bitmap = Grid{} }

// Copy adds this bounce's gathered radiance to Bitmap and makes it the
// source for the next bounce.
func (m *Lightmap) Copy() {
	for x := range m.Bitmap {
		for y := range m.Bitmap[x] {
			m.Bitmap[x][y] = m.Bitmap[x][y].Add(m.Emissive2[x][y])
		}
	}
	m.Emissive = m.Emissive2
}

// FromBitmap makes the accumulated radiance the emission source.
func (m *Lightmap) FromBitmap() { m.Emissive = m.Bitmap }

// Sample interpolates Bitmap at pos, given relative to the plane's origin
// corner. normal selects the addressing axes and must be axis-aligned.
func (m *Lightmap) Sample(pos, normal vec.Vec3) spectrum.Spectrum {
	u, v := planarCoords(pos, normal)
	return m.Bitmap.sample(locate(u, v, MapBits))
}

// SampleSphere interpolates Bitmap in the direction of a unit normal.
func (m *Lightmap) SampleSphere(normal vec.Vec3) spectrum.Spectrum {
	u, v := sphereCoords(normal)
	return m.Bitmap.sample(locate(u, v, MapBits))
}

func (g *Grid) sample(t texel) spectrum.Spectrum {
	return spectrum.Bilinear(g[t.x0][t.y0], g[t.x1][t.y0], g[t.x0][t.y1], g[t.x1][t.y1], t.subX, t.subY)
}

// ToTexture quantizes Bitmap to display colors, one texel per entry.
func (m *Lightmap) ToTexture() *Texture {
	t := NewTexture(MapBits)
	for x := 0; x < MapSize; x++ {
		for y := 0; y < MapSize; y++ {
			var residual color.Color24
			t.Set(x, y, m.Bitmap[x][y].ToColor24().ToColor16(&residual))
		}
	}
	return t
}

// SamplePos returns the world position of texel (x, y) on the plane with
// origin corner point and axis-aligned normal. Samples sit at texel centers.
func SamplePos(point, normal vec.Vec3, x, y int) vec.Vec3 {
	stepX, stepY := planarAxes(normal)
	out := point.Add(stepX.Add(stepY).Scale(fixed.Half))
	return out.Add(stepX.Scale(fixed.FromInt(x))).Add(stepY.Scale(fixed.FromInt(y)))
}

// SphereSamplePos returns the unit-sphere position of texel (x, y): x picks
// the azimuth ring slot, y the elevation band.
func SphereSamplePos(x, y int) vec.Vec3 {
	rad := fixed.FromRaw(BandRadius[y])
	return vec.Vec3{
		X: fixed.FromRaw(RingX[x]).Mul(rad),
		Y: fixed.FromRaw(BandHeight[y]),
		Z: fixed.FromRaw(RingZ[x]).Mul(rad),
	}
}

func planarAxes(normal vec.Vec3) (stepX, stepY vec.Vec3) {
	switch {
	case normal.Z != 0:
		return vec.Vec3{X: stepSize}, vec.Vec3{Y: stepSize}
	case normal.Y != 0:
		return vec.Vec3{X: stepSize}, vec.Vec3{Z: stepSize}
	case normal.X != 0:
		return vec.Vec3{Z: stepSize}, vec.Vec3{Y: stepSize}
	}
	return vec.Vec3{}, vec.Vec3{}
}

// planarCoords picks the in-plane coordinates matching planarAxes.
func planarCoords(pos, normal vec.Vec3) (u, v fixed.Fixed) {
	switch {
	case normal.Z != 0:
		return pos.X, pos.Y
	case normal.Y != 0:
		return pos.X, pos.Z
	case normal.X != 0:
		return pos.Z, pos.Y
	}
	return 0, 0
}

// sphereCoords maps a unit normal to azimuth and elevation, both in [0, 2].
func sphereCoords(normal vec.Vec3) (u, v fixed.Fixed) {
	return fixed.Atan2(normal.X, normal.Z), fixed.One + fixed.Asin(normal.Y)
}

// texel is a clamped 2x2 neighbourhood plus the interpolation weights
// inside it.
type texel struct {
	x0, x1, y0, y1 int
	subX, subY     uint8
}

// locate addresses coordinates in [0, 2] on a grid of 1<<bits texels per
// axis. Texel centers sit half a texel in from the grid edge.
func locate(u, v fixed.Fixed, bits uint) texel {
	shift := color.LerpBits + bits - 1
	tu := u.FloorBits(shift) - color.LerpCenter
	tv := v.FloorBits(shift) - color.LerpCenter
	hi := int32(1)<<bits - 1

	ix, iy := tu>>color.LerpBits, tv>>color.LerpBits
	return texel{
		x0:   clampIndex(ix, hi),
		x1:   clampIndex(ix+1, hi),
		y0:   clampIndex(iy, hi),
		y1:   clampIndex(iy+1, hi),
		subX: uint8(tu & color.LerpMask),
		subY: uint8(tv & color.LerpMask),
	}
}

func clampIndex(i, hi int32) int {
	if i < 0 {
		return 0
	}
	if i > hi {
		return int(hi)
	}
	return int(i)
}
