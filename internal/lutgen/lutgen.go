// Package lutgen computes the renderer's lookup tables from their closed
// forms. The renderer embeds the results; cmd/mklut and the table tests use
// this package to regenerate and verify them.
package lutgen

import "math"

const one = 4096

// Gamma returns n entries of trunc(-ln(1 - (i/n)^2.1) * 4096).
func Gamma(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = gammaAt(float64(i) / float64(n))
	}
	return out
}

func gammaAt(x float64) int32 {
	return int32(-math.Log(1-math.Pow(x, 2.1)) * one)
}

// Asin returns trunc(asin(i/32 - 1) / (π/2) * 4096) for i in [0, 64].
func Asin() []int32 {
	out := make([]int32, 65)
	for i := range out {
		out[i] = int32(math.Asin(float64(i)/32-1) / (math.Pi / 2) * one)
	}
	return out
}

// Ring returns the cosines and sines of n angles evenly spaced around a
// circle, each offset by half a step.
func Ring(n int) (cos, sin []int32) {
	cos = make([]int32, n)
	sin = make([]int32, n)
	for i := 0; i < n; i++ {
		a := math.Pi * float64(2*i+1) / float64(n)
		cos[i] = int32(math.Cos(a) * one)
		sin[i] = int32(math.Sin(a) * one)
	}
	return cos, sin
}

// Elevation returns n latitude bands from the south pole to the north pole,
// as heights (-cos) and ring radii (sin), each band centered in its slice.
func Elevation(n int) (height, radius []int32) {
	height = make([]int32, n)
	radius = make([]int32, n)
	for i := 0; i < n; i++ {
		a := math.Pi * float64(2*i+1) / float64(2*n)
		height[i] = int32(-math.Cos(a) * one)
		radius[i] = int32(math.Sin(a) * one)
	}
	return height, radius
}
