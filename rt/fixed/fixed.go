// Package fixed implements the signed 12.12 fixed-point scalar used by the
// renderer.
//
// A Fixed carries 12 fractional bits in an int32. Values are expected to stay
// within ±2048 (the range of a 24-bit register); intermediate products are
// widened to 64 bits and shifted back, so overflow past that range is not
// wrapped but simply grows into the upper byte.
package fixed

import (
	"fmt"
	"math/bits"
)

// Shift is the number of fractional bits.
const Shift = 12

const (
	One  Fixed = 1 << Shift
	Half Fixed = One >> 1
	Two  Fixed = One << 1

	// recipNumerator is 1.0 squared in raw units; dividing it by a raw value
	// yields that value's reciprocal.
	recipNumerator = 1 << (2 * Shift)
)

// Fixed is a signed 12.12 fixed-point number.
type Fixed int32

// FromInt converts an integer.
func FromInt(n int) Fixed { return Fixed(int32(n) << Shift) }

// FromFloat converts a float, truncating toward zero.
func FromFloat(f float32) Fixed { return Fixed(int32(f * float32(One))) }

// FromRaw wraps a raw 12.12 value.
func FromRaw(n int32) Fixed { return Fixed(n) }

// Raw returns the underlying 12.12 bits.
func (f Fixed) Raw() int32 { return int32(f) }

// Float is intended for tools and tests; the renderer never calls it.
func (f Fixed) Float() float64 { return float64(f) / float64(One) }

// Floor returns the integer part, rounding toward negative infinity.
func (f Fixed) Floor() int32 { return int32(f) >> Shift }

// FloorBits returns floor(f * 2^digits), keeping digits fractional bits as
// integer bits.
func (f Fixed) FloorBits(digits uint) int32 { return int32(f) >> (Shift - digits) }

// Mul returns f*g.
func (f Fixed) Mul(g Fixed) Fixed {
	return Fixed((int64(f) * int64(g)) >> Shift)
}

// Sqr returns f*f.
func Sqr(f Fixed) Fixed {
	a := uint64(abs(int32(f)))
	return Fixed((a * a) >> Shift)
}

// Sqrt returns the square root of f, or 0 when f is not positive.
func Sqrt(f Fixed) Fixed {
	if f <= 0 {
		return 0
	}
	return Fixed(isqrt(uint64(f) << Shift))
}

// Recip returns 1/f. A zero divisor is treated as the smallest positive
// value, so the result saturates instead of faulting.
func Recip(f Fixed) Fixed {
	if f == 0 {
		return Fixed(recipNumerator)
	}
	return Fixed(int32(recipNumerator) / int32(f))
}

// Div returns a/b, computed as a times the reciprocal of b.
func Div(a, b Fixed) Fixed { return a.Mul(Recip(b)) }

// Asin returns arcsin(x)/(π/2), read from AsinLUT at 1/32 resolution.
func Asin(x Fixed) Fixed {
	i := (x + One).FloorBits(5)
	if i < 0 {
		i = 0
	} else if i >= int32(len(AsinLUT)) {
		i = int32(len(AsinLUT)) - 1
	}
	return Fixed(AsinLUT[i])
}

// Atan2 returns the angle of the vector (x, y) from the +x axis divided by
// π, in [0, 2]. Angles with y <= 0 land in the upper half of that range.
func Atan2(x, y Fixed) Fixed {
	rad := Sqrt(Sqr(x) + Sqr(y))
	nx := Clamp(Div(x, rad), -One, One)
	a := (One + Asin(-nx)) >> 1
	if y > 0 {
		return a
	}
	return Two - a
}

// Clamp limits f to [lo, hi].
func Clamp(f, lo, hi Fixed) Fixed {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// Clamp01 limits f to [0, 1].
func Clamp01(f Fixed) Fixed { return Clamp(f, 0, One) }

// Clamp0 limits f to [0, +inf).
func Clamp0(f Fixed) Fixed {
	if f < 0 {
		return 0
	}
	return f
}

// String prints the value as 24-bit hex with the point after the integer
// nibbles, e.g. "001.800" for 1.5.
func (f Fixed) String() string {
	u := uint32(f) & 0xFFFFFF
	return fmt.Sprintf("%03X.%03X", u>>Shift, u&(1<<Shift-1))
}

func abs(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

// isqrt returns floor(sqrt(n)) by Newton iteration from above.
func isqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	r := uint64(1) << ((bits.Len64(n) + 1) / 2)
	for {
		s := (r + n/r) >> 1
		if s >= r {
			return r
		}
		r = s
	}
}
