package algocomplex

import "github.com/cwbudde/algo-complex/internal/scalar"

// LengthSquared returns x*x + y*y.
//
// This is the cheapest norm-like quantity, but it overflows or underflows
// for badly scaled values whose Length is still representable. Use it only
// when the scale of z is known; otherwise use Length or Magnitude.
func (z Complex[T]) LengthSquared() T {
	return z.x*z.x + z.y*z.y
}

// Length returns the Euclidean norm sqrt(x*x + y*y).
//
// When LengthSquared is normal its square root is exact enough and cheap;
// otherwise a careful fallback guarantees no spurious overflow, so Length is
// finite for every finite z.
func (z Complex[T]) Length() T {
	lenSq := z.LengthSquared()
	if scalar.IsNormal(lenSq) {
		return scalar.Sqrt(lenSq)
	}
	return z.carefulLength()
}

func (z Complex[T]) carefulLength() T {
	if !z.IsFinite() {
		return scalar.Inf[T]()
	}
	if z.IsZero() {
		return 0
	}
	return scalar.Hypot(z.x, z.y)
}

// Phase returns the angle of z in the range [-Pi, Pi]. The phase of zero and
// of the point at infinity is undefined, so it is NaN for both.
func (z Complex[T]) Phase() T {
	if !z.IsFinite() || z.IsZero() {
		return scalar.NaN[T]()
	}
	return scalar.Atan2(z.y, z.x)
}

// Polar returns the Euclidean norm and phase of z.
func (z Complex[T]) Polar() (length, phase T) {
	return z.Length(), z.Phase()
}

// FromPolar returns the complex number with the given Euclidean norm and
// phase. A negative length reflects the point through the origin.
//
// A non-finite phase is meaningful only at the two points with no angle:
// length must then be zero or infinite, and the result is FromReal(length).
// Any other combination is a programmer error and panics.
func FromPolar[T Float](length, phase T) Complex[T] {
	if scalar.IsFinite(phase) {
		return New(scalar.Cos(phase), scalar.Sin(phase)).MulReal(length)
	}
	if !(length == 0 || scalar.IsInf(length)) {
		panic("algocomplex: FromPolar with non-finite phase requires zero or infinite length")
	}
	return FromReal(length)
}
