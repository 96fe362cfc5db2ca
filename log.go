package algocomplex

import "github.com/cwbudde/algo-complex/internal/scalar"

// Log returns the principal branch of the natural logarithm of z, with the
// branch cut along the negative real axis. The logarithm of zero and of the
// point at infinity is the point at infinity (the phase is undefined at
// both, so there is nothing finer to report).
func Log[T Float](z Complex[T]) Complex[T] {
	if !z.IsFinite() || z.IsZero() {
		return Infinity[T]()
	}
	theta := z.Phase()
	// log|z| = log(x*x + y*y)/2 whenever that sum stays normal.
	lenSq := z.LengthSquared()
	if scalar.IsNormal(lenSq) {
		return New(scalar.Log(lenSq)/2, theta)
	}
	// Badly scaled: take out the infinity-norm first and recombine the
	// logarithms additively. z/m has components in [..1], so its squared
	// length cannot overflow or vanish.
	m := z.Magnitude()
	return New(scalar.Log(m)+scalar.Log(z.DivReal(m).LengthSquared())/2, theta)
}

// Log1p returns log(1 + z), accurate near z = 0 where forming 1+z first
// would lose the low-order bits of z.
//
// The real part uses log|1+z| = log1p(2x + x*x + y*y)/2, accumulating the
// larger of the two squares through a fused multiply-add so the
// near-cancellation against 2x close to the unit circle about -1 is resolved
// at full precision. The imaginary part needs no special casing.
func Log1p[T Float](z Complex[T]) Complex[T] {
	theta := scalar.Atan2(z.y, 1+z.x)
	var u T
	if scalar.Abs(z.x) >= scalar.Abs(z.y) {
		u = scalar.FMA(z.x, z.x, 2*z.x) + z.y*z.y
	} else {
		u = scalar.FMA(z.y, z.y, 2*z.x) + z.x*z.x
	}
	if !scalar.IsFinite(u) {
		return Log(z.Add(One[T]()))
	}
	return New(scalar.Log1p(u)/2, theta)
}
