package algocomplex

import "github.com/cwbudde/algo-complex/internal/scalar"

// expOverflowBound is the largest real part for which exp can be evaluated
// naively: beyond log(MaxFinite), exp(x) itself overflows even when the
// final result is representable because the phase factor shrinks it.
func expOverflowBound[T Float]() T {
	return scalar.Log(scalar.MaxFinite[T]())
}

// Exp returns e**z.
//
// Exp of any non-finite value is the point at infinity: exp has an essential
// singularity at infinity, so there is no better answer even for
// z = (-Inf, 0), where the naive real formula would give zero.
func Exp[T Float](z Complex[T]) Complex[T] {
	if !z.IsFinite() {
		return Infinity[T]()
	}
	// If exp(x) overflows but exp(x)*cos(y) or exp(x)*sin(y) might not,
	// scale by exp(x/2) twice so no intermediate overflows prematurely.
	if !(z.x < expOverflowBound[T]()) {
		phase := New(scalar.Cos(z.y), scalar.Sin(z.y))
		halfScale := scalar.Exp(z.x / 2)
		return phase.MulReal(halfScale).MulReal(halfScale)
	}
	return New(scalar.Cos(z.y), scalar.Sin(z.y)).MulReal(scalar.Exp(z.x))
}

// ExpMinusOne returns e**z - 1, accurate near z = 0 where Exp(z).Sub(One())
// would cancel catastrophically.
func ExpMinusOne[T Float](z Complex[T]) Complex[T] {
	if !z.IsFinite() {
		return Infinity[T]()
	}
	// Far from zero the subtraction is harmless; reuse the overflow-safe
	// scaling, where the -1 is negligible anyway.
	if !(z.x < expOverflowBound[T]()) {
		phase := New(scalar.Cos(z.y), scalar.Sin(z.y))
		halfScale := scalar.Exp(z.x / 2)
		return phase.MulReal(halfScale).MulReal(halfScale)
	}
	// exp(z) - 1 = (expm1(x)*cos(y) + cosm1(y)) + i*exp(x)*sin(y).
	// The fused multiply-add keeps the real part accurate when the two
	// terms nearly cancel.
	return New(
		scalar.FMA(scalar.ExpMinusOne(z.x), scalar.Cos(z.y), cosMinusOne(z.y)),
		scalar.Exp(z.x)*scalar.Sin(z.y),
	)
}

// cosMinusOne returns cos(y) - 1 without the cancellation of the naive form
// near y = 0, via cos(y) - 1 = -2*sin(y/2)^2.
func cosMinusOne[T Float](y T) T {
	s := scalar.Sin(y / 2)
	return -2 * s * s
}
