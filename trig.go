package algocomplex

import "github.com/cwbudde/algo-complex/internal/scalar"

// mulI returns i*z by component swap, avoiding a complex multiplication.
func mulI[T Float](z Complex[T]) Complex[T] {
	return Complex[T]{x: -z.y, y: z.x}
}

// mulMinusI returns -i*z by component swap.
func mulMinusI[T Float](z Complex[T]) Complex[T] {
	return Complex[T]{x: z.y, y: -z.x}
}

// coshSaturationBound is the |x| beyond which cosh(x) and sinh(x) agree to
// within one ulp, so both reduce to exp(|x|)/2.
func coshSaturationBound[T Float]() T {
	return -scalar.Log(scalar.UlpOfOne[T]())
}

// Cosh returns the hyperbolic cosine of z.
func Cosh[T Float](z Complex[T]) Complex[T] {
	if !z.IsFinite() {
		return Infinity[T]()
	}
	if !(scalar.Abs(z.x) < coshSaturationBound[T]()) {
		// cosh(x) == sinh(x) == exp(|x|)/2 to within an ulp here; split
		// the scale in two so the phase product cannot overflow
		// prematurely. cosh(-x+iy) = conj(cosh(x+iy)).
		phase := New(scalar.Cos(z.y), scalar.Sin(z.y))
		if z.x < 0 {
			phase = phase.Conj()
		}
		firstScale := scalar.Exp(scalar.Abs(z.x) / 2)
		secondScale := firstScale / 2
		return phase.MulReal(firstScale).MulReal(secondScale)
	}
	return New(
		scalar.Cosh(z.x)*scalar.Cos(z.y),
		scalar.Sinh(z.x)*scalar.Sin(z.y),
	)
}

// Sinh returns the hyperbolic sine of z.
func Sinh[T Float](z Complex[T]) Complex[T] {
	if !z.IsFinite() {
		return Infinity[T]()
	}
	if !(scalar.Abs(z.x) < coshSaturationBound[T]()) {
		// sinh is odd: sinh(-x+iy) = -sinh(x-iy).
		phase := New(scalar.Cos(z.y), scalar.Sin(z.y))
		if z.x < 0 {
			phase = phase.Conj().Neg()
		}
		firstScale := scalar.Exp(scalar.Abs(z.x) / 2)
		secondScale := firstScale / 2
		return phase.MulReal(firstScale).MulReal(secondScale)
	}
	return New(
		scalar.Sinh(z.x)*scalar.Cos(z.y),
		scalar.Cosh(z.x)*scalar.Sin(z.y),
	)
}

// Tanh returns the hyperbolic tangent of z.
func Tanh[T Float](z Complex[T]) Complex[T] {
	if !z.IsFinite() {
		return Infinity[T]()
	}
	// Once sinh and cosh saturate to the same magnitude the quotient is
	// exactly +-1 with the imaginary part's sign carried on a zero.
	if !(scalar.Abs(z.x) < coshSaturationBound[T]()) {
		return New(scalar.Copysign(1, z.x), scalar.Copysign(0, z.y))
	}
	return Sinh(z).Div(Cosh(z))
}

// Cos returns the cosine of z, via cos(z) = cosh(iz).
func Cos[T Float](z Complex[T]) Complex[T] {
	return Cosh(mulI(z))
}

// Sin returns the sine of z, via sin(z) = -i*sinh(iz).
func Sin[T Float](z Complex[T]) Complex[T] {
	return mulMinusI(Sinh(mulI(z)))
}

// Tan returns the tangent of z, via tan(z) = -i*tanh(iz).
func Tan[T Float](z Complex[T]) Complex[T] {
	return mulMinusI(Tanh(mulI(z)))
}
