package algocomplex

import "github.com/cwbudde/algo-complex/internal/scalar"

// Sqrt returns the principal branch of the square root of z, with
// non-negative real part and the branch cut along the negative real axis.
func Sqrt[T Float](z Complex[T]) Complex[T] {
	lenSq := z.LengthSquared()
	if scalar.IsNormal(lenSq) {
		// u = sqrt((|z| + |x|)/2) is the larger-magnitude component of
		// the result; the smaller one follows from u*v = y/2. Selecting
		// by the sign of x keeps the principal branch.
		norm := scalar.Sqrt(lenSq)
		u := scalar.Sqrt((norm + scalar.Abs(z.x)) / 2)
		v := z.y / (2 * u)
		if z.x >= 0 {
			return New(u, v)
		}
		return New(scalar.Abs(v), scalar.Copysign(u, z.y))
	}
	if z.IsZero() {
		return New(0, z.y)
	}
	if !z.IsFinite() {
		return Infinity[T]()
	}
	// Badly scaled: pull out the infinity-norm and recurse; the scaled
	// argument has a normal squared length.
	scale := z.Magnitude()
	return Sqrt(z.DivReal(scale)).MulReal(scalar.Sqrt(scale))
}

// Pow returns z raised to the complex power w, as exp(w * log(z)).
func Pow[T Float](z, w Complex[T]) Complex[T] {
	return Exp(w.Mul(Log(z)))
}

// PowN returns z raised to the integer power n, as exp(log(z)*n). The zero
// base is short-circuited: 0**n is 0 for positive n, 1 for n == 0 (empty
// product), and the point at infinity for negative n.
func PowN[T Float](z Complex[T], n int) Complex[T] {
	if z.IsZero() {
		switch {
		case n > 0:
			return Zero[T]()
		case n < 0:
			return Infinity[T]()
		default:
			return One[T]()
		}
	}
	return Exp(Log(z).MulReal(T(n)))
}

// Root returns the principal n-th root of z, as exp(log(z)/n). The zero
// radicand is short-circuited to 0 for positive n; for n <= 0 the result is
// the point at infinity, matching the limit of the general formula.
func Root[T Float](z Complex[T], n int) Complex[T] {
	if z.IsZero() {
		if n > 0 {
			return Zero[T]()
		}
		return Infinity[T]()
	}
	return Exp(Log(z).DivReal(T(n)))
}
