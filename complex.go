// Package algocomplex provides a complex number value type generic over the
// floating-point type of its components, with total, exception-free
// arithmetic and a full suite of elementary functions.
//
// Arithmetic follows the Riemann sphere model: there is a single point at
// infinity, and every value with an infinite or NaN component belongs to it.
// No operation panics on numeric input; undefined results are the point at
// infinity (or NaN for the phase of zero and infinity, where no angle
// exists). Operations avoid spurious overflow and underflow across the whole
// representable range of the component type.
//
// Basic usage:
//
//	z := algocomplex.New(1.0, 2.0)
//	w := algocomplex.Exp(algocomplex.Log(z)) // approximately z again
package algocomplex

import (
	"fmt"

	"github.com/cwbudde/algo-complex/internal/scalar"
)

// Complex is a complex number with components of type T.
//
// Components are stored exactly as given at construction; RawComponents
// exposes them unmodified. The Real and Imag accessors collapse every
// non-finite value onto the single point at infinity by returning NaN for
// both components.
//
// The zero value of Complex[T] is the complex zero.
type Complex[T Float] struct {
	x T // real-axis component
	y T // imaginary-axis component
}

// New returns the complex number re + im*i.
func New[T Float](re, im T) Complex[T] {
	return Complex[T]{x: re, y: im}
}

// FromReal returns the complex number re + 0i.
func FromReal[T Float](re T) Complex[T] {
	return Complex[T]{x: re}
}

// FromImag returns the purely imaginary complex number 0 + im*i.
func FromImag[T Float](im T) Complex[T] {
	return Complex[T]{y: im}
}

// FromInt returns the complex number n + 0i. The conversion of n rounds if
// n is not representable in T.
func FromInt[T Float](n int) Complex[T] {
	return Complex[T]{x: T(n)}
}

// Zero returns the additive identity, 0 + 0i.
func Zero[T Float]() Complex[T] {
	return Complex[T]{}
}

// One returns the multiplicative identity, 1 + 0i.
func One[T Float]() Complex[T] {
	return Complex[T]{x: 1}
}

// I returns the imaginary unit, 0 + 1i.
func I[T Float]() Complex[T] {
	return Complex[T]{y: 1}
}

// Infinity returns the canonical representation of the point at infinity,
// (+Inf, +0). Every value with a non-finite component compares and hashes
// equal to it.
func Infinity[T Float]() Complex[T] {
	return Complex[T]{x: scalar.Inf[T]()}
}

// Real returns the real part of z, or NaN if z is non-finite.
func (z Complex[T]) Real() T {
	if !z.IsFinite() {
		return scalar.NaN[T]()
	}
	return z.x
}

// Imag returns the imaginary part of z, or NaN if z is non-finite.
func (z Complex[T]) Imag() T {
	if !z.IsFinite() {
		return scalar.NaN[T]()
	}
	return z.y
}

// RawComponents returns the stored components without the non-finite
// collapse applied by Real and Imag. Intended for interop and serialization.
func (z Complex[T]) RawComponents() (x, y T) {
	return z.x, z.y
}

// IsFinite reports whether both components of z are finite.
func (z Complex[T]) IsFinite() bool {
	return scalar.IsFinite(z.x) && scalar.IsFinite(z.y)
}

// IsZero reports whether z is zero. All four signed-zero component
// combinations are zero.
func (z Complex[T]) IsZero() bool {
	return z.x == 0 && z.y == 0
}

// IsNormal reports whether z is finite and at least one of its components is
// normal. Intermediate quantities in scaled computations must be normal for
// the fast paths of division and normalization to be safe.
func (z Complex[T]) IsNormal() bool {
	return z.IsFinite() && (scalar.IsNormal(z.x) || scalar.IsNormal(z.y))
}

// IsSubnormal reports whether z is finite, non-zero, and not normal.
func (z Complex[T]) IsSubnormal() bool {
	return z.IsFinite() && !z.IsNormal() && !z.IsZero()
}

// Magnitude returns the infinity-norm of z, max(|x|, |y|).
//
// Unlike Length it can never overflow for a representable value, and it is
// cheaper to compute, which makes it the right scale factor for the careful
// paths of division, normalization, and the logarithm. It returns +Inf if z
// is non-finite and 0 iff z is zero.
func (z Complex[T]) Magnitude() T {
	if !z.IsFinite() {
		return scalar.Inf[T]()
	}
	return max(scalar.Abs(z.x), scalar.Abs(z.y))
}

// Canonicalized returns the canonical representative of z: (+0, +0) for
// zero, (+Inf, +0) for any non-finite value, and otherwise z scaled by 1.
func (z Complex[T]) Canonicalized() Complex[T] {
	if z.IsZero() {
		return Zero[T]()
	}
	if !z.IsFinite() {
		return Infinity[T]()
	}
	return z.MulReal(1)
}

// String returns "inf" for any non-finite value and "(x, y)" otherwise.
func (z Complex[T]) String() string {
	if !z.IsFinite() {
		return "inf"
	}
	return fmt.Sprintf("(%v, %v)", z.x, z.y)
}
