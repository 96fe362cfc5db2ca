// Package scalar provides the real-scalar capability layer that the complex
// value type is built on: a floating-point type constraint, generic wrappers
// for the elementary real functions, and per-type classification queries and
// constants.
//
// Wrappers compute through float64. For float32 arguments the promotion is
// exact and the double rounding on the way back stays within one ulp, which
// is accurate enough for every caller in this module.
package scalar

import "math"

// Float is a type constraint for the floating-point types supported by the
// complex value type.
type Float interface {
	float32 | float64
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Copysign returns a value with the magnitude of x and the sign of sign.
func Copysign[T Float](x, sign T) T {
	return T(math.Copysign(float64(x), float64(sign)))
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Exp returns e**x.
func Exp[T Float](x T) T {
	return T(math.Exp(float64(x)))
}

// ExpMinusOne returns e**x - 1, accurate near zero.
func ExpMinusOne[T Float](x T) T {
	return T(math.Expm1(float64(x)))
}

// Log returns the natural logarithm of x.
func Log[T Float](x T) T {
	return T(math.Log(float64(x)))
}

// Log1p returns log(1 + x), accurate near zero.
func Log1p[T Float](x T) T {
	return T(math.Log1p(float64(x)))
}

// Cos returns the cosine of x.
func Cos[T Float](x T) T {
	return T(math.Cos(float64(x)))
}

// Sin returns the sine of x.
func Sin[T Float](x T) T {
	return T(math.Sin(float64(x)))
}

// Cosh returns the hyperbolic cosine of x.
func Cosh[T Float](x T) T {
	return T(math.Cosh(float64(x)))
}

// Sinh returns the hyperbolic sine of x.
func Sinh[T Float](x T) T {
	return T(math.Sinh(float64(x)))
}

// Atan2 returns the angle of the point (x, y) in the range [-Pi, Pi].
func Atan2[T Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

// Hypot returns sqrt(x*x + y*y) without undue overflow or underflow.
func Hypot[T Float](x, y T) T {
	return T(math.Hypot(float64(x), float64(y)))
}

// FMA returns x*y + z with a single rounding.
func FMA[T Float](x, y, z T) T {
	return T(math.FMA(float64(x), float64(y), float64(z)))
}
