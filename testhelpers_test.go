package algocomplex

import "testing"

// Shared test helper functions used across multiple test files

// assertApprox fails unless got and want agree to the default relative
// tolerance (about half the significand bits).
func assertApprox[T Float](t *testing.T, got, want Complex[T], format string, args ...any) {
	t.Helper()

	if !got.IsApproximatelyEqual(want) {
		t.Fatalf(format+": got %v want %v", append(args, got, want)...)
	}
}

// assertTol fails unless got and want agree to the given relative tolerance.
func assertTol[T Float](t *testing.T, got, want Complex[T], relTol T, format string, args ...any) {
	t.Helper()

	if !got.WithinTolerance(want, 0, relTol) {
		t.Fatalf(format+": got %v want %v", append(args, got, want)...)
	}
}

// assertOracle fails unless got agrees with the math/cmplx reference value
// to the given relative tolerance.
func assertOracle(t *testing.T, got Complex[float64], want complex128, relTol float64, format string, args ...any) {
	t.Helper()

	assertTol(t, got, New(real(want), imag(want)), relTol, format, args...)
}

// toComplex128 converts a finite test value for use with the math/cmplx
// oracle.
func toComplex128(z Complex[float64]) complex128 {
	x, y := z.RawComponents()
	return complex(x, y)
}
