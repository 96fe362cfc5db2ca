package algocomplex

// Convert returns z with its raw components converted to U, rounding when U
// is narrower than T. Non-finite values stay non-finite; components that
// overflow U become infinities, keeping the value on the same point of the
// Riemann sphere.
func Convert[U, T Float](z Complex[T]) Complex[U] {
	x, y := z.RawComponents()
	return New(U(x), U(y))
}

// ConvertExact returns z converted to components of type U, but only when
// both components convert without rounding; otherwise ok is false. NaN
// components never convert exactly.
func ConvertExact[U, T Float](z Complex[T]) (w Complex[U], ok bool) {
	w = Convert[U](z)
	wx, wy := w.RawComponents()
	x, y := z.RawComponents()
	if T(wx) == x && T(wy) == y {
		return w, true
	}
	return Complex[U]{}, false
}
