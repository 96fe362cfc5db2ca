package algocomplex

import "github.com/cwbudde/algo-complex/internal/scalar"

// IsApproximatelyEqual reports whether z and w agree to within the default
// relative tolerance sqrt(ulpOfOne), which treats results as equal when
// about half of their significand bits match. Exactly equal values (and any
// two representations of the point at infinity) are always approximately
// equal.
func (z Complex[T]) IsApproximatelyEqual(w Complex[T]) bool {
	return z.WithinTolerance(w, 0, scalar.Sqrt(scalar.UlpOfOne[T]()))
}

// WithinTolerance reports whether the distance between z and w is at most
// max(absTol, relTol*max(|z|, |w|)). Tolerances must be non-negative; a
// non-finite operand is within tolerance only of other non-finite operands.
func (z Complex[T]) WithinTolerance(w Complex[T], absTol, relTol T) bool {
	if !z.IsFinite() || !w.IsFinite() {
		return z.Equal(w)
	}
	if z.Equal(w) {
		return true
	}
	d := z.Sub(w).Length()
	scale := max(z.Length(), w.Length())
	return d <= max(absTol, relTol*scale)
}
