package algocomplex

import "github.com/cwbudde/algo-complex/internal/scalar"

// Add returns z + w.
func (z Complex[T]) Add(w Complex[T]) Complex[T] {
	return Complex[T]{x: z.x + w.x, y: z.y + w.y}
}

// Sub returns z - w.
func (z Complex[T]) Sub(w Complex[T]) Complex[T] {
	return Complex[T]{x: z.x - w.x, y: z.y - w.y}
}

// Neg returns -z.
func (z Complex[T]) Neg() Complex[T] {
	return Complex[T]{x: -z.x, y: -z.y}
}

// Conj returns the complex conjugate of z.
func (z Complex[T]) Conj() Complex[T] {
	return Complex[T]{x: z.x, y: -z.y}
}

// Mul returns the product z * w using the naive four-multiplication formula.
// No rescaling is attempted; the elementary functions compensate where the
// product alone would lose range.
func (z Complex[T]) Mul(w Complex[T]) Complex[T] {
	return Complex[T]{
		x: z.x*w.x - z.y*w.y,
		y: z.x*w.y + z.y*w.x,
	}
}

// Div returns the quotient z / w.
//
// When |w|^2 is normal the quotient is computed directly as
// z * (conj(w) / |w|^2). Otherwise a rescaled path takes over, which
// produces a finite, accurately scaled result whenever one is representable,
// with no spurious overflow or underflow. Division by zero yields the point
// at infinity; a finite dividend over an infinite divisor yields zero.
func (z Complex[T]) Div(w Complex[T]) Complex[T] {
	lenSq := w.LengthSquared()
	if scalar.IsNormal(lenSq) {
		return z.Mul(w.Conj().DivReal(lenSq))
	}
	return rescaledDivide(z, w)
}

// rescaledDivide handles quotients whose naive denominator |w|^2 overflows
// or underflows. Both operands are normalized by their own infinity-norm so
// the intermediate quotient r is close to unit magnitude, then the scale
// ratio zScale/wScale is re-applied in the first of the three equivalent
// evaluation orders whose intermediate value stays normal.
func rescaledDivide[T Float](z, w Complex[T]) Complex[T] {
	if w.IsZero() {
		return Infinity[T]()
	}
	if z.IsZero() || !w.IsFinite() {
		return Zero[T]()
	}
	zScale := z.Magnitude()
	wScale := w.Magnitude()
	zNorm := z.DivReal(zScale)
	wNorm := w.DivReal(wScale)
	r := zNorm.Mul(wNorm.Conj()).DivReal(wNorm.LengthSquared())
	// The candidate orders are r*(zScale/wScale), (r*zScale)/wScale, and
	// (r/wScale)*zScale.
	if scalar.IsNormal(zScale / wScale) {
		return r.MulReal(zScale / wScale)
	}
	if t := r.MulReal(zScale); t.IsNormal() {
		return t.DivReal(wScale)
	}
	return r.DivReal(wScale).MulReal(zScale)
}

// Reciprocal returns 1/z if that substitution is safe, in the sense that
// w * reciprocal and w / z agree to within rounding for any w. The result is
// present when 1/z is normal, or when z itself is zero or non-finite (so the
// reciprocal is exactly infinity or zero). Otherwise ok is false and callers
// should divide instead.
func (z Complex[T]) Reciprocal() (r Complex[T], ok bool) {
	recip := One[T]().Div(z)
	if recip.IsNormal() || z.IsZero() || !z.IsFinite() {
		return recip, true
	}
	return Complex[T]{}, false
}

// Normalized returns z scaled to length one. The result is absent when z is
// zero or non-finite, since no unit vector exists for either. Badly scaled
// inputs whose length is not normal are pre-scaled by their infinity-norm
// before normalizing, so no representable input overflows on the way.
func (z Complex[T]) Normalized() (n Complex[T], ok bool) {
	if l := z.Length(); scalar.IsNormal(l) {
		return z.DivReal(l), true
	}
	if z.IsZero() || !z.IsFinite() {
		return Complex[T]{}, false
	}
	return z.DivReal(z.Magnitude()).Normalized()
}
