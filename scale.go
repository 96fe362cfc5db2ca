package algocomplex

// MulReal returns z scaled by the real value a, computed as (x*a, y*a).
//
// This is deliberately a named method rather than a Mul against a promoted
// complex value: the two-multiplication vector-space formula and the full
// four-multiplication complex product agree mathematically but can disagree
// on the representation of infinity, and callers on the careful arithmetic
// paths depend on the two-multiplication form.
func (z Complex[T]) MulReal(a T) Complex[T] {
	return Complex[T]{x: z.x * a, y: z.y * a}
}

// DivReal returns z divided by the real value a, computed as (x/a, y/a).
// See MulReal for why this is not expressed through Div.
func (z Complex[T]) DivReal(a T) Complex[T] {
	return Complex[T]{x: z.x / a, y: z.y / a}
}
