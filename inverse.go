package algocomplex

// Inverse trigonometric and hyperbolic functions, expressed through Log,
// Log1p, and Sqrt. The circular inverses route through their hyperbolic
// counterparts with the same +-i component swaps used by Sin, Cos, and Tan,
// so every branch cut is inherited from the principal branches of Log and
// Sqrt. All of them are total: arguments outside the finite domain propagate
// to the point at infinity through the building blocks.

// Asinh returns the inverse hyperbolic sine of z,
// asinh(z) = log(z + sqrt(z*z + 1)).
func Asinh[T Float](z Complex[T]) Complex[T] {
	return Log(z.Add(Sqrt(z.Mul(z).Add(One[T]()))))
}

// Acosh returns the inverse hyperbolic cosine of z,
// acosh(z) = log(z + sqrt(z+1)*sqrt(z-1)). The split-sqrt form keeps the
// branch cut correct on (-inf, 1), where sqrt(z*z - 1) would land on the
// wrong sheet.
func Acosh[T Float](z Complex[T]) Complex[T] {
	return Log(z.Add(Sqrt(z.Add(One[T]())).Mul(Sqrt(z.Sub(One[T]())))))
}

// Atanh returns the inverse hyperbolic tangent of z,
// atanh(z) = (log(1+z) - log(1-z))/2, evaluated through Log1p for accuracy
// near zero.
func Atanh[T Float](z Complex[T]) Complex[T] {
	return Log1p(z).Sub(Log1p(z.Neg())).DivReal(2)
}

// Asin returns the inverse sine of z, via asin(z) = -i*asinh(iz).
func Asin[T Float](z Complex[T]) Complex[T] {
	return mulMinusI(Asinh(mulI(z)))
}

// Atan returns the inverse tangent of z, via atan(z) = -i*atanh(iz).
func Atan[T Float](z Complex[T]) Complex[T] {
	return mulMinusI(Atanh(mulI(z)))
}

// Acos returns the inverse cosine of z,
// acos(z) = -i*log(z + i*sqrt(1 - z*z)).
func Acos[T Float](z Complex[T]) Complex[T] {
	return mulMinusI(Log(z.Add(mulI(Sqrt(One[T]().Sub(z.Mul(z)))))))
}
