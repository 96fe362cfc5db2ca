package algocomplex

import "errors"

// Sentinel errors returned by parsing and decoding. Arithmetic and the
// elementary functions never return errors: every numeric input has a
// defined result on the Riemann sphere.
var (
	// ErrSyntax is returned when a textual complex value is malformed.
	ErrSyntax = errors.New("algocomplex: invalid syntax")

	// ErrRange is returned when a parsed component overflows the target
	// floating-point type.
	ErrRange = errors.New("algocomplex: value out of range")

	// ErrInvalidLength is returned when an encoded value does not hold
	// exactly two components.
	ErrInvalidLength = errors.New("algocomplex: invalid encoded length")
)
