package algocomplex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-complex/internal/scalar"
)

// Parse interprets s as a complex value in the forms produced by String:
// "inf" for the point at infinity, "(x, y)" for a component pair, or a bare
// real literal. Malformed input is reported as ErrSyntax, components beyond
// the range of T as ErrRange.
func Parse[T Float](s string) (Complex[T], error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "inf":
		return Infinity[T](), nil
	case strings.HasPrefix(s, "("):
		if !strings.HasSuffix(s, ")") {
			return Complex[T]{}, fmt.Errorf("algocomplex: missing closing parenthesis in %q: %w", s, ErrSyntax)
		}
		re, im, ok := strings.Cut(s[1:len(s)-1], ",")
		if !ok {
			return Complex[T]{}, fmt.Errorf("algocomplex: missing component separator in %q: %w", s, ErrSyntax)
		}
		x, err := parseComponent[T](re)
		if err != nil {
			return Complex[T]{}, err
		}
		y, err := parseComponent[T](im)
		if err != nil {
			return Complex[T]{}, err
		}
		return New(x, y), nil
	default:
		x, err := parseComponent[T](s)
		if err != nil {
			return Complex[T]{}, err
		}
		return FromReal(x), nil
	}
}

func parseComponent[T Float](s string) (T, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 8*scalar.ByteLen[T]())
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("algocomplex: component %q: %w", s, ErrRange)
		}
		return 0, fmt.Errorf("algocomplex: component %q: %w", s, ErrSyntax)
	}
	return T(v), nil
}
