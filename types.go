package algocomplex

import "github.com/cwbudde/algo-complex/internal/scalar"

// Float is a type constraint for the floating-point types a Complex value
// can be built over. The canonical definition is in internal/scalar.
type Float = scalar.Float
