package algocomplex

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/cwbudde/algo-complex/internal/scalar"
)

// Equal reports whether z and w represent the same point on the Riemann
// sphere. All non-finite values are the single point at infinity and compare
// equal to each other; finite values compare componentwise with IEEE
// equality, so -0 equals +0.
func (z Complex[T]) Equal(w Complex[T]) bool {
	if !z.IsFinite() || !w.IsFinite() {
		return !z.IsFinite() && !w.IsFinite()
	}
	return z.x == w.x && z.y == w.y
}

// Hash returns a 64-bit hash of z consistent with Equal: all non-finite
// values hash to the same bucket (the bit pattern of +Inf stands in for the
// whole equivalence class), and negative zeros hash like positive zeros.
func (z Complex[T]) Hash() uint64 {
	var b [16]byte
	if !z.IsFinite() {
		binary.LittleEndian.PutUint64(b[:8], scalar.Bits(scalar.Inf[T]()))
		return xxhash.Sum64(b[:8])
	}
	x, y := z.x, z.y
	if x == 0 {
		x = 0 // replaces -0 with +0
	}
	if y == 0 {
		y = 0
	}
	binary.LittleEndian.PutUint64(b[:8], scalar.Bits(x))
	binary.LittleEndian.PutUint64(b[8:], scalar.Bits(y))
	return xxhash.Sum64(b[:])
}
