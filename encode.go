package algocomplex

import (
	"encoding/json"
	"fmt"

	"github.com/cwbudde/algo-complex/internal/scalar"
)

// MarshalJSON encodes z as the two-element array [real, imaginary] of its
// raw components. Non-finite components are passed through to the float
// codec unchanged; encoding/json rejects them, which is the underlying
// type's convention, not this type's.
func (z Complex[T]) MarshalJSON() ([]byte, error) {
	x, y := z.RawComponents()
	return json.Marshal([2]T{x, y})
}

// UnmarshalJSON decodes a two-element array [real, imaginary] into z.
func (z *Complex[T]) UnmarshalJSON(data []byte) error {
	var comps []T
	if err := json.Unmarshal(data, &comps); err != nil {
		return fmt.Errorf("algocomplex: decoding complex value: %w", err)
	}
	if len(comps) != 2 {
		return fmt.Errorf("algocomplex: got %d components, want [real, imaginary]: %w",
			len(comps), ErrInvalidLength)
	}
	*z = New(comps[0], comps[1])
	return nil
}

// MarshalBinary encodes the raw components as two little-endian IEEE-754
// values at the native width of T (8 bytes total for float32 components,
// 16 for float64).
func (z Complex[T]) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 2*scalar.ByteLen[T]())
	b = scalar.AppendBits(b, z.x)
	b = scalar.AppendBits(b, z.y)
	return b, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary.
func (z *Complex[T]) UnmarshalBinary(data []byte) error {
	n := scalar.ByteLen[T]()
	if len(data) != 2*n {
		return fmt.Errorf("algocomplex: got %d bytes, want %d: %w",
			len(data), 2*n, ErrInvalidLength)
	}
	*z = New(scalar.FromBits[T](data[:n]), scalar.FromBits[T](data[n:]))
	return nil
}
