package scalar

import (
	"encoding/binary"
	"math"
)

const (
	smallestNormal32 = 0x1p-126
	smallestNormal64 = 0x1p-1022
	ulpOfOne32       = 0x1p-23
	ulpOfOne64       = 0x1p-52
)

// IsNaN reports whether x is an IEEE-754 "not-a-number" value.
func IsNaN[T Float](x T) bool {
	return x != x
}

// IsInf reports whether x is infinite (either sign).
func IsInf[T Float](x T) bool {
	return math.IsInf(float64(x), 0)
}

// IsFinite reports whether x is neither infinite nor NaN.
func IsFinite[T Float](x T) bool {
	return !IsNaN(x) && !IsInf(x)
}

// IsNormal reports whether x is finite with magnitude at least the smallest
// normal value of T. Zero, subnormals, infinities, and NaN are not normal.
func IsNormal[T Float](x T) bool {
	return IsFinite(x) && Abs(x) >= SmallestNormal[T]()
}

// Inf returns positive infinity of type T.
func Inf[T Float]() T {
	return T(math.Inf(1))
}

// NaN returns a quiet NaN of type T.
func NaN[T Float]() T {
	return T(math.NaN())
}

// MaxFinite returns the greatest finite value of type T.
func MaxFinite[T Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math.MaxFloat32)
	default:
		// Forced through a variable: the untyped constant overflows the
		// float32 arm of the type set and would not convert.
		v := math.MaxFloat64
		return T(v)
	}
}

// SmallestNormal returns the least positive normal value of type T.
func SmallestNormal[T Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(smallestNormal32)
	default:
		return T(smallestNormal64)
	}
}

// UlpOfOne returns the distance from 1 to the next representable value of
// type T.
func UlpOfOne[T Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(ulpOfOne32)
	default:
		return T(ulpOfOne64)
	}
}

// ByteLen returns the encoded width of T in bytes.
func ByteLen[T Float]() int {
	var zero T
	switch any(zero).(type) {
	case float32:
		return 4
	default:
		return 8
	}
}

// Bits returns the IEEE-754 bit pattern of x widened to float64.
// The widening is exact for float32 inputs.
func Bits[T Float](x T) uint64 {
	return math.Float64bits(float64(x))
}

// AppendBits appends the little-endian bit pattern of x at its native width.
func AppendBits[T Float](b []byte, x T) []byte {
	switch v := any(x).(type) {
	case float32:
		return binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	default:
		return binary.LittleEndian.AppendUint64(b, math.Float64bits(any(x).(float64)))
	}
}

// FromBits decodes a value appended by AppendBits. b must hold at least
// ByteLen[T] bytes.
func FromBits[T Float](b []byte) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	default:
		return T(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	}
}
