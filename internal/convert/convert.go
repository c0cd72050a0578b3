// Package convert implements the texel rewriting routines run over decoded
// images before they are uploaded: RGB to RGBA expansion and alpha
// premultiplication.
//
// Every routine takes a source slice, a texel count and a destination slice
// of the same element type. Destination and source may be the same slice
// (same first element); other partial overlaps are not supported. Routines
// never allocate and never grow the destination: callers size it for the
// output layout up front. Slices that are too short cause an index panic
// before any element is written.
package convert

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// MaxValue returns the largest value representable by T.
func MaxValue[T constraints.Integer]() T {
	ones := ^T(0)
	if ones > 0 {
		return ones
	}
	bits := 8 * unsafe.Sizeof(ones)
	return T(uint64(1)<<(bits-1) - 1)
}

// MinValue returns the smallest value representable by T.
func MinValue[T constraints.Integer]() T {
	return ^MaxValue[T]()
}

// saturate converts v to T, truncating toward zero and clamping to
// [lo, hi]. Out-of-range float to integer conversions are implementation
// defined in Go, so the range check happens in float64 first.
func saturate[T constraints.Integer](v float32, lo, hi T) T {
	f := float64(v)
	if f >= float64(hi) {
		return hi
	}
	if f <= float64(lo) {
		return lo
	}
	return T(f)
}
