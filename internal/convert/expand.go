package convert

// ExpandRGB rewrites texels packed as 3 elements into texels of 4 elements,
// setting the added fourth element to opaque. Callers pass the type's
// maximum value for integer elements and 1 for floating point elements.
//
// dst may be src itself for in-place growth, provided the backing array
// holds 4*texels elements. To make that safe, texels are processed from the
// last to the first, and all three source elements of a texel are read
// before any of its four destination elements are written. Destination
// texel i starts at 4*i, which is never below its source start 3*i, so a
// write can only land on source texels that have already been consumed.
// Do not change the iteration order.
func ExpandRGB[T any](src []T, texels int, dst []T, opaque T) {
	if texels <= 0 {
		return
	}
	src = src[: 3*texels : 3*texels]
	dst = dst[: 4*texels : 4*texels]

	for i := texels - 1; i >= 0; i-- {
		s, d := 3*i, 4*i
		r, g, b := src[s], src[s+1], src[s+2]
		dst[d] = r
		dst[d+1] = g
		dst[d+2] = b
		dst[d+3] = opaque
	}
}
