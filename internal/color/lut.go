package color

// sRGB8ToLinearLUT holds SRGBToLinear(v/255) for every 8-bit value v.
// Entries are computed with the same float32 arithmetic as the direct path,
// so a lookup and a call produce identical results.
var sRGB8ToLinearLUT [256]float32

func init() {
	for i := range sRGB8ToLinearLUT {
		sRGB8ToLinearLUT[i] = SRGBToLinear(float32(i) / 255)
	}
}

// SRGB8ToLinear decodes an 8-bit sRGB value to a linear component in [0,1]
// using a lookup table.
//
// Example:
//
//	l := SRGB8ToLinear(128) // ~0.2159 (not 0.5!)
func SRGB8ToLinear(s uint8) float32 {
	return sRGB8ToLinearLUT[s]
}
