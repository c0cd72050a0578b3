// Package color provides the sRGB transfer functions used when converting
// texel data before upload.
//
// All functions operate on components normalized to [0,1] and clamp their
// results to that range, so integer rescaling after a conversion never
// leaves the representable range.
package color

// clamp01 clamps v to [0,1].
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
