package color

import "github.com/chewxy/math32"

// SRGBToLinear decodes an sRGB component to linear light (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// The result is clamped to [0,1].
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return clamp01(s / 12.92)
	}
	return clamp01(math32.Pow((s+0.055)/1.055, 2.4))
}

// LinearToSRGB encodes a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// The result is clamped to [0,1].
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return clamp01(l * 12.92)
	}
	return clamp01(1.055*math32.Pow(l, 1.0/2.4) - 0.055)
}
