package convert

import (
	"github.com/x448/float16"
	"golang.org/x/exp/constraints"

	"github.com/gogpu/texprep/internal/color"
)

// PremultiplyAlpha multiplies the three color elements of every RGBA texel
// by alpha/max, where max is T's largest value. Arithmetic happens in
// float32 and results are rounded by adding 0.5 before truncation. Alpha is
// copied unchanged.
//
// The routine works for signed element types too; their alpha ratio is
// computed the same way.
func PremultiplyAlpha[T constraints.Integer](src []T, texels int, dst []T) {
	if texels <= 0 {
		return
	}
	n := 4 * texels
	src, dst = src[:n:n], dst[:n:n]

	maxv := float32(MaxValue[T]())
	lo, hi := MinValue[T](), MaxValue[T]()

	for i := 0; i < n; i += 4 {
		alpha := float32(src[i+3]) / maxv
		for j := i; j < i+3; j++ {
			dst[j] = saturate[T](float32(src[j])*alpha+0.5, lo, hi)
		}
		dst[i+3] = src[i+3]
	}
}

// PremultiplyAlphaSRGB is PremultiplyAlpha for sRGB-encoded color elements.
// Each color element is decoded to linear light, multiplied by alpha and
// encoded back to sRGB; both transfer steps clamp to [0,1].
func PremultiplyAlphaSRGB[T constraints.Integer](src []T, texels int, dst []T) {
	if texels <= 0 {
		return
	}
	n := 4 * texels
	src, dst = src[:n:n], dst[:n:n]

	maxv := float32(MaxValue[T]())
	lo, hi := MinValue[T](), MaxValue[T]()

	for i := 0; i < n; i += 4 {
		alpha := float32(src[i+3]) / maxv
		for j := i; j < i+3; j++ {
			p := float32(maxv * color.SRGBToLinear(float32(src[j])/maxv))
			p *= alpha
			p = float32(maxv * color.LinearToSRGB(p/maxv))
			dst[j] = saturate[T](p+0.5, lo, hi)
		}
		dst[i+3] = src[i+3]
	}
}

// PremultiplyAlphaSRGB8 produces exactly the output of
// PremultiplyAlphaSRGB[uint8], decoding through a 256-entry table instead of
// evaluating the transfer function per element.
func PremultiplyAlphaSRGB8(src []uint8, texels int, dst []uint8) {
	if texels <= 0 {
		return
	}
	n := 4 * texels
	src, dst = src[:n:n], dst[:n:n]

	for i := 0; i < n; i += 4 {
		alpha := float32(src[i+3]) / 255
		for j := i; j < i+3; j++ {
			p := float32(255 * color.SRGB8ToLinear(src[j]))
			p *= alpha
			p = float32(255 * color.LinearToSRGB(p/255))
			if p+0.5 >= 255 {
				dst[j] = 255
			} else {
				dst[j] = uint8(p + 0.5)
			}
		}
		dst[i+3] = src[i+3]
	}
}

// PremultiplyAlphaFloat multiplies the three color elements of every RGBA
// texel by alpha. Float data is assumed linear: there is no transfer
// function, clamping or rounding.
func PremultiplyAlphaFloat[T constraints.Float](src []T, texels int, dst []T) {
	if texels <= 0 {
		return
	}
	n := 4 * texels
	src, dst = src[:n:n], dst[:n:n]

	for i := 0; i < n; i += 4 {
		alpha := src[i+3]
		dst[i] = src[i] * alpha
		dst[i+1] = src[i+1] * alpha
		dst[i+2] = src[i+2] * alpha
		dst[i+3] = alpha
	}
}

// PremultiplyAlphaHalf is PremultiplyAlphaFloat for IEEE 754 half precision
// elements stored as their bit patterns. Products are computed in float32
// and rounded back to half precision.
func PremultiplyAlphaHalf(src []uint16, texels int, dst []uint16) {
	if texels <= 0 {
		return
	}
	n := 4 * texels
	src, dst = src[:n:n], dst[:n:n]

	for i := 0; i < n; i += 4 {
		alpha := float16.Frombits(src[i+3]).Float32()
		for j := i; j < i+3; j++ {
			p := float16.Frombits(src[j]).Float32() * alpha
			dst[j] = float16.Fromfloat32(p).Bits()
		}
		dst[i+3] = src[i+3]
	}
}

// HalfOne is the bit pattern of 1.0 in half precision.
var HalfOne = float16.Fromfloat32(1).Bits()
