// Package texprep prepares decoded images for upload as GPU textures.
//
// # Overview
//
// Decoders produce texels in whatever layout the file stored: 3-channel
// RGB, 16-bit integers, doubles, sRGB-encoded bytes, block-compressed
// data. GPUs accept a narrower set. texprep picks, for each source
// [PixelFormat], the [TargetFormat] the texture is allocated with and the
// [Conversion] (if any) its texels need first.
//
// # Quick Start
//
//	sel, err := texprep.Select(texprep.FormatUNorm8Vec3, false, false)
//	if err != nil {
//	    return err // *texprep.FormatError
//	}
//	dst := make([]byte, sel.Target.ImageBytes(w, h))
//	if sel.Convert != nil {
//	    sel.Convert(src, w*h, dst)
//	}
//
// [Prepare] wraps the same steps, including buffer sizing and logging:
//
//	tex, err := texprep.Prepare(texprep.Source{
//	    Format: texprep.FormatUNorm8Vec4SRGB,
//	    Width:  w,
//	    Height: h,
//	    Pix:    pix,
//	}, texprep.WithPremultiplyAlpha(true), texprep.ForWebGPU())
//
// # Conversions
//
// Three rewrites exist:
//
//   - Expansion appends an opaque alpha channel to 3-channel texels. 8-bit
//     normalized formats are always expanded since GPUs have no 3-channel
//     variants of them. Float and integer formats are expanded on request
//     ([WithAvoidThreeComponent], [ForWebGPU]).
//   - Premultiplication multiplies color channels by alpha. sRGB data is
//     premultiplied in linear space and re-encoded.
//   - Nothing: the source bytes are uploaded as they are. Block-compressed
//     formats always take this path.
//
// Every conversion may run in place when src and dst start at the same
// byte and dst is sized for the target format.
//
// # Diagnostics
//
// Formats without a GPU counterpart (doubles, 16-bit signed and 32-bit
// unsigned integers, 1 and 2 channel sRGB) yield a [*FormatError] with
// [SeverityWarning]; values outside the enumeration yield
// [SeverityCodingError]. [Prepare] logs them through [log/slog]; see
// [SetLogger].
//
// # Subpackages
//
//   - decode: turns image.Image values and image files into a [Source]
//   - upload: creates GPU textures from a prepared [Texture]
package texprep
