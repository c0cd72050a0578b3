package texprep

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// TargetFormat identifies the GPU storage format a texture is allocated
// with. The zero value is TargetInvalid.
//
// There are no normalized 3-channel targets: such sources are always
// expanded to 4 channels.
type TargetFormat uint8

// Target formats.
const (
	// TargetInvalid is returned when no GPU format can hold the source.
	TargetInvalid TargetFormat = iota

	TargetUNorm8
	TargetUNorm8Vec2
	TargetUNorm8Vec4

	TargetSNorm8
	TargetSNorm8Vec2
	TargetSNorm8Vec4

	TargetFloat16
	TargetFloat16Vec2
	TargetFloat16Vec3
	TargetFloat16Vec4

	TargetFloat32
	TargetFloat32Vec2
	TargetFloat32Vec3
	TargetFloat32Vec4

	TargetUInt16
	TargetUInt16Vec2
	TargetUInt16Vec3
	TargetUInt16Vec4

	TargetInt32
	TargetInt32Vec2
	TargetInt32Vec3
	TargetInt32Vec4

	TargetUNorm8Vec4SRGB

	TargetBC6FloatVec3
	TargetBC6UFloatVec3
	TargetBC7UNorm8Vec4
	TargetBC7UNorm8Vec4SRGB
	TargetBC1UNorm8Vec4
	TargetBC3UNorm8Vec4

	targetCount
)

var targetFormatInfo = [targetCount]FormatInfo{
	TargetInvalid: {Name: "Invalid"},

	TargetUNorm8:     elems("UNorm8", KindUNorm, 1, 1),
	TargetUNorm8Vec2: elems("UNorm8Vec2", KindUNorm, 1, 2),
	TargetUNorm8Vec4: elems("UNorm8Vec4", KindUNorm, 1, 4),

	TargetSNorm8:     elems("SNorm8", KindSNorm, 1, 1),
	TargetSNorm8Vec2: elems("SNorm8Vec2", KindSNorm, 1, 2),
	TargetSNorm8Vec4: elems("SNorm8Vec4", KindSNorm, 1, 4),

	TargetFloat16:     elems("Float16", KindFloat, 2, 1),
	TargetFloat16Vec2: elems("Float16Vec2", KindFloat, 2, 2),
	TargetFloat16Vec3: elems("Float16Vec3", KindFloat, 2, 3),
	TargetFloat16Vec4: elems("Float16Vec4", KindFloat, 2, 4),

	TargetFloat32:     elems("Float32", KindFloat, 4, 1),
	TargetFloat32Vec2: elems("Float32Vec2", KindFloat, 4, 2),
	TargetFloat32Vec3: elems("Float32Vec3", KindFloat, 4, 3),
	TargetFloat32Vec4: elems("Float32Vec4", KindFloat, 4, 4),

	TargetUInt16:     elems("UInt16", KindUInt, 2, 1),
	TargetUInt16Vec2: elems("UInt16Vec2", KindUInt, 2, 2),
	TargetUInt16Vec3: elems("UInt16Vec3", KindUInt, 2, 3),
	TargetUInt16Vec4: elems("UInt16Vec4", KindUInt, 2, 4),

	TargetInt32:     elems("Int32", KindInt, 4, 1),
	TargetInt32Vec2: elems("Int32Vec2", KindInt, 4, 2),
	TargetInt32Vec3: elems("Int32Vec3", KindInt, 4, 3),
	TargetInt32Vec4: elems("Int32Vec4", KindInt, 4, 4),

	TargetUNorm8Vec4SRGB: srgbElems("UNorm8Vec4SRGB", 4),

	TargetBC6FloatVec3:      block("BC6FloatVec3", 3, 16, false),
	TargetBC6UFloatVec3:     block("BC6UFloatVec3", 3, 16, false),
	TargetBC7UNorm8Vec4:     block("BC7UNorm8Vec4", 4, 16, false),
	TargetBC7UNorm8Vec4SRGB: block("BC7UNorm8Vec4SRGB", 4, 16, true),
	TargetBC1UNorm8Vec4:     block("BC1UNorm8Vec4", 4, 8, false),
	TargetBC3UNorm8Vec4:     block("BC3UNorm8Vec4", 4, 16, false),
}

// webGPUFormats maps targets onto WebGPU texture formats. WebGPU has no
// 3-component formats; those entries stay TextureFormatUndefined.
var webGPUFormats = [targetCount]gputypes.TextureFormat{
	TargetUNorm8:     gputypes.TextureFormatR8Unorm,
	TargetUNorm8Vec2: gputypes.TextureFormatRG8Unorm,
	TargetUNorm8Vec4: gputypes.TextureFormatRGBA8Unorm,

	TargetSNorm8:     gputypes.TextureFormatR8Snorm,
	TargetSNorm8Vec2: gputypes.TextureFormatRG8Snorm,
	TargetSNorm8Vec4: gputypes.TextureFormatRGBA8Snorm,

	TargetFloat16:     gputypes.TextureFormatR16Float,
	TargetFloat16Vec2: gputypes.TextureFormatRG16Float,
	TargetFloat16Vec4: gputypes.TextureFormatRGBA16Float,

	TargetFloat32:     gputypes.TextureFormatR32Float,
	TargetFloat32Vec2: gputypes.TextureFormatRG32Float,
	TargetFloat32Vec4: gputypes.TextureFormatRGBA32Float,

	TargetUInt16:     gputypes.TextureFormatR16Uint,
	TargetUInt16Vec2: gputypes.TextureFormatRG16Uint,
	TargetUInt16Vec4: gputypes.TextureFormatRGBA16Uint,

	TargetInt32:     gputypes.TextureFormatR32Sint,
	TargetInt32Vec2: gputypes.TextureFormatRG32Sint,
	TargetInt32Vec4: gputypes.TextureFormatRGBA32Sint,

	TargetUNorm8Vec4SRGB: gputypes.TextureFormatRGBA8UnormSrgb,

	TargetBC6FloatVec3:      gputypes.TextureFormatBC6HRGBFloat,
	TargetBC6UFloatVec3:     gputypes.TextureFormatBC6HRGBUfloat,
	TargetBC7UNorm8Vec4:     gputypes.TextureFormatBC7RGBAUnorm,
	TargetBC7UNorm8Vec4SRGB: gputypes.TextureFormatBC7RGBAUnormSrgb,
	TargetBC1UNorm8Vec4:     gputypes.TextureFormatBC1RGBAUnorm,
	TargetBC3UNorm8Vec4:     gputypes.TextureFormatBC3RGBAUnorm,
}

// Info returns the layout of t.
func (t TargetFormat) Info() FormatInfo {
	if t >= targetCount {
		return FormatInfo{}
	}
	return targetFormatInfo[t]
}

// IsValid reports whether t is a concrete target format.
func (t TargetFormat) IsValid() bool {
	return t > TargetInvalid && t < targetCount
}

// IsCompressed reports whether t is block compressed.
func (t TargetFormat) IsCompressed() bool {
	return t.Info().BlockBytes > 0
}

// Channels returns the number of channels per texel.
func (t TargetFormat) Channels() int {
	return t.Info().Channels
}

// BytesPerTexel returns the size of one texel, or zero for block-compressed
// formats.
func (t TargetFormat) BytesPerTexel() int {
	info := t.Info()
	return info.ElementSize * info.Channels
}

// ImageBytes returns the number of bytes of a tightly packed width x height
// image in this format.
func (t TargetFormat) ImageBytes(width, height int) int {
	return t.Info().imageBytes(width, height)
}

// BytesPerRow returns the stride of one row of texels, or of one row of
// blocks for compressed formats.
func (t TargetFormat) BytesPerRow(width int) int {
	return t.Info().imageBytes(width, 1)
}

// WebGPU returns the equivalent WebGPU texture format, or
// gputypes.TextureFormatUndefined when WebGPU has none.
func (t TargetFormat) WebGPU() gputypes.TextureFormat {
	if t >= targetCount {
		return gputypes.TextureFormatUndefined
	}
	return webGPUFormats[t]
}

// String returns the format name.
func (t TargetFormat) String() string {
	if t >= targetCount {
		return fmt.Sprintf("TargetFormat(%d)", t)
	}
	return targetFormatInfo[t].Name
}
