package texprep

import "fmt"

// PixelFormat identifies the layout of a decoded source image: element
// type, channel count, color encoding, or a block compression scheme.
// The zero value is FormatInvalid.
type PixelFormat uint8

// Pixel formats.
const (
	// FormatInvalid marks the absence of a format.
	FormatInvalid PixelFormat = iota

	// 8-bit normalized unsigned integer.
	FormatUNorm8
	FormatUNorm8Vec2
	FormatUNorm8Vec3
	FormatUNorm8Vec4

	// 8-bit normalized signed integer.
	FormatSNorm8
	FormatSNorm8Vec2
	FormatSNorm8Vec3
	FormatSNorm8Vec4

	// IEEE 754 half precision float.
	FormatFloat16
	FormatFloat16Vec2
	FormatFloat16Vec3
	FormatFloat16Vec4

	// IEEE 754 single precision float.
	FormatFloat32
	FormatFloat32Vec2
	FormatFloat32Vec3
	FormatFloat32Vec4

	// IEEE 754 double precision float.
	FormatDouble64
	FormatDouble64Vec2
	FormatDouble64Vec3
	FormatDouble64Vec4

	// 16-bit unsigned integer.
	FormatUInt16
	FormatUInt16Vec2
	FormatUInt16Vec3
	FormatUInt16Vec4

	// 16-bit signed integer.
	FormatInt16
	FormatInt16Vec2
	FormatInt16Vec3
	FormatInt16Vec4

	// 32-bit unsigned integer.
	FormatUInt32
	FormatUInt32Vec2
	FormatUInt32Vec3
	FormatUInt32Vec4

	// 32-bit signed integer.
	FormatInt32
	FormatInt32Vec2
	FormatInt32Vec3
	FormatInt32Vec4

	// 8-bit normalized unsigned integer, sRGB encoded color channels.
	FormatUNorm8SRGB
	FormatUNorm8Vec2SRGB
	FormatUNorm8Vec3SRGB
	FormatUNorm8Vec4SRGB

	// BPTC compressed.
	FormatBC6FloatVec3
	FormatBC6UFloatVec3
	FormatBC7UNorm8Vec4
	FormatBC7UNorm8Vec4SRGB

	// S3TC compressed.
	FormatBC1UNorm8Vec4
	FormatBC3UNorm8Vec4

	// formatCount is the number of formats. It is not a format.
	formatCount
)

// ElementKind is the numeric interpretation of a format's elements.
type ElementKind uint8

// Element kinds.
const (
	// KindNone is used by block-compressed formats, which have no
	// per-element structure.
	KindNone ElementKind = iota
	KindUNorm
	KindSNorm
	KindFloat
	KindUInt
	KindInt
)

var kindNames = [...]string{"None", "UNorm", "SNorm", "Float", "UInt", "Int"}

func (k ElementKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ElementKind(%d)", k)
}

// Normalized reports whether integer elements of this kind map onto
// [0,1] or [-1,1] when sampled.
func (k ElementKind) Normalized() bool {
	return k == KindUNorm || k == KindSNorm
}

// FormatInfo describes the memory layout of a PixelFormat or TargetFormat.
type FormatInfo struct {
	// Name is the format's name without the type prefix.
	Name string

	// Kind is the numeric interpretation of each element.
	Kind ElementKind

	// ElementSize is the number of bytes per element. Zero for
	// block-compressed formats.
	ElementSize int

	// Channels is the number of elements per texel.
	Channels int

	// SRGB reports whether color channels are sRGB encoded.
	SRGB bool

	// BlockBytes is the size of one 4x4 texel block of a compressed
	// format. Zero for uncompressed formats.
	BlockBytes int
}

// blockDim is the edge length in texels of every supported compressed block.
const blockDim = 4

func elems(name string, kind ElementKind, size, channels int) FormatInfo {
	return FormatInfo{Name: name, Kind: kind, ElementSize: size, Channels: channels}
}

func srgbElems(name string, channels int) FormatInfo {
	return FormatInfo{Name: name, Kind: KindUNorm, ElementSize: 1, Channels: channels, SRGB: true}
}

func block(name string, channels, blockBytes int, srgb bool) FormatInfo {
	return FormatInfo{Name: name, Channels: channels, BlockBytes: blockBytes, SRGB: srgb}
}

var pixelFormatInfo = [formatCount]FormatInfo{
	FormatInvalid: {Name: "Invalid"},

	FormatUNorm8:     elems("UNorm8", KindUNorm, 1, 1),
	FormatUNorm8Vec2: elems("UNorm8Vec2", KindUNorm, 1, 2),
	FormatUNorm8Vec3: elems("UNorm8Vec3", KindUNorm, 1, 3),
	FormatUNorm8Vec4: elems("UNorm8Vec4", KindUNorm, 1, 4),

	FormatSNorm8:     elems("SNorm8", KindSNorm, 1, 1),
	FormatSNorm8Vec2: elems("SNorm8Vec2", KindSNorm, 1, 2),
	FormatSNorm8Vec3: elems("SNorm8Vec3", KindSNorm, 1, 3),
	FormatSNorm8Vec4: elems("SNorm8Vec4", KindSNorm, 1, 4),

	FormatFloat16:     elems("Float16", KindFloat, 2, 1),
	FormatFloat16Vec2: elems("Float16Vec2", KindFloat, 2, 2),
	FormatFloat16Vec3: elems("Float16Vec3", KindFloat, 2, 3),
	FormatFloat16Vec4: elems("Float16Vec4", KindFloat, 2, 4),

	FormatFloat32:     elems("Float32", KindFloat, 4, 1),
	FormatFloat32Vec2: elems("Float32Vec2", KindFloat, 4, 2),
	FormatFloat32Vec3: elems("Float32Vec3", KindFloat, 4, 3),
	FormatFloat32Vec4: elems("Float32Vec4", KindFloat, 4, 4),

	FormatDouble64:     elems("Double64", KindFloat, 8, 1),
	FormatDouble64Vec2: elems("Double64Vec2", KindFloat, 8, 2),
	FormatDouble64Vec3: elems("Double64Vec3", KindFloat, 8, 3),
	FormatDouble64Vec4: elems("Double64Vec4", KindFloat, 8, 4),

	FormatUInt16:     elems("UInt16", KindUInt, 2, 1),
	FormatUInt16Vec2: elems("UInt16Vec2", KindUInt, 2, 2),
	FormatUInt16Vec3: elems("UInt16Vec3", KindUInt, 2, 3),
	FormatUInt16Vec4: elems("UInt16Vec4", KindUInt, 2, 4),

	FormatInt16:     elems("Int16", KindInt, 2, 1),
	FormatInt16Vec2: elems("Int16Vec2", KindInt, 2, 2),
	FormatInt16Vec3: elems("Int16Vec3", KindInt, 2, 3),
	FormatInt16Vec4: elems("Int16Vec4", KindInt, 2, 4),

	FormatUInt32:     elems("UInt32", KindUInt, 4, 1),
	FormatUInt32Vec2: elems("UInt32Vec2", KindUInt, 4, 2),
	FormatUInt32Vec3: elems("UInt32Vec3", KindUInt, 4, 3),
	FormatUInt32Vec4: elems("UInt32Vec4", KindUInt, 4, 4),

	FormatInt32:     elems("Int32", KindInt, 4, 1),
	FormatInt32Vec2: elems("Int32Vec2", KindInt, 4, 2),
	FormatInt32Vec3: elems("Int32Vec3", KindInt, 4, 3),
	FormatInt32Vec4: elems("Int32Vec4", KindInt, 4, 4),

	FormatUNorm8SRGB:     srgbElems("UNorm8SRGB", 1),
	FormatUNorm8Vec2SRGB: srgbElems("UNorm8Vec2SRGB", 2),
	FormatUNorm8Vec3SRGB: srgbElems("UNorm8Vec3SRGB", 3),
	FormatUNorm8Vec4SRGB: srgbElems("UNorm8Vec4SRGB", 4),

	FormatBC6FloatVec3:      block("BC6FloatVec3", 3, 16, false),
	FormatBC6UFloatVec3:     block("BC6UFloatVec3", 3, 16, false),
	FormatBC7UNorm8Vec4:     block("BC7UNorm8Vec4", 4, 16, false),
	FormatBC7UNorm8Vec4SRGB: block("BC7UNorm8Vec4SRGB", 4, 16, true),

	FormatBC1UNorm8Vec4: block("BC1UNorm8Vec4", 4, 8, false),
	FormatBC3UNorm8Vec4: block("BC3UNorm8Vec4", 4, 16, false),
}

// Info returns the layout of f. Values outside the enumeration, including
// the terminating count, report a zero FormatInfo.
func (f PixelFormat) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return pixelFormatInfo[f]
}

// IsValid reports whether f is a concrete format: neither FormatInvalid nor
// a value outside the enumeration.
func (f PixelFormat) IsValid() bool {
	return f > FormatInvalid && f < formatCount
}

// IsCompressed reports whether f is block compressed.
func (f PixelFormat) IsCompressed() bool {
	return f.Info().BlockBytes > 0
}

// Channels returns the number of channels per texel.
func (f PixelFormat) Channels() int {
	return f.Info().Channels
}

// BytesPerTexel returns the size of one texel, or zero for block-compressed
// formats.
func (f PixelFormat) BytesPerTexel() int {
	info := f.Info()
	return info.ElementSize * info.Channels
}

// ImageBytes returns the number of bytes of a tightly packed width x height
// image in this format.
func (f PixelFormat) ImageBytes(width, height int) int {
	return f.Info().imageBytes(width, height)
}

// String returns the format name.
func (f PixelFormat) String() string {
	if f >= formatCount {
		return fmt.Sprintf("PixelFormat(%d)", f)
	}
	return pixelFormatInfo[f].Name
}

func (info FormatInfo) imageBytes(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	if info.BlockBytes > 0 {
		bw := (width + blockDim - 1) / blockDim
		bh := (height + blockDim - 1) / blockDim
		return bw * bh * info.BlockBytes
	}
	return width * height * info.ElementSize * info.Channels
}
