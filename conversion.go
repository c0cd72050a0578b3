package texprep

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/gogpu/texprep/internal/convert"
)

// Conversion rewrites texels read from src into dst before upload. texels
// is the number of texels, not elements or bytes. Both buffers hold tightly
// packed elements in native byte order; dst must be sized for the target
// format. dst may be src itself (same first byte), other overlaps are not
// supported.
//
// A Conversion panics if either buffer is too short for texels, before
// writing anything.
type Conversion func(src []byte, texels int, dst []byte)

// Op names the rewrite a Conversion performs.
type Op uint8

// Conversion operations.
const (
	// OpNone means the source is uploaded unchanged.
	OpNone Op = iota

	// OpExpand appends an opaque fourth channel to 3-channel texels.
	OpExpand

	// OpPremultiply premultiplies integer color channels by alpha.
	OpPremultiply

	// OpPremultiplySRGB premultiplies sRGB-encoded color channels by alpha
	// in linear space.
	OpPremultiplySRGB

	// OpPremultiplyFloat premultiplies floating point color channels by
	// alpha.
	OpPremultiplyFloat
)

func (op Op) String() string {
	switch op {
	case OpNone:
		return "None"
	case OpExpand:
		return "Expand"
	case OpPremultiply:
		return "Premultiply"
	case OpPremultiplySRGB:
		return "PremultiplySRGB"
	case OpPremultiplyFloat:
		return "PremultiplyFloat"
	default:
		return fmt.Sprintf("Op(%d)", op)
	}
}

// view reinterprets b as a slice of T covering as many whole elements as
// fit in len(b).
func view[T any](b []byte) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(b) < size {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/size)
}

func expander[T any](opaque T) Conversion {
	return func(src []byte, texels int, dst []byte) {
		convert.ExpandRGB(view[T](src), texels, view[T](dst), opaque)
	}
}

func premultiplier[T any](fn func(src []T, texels int, dst []T)) Conversion {
	return func(src []byte, texels int, dst []byte) {
		fn(view[T](src), texels, view[T](dst))
	}
}

// One Conversion per element type and operation, built once.
var (
	expandUNorm8  = expander[uint8](math.MaxUint8)
	expandSNorm8  = expander[int8](math.MaxInt8)
	expandFloat16 = expander(convert.HalfOne)
	expandFloat32 = expander[float32](1)
	expandUInt16  = expander[uint16](math.MaxUint16)
	expandInt32   = expander[int32](math.MaxInt32)

	premultiplyUNorm8     = premultiplier(convert.PremultiplyAlpha[uint8])
	premultiplyUNorm8SRGB = premultiplier(convert.PremultiplyAlphaSRGB8)
	premultiplySNorm8     = premultiplier(convert.PremultiplyAlpha[int8])
	premultiplyFloat16    = premultiplier(convert.PremultiplyAlphaHalf)
	premultiplyFloat32    = premultiplier(convert.PremultiplyAlphaFloat[float32])
	premultiplyUInt16     = premultiplier(convert.PremultiplyAlpha[uint16])
	premultiplyInt32      = premultiplier(convert.PremultiplyAlpha[int32])
)
