// Package decode turns decoded images and image files into texprep
// sources.
//
// The texel layout follows the image's own storage where a texture format
// exists for it: 8-bit gray stays one channel, 16-bit images keep 16-bit
// elements, opaque color images become 3-channel RGB (expanded later by
// texprep.Prepare). Everything else is normalized to non-premultiplied
// 8-bit RGBA.
//
// PNG, JPEG, GIF, BMP, TIFF and WebP files are recognized.
package decode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/texprep"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Decode errors.
var (
	// ErrEmptyImage is returned for images with no pixels.
	ErrEmptyImage = errors.New("decode: empty image")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("decode: empty data")
)

// Option configures decoding.
type Option func(*options)

type options struct {
	linear bool
}

// WithLinear marks 8-bit color data as linear instead of sRGB encoded.
// Use it for normal maps, roughness maps and other non-color textures.
func WithLinear(on bool) Option {
	return func(o *options) {
		o.linear = on
	}
}

// opaquer is implemented by the standard image types.
type opaquer interface {
	Opaque() bool
}

// Image converts img into a texprep.Source. The returned pixels never
// alias img's buffer.
func Image(img image.Image, opts ...Option) (texprep.Source, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	b := img.Bounds()
	if b.Empty() {
		return texprep.Source{}, ErrEmptyImage
	}
	src := texprep.Source{Width: b.Dx(), Height: b.Dy()}

	switch m := img.(type) {
	case *image.Gray:
		// One-channel sRGB textures do not exist, so gray is always linear.
		src.Format = texprep.FormatUNorm8
		src.Pix = copyRows(m.Pix, m.Stride, m.PixOffset(b.Min.X, b.Min.Y), b.Dx(), b.Dy())
	case *image.Gray16:
		src.Format = texprep.FormatUInt16
		src.Pix = nativeRows(m.Pix, m.Stride, m.PixOffset(b.Min.X, b.Min.Y), 2*b.Dx(), b.Dy())
	case *image.NRGBA64:
		src.Format = texprep.FormatUInt16Vec4
		src.Pix = nativeRows(m.Pix, m.Stride, m.PixOffset(b.Min.X, b.Min.Y), 8*b.Dx(), b.Dy())
	case *image.RGBA64:
		// Stored premultiplied; textures want straight alpha.
		n := image.NewNRGBA64(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(n, n.Bounds(), m, b.Min, draw.Src)
		src.Format = texprep.FormatUInt16Vec4
		src.Pix = nativeRows(n.Pix, n.Stride, 0, 8*b.Dx(), b.Dy())
	case *image.NRGBA:
		src.Format = colorFormat(texprep.FormatUNorm8Vec4, o.linear)
		src.Pix = copyRows(m.Pix, m.Stride, m.PixOffset(b.Min.X, b.Min.Y), 4*b.Dx(), b.Dy())
	default:
		if op, ok := img.(opaquer); ok && op.Opaque() {
			src.Format = colorFormat(texprep.FormatUNorm8Vec3, o.linear)
			src.Pix = rgbPix(img)
			break
		}
		n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
		src.Format = colorFormat(texprep.FormatUNorm8Vec4, o.linear)
		src.Pix = n.Pix
	}
	return src, nil
}

// Reader decodes an image from r and converts it with Image. It also
// returns the name of the detected file format.
func Reader(r io.Reader, opts ...Option) (texprep.Source, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return texprep.Source{}, "", fmt.Errorf("decode: %w", err)
	}
	src, err := Image(img, opts...)
	if err != nil {
		return texprep.Source{}, format, err
	}
	return src, format, nil
}

// Bytes decodes an image held in memory.
func Bytes(data []byte, opts ...Option) (texprep.Source, string, error) {
	if len(data) == 0 {
		return texprep.Source{}, "", ErrEmptyData
	}
	return Reader(bytes.NewReader(data), opts...)
}

// File decodes the image file at path.
func File(path string, opts ...Option) (texprep.Source, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return texprep.Source{}, "", fmt.Errorf("decode: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Reader(f, opts...)
}

func colorFormat(srgb texprep.PixelFormat, linear bool) texprep.PixelFormat {
	if !linear {
		switch srgb {
		case texprep.FormatUNorm8Vec3:
			return texprep.FormatUNorm8Vec3SRGB
		case texprep.FormatUNorm8Vec4:
			return texprep.FormatUNorm8Vec4SRGB
		}
	}
	return srgb
}

// copyRows packs rows of rowBytes bytes read from a strided buffer.
func copyRows(pix []byte, stride, offset, rowBytes, rows int) []byte {
	out := make([]byte, rowBytes*rows)
	for y := range rows {
		s := offset + y*stride
		copy(out[y*rowBytes:(y+1)*rowBytes], pix[s:s+rowBytes])
	}
	return out
}

// nativeRows is copyRows for big-endian 16-bit elements, which it
// rewrites in native byte order.
func nativeRows(pix []byte, stride, offset, rowBytes, rows int) []byte {
	out := make([]byte, rowBytes*rows)
	for y := range rows {
		s := offset + y*stride
		row := out[y*rowBytes : (y+1)*rowBytes]
		for i := 0; i < rowBytes; i += 2 {
			binary.NativeEndian.PutUint16(row[i:], binary.BigEndian.Uint16(pix[s+i:]))
		}
	}
	return out
}

// rgbPix packs the color channels of an opaque image.
func rgbPix(img image.Image) []byte {
	b := img.Bounds()
	out := make([]byte, 0, 3*b.Dx()*b.Dy())

	if m, ok := img.(*image.RGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := m.PixOffset(b.Min.X, y)
			for range b.Dx() {
				out = append(out, m.Pix[i], m.Pix[i+1], m.Pix[i+2])
				i += 4
			}
		}
		return out
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			out = append(out, uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		}
	}
	return out
}
