package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestExpandRGBInPlaceUint8(t *testing.T) {
	buf := make([]uint8, 8)
	copy(buf, []uint8{10, 20, 30, 40, 50, 60})

	ExpandRGB(buf, 2, buf, math.MaxUint8)

	require.Equal(t, []uint8{10, 20, 30, 255, 40, 50, 60, 255}, buf)
}

func TestExpandRGBFloat32(t *testing.T) {
	dst := make([]float32, 4)
	ExpandRGB([]float32{1, 2, 3}, 1, dst, 1)
	require.Equal(t, []float32{1, 2, 3, 1}, dst)
}

// Texels 1 and 2 overlap their own destination when growing in place; a
// long run checks every texel survives.
func TestExpandRGBInPlaceLong(t *testing.T) {
	const texels = 257

	buf := make([]uint16, 4*texels)
	for i := 0; i < 3*texels; i++ {
		buf[i] = uint16(i + 1)
	}

	ExpandRGB(buf, texels, buf, math.MaxUint16)

	for i := 0; i < texels; i++ {
		require.Equal(t, uint16(3*i+1), buf[4*i], "texel %d red", i)
		require.Equal(t, uint16(3*i+2), buf[4*i+1], "texel %d green", i)
		require.Equal(t, uint16(3*i+3), buf[4*i+2], "texel %d blue", i)
		require.Equal(t, uint16(math.MaxUint16), buf[4*i+3], "texel %d alpha", i)
	}
}

func TestExpandRGBSeparateBuffers(t *testing.T) {
	src := []int32{-1, 0, 1, 7, 8, 9}
	dst := make([]int32, 8)

	ExpandRGB(src, 2, dst, MaxValue[int32]())

	require.Equal(t, []int32{-1, 0, 1, math.MaxInt32, 7, 8, 9, math.MaxInt32}, dst)
	require.Equal(t, []int32{-1, 0, 1, 7, 8, 9}, src, "source must not change")
}

func TestExpandRGBOpaqueValues(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		buf := make([]int8, 4)
		copy(buf, []int8{-128, 0, 127})
		ExpandRGB(buf, 1, buf, MaxValue[int8]())
		require.Equal(t, []int8{-128, 0, 127, 127}, buf)
	})

	t.Run("half", func(t *testing.T) {
		buf := make([]uint16, 4)
		copy(buf, []uint16{
			float16.Fromfloat32(0.25).Bits(),
			float16.Fromfloat32(0.5).Bits(),
			float16.Fromfloat32(0.75).Bits(),
		})
		ExpandRGB(buf, 1, buf, HalfOne)
		require.Equal(t, float32(1), float16.Frombits(buf[3]).Float32())
		require.Equal(t, float32(0.75), float16.Frombits(buf[2]).Float32())
	})
}

func TestExpandRGBZeroTexels(t *testing.T) {
	dst := []uint8{9, 9, 9, 9}
	ExpandRGB(nil, 0, dst, 255)
	require.Equal(t, []uint8{9, 9, 9, 9}, dst)
}

func TestExpandRGBShortDestinationPanicsBeforeWriting(t *testing.T) {
	src := []uint8{1, 2, 3, 4, 5, 6}
	dst := make([]uint8, 7)

	require.Panics(t, func() { ExpandRGB(src, 2, dst, 255) })
	require.Equal(t, make([]uint8, 7), dst)
}

func BenchmarkExpandRGBInPlace(b *testing.B) {
	const texels = 1024 * 1024
	buf := make([]uint8, 4*texels)
	b.SetBytes(4 * texels)
	for b.Loop() {
		ExpandRGB(buf, texels, buf, 255)
	}
}
