package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The table must be bit-identical to the direct computation.
func TestSRGB8ToLinearMatchesDirect(t *testing.T) {
	for i := 0; i < 256; i++ {
		require.Equal(t, SRGBToLinear(float32(i)/255), SRGB8ToLinear(uint8(i)), "level %d", i)
	}
}

func TestSRGB8ToLinearKnownValues(t *testing.T) {
	require.Equal(t, float32(0), SRGB8ToLinear(0))
	require.InDelta(t, 1.0, SRGB8ToLinear(255), 1e-6)
	require.InDelta(t, 0.2159, SRGB8ToLinear(128), 1e-3)
}

func BenchmarkSRGB8ToLinear(b *testing.B) {
	var sum float32
	for b.Loop() {
		for i := 0; i < 256; i++ {
			sum += SRGB8ToLinear(uint8(i))
		}
	}
	_ = sum
}

func BenchmarkSRGBToLinear(b *testing.B) {
	var sum float32
	for b.Loop() {
		for i := 0; i < 256; i++ {
			sum += SRGBToLinear(float32(i) / 255)
		}
	}
	_ = sum
}
