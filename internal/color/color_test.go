package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSRGBToLinear(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.04046, float32(math.Pow((0.04046+0.055)/1.055, 2.4))},
		{"mid gray", 0.5, float32(math.Pow((0.5+0.055)/1.055, 2.4))},
		{"negative clamps", -0.5, 0},
		{"above one clamps", 1.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SRGBToLinear(tt.input), 1e-5)
		})
	}
}

func TestLinearToSRGB(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"just above threshold", 0.0031309, float32(1.055*math.Pow(0.0031309, 1.0/2.4) - 0.055)},
		{"mid gray linear", 0.21404, float32(1.055*math.Pow(0.21404, 1.0/2.4) - 0.055)},
		{"negative clamps", -1, 0},
		{"above one clamps", 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LinearToSRGB(tt.input), 1e-5)
		})
	}
}

// Round-tripping every 8-bit level must stay within one level.
func TestRoundTrip8Bit(t *testing.T) {
	const maxError = 1.0 / 255.0

	for i := 0; i <= 255; i++ {
		s := float32(i) / 255
		got := LinearToSRGB(SRGBToLinear(s))
		require.InDelta(t, s, got, maxError, "level %d", i)
	}
}

func TestTransferMonotonic(t *testing.T) {
	prevL, prevS := float32(-1), float32(-1)
	for i := 0; i <= 1000; i++ {
		v := float32(i) / 1000
		l, s := SRGBToLinear(v), LinearToSRGB(v)
		require.GreaterOrEqual(t, l, prevL, "SRGBToLinear not monotonic at %v", v)
		require.GreaterOrEqual(t, s, prevS, "LinearToSRGB not monotonic at %v", v)
		prevL, prevS = l, s
	}
}
