package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxMinValue(t *testing.T) {
	require.Equal(t, uint8(math.MaxUint8), MaxValue[uint8]())
	require.Equal(t, int8(math.MaxInt8), MaxValue[int8]())
	require.Equal(t, uint16(math.MaxUint16), MaxValue[uint16]())
	require.Equal(t, int16(math.MaxInt16), MaxValue[int16]())
	require.Equal(t, uint32(math.MaxUint32), MaxValue[uint32]())
	require.Equal(t, int32(math.MaxInt32), MaxValue[int32]())
	require.Equal(t, int64(math.MaxInt64), MaxValue[int64]())

	require.Equal(t, uint8(0), MinValue[uint8]())
	require.Equal(t, int8(math.MinInt8), MinValue[int8]())
	require.Equal(t, int32(math.MinInt32), MinValue[int32]())
}

func TestSaturate(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want int32
	}{
		{"in range", 12.7, 12},
		{"negative truncates toward zero", -12.7, -12},
		{"above max", 3e9, math.MaxInt32},
		{"float32 rounding of max", float32(math.MaxInt32), math.MaxInt32},
		{"below min", -3e9, math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, saturate(tt.in, MinValue[int32](), MaxValue[int32]()))
		})
	}
}
