package texprep

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
)

func TestTargetWebGPU(t *testing.T) {
	tests := []struct {
		target TargetFormat
		want   gputypes.TextureFormat
	}{
		{TargetInvalid, gputypes.TextureFormatUndefined},
		{TargetUNorm8, gputypes.TextureFormatR8Unorm},
		{TargetUNorm8Vec4, gputypes.TextureFormatRGBA8Unorm},
		{TargetUNorm8Vec4SRGB, gputypes.TextureFormatRGBA8UnormSrgb},
		{TargetSNorm8Vec2, gputypes.TextureFormatRG8Snorm},
		{TargetFloat16Vec4, gputypes.TextureFormatRGBA16Float},
		{TargetFloat32, gputypes.TextureFormatR32Float},
		{TargetUInt16Vec4, gputypes.TextureFormatRGBA16Uint},
		{TargetInt32Vec2, gputypes.TextureFormatRG32Sint},
		{TargetBC7UNorm8Vec4SRGB, gputypes.TextureFormatBC7RGBAUnormSrgb},
		{TargetBC6UFloatVec3, gputypes.TextureFormatBC6HRGBUfloat},
		{TargetBC1UNorm8Vec4, gputypes.TextureFormatBC1RGBAUnorm},

		// WebGPU has no 3-component formats.
		{TargetFloat16Vec3, gputypes.TextureFormatUndefined},
		{TargetFloat32Vec3, gputypes.TextureFormatUndefined},
		{TargetUInt16Vec3, gputypes.TextureFormatUndefined},
		{TargetInt32Vec3, gputypes.TextureFormatUndefined},

		{targetCount, gputypes.TextureFormatUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.target.WebGPU())
		})
	}
}

func TestTargetWebGPUCoversNonThreeComponent(t *testing.T) {
	for tf := TargetInvalid + 1; tf < targetCount; tf++ {
		if tf.Channels() == 3 && !tf.IsCompressed() {
			continue
		}
		assert.NotEqual(t, gputypes.TextureFormatUndefined, tf.WebGPU(), "%s", tf)
	}
}

func TestSelectForWebGPUAlwaysMaps(t *testing.T) {
	for f := FormatInvalid + 1; f < formatCount; f++ {
		sel, err := Select(f, false, true)
		if err != nil {
			continue
		}
		assert.NotEqual(t, gputypes.TextureFormatUndefined, sel.Target.WebGPU(), "%s -> %s", f, sel.Target)
	}
}

func TestTargetLayout(t *testing.T) {
	tests := []struct {
		target TargetFormat
		texel  int
		row    int // for width 10
	}{
		{TargetUNorm8Vec4, 4, 40},
		{TargetFloat16Vec3, 6, 60},
		{TargetInt32Vec4, 16, 160},
		{TargetBC1UNorm8Vec4, 0, 3 * 8},
		{TargetBC3UNorm8Vec4, 0, 3 * 16},
	}

	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			assert.True(t, tt.target.IsValid())
			assert.Equal(t, tt.texel, tt.target.BytesPerTexel())
			assert.Equal(t, tt.row, tt.target.BytesPerRow(10))
		})
	}
	assert.False(t, TargetInvalid.IsValid())
	assert.Equal(t, "TargetFormat(99)", TargetFormat(99).String())
}
