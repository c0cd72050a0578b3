package upload

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/texprep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHostTexture struct {
	w, h          int
	data          []byte
	premultiplied bool
	updateErr     error
}

func (t *fakeHostTexture) Width() int                { return t.w }
func (t *fakeHostTexture) Height() int               { return t.h }
func (t *fakeHostTexture) SetPremultiplied(pm bool)  { t.premultiplied = pm }
func (t *fakeHostTexture) UpdateData(b []byte) error { t.data = b; return t.updateErr }

type fakeCreator struct {
	err error
}

func (c fakeCreator) NewTextureFromRGBA(w, h int, data []byte) (gpucontext.Texture, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &fakeHostTexture{w: w, h: h, data: data}, nil
}

func prepared(t *testing.T, format texprep.PixelFormat, w, h int, pix []byte, opts ...texprep.Option) *texprep.Texture {
	t.Helper()
	tex, err := texprep.Prepare(texprep.Source{Format: format, Width: w, Height: h, Pix: pix}, opts...)
	require.NoError(t, err)
	return tex
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name          string
		tex           *texprep.Texture
		premultiplied bool
	}{
		{"expanded rgb", prepared(t, texprep.FormatUNorm8Vec3SRGB, 1, 1, []byte{1, 2, 3}), false},
		{"straight alpha", prepared(t, texprep.FormatUNorm8Vec4, 1, 1, []byte{1, 2, 3, 4}), false},
		{
			"premultiplied",
			prepared(t, texprep.FormatUNorm8Vec4SRGB, 1, 1, []byte{1, 2, 3, 4}, texprep.WithPremultiplyAlpha(true)),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt, err := Create(fakeCreator{}, tt.tex)
			require.NoError(t, err)
			host := gt.(*fakeHostTexture)
			assert.Equal(t, 1, host.Width())
			assert.Equal(t, 1, host.Height())
			assert.Equal(t, tt.tex.Pix, host.data)
			assert.Equal(t, tt.premultiplied, host.premultiplied)
		})
	}
}

func TestCreateErrors(t *testing.T) {
	boom := errors.New("device lost")
	rgba := prepared(t, texprep.FormatUNorm8Vec4, 1, 1, []byte{1, 2, 3, 4})
	float := prepared(t, texprep.FormatFloat32, 1, 1, make([]byte, 4))
	short := &texprep.Texture{Format: texprep.TargetUNorm8Vec4, Width: 2, Height: 2, Pix: make([]byte, 4)}

	tests := []struct {
		name    string
		creator fakeCreator
		tex     *texprep.Texture
		err     error
	}{
		{"nil", fakeCreator{}, nil, ErrNilTexture},
		{"float target", fakeCreator{}, float, ErrUnsupportedTarget},
		{"short", fakeCreator{}, short, ErrSizeMismatch},
		{"creator fails", fakeCreator{err: boom}, rgba, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt, err := Create(tt.creator, tt.tex)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, gt)
		})
	}
}

func TestUpdate(t *testing.T) {
	host := &fakeHostTexture{w: 1, h: 1}
	tex := prepared(t, texprep.FormatUNorm8Vec3, 1, 1, []byte{9, 8, 7})

	require.NoError(t, Update(host, tex))
	assert.Equal(t, []byte{9, 8, 7, 255}, host.data)

	host.updateErr = errors.New("destroyed")
	assert.ErrorIs(t, Update(host, tex), host.updateErr)

	assert.ErrorIs(t, Update(host, prepared(t, texprep.FormatUNorm8Vec2, 1, 1, []byte{1, 2})), ErrUnsupportedTarget)
}
