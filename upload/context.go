package upload

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/texprep"
)

// premultipliedMarker is implemented by host textures that track whether
// their contents are premultiplied.
type premultipliedMarker interface {
	SetPremultiplied(bool)
}

// Create creates a texture through a gpucontext host. tex must be
// 8-bit RGBA. Textures whose color channels were premultiplied are
// marked as such when the host texture supports it.
func Create(c gpucontext.TextureCreator, tex *texprep.Texture) (gpucontext.Texture, error) {
	if err := checkRGBA(tex); err != nil {
		return nil, err
	}

	gt, err := c.NewTextureFromRGBA(tex.Width, tex.Height, tex.Pix)
	if err != nil {
		return nil, fmt.Errorf("upload: create texture: %w", err)
	}
	if m, ok := gt.(premultipliedMarker); ok {
		m.SetPremultiplied(premultiplied(tex.Op))
	}
	return gt, nil
}

// Update replaces the contents of an existing host texture with tex.
func Update(u gpucontext.TextureUpdater, tex *texprep.Texture) error {
	if err := checkRGBA(tex); err != nil {
		return err
	}
	if err := u.UpdateData(tex.Pix); err != nil {
		return fmt.Errorf("upload: update texture: %w", err)
	}
	return nil
}

func checkRGBA(tex *texprep.Texture) error {
	if tex == nil {
		return ErrNilTexture
	}
	switch tex.Format {
	case texprep.TargetUNorm8Vec4, texprep.TargetUNorm8Vec4SRGB:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedTarget, tex.Format)
	}
	if want := tex.Format.ImageBytes(tex.Width, tex.Height); len(tex.Pix) != want {
		return fmt.Errorf("%w: %dx%d %s needs %d bytes, have %d",
			ErrSizeMismatch, tex.Width, tex.Height, tex.Format, want, len(tex.Pix))
	}
	return nil
}

func premultiplied(op texprep.Op) bool {
	switch op {
	case texprep.OpPremultiply, texprep.OpPremultiplySRGB, texprep.OpPremultiplyFloat:
		return true
	}
	return false
}
