package upload

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/texprep"
	"github.com/gogpu/wgpu"
)

// Device creates textures. *wgpu.Device implements it.
type Device interface {
	CreateTexture(desc *wgpu.TextureDescriptor) (*wgpu.Texture, error)
}

// Queue writes texture data. *wgpu.Queue implements it.
type Queue interface {
	WriteTexture(dst *wgpu.ImageCopyTexture, data []byte, layout *wgpu.ImageDataLayout, size *wgpu.Extent3D) error
}

// Uploader creates sampled textures on a wgpu device.
type Uploader struct {
	device Device
	queue  Queue
	usage  wgpu.TextureUsage

	release func(*wgpu.Texture)
}

// NewUploader returns an Uploader that creates textures on device and
// fills them through queue.
func NewUploader(device Device, queue Queue) *Uploader {
	return &Uploader{
		device:  device,
		queue:   queue,
		usage:   wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		release: (*wgpu.Texture).Release,
	}
}

// Upload creates a single-mip 2D texture holding tex. The caller owns the
// returned texture and must Release it.
func (u *Uploader) Upload(tex *texprep.Texture, label string) (*wgpu.Texture, error) {
	desc, err := textureDescriptor(tex, label, u.usage)
	if err != nil {
		return nil, err
	}

	gt, err := u.device.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("upload: create texture %q: %w", label, err)
	}

	dst := &wgpu.ImageCopyTexture{
		Texture: gt,
		Aspect:  gputypes.TextureAspectAll,
	}
	layout := dataLayout(tex)
	if err := u.queue.WriteTexture(dst, tex.Pix, &layout, &desc.Size); err != nil {
		u.release(gt)
		return nil, fmt.Errorf("upload: write texture %q: %w", label, err)
	}
	return gt, nil
}

func textureDescriptor(tex *texprep.Texture, label string, usage wgpu.TextureUsage) (*wgpu.TextureDescriptor, error) {
	if tex == nil {
		return nil, ErrNilTexture
	}
	format := tex.Format.WebGPU()
	if format == gputypes.TextureFormatUndefined {
		return nil, fmt.Errorf("%w: %s", ErrNoWebGPUFormat, tex.Format)
	}
	if want := tex.Format.ImageBytes(tex.Width, tex.Height); want == 0 || len(tex.Pix) < want {
		return nil, fmt.Errorf("%w: %dx%d %s needs %d bytes, have %d",
			ErrSizeMismatch, tex.Width, tex.Height, tex.Format, want, len(tex.Pix))
	}

	return &wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              uint32(tex.Width),  //nolint:gosec // positive, checked above
			Height:             uint32(tex.Height), //nolint:gosec // positive, checked above
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         usage,
	}, nil
}

// dataLayout describes tightly packed rows. For compressed formats a row
// is one row of 4x4 blocks.
func dataLayout(tex *texprep.Texture) wgpu.ImageDataLayout {
	rows := tex.Height
	if tex.Format.IsCompressed() {
		rows = (tex.Height + 3) / 4
	}
	return wgpu.ImageDataLayout{
		BytesPerRow:  uint32(tex.BytesPerRow()), //nolint:gosec // bounded by the image size
		RowsPerImage: uint32(rows),              //nolint:gosec // bounded by the image size
	}
}
