package upload

import "errors"

// Upload errors.
var (
	// ErrNilTexture is returned when no prepared texture is given.
	ErrNilTexture = errors.New("upload: nil texture")

	// ErrUnsupportedTarget is returned by Create and Update for targets
	// other than 8-bit RGBA.
	ErrUnsupportedTarget = errors.New("upload: target is not 8-bit RGBA")

	// ErrNoWebGPUFormat is returned by Uploader for targets WebGPU cannot
	// represent, such as 3-component formats. Prepare with
	// texprep.ForWebGPU to avoid them.
	ErrNoWebGPUFormat = errors.New("upload: no WebGPU format for target")

	// ErrSizeMismatch is returned when the pixel data does not match the
	// texture dimensions.
	ErrSizeMismatch = errors.New("upload: pixel data size mismatch")
)
