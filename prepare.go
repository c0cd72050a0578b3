package texprep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/texprep/internal/parallel"
)

// parallelGrain is the smallest texel range handed to a pool worker.
const parallelGrain = 1 << 16

var sharedPool = sync.OnceValue(func() *parallel.Pool {
	return parallel.NewPool(0)
})

// Source is a decoded image waiting to be uploaded.
type Source struct {
	Format PixelFormat
	Width  int
	Height int

	// Pix holds the texels row by row with no padding. Multi-byte
	// elements are in native byte order. Compressed formats hold whole
	// 4x4 blocks.
	Pix []byte
}

// Texture is a Source rewritten into a format the GPU accepts.
type Texture struct {
	Format TargetFormat
	Width  int
	Height int

	// Pix holds the texels in Format's layout. It may share the source
	// buffer when no conversion was needed or WithInPlace was set.
	Pix []byte

	// Op is the transformation applied to the source texels.
	Op Op
}

// BytesPerRow returns the tightly packed row pitch of t.
func (t *Texture) BytesPerRow() int {
	return t.Format.BytesPerRow(t.Width)
}

// Prepare selects the target format for src and converts its texels.
//
// Formats the GPU cannot hold return a *FormatError wrapping
// ErrUnsupportedFormat; the diagnostic is also logged at its severity's
// level so loaders that skip the texture leave a trace.
func Prepare(src Source, opts ...Option) (*Texture, error) {
	o := buildOptions(opts)
	log := o.logger

	if src.Width <= 0 || src.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, src.Width, src.Height)
	}

	sel, err := Select(src.Format, o.premultiplyAlpha, o.avoidThreeComponent)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			log.Log(context.Background(), fe.Severity.Level(), "texprep: no target format",
				"format", fe.Format.String(),
				"severity", fe.Severity.String(),
				"reason", fe.Reason)
		}
		return nil, err
	}
	if !sel.Target.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, src.Format)
	}

	need := src.Format.ImageBytes(src.Width, src.Height)
	if len(src.Pix) < need {
		return nil, fmt.Errorf("%w: %s %dx%d needs %d bytes, have %d",
			ErrBufferTooSmall, src.Format, src.Width, src.Height, need, len(src.Pix))
	}

	tex := &Texture{
		Format: sel.Target,
		Width:  src.Width,
		Height: src.Height,
		Op:     sel.Op,
	}
	if sel.Convert == nil {
		tex.Pix = src.Pix[:need]
		return tex, nil
	}

	texels := src.Width * src.Height
	size := sel.Target.ImageBytes(src.Width, src.Height)
	inPlace := o.inPlace && cap(src.Pix) >= size
	if inPlace {
		tex.Pix = src.Pix[:size]
	} else {
		tex.Pix = make([]byte, size)
	}

	if o.parallel && !(inPlace && sel.Op == OpExpand) {
		convertParallel(sel.Convert, src.Pix[:need], texels, tex.Pix,
			src.Format.BytesPerTexel(), sel.Target.BytesPerTexel())
	} else {
		sel.Convert(src.Pix[:need], texels, tex.Pix)
	}

	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("texprep: converted texture",
			"format", src.Format.String(),
			"target", sel.Target.String(),
			"op", sel.Op.String(),
			"texels", texels,
			"in_place", inPlace,
			"parallel", o.parallel)
	}
	return tex, nil
}

// convertParallel runs c over disjoint texel ranges of src and dst.
func convertParallel(c Conversion, src []byte, texels int, dst []byte, srcTexel, dstTexel int) {
	sharedPool().Range(texels, parallelGrain, func(start, end int) {
		c(src[start*srcTexel:end*srcTexel], end-start, dst[start*dstTexel:end*dstTexel])
	})
}
