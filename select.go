package texprep

// Selection is the outcome of Select: the format to allocate and the
// conversion to run over the source before upload.
type Selection struct {
	// Target is the GPU storage format.
	Target TargetFormat

	// Op describes Convert. It is OpNone exactly when Convert is nil.
	Op Op

	// Convert rewrites the source into the target layout. Nil means the
	// source bytes are uploaded unchanged.
	Convert Conversion
}

// rule holds the selection policy for one pixel format.
type rule struct {
	// target is used when no expansion happens.
	target TargetFormat

	// expand and expanded apply to 3-channel formats. mustExpand is set for
	// normalized formats, which have no 3-channel target at all.
	expand     Conversion
	expanded   TargetFormat
	mustExpand bool

	// premultiply applies to 4-channel formats.
	premultiply   Conversion
	premultiplyOp Op

	// unsupported is the reason a recognized format has no target.
	unsupported string
}

const (
	reasonDouble   = "double texture formats not supported"
	reasonInt16    = "signed 16-bit integer texture formats not supported"
	reasonUInt32   = "unsigned 32-bit integer texture formats not supported"
	reasonSRGBLow  = "one and two channel sRGB texture formats not supported"
	reasonCount    = "format count passed as a format"
	reasonOutRange = "value outside the pixel format enumeration"
)

func passthrough(t TargetFormat) rule {
	return rule{target: t}
}

func mustExpand(to TargetFormat, c Conversion) rule {
	return rule{expand: c, expanded: to, mustExpand: true}
}

func mayExpand(t, to TargetFormat, c Conversion) rule {
	return rule{target: t, expand: c, expanded: to}
}

func premultiplied(t TargetFormat, c Conversion, op Op) rule {
	return rule{target: t, premultiply: c, premultiplyOp: op}
}

func rejected(reason string) rule {
	return rule{unsupported: reason}
}

// rules is indexed by PixelFormat. FormatInvalid keeps the zero rule.
//
// Signed integer and 16-bit unsigned integer data is premultiplied like
// color data. Premultiplying such data rarely makes sense, but keeping the
// decision a function of the premultiply flag alone lets material networks
// tell from their topology whether premultiplication happens.
var rules = [formatCount]rule{
	FormatUNorm8:     passthrough(TargetUNorm8),
	FormatUNorm8Vec2: passthrough(TargetUNorm8Vec2),
	FormatUNorm8Vec3: mustExpand(TargetUNorm8Vec4, expandUNorm8),
	FormatUNorm8Vec4: premultiplied(TargetUNorm8Vec4, premultiplyUNorm8, OpPremultiply),

	FormatSNorm8:     passthrough(TargetSNorm8),
	FormatSNorm8Vec2: passthrough(TargetSNorm8Vec2),
	FormatSNorm8Vec3: mustExpand(TargetSNorm8Vec4, expandSNorm8),
	FormatSNorm8Vec4: premultiplied(TargetSNorm8Vec4, premultiplySNorm8, OpPremultiply),

	FormatFloat16:     passthrough(TargetFloat16),
	FormatFloat16Vec2: passthrough(TargetFloat16Vec2),
	FormatFloat16Vec3: mayExpand(TargetFloat16Vec3, TargetFloat16Vec4, expandFloat16),
	FormatFloat16Vec4: premultiplied(TargetFloat16Vec4, premultiplyFloat16, OpPremultiplyFloat),

	FormatFloat32:     passthrough(TargetFloat32),
	FormatFloat32Vec2: passthrough(TargetFloat32Vec2),
	FormatFloat32Vec3: mayExpand(TargetFloat32Vec3, TargetFloat32Vec4, expandFloat32),
	FormatFloat32Vec4: premultiplied(TargetFloat32Vec4, premultiplyFloat32, OpPremultiplyFloat),

	FormatDouble64:     rejected(reasonDouble),
	FormatDouble64Vec2: rejected(reasonDouble),
	FormatDouble64Vec3: rejected(reasonDouble),
	FormatDouble64Vec4: rejected(reasonDouble),

	FormatUInt16:     passthrough(TargetUInt16),
	FormatUInt16Vec2: passthrough(TargetUInt16Vec2),
	FormatUInt16Vec3: mayExpand(TargetUInt16Vec3, TargetUInt16Vec4, expandUInt16),
	FormatUInt16Vec4: premultiplied(TargetUInt16Vec4, premultiplyUInt16, OpPremultiply),

	FormatInt16:     rejected(reasonInt16),
	FormatInt16Vec2: rejected(reasonInt16),
	FormatInt16Vec3: rejected(reasonInt16),
	FormatInt16Vec4: rejected(reasonInt16),

	FormatUInt32:     rejected(reasonUInt32),
	FormatUInt32Vec2: rejected(reasonUInt32),
	FormatUInt32Vec3: rejected(reasonUInt32),
	FormatUInt32Vec4: rejected(reasonUInt32),

	FormatInt32:     passthrough(TargetInt32),
	FormatInt32Vec2: passthrough(TargetInt32Vec2),
	FormatInt32Vec3: mayExpand(TargetInt32Vec3, TargetInt32Vec4, expandInt32),
	FormatInt32Vec4: premultiplied(TargetInt32Vec4, premultiplyInt32, OpPremultiply),

	FormatUNorm8SRGB:     rejected(reasonSRGBLow),
	FormatUNorm8Vec2SRGB: rejected(reasonSRGBLow),
	FormatUNorm8Vec3SRGB: mustExpand(TargetUNorm8Vec4SRGB, expandUNorm8),
	FormatUNorm8Vec4SRGB: premultiplied(TargetUNorm8Vec4SRGB, premultiplyUNorm8SRGB, OpPremultiplySRGB),

	// Premultiplying compressed data would need a decompress/recompress
	// round trip, so compressed formats never get a conversion.
	FormatBC6FloatVec3:      passthrough(TargetBC6FloatVec3),
	FormatBC6UFloatVec3:     passthrough(TargetBC6UFloatVec3),
	FormatBC7UNorm8Vec4:     passthrough(TargetBC7UNorm8Vec4),
	FormatBC7UNorm8Vec4SRGB: passthrough(TargetBC7UNorm8Vec4SRGB),
	FormatBC1UNorm8Vec4:     passthrough(TargetBC1UNorm8Vec4),
	FormatBC3UNorm8Vec4:     passthrough(TargetBC3UNorm8Vec4),
}

// Select chooses the GPU format for textures decoded as f and the
// conversion, if any, their texels need before upload.
//
// premultiplyAlpha requests color channels premultiplied by alpha. It
// applies to uncompressed 4-channel sources only: expanded texels are
// opaque already.
// avoidThreeComponent requests expansion of 3-channel float and integer
// formats for backends without 3-component textures. Normalized 3-channel
// formats are expanded regardless.
//
// On failure the Selection is the zero value (TargetInvalid, no conversion)
// and the error is a *FormatError: SeverityWarning wrapping
// ErrUnsupportedFormat for formats the GPU cannot hold, SeverityCodingError
// wrapping ErrInvalidFormat for values that are not formats. FormatInvalid
// itself selects TargetInvalid without an error.
//
// Select is a pure function and safe for concurrent use.
func Select(f PixelFormat, premultiplyAlpha, avoidThreeComponent bool) (Selection, error) {
	switch {
	case f == FormatInvalid:
		return Selection{}, nil
	case f == formatCount:
		return Selection{}, invalid(f, reasonCount)
	case f > formatCount:
		return Selection{}, invalid(f, reasonOutRange)
	}

	r := &rules[f]
	if r.unsupported != "" {
		return Selection{}, unsupported(f, r.unsupported)
	}
	if r.expand != nil && (r.mustExpand || avoidThreeComponent) {
		return Selection{Target: r.expanded, Op: OpExpand, Convert: r.expand}, nil
	}
	if r.premultiply != nil && premultiplyAlpha {
		return Selection{Target: r.target, Op: r.premultiplyOp, Convert: r.premultiply}, nil
	}
	return Selection{Target: r.target}, nil
}
