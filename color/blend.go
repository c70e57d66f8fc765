package color

import "github.com/gogpu/gpx/internal/fxmath"

// Blend composes over on top of under using the alpha of over:
//
//	result = over*alpha(over) + under*(1-alpha(over))
//
// Both inputs are converted to RGBA8888 first and the result is RGBA8888.
// Alpha is carried in basis points so the arithmetic stays in integers;
// every channel rounds with a +50 bias and is clamped to [0, 255].
func Blend(under, over Color) Color {
	u := Convert(under, FormatRGBA8888, nil)
	o := Convert(over, FormatRGBA8888, nil)
	if u.Format != FormatRGBA8888 || o.Format != FormatRGBA8888 {
		return over
	}

	a := o.Bits & 0xFF
	switch a {
	case 0:
		return u
	case 0xFF:
		return o
	}

	bp := uint32(fxmath.Percent(int(a), 0xFF))
	inv := fxmath.BasisPoints - bp

	var out uint32
	for _, shift := range [3]uint{24, 16, 8} {
		ov := (o.Bits >> shift) & 0xFF
		uv := (u.Bits >> shift) & 0xFF
		out |= blendChannel(ov*bp+uv*inv) << shift
	}
	ua := u.Bits & 0xFF
	out |= blendChannel(a*fxmath.BasisPoints + ua*inv)
	return Color{Bits: out, Format: FormatRGBA8888}
}

// blendChannel scales a basis-point weighted sum back to a byte.
func blendChannel(v uint32) uint32 {
	v = (v/100 + 50) / 100
	if v > 0xFF {
		return 0xFF
	}
	return v
}

// WithAlpha returns c converted to RGBA8888 with its alpha replaced.
func WithAlpha(c Color, alpha uint8) Color {
	v := Convert(c, FormatRGBA8888, nil)
	if v.Format != FormatRGBA8888 {
		return c
	}
	return Color{Bits: v.Bits&^0xFF | uint32(alpha), Format: FormatRGBA8888}
}
