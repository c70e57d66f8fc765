package color

import "github.com/gogpu/gpx/internal/fxmath"

// Lerp interpolates per channel between l and r at a whole percent
// (0..100). r is converted to the format of l first; the channels are
// interpolated at the native widths of that format. percent 0 returns l,
// percent 100 returns r and equal endpoints return l, all without
// arithmetic. Indexed and YUV colors have no channels and return l.
func Lerp(l, r Color, percent int) Color {
	switch {
	case percent <= 0:
		return l
	case percent >= 100:
		return r
	case l == r:
		return l
	}

	rr := Convert(r, l.Format, nil)
	if rr.Format != l.Format {
		return l
	}
	if l.Bits == rr.Bits {
		return l
	}
	if !l.Format.direct() {
		return l
	}

	info := formatInfoTable[l.Format]
	lc := unpack(l.Bits, info.layout)
	rc := unpack(rr.Bits, info.layout)

	var bits uint32
	for i := chR; i <= chA; i++ {
		w := info.layout.width[i]
		if w == 0 {
			continue
		}
		v := uint32(fxmath.Lerp(int(lc[i]), int(rc[i]), percent))
		bits |= (v & (1<<w - 1)) << info.layout.shift[i]
	}
	return Color{Bits: bits, Format: l.Format}
}

// Bilerp interpolates across a quad of colors. c00 and c10 are the left and
// right colors of the top edge, c01 and c11 those of the bottom edge. The x
// interpolation runs first on both edges, then y between the two results.
func Bilerp(c00, c10, c01, c11 Color, xPercent, yPercent int) Color {
	top := Lerp(c00, c10, xPercent)
	bottom := Lerp(c01, c11, xPercent)
	return Lerp(top, bottom, yPercent)
}
