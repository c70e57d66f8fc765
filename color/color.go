package color

import (
	"fmt"
	stdcolor "image/color"
)

// Color is a packed pixel value tagged with its format.
type Color struct {
	Bits   uint32
	Format Format
}

// New tags raw bits with a format, discarding bits the format does not use.
func New(bits uint32, f Format) Color {
	return Color{Bits: bits & f.Mask(), Format: f}
}

// Gray8 creates an 8-bit grayscale color.
func Gray8(v uint8) Color {
	return Color{Bits: uint32(v), Format: FormatGray8}
}

// RGB332 creates a color from 3-bit red, 3-bit green and 2-bit blue.
func RGB332(r, g, b uint8) Color {
	return pack(FormatRGB332, uint32(r), uint32(g), uint32(b), 0)
}

// RGB565 creates a color from 5-bit red, 6-bit green and 5-bit blue.
func RGB565(r, g, b uint8) Color {
	return pack(FormatRGB565, uint32(r), uint32(g), uint32(b), 0)
}

// RGBA5551 creates a color from 5-bit channels and a 1-bit alpha.
func RGBA5551(r, g, b, a uint8) Color {
	return pack(FormatRGBA5551, uint32(r), uint32(g), uint32(b), uint32(a))
}

// RGB888 creates a 24-bit color.
func RGB888(r, g, b uint8) Color {
	return pack(FormatRGB888, uint32(r), uint32(g), uint32(b), 0)
}

// RGBA8888 creates a 32-bit color with alpha in the low byte.
func RGBA8888(r, g, b, a uint8) Color {
	return pack(FormatRGBA8888, uint32(r), uint32(g), uint32(b), uint32(a))
}

// ARGB8888 creates a 32-bit color with alpha in the high byte.
func ARGB8888(r, g, b, a uint8) Color {
	return pack(FormatARGB8888, uint32(r), uint32(g), uint32(b), uint32(a))
}

// YUV creates a packed YUV triple.
func YUV(y, u, v uint8) Color {
	return Color{Bits: uint32(y)<<16 | uint32(u)<<8 | uint32(v), Format: FormatYUV}
}

// Index creates a palette index color in one of the indexed formats.
func Index(f Format, i uint32) Color {
	return New(i, f)
}

// Common colors
var (
	Black       = RGBA8888(0, 0, 0, 0xFF)
	White       = RGBA8888(0xFF, 0xFF, 0xFF, 0xFF)
	Red         = RGBA8888(0xFF, 0, 0, 0xFF)
	Green       = RGBA8888(0, 0xFF, 0, 0xFF)
	Blue        = RGBA8888(0, 0, 0xFF, 0xFF)
	Transparent = RGBA8888(0, 0, 0, 0)
)

// pack builds a direct-format color from native-width channels.
func pack(f Format, r, g, b, a uint32) Color {
	l := formatInfoTable[f].layout
	var bits uint32
	for i, v := range [4]uint32{r, g, b, a} {
		w := l.width[i]
		if w == 0 {
			continue
		}
		bits |= (v & (1<<w - 1)) << l.shift[i]
	}
	return Color{Bits: bits, Format: f}
}

// Channels returns the red, green, blue and alpha channels at their native
// widths. Grayscale reports the level in every color channel and formats
// without alpha report a zero a. ok is false for indexed and YUV colors,
// which carry no channels.
func (c Color) Channels() (r, g, b, a uint32, ok bool) {
	if !c.Format.direct() {
		return 0, 0, 0, 0, false
	}
	info := formatInfoTable[c.Format]
	ch := unpack(c.Bits, info.layout)
	if info.IsGrayscale {
		return ch[chR], ch[chR], ch[chR], 0, true
	}
	return ch[chR], ch[chG], ch[chB], ch[chA], true
}

// Alpha returns the alpha channel widened to 8 bits (0xFF for opaque
// formats).
func (c Color) Alpha() uint8 {
	info := c.Format.Info()
	if !info.HasAlpha {
		return 0xFF
	}
	l := info.layout
	v := (c.Bits >> l.shift[chA]) & (1<<l.width[chA] - 1)
	return uint8(widen(v, l.width[chA]))
}

func unpack(bits uint32, l layout) [4]uint32 {
	var ch [4]uint32
	for i := range ch {
		w := l.width[i]
		if w == 0 {
			continue
		}
		ch[i] = (bits >> l.shift[i]) & (1<<w - 1)
	}
	return ch
}

// String returns the format and the packed value in hex.
func (c Color) String() string {
	return fmt.Sprintf("%s(%#x)", c.Format, c.Bits)
}

// RGBA implements image/color.Color. Indexed and YUV colors cannot be
// resolved without context and report transparent black.
func (c Color) RGBA() (r, g, b, a uint32) {
	v := Convert(c, FormatRGBA8888, nil)
	if v.Format != FormatRGBA8888 {
		return 0, 0, 0, 0
	}
	return stdcolor.NRGBA{
		R: uint8(v.Bits >> 24),
		G: uint8(v.Bits >> 16),
		B: uint8(v.Bits >> 8),
		A: uint8(v.Bits),
	}.RGBA()
}

// NRGBA returns the color as a non-premultiplied standard color, resolving
// indexed values through pal.
func (c Color) NRGBA(pal *Palette) stdcolor.NRGBA {
	v := Convert(c, FormatRGBA8888, pal)
	if v.Format != FormatRGBA8888 {
		return stdcolor.NRGBA{}
	}
	return stdcolor.NRGBA{
		R: uint8(v.Bits >> 24),
		G: uint8(v.Bits >> 16),
		B: uint8(v.Bits >> 8),
		A: uint8(v.Bits),
	}
}

// FromStd converts a standard library color into format f. Indexed targets
// are resolved against pal by exact match; without a match the index 0 is
// returned.
func FromStd(c stdcolor.Color, f Format, pal *Palette) Color {
	if v, ok := c.(Color); ok {
		if v.Format == f {
			return v
		}
		c = v.NRGBA(pal)
	}
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	rgba := RGBA8888(n.R, n.G, n.B, n.A)
	if f.IsIndexed() {
		if i, ok := pal.Find(rgba); ok {
			return Index(f, i)
		}
		return Index(f, 0)
	}
	return Convert(rgba, f, nil)
}

// Model returns an image/color.Model that converts into format f.
func Model(f Format, pal *Palette) stdcolor.Model {
	return stdcolor.ModelFunc(func(c stdcolor.Color) stdcolor.Color {
		return FromStd(c, f, pal)
	})
}
