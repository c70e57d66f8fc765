// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "github.com/gogpu/gpx/color"

// PutPixel writes the state color at (x, y), blending with the existing
// pixel as the blend mode requires. Pixels outside the target are dropped.
func PutPixel(st *State, x, y int) {
	writePixel(st, x, y, st.Color, 0xFF)
}

// PutPixelCoverage writes the state color at (x, y) with its alpha scaled
// by coverage. Zero coverage writes nothing.
func PutPixelCoverage(st *State, x, y int, coverage uint8) {
	if coverage == 0 {
		return
	}
	writePixel(st, x, y, st.Color, coverage)
}

func writePixel(st *State, x, y int, c color.Color, coverage uint8) {
	t := st.Target
	if t == nil {
		return
	}

	alpha, blend := effectiveAlpha(st, c, coverage)
	if !blend {
		_ = t.Set(x, y, color.Convert(c, t.Format(), st.Palette))
		return
	}
	if alpha == 0 {
		return
	}

	over := color.WithAlpha(color.Convert(c, color.FormatRGBA8888, st.Palette), alpha)
	under := color.Convert(t.Get(x, y), color.FormatRGBA8888, t.Palette())
	if over.Format != color.FormatRGBA8888 || under.Format != color.FormatRGBA8888 {
		_ = t.Set(x, y, color.Convert(c, t.Format(), st.Palette))
		return
	}
	_ = t.Set(x, y, color.Blend(under, over))
}

// effectiveAlpha returns the alpha c is composed with and whether any
// blending is needed at all.
func effectiveAlpha(st *State, c color.Color, coverage uint8) (uint8, bool) {
	a := uint32(0xFF)
	blend := false
	if st.Blend&BlendChannel != 0 {
		a = uint32(color.Convert(c, color.FormatRGBA8888, st.Palette).Alpha())
		blend = true
	}
	if st.Blend&BlendGlobal != 0 {
		a = mul255(a, uint32(st.Alpha))
		blend = true
	}
	if coverage != 0xFF {
		a = mul255(a, uint32(coverage))
		blend = true
	}
	return uint8(a), blend
}

// mul255 multiplies two values in [0, 255] as fractions of 255.
func mul255(a, b uint32) uint32 {
	return (a*b + 127) / 255
}
