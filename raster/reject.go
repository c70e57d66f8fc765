// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/geom"
)

// Rejection says why a primitive was not drawn.
type Rejection uint8

const (
	// RejectNone means the primitive must be rasterized.
	RejectNone Rejection = iota

	// RejectNoTarget means the state has no target buffer.
	RejectNoTarget

	// RejectMasked means masking is on and every color the primitive
	// writes is the mask color.
	RejectMasked

	// RejectTransparent means global alpha blending is on with zero alpha.
	RejectTransparent

	// RejectClipped means the bounding rect misses a clip rect.
	RejectClipped
)

// String returns the rejection name.
func (r Rejection) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectNoTarget:
		return "no target"
	case RejectMasked:
		return "masked"
	case RejectTransparent:
		return "transparent"
	case RejectClipped:
		return "clipped"
	default:
		return "unknown"
	}
}

// Paint says which colors a primitive writes. The mask test compares
// those colors with the mask color.
type Paint uint8

const (
	// PaintColor writes State.Color.
	PaintColor Paint = iota

	// PaintGradient writes colors between Gradient[0] and Gradient[1].
	PaintGradient

	// PaintCorners writes colors blended from all four gradient colors.
	PaintCorners

	// PaintSource writes source image pixels. Image masks them one by
	// one, so the mask test never rejects the whole blit.
	PaintSource
)

// RectPaint returns the paint of a rect drawn in mode m.
func RectPaint(m DrawMode) Paint {
	switch m {
	case ModeGradientLeftRight, ModeGradientTopBottom:
		return PaintGradient
	case ModeGradientCorners:
		return PaintCorners
	default:
		return PaintColor
	}
}

// Reject runs the O(1) pre-rasterization tests for a primitive whose
// bounding rect is bounds and which writes paint. The bounds must
// intersect the target clip and, when enabled, the secondary clip as well.
func Reject(st *State, bounds geom.Rect, paint Paint) Rejection {
	switch {
	case st.Target == nil:
		return RejectNoTarget
	case st.MaskEnable && masked(st, paint):
		return RejectMasked
	case st.Blend&BlendGlobal != 0 && st.Alpha == 0:
		return RejectTransparent
	case !bounds.Intersects(st.Target.Bounds().Clip(st.TargetClip)):
		return RejectClipped
	case st.ClipEnable && !bounds.Intersects(st.Clip):
		return RejectClipped
	}
	return RejectNone
}

// masked reports whether every color paint can write is the mask color.
func masked(st *State, paint Paint) bool {
	var colors []color.Color
	switch paint {
	case PaintColor:
		return isMaskColor(st.Color, st.MaskColor, st.Palette)
	case PaintGradient:
		colors = st.Gradient[:2]
	case PaintCorners:
		colors = st.Gradient[:]
	default:
		return false
	}
	for _, c := range colors {
		if !isMaskColor(c, st.MaskColor, st.Palette) {
			return false
		}
	}
	return true
}

// isMaskColor compares c with the mask color in c's format.
func isMaskColor(c, mask color.Color, pal *color.Palette) bool {
	if c == mask {
		return true
	}
	if !color.Convertible(mask.Format, c.Format) {
		return false
	}
	return color.Convert(mask, c.Format, pal) == c
}
