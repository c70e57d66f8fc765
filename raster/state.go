// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/geom"
	"github.com/gogpu/gpx/pixmap"
)

// DrawMode selects how closed primitives are shaded.
type DrawMode uint8

const (
	// ModeOutline draws only the boundary of a shape.
	ModeOutline DrawMode = iota

	// ModeFill fills the interior with the state color.
	ModeFill

	// ModeGradientLeftRight fills with a horizontal gradient from
	// Gradient[0] to Gradient[1].
	ModeGradientLeftRight

	// ModeGradientTopBottom fills with a vertical gradient from
	// Gradient[0] to Gradient[1].
	ModeGradientTopBottom

	// ModeGradientCorners fills with a bilinear blend of the four
	// gradient colors, Gradient[0] to Gradient[3] at the top left, top
	// right, bottom left and bottom right corners.
	ModeGradientCorners

	modeCount
)

// String returns the mode name.
func (m DrawMode) String() string {
	switch m {
	case ModeOutline:
		return "Outline"
	case ModeFill:
		return "Fill"
	case ModeGradientLeftRight:
		return "GradientLeftRight"
	case ModeGradientTopBottom:
		return "GradientTopBottom"
	case ModeGradientCorners:
		return "GradientCorners"
	default:
		return "Unknown"
	}
}

// IsValid reports whether m is a known draw mode.
func (m DrawMode) IsValid() bool {
	return m < modeCount
}

// BlendMode is a set of flags controlling how new pixels are composed
// with the pixels already in the target.
type BlendMode uint8

const (
	// BlendNone overwrites the target pixel.
	BlendNone BlendMode = 0

	// BlendChannel uses the alpha channel of the drawn color.
	BlendChannel BlendMode = 1 << 0

	// BlendGlobal uses State.Alpha for every pixel.
	BlendGlobal BlendMode = 1 << 1

	// BlendChannelGlobal multiplies the channel alpha by State.Alpha.
	BlendChannelGlobal = BlendChannel | BlendGlobal
)

// String returns the blend mode name.
func (b BlendMode) String() string {
	switch b {
	case BlendNone:
		return "None"
	case BlendChannel:
		return "Channel"
	case BlendGlobal:
		return "Global"
	case BlendChannelGlobal:
		return "ChannelGlobal"
	default:
		return "Unknown"
	}
}

// State is the per-call draw configuration. A State is copied by value
// at the start of every draw call and never outlives it; rasterizers that
// need a different color per scanline derive a local copy.
type State struct {
	// Mode selects outline, fill or gradient shading.
	Mode DrawMode

	// Color is the primary draw color.
	Color color.Color

	// Gradient holds the gradient colors. Two-color gradients use the
	// first two; corner gradients use all four. Gradient[0] is also the
	// background color antialiased edges fade toward.
	Gradient [4]color.Color

	// Palette resolves indexed draw colors.
	Palette *color.Palette

	// Target is the pixel buffer being drawn into.
	Target *pixmap.Pixmap

	// TargetClip is the target's own clip rect. It is always enforced.
	TargetClip geom.Rect

	Blend BlendMode
	Alpha uint8

	MaskEnable bool
	MaskColor  color.Color

	Antialias bool

	// Thickness is the line and ring width in pixels. Values below one
	// are treated as one.
	Thickness int

	// Clip is a second clip rect layered on TargetClip when ClipEnable
	// is set.
	Clip       geom.Rect
	ClipEnable bool

	// Resize is the interpolation used when blitting scaled images.
	Resize pixmap.Interpolation

	// Pipeline dispatches primitives to rasterizer routines. A nil
	// pipeline means the shared software pipeline.
	Pipeline *Pipeline
}

// ClipRect returns the rect every plotted pixel must fall inside: the
// target bounds, the target clip and, when enabled, the secondary clip.
func (st *State) ClipRect() geom.Rect {
	if st.Target == nil {
		return geom.Rect{}
	}
	r := st.Target.Bounds().Clip(st.TargetClip)
	if st.ClipEnable {
		r = r.Clip(st.Clip)
	}
	return r
}

// Visible reports whether pixel (x, y) passes both clip rects.
func (st *State) Visible(x, y int) bool {
	return st.ClipRect().ContainsXY(x, y)
}

// Routines returns the pipeline entry for the state's mode and antialias
// flag.
func (st *State) Routines() *Routines {
	p := st.Pipeline
	if p == nil {
		p = Software()
	}
	return p.Routines(st.Mode, st.Antialias)
}

// thickness returns Thickness clamped to at least one.
func (st *State) thickness() int {
	if st.Thickness < 1 {
		return 1
	}
	return st.Thickness
}
