// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"sync"

	"github.com/gogpu/gpx/geom"
	"github.com/gogpu/gpx/pixmap"
)

// PixelFunc plots one pixel in the state color. Callers clip first.
type PixelFunc func(st *State, x, y int)

// CoverageFunc plots one pixel in the state color scaled by a coverage
// value in [0, 255]. Callers clip first.
type CoverageFunc func(st *State, x, y int, coverage uint8)

// LineFunc rasterizes the segment p0-p1 with inclusive endpoints.
type LineFunc func(st *State, p0, p1 geom.Point)

// SpanFunc rasterizes an axis-aligned run of n pixels starting at (x, y).
type SpanFunc func(st *State, x, y, n int)

// CircleFunc rasterizes a circle of radius r around c.
type CircleFunc func(st *State, c geom.Point, r int)

// EllipseFunc rasterizes an elliptical arc around c with semi-axes a and
// b, rotated by tilt degrees, from start sweeping center degrees.
type EllipseFunc func(st *State, c geom.Point, a, b, tilt, start, center int)

// ArcFunc rasterizes a filled annular sector of outer radius r around c,
// from start sweeping center degrees. The ring width is State.Thickness.
type ArcFunc func(st *State, c geom.Point, r, start, center int)

// RectFunc rasterizes an axis-aligned rect.
type RectFunc func(st *State, r geom.Rect)

// ImageFunc blits src into the destination rect.
type ImageFunc func(st *State, src *pixmap.Pixmap, dst geom.Rect) error

// Routines holds one rasterizer routine per primitive kind.
type Routines struct {
	Pixel    PixelFunc
	Coverage CoverageFunc
	Line     LineFunc
	HLine    SpanFunc
	VLine    SpanFunc
	Circle   CircleFunc
	Ellipse  EllipseFunc
	Arc      ArcFunc
	Rect     RectFunc
	Image    ImageFunc
}

// Pipeline maps (draw mode, antialias) to the routines that rasterize
// each primitive. A pipeline is populated once by its backend and is
// read-only afterwards, so it may be shared between contexts.
type Pipeline struct {
	name  string
	table [modeCount][2]Routines
}

// NewPipeline returns an empty pipeline. Backends fill it with Set.
func NewPipeline(name string) *Pipeline {
	return &Pipeline{name: name}
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string {
	return p.name
}

// Set installs the routines for one mode and antialias flag. Invalid modes
// are ignored. Set must not be called once the pipeline is in use.
func (p *Pipeline) Set(mode DrawMode, aa bool, r Routines) {
	if !mode.IsValid() {
		return
	}
	p.table[mode][aaIndex(aa)] = r
}

// Routines returns the entry for mode and aa, or nil for an invalid mode.
func (p *Pipeline) Routines(mode DrawMode, aa bool) *Routines {
	if !mode.IsValid() {
		return nil
	}
	return &p.table[mode][aaIndex(aa)]
}

func aaIndex(aa bool) int {
	if aa {
		return 1
	}
	return 0
}

var (
	softwareOnce sync.Once
	software     *Pipeline
)

// Software returns the shared CPU pipeline.
func Software() *Pipeline {
	softwareOnce.Do(func() {
		software = newSoftwarePipeline()
	})
	return software
}

func newSoftwarePipeline() *Pipeline {
	p := NewPipeline("software")
	rects := [modeCount]RectFunc{
		ModeOutline:           RectOutline,
		ModeFill:              RectFill,
		ModeGradientLeftRight: RectGradientLeftRight,
		ModeGradientTopBottom: RectGradientTopBottom,
		ModeGradientCorners:   RectGradientCorners,
	}
	for mode := range modeCount {
		circle := CircleFunc(CircleFill)
		if mode == ModeOutline {
			circle = Circle
		}
		for _, aa := range [2]bool{false, true} {
			line := LineFunc(Line)
			if aa {
				line = LineAA
			}
			p.Set(mode, aa, Routines{
				Pixel:    PutPixel,
				Coverage: PutPixelCoverage,
				Line:     line,
				HLine:    HLine,
				VLine:    VLine,
				Circle:   circle,
				Ellipse:  Ellipse,
				Arc:      Arc,
				Rect:     rects[mode],
				Image:    Image,
			})
		}
	}
	return p
}

// plotter returns the pixel routine of the state's pipeline entry,
// falling back to PutPixel.
func (st *State) plotter() PixelFunc {
	if r := st.Routines(); r != nil && r.Pixel != nil {
		return r.Pixel
	}
	return PutPixel
}

// coverage returns the coverage routine of the state's pipeline entry,
// falling back to PutPixelCoverage.
func (st *State) coverage() CoverageFunc {
	if r := st.Routines(); r != nil && r.Coverage != nil {
		return r.Coverage
	}
	return PutPixelCoverage
}

// spans returns the horizontal and vertical run routines, falling back to
// HLine and VLine.
func (st *State) spans() (h, v SpanFunc) {
	h, v = HLine, VLine
	if r := st.Routines(); r != nil {
		if r.HLine != nil {
			h = r.HLine
		}
		if r.VLine != nil {
			v = r.VLine
		}
	}
	return h, v
}
