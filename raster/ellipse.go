// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/gogpu/gpx/geom"
	"github.com/gogpu/gpx/internal/fxmath"
)

// Ellipse rasterizes an elliptical arc as a polyline sampled every degree
// from start to start+center. A negative center sweeps clockwise. Sweeps
// beyond a full turn are clamped to one turn. Every pixel is clip-tested
// against both clip rects.
func Ellipse(st *State, c geom.Point, a, b, tilt, start, center int) {
	if center == 0 || a < 0 || b < 0 {
		return
	}
	dir := 1
	if center < 0 {
		dir = -1
	}
	steps := fxmath.Min(fxmath.Abs(center), 360)

	clip := st.ClipRect()
	plot := st.plotter()
	vertex := func(t int) geom.Point {
		x, y := fxmath.EllipsePoint(t, a, b, tilt)
		return geom.Pt(c.X+x, c.Y-y)
	}

	prev := vertex(start)
	origin, closed := prev, steps == 360
	if clip.Contains(prev) {
		plot(st, prev.X, prev.Y)
	}
	for i := 1; i <= steps; i++ {
		next := vertex(start + dir*i)
		if next == prev {
			continue
		}
		first := true
		walkLine(prev, next, func(x, y int) {
			// the segment start was plotted as the previous end
			if first {
				first = false
				return
			}
			if closed && x == origin.X && y == origin.Y {
				return
			}
			if clip.ContainsXY(x, y) {
				plot(st, x, y)
			}
		})
		prev = next
	}
}
