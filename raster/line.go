// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/geom"
	"github.com/gogpu/gpx/internal/fxmath"
)

// Line rasterizes the segment p0-p1 with inclusive endpoints.
//
// Thick lines draw a band of State.Thickness pixels around the nominal
// path. Horizontal and vertical lines are emitted as one pre-clipped run;
// every other line is walked with Bresenham and clip-tested per pixel.
func Line(st *State, p0, p1 geom.Point) {
	if st.thickness() > 1 {
		thickLine(st, p0, p1)
		return
	}

	h, v := st.spans()
	switch {
	case p0.Y == p1.Y:
		x0, x1 := fxmath.Min(p0.X, p1.X), fxmath.Max(p0.X, p1.X)
		h(st, x0, p0.Y, x1-x0+1)
	case p0.X == p1.X:
		y0, y1 := fxmath.Min(p0.Y, p1.Y), fxmath.Max(p0.Y, p1.Y)
		v(st, p0.X, y0, y1-y0+1)
	default:
		bresenham(st, p0, p1)
	}
}

// HLine plots n pixels from (x, y) rightwards. The run is clipped once.
func HLine(st *State, x, y, n int) {
	clip := st.ClipRect()
	if n <= 0 || y < clip.Y || y >= clip.Bottom() {
		return
	}
	x0 := fxmath.Max(x, clip.X)
	x1 := fxmath.Min(x+n, clip.Right())
	plot := st.plotter()
	for px := x0; px < x1; px++ {
		plot(st, px, y)
	}
}

// VLine plots n pixels from (x, y) downwards. The run is clipped once.
func VLine(st *State, x, y, n int) {
	clip := st.ClipRect()
	if n <= 0 || x < clip.X || x >= clip.Right() {
		return
	}
	y0 := fxmath.Max(y, clip.Y)
	y1 := fxmath.Min(y+n, clip.Bottom())
	plot := st.plotter()
	for py := y0; py < y1; py++ {
		plot(st, x, py)
	}
}

func bresenham(st *State, p0, p1 geom.Point) {
	clip := st.ClipRect()
	if missesClip(p0, p1, clip) {
		return
	}
	plot := st.plotter()
	walkLine(p0, p1, func(x, y int) {
		if clip.ContainsXY(x, y) {
			plot(st, x, y)
		}
	})
}

// thickLine sweeps a run of Thickness pixels across the minor axis at
// every step of the nominal path.
func thickLine(st *State, p0, p1 geom.Point) {
	t := st.thickness()
	lo := (t - 1) / 2
	h, v := st.spans()
	xMajor := fxmath.Abs(p1.X-p0.X) >= fxmath.Abs(p1.Y-p0.Y)
	walkLine(p0, p1, func(x, y int) {
		if xMajor {
			v(st, x, y-lo, t)
		} else {
			h(st, x-lo, y, t)
		}
	})
}

// GradientLine rasterizes p0-p1 with the color interpolated from c0 at p0
// to c1 at p1. Thickness is ignored.
func GradientLine(st *State, p0, p1 geom.Point, c0, c1 color.Color) {
	clip := st.ClipRect()
	if missesClip(p0, p1, clip) {
		return
	}
	steps := fxmath.Max(fxmath.Abs(p1.X-p0.X), fxmath.Abs(p1.Y-p0.Y))
	sub := *st
	plot := st.plotter()
	i := 0
	walkLine(p0, p1, func(x, y int) {
		if clip.ContainsXY(x, y) {
			sub.Color = color.Lerp(c0, c1, fxmath.PercentWholeRounded(i, steps))
			plot(&sub, x, y)
		}
		i++
	})
}

// missesClip reports whether the segment p0-p1 passes wholly outside
// clip. The test runs against clip grown by two pixels so that no
// Bresenham point of the segment can land inside clip when it reports
// true. A segment with an endpoint in the grown rect never misses.
func missesClip(p0, p1 geom.Point, clip geom.Rect) bool {
	g := clip.Inset(-2)
	if g.Contains(p0) || g.Contains(p1) {
		return false
	}
	for _, y := range [2]int{g.Y, g.Bottom() - 1} {
		if x, ok := geom.LineXAtY(p0, p1, y); ok && x >= g.X && x < g.Right() {
			return false
		}
	}
	for _, x := range [2]int{g.X, g.Right() - 1} {
		if y, ok := geom.LineYAtX(p0, p1, x); ok && y >= g.Y && y < g.Bottom() {
			return false
		}
	}
	return true
}

// walkLine visits the Bresenham points of p0-p1 in order, endpoints
// included. The major axis advances by exactly one every step.
func walkLine(p0, p1 geom.Point, visit func(x, y int)) {
	dx := fxmath.Abs(p1.X - p0.X)
	dy := -fxmath.Abs(p1.Y - p0.Y)
	sx, sy := step(p0.X, p1.X), step(p0.Y, p1.Y)
	err := dx + dy

	x, y := p0.X, p0.Y
	for {
		visit(x, y)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func step(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}
