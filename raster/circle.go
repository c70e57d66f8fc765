// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "github.com/gogpu/gpx/geom"

// Circle rasterizes the outline of a circle with the midpoint algorithm.
// Outlines thicker than one pixel are drawn as a full ring by Arc.
func Circle(st *State, c geom.Point, r int) {
	if r < 0 {
		return
	}
	if st.thickness() > 1 {
		Arc(st, c, r, 0, 360)
		return
	}

	clip := st.ClipRect()
	plot := st.plotter()
	put := func(x, y int) {
		if clip.ContainsXY(x, y) {
			plot(st, x, y)
		}
	}
	if r == 0 {
		put(c.X, c.Y)
		return
	}
	midpointCircle(r, func(dx, dy int) {
		put(c.X+dx, c.Y+dy)
	})
}

// CircleFill rasterizes a solid disk as a full sweep ring of width r.
func CircleFill(st *State, c geom.Point, r int) {
	if r < 0 {
		return
	}
	sub := *st
	sub.Thickness = r
	Arc(&sub, c, r, 0, 360)
}

// midpointCircle visits the offsets of the midpoint circle of radius
// r > 0, four symmetric points per step. Every offset is visited once.
func midpointCircle(r int, visit func(dx, dy int)) {
	x, y, err := -r, 0, 2-2*r
	for {
		visit(-x, y)
		visit(-y, -x)
		visit(x, -y)
		visit(y, x)

		e := err
		if e <= y {
			y++
			err += y*2 + 1
		}
		if e > x || err > y {
			x++
			err += x*2 + 1
		}
		if x >= 0 {
			return
		}
	}
}
