// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/geom"
	"github.com/gogpu/gpx/internal/fxmath"
)

// RectOutline draws the four edges of r as bands of State.Thickness
// pixels inset from the rect boundary. A band too thick to leave an
// interior fills the rect.
func RectOutline(st *State, r geom.Rect) {
	if r.Empty() {
		return
	}
	t := st.thickness()
	if 2*t >= r.W || 2*t >= r.H {
		RectFill(st, r)
		return
	}
	fillRect(st, geom.NewRect(r.X, r.Y, r.W, t))
	fillRect(st, geom.NewRect(r.X, r.Bottom()-t, r.W, t))
	fillRect(st, geom.NewRect(r.X, r.Y+t, t, r.H-2*t))
	fillRect(st, geom.NewRect(r.Right()-t, r.Y+t, t, r.H-2*t))
}

// RectFill fills r with the state color.
func RectFill(st *State, r geom.Rect) {
	fillRect(st, r)
}

func fillRect(st *State, r geom.Rect) {
	c := r.Clip(st.ClipRect())
	if c.Empty() {
		return
	}
	h, _ := st.spans()
	for y := c.Y; y < c.Bottom(); y++ {
		h(st, c.X, y, c.W)
	}
}

// RectGradientLeftRight fills r with a gradient from Gradient[0] at the
// left edge to Gradient[1] at the right edge. Each column is one run.
func RectGradientLeftRight(st *State, r geom.Rect) {
	c := r.Clip(st.ClipRect())
	if c.Empty() {
		return
	}
	_, v := st.spans()
	sub := *st
	for x := c.X; x < c.Right(); x++ {
		sub.Color = gradientAt(st, x-r.X, r.W)
		v(&sub, x, c.Y, c.H)
	}
}

// RectGradientTopBottom fills r with a gradient from Gradient[0] at the
// top edge to Gradient[1] at the bottom edge. Each row is one run.
func RectGradientTopBottom(st *State, r geom.Rect) {
	c := r.Clip(st.ClipRect())
	if c.Empty() {
		return
	}
	h, _ := st.spans()
	sub := *st
	for y := c.Y; y < c.Bottom(); y++ {
		sub.Color = gradientAt(st, y-r.Y, r.H)
		h(&sub, c.X, y, c.W)
	}
}

// RectGradientCorners fills r with the bilinear blend of the four
// gradient colors anchored at its corners, plotting pixel by pixel.
func RectGradientCorners(st *State, r geom.Rect) {
	c := r.Clip(st.ClipRect())
	if c.Empty() {
		return
	}
	g := st.Gradient
	plot := st.plotter()
	sub := *st
	for y := c.Y; y < c.Bottom(); y++ {
		yPct := fxmath.PercentWholeRounded(y-r.Y, r.H-1)
		for x := c.X; x < c.Right(); x++ {
			xPct := fxmath.PercentWholeRounded(x-r.X, r.W-1)
			sub.Color = color.Bilerp(g[0], g[1], g[2], g[3], xPct, yPct)
			plot(&sub, x, y)
		}
	}
}

// gradientAt returns the gradient color of step i out of n.
func gradientAt(st *State, i, n int) color.Color {
	return color.Lerp(st.Gradient[0], st.Gradient[1], fxmath.PercentWholeRounded(i, n-1))
}
