// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gpx/geom"
	"github.com/gogpu/gpx/internal/fxmath"
)

// LineAA rasterizes p0-p1 with Xiaolin Wu antialiasing. The minor axis
// position is tracked in 26.6 fixed point and its fraction splits the
// coverage between the two straddled pixels. Axis-aligned and thick lines
// have no partial coverage and go through Line.
func LineAA(st *State, p0, p1 geom.Point) {
	if st.thickness() > 1 || p0.X == p1.X || p0.Y == p1.Y {
		Line(st, p0, p1)
		return
	}

	steep := fxmath.Abs(p1.Y-p0.Y) > fxmath.Abs(p1.X-p0.X)
	if steep {
		p0 = geom.Pt(p0.Y, p0.X)
		p1 = geom.Pt(p1.Y, p1.X)
	}
	if p0.X > p1.X {
		p0, p1 = p1, p0
	}

	clip := st.ClipRect()
	cover := st.coverage()
	plot := func(x, y int, c uint8) {
		if steep {
			x, y = y, x
		}
		if clip.ContainsXY(x, y) {
			cover(st, x, y, c)
		}
	}

	dx := int64(p1.X - p0.X)
	dy := int64(p1.Y - p0.Y)
	base := fixed.I(p0.Y)
	for i := int64(0); i <= dx; i++ {
		y := base + fixed.Int26_6(floorDiv(dy*i*64, dx))
		yi := y.Floor()
		frac := int(y - fixed.I(yi))
		c := uint8(frac * 0xFF / 64)
		x := p0.X + int(i)
		plot(x, yi, 0xFF-c)
		if c > 0 {
			plot(x, yi+1, c)
		}
	}
}

// floorDiv divides rounding toward negative infinity. d must be positive.
func floorDiv(n, d int64) int64 {
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}
