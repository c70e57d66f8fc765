// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/geom"
	"github.com/gogpu/gpx/internal/fxmath"
)

// Quadrant is one of the four 90 degree sectors scanned by Arc. Angles
// grow counter-clockwise from the positive x axis with y pointing up.
type Quadrant uint8

const (
	// Quadrant1 is the top-right quadrant, angles 0 to 90.
	Quadrant1 Quadrant = iota + 1
	// Quadrant2 is the top-left quadrant, angles 91 to 180.
	Quadrant2
	// Quadrant3 is the bottom-left quadrant, angles 181 to 270.
	Quadrant3
	// Quadrant4 is the bottom-right quadrant, angles 271 to 360.
	Quadrant4
)

// Quadrants lists the quadrants in scan order.
var Quadrants = [4]Quadrant{Quadrant1, Quadrant2, Quadrant3, Quadrant4}

// Range returns the inclusive integer angle range of q.
func (q Quadrant) Range() (lo, hi int) {
	switch q {
	case Quadrant1:
		return 0, 90
	case Quadrant2:
		return 91, 180
	case Quadrant3:
		return 181, 270
	case Quadrant4:
		return 271, 360
	default:
		return 0, -1
	}
}

// String returns "Q1" through "Q4".
func (q Quadrant) String() string {
	switch q {
	case Quadrant1:
		return "Q1"
	case Quadrant2:
		return "Q2"
	case Quadrant3:
		return "Q3"
	case Quadrant4:
		return "Q4"
	default:
		return "Q?"
	}
}

// box returns the offsets scanned for q. The boxes partition the plane:
// the origin and both positive axes belong to Q1, the negative x axis to
// Q2 and the negative y axis to Q3.
func (q Quadrant) box(r int) (x0, x1, y0, y1 int) {
	switch q {
	case Quadrant1:
		return 0, r, 0, r
	case Quadrant2:
		return -r, -1, 0, r
	case Quadrant3:
		return -r, 0, -r, -1
	case Quadrant4:
		return 1, r, -r, -1
	default:
		return 0, -1, 0, -1
	}
}

// ArcsOverlapQuadrant reports whether the sector running from start to end
// overlaps quadrant q. The sector runs counter-clockwise when ccw is set
// and clockwise otherwise. Equal normalized angles mean a full circle.
// A sector crossing 0 degrees is split in two and each part tested.
func ArcsOverlapQuadrant(start, end int, ccw bool, q Quadrant) bool {
	s, e := fxmath.NormalizeAngle(start), fxmath.NormalizeAngle(end)
	if s == e {
		return true
	}
	if !ccw {
		s, e = e, s
	}

	lo, hi := q.Range()
	if e < s {
		return rangesOverlap(s, 360, lo, hi) || rangesOverlap(0, e, lo, hi)
	}
	return rangesOverlap(s, e, lo, hi)
}

func rangesOverlap(s, e, lo, hi int) bool {
	return s <= hi && e >= lo
}

// sector is a normalized counter-clockwise annular sector.
type sector struct {
	r, inner   int
	start, end int
	sweep      int
	full       bool

	// boundary directions at TrigScale length
	startDir, endDir geom.Point
}

func newSector(r, thickness, start, center int) sector {
	full := center >= 360 || center <= -360
	if center < 0 {
		start += center
		center = -center
	}
	s := fxmath.NormalizeAngle(start)
	e := fxmath.NormalizeAngle(s + center)
	if s == e {
		full = true
	}

	t := fxmath.Clamp(thickness, 1, fxmath.Max(r, 1))
	sec := sector{
		r:     r,
		inner: fxmath.Max(r-t, 0),
		start: s,
		end:   e,
		sweep: fxmath.NormalizeAngle(e - s),
		full:  full,
	}
	if full {
		sec.sweep = 360
	}
	sec.startDir = geom.Pt(fxmath.PolarToXY(fxmath.TrigScale, s))
	sec.endDir = geom.Pt(fxmath.PolarToXY(fxmath.TrigScale, e))
	return sec
}

// inBand reports whether the squared distance d2 lies in the ring. The
// outer edge admits r*r+r so the ring meets the midpoint circle of radius
// r. An inner radius of zero keeps the center.
func (s *sector) inBand(d2 int) bool {
	if d2 > s.r*s.r+s.r {
		return false
	}
	return s.inner == 0 || d2 > s.inner*s.inner+s.inner
}

// inAngle runs the side tests of offset p against the start and end
// boundary lines. Sweeps up to a half turn are the intersection of the
// two half planes; wider sweeps are their union.
func (s *sector) inAngle(p geom.Point) bool {
	if s.full {
		return true
	}
	var origin geom.Point
	afterStart := geom.PointRelPositionFromLine(p, origin, s.startDir) >= 0
	beforeEnd := geom.PointRelPositionFromLine(p, origin, s.endDir) <= 0
	if s.sweep <= 180 {
		return afterStart && beforeEnd
	}
	return afterStart || beforeEnd
}

// contains reports whether angle a lies on the sector.
func (s *sector) contains(a int) bool {
	return s.full || fxmath.NormalizeAngle(a-s.start) <= s.sweep
}

// edgeLevel returns the antialiasing level of d2, 0 for interior points
// and 1 to 4 toward the outer or inner edge.
func (s *sector) edgeLevel(d2 int) int {
	if outer := s.r * s.r; d2 >= outer && s.r > 0 {
		return 1 + (d2-outer)*4/(s.r+1)
	}
	if s.inner > 0 {
		if edge := (s.inner + 1) * (s.inner + 1); d2 <= edge {
			return 1 + (edge-d2)*4/(s.inner+1)
		}
	}
	return 0
}

// Arc rasterizes a filled annular sector of outer radius r and width
// State.Thickness around c, starting at start degrees and sweeping center
// degrees, counter-clockwise when positive. A zero sweep draws nothing and
// a sweep of a full turn or more draws the whole ring.
//
// Every quadrant the sector overlaps is scanned offset by offset; offsets
// inside the ring and between the boundary lines are flipped into buffer
// orientation, clip-tested and plotted. With antialiasing on, offsets at
// the ring edges fade toward Gradient[0] in 20% steps.
func Arc(st *State, c geom.Point, r, start, center int) {
	if center == 0 || r < 0 {
		return
	}
	sec := newSector(r, st.thickness(), start, center)

	clip := st.ClipRect()
	plot := st.plotter()
	sub := *st
	var fringe [5]color.Color
	if st.Antialias {
		for level := 1; level < len(fringe); level++ {
			fringe[level] = color.Lerp(st.Color, st.Gradient[0], level*20)
		}
	}

	apex := false
	for _, q := range Quadrants {
		if !sec.full && !ArcsOverlapQuadrant(sec.start, sec.end, true, q) {
			continue
		}
		apex = apex || q == Quadrant1
		x0, x1, y0, y1 := q.box(r)
		for y := y0; y <= y1; y++ {
			py := c.Y - y
			if py < clip.Y || py >= clip.Bottom() {
				continue
			}
			for x := x0; x <= x1; x++ {
				px := c.X + x
				if !clip.ContainsXY(px, py) {
					continue
				}
				d2 := x*x + y*y
				if !sec.inBand(d2) || !sec.inAngle(geom.Pt(x, y)) {
					continue
				}
				if st.Antialias {
					if level := min(sec.edgeLevel(d2), 4); level > 0 {
						sub.Color = fringe[level]
						plot(&sub, px, py)
						continue
					}
				}
				plot(st, px, py)
			}
		}
	}

	// The center lies on both boundary lines and belongs to every pie
	// sector, but its offset is only scanned with Q1.
	if !apex && sec.inner == 0 && clip.Contains(c) {
		plot(st, c.X, c.Y)
	}
}

// ArcBounds returns the buffer-space bounding rect of the sector drawn by
// Arc, computed from the boundary points on both radii and the axis
// extremes the sweep crosses.
func ArcBounds(c geom.Point, r, thickness, start, center int) geom.Rect {
	if r < 0 || center == 0 {
		return geom.Rect{X: c.X, Y: c.Y}
	}
	sec := newSector(r, thickness, start, center)
	if sec.full {
		return geom.NewRect(c.X-r, c.Y-r, 2*r+1, 2*r+1)
	}

	pts := make([]geom.Point, 0, 8)
	for _, radius := range [2]int{sec.r, sec.inner} {
		for _, a := range [2]int{sec.start, sec.end} {
			pts = append(pts, geom.Pt(fxmath.PolarToXY(radius, a)))
		}
	}
	for _, a := range [4]int{0, 90, 180, 270} {
		if sec.contains(a) {
			pts = append(pts, geom.Pt(fxmath.PolarToXY(r, a)))
		}
	}

	geom.SortPoints(pts, true)
	minX, maxX := pts[0].X, pts[len(pts)-1].X
	geom.SortPoints(pts, false)
	minY, maxY := pts[0].Y, pts[len(pts)-1].Y
	// one pixel of slack for the rounded boundary points
	return geom.FromPoints(
		geom.Pt(c.X+minX-1, c.Y-maxY-1),
		geom.Pt(c.X+maxX+1, c.Y-minY+1),
	).Clip(geom.NewRect(c.X-r, c.Y-r, 2*r+1, 2*r+1))
}
