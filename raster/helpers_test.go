// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"testing"

	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/geom"
	"github.com/gogpu/gpx/pixmap"
)

// plotted is one pixel routine invocation.
type plotted struct {
	p        geom.Point
	c        color.Color
	coverage uint8
}

// recorder captures pixel routine invocations instead of writing pixels.
type recorder struct {
	calls []plotted
}

func (r *recorder) points() map[geom.Point]int {
	m := make(map[geom.Point]int, len(r.calls))
	for _, c := range r.calls {
		m[c.p]++
	}
	return m
}

func (r *recorder) colorAt(p geom.Point) (color.Color, bool) {
	for _, c := range r.calls {
		if c.p == p {
			return c.c, true
		}
	}
	return color.Color{}, false
}

func (r *recorder) reset() {
	r.calls = r.calls[:0]
}

// newRecorder returns a state whose pipeline is the software pipeline
// with the pixel routines replaced by a recorder.
func newRecorder(t testing.TB, w, h int) (*State, *recorder) {
	t.Helper()
	target, err := pixmap.New(w, h, color.FormatRGBA8888)
	if err != nil {
		t.Fatalf("pixmap.New: %v", err)
	}

	rec := &recorder{}
	p := NewPipeline("recorder")
	for mode := range modeCount {
		for _, aa := range []bool{false, true} {
			r := *Software().Routines(mode, aa)
			r.Pixel = func(st *State, x, y int) {
				rec.calls = append(rec.calls, plotted{geom.Pt(x, y), st.Color, 0xFF})
			}
			r.Coverage = func(st *State, x, y int, c uint8) {
				rec.calls = append(rec.calls, plotted{geom.Pt(x, y), st.Color, c})
			}
			p.Set(mode, aa, r)
		}
	}

	st := &State{
		Color:      color.White,
		Target:     target,
		TargetClip: target.Bounds(),
		Thickness:  1,
		Pipeline:   p,
	}
	return st, rec
}

// newTarget returns a state drawing into a real RGBA8888 pixmap through
// the software pipeline.
func newTarget(t testing.TB, w, h int) *State {
	t.Helper()
	target, err := pixmap.New(w, h, color.FormatRGBA8888)
	if err != nil {
		t.Fatalf("pixmap.New: %v", err)
	}
	target.Fill(color.Black)
	return &State{
		Color:      color.White,
		Target:     target,
		TargetClip: target.Bounds(),
		Thickness:  1,
	}
}

func diskSet(c geom.Point, r int) map[geom.Point]int {
	m := make(map[geom.Point]int)
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r+r {
				m[geom.Pt(c.X+x, c.Y+y)] = 1
			}
		}
	}
	return m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
