// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"testing"

	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/geom"
)

func TestRectOutline(t *testing.T) {
	tests := []struct {
		name      string
		r         geom.Rect
		thickness int
		want      int
	}{
		{"thin", geom.NewRect(2, 2, 5, 4), 1, 14},
		{"thick", geom.NewRect(0, 0, 10, 10), 2, 64},
		{"zero thickness", geom.NewRect(2, 2, 5, 4), 0, 14},
		{"band fills", geom.NewRect(0, 0, 6, 6), 3, 36},
		{"single pixel", geom.NewRect(3, 3, 1, 1), 1, 1},
		{"empty", geom.NewRect(3, 3, 0, 5), 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, rec := newRecorder(t, 16, 16)
			st.Thickness = tt.thickness
			RectOutline(st, tt.r)
			if len(rec.calls) != tt.want || len(rec.points()) != tt.want {
				t.Errorf("plotted %d pixels (%d distinct), want %d",
					len(rec.calls), len(rec.points()), tt.want)
			}
			for p := range rec.points() {
				if !tt.r.Contains(p) {
					t.Errorf("%v outside %v", p, tt.r)
				}
			}
		})
	}
}

func TestRectFillClipped(t *testing.T) {
	st, rec := newRecorder(t, 16, 16)
	st.ClipEnable = true
	st.Clip = geom.NewRect(4, 4, 100, 100)

	RectFill(st, geom.NewRect(-3, -3, 10, 10))
	if len(rec.calls) != 9 {
		t.Fatalf("plotted %d pixels, want 9", len(rec.calls))
	}
	for _, c := range rec.calls {
		if c.p.X < 4 || c.p.X > 6 || c.p.Y < 4 || c.p.Y > 6 {
			t.Errorf("plotted %v outside the visible area", c.p)
		}
	}
}

func TestRectGradients(t *testing.T) {
	g0 := color.RGBA8888(0, 0, 0, 255)
	g1 := color.RGBA8888(200, 0, 100, 255)
	steps := []color.Color{
		g0,
		color.RGBA8888(50, 0, 25, 255),
		color.RGBA8888(100, 0, 50, 255),
		color.RGBA8888(150, 0, 75, 255),
		g1,
	}

	t.Run("left right", func(t *testing.T) {
		st, rec := newRecorder(t, 16, 16)
		st.Gradient[0], st.Gradient[1] = g0, g1
		RectGradientLeftRight(st, geom.NewRect(1, 2, 5, 3))
		if len(rec.calls) != 15 {
			t.Fatalf("plotted %d pixels, want 15", len(rec.calls))
		}
		for _, c := range rec.calls {
			if want := steps[c.p.X-1]; c.c != want {
				t.Errorf("%v color = %v, want %v", c.p, c.c, want)
			}
		}
	})

	t.Run("top bottom", func(t *testing.T) {
		st, rec := newRecorder(t, 16, 16)
		st.Gradient[0], st.Gradient[1] = g0, g1
		RectGradientTopBottom(st, geom.NewRect(3, 0, 2, 5))
		if len(rec.calls) != 10 {
			t.Fatalf("plotted %d pixels, want 10", len(rec.calls))
		}
		for _, c := range rec.calls {
			if want := steps[c.p.Y]; c.c != want {
				t.Errorf("%v color = %v, want %v", c.p, c.c, want)
			}
		}
	})

	t.Run("clipped keeps the gradient anchored", func(t *testing.T) {
		st, rec := newRecorder(t, 16, 16)
		st.Gradient[0], st.Gradient[1] = g0, g1
		st.TargetClip = geom.NewRect(3, 0, 16, 16)
		RectGradientLeftRight(st, geom.NewRect(1, 0, 5, 1))
		if len(rec.calls) != 3 {
			t.Fatalf("plotted %d pixels, want 3", len(rec.calls))
		}
		if c, _ := rec.colorAt(geom.Pt(3, 0)); c != steps[2] {
			t.Errorf("first visible column = %v, want %v", c, steps[2])
		}
	})
}

func TestRectGradientSingleColumn(t *testing.T) {
	st, rec := newRecorder(t, 4, 4)
	st.Gradient[0], st.Gradient[1] = color.Red, color.Blue
	RectGradientLeftRight(st, geom.NewRect(0, 0, 1, 2))
	for _, c := range rec.calls {
		if c.c != color.Red {
			t.Errorf("%v color = %v, want the first gradient color", c.p, c.c)
		}
	}
}

func TestRectGradientCorners(t *testing.T) {
	tl := color.RGBA8888(0, 0, 0, 255)
	tr := color.RGBA8888(200, 0, 0, 255)
	bl := color.RGBA8888(0, 200, 0, 255)
	br := color.RGBA8888(0, 0, 200, 255)

	st, rec := newRecorder(t, 16, 16)
	st.Gradient = [4]color.Color{tl, tr, bl, br}
	r := geom.NewRect(2, 3, 5, 5)
	RectGradientCorners(st, r)
	if len(rec.calls) != 25 {
		t.Fatalf("plotted %d pixels, want 25", len(rec.calls))
	}

	tests := []struct {
		p    geom.Point
		want color.Color
	}{
		{geom.Pt(2, 3), tl},
		{geom.Pt(6, 3), tr},
		{geom.Pt(2, 7), bl},
		{geom.Pt(6, 7), br},
		{geom.Pt(4, 3), color.RGBA8888(100, 0, 0, 255)},
		{geom.Pt(2, 5), color.RGBA8888(0, 100, 0, 255)},
		{geom.Pt(4, 5), color.Bilerp(tl, tr, bl, br, 50, 50)},
	}
	for _, tt := range tests {
		if got, ok := rec.colorAt(tt.p); !ok || got != tt.want {
			t.Errorf("%v color = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectGradientCornersClipped(t *testing.T) {
	st, rec := newRecorder(t, 16, 16)
	st.Gradient = [4]color.Color{color.Red, color.Blue, color.Red, color.Blue}
	st.ClipEnable = true
	st.Clip = geom.NewRect(0, 0, 3, 16)
	RectGradientCorners(st, geom.NewRect(0, 0, 5, 2))
	if len(rec.calls) != 6 {
		t.Fatalf("plotted %d pixels, want 6", len(rec.calls))
	}
	want := color.Lerp(color.Red, color.Blue, 50)
	if c, _ := rec.colorAt(geom.Pt(2, 1)); c != want {
		t.Errorf("last visible column = %v, want %v", c, want)
	}
}

func BenchmarkRectFill(b *testing.B) {
	st := newTarget(b, 256, 256)
	for b.Loop() {
		RectFill(st, geom.NewRect(10, 10, 200, 200))
	}
}
