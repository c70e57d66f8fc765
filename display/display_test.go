// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"errors"
	stdcolor "image/color"
	"testing"

	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/geom"
	"github.com/gogpu/gpx/pixmap"
)

// fakeDisplay records writes like a driver framebuffer.
type fakeDisplay struct {
	w, h    int16
	pixels  map[geom.Point]stdcolor.RGBA
	flushed int
	err     error
}

func newFakeDisplay(w, h int16) *fakeDisplay {
	return &fakeDisplay{w: w, h: h, pixels: make(map[geom.Point]stdcolor.RGBA)}
}

func (d *fakeDisplay) Size() (x, y int16) { return d.w, d.h }

func (d *fakeDisplay) SetPixel(x, y int16, c stdcolor.RGBA) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		panic("SetPixel outside the display")
	}
	d.pixels[geom.Pt(int(x), int(y))] = c
}

func (d *fakeDisplay) Display() error {
	d.flushed++
	return d.err
}

func TestPresent(t *testing.T) {
	src, _ := pixmap.New(4, 3, color.FormatRGB565)
	src.Fill(color.Blue)
	_ = src.Set(1, 2, color.Red)

	d := newFakeDisplay(8, 8)
	if err := Present(d, src); err != nil {
		t.Fatal(err)
	}
	if len(d.pixels) != 12 {
		t.Errorf("wrote %d pixels, want 12", len(d.pixels))
	}
	if d.flushed != 1 {
		t.Errorf("Display called %d times, want 1", d.flushed)
	}
	if got := d.pixels[geom.Pt(1, 2)]; got != (stdcolor.RGBA{R: 255, A: 255}) {
		t.Errorf("(1, 2) = %v, want red", got)
	}
	if got := d.pixels[geom.Pt(0, 0)]; got != (stdcolor.RGBA{B: 255, A: 255}) {
		t.Errorf("(0, 0) = %v, want blue", got)
	}
}

func TestPresentClipsToDisplay(t *testing.T) {
	src, _ := pixmap.New(10, 10, color.FormatGray8)
	d := newFakeDisplay(4, 2)
	if err := Present(d, src); err != nil {
		t.Fatal(err)
	}
	if len(d.pixels) != 8 {
		t.Errorf("wrote %d pixels, want 8", len(d.pixels))
	}
}

func TestPresentRect(t *testing.T) {
	src, _ := pixmap.New(6, 6, color.FormatRGBA8888)
	src.Fill(color.Black)
	_ = src.Set(2, 3, color.Green)

	d := newFakeDisplay(8, 8)
	if err := PresentRect(d, src, geom.NewRect(2, 3, 10, 2), geom.Pt(5, 6)); err != nil {
		t.Fatal(err)
	}
	// Region clipped to 4x2 by the source, then to 3x2 by the display.
	if len(d.pixels) != 6 {
		t.Errorf("wrote %d pixels, want 6", len(d.pixels))
	}
	if got := d.pixels[geom.Pt(5, 6)]; got != (stdcolor.RGBA{G: 255, A: 255}) {
		t.Errorf("(5, 6) = %v, want green", got)
	}
}

func TestPresentIndexed(t *testing.T) {
	src, _ := pixmap.New(2, 1, color.FormatIndex1)
	src.SetPalette(color.NewPalette(color.FormatRGB888, color.RGB888(0, 0, 0), color.RGB888(255, 255, 0)))
	_ = src.SetRaw(1, 0, 1)

	d := newFakeDisplay(2, 1)
	if err := Present(d, src); err != nil {
		t.Fatal(err)
	}
	if got := d.pixels[geom.Pt(1, 0)]; got != (stdcolor.RGBA{R: 255, G: 255, A: 255}) {
		t.Errorf("(1, 0) = %v, want yellow", got)
	}
}

func TestPresentErrors(t *testing.T) {
	d := newFakeDisplay(2, 2)
	if err := Present(d, nil); !errors.Is(err, ErrNilSource) {
		t.Errorf("nil source: err = %v, want ErrNilSource", err)
	}

	flushErr := errors.New("spi timeout")
	d.err = flushErr
	src, _ := pixmap.New(2, 2, color.FormatRGB565)
	if err := Present(d, src); !errors.Is(err, flushErr) {
		t.Errorf("flush failure: err = %v, want %v", err, flushErr)
	}
}

func TestDamage(t *testing.T) {
	d := NewDamage(40, 20)
	if !d.Empty() || d.Count() != 0 {
		t.Fatal("new tracker should be clean")
	}

	d.Mark(geom.NewRect(15, 0, 2, 1))
	d.Mark(geom.NewRect(-5, 17, 8, 3))
	d.Mark(geom.NewRect(100, 100, 5, 5))
	if d.Count() != 3 {
		t.Errorf("Count() = %d, want 3", d.Count())
	}

	got := d.Take()
	want := []geom.Rect{
		geom.NewRect(0, 0, 32, 16),
		geom.NewRect(0, 16, 16, 4),
	}
	if len(got) != len(want) {
		t.Fatalf("Take() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rect %d = %v, want %v", i, got[i], want[i])
		}
	}
	if !d.Empty() {
		t.Error("Take should clear the tracker")
	}

	d.MarkAll()
	if d.Count() != 6 {
		t.Errorf("MarkAll Count() = %d, want 6", d.Count())
	}
	d.Clear()
	if !d.Empty() {
		t.Error("Clear should empty the tracker")
	}

	if NewDamage(0, 5) != nil {
		t.Error("NewDamage(0, 5) should be nil")
	}
}

func TestPresentDamage(t *testing.T) {
	src, _ := pixmap.New(64, 32, color.FormatRGB565)
	dmg := NewDamage(64, 32)
	d := newFakeDisplay(64, 32)

	if err := PresentDamage(d, src, dmg); err != nil {
		t.Fatal(err)
	}
	if d.flushed != 0 || len(d.pixels) != 0 {
		t.Error("clean damage should not touch the display")
	}

	dmg.Mark(geom.NewRect(20, 20, 1, 1))
	if err := PresentDamage(d, src, dmg); err != nil {
		t.Fatal(err)
	}
	if d.flushed != 1 {
		t.Errorf("Display called %d times, want 1", d.flushed)
	}
	if len(d.pixels) != TileSize*TileSize {
		t.Errorf("wrote %d pixels, want one tile", len(d.pixels))
	}
	if _, ok := d.pixels[geom.Pt(16, 16)]; !ok {
		t.Error("tile (1, 1) was not written")
	}
	if !dmg.Empty() {
		t.Error("PresentDamage should clear the tracker")
	}
}
