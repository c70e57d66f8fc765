// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package display presents gpx pixel buffers on TinyGo display drivers.
//
// Any driver implementing drivers.Displayer (ST7789, ILI9341, SSD1306 and
// the rest of tinygo.org/x/drivers) can show a pixmap of any format:
// pixels are resolved through the pixmap palette and converted to RGBA.
// A Damage tracker limits each update to the tiles that changed.
package display

import (
	"errors"
	"fmt"
	stdcolor "image/color"

	"tinygo.org/x/drivers"

	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/geom"
	"github.com/gogpu/gpx/pixmap"
)

// ErrNilSource is returned when Present is given no pixmap.
var ErrNilSource = errors.New("display: nil source")

// Present copies src to the top-left corner of d and flushes it. Pixels
// that fall outside the display are dropped.
func Present(d drivers.Displayer, src *pixmap.Pixmap) error {
	if src == nil {
		return ErrNilSource
	}
	return PresentRect(d, src, src.Bounds(), geom.Pt(0, 0))
}

// PresentRect copies the r region of src to d with its top-left corner at
// at, then flushes the display. Only the part of r inside both src and the
// display is written.
func PresentRect(d drivers.Displayer, src *pixmap.Pixmap, r geom.Rect, at geom.Point) error {
	if src == nil {
		return ErrNilSource
	}
	copyRect(d, src, r, at)
	return flush(d)
}

// PresentDamage copies the regions of src marked in dmg to the same place
// on d, clears dmg and flushes the display. Nothing is written or flushed
// when dmg is empty.
func PresentDamage(d drivers.Displayer, src *pixmap.Pixmap, dmg *Damage) error {
	if src == nil {
		return ErrNilSource
	}
	rects := dmg.Take()
	if len(rects) == 0 {
		return nil
	}
	for _, r := range rects {
		copyRect(d, src, r, geom.Pt(r.X, r.Y))
	}
	return flush(d)
}

func copyRect(d drivers.Displayer, src *pixmap.Pixmap, r geom.Rect, at geom.Point) {
	w, h := d.Size()
	screen := geom.NewRect(0, 0, int(w), int(h))

	r = r.Clip(src.Bounds())
	dst := geom.NewRect(at.X, at.Y, r.W, r.H).Clip(screen)
	off := geom.Pt(r.X, r.Y).Sub(at)

	pal := src.Palette()
	for y := dst.Y; y < dst.Bottom(); y++ {
		for x := dst.X; x < dst.Right(); x++ {
			c := src.Get(x+off.X, y+off.Y)
			d.SetPixel(int16(x), int16(y), toRGBA(c, pal))
		}
	}
}

func flush(d drivers.Displayer) error {
	if err := d.Display(); err != nil {
		return fmt.Errorf("display: flush: %w", err)
	}
	return nil
}

// toRGBA converts c to the premultiplied 8-bit RGBA drivers expect.
func toRGBA(c color.Color, pal *color.Palette) stdcolor.RGBA {
	n := c.NRGBA(pal)
	return stdcolor.RGBAModel.Convert(n).(stdcolor.RGBA)
}
