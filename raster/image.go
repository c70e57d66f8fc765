// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpx/geom"
	"github.com/gogpu/gpx/pixmap"
)

// ErrNoSource is returned when an image blit has no source pixmap.
var ErrNoSource = errors.New("raster: nil source image")

// Image blits src into dst. A destination of a different size than src
// is resampled first with State.Resize. When masking is on, source pixels
// equal to the mask color are skipped. Every pixel goes through the
// pipeline's pixel routine, so blending applies as for any primitive.
func Image(st *State, src *pixmap.Pixmap, dst geom.Rect) error {
	if src == nil {
		return ErrNoSource
	}
	if dst.Empty() {
		return nil
	}

	img := src
	if dst.W != src.Width() || dst.H != src.Height() {
		var err error
		img, err = pixmap.Resample(src, dst.W, dst.H, st.Resize)
		if err != nil {
			return fmt.Errorf("raster: resample %dx%d: %w", dst.W, dst.H, err)
		}
	}

	vis := dst.Clip(st.ClipRect())
	if vis.Empty() {
		return nil
	}

	plot := st.plotter()
	sub := *st
	sub.Palette = img.Palette()
	for y := vis.Y; y < vis.Bottom(); y++ {
		for x := vis.X; x < vis.Right(); x++ {
			c := img.Get(x-dst.X, y-dst.Y)
			if st.MaskEnable && isMaskColor(c, st.MaskColor, sub.Palette) {
				continue
			}
			sub.Color = c
			plot(&sub, x, y)
		}
	}
	return nil
}
