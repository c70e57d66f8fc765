// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster implements the CPU rasterizers and the draw pipeline
// that dispatches primitives to them.
//
// A draw call works on a State snapshot. Reject performs the O(1) mask,
// alpha and bounding-rect tests; the routine selected from the Pipeline
// by draw mode and antialias flag then generates pixels and hands each
// one to the pipeline's pixel routine.
//
// Rasterizers:
//   - Line: axis-aligned runs, Bresenham, thick bands, Wu antialiasing
//     and per-pixel gradients.
//   - Circle: midpoint outline; fills delegate to Arc.
//   - Ellipse: 1 degree polyline over the fixed-point trig table.
//   - Arc: filled annular sectors scanned per quadrant.
//   - Rect: outline, fill and two gradient directions.
//   - Image: scaled, masked blits.
package raster
