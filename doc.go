// Package gpx is a small 2D rasterization and color-management engine for
// embedded displays.
//
// # Overview
//
// gpx draws pixels, lines, rects, circles, ellipses, filled arcs and
// images into pixel buffers of any of eleven color formats, from 1-bit
// indexed to 32-bit ARGB. It is integer only: trigonometry comes from a
// fixed-point table and percentages are kept in basis points, so output is
// identical on every platform.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gpx"
//	    "github.com/gogpu/gpx/color"
//	    "github.com/gogpu/gpx/pixmap"
//	    "github.com/gogpu/gpx/raster"
//	)
//
//	pm, _ := pixmap.New(320, 240, color.FormatRGB565)
//	dc := gpx.NewContext(pm)
//
//	dc.SetMode(raster.ModeFill)
//	dc.SetColor(color.RGB888(255, 128, 0))
//	dc.DrawArc(160, 120, 80, 30, 240)
//
//	dc.SavePNG("arc.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context, the Draw methods and backend registration
//   - color: formats, the conversion matrix, Blend, Lerp and Bilerp
//   - geom: integer points and rects
//   - pixmap: pixel buffers and resampling
//   - raster: draw state, reject tests, pipelines and rasterizers
//   - display: presenting buffers on TinyGo display drivers, optionally
//     limited to the tiles a Damage tracker recorded
//
// # Draw Calls
//
// Each Draw method snapshots the Context configuration, runs the reject
// tests (mask color, zero global alpha, bounding rect against the target
// clip and the optional secondary clip) and dispatches to the routine the
// pipeline registers for the current draw mode and antialias flag.
// Rejections return an error wrapping ErrRejected; they are an expected
// outcome and may be ignored.
//
// # Coordinate System
//
// Buffers use the usual raster orientation: origin at the top left, x to
// the right and y down. Angles are integer degrees growing
// counter-clockwise from the positive x axis, as on screen.
//
// # Backends
//
// The software pipeline is always available. A Backend registered with
// RegisterBackend supplies its own pipeline for the target formats it
// supports; other targets fall back to the CPU.
//
// # Logging
//
// gpx is silent by default. Call SetLogger to receive structured log/slog
// records about rejected draws and backend selection.
package gpx
