package gpx

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpx/geom"
	"github.com/gogpu/gpx/pixmap"
	"github.com/gogpu/gpx/raster"
)

// Draw errors. A rejected draw is an expected outcome: nothing visible
// needed drawing. Callers that do not care can ignore it.
var (
	// ErrNoTarget is returned when the context has no target buffer.
	ErrNoTarget = errors.New("gpx: no target")

	// ErrNoPipeline is returned when the pipeline has no routine for the
	// primitive in the current mode.
	ErrNoPipeline = errors.New("gpx: no pipeline routine")

	// ErrRejected is returned when the mask, alpha or clip tests skip a
	// primitive.
	ErrRejected = errors.New("gpx: rejected")
)

// DrawPixel plots one pixel.
func (c *Context) DrawPixel(x, y int) error {
	return c.draw("pixel", geom.NewRect(x, y, 1, 1), raster.PaintColor, func(st *raster.State, r *raster.Routines) bool {
		if r.Pixel == nil {
			return false
		}
		if st.Visible(x, y) {
			r.Pixel(st, x, y)
		}
		return true
	})
}

// DrawLine draws the segment (x0, y0)-(x1, y1), endpoints included.
func (c *Context) DrawLine(x0, y0, x1, y1 int) error {
	p0, p1 := geom.Pt(x0, y0), geom.Pt(x1, y1)
	return c.draw("line", lineBounds(p0, p1, c.state.Thickness), raster.PaintColor, func(st *raster.State, r *raster.Routines) bool {
		if r.Line == nil {
			return false
		}
		r.Line(st, p0, p1)
		return true
	})
}

// DrawGradientLine draws (x0, y0)-(x1, y1) shaded from the first to the
// second gradient color.
func (c *Context) DrawGradientLine(x0, y0, x1, y1 int) error {
	p0, p1 := geom.Pt(x0, y0), geom.Pt(x1, y1)
	return c.draw("gradient line", lineBounds(p0, p1, 1), raster.PaintGradient, func(st *raster.State, _ *raster.Routines) bool {
		raster.GradientLine(st, p0, p1, st.Gradient[0], st.Gradient[1])
		return true
	})
}

// DrawRect draws a w x h rect at (x, y) in the current mode.
func (c *Context) DrawRect(x, y, w, h int) error {
	rect := geom.NewRect(x, y, w, h)
	return c.draw("rect", rect, raster.RectPaint(c.state.Mode), func(st *raster.State, r *raster.Routines) bool {
		if r.Rect == nil {
			return false
		}
		r.Rect(st, rect)
		return true
	})
}

// DrawCircle draws a circle of radius r around (x, y). Outline mode
// draws the midpoint circle; the other modes draw a solid disk.
func (c *Context) DrawCircle(x, y, r int) error {
	center := geom.Pt(x, y)
	return c.draw("circle", squareBounds(center, r), raster.PaintColor, func(st *raster.State, rt *raster.Routines) bool {
		if rt.Circle == nil {
			return false
		}
		rt.Circle(st, center, r)
		return true
	})
}

// DrawEllipse draws an elliptical arc around (x, y) with semi-axes a and
// b rotated by tilt degrees, from start sweeping center degrees. A
// negative center sweeps clockwise.
func (c *Context) DrawEllipse(x, y, a, b, tilt, start, center int) error {
	ctr := geom.Pt(x, y)
	return c.draw("ellipse", squareBounds(ctr, max(a, b)+1), raster.PaintColor, func(st *raster.State, r *raster.Routines) bool {
		if r.Ellipse == nil {
			return false
		}
		r.Ellipse(st, ctr, a, b, tilt, start, center)
		return true
	})
}

// DrawArc draws a filled annular sector of outer radius r around (x, y),
// from start sweeping center degrees; the ring width is the thickness.
// A zero sweep draws nothing; a full turn draws the whole ring.
func (c *Context) DrawArc(x, y, r, start, center int) error {
	ctr := geom.Pt(x, y)
	if c.state.Target == nil {
		return ErrNoTarget
	}
	if center == 0 {
		return nil
	}
	bounds := raster.ArcBounds(ctr, r, c.state.Thickness, start, center)
	return c.draw("arc", bounds, raster.PaintColor, func(st *raster.State, rt *raster.Routines) bool {
		if rt.Arc == nil {
			return false
		}
		rt.Arc(st, ctr, r, start, center)
		return true
	})
}

// DrawImage blits src into the w x h rect at (x, y), scaling with the
// resize mode when the sizes differ. With WithScaleCache the scaled copy
// is cached.
func (c *Context) DrawImage(src *pixmap.Pixmap, x, y, w, h int) error {
	if src == nil {
		return raster.ErrNoSource
	}
	dst := geom.NewRect(x, y, w, h)
	if c.scaler != nil && !dst.Empty() && (w != src.Width() || h != src.Height()) {
		scaled, err := c.scaler.Resample(src, w, h, c.state.Resize)
		if err != nil {
			return fmt.Errorf("gpx: scale image: %w", err)
		}
		src = scaled
	}

	var blitErr error
	err := c.draw("image", dst, raster.PaintSource, func(st *raster.State, r *raster.Routines) bool {
		if r.Image == nil {
			return false
		}
		blitErr = r.Image(st, src, dst)
		return true
	})
	if err != nil {
		return err
	}
	return blitErr
}

// draw snapshots the state, runs the reject tests for a primitive writing
// paint and dispatches to rasterize. rasterize reports false when the
// routine it needs is missing.
func (c *Context) draw(kind string, bounds geom.Rect, paint raster.Paint, rasterize func(*raster.State, *raster.Routines) bool) error {
	st := c.state

	switch reason := raster.Reject(&st, bounds, paint); reason {
	case raster.RejectNone:
	case raster.RejectNoTarget:
		return ErrNoTarget
	default:
		Logger().Debug("gpx: draw rejected", "primitive", kind, "reason", reason.String())
		return fmt.Errorf("%w: %s %s", ErrRejected, kind, reason)
	}

	r := st.Routines()
	if r == nil || !rasterize(&st, r) {
		return fmt.Errorf("%w: %s in %s mode", ErrNoPipeline, kind, st.Mode)
	}
	if c.damage != nil {
		c.damage.Mark(bounds.Clip(st.ClipRect()))
	}
	return nil
}

// lineBounds returns the rect covering a line of the given thickness.
func lineBounds(p0, p1 geom.Point, thickness int) geom.Rect {
	return geom.FromPoints(p0, p1).Inset(-max(thickness/2, 1))
}

// squareBounds returns the rect covering a circle of radius r.
func squareBounds(c geom.Point, r int) geom.Rect {
	r = max(r, 0)
	return geom.NewRect(c.X-r, c.Y-r, 2*r+1, 2*r+1)
}
