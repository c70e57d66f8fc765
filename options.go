package gpx

import (
	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/geom"
	"github.com/gogpu/gpx/pixmap"
	"github.com/gogpu/gpx/raster"
)

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Pipeline chosen from the registered backend, CPU otherwise
//	dc := gpx.NewContext(pm)
//
//	// Always rasterize on the CPU
//	dc := gpx.NewContext(pm, gpx.WithCPU())
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	pipeline   *raster.Pipeline
	cpu        bool
	palette    *color.Palette
	targetClip *geom.Rect
	scaler     *pixmap.ScaleCache
	damage     DamageTracker
}

// WithPipeline fixes the draw pipeline, bypassing backend selection.
// Use this to inject custom rasterizer routines.
func WithPipeline(p *raster.Pipeline) ContextOption {
	return func(o *contextOptions) {
		o.pipeline = p
	}
}

// WithCPU forces the software pipeline even when a backend is registered.
func WithCPU() ContextOption {
	return func(o *contextOptions) {
		o.cpu = true
	}
}

// WithPalette sets the palette used to resolve indexed draw colors.
func WithPalette(p *color.Palette) ContextOption {
	return func(o *contextOptions) {
		o.palette = p
	}
}

// WithTargetClip restricts drawing to r instead of the whole target.
func WithTargetClip(r geom.Rect) ContextOption {
	return func(o *contextOptions) {
		o.targetClip = &r
	}
}

// WithScaleCache makes DrawImage reuse scaled copies of its sources from
// c. The cache may be shared between contexts.
func WithScaleCache(c *pixmap.ScaleCache) ContextOption {
	return func(o *contextOptions) {
		o.scaler = c
	}
}

// DamageTracker records the target areas draws may have changed.
// display.Damage implements it.
type DamageTracker interface {
	Mark(r geom.Rect)
}

// WithDamage reports the clipped bounds of every accepted draw, and the
// whole target on Clear, to t.
func WithDamage(t DamageTracker) ContextOption {
	return func(o *contextOptions) {
		o.damage = t
	}
}
