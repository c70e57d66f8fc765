package gpx

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"

	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/geom"
	"github.com/gogpu/gpx/pixmap"
	"github.com/gogpu/gpx/raster"
)

// Context holds the current draw configuration for one target buffer.
//
// Every Draw method copies the configuration into a raster.State snapshot,
// so changing the configuration never affects a draw in progress. A
// Context is not safe for concurrent use.
type Context struct {
	state raster.State

	// fixed is set when the pipeline came from WithPipeline or WithCPU and
	// must survive SetTarget.
	fixed bool

	scaler *pixmap.ScaleCache
	damage DamageTracker
}

// NewContext creates a drawing context for target. A nil target is
// allowed; every draw then fails with ErrNoTarget until SetTarget.
//
//	pm, _ := pixmap.New(320, 240, color.FormatRGB565)
//	dc := gpx.NewContext(pm)
//	dc.SetColor(color.Red)
//	dc.DrawCircle(160, 120, 50)
func NewContext(target *pixmap.Pixmap, opts ...ContextOption) *Context {
	var options contextOptions
	for _, opt := range opts {
		opt(&options)
	}

	c := &Context{
		state: raster.State{
			Color:     color.White,
			Thickness: 1,
			Alpha:     0xFF,
			Palette:   options.palette,
		},
		scaler: options.scaler,
		damage: options.damage,
	}
	switch {
	case options.pipeline != nil:
		c.state.Pipeline = options.pipeline
		c.fixed = true
	case options.cpu:
		c.state.Pipeline = raster.Software()
		c.fixed = true
	}

	c.SetTarget(target)
	if options.targetClip != nil {
		c.state.TargetClip = *options.targetClip
	}
	return c
}

// SetTarget switches the target buffer. The target clip is reset to the
// whole buffer and, unless the pipeline was fixed at creation, the
// pipeline is selected again for the new target format.
func (c *Context) SetTarget(target *pixmap.Pixmap) {
	c.state.Target = target
	c.state.TargetClip = geom.Rect{}
	if target != nil {
		c.state.TargetClip = target.Bounds()
	}
	if !c.fixed {
		c.state.Pipeline = selectPipeline(target)
	}
}

// Target returns the target buffer.
func (c *Context) Target() *pixmap.Pixmap {
	return c.state.Target
}

// SetTargetClip restricts drawing to r. The clip is always enforced.
func (c *Context) SetTargetClip(r geom.Rect) {
	c.state.TargetClip = r
}

// TargetClip returns the target clip rect.
func (c *Context) TargetClip() geom.Rect {
	return c.state.TargetClip
}

// SetClip enables the secondary clip rect r.
func (c *Context) SetClip(r geom.Rect) {
	c.state.Clip = r
	c.state.ClipEnable = true
}

// ResetClip disables the secondary clip rect.
func (c *Context) ResetClip() {
	c.state.Clip = geom.Rect{}
	c.state.ClipEnable = false
}

// SetMode sets how closed primitives are shaded.
func (c *Context) SetMode(m raster.DrawMode) {
	c.state.Mode = m
}

// SetColor sets the draw color.
func (c *Context) SetColor(col color.Color) {
	c.state.Color = col
}

// Color returns the draw color.
func (c *Context) Color() color.Color {
	return c.state.Color
}

// SetGradient sets up to four gradient colors; extra colors are ignored.
// Two-color gradients run from the first to the second color. Corner
// gradients place the four colors at the top left, top right, bottom left
// and bottom right. Antialiased arc edges fade toward the first color.
func (c *Context) SetGradient(colors ...color.Color) {
	n := copy(c.state.Gradient[:], colors)
	clear(c.state.Gradient[n:])
}

// SetPalette sets the palette used to resolve indexed draw colors.
func (c *Context) SetPalette(p *color.Palette) {
	c.state.Palette = p
}

// SetBlend sets the blend mode and the global alpha used by BlendGlobal.
func (c *Context) SetBlend(mode raster.BlendMode, alpha uint8) {
	c.state.Blend = mode
	c.state.Alpha = alpha
}

// SetMask enables or disables masking. While enabled, primitives drawn in
// the mask color and image pixels equal to it are skipped.
func (c *Context) SetMask(enable bool, mask color.Color) {
	c.state.MaskEnable = enable
	c.state.MaskColor = mask
}

// SetAntialias selects the antialiased pipeline routines.
func (c *Context) SetAntialias(aa bool) {
	c.state.Antialias = aa
}

// SetThickness sets the line and ring width. Values below one draw one
// pixel wide.
func (c *Context) SetThickness(n int) {
	c.state.Thickness = n
}

// SetResize sets the interpolation used by DrawImage when scaling.
func (c *Context) SetResize(m pixmap.Interpolation) {
	c.state.Resize = m
}

// Pipeline returns the pipeline draws are dispatched through.
func (c *Context) Pipeline() *raster.Pipeline {
	return c.state.Pipeline
}

// State returns a copy of the current draw configuration.
func (c *Context) State() raster.State {
	return c.state
}

// Clear fills the whole target with col, ignoring clips and blending.
func (c *Context) Clear(col color.Color) error {
	if c.state.Target == nil {
		return ErrNoTarget
	}
	c.state.Target.Fill(color.Convert(col, c.state.Target.Format(), c.state.Palette))
	if c.damage != nil {
		c.damage.Mark(c.state.Target.Bounds())
	}
	return nil
}

// EncodePNG writes the target as PNG to w.
func (c *Context) EncodePNG(w io.Writer) error {
	if c.state.Target == nil {
		return ErrNoTarget
	}
	return png.Encode(w, c.state.Target.Image())
}

// EncodeBMP writes the target as BMP to w.
func (c *Context) EncodeBMP(w io.Writer) error {
	if c.state.Target == nil {
		return ErrNoTarget
	}
	return bmp.Encode(w, c.state.Target.Image())
}

// SavePNG writes the target to a PNG file.
func (c *Context) SavePNG(path string) error {
	return c.save(path, c.EncodePNG)
}

// SaveBMP writes the target to a BMP file.
func (c *Context) SaveBMP(path string) error {
	return c.save(path, c.EncodeBMP)
}

func (c *Context) save(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gpx: create %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("gpx: encode %s: %w", path, err)
	}
	return f.Close()
}
