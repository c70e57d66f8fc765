//go:build !tinygo

package main

import (
	"fmt"
	stdcolor "image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/gpx"
	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/display"
	"github.com/gogpu/gpx/internal/scenefile"
	"github.com/gogpu/gpx/pixmap"
)

// windowDisplay is a drivers.Displayer backed by an RGBA frame that is
// uploaded to an ebiten image on Display.
type windowDisplay struct {
	width, height int
	pix           []byte
	img           *ebiten.Image
	dirty         bool
}

func newWindowDisplay(w, h int) *windowDisplay {
	return &windowDisplay{
		width:  w,
		height: h,
		pix:    make([]byte, w*h*4),
		img:    ebiten.NewImage(w, h),
	}
}

func (d *windowDisplay) Size() (x, y int16) {
	return int16(d.width), int16(d.height)
}

func (d *windowDisplay) SetPixel(x, y int16, c stdcolor.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.width || iy < 0 || iy >= d.height {
		return
	}
	off := (iy*d.width + ix) * 4
	d.pix[off+0] = c.R
	d.pix[off+1] = c.G
	d.pix[off+2] = c.B
	d.pix[off+3] = c.A
}

func (d *windowDisplay) Display() error {
	d.dirty = true
	return nil
}

// viewer implements ebiten.Game.
type viewer struct {
	path   string
	screen *windowDisplay
	frame  *pixmap.Pixmap
	damage *display.Damage
}

// reload renders the scene file again and presents the tiles it changed.
func (v *viewer) reload() error {
	scene, err := scenefile.Load(v.path)
	if err != nil {
		return err
	}
	format, _ := color.ParseFormat(scene.Format)
	if v.frame == nil || v.frame.Width() != scene.Width || v.frame.Height() != scene.Height || v.frame.Format() != format {
		if v.frame, err = pixmap.New(scene.Width, scene.Height, format); err != nil {
			return err
		}
		if v.screen != nil {
			v.screen.img.Deallocate()
		}
		v.screen = newWindowDisplay(scene.Width, scene.Height)
		v.damage = display.NewDamage(scene.Width, scene.Height)
	}

	if err := scene.Draw(gpx.NewContext(v.frame, gpx.WithDamage(v.damage))); err != nil {
		return err
	}
	if err := display.PresentDamage(v.screen, v.frame, v.damage); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := v.reload(); err != nil {
			log.Printf("Reload failed: %v", err)
		}
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.screen.dirty {
		v.screen.img.WritePixels(v.screen.pix)
		v.screen.dirty = false
	}
	screen.DrawImage(v.screen.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.screen.width, v.screen.height
}
