package pixmap

import (
	"image"
	stdcolor "image/color"
	"image/draw"

	"github.com/gogpu/gpx/color"
)

// View adapts a Pixmap to image.Image and draw.Image so it can be passed
// to encoders and to the golang.org/x/image/draw scalers.
type View struct {
	p *Pixmap
}

var _ draw.Image = View{}

// Image returns the image view of the pixmap.
func (p *Pixmap) Image() View {
	return View{p: p}
}

// Pixmap returns the wrapped pixmap.
func (v View) Pixmap() *Pixmap {
	return v.p
}

// Bounds implements image.Image.
func (v View) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.p.width, v.p.height)
}

// ColorModel implements image.Image.
func (v View) ColorModel() stdcolor.Model {
	return color.Model(v.p.format, v.p.palette)
}

// At implements image.Image. Indexed pixels resolve through the palette.
func (v View) At(x, y int) stdcolor.Color {
	return v.p.Get(x, y).NRGBA(v.p.palette)
}

// Set implements draw.Image.
func (v View) Set(x, y int, c stdcolor.Color) {
	_ = v.p.SetRaw(x, y, color.FromStd(c, v.p.format, v.p.palette).Bits)
}

// FromImage converts any image into a new pixmap of the given format.
func FromImage(img image.Image, format color.Format) (*Pixmap, error) {
	b := img.Bounds()
	p, err := New(b.Dx(), b.Dy(), format)
	if err != nil {
		return nil, err
	}
	draw.Draw(p.Image(), p.Image().Bounds(), img, b.Min, draw.Src)
	return p, nil
}
