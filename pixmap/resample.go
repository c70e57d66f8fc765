package pixmap

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/gpx/color"
)

// Interpolation selects the resampling kernel used when a pixmap is drawn
// at a different size.
type Interpolation uint8

const (
	// InterpNearest selects the closest source pixel.
	InterpNearest Interpolation = iota

	// InterpApproxBilinear is a fast approximation of bilinear filtering.
	InterpApproxBilinear

	// InterpBilinear interpolates between the 4 neighboring pixels.
	InterpBilinear

	// InterpCatmullRom uses the Catmull-Rom cubic kernel.
	InterpCatmullRom
)

// String returns a string representation of the interpolation mode.
func (m Interpolation) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpApproxBilinear:
		return "ApproxBilinear"
	case InterpBilinear:
		return "Bilinear"
	case InterpCatmullRom:
		return "CatmullRom"
	default:
		return "Unknown"
	}
}

func (m Interpolation) interpolator() draw.Interpolator {
	switch m {
	case InterpApproxBilinear:
		return draw.ApproxBiLinear
	case InterpBilinear:
		return draw.BiLinear
	case InterpCatmullRom:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Resample scales src to width x height with the given kernel. The result
// is always RGBA8888 so filtered colors survive for indexed sources.
func Resample(src *Pixmap, width, height int, mode Interpolation) (*Pixmap, error) {
	dst, err := New(width, height, color.FormatRGBA8888)
	if err != nil {
		return nil, err
	}
	if width == src.width && height == src.height {
		for y := range height {
			for x := range width {
				c := color.Convert(src.Get(x, y), color.FormatRGBA8888, src.palette)
				_ = dst.SetRaw(x, y, c.Bits)
			}
		}
		return dst, nil
	}

	// Scale into a plain NRGBA image, then repack into the pixmap.
	tmp := image.NewNRGBA(image.Rect(0, 0, width, height))
	mode.interpolator().Scale(tmp, tmp.Bounds(), src.Image(), src.Image().Bounds(), draw.Src, nil)
	for y := range height {
		for x := range width {
			n := tmp.NRGBAAt(x, y)
			_ = dst.SetRaw(x, y, color.RGBA8888(n.R, n.G, n.B, n.A).Bits)
		}
	}
	return dst, nil
}
