// Package pixmap provides the pixel buffers the rasterizer draws into.
//
// A Pixmap stores pixels of a single color.Format in a contiguous byte
// slice with a row stride. Multi-byte pixels are little endian; the 1- and
// 4-bit indexed formats are packed most significant bit first. Indexed
// pixmaps carry an optional palette used to resolve reads.
package pixmap

import (
	"errors"

	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/geom"
)

// Common errors for pixmap operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixmap: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("pixmap: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("pixmap: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("pixmap: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside the pixmap.
	ErrOutOfBounds = errors.New("pixmap: coordinates out of bounds")
)

// Pixmap is a rectangular grid of pixels in one color format.
//
// Pixmap is owned by whoever created it; drawing code only borrows it for
// the duration of a call. It is not safe for concurrent writes.
type Pixmap struct {
	data    []byte
	width   int
	height  int
	stride  int
	format  color.Format
	palette *color.Palette
}

// New creates a zeroed pixmap with the given dimensions and format.
func New(width, height int, format color.Format) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &Pixmap{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw wraps existing pixel data without copying. The caller must keep
// data valid for the lifetime of the Pixmap.
func FromRaw(data []byte, width, height int, format color.Format, stride int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}
	required := stride * height
	if len(data) < required {
		return nil, ErrDataTooSmall
	}

	return &Pixmap{
		data:   data[:required],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Clone creates a deep copy of the pixmap. The palette is shared.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]byte, len(p.data))
	copy(data, p.data)
	out := *p
	out.data = data
	return &out
}

// Width returns the width in pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height in pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// Stride returns the number of bytes per row.
func (p *Pixmap) Stride() int {
	return p.stride
}

// Format returns the pixel format.
func (p *Pixmap) Format() color.Format {
	return p.format
}

// Size returns the buffer size in bytes.
func (p *Pixmap) Size() int {
	return len(p.data)
}

// Data returns the raw pixel data.
func (p *Pixmap) Data() []byte {
	return p.data
}

// Bounds returns the pixmap rectangle, anchored at the origin.
func (p *Pixmap) Bounds() geom.Rect {
	return geom.NewRect(0, 0, p.width, p.height)
}

// Palette returns the palette used to resolve indexed pixels, or nil.
func (p *Pixmap) Palette() *color.Palette {
	return p.palette
}

// SetPalette attaches a palette. It is only consulted for indexed formats.
func (p *Pixmap) SetPalette(pal *color.Palette) {
	p.palette = pal
}

func (p *Pixmap) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// GetRaw returns the packed bits of pixel (x, y).
func (p *Pixmap) GetRaw(x, y int) (uint32, bool) {
	if !p.inBounds(x, y) {
		return 0, false
	}

	row := y * p.stride
	switch bpp := p.format.BitsPerPixel(); bpp {
	case 1, 4:
		bit := x * bpp
		shift := 8 - bpp - bit%8
		return uint32(p.data[row+bit/8]>>shift) & (1<<bpp - 1), true
	default:
		n := bpp / 8
		off := row + x*n
		var v uint32
		for i := 0; i < n; i++ {
			v |= uint32(p.data[off+i]) << (8 * i)
		}
		return v, true
	}
}

// SetRaw stores packed bits at pixel (x, y). Bits the format does not use
// are discarded.
func (p *Pixmap) SetRaw(x, y int, bits uint32) error {
	if !p.inBounds(x, y) {
		return ErrOutOfBounds
	}
	bits &= p.format.Mask()

	row := y * p.stride
	switch bpp := p.format.BitsPerPixel(); bpp {
	case 1, 4:
		bit := x * bpp
		shift := 8 - bpp - bit%8
		mask := byte(1<<bpp-1) << shift
		i := row + bit/8
		p.data[i] = p.data[i]&^mask | byte(bits)<<shift
	default:
		n := bpp / 8
		off := row + x*n
		for i := 0; i < n; i++ {
			p.data[off+i] = byte(bits >> (8 * i))
		}
	}
	return nil
}

// Get returns pixel (x, y) tagged with the pixmap format. Out-of-bounds
// reads return the zero color of the format.
func (p *Pixmap) Get(x, y int) color.Color {
	bits, _ := p.GetRaw(x, y)
	return color.Color{Bits: bits, Format: p.format}
}

// Set converts c into the pixmap format and stores it at (x, y). Indexed
// pixmaps accept indexes of their own format directly and otherwise store
// the palette entry matching c exactly.
func (p *Pixmap) Set(x, y int, c color.Color) error {
	return p.SetRaw(x, y, p.encode(c).Bits)
}

func (p *Pixmap) encode(c color.Color) color.Color {
	if c.Format == p.format {
		return c
	}
	if p.format.IsIndexed() {
		return color.FromStd(c, p.format, p.palette)
	}
	return color.Convert(c, p.format, p.palette)
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c color.Color) {
	bits := p.encode(c).Bits
	for y := range p.height {
		for x := range p.width {
			_ = p.SetRaw(x, y, bits)
		}
	}
}

// Clear sets all pixel bits to zero.
func (p *Pixmap) Clear() {
	clear(p.data)
}
