// Package color implements the pixel color formats of the engine and the
// arithmetic between them: the conversion matrix, alpha blending and
// per-channel interpolation.
//
// A Color is a packed integer tagged with its Format. The bit layout of
// Bits is entirely determined by Format, so a Color never travels without
// the information needed to decode it.
package color

// Format identifies a pixel bit layout.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale.
	FormatGray8 Format = iota

	// FormatRGB332 packs red in bits 7-5, green in 4-2 and blue in 1-0.
	FormatRGB332

	// FormatRGB565 packs red in bits 15-11, green in 10-5 and blue in 4-0.
	FormatRGB565

	// FormatRGBA5551 packs red in bits 15-11, green in 10-6, blue in 5-1
	// and a 1-bit alpha in bit 0.
	FormatRGBA5551

	// FormatRGB888 packs red in bits 23-16, green in 15-8 and blue in 7-0.
	FormatRGB888

	// FormatRGBA8888 packs red in bits 31-24, green in 23-16, blue in 15-8
	// and alpha in 7-0. Blending is defined in this format.
	FormatRGBA8888

	// FormatARGB8888 packs alpha in bits 31-24, red in 23-16, green in 15-8
	// and blue in 7-0.
	FormatARGB8888

	// FormatYUV is 24-bit packed Y, U, V. It is stored and compared but
	// never converted.
	FormatYUV

	// FormatIndex1 is a 1-bit palette index.
	FormatIndex1

	// FormatIndex4 is a 4-bit palette index.
	FormatIndex4

	// FormatIndex8 is an 8-bit palette index.
	FormatIndex8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatCount is the number of supported formats.
const FormatCount = int(formatCount)

// channel indexes into a layout.
const (
	chR = iota
	chG
	chB
	chA
)

// layout describes where each channel lives inside Bits. A zero width
// means the channel is absent.
type layout struct {
	width [4]uint8
	shift [4]uint8
}

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BitsPerPixel is the storage size of one pixel in bits.
	BitsPerPixel int

	// Channels is the number of color channels (1 for gray and indexed).
	Channels int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// AlphaBits is the width of the alpha channel.
	AlphaBits int

	// IsIndexed indicates a palette index format.
	IsIndexed bool

	// IsGrayscale indicates a single luminance channel.
	IsGrayscale bool

	// Mask covers every meaningful bit of a packed value.
	Mask uint32

	layout layout
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {
		BitsPerPixel: 8,
		Channels:     1,
		IsGrayscale:  true,
		Mask:         0xFF,
		layout:       layout{width: [4]uint8{8, 0, 0, 0}},
	},
	FormatRGB332: {
		BitsPerPixel: 8,
		Channels:     3,
		Mask:         0xFF,
		layout:       layout{width: [4]uint8{3, 3, 2, 0}, shift: [4]uint8{5, 2, 0, 0}},
	},
	FormatRGB565: {
		BitsPerPixel: 16,
		Channels:     3,
		Mask:         0xFFFF,
		layout:       layout{width: [4]uint8{5, 6, 5, 0}, shift: [4]uint8{11, 5, 0, 0}},
	},
	FormatRGBA5551: {
		BitsPerPixel: 16,
		Channels:     4,
		HasAlpha:     true,
		AlphaBits:    1,
		Mask:         0xFFFF,
		layout:       layout{width: [4]uint8{5, 5, 5, 1}, shift: [4]uint8{11, 6, 1, 0}},
	},
	FormatRGB888: {
		BitsPerPixel: 24,
		Channels:     3,
		Mask:         0xFFFFFF,
		layout:       layout{width: [4]uint8{8, 8, 8, 0}, shift: [4]uint8{16, 8, 0, 0}},
	},
	FormatRGBA8888: {
		BitsPerPixel: 32,
		Channels:     4,
		HasAlpha:     true,
		AlphaBits:    8,
		Mask:         0xFFFFFFFF,
		layout:       layout{width: [4]uint8{8, 8, 8, 8}, shift: [4]uint8{24, 16, 8, 0}},
	},
	FormatARGB8888: {
		BitsPerPixel: 32,
		Channels:     4,
		HasAlpha:     true,
		AlphaBits:    8,
		Mask:         0xFFFFFFFF,
		layout:       layout{width: [4]uint8{8, 8, 8, 8}, shift: [4]uint8{16, 8, 0, 24}},
	},
	FormatYUV: {
		BitsPerPixel: 24,
		Channels:     3,
		Mask:         0xFFFFFF,
	},
	FormatIndex1: {
		BitsPerPixel: 1,
		Channels:     1,
		IsIndexed:    true,
		Mask:         0x1,
	},
	FormatIndex4: {
		BitsPerPixel: 4,
		Channels:     1,
		IsIndexed:    true,
		Mask:         0xF,
	},
	FormatIndex8: {
		BitsPerPixel: 8,
		Channels:     1,
		IsIndexed:    true,
		Mask:         0xFF,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BitsPerPixel returns the storage size of one pixel in bits.
func (f Format) BitsPerPixel() int {
	return f.Info().BitsPerPixel
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsIndexed returns true for palette index formats.
func (f Format) IsIndexed() bool {
	return f.Info().IsIndexed
}

// Mask returns the mask of meaningful bits for this format.
func (f Format) Mask() uint32 {
	return f.Info().Mask
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given
// width. Sub-byte formats round up to a whole byte per row.
func (f Format) RowBytes(width int) int {
	return (width*f.BitsPerPixel() + 7) / 8
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// direct reports whether the format carries its channels in Bits (as
// opposed to an index or an opaque YUV triple).
func (f Format) direct() bool {
	return f.IsValid() && f != FormatYUV && !f.IsIndexed()
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGB332:
		return "RGB332"
	case FormatRGB565:
		return "RGB565"
	case FormatRGBA5551:
		return "RGBA5551"
	case FormatRGB888:
		return "RGB888"
	case FormatRGBA8888:
		return "RGBA8888"
	case FormatARGB8888:
		return "ARGB8888"
	case FormatYUV:
		return "YUV"
	case FormatIndex1:
		return "Index1"
	case FormatIndex4:
		return "Index4"
	case FormatIndex8:
		return "Index8"
	default:
		return "Unknown"
	}
}

// ParseFormat returns the format with the given String name.
func ParseFormat(name string) (Format, bool) {
	for f := Format(0); f < formatCount; f++ {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}
