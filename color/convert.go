package color

// convertFunc converts packed bits of one format into another format.
type convertFunc func(bits uint32) uint32

// convertTable is the conversion matrix, indexed [from][to]. It is built
// once at init and read-only afterwards.
var convertTable [formatCount][formatCount]convertFunc

// degraded marks a pair the matrix cannot convert; Convert returns the
// input unchanged for it.
var degraded convertFunc

func init() {
	for from := Format(0); from < formatCount; from++ {
		for to := Format(0); to < formatCount; to++ {
			convertTable[from][to] = buildConverter(from, to)
		}
	}
}

func buildConverter(from, to Format) convertFunc {
	switch {
	case from == to:
		return func(bits uint32) uint32 { return bits }
	case from == FormatYUV || to == FormatYUV || to.IsIndexed():
		return degraded
	case from.IsIndexed():
		// Resolved through the palette in Convert.
		return degraded
	}

	src := formatInfoTable[from]
	dst := formatInfoTable[to]
	return func(bits uint32) uint32 {
		return encode(dst, decode(src, bits))
	}
}

// Convert converts c into format to. Indexed colors resolve through pal,
// and the palette entry is converted in turn. Pairs the matrix cannot
// serve (YUV on either side, indexed targets, a missing palette or an index
// outside it) return c unchanged.
func Convert(c Color, to Format, pal *Palette) Color {
	if c.Format == to || !c.Format.IsValid() || !to.IsValid() {
		return c
	}
	if c.Format.IsIndexed() {
		if to.IsIndexed() {
			return c
		}
		entry, ok := pal.Lookup(c.Bits)
		if !ok {
			return c
		}
		out := Convert(entry, to, nil)
		if out.Format != to {
			return c
		}
		return out
	}
	fn := convertTable[c.Format][to]
	if fn == nil {
		return c
	}
	return Color{Bits: fn(c.Bits) & to.Mask(), Format: to}
}

// Convertible reports whether Convert can change c into format to.
func Convertible(from, to Format) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	if from == to {
		return true
	}
	if from.IsIndexed() {
		return !to.IsIndexed() && to != FormatYUV
	}
	return convertTable[from][to] != nil
}

// rgba8 is a color widened to 8 bits per channel.
type rgba8 [4]uint32

func decode(info FormatInfo, bits uint32) rgba8 {
	ch := unpack(bits, info.layout)
	var out rgba8
	if info.IsGrayscale {
		out[chR], out[chG], out[chB] = ch[chR], ch[chR], ch[chR]
		out[chA] = 0xFF
		return out
	}
	for i := chR; i <= chB; i++ {
		out[i] = widen(ch[i], info.layout.width[i])
	}
	if info.HasAlpha {
		out[chA] = widen(ch[chA], info.layout.width[chA])
	} else {
		out[chA] = 0xFF
	}
	return out
}

func encode(info FormatInfo, c rgba8) uint32 {
	if info.IsGrayscale {
		return luminance(c[chR], c[chG], c[chB])
	}
	l := info.layout
	var bits uint32
	for i := chR; i <= chA; i++ {
		w := l.width[i]
		if w == 0 {
			continue
		}
		var v uint32
		if i == chA && w == 1 {
			// Any alpha bit set means opaque.
			if c[chA] != 0 {
				v = 1
			}
		} else {
			v = narrow(c[i], w)
		}
		bits |= v << l.shift[i]
	}
	return bits
}

// widen expands a channel of w bits to 8 bits by replicating its bits into
// the low-order positions, so all-ones maps to 0xFF and zero to zero.
func widen(v uint32, w uint8) uint32 {
	switch {
	case w == 0:
		return 0
	case w >= 8:
		return v >> (w - 8)
	}
	out := uint32(0)
	filled := uint8(0)
	for filled < 8 {
		out = out<<w | v
		filled += w
	}
	return out >> (filled - 8)
}

// narrow truncates an 8-bit channel to its w most significant bits.
func narrow(v uint32, w uint8) uint32 {
	if w >= 8 {
		return v << (w - 8)
	}
	return v >> (8 - w)
}

// luminance returns the integer Rec. 601 luma of 8-bit channels.
func luminance(r, g, b uint32) uint32 {
	return (r*299 + g*587 + b*114) / 1000
}
