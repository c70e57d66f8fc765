package color

// Palette maps indexes of the indexed formats to concrete colors.
type Palette struct {
	// Format is the format of every entry.
	Format Format
	// Entries holds the packed entry values.
	Entries []uint32
}

// NewPalette creates a palette from colors, converting each into f.
func NewPalette(f Format, colors ...Color) *Palette {
	p := &Palette{Format: f, Entries: make([]uint32, len(colors))}
	for i, c := range colors {
		p.Entries[i] = Convert(c, f, nil).Bits
	}
	return p
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Entries)
}

// Lookup returns the entry for index i.
func (p *Palette) Lookup(i uint32) (Color, bool) {
	if p == nil || int(i) >= len(p.Entries) || p.Format.IsIndexed() {
		return Color{}, false
	}
	return Color{Bits: p.Entries[i], Format: p.Format}, true
}

// Find returns the first index whose entry converts to exactly c.
func (p *Palette) Find(c Color) (uint32, bool) {
	if p == nil {
		return 0, false
	}
	want := Convert(c, p.Format, nil)
	for i, e := range p.Entries {
		if e == want.Bits {
			return uint32(i), true
		}
	}
	return 0, false
}
