// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"math/bits"
	"sync/atomic"

	"github.com/gogpu/gpx/geom"
)

// TileSize is the edge length in pixels of one damage tile.
const TileSize = 16

// Damage tracks which parts of a buffer changed since it was last
// presented, at TileSize granularity. It keeps one bit per tile and is
// safe for concurrent use.
type Damage struct {
	// Bit ty*tilesX+tx of the packed words is set when the tile is dirty.
	words  []atomic.Uint64
	width  int
	height int
	tilesX int
	tilesY int
}

// NewDamage creates a tracker for a width x height buffer with every tile
// clean. It returns nil for a non-positive size.
func NewDamage(width, height int) *Damage {
	if width <= 0 || height <= 0 {
		return nil
	}
	tx := (width + TileSize - 1) / TileSize
	ty := (height + TileSize - 1) / TileSize
	return &Damage{
		words:  make([]atomic.Uint64, (tx*ty+63)/64),
		width:  width,
		height: height,
		tilesX: tx,
		tilesY: ty,
	}
}

func (d *Damage) mark(tx, ty int) {
	i := ty*d.tilesX + tx
	d.words[i/64].Or(1 << (i & 63))
}

// Mark flags every tile r touches. Parts of r outside the buffer are
// ignored.
func (d *Damage) Mark(r geom.Rect) {
	r = r.Clip(geom.NewRect(0, 0, d.width, d.height))
	if r.Empty() {
		return
	}
	for ty := r.Y / TileSize; ty <= (r.Bottom()-1)/TileSize; ty++ {
		for tx := r.X / TileSize; tx <= (r.Right()-1)/TileSize; tx++ {
			d.mark(tx, ty)
		}
	}
}

// MarkAll flags the whole buffer.
func (d *Damage) MarkAll() {
	total := d.tilesX * d.tilesY
	full := total / 64
	for i := range full {
		d.words[i].Store(^uint64(0))
	}
	if rem := total % 64; rem > 0 {
		d.words[full].Store(1<<rem - 1)
	}
}

// Clear marks every tile clean.
func (d *Damage) Clear() {
	for i := range d.words {
		d.words[i].Store(0)
	}
}

// Empty reports whether nothing is dirty.
func (d *Damage) Empty() bool {
	for i := range d.words {
		if d.words[i].Load() != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of dirty tiles.
func (d *Damage) Count() int {
	n := 0
	for i := range d.words {
		n += bits.OnesCount64(d.words[i].Load())
	}
	return n
}

// Take clears the tracker and returns the dirty area as pixel rects, one
// per horizontal run of dirty tiles, clipped to the buffer.
func (d *Damage) Take() []geom.Rect {
	dirty := make([]bool, d.tilesX*d.tilesY)
	for w := range d.words {
		word := d.words[w].Swap(0)
		for word != 0 {
			b := bits.TrailingZeros64(word)
			dirty[w*64+b] = true
			word &^= 1 << b
		}
	}

	var rects []geom.Rect
	bounds := geom.NewRect(0, 0, d.width, d.height)
	for ty := range d.tilesY {
		row := dirty[ty*d.tilesX : (ty+1)*d.tilesX]
		for tx := 0; tx < d.tilesX; {
			if !row[tx] {
				tx++
				continue
			}
			start := tx
			for tx < d.tilesX && row[tx] {
				tx++
			}
			r := geom.NewRect(start*TileSize, ty*TileSize, (tx-start)*TileSize, TileSize)
			rects = append(rects, r.Clip(bounds))
		}
	}
	return rects
}
