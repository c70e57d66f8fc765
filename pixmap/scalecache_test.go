package pixmap

import (
	"sync"
	"testing"

	"github.com/gogpu/gpx/color"
)

func newSource(t *testing.T, w, h int) *Pixmap {
	t.Helper()
	p, err := New(w, h, color.FormatRGB565)
	if err != nil {
		t.Fatal(err)
	}
	p.Fill(color.Red)
	return p
}

func TestScaleCacheHit(t *testing.T) {
	c := NewScaleCache(4)
	src := newSource(t, 2, 2)

	a, err := c.Resample(src, 4, 4, InterpNearest)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Resample(src, 4, 4, InterpNearest)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("second Resample should return the cached copy")
	}
	if hits, misses := c.Stats(); hits != 1 || misses != 1 {
		t.Errorf("Stats() = %d hits, %d misses, want 1, 1", hits, misses)
	}

	d, _ := c.Resample(src, 4, 4, InterpBilinear)
	if d == a {
		t.Error("a different mode should scale again")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestScaleCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewScaleCache(2)
	src := newSource(t, 2, 2)

	first, _ := c.Resample(src, 3, 3, InterpNearest)
	_, _ = c.Resample(src, 4, 4, InterpNearest)
	// Touch the first entry so the 4x4 copy becomes the oldest.
	_, _ = c.Resample(src, 3, 3, InterpNearest)
	_, _ = c.Resample(src, 5, 5, InterpNearest)

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if again, _ := c.Resample(src, 3, 3, InterpNearest); again != first {
		t.Error("recently used entry was evicted")
	}
	if _, misses := c.Stats(); misses != 3 {
		t.Errorf("misses = %d, want 3", misses)
	}
}

func TestScaleCacheInvalidate(t *testing.T) {
	c := NewScaleCache(0)
	a, b := newSource(t, 2, 2), newSource(t, 2, 2)

	_, _ = c.Resample(a, 4, 4, InterpNearest)
	_, _ = c.Resample(a, 6, 6, InterpNearest)
	_, _ = c.Resample(b, 4, 4, InterpNearest)

	c.Invalidate(a)
	if c.Len() != 1 {
		t.Errorf("Len() after Invalidate = %d, want 1", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
}

func TestScaleCacheError(t *testing.T) {
	c := NewScaleCache(2)
	if _, err := c.Resample(newSource(t, 2, 2), 0, 4, InterpNearest); err == nil {
		t.Error("invalid size should fail")
	}
	if c.Len() != 0 {
		t.Error("failed resample should not be cached")
	}
}

func TestScaleCacheConcurrent(t *testing.T) {
	c := NewScaleCache(4)
	src := newSource(t, 2, 2)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			size := 3 + i%6
			p, err := c.Resample(src, size, size, InterpNearest)
			if err != nil || p.Width() != size {
				t.Errorf("Resample(%d) = %v, %v", size, p, err)
			}
		}()
	}
	wg.Wait()
	if c.Len() > 4 {
		t.Errorf("Len() = %d, want at most 4", c.Len())
	}
}

func BenchmarkScaleCacheHit(b *testing.B) {
	c := NewScaleCache(4)
	src, _ := New(16, 16, color.FormatRGB565)
	_, _ = c.Resample(src, 64, 64, InterpBilinear)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = c.Resample(src, 64, 64, InterpBilinear)
	}
}
