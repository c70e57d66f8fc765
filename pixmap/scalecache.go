package pixmap

import "sync"

// DefaultScaleCacheSize is the number of scaled copies kept when a
// ScaleCache is created with a non-positive capacity.
const DefaultScaleCacheSize = 16

// scaleKey identifies one scaled copy of a source pixmap.
type scaleKey struct {
	src    *Pixmap
	width  int
	height int
	mode   Interpolation
}

// scaleNode is an entry in the recency list. The head is the most
// recently used entry.
type scaleNode struct {
	key        scaleKey
	value      *Pixmap
	prev, next *scaleNode
}

// ScaleCache keeps the most recently used Resample results so sprites
// drawn repeatedly at the same size are scaled once.
//
// Entries are keyed by source identity. A source modified after it was
// scaled must be passed to Invalidate. ScaleCache is safe for concurrent
// use and must not be copied after creation.
type ScaleCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[scaleKey]*scaleNode
	head     *scaleNode
	tail     *scaleNode

	hits, misses uint64
}

// NewScaleCache creates a cache holding up to capacity scaled copies.
func NewScaleCache(capacity int) *ScaleCache {
	if capacity <= 0 {
		capacity = DefaultScaleCacheSize
	}
	return &ScaleCache{
		capacity: capacity,
		entries:  make(map[scaleKey]*scaleNode),
	}
}

// Resample returns src scaled to width x height, reusing a cached copy
// when one exists.
func (c *ScaleCache) Resample(src *Pixmap, width, height int, mode Interpolation) (*Pixmap, error) {
	key := scaleKey{src: src, width: width, height: height, mode: mode}

	c.mu.Lock()
	if n, ok := c.entries[key]; ok {
		c.moveToFront(n)
		c.hits++
		c.mu.Unlock()
		return n.value, nil
	}
	c.misses++
	c.mu.Unlock()

	// Scale outside the lock; a concurrent miss on the same key only
	// duplicates work.
	scaled, err := Resample(src, width, height, mode)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok := c.entries[key]; ok {
		n.value = scaled
		c.moveToFront(n)
		return scaled, nil
	}
	for len(c.entries) >= c.capacity && c.tail != nil {
		old := c.tail
		c.unlink(old)
		delete(c.entries, old.key)
	}
	n := &scaleNode{key: key, value: scaled}
	c.pushFront(n)
	c.entries[key] = n
	return scaled, nil
}

// Invalidate drops every scaled copy of src.
func (c *ScaleCache) Invalidate(src *Pixmap) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for n := c.head; n != nil; {
		next := n.next
		if n.key.src == src {
			c.unlink(n)
			delete(c.entries, n.key)
		}
		n = next
	}
}

// Clear drops every entry.
func (c *ScaleCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.head, c.tail = nil, nil
}

// Len returns the number of cached copies.
func (c *ScaleCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the hit and miss counts.
func (c *ScaleCache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Caller must hold c.mu for the list helpers below.

func (c *ScaleCache) pushFront(n *scaleNode) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *ScaleCache) moveToFront(n *scaleNode) {
	if n == c.head {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

func (c *ScaleCache) unlink(n *scaleNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
