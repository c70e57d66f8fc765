package gpx

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/pixmap"
	"github.com/gogpu/gpx/raster"
)

// ErrNilBackend is returned when registering a nil backend.
var ErrNilBackend = errors.New("gpx: backend must not be nil")

// Backend is an optional rasterization provider, typically hardware
// accelerated. It supplies its own pipeline for the target formats it can
// render; every other target is drawn by the software pipeline.
//
// Backends are provided by separate packages and opt in via blank import:
//
//	import _ "example.com/gpx-dma2d" // registers a DMA2D backend
type Backend interface {
	// Name returns the backend name (e.g., "dma2d", "wgpu").
	Name() string

	// Init prepares backend resources. Called once during registration.
	Init() error

	// Close releases backend resources.
	Close()

	// Pipeline returns the backend's dispatch table. It must be fully
	// populated before it is returned.
	Pipeline() *raster.Pipeline

	// Supports reports whether the backend can render into targets of the
	// given texture format.
	Supports(format gputypes.TextureFormat) bool
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// RegisterBackend registers b as the active backend.
//
// Only one backend can be registered. Subsequent calls replace the previous
// one, which is closed. b.Init is called first; if it fails, b is not
// registered and the error is returned.
func RegisterBackend(b Backend) error {
	if b == nil {
		return ErrNilBackend
	}
	if err := b.Init(); err != nil {
		return fmt.Errorf("gpx: init backend %q: %w", b.Name(), err)
	}
	propagateLogger(b, Logger())

	backendMu.Lock()
	old := backend
	backend = b
	backendMu.Unlock()
	if old != nil {
		old.Close()
	}
	Logger().Info("gpx: backend registered", "name", b.Name())
	return nil
}

// UnregisterBackend closes and removes the active backend, if any.
func UnregisterBackend() {
	backendMu.Lock()
	old := backend
	backend = nil
	backendMu.Unlock()
	if old != nil {
		old.Close()
	}
}

// ActiveBackend returns the registered backend, or nil if none.
func ActiveBackend() Backend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	return b
}

// TextureFormat maps a pixel buffer format to the GPU texture format with
// the same memory layout. Pixels are stored little endian, so ARGB8888 sits
// in memory as B, G, R, A and RGBA8888 as A, B, G, R; the latter has no
// texture equivalent. Formats without one map to TextureFormatUndefined.
func TextureFormat(f color.Format) gputypes.TextureFormat {
	switch f {
	case color.FormatARGB8888:
		return gputypes.TextureFormatBGRA8Unorm
	case color.FormatGray8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// selectPipeline returns the active backend's pipeline when it can render
// target, and the software pipeline otherwise.
func selectPipeline(target *pixmap.Pixmap) *raster.Pipeline {
	b := ActiveBackend()
	if b == nil || target == nil {
		return raster.Software()
	}

	tf := TextureFormat(target.Format())
	if tf != gputypes.TextureFormatUndefined && b.Supports(tf) {
		if p := b.Pipeline(); p != nil {
			return p
		}
	}
	Logger().Warn("gpx: falling back to CPU pipeline",
		"backend", b.Name(), "format", target.Format().String())
	return raster.Software()
}
