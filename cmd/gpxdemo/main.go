// Command gpxdemo renders a scene file with the gpx rasterizer and writes
// the result as PNG or BMP.
//
// Usage:
//
//	gpxdemo [-scene file.toml] [-output demo.png] [-v]
//
// Without -scene the built-in demo scene is rendered.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gpx"
	"github.com/gogpu/gpx/internal/scenefile"
)

//go:embed demo.toml
var demoScene []byte

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (TOML); built-in demo when empty")
		output    = flag.String("output", "demo.png", "output file (.png or .bmp)")
		verbose   = flag.Bool("v", false, "log rejected draws and backend selection")
	)
	flag.Parse()

	if *verbose {
		gpx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene, err := loadScene(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	pm, err := scene.Render()
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	dc := gpx.NewContext(pm)
	switch ext := strings.ToLower(filepath.Ext(*output)); ext {
	case ".bmp":
		err = dc.SaveBMP(*output)
	case ".png":
		err = dc.SavePNG(*output)
	default:
		err = fmt.Errorf("unsupported output extension %q", ext)
	}
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Scene saved to %s (%dx%d %s)\n", *output, pm.Width(), pm.Height(), pm.Format())
}

func loadScene(path string) (*scenefile.Scene, error) {
	if path == "" {
		return scenefile.Parse(demoScene)
	}
	return scenefile.Load(path)
}
