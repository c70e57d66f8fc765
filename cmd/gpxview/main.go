//go:build !tinygo

// Command gpxview shows a scene file in a desktop window. The window acts
// as a display driver: the rendered buffer is presented through the same
// path a TinyGo board would use.
//
// Usage:
//
//	gpxview [-scale 2] [-v] scene.toml
//
// Press R to reload the scene file and Escape to quit.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/gpx"
)

func main() {
	var (
		scale   = flag.Int("scale", 2, "window scale factor")
		verbose = flag.Bool("v", false, "log rejected draws and backend selection")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: gpxview [-scale n] [-v] scene.toml")
	}

	if *verbose {
		gpx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	v := &viewer{path: flag.Arg(0)}
	if err := v.reload(); err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	ebiten.SetWindowTitle("gpxview: " + v.path)
	ebiten.SetWindowSize(v.screen.width*max(*scale, 1), v.screen.height*max(*scale, 1))
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(v); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
