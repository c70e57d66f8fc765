package scenefile

import (
	"errors"
	"image"
	stdcolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/pixmap"
	"github.com/gogpu/gpx/raster"
)

const sample = `
width = 32
height = 16
format = "RGB565"
background = "black"

[[op]]
kind = "rect"
mode = "fill"
color = "#ff0000"
x = 0
y = 0
w = 4
h = 4

[[op]]
kind = "pixel"
x = 31
y = 15

[[op]]
kind = "pixel"
x = 100
y = 100

[[op]]
kind = "arc"
mode = "fill"
color = "#00ff00"
x = 20
y = 8
r = 4
start = 0
sweep = 360
thickness = 4
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if s.Width != 32 || s.Height != 16 || s.Format != "RGB565" {
		t.Errorf("header = %dx%d %s", s.Width, s.Height, s.Format)
	}
	if len(s.Ops) != 4 || s.Ops[3].Kind != "arc" || s.Ops[3].Thickness != 4 {
		t.Errorf("ops = %+v", s.Ops)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"zero size", "width = 0\nheight = 4", ErrSize},
		{"bad format", "width = 4\nheight = 4\nformat = \"RGB999\"", ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.src)); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Parse([]byte("width = 4\nheight = 4\ncolour = 1")); err == nil {
		t.Error("unknown key should fail")
	}
	if _, err := Parse([]byte("width = [")); err == nil {
		t.Error("malformed TOML should fail")
	}
}

func TestParseDefaultFormat(t *testing.T) {
	s, err := Parse([]byte("width = 2\nheight = 2"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Format != "RGBA8888" {
		t.Errorf("Format = %q, want RGBA8888", s.Format)
	}
}

func TestRender(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	pm, err := s.Render()
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if pm.Format() != color.FormatRGB565 {
		t.Fatalf("format = %v, want RGB565", pm.Format())
	}

	red := color.RGB565(255, 0, 0)
	green := color.RGB565(0, 255, 0)
	tests := []struct {
		x, y int
		want color.Color
	}{
		{0, 0, red},
		{3, 3, red},
		{4, 4, color.RGB565(0, 0, 0)},
		{31, 15, color.RGB565(255, 255, 255)},
		{20, 8, green},
		{24, 8, green},
		{20, 13, color.RGB565(0, 0, 0)},
	}
	for _, tt := range tests {
		if got := pm.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderOpErrors(t *testing.T) {
	tests := []struct {
		name string
		op   string
		want error
	}{
		{"kind", "kind = \"spline\"", ErrKind},
		{"color", "kind = \"pixel\"\ncolor = \"#12\"", ErrColor},
		{"mode", "kind = \"rect\"\nmode = \"hatched\"", ErrMode},
		{"blend", "kind = \"pixel\"\nblend = \"multiply\"", ErrBlend},
		{"resize", "kind = \"pixel\"\nresize = \"lanczos\"", ErrResize},
		{"clip", "kind = \"pixel\"\nclip = [1, 2]", ErrClip},
		{"gradient", "kind = \"rect\"\ngradient = [\"red\", \"red\", \"red\", \"red\", \"red\"]", ErrGradient},
		{"image", "kind = \"image\"", ErrMissingSrc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte("width = 4\nheight = 4\n[[op]]\n" + tt.op))
			if err != nil {
				t.Fatalf("Parse() = %v", err)
			}
			if _, err := s.Render(); !errors.Is(err, tt.want) {
				t.Errorf("Render() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadWithImage(t *testing.T) {
	dir := t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range 4 {
		img.Set(i%2, i/2, stdcolor.NRGBA{B: 255, A: 255})
	}
	f, err := os.Create(filepath.Join(dir, "tile.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	scene := "width = 8\nheight = 8\n[[op]]\nkind = \"image\"\nsrc = \"tile.png\"\nx = 2\ny = 2\nw = 4\nh = 4\n"
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte(scene), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	pm, err := s.Render()
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if got := pm.Get(5, 5); got != color.Blue {
		t.Errorf("(5, 5) = %v, want blue", got)
	}
	if got := pm.Get(6, 6); got == color.Blue {
		t.Error("(6, 6) should be outside the scaled image")
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
		ok   bool
	}{
		{"#ff8000", color.RGBA8888(255, 128, 0, 255), true},
		{"#ff800080", color.RGBA8888(255, 128, 0, 128), true},
		{"Red", color.Red, true},
		{"transparent", color.Transparent, true},
		{"ff8000", color.Color{}, false},
		{"#ff80", color.Color{}, false},
		{"#gg8000", color.Color{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("err = %v, want ok %v", err, tt.ok)
			}
			if tt.ok && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseNames(t *testing.T) {
	modes := map[string]raster.DrawMode{
		"":                    raster.ModeOutline,
		"fill":                raster.ModeFill,
		"gradient-left-right": raster.ModeGradientLeftRight,
		"GradientTopBottom":   raster.ModeGradientTopBottom,
		"gradient-corners":    raster.ModeGradientCorners,
	}
	for in, want := range modes {
		if got, err := ParseMode(in); err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v, want %v", in, got, err, want)
		}
	}

	blends := map[string]raster.BlendMode{
		"":               raster.BlendNone,
		"channel":        raster.BlendChannel,
		"global":         raster.BlendGlobal,
		"channel-global": raster.BlendChannelGlobal,
	}
	for in, want := range blends {
		if got, err := ParseBlend(in); err != nil || got != want {
			t.Errorf("ParseBlend(%q) = %v, %v, want %v", in, got, err, want)
		}
	}

	resizes := map[string]pixmap.Interpolation{
		"":                pixmap.InterpNearest,
		"bilinear":        pixmap.InterpBilinear,
		"approx-bilinear": pixmap.InterpApproxBilinear,
		"catmull-rom":     pixmap.InterpCatmullRom,
	}
	for in, want := range resizes {
		if got, err := ParseResize(in); err != nil || got != want {
			t.Errorf("ParseResize(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
}
