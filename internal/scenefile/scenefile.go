// Package scenefile loads TOML scene descriptions and renders them with
// gpx. A scene names a target size and format and lists draw operations:
//
//	width = 160
//	height = 120
//	format = "RGB565"
//	background = "#000000"
//
//	[[op]]
//	kind = "arc"
//	mode = "fill"
//	color = "#ff8000"
//	x = 80
//	y = 60
//	r = 50
//	start = 30
//	sweep = 240
//	thickness = 12
//	antialias = true
//
// Every op starts from the default draw configuration (outline mode, white,
// one pixel thick, no blending) and overrides only the keys it sets.
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // register PNG for image ops
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	_ "golang.org/x/image/bmp" // register BMP for image ops

	"github.com/gogpu/gpx"
	"github.com/gogpu/gpx/color"
	"github.com/gogpu/gpx/geom"
	"github.com/gogpu/gpx/pixmap"
	"github.com/gogpu/gpx/raster"
)

// Scene errors.
var (
	ErrSize       = errors.New("scenefile: width and height must be positive")
	ErrFormat     = errors.New("scenefile: unknown pixel format")
	ErrColor      = errors.New("scenefile: bad color")
	ErrMode       = errors.New("scenefile: unknown draw mode")
	ErrBlend      = errors.New("scenefile: unknown blend mode")
	ErrResize     = errors.New("scenefile: unknown resize mode")
	ErrKind       = errors.New("scenefile: unknown op kind")
	ErrClip       = errors.New("scenefile: clip needs x, y, w, h")
	ErrMissingSrc = errors.New("scenefile: image op without src")
	ErrGradient   = errors.New("scenefile: at most four gradient colors")
)

// Scene is a parsed scene file.
type Scene struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Format     string `toml:"format"`
	Background string `toml:"background"`
	Ops        []Op   `toml:"op"`

	// Dir resolves relative image paths. Load sets it to the directory of
	// the scene file.
	Dir string `toml:"-"`
}

// Op is one draw operation. Which geometry keys are read depends on Kind.
type Op struct {
	Kind string `toml:"kind"`

	Mode      string   `toml:"mode"`
	Color     string   `toml:"color"`
	Gradient  []string `toml:"gradient"`
	Thickness int      `toml:"thickness"`
	Antialias bool     `toml:"antialias"`
	Blend     string   `toml:"blend"`
	Alpha     *int     `toml:"alpha"`
	Mask      string   `toml:"mask"`
	Clip      []int    `toml:"clip"`
	Resize    string   `toml:"resize"`

	X     int `toml:"x"`
	Y     int `toml:"y"`
	X1    int `toml:"x1"`
	Y1    int `toml:"y1"`
	W     int `toml:"w"`
	H     int `toml:"h"`
	R     int `toml:"r"`
	A     int `toml:"a"`
	B     int `toml:"b"`
	Tilt  int `toml:"tilt"`
	Start int `toml:"start"`
	Sweep int `toml:"sweep"`

	Src string `toml:"src"`
}

// Parse decodes a scene from TOML. Unknown keys are an error.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenefile: decode: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, s.Width, s.Height)
	}
	if s.Format == "" {
		s.Format = color.FormatRGBA8888.String()
	}
	if _, ok := color.ParseFormat(s.Format); !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormat, s.Format)
	}
	return &s, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

// Render draws the scene into a new pixmap of the scene size and format.
func (s *Scene) Render() (*pixmap.Pixmap, error) {
	f, ok := color.ParseFormat(s.Format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormat, s.Format)
	}
	pm, err := pixmap.New(s.Width, s.Height, f)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	if err := s.Draw(gpx.NewContext(pm)); err != nil {
		return nil, err
	}
	return pm, nil
}

// Draw clears the target of dc to the background and runs every op.
// Rejected draws are skipped; any other failure stops the scene.
func (s *Scene) Draw(dc *gpx.Context) error {
	if s.Background != "" {
		bg, err := ParseColor(s.Background)
		if err != nil {
			return err
		}
		if err := dc.Clear(bg); err != nil {
			return err
		}
	}
	for i := range s.Ops {
		op := &s.Ops[i]
		err := s.drawOp(dc, op)
		if err != nil && !errors.Is(err, gpx.ErrRejected) {
			return fmt.Errorf("scenefile: op %d (%s): %w", i, op.Kind, err)
		}
	}
	return nil
}

func (s *Scene) drawOp(dc *gpx.Context, op *Op) error {
	if err := configure(dc, op); err != nil {
		return err
	}
	switch op.Kind {
	case "pixel":
		return dc.DrawPixel(op.X, op.Y)
	case "line":
		return dc.DrawLine(op.X, op.Y, op.X1, op.Y1)
	case "gradient-line":
		return dc.DrawGradientLine(op.X, op.Y, op.X1, op.Y1)
	case "rect":
		return dc.DrawRect(op.X, op.Y, op.W, op.H)
	case "circle":
		return dc.DrawCircle(op.X, op.Y, op.R)
	case "ellipse":
		return dc.DrawEllipse(op.X, op.Y, op.A, op.B, op.Tilt, op.Start, op.Sweep)
	case "arc":
		return dc.DrawArc(op.X, op.Y, op.R, op.Start, op.Sweep)
	case "image":
		src, err := s.loadImage(op.Src)
		if err != nil {
			return err
		}
		w, h := op.W, op.H
		if w == 0 && h == 0 {
			w, h = src.Width(), src.Height()
		}
		return dc.DrawImage(src, op.X, op.Y, w, h)
	default:
		return fmt.Errorf("%w: %q", ErrKind, op.Kind)
	}
}

// configure resets dc to the default draw configuration and applies the
// keys op sets.
func configure(dc *gpx.Context, op *Op) error {
	mode, err := ParseMode(op.Mode)
	if err != nil {
		return err
	}
	dc.SetMode(mode)

	c := color.White
	if op.Color != "" {
		if c, err = ParseColor(op.Color); err != nil {
			return err
		}
	}
	dc.SetColor(c)

	if len(op.Gradient) > 4 {
		return ErrGradient
	}
	stops := make([]color.Color, len(op.Gradient))
	for i, g := range op.Gradient {
		if stops[i], err = ParseColor(g); err != nil {
			return err
		}
	}
	dc.SetGradient(stops...)

	blend, err := ParseBlend(op.Blend)
	if err != nil {
		return err
	}
	alpha := 0xFF
	if op.Alpha != nil {
		alpha = min(max(*op.Alpha, 0), 0xFF)
	}
	dc.SetBlend(blend, uint8(alpha))

	dc.SetMask(false, color.Color{})
	if op.Mask != "" {
		m, err := ParseColor(op.Mask)
		if err != nil {
			return err
		}
		dc.SetMask(true, m)
	}

	dc.ResetClip()
	switch len(op.Clip) {
	case 0:
	case 4:
		dc.SetClip(geom.NewRect(op.Clip[0], op.Clip[1], op.Clip[2], op.Clip[3]))
	default:
		return ErrClip
	}

	resize, err := ParseResize(op.Resize)
	if err != nil {
		return err
	}
	dc.SetResize(resize)

	dc.SetThickness(max(op.Thickness, 1))
	dc.SetAntialias(op.Antialias)
	return nil
}

func (s *Scene) loadImage(name string) (*pixmap.Pixmap, error) {
	if name == "" {
		return nil, ErrMissingSrc
	}
	if !filepath.IsAbs(name) && s.Dir != "" {
		name = filepath.Join(s.Dir, name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return pixmap.FromImage(img, color.FormatRGBA8888)
}

var namedColors = map[string]color.Color{
	"black":       color.Black,
	"white":       color.White,
	"red":         color.Red,
	"green":       color.Green,
	"blue":        color.Blue,
	"transparent": color.Transparent,
}

// ParseColor parses a color name or a "#rrggbb" or "#rrggbbaa" hex value
// into an RGBA8888 color.
func ParseColor(s string) (color.Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.Color{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.Color{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return color.New(uint32(v), color.FormatRGBA8888), nil
}

// ParseMode parses a draw mode name such as "fill" or
// "gradient-left-right". The empty string selects outline mode.
func ParseMode(s string) (raster.DrawMode, error) {
	if s == "" {
		return raster.ModeOutline, nil
	}
	name := strings.ReplaceAll(s, "-", "")
	for m := raster.ModeOutline; m.IsValid(); m++ {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrMode, s)
}

// ParseBlend parses "none", "channel", "global" or "channel-global". The
// empty string selects no blending.
func ParseBlend(s string) (raster.BlendMode, error) {
	name := strings.ReplaceAll(s, "-", "")
	for _, b := range []raster.BlendMode{raster.BlendNone, raster.BlendChannel, raster.BlendGlobal, raster.BlendChannelGlobal} {
		if s == "" || strings.EqualFold(b.String(), name) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBlend, s)
}

// ParseResize parses an interpolation name such as "nearest" or
// "catmull-rom". The empty string selects nearest.
func ParseResize(s string) (pixmap.Interpolation, error) {
	name := strings.ReplaceAll(s, "-", "")
	for m := pixmap.InterpNearest; m <= pixmap.InterpCatmullRom; m++ {
		if s == "" || strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrResize, s)
}
