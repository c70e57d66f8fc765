package pixmap

import (
	"image"
	stdcolor "image/color"
	"testing"

	"github.com/gogpu/gpx/color"
)

func TestResampleNearestDoubles(t *testing.T) {
	src, _ := New(2, 1, color.FormatRGB565)
	_ = src.Set(0, 0, color.Red)
	_ = src.Set(1, 0, color.Blue)

	dst, err := Resample(src, 4, 2, InterpNearest)
	if err != nil {
		t.Fatal(err)
	}
	if dst.Format() != color.FormatRGBA8888 {
		t.Fatalf("Resample format = %v", dst.Format())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := color.Red
			if x >= 2 {
				want = color.Blue
			}
			if got := dst.Get(x, y); got != want {
				t.Errorf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestResampleSameSizeCopies(t *testing.T) {
	src, _ := New(3, 2, color.FormatIndex8)
	src.SetPalette(color.NewPalette(color.FormatRGBA8888, color.Black, color.White))
	_ = src.SetRaw(2, 1, 1)
	for _, mode := range []Interpolation{InterpNearest, InterpApproxBilinear, InterpBilinear, InterpCatmullRom} {
		dst, err := Resample(src, 3, 2, mode)
		if err != nil {
			t.Fatal(err)
		}
		if got := dst.Get(2, 1); got != color.White {
			t.Errorf("%v: (2,1) = %v", mode, got)
		}
	}
}

func TestResampleBilinearStaysInRange(t *testing.T) {
	src, _ := New(2, 2, color.FormatRGBA8888)
	src.Fill(color.Black)
	_ = src.Set(1, 1, color.White)
	dst, err := Resample(src, 8, 8, InterpBilinear)
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.Get(0, 0); got != color.Black {
		t.Errorf("corner (0,0) = %v", got)
	}
	if got := dst.Get(7, 7); got != color.White {
		t.Errorf("corner (7,7) = %v", got)
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(1, 0, stdcolor.NRGBA{R: 0xFF, A: 0xFF})
	p, err := FromImage(img, color.FormatRGB332)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Get(1, 0); got != color.RGB332(7, 0, 0) {
		t.Errorf("FromImage pixel = %v", got)
	}
}
