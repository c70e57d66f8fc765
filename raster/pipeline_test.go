// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"testing"

	"github.com/gogpu/gpx/geom"
)

func TestSoftwarePipelineComplete(t *testing.T) {
	p := Software()
	if p != Software() {
		t.Fatal("Software() should return a shared pipeline")
	}
	if p.Name() != "software" {
		t.Errorf("Name() = %q, want software", p.Name())
	}

	for mode := range modeCount {
		for _, aa := range []bool{false, true} {
			r := p.Routines(mode, aa)
			if r == nil {
				t.Fatalf("Routines(%v, %v) = nil", mode, aa)
			}
			if r.Pixel == nil || r.Coverage == nil || r.Line == nil || r.HLine == nil ||
				r.VLine == nil || r.Circle == nil || r.Ellipse == nil || r.Arc == nil ||
				r.Rect == nil || r.Image == nil {
				t.Errorf("Routines(%v, %v) has nil entries", mode, aa)
			}
		}
	}
}

func TestPipelineInvalidMode(t *testing.T) {
	p := NewPipeline("empty")
	if r := p.Routines(DrawMode(42), false); r != nil {
		t.Errorf("Routines(invalid) = %v, want nil", r)
	}
	// Set ignores invalid modes instead of panicking.
	p.Set(DrawMode(42), true, Routines{Pixel: PutPixel})
}

func TestPipelineSetSelectsEntry(t *testing.T) {
	var hits [modeCount][2]int
	p := NewPipeline("probe")
	for mode := range modeCount {
		for i, aa := range []bool{false, true} {
			p.Set(mode, aa, Routines{
				Pixel: func(*State, int, int) { hits[mode][i]++ },
			})
		}
	}

	st := &State{Mode: ModeGradientTopBottom, Antialias: true, Pipeline: p}
	st.Routines().Pixel(st, 0, 0)
	if hits[ModeGradientTopBottom][1] != 1 {
		t.Errorf("hits = %v, want only [GradientTopBottom][aa]", hits)
	}
}

func TestStateRoutinesDefaultsToSoftware(t *testing.T) {
	st := &State{Mode: ModeFill}
	if st.Routines() != Software().Routines(ModeFill, false) {
		t.Error("nil Pipeline should resolve to the software pipeline")
	}
}

func TestSoftwareRectRoutinePerMode(t *testing.T) {
	st, rec := newRecorder(t, 10, 10)
	r := geom.NewRect(1, 1, 6, 6)

	tests := []struct {
		mode DrawMode
		want int
	}{
		{ModeOutline, 20},
		{ModeFill, 36},
		{ModeGradientLeftRight, 36},
		{ModeGradientTopBottom, 36},
		{ModeGradientCorners, 36},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			rec.reset()
			st.Mode = tt.mode
			st.Routines().Rect(st, r)
			if got := len(rec.calls); got != tt.want {
				t.Errorf("plotted %d pixels, want %d", got, tt.want)
			}
		})
	}
}

func TestClipRect(t *testing.T) {
	st := newTarget(t, 20, 10)
	st.TargetClip = geom.NewRect(-5, 2, 15, 20)

	if got, want := st.ClipRect(), geom.NewRect(0, 2, 10, 8); got != want {
		t.Errorf("ClipRect() = %v, want %v", got, want)
	}

	st.ClipEnable = true
	st.Clip = geom.NewRect(5, 0, 100, 5)
	if got, want := st.ClipRect(), geom.NewRect(5, 2, 5, 3); got != want {
		t.Errorf("ClipRect() with clip = %v, want %v", got, want)
	}

	tests := []struct {
		x, y int
		want bool
	}{
		{5, 2, true},
		{9, 4, true},
		{4, 2, false},
		{10, 2, false},
		{5, 5, false},
	}
	for _, tt := range tests {
		if got := st.Visible(tt.x, tt.y); got != tt.want {
			t.Errorf("Visible(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	var empty State
	if !empty.ClipRect().Empty() {
		t.Error("state without target should have an empty clip rect")
	}
}

func TestDrawModeAndBlendStrings(t *testing.T) {
	if ModeGradientLeftRight.String() != "GradientLeftRight" {
		t.Errorf("got %q", ModeGradientLeftRight.String())
	}
	if DrawMode(99).String() != "Unknown" || DrawMode(99).IsValid() {
		t.Error("DrawMode(99) should be unknown and invalid")
	}
	if BlendChannelGlobal != BlendChannel|BlendGlobal {
		t.Error("BlendChannelGlobal should combine both flags")
	}
	if BlendChannelGlobal.String() != "ChannelGlobal" {
		t.Errorf("got %q", BlendChannelGlobal.String())
	}
}
