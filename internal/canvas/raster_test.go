package canvas

import (
	"math"
	"testing"

	"github.com/olivier-w/orbfield/internal/fx"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRasterResizeUsesScale(t *testing.T) {
	r := NewRaster(5, 5)
	r.Resize(800, 598)
	if w, h := r.Size(); w != 800 || h != 598 {
		t.Fatalf("expected logical size 800x598, got %dx%d", w, h)
	}
	if cols, rows := r.Pixels(); cols != 160 || rows != 120 {
		t.Fatalf("expected 160x120 pixels, got %dx%d", cols, rows)
	}
}

func TestRasterFillCoversOnlyShape(t *testing.T) {
	r := NewRaster(1, 1)
	r.Resize(20, 20)
	r.Fill(fx.Circle{X: 10, Y: 10, R: 3}, fx.Solid(fx.RGBA{R: 1, A: 1}))

	if c := r.At(10, 10); !near(c.R, 1) || !near(c.A, 1) {
		t.Fatalf("expected opaque red at centre, got %+v", c)
	}
	if c := r.At(0, 0); c != fx.Transparent {
		t.Fatalf("expected corner untouched, got %+v", c)
	}
}

func TestRasterFillClipsOutsideBounds(t *testing.T) {
	r := NewRaster(1, 1)
	r.Resize(10, 10)
	r.Fill(fx.Circle{X: -5, Y: -5, R: 8}, fx.Solid(fx.RGBA{G: 1, A: 1}))
	r.Fill(fx.Circle{X: 500, Y: 500, R: 8}, fx.Solid(fx.RGBA{G: 1, A: 1}))

	if c := r.At(0, 0); !near(c.G, 1) {
		t.Fatalf("expected clipped disc to reach the corner, got %+v", c)
	}
	if c := r.At(9, 9); c != fx.Transparent {
		t.Fatalf("expected far corner untouched, got %+v", c)
	}
}

func TestRasterSourceOverComposites(t *testing.T) {
	r := NewRaster(1, 1)
	r.Resize(4, 4)
	r.Fill(fx.Circle{X: 2, Y: 2, R: 4}, fx.Solid(fx.RGBA{B: 1, A: 1}))
	r.Fill(fx.Circle{X: 2, Y: 2, R: 4}, fx.Solid(fx.RGBA{R: 1, A: 0.5}))

	c := r.At(1, 1)
	if !near(c.A, 1) || !near(c.R, 0.5) || !near(c.B, 0.5) {
		t.Fatalf("expected half red over blue, got %+v", c)
	}
}

func TestRasterFadeTowardTransparent(t *testing.T) {
	r := NewRaster(1, 1)
	r.Resize(4, 4)
	r.Fill(fx.Circle{X: 2, Y: 2, R: 4}, fx.Solid(fx.RGBA{R: 1, A: 1}))

	r.Fade(fx.RGBA{R: 1, G: 1, B: 1, A: 0.5})
	c := r.At(1, 1)
	if !near(c.A, 0.5) || !near(c.R, 1) || !near(c.G, 0) {
		t.Fatalf("expected red at half coverage, got %+v", c)
	}

	for range 20 {
		r.Fade(fx.RGBA{A: 0.5})
	}
	if c := r.At(1, 1); c != fx.Transparent {
		t.Fatalf("expected pixel to fade out, got %+v", c)
	}
}

func TestRasterClear(t *testing.T) {
	r := NewRaster(1, 1)
	r.Resize(4, 4)
	r.Fill(fx.Circle{X: 2, Y: 2, R: 4}, fx.Solid(fx.RGBA{R: 1, A: 1}))
	r.Clear()
	for y := range 4 {
		for x := range 4 {
			if c := r.At(x, y); c != fx.Transparent {
				t.Fatalf("expected clear pixel at %d,%d, got %+v", x, y, c)
			}
		}
	}
}

func TestRasterAppendRGBA8IsPremultiplied(t *testing.T) {
	r := NewRaster(1, 1)
	r.Resize(1, 1)
	r.Fill(fx.Circle{X: 0.5, Y: 0.5, R: 1}, fx.Solid(fx.RGBA{R: 1, A: 0.5}))

	got := r.AppendRGBA8(nil)
	want := []byte{128, 0, 0, 128}
	if len(got) != len(want) {
		t.Fatalf("expected %d bytes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
