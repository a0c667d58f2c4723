package fx

import (
	"math"
	"testing"
)

type fakeMagnet struct {
	rect   Rect
	dx, dy float64
	sets   int
}

func (m *fakeMagnet) Bounds() Rect { return m.rect }

func (m *fakeMagnet) SetOffset(dx, dy float64) {
	m.dx, m.dy = dx, dy
	m.sets++
}

func TestMagnetPullsNearbyElements(t *testing.T) {
	near := &fakeMagnet{rect: Rect{X: 90, Y: 90, W: 20, H: 20}}
	far := &fakeMagnet{rect: Rect{X: 800, Y: 600, W: 20, H: 20}}

	h := newHarness(t, desktop())
	h.env.Magnets = func() []Magnetic { return []Magnetic{near, far} }
	startAnimator(t, h, testConfig(ModeMagnet))

	h.env.Pointer.Set(Point{X: 160, Y: 100})
	h.frames(1)

	// 60px away: strength (150-60)/150 = 0.6, pull 6px along +x.
	if math.Abs(near.dx-6) > 1e-9 || math.Abs(near.dy) > 1e-9 {
		t.Fatalf("expected near offset (6, 0), got (%g, %g)", near.dx, near.dy)
	}
	if far.dx != 0 || far.dy != 0 {
		t.Fatalf("expected far element untouched, got (%g, %g)", far.dx, far.dy)
	}
	if h.surf.draws() != 0 {
		t.Fatalf("expected magnet mode to paint nothing, got %d draw calls", h.surf.draws())
	}
}

func TestMagnetResetsOffsetsOnTeardown(t *testing.T) {
	el := &fakeMagnet{rect: Rect{X: 0, Y: 0, W: 100, H: 40}}

	h := newHarness(t, desktop())
	h.env.Magnets = func() []Magnetic { return []Magnetic{el} }
	a := startAnimator(t, h, testConfig(ModeMagnet))

	h.env.Pointer.Set(Point{X: 80, Y: 30})
	h.frames(3)
	if el.dx == 0 && el.dy == 0 {
		t.Fatal("expected element to be displaced")
	}

	a.Stop()
	if el.dx != 0 || el.dy != 0 {
		t.Fatalf("expected neutral offset after teardown, got (%g, %g)", el.dx, el.dy)
	}
}

func TestMagnetOffsetAtCentreIsNeutral(t *testing.T) {
	dx, dy := magnetOffset(Point{X: 5, Y: 5}, Point{X: 5, Y: 5})
	if dx != 0 || dy != 0 {
		t.Fatalf("expected no offset with pointer on the centre, got (%g, %g)", dx, dy)
	}
}
