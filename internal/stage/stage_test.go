package stage

import (
	"testing"
	"time"

	"github.com/olivier-w/orbfield/internal/fx"
)

func newTestStage(t *testing.T, w, h int) *Stage {
	t.Helper()
	cfg := fx.DefaultConfig()
	cfg.Seed = 3
	s := New(cfg, nil, false)
	s.Resize(w, h)
	t.Cleanup(s.Close)
	return s
}

func run(s *Stage, n int) {
	start := time.Unix(0, 0)
	for i := range n {
		s.Frame(start.Add(time.Duration(i) * 16 * time.Millisecond))
	}
}

func TestStageRunsOnDesktopLandingPage(t *testing.T) {
	s := newTestStage(t, 1280, 720)
	if !s.Active() {
		t.Fatal("expected effect on a desktop window")
	}
	w, h, pix, ok := s.Pixels()
	if !ok || w != 1280 || h != 720 || len(pix) != 1280*720*4 {
		t.Fatalf("expected a full frame, got %dx%d (%d bytes, ok=%v)", w, h, len(pix), ok)
	}
}

func TestStageDrawsOrbsAfterPointerMoves(t *testing.T) {
	s := newTestStage(t, 1280, 720)
	s.SetPointer(300, 300)
	run(s, 90)

	_, _, pix, ok := s.Pixels()
	if !ok {
		t.Fatal("expected pixels")
	}
	lit := 0
	for i := 3; i < len(pix); i += 4 {
		if pix[i] > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("expected orbs on the particle layer")
	}
}

func TestStageNarrowOrTouchIsOff(t *testing.T) {
	narrow := newTestStage(t, 600, 800)
	if narrow.Active() {
		t.Fatal("expected effect off below the breakpoint")
	}
	if _, _, _, ok := narrow.Pixels(); ok {
		t.Fatal("expected no pixels while off")
	}

	touch := newTestStage(t, 1280, 720)
	touch.MarkTouch()
	if touch.Active() {
		t.Fatal("expected effect off on touch devices")
	}
	touch.Resize(1400, 800)
	if touch.Active() {
		t.Fatal("expected touch to stick across resizes")
	}
}

func TestStageNavigation(t *testing.T) {
	s := newTestStage(t, 1280, 720)
	s.Go(1)
	if i, p := s.Page(); i != 1 || p.Route != "/about" {
		t.Fatalf("expected about, got %d %+v", i, p)
	}
	if s.Active() {
		t.Fatal("expected effect off the landing page")
	}

	home := s.Labels()[0]
	if !s.Click(home.X+1, home.Y+1) {
		t.Fatal("expected click on home label")
	}
	if !s.Active() {
		t.Fatal("expected effect back on the landing page")
	}
	if s.Click(5000, 5000) {
		t.Fatal("expected miss outside labels")
	}

	s.Go(-1)
	if i, _ := s.Page(); i != 3 {
		t.Fatalf("expected wrap to contact, got %d", i)
	}
}

func TestStageMagnetPullsLabels(t *testing.T) {
	s := newTestStage(t, 1280, 720)
	s.UpdateConfig(func(c *fx.Config) { c.Mode = fx.ModeMagnet })

	about := s.Labels()[1]
	c := about.Bounds().Center()
	s.SetPointer(c.X+40, c.Y)
	run(s, 1)
	if about.DX <= 0 || about.DY != 0 {
		t.Fatalf("expected about pulled right, got (%g,%g)", about.DX, about.DY)
	}

	s.Go(2)
	if about.DX != 0 || about.DY != 0 {
		t.Fatalf("expected offsets reset on teardown, got (%g,%g)", about.DX, about.DY)
	}
}

func TestStageThemeToggle(t *testing.T) {
	s := New(fx.DefaultConfig(), nil, true)
	defer s.Close()
	if s.Theme() != fx.ThemeDark {
		t.Fatal("expected platform preference to pick dark")
	}
	s.ToggleTheme()
	if s.Theme() != fx.ThemeLight {
		t.Fatal("expected toggle to light")
	}
	s.ToggleTheme()
	if s.Theme() != fx.ThemeDark {
		t.Fatal("expected toggle back to dark")
	}
}
