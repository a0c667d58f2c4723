package fx

import (
	"math/rand/v2"
	"testing"
	"time"
)

type recordSurface struct {
	w, h   int
	clears int
	fades  int
	fills  int
}

func (s *recordSurface) Resize(w, h int)   { s.w, s.h = w, h }
func (s *recordSurface) Size() (int, int)  { return s.w, s.h }
func (s *recordSurface) Clear()            { s.clears++ }
func (s *recordSurface) Fade(RGBA)         { s.fades++ }
func (s *recordSurface) Fill(Shape, Paint) { s.fills++ }
func (s *recordSurface) draws() int        { return s.clears + s.fades + s.fills }

type spyScheduler struct {
	*FrameQueue
	requests int
}

func (s *spyScheduler) RequestFrame(fn FrameFunc) FrameHandle {
	s.requests++
	return s.FrameQueue.RequestFrame(fn)
}

type harness struct {
	env   Env
	surf  *recordSurface
	sched *spyScheduler
	now   time.Time
}

func newHarness(t *testing.T, vp Viewport) *harness {
	t.Helper()
	surf := &recordSurface{}
	sched := &spyScheduler{FrameQueue: NewFrameQueue()}
	env := NewEnv(sched, surf)
	env.Rand = rand.New(rand.NewPCG(7, 11))
	env.Viewport.Set(vp)
	return &harness{env: env, surf: surf, sched: sched, now: time.Unix(1700000000, 0)}
}

func (h *harness) frames(n int) {
	for range n {
		h.sched.Flush(h.now)
		h.now = h.now.Add(16 * time.Millisecond)
	}
}

func desktop() Viewport { return Viewport{Width: 1024, Height: 768} }

func testConfig(m Mode) Config {
	cfg := DefaultConfig()
	cfg.Mode = m
	cfg.Seed = 42
	return cfg
}

func startAnimator(t *testing.T, h *harness, cfg Config) *Animator {
	t.Helper()
	a, err := NewAnimator(h.env, cfg)
	if err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}
	if !a.Start() {
		t.Fatal("expected animator to start")
	}
	return a
}
