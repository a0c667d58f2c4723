package fx

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis aligned box in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Viewport describes the host display.
type Viewport struct {
	Width  int
	Height int
	// Touch marks touch-first devices, which never run the effect.
	Touch bool
}

// Mobile reports whether v counts as a small or touch display.
func (v Viewport) Mobile(breakpoint int) bool {
	return v.Touch || v.Width < breakpoint
}

// Theme is the resolved colour scheme.
type Theme uint8

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Scheme carries the two inputs that decide the theme: an explicit dark
// class set by the host and the platform preference.
type Scheme struct {
	DarkClass   bool
	PrefersDark bool
}

// Theme resolves s.
func (s Scheme) Theme() Theme {
	if s.DarkClass || s.PrefersDark {
		return ThemeDark
	}
	return ThemeLight
}

// Magnetic is a host element pulled toward the pointer in magnet mode.
type Magnetic interface {
	Bounds() Rect
	SetOffset(dx, dy float64)
}

// Env is everything the animator reads from or writes to its host.
type Env struct {
	Pointer  *Signal[Point]
	Viewport *Signal[Viewport]
	Scheme   *Signal[Scheme]
	Route    *Signal[string]

	Frames  Scheduler
	Surface Surface

	// Magnets lists the elements magnet mode acts on. It is queried every
	// frame so hosts may relayout freely.
	Magnets func() []Magnetic

	Rand   *rand.Rand
	Logger *zap.Logger
}

// NewEnv returns an Env with fresh signals for the given scheduler and
// surface. The route starts empty, so nothing runs until the host sets it.
func NewEnv(frames Scheduler, surface Surface) Env {
	return Env{
		Pointer:  NewSignal(Point{}),
		Viewport: NewSignal(Viewport{}),
		Scheme:   NewSignal(Scheme{}),
		Route:    NewSignal(""),
		Frames:   frames,
		Surface:  surface,
	}
}

func (e Env) withDefaults(seed uint64) Env {
	if e.Pointer == nil {
		e.Pointer = NewSignal(Point{})
	}
	if e.Viewport == nil {
		e.Viewport = NewSignal(Viewport{})
	}
	if e.Scheme == nil {
		e.Scheme = NewSignal(Scheme{})
	}
	if e.Route == nil {
		e.Route = NewSignal("")
	}
	if e.Rand == nil {
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		e.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	return e
}

// ShouldRender reports whether the effect may run: only on the landing
// route and never on mobile viewports.
func ShouldRender(cfg Config, route string, vp Viewport) bool {
	return route == cfg.LandingRoute && !vp.Mobile(cfg.MobileBreakpoint)
}
