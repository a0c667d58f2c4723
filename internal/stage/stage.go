// Package stage is the pixel window's page model: navigation labels that
// magnet mode can pull, pointer and viewport plumbing and the particle
// raster. It has no graphics backend of its own.
package stage

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/olivier-w/orbfield/internal/canvas"
	"github.com/olivier-w/orbfield/internal/content"
	"github.com/olivier-w/orbfield/internal/fx"
)

// Glyph size of the window's debug font, and nav layout in pixels.
const (
	GlyphWidth  = 6
	GlyphHeight = 16

	navTop   = 24
	navLeft  = 24
	navGap   = 16
	labelPad = 8
)

// Label is a navigation link. Magnet mode moves it by (DX, DY).
type Label struct {
	Page   content.Page
	X, Y   float64
	W, H   float64
	DX, DY float64
}

func (l *Label) Bounds() fx.Rect { return fx.Rect{X: l.X, Y: l.Y, W: l.W, H: l.H} }

func (l *Label) SetOffset(dx, dy float64) { l.DX, l.DY = dx, dy }

func (l *Label) contains(x, y float64) bool {
	return x >= l.X && x < l.X+l.W && y >= l.Y && y < l.Y+l.H
}

// Stage owns the effect for one window.
type Stage struct {
	log    *zap.Logger
	frames *fx.FrameQueue
	raster *canvas.Raster
	env    fx.Env
	effect *fx.Effect
	labels []*Label
	page   int
	touch  bool
	pix    []byte
}

// New mounts the effect on the landing page. The viewport stays empty
// until the first Resize.
func New(cfg fx.Config, log *zap.Logger, prefersDark bool) *Stage {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Stage{
		log:    log,
		frames: fx.NewFrameQueue(),
		raster: canvas.NewRaster(1, 1),
	}

	x := float64(navLeft)
	for _, p := range content.Pages() {
		w := float64(len(p.Title)*GlyphWidth + 2*labelPad)
		s.labels = append(s.labels, &Label{Page: p, X: x, Y: navTop, W: w, H: GlyphHeight + 2*labelPad})
		x += w + navGap
	}

	s.env = fx.NewEnv(s.frames, s.raster)
	s.env.Logger = log.Named("fx")
	s.env.Magnets = s.magnets
	s.env.Scheme.Set(fx.Scheme{PrefersDark: prefersDark})
	s.env.Route.Set(s.labels[0].Page.Route)

	s.effect = fx.NewEffect(s.env, cfg)
	s.effect.Mount()
	return s
}

func (s *Stage) magnets() []fx.Magnetic {
	out := make([]fx.Magnetic, len(s.labels))
	for i, l := range s.labels {
		out[i] = l
	}
	return out
}

// Resize publishes a new viewport when the window size changed.
func (s *Stage) Resize(w, h int) {
	vp := fx.Viewport{Width: w, Height: h, Touch: s.touch}
	if vp == s.env.Viewport.Get() {
		return
	}
	s.env.Viewport.Set(vp)
}

// MarkTouch records that the device has a touch screen. The effect never
// runs on touch devices, so this is sticky.
func (s *Stage) MarkTouch() {
	if s.touch {
		return
	}
	s.touch = true
	vp := s.env.Viewport.Get()
	vp.Touch = true
	s.env.Viewport.Set(vp)
	s.log.Debug("touch input seen, effect disabled")
}

// SetPointer moves the pointer if it changed.
func (s *Stage) SetPointer(x, y float64) {
	p := fx.Point{X: x, Y: y}
	if p == s.env.Pointer.Get() {
		return
	}
	s.env.Pointer.Set(p)
}

// Click follows the label under (x, y) and reports whether there was one.
func (s *Stage) Click(x, y float64) bool {
	for i, l := range s.labels {
		if l.contains(x, y) {
			s.Go(i)
			return true
		}
	}
	return false
}

// Go switches to page i, wrapping around.
func (s *Stage) Go(i int) {
	i = (i + len(s.labels)) % len(s.labels)
	if i == s.page {
		return
	}
	s.page = i
	s.raster.Clear()
	s.env.Route.Set(s.labels[i].Page.Route)
}

// Page returns the current page and its index.
func (s *Stage) Page() (int, content.Page) { return s.page, s.labels[s.page].Page }

// Labels returns the navigation labels in order.
func (s *Stage) Labels() []*Label { return s.labels }

// UpdateConfig applies edit to the effect configuration and restarts it.
func (s *Stage) UpdateConfig(edit func(*fx.Config)) {
	cfg := s.effect.Config()
	edit(&cfg)
	s.effect.SetConfig(cfg)
	s.raster.Clear()
	s.log.Info("effect config changed", zap.Stringer("mode", cfg.Mode))
}

// ToggleTheme flips the resolved theme, replacing the platform preference.
func (s *Stage) ToggleTheme() {
	if s.Theme() == fx.ThemeDark {
		s.env.Scheme.Set(fx.Scheme{})
	} else {
		s.env.Scheme.Set(fx.Scheme{DarkClass: true})
	}
}

func (s *Stage) Theme() fx.Theme { return s.env.Scheme.Get().Theme() }

// Active reports whether the effect is running.
func (s *Stage) Active() bool { return s.effect.Active() }

// Frame runs one display frame and returns how many callbacks ran.
func (s *Stage) Frame(now time.Time) int { return s.frames.Flush(now) }

// Pixels returns the particle layer as premultiplied RGBA, or ok false when
// nothing should be drawn.
func (s *Stage) Pixels() (w, h int, pix []byte, ok bool) {
	if !s.effect.Active() {
		return 0, 0, nil, false
	}
	w, h = s.raster.Pixels()
	if w == 0 || h == 0 {
		return 0, 0, nil, false
	}
	s.pix = s.raster.AppendRGBA8(s.pix[:0])
	return w, h, s.pix, true
}

// Status describes the effect for the window's footer.
func (s *Stage) Status() string {
	cfg := s.effect.Config()
	state := "off"
	if s.effect.Active() {
		state = "on"
	}
	return fmt.Sprintf("fx %s %s  theme %s  [1-4] page  [m] mode  [g/d/r] glow/depth/reflection  [t] theme  [esc] quit",
		cfg.Mode, state, s.Theme())
}

// Close tears the effect down.
func (s *Stage) Close() { s.effect.Unmount() }
