package fx

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// behavior is one visual mode. The animator owns the pool and the clock;
// a behavior only decides how particles are born, move and look.
type behavior interface {
	// populate fills the pool at start.
	populate(a *Animator)
	// interval is the spawn throttle; zero disables spawning.
	interval() time.Duration
	spawn(a *Animator)
	update(a *Animator)
	draw(a *Animator, s Surface)
	// reset undoes any side effect on host state at teardown.
	reset(a *Animator)
}

func newBehavior(m Mode) (behavior, error) {
	switch m {
	case ModeOrb:
		return &orbMode{}, nil
	case ModeBubble:
		return bubbleMode{}, nil
	case ModeTrail:
		return trailMode{}, nil
	case ModeCharged:
		return chargedMode{}, nil
	case ModeMagnet:
		return &magnetMode{}, nil
	}
	return nil, ErrUnknownMode
}

// Animator is one mounted instance of the effect. It exclusively owns the
// particle pool between Start and Stop. All methods must be called from the
// host's event loop.
type Animator struct {
	cfg  Config
	env  Env
	log  *zap.Logger
	rng  *rand.Rand
	mode behavior

	pool        []Particle
	pointer     Point
	pointerSeen bool
	theme       Theme

	started   time.Time
	elapsed   float64
	lastSpawn time.Time
	frames    int

	handle  FrameHandle
	running bool
	unsubs  []func()
}

// NewAnimator validates cfg and builds an idle animator.
func NewAnimator(env Env, cfg Config) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, err := newBehavior(cfg.Mode)
	if err != nil {
		return nil, err
	}
	env = env.withDefaults(cfg.Seed)
	return &Animator{
		cfg:  cfg,
		env:  env,
		log:  env.Logger.With(zap.Stringer("mode", cfg.Mode)),
		rng:  env.Rand,
		mode: mode,
	}, nil
}

// Start attaches listeners, seeds the pool and requests the first frame.
// It reports false, doing nothing, when the host has no surface or
// scheduler.
func (a *Animator) Start() bool {
	if a.running {
		return true
	}
	if a.env.Surface == nil || a.env.Frames == nil {
		a.log.Debug("no drawing surface, effect not started")
		return false
	}

	vp := a.env.Viewport.Get()
	a.env.Surface.Resize(vp.Width, vp.Height)
	a.theme = a.env.Scheme.Get().Theme()
	// A pointer that moved before this animator existed is still live.
	a.pointer = a.env.Pointer.Get()
	a.pointerSeen = a.env.Pointer.IsSet()

	a.unsubs = append(a.unsubs,
		a.env.Pointer.Subscribe(a.onPointer),
		a.env.Viewport.Subscribe(a.onViewport),
		a.env.Scheme.Subscribe(a.onScheme),
	)

	a.running = true
	a.mode.populate(a)
	a.handle = a.env.Frames.RequestFrame(a.frame)
	a.log.Debug("effect started", zap.Int("width", vp.Width), zap.Int("height", vp.Height))
	return true
}

// Stop cancels the frame loop, removes every listener, resets host state
// touched by the mode and drops the pool. It is safe to call repeatedly.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	if a.handle != 0 {
		a.env.Frames.CancelFrame(a.handle)
		a.handle = 0
	}
	for _, unsub := range a.unsubs {
		unsub()
	}
	a.unsubs = nil
	a.mode.reset(a)
	a.pool = nil
	a.log.Debug("effect stopped", zap.Int("frames", a.frames))
}

// Running reports whether the frame loop is live.
func (a *Animator) Running() bool { return a.running }

// Mode returns the configured mode.
func (a *Animator) Mode() Mode { return a.cfg.Mode }

// Theme returns the theme used for the next paint.
func (a *Animator) Theme() Theme { return a.theme }

// Frames returns how many frames have run.
func (a *Animator) Frames() int { return a.frames }

// Particles returns a copy of the pool.
func (a *Animator) Particles() []Particle {
	out := make([]Particle, len(a.pool))
	copy(out, a.pool)
	return out
}

func (a *Animator) onPointer(p Point) {
	a.pointer = p
	a.pointerSeen = true
}

func (a *Animator) onViewport(vp Viewport) {
	if !a.running {
		return
	}
	a.env.Surface.Resize(vp.Width, vp.Height)
}

func (a *Animator) onScheme(s Scheme) {
	a.theme = s.Theme()
}

func (a *Animator) frame(now time.Time) {
	a.handle = 0
	if !a.running {
		return
	}
	a.step(now)
	a.paint()
	a.frames++
	a.handle = a.env.Frames.RequestFrame(a.frame)
}

// step advances the simulation by one frame. Spawning is throttled by wall
// time, everything else moves a fixed amount per frame.
func (a *Animator) step(now time.Time) {
	if a.started.IsZero() {
		a.started = now
	}
	a.elapsed = now.Sub(a.started).Seconds()

	if iv := a.mode.interval(); iv > 0 && a.pointerSeen && now.Sub(a.lastSpawn) >= iv {
		a.mode.spawn(a)
		a.lastSpawn = now
	}
	a.mode.update(a)
}

func (a *Animator) paint() {
	w, h := a.env.Surface.Size()
	if w <= 0 || h <= 0 {
		return
	}
	a.mode.draw(a, a.env.Surface)
}

// ageParticles decrements life, refreshes opacity and drops expired
// particles in place, applying move to the survivors first.
func (a *Animator) ageParticles(move func(p *Particle)) {
	live := a.pool[:0]
	for i := range a.pool {
		p := a.pool[i]
		p.Life--
		if move != nil {
			move(&p)
		}
		clampSpeed(&p.VX, &p.VY, a.cfg.MaxSpeed)
		if p.MaxLife > 0 {
			p.Opacity = clamp01(p.Life / p.MaxLife)
		}
		if p.Life <= 0 {
			continue
		}
		live = append(live, p)
	}
	clear(a.pool[len(live):])
	a.pool = live
}

// jitter returns a uniform value in [-span/2, span/2).
func (a *Animator) jitter(span float64) float64 {
	return (a.rng.Float64() - 0.5) * span
}
