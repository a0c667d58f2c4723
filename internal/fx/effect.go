package fx

import "go.uber.org/zap"

// Effect is the mounted overlay. It watches the route and viewport, builds
// an Animator whenever the effect may run and tears it down when it may
// not.
type Effect struct {
	env     Env
	cfg     Config
	log     *zap.Logger
	anim    *Animator
	unsubs  []func()
	mounted bool
}

// NewEffect returns an unmounted effect.
func NewEffect(env Env, cfg Config) *Effect {
	env = env.withDefaults(cfg.Seed)
	return &Effect{env: env, cfg: cfg, log: env.Logger}
}

// Mount starts watching the host and activates the animator if allowed.
func (e *Effect) Mount() {
	if e.mounted {
		return
	}
	e.mounted = true
	e.unsubs = append(e.unsubs,
		e.env.Route.Subscribe(func(string) { e.sync() }),
		e.env.Viewport.Subscribe(func(Viewport) { e.sync() }),
	)
	e.sync()
}

// Unmount tears the animator down and stops watching the host. It is safe
// to call repeatedly.
func (e *Effect) Unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	for _, unsub := range e.unsubs {
		unsub()
	}
	e.unsubs = nil
	e.deactivate()
}

// SetConfig replaces the configuration, restarting a running animator.
func (e *Effect) SetConfig(cfg Config) {
	e.cfg = cfg
	e.deactivate()
	if e.mounted {
		e.sync()
	}
}

// Config returns the current configuration.
func (e *Effect) Config() Config { return e.cfg }

// Active reports whether an animator is running.
func (e *Effect) Active() bool { return e.anim != nil && e.anim.Running() }

// Animator returns the running animator, or nil.
func (e *Effect) Animator() *Animator { return e.anim }

func (e *Effect) sync() {
	want := ShouldRender(e.cfg, e.env.Route.Get(), e.env.Viewport.Get())
	switch {
	case want && e.anim == nil:
		anim, err := NewAnimator(e.env, e.cfg)
		if err != nil {
			e.log.Debug("effect disabled", zap.Error(err))
			return
		}
		if !anim.Start() {
			return
		}
		e.anim = anim
	case !want && e.anim != nil:
		e.deactivate()
	}
}

func (e *Effect) deactivate() {
	if e.anim == nil {
		return
	}
	e.anim.Stop()
	e.anim = nil
}
