package fx

import (
	"math"
	"slices"
	"time"
)

const (
	orbStagger        = 0.08
	orbMinDelayFactor = 0.05
	orbChase          = 0.1
	orbEpsilon        = 0.1
	orbEaseDistance   = 100.0
	orbFadeIn         = 0.02
	orbHueStep        = 0.5
	orbDepthChase     = 0.1
)

// orbMode keeps a fixed pool of glossy orbs springing after the pointer.
type orbMode struct {
	order []int
}

func (*orbMode) populate(a *Animator) {
	vp := a.env.Viewport.Get()
	cx, cy := float64(vp.Width)/2, float64(vp.Height)/2
	a.pool = make([]Particle, a.cfg.Count)
	for i := range a.pool {
		a.pool[i] = Particle{
			X: cx, Y: cy,
			TX: cx, TY: cy,
			Size:       lerp(8, 20, a.rng.Float64()),
			Depth:      a.rng.Float64()*0.8 + 0.2,
			Life:       0,
			MaxLife:    1,
			Hue:        a.rng.Float64() * 360,
			Delay:      float64(i) * orbStagger,
			Elasticity: lerp(0.3, 0.8, a.rng.Float64()),
			Kind:       KindOrb,
		}
	}
}

func (*orbMode) interval() time.Duration { return 0 }

func (*orbMode) spawn(*Animator) {}

// delayFactor slows target tracking for orbs further down the pool.
func delayFactor(delay float64) float64 {
	return math.Max(orbMinDelayFactor, 1-delay)
}

func (*orbMode) update(a *Animator) {
	t := a.elapsed
	for i := range a.pool {
		o := &a.pool[i]

		// Orbs rest where they are until the pointer has actually moved.
		if a.pointerSeen {
			ox := math.Sin(t*0.8+float64(i)*0.5) * o.Size * 0.3
			oy := math.Cos(t*0.6+float64(i)*0.7) * o.Size * 0.2
			k := delayFactor(o.Delay) * orbChase
			o.TX = lerp(o.TX, a.pointer.X+ox, k)
			o.TY = lerp(o.TY, a.pointer.Y+oy, k)
		}

		dx, dy := o.TX-o.X, o.TY-o.Y
		dist := math.Hypot(dx, dy)
		if dist > orbEpsilon {
			force := a.cfg.Spring * o.Elasticity
			o.VX += dx * force
			o.VY += dy * force
			ease := easeOutElastic(math.Min(dist/orbEaseDistance, 1))
			o.VX *= ease
			o.VY *= ease
		}

		o.VX *= a.cfg.Damping
		o.VY *= a.cfg.Damping
		speed := math.Min(clampSpeed(&o.VX, &o.VY, a.cfg.MaxSpeed), a.cfg.MaxSpeed)

		o.X += o.VX
		o.Y += o.VY

		o.Depth = clamp01(lerp(o.Depth, 0.3+speed/a.cfg.MaxSpeed*0.7, orbDepthChase))
		o.Life = math.Min(o.MaxLife, o.Life+orbFadeIn)
		o.Hue = math.Mod(o.Hue+orbHueStep, 360)
		o.Opacity = clamp01(o.Life * (0.6 + o.Depth*0.4))
	}
}

func (m *orbMode) draw(a *Animator, s Surface) {
	pal := paletteFor(a.theme)
	s.Fade(pal.ambient)

	m.order = m.order[:0]
	for i := range a.pool {
		m.order = append(m.order, i)
	}
	if a.cfg.Depth {
		slices.SortStableFunc(m.order, func(i, j int) int {
			switch {
			case a.pool[i].Depth < a.pool[j].Depth:
				return -1
			case a.pool[i].Depth > a.pool[j].Depth:
				return 1
			}
			return 0
		})
	}
	for _, i := range m.order {
		paintOrb(s, &a.pool[i], a.cfg, pal, a.elapsed)
	}
}

func (*orbMode) reset(*Animator) {}

// paintOrb draws glow, body, specular highlight and reflection. With depth
// enabled the orb shrinks and dims as it slows down.
func paintOrb(s Surface, o *Particle, cfg Config, pal palette, t float64) {
	depth := 1.0
	if cfg.Depth {
		depth = o.Depth
	}
	scale := 0.5 + depth*0.5
	r := o.Size * depth * scale
	if r <= 0 {
		return
	}
	opacity := clamp01(o.Life * (0.6 + depth*0.4))
	x, y := o.X, o.Y

	if cfg.Glow {
		gr := r * 2.5
		s.Fill(Circle{X: x, Y: y, R: gr}, RadialGradient{
			FX: x, FY: y, X: x, Y: y, R: gr,
			Stops: []ColorStop{
				{Offset: 0, Color: pal.glow.WithAlpha(opacity * 0.8)},
				{Offset: 1, Color: Transparent},
			},
		})
	}

	hue := math.Mod(pal.primary.H+o.Hue+t*0.5, 360)
	sat, light := pal.saturation, pal.lightness
	s.Fill(Circle{X: x, Y: y, R: r}, RadialGradient{
		FX: x - r*0.3, FY: y - r*0.3, X: x, Y: y, R: r,
		Stops: []ColorStop{
			{Offset: 0, Color: HSLA(hue, sat, light+0.15, opacity)},
			{Offset: 0.3, Color: HSLA(hue, sat, light, opacity)},
			{Offset: 0.7, Color: HSLA(hue, sat-0.2, light-0.2, opacity)},
			{Offset: 1, Color: HSLA(hue, sat-0.3, light-0.35, opacity*0.8)},
		},
	})

	hx, hy, hr := x-r*0.4, y-r*0.4, r*0.6
	s.Fill(Circle{X: hx, Y: hy, R: hr}, RadialGradient{
		FX: hx, FY: hy, X: hx, Y: hy, R: hr,
		Stops: []ColorStop{
			{Offset: 0, Color: HSLA(hue, 0.3, 0.95, opacity*0.9)},
			{Offset: 0.5, Color: HSLA(hue, 0.4, 0.85, opacity*0.4)},
			{Offset: 1, Color: Transparent},
		},
	})

	if cfg.Reflection {
		s.Fill(Ellipse{X: x, Y: y - r*0.2, RX: r * 0.8, RY: r * 0.4}, LinearGradient{
			X0: x, Y0: y - r, X1: x, Y1: y + r*0.3,
			Stops: []ColorStop{
				{Offset: 0, Color: HSLA(0, 0, 1, opacity*0.6)},
				{Offset: 1, Color: Transparent},
			},
		})
	}
}
