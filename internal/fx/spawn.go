package fx

import (
	"math"
	"time"
)

const (
	bubbleInterval = 100 * time.Millisecond
	trailInterval  = 16 * time.Millisecond

	bubbleChance   = 0.3
	chargedChance  = 0.4
	electronChance = 0.6

	bubbleLife  = 60
	trailLife   = 30
	chargedLife = 120

	bubbleBuoyancy = 0.02
	chargedDamping = 0.99
)

// bubbleMode releases bubbles around the pointer that drift upward and pop.
type bubbleMode struct{}

func (bubbleMode) populate(a *Animator) { a.pool = a.pool[:0] }

func (bubbleMode) interval() time.Duration { return bubbleInterval }

func (bubbleMode) spawn(a *Animator) {
	if a.rng.Float64() >= bubbleChance {
		return
	}
	a.pool = append(a.pool, Particle{
		X:       a.pointer.X + a.jitter(100),
		Y:       a.pointer.Y + a.jitter(100),
		VX:      a.jitter(2),
		VY:      a.jitter(2) - 1,
		Life:    bubbleLife,
		MaxLife: bubbleLife,
		Size:    a.rng.Float64()*8 + 4,
		Depth:   1,
		Opacity: 0.8,
		Kind:    KindBubble,
	})
}

func (bubbleMode) update(a *Animator) {
	a.ageParticles(func(p *Particle) {
		p.X += p.VX
		p.Y += p.VY
		p.VY -= bubbleBuoyancy
	})
}

func (bubbleMode) draw(a *Animator, s Surface) {
	pal := paletteFor(a.theme)
	drawDots(a, s, func(*Particle) RGBA { return pal.particle })
}

func (bubbleMode) reset(*Animator) {}

// trailMode drops a still dot at the pointer on every tick.
type trailMode struct{}

func (trailMode) populate(a *Animator) { a.pool = a.pool[:0] }

func (trailMode) interval() time.Duration { return trailInterval }

func (trailMode) spawn(a *Animator) {
	a.pool = append(a.pool, Particle{
		X:       a.pointer.X,
		Y:       a.pointer.Y,
		Life:    trailLife,
		MaxLife: trailLife,
		Size:    a.rng.Float64()*4 + 2,
		Depth:   1,
		Opacity: 1,
		Kind:    KindTrail,
	})
}

func (trailMode) update(a *Animator) { a.ageParticles(nil) }

func (trailMode) draw(a *Animator, s Surface) {
	pal := paletteFor(a.theme)
	drawDots(a, s, func(*Particle) RGBA { return pal.trail })
}

func (trailMode) reset(*Animator) {}

// chargedMode spawns electrons and protons that the pointer attracts or
// repels with an inverse-distance force.
type chargedMode struct{}

func (chargedMode) populate(a *Animator) { a.pool = a.pool[:0] }

func (chargedMode) interval() time.Duration { return bubbleInterval }

func (chargedMode) spawn(a *Animator) {
	if a.rng.Float64() >= chargedChance {
		return
	}
	p := Particle{
		X:       a.pointer.X + a.jitter(200),
		Y:       a.pointer.Y + a.jitter(200),
		VX:      a.jitter(4),
		VY:      a.jitter(4),
		Life:    chargedLife,
		MaxLife: chargedLife,
		Depth:   1,
		Opacity: 1,
	}
	if a.rng.Float64() < electronChance {
		p.Kind, p.Charge, p.Size = KindElectron, -1, 3
	} else {
		p.Kind, p.Charge, p.Size = KindProton, 1, 5
	}
	a.pool = append(a.pool, p)
}

func (chargedMode) update(a *Animator) {
	ptr := a.pointer
	limit := a.cfg.MaxSpeed
	a.ageParticles(func(p *Particle) {
		dx, dy := ptr.X-p.X, ptr.Y-p.Y
		dist := math.Hypot(dx, dy)
		if dist > 0 {
			force := p.Charge * 0.5 / (dist * 0.01)
			p.VX += dx / dist * force * 0.1
			p.VY += dy / dist * force * 0.1
		}
		p.VX *= chargedDamping
		p.VY *= chargedDamping
		clampSpeed(&p.VX, &p.VY, limit)
		p.X += p.VX
		p.Y += p.VY
	})
}

func (chargedMode) draw(a *Animator, s Surface) {
	pal := paletteFor(a.theme)
	drawDots(a, s, func(p *Particle) RGBA {
		if p.Kind == KindElectron {
			return pal.electron
		}
		return pal.proton
	})
}

func (chargedMode) reset(*Animator) {}

func drawDots(a *Animator, s Surface, color func(*Particle) RGBA) {
	s.Clear()
	for i := range a.pool {
		p := &a.pool[i]
		c := color(p)
		s.Fill(Circle{X: p.X, Y: p.Y, R: p.Size}, Solid(c.WithAlpha(c.A*p.Opacity)))
	}
}
