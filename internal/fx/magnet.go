package fx

import (
	"math"
	"time"
)

const (
	magnetRadius = 150.0
	magnetPull   = 10.0
)

// magnetMode paints nothing; it nudges host elements toward the pointer.
type magnetMode struct {
	touched []Magnetic
}

func (*magnetMode) populate(*Animator) {}

func (*magnetMode) interval() time.Duration { return 0 }

func (*magnetMode) spawn(*Animator) {}

func (m *magnetMode) update(a *Animator) {
	if a.env.Magnets == nil || !a.pointerSeen {
		return
	}
	els := a.env.Magnets()
	m.touched = append(m.touched[:0], els...)
	for _, el := range els {
		dx, dy := magnetOffset(el.Bounds().Center(), a.pointer)
		el.SetOffset(dx, dy)
	}
}

// magnetOffset returns how far an element centred at c shifts toward ptr.
func magnetOffset(c, ptr Point) (float64, float64) {
	dx, dy := ptr.X-c.X, ptr.Y-c.Y
	dist := math.Hypot(dx, dy)
	if dist >= magnetRadius || dist == 0 {
		return 0, 0
	}
	strength := (magnetRadius - dist) / magnetRadius
	return dx / dist * strength * magnetPull, dy / dist * strength * magnetPull
}

func (*magnetMode) draw(*Animator, Surface) {}

func (m *magnetMode) reset(*Animator) {
	for _, el := range m.touched {
		el.SetOffset(0, 0)
	}
	m.touched = nil
}
