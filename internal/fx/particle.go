package fx

import "math"

// Kind tells particles of different modes apart.
type Kind uint8

const (
	KindOrb Kind = iota
	KindBubble
	KindTrail
	KindElectron
	KindProton
)

// Particle is one element of the pool. Orbs persist for the animator's
// lifetime; spawned particles expire when Life reaches zero.
type Particle struct {
	X, Y   float64
	TX, TY float64
	VX, VY float64

	Size  float64
	Depth float64

	Life    float64
	MaxLife float64
	Opacity float64

	Hue        float64
	Delay      float64
	Elasticity float64

	// Charge is -1 for electrons and +1 for protons.
	Charge float64
	Kind   Kind
}

// Speed returns the velocity magnitude.
func (p Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}
