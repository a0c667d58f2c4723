package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// springField eases a set of values toward their targets, one spring each.
type springField struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
	target []float64
}

func newSpringField(fps int, frequency, damping float64) *springField {
	return &springField{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

func (s *springField) resize(n int) {
	if len(s.pos) == n {
		return
	}
	s.pos = make([]float64, n)
	s.vel = make([]float64, n)
	s.target = make([]float64, n)
}

func (s *springField) set(i int, target float64) {
	if i >= 0 && i < len(s.target) {
		s.target[i] = target
	}
}

func (s *springField) at(i int) float64 {
	if i < 0 || i >= len(s.pos) {
		return 0
	}
	return s.pos[i]
}

// step advances every spring by one frame.
func (s *springField) step() {
	for i := range s.pos {
		s.pos[i], s.vel[i] = s.spring.Update(s.pos[i], s.vel[i], s.target[i])
	}
}

// settled reports whether every spring is at rest on its target.
func (s *springField) settled() bool {
	for i := range s.pos {
		if math.Abs(s.pos[i]-s.target[i]) > 0.01 || math.Abs(s.vel[i]) > 0.01 {
			return false
		}
	}
	return true
}
