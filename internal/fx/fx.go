// Package fx implements the particle field animator: a pool of decorative
// particles that react to the pointer, stepped once per display frame and
// painted onto a host supplied Surface.
package fx

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects one of the visual styles.
type Mode uint8

const (
	ModeOrb Mode = iota
	ModeBubble
	ModeTrail
	ModeCharged
	ModeMagnet
)

// ErrUnknownMode is returned when a mode name or value is not one of Modes.
var ErrUnknownMode = errors.New("fx: unknown mode")

var modeNames = [...]string{
	ModeOrb:     "orb",
	ModeBubble:  "bubble",
	ModeTrail:   "trail",
	ModeCharged: "charged",
	ModeMagnet:  "magnet",
}

// Modes returns every mode in cycling order.
func Modes() []Mode {
	return []Mode{ModeOrb, ModeBubble, ModeTrail, ModeCharged, ModeMagnet}
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Next returns the mode after m, wrapping around.
func (m Mode) Next() Mode {
	return Mode((int(m) + 1) % len(modeNames))
}

func (m Mode) valid() bool { return int(m) < len(modeNames) }

// ParseMode maps a mode name to a Mode. "electron-proton" is accepted as an
// alias of "charged" and "spring-orb" as an alias of "orb".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "orb", "spring-orb", "":
		return ModeOrb, nil
	case "bubble", "bubble-spawn":
		return ModeBubble, nil
	case "trail", "pointer-trail":
		return ModeTrail, nil
	case "charged", "charged-pair", "electron-proton":
		return ModeCharged, nil
	case "magnet", "element-magnetism":
		return ModeMagnet, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Config tunes the animator. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	Mode Mode `yaml:"mode"`
	// Count is the orb pool size. Spawn modes grow their pool on demand.
	Count int `yaml:"count"`
	// Spring scales the pull of an orb toward its target.
	Spring float64 `yaml:"spring"`
	// Damping multiplies orb velocity every frame.
	Damping float64 `yaml:"damping"`
	// MaxSpeed caps particle speed in pixels per frame, in every mode.
	MaxSpeed float64 `yaml:"max_speed"`

	Glow       bool `yaml:"glow"`
	Reflection bool `yaml:"reflection"`
	Depth      bool `yaml:"depth"`

	// MobileBreakpoint is the viewport width below which the effect stays off.
	MobileBreakpoint int `yaml:"mobile_breakpoint"`
	// LandingRoute is the only route the effect runs on.
	LandingRoute string `yaml:"landing_route"`
	// Seed fixes the random source; 0 seeds from the clock.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns the stock tuning: twelve spring orbs.
func DefaultConfig() Config {
	return Config{
		Mode:             ModeOrb,
		Count:            12,
		Spring:           0.15,
		Damping:          0.8,
		MaxSpeed:         20,
		Glow:             true,
		Reflection:       true,
		Depth:            true,
		MobileBreakpoint: 768,
		LandingRoute:     "/",
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if !c.Mode.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, uint8(c.Mode))
	}
	if c.Count < 0 {
		return fmt.Errorf("fx: count must not be negative, got %d", c.Count)
	}
	if c.MaxSpeed <= 0 {
		return fmt.Errorf("fx: max speed must be positive, got %g", c.MaxSpeed)
	}
	if c.Damping < 0 || c.Damping > 1 {
		return fmt.Errorf("fx: damping must be within [0,1], got %g", c.Damping)
	}
	if c.Spring < 0 {
		return fmt.Errorf("fx: spring must not be negative, got %g", c.Spring)
	}
	return nil
}
