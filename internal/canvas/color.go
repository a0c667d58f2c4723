package canvas

import (
	"image/color"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

type colorRGB struct {
	R uint8
	G uint8
	B uint8
}

func (c colorRGB) RGBA() (r, g, b, a uint32) {
	return uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101, 0xffff
}

var _ color.Color = colorRGB{}

var (
	profileOnce sync.Once
	profile     termenv.Profile
	seqCache    sync.Map
)

// DetectProfile reports the colour depth of the attached terminal. NO_COLOR
// and dumb terminals yield termenv.Ascii.
func DetectProfile() termenv.Profile {
	profileOnce.Do(func() {
		profile = termenv.EnvColorProfile()
	})
	return profile
}

type ansiState struct {
	profile termenv.Profile
	current uint32
}

func newANSIState(p termenv.Profile) ansiState {
	return ansiState{profile: p, current: ^uint32(0)}
}

func (s *ansiState) set(sb *strings.Builder, c colorRGB) {
	if s.profile == termenv.Ascii {
		return
	}
	key := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if key == s.current {
		return
	}
	sb.WriteString(colorSequence(s.profile, c))
	s.current = key
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.profile == termenv.Ascii || s.current == ^uint32(0) {
		return
	}
	sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	s.current = ^uint32(0)
}

func colorSequence(p termenv.Profile, c colorRGB) string {
	key := uint32(p)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	var seq string
	if params := p.FromColor(c).Sequence(false); params != "" {
		seq = termenv.CSI + params + "m"
	}

	seqCache.Store(key, seq)
	return seq
}
