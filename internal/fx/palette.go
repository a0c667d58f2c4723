package fx

type hsl struct {
	H, S, L float64
}

// palette is the per-theme colour table shared by all modes.
type palette struct {
	primary hsl
	glow    RGBA
	ambient RGBA

	// orb body lightness and saturation, in [0,1]
	lightness  float64
	saturation float64

	particle RGBA
	trail    RGBA
	electron RGBA
	proton   RGBA
}

var palettes = [...]palette{
	ThemeLight: {
		primary:    hsl{H: 210, S: 1, L: 0.6},
		glow:       RGBA255(59, 130, 246, 0.4),
		ambient:    RGBA255(255, 255, 255, 0.05),
		lightness:  0.65,
		saturation: 0.8,
		particle:   RGBA255(59, 130, 246, 0.6),
		trail:      RGBA255(139, 69, 19, 0.4),
		electron:   RGBA255(239, 68, 68, 0.8),
		proton:     RGBA255(34, 197, 94, 0.8),
	},
	ThemeDark: {
		primary:    hsl{H: 200, S: 1, L: 0.7},
		glow:       RGBA255(147, 197, 253, 0.6),
		ambient:    RGBA255(0, 0, 0, 0.05),
		lightness:  0.75,
		saturation: 0.9,
		particle:   RGBA255(147, 197, 253, 0.8),
		trail:      RGBA255(251, 191, 36, 0.6),
		electron:   RGBA255(248, 113, 113, 0.9),
		proton:     RGBA255(74, 222, 128, 0.9),
	},
}

func paletteFor(t Theme) palette {
	if int(t) < len(palettes) {
		return palettes[t]
	}
	return palettes[ThemeLight]
}
