package fx

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Surface is the 2D drawing target. Coordinates are surface pixels with the
// origin at the top-left corner.
type Surface interface {
	Resize(width, height int)
	Size() (width, height int)
	// Clear makes every pixel transparent.
	Clear()
	// Fade dims what was drawn before by c's alpha, leaving a fading trail.
	// Opaque surfaces composite c over themselves; overlays with nothing
	// behind them fade toward transparent instead.
	Fade(c RGBA)
	Fill(s Shape, p Paint)
}

// RGBA is a straight-alpha colour with components in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// Transparent is transparent black, the end stop of every fade-out gradient.
var Transparent = RGBA{}

// RGBA255 builds a colour from 8-bit channels and a [0,1] alpha.
func RGBA255(r, g, b uint8, a float64) RGBA {
	return RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: clamp01(a)}
}

// HSLA builds a colour from hue in degrees and saturation, lightness and
// alpha in [0,1].
func HSLA(h, s, l, a float64) RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsl(h, clamp01(s), clamp01(l))
	return RGBA{R: c.R, G: c.G, B: c.B, A: clamp01(a)}.clamped()
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = clamp01(a)
	return c
}

func (c RGBA) clamped() RGBA {
	return RGBA{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

// Shape is a filled region.
type Shape interface {
	Bounds() Rect
	Contains(x, y float64) bool
}

// Circle is a disc.
type Circle struct {
	X, Y, R float64
}

func (c Circle) Bounds() Rect {
	return Rect{X: c.X - c.R, Y: c.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

func (c Circle) Contains(x, y float64) bool {
	dx, dy := x-c.X, y-c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// Ellipse is an axis aligned ellipse.
type Ellipse struct {
	X, Y, RX, RY float64
}

func (e Ellipse) Bounds() Rect {
	return Rect{X: e.X - e.RX, Y: e.Y - e.RY, W: 2 * e.RX, H: 2 * e.RY}
}

func (e Ellipse) Contains(x, y float64) bool {
	if e.RX <= 0 || e.RY <= 0 {
		return false
	}
	dx, dy := (x-e.X)/e.RX, (y-e.Y)/e.RY
	return dx*dx+dy*dy <= 1
}

// Paint colours the pixels of a shape.
type Paint interface {
	At(x, y float64) RGBA
}

// Solid paints one colour.
type Solid RGBA

func (s Solid) At(float64, float64) RGBA { return RGBA(s) }

// ColorStop is a gradient stop at Offset in [0,1].
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// RadialGradient runs from a focal point (offset 0) out to the circle at
// (X, Y) with radius R (offset 1).
type RadialGradient struct {
	FX, FY  float64
	X, Y, R float64
	Stops   []ColorStop
}

func (g RadialGradient) At(x, y float64) RGBA {
	return sampleStops(g.Stops, g.offset(x, y))
}

// offset solves for the circle of the focal-to-outer interpolation that
// passes through (x, y).
func (g RadialGradient) offset(x, y float64) float64 {
	if g.R <= 0 {
		return 1
	}
	dx, dy := x-g.FX, y-g.FY
	ex, ey := g.X-g.FX, g.Y-g.FY
	a := ex*ex + ey*ey - g.R*g.R
	b := dx*ex + dy*ey
	c := dx*dx + dy*dy
	switch {
	case a < 0:
		return (b - math.Sqrt(b*b-a*c)) / a
	case b > 0:
		return c / (2 * b)
	default:
		return math.Sqrt(c) / g.R
	}
}

// LinearGradient runs from (X0, Y0) to (X1, Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
}

func (g LinearGradient) At(x, y float64) RGBA {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return sampleStops(g.Stops, 0)
	}
	return sampleStops(g.Stops, ((x-g.X0)*dx+(y-g.Y0)*dy)/l2)
}

// sampleStops interpolates in premultiplied space so that fading to
// Transparent keeps the hue.
func sampleStops(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	t = clamp01(t)
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if t > hi.Offset {
			continue
		}
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color
		}
		return mixPremultiplied(lo.Color, hi.Color, (t-lo.Offset)/span)
	}
	return stops[len(stops)-1].Color
}

func mixPremultiplied(a, b RGBA, t float64) RGBA {
	alpha := lerp(a.A, b.A, t)
	if alpha <= 0 {
		return Transparent
	}
	return RGBA{
		R: lerp(a.R*a.A, b.R*b.A, t) / alpha,
		G: lerp(a.G*a.A, b.G*b.A, t) / alpha,
		B: lerp(a.B*a.A, b.B*b.A, t) / alpha,
		A: alpha,
	}.clamped()
}
