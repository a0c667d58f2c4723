// Package canvas rasterises fx drawing calls on the CPU and encodes the
// result for a terminal or a pixel window.
package canvas

import (
	"math"

	"github.com/olivier-w/orbfield/internal/fx"
)

// minAlpha is the coverage below which a pixel counts as empty.
const minAlpha = 1.0 / 255

// pixel is premultiplied RGBA.
type pixel struct {
	r, g, b, a float64
}

// Raster is an overlay bitmap implementing fx.Surface. Drawing happens in
// logical units; each pixel covers scaleX by scaleY of them.
type Raster struct {
	scaleX, scaleY float64
	width, height  int
	cols, rows     int
	pix            []pixel
}

// NewRaster returns an empty raster. Scales must be positive.
func NewRaster(scaleX, scaleY float64) *Raster {
	if scaleX <= 0 {
		scaleX = 1
	}
	if scaleY <= 0 {
		scaleY = 1
	}
	return &Raster{scaleX: scaleX, scaleY: scaleY}
}

var _ fx.Surface = (*Raster)(nil)

func (r *Raster) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	r.width, r.height = width, height
	cols := int(math.Ceil(float64(width) / r.scaleX))
	rows := int(math.Ceil(float64(height) / r.scaleY))
	if cols == r.cols && rows == r.rows {
		return
	}
	r.cols, r.rows = cols, rows
	r.pix = make([]pixel, cols*rows)
}

func (r *Raster) Size() (int, int) { return r.width, r.height }

// Pixels returns the raster dimensions in pixels.
func (r *Raster) Pixels() (int, int) { return r.cols, r.rows }

func (r *Raster) Clear() {
	clear(r.pix)
}

// Fade scales every pixel's coverage by 1 - c.A. There is nothing behind
// an overlay to composite c onto, so only the alpha of c matters.
func (r *Raster) Fade(c fx.RGBA) {
	keep := 1 - c.A
	if keep >= 1 {
		return
	}
	for i := range r.pix {
		p := &r.pix[i]
		p.r *= keep
		p.g *= keep
		p.b *= keep
		p.a *= keep
		if p.a < minAlpha {
			*p = pixel{}
		}
	}
}

// Fill composites paint over the pixels whose centres lie inside shape.
func (r *Raster) Fill(shape fx.Shape, paint fx.Paint) {
	b := shape.Bounds()
	x0 := max(0, int(math.Floor(b.X/r.scaleX)))
	y0 := max(0, int(math.Floor(b.Y/r.scaleY)))
	x1 := min(r.cols-1, int(math.Ceil((b.X+b.W)/r.scaleX)))
	y1 := min(r.rows-1, int(math.Ceil((b.Y+b.H)/r.scaleY)))
	for py := y0; py <= y1; py++ {
		ly := (float64(py) + 0.5) * r.scaleY
		for px := x0; px <= x1; px++ {
			lx := (float64(px) + 0.5) * r.scaleX
			if !shape.Contains(lx, ly) {
				continue
			}
			r.over(px, py, paint.At(lx, ly))
		}
	}
}

func (r *Raster) over(px, py int, c fx.RGBA) {
	if c.A <= 0 {
		return
	}
	p := &r.pix[py*r.cols+px]
	k := 1 - c.A
	p.r = c.R*c.A + p.r*k
	p.g = c.G*c.A + p.g*k
	p.b = c.B*c.A + p.b*k
	p.a = c.A + p.a*k
}

// At returns the straight-alpha colour of pixel (px, py).
func (r *Raster) At(px, py int) fx.RGBA {
	if px < 0 || py < 0 || px >= r.cols || py >= r.rows {
		return fx.Transparent
	}
	p := r.pix[py*r.cols+px]
	if p.a < minAlpha {
		return fx.Transparent
	}
	return fx.RGBA{R: p.r / p.a, G: p.g / p.a, B: p.b / p.a, A: p.a}
}

// AppendRGBA8 appends the raster as premultiplied 8-bit RGBA, row major.
func (r *Raster) AppendRGBA8(dst []byte) []byte {
	for _, p := range r.pix {
		dst = append(dst, to8(p.r), to8(p.g), to8(p.b), to8(p.a))
	}
	return dst
}

func to8(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
