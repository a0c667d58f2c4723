package canvas

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/olivier-w/orbfield/internal/fx"
)

// Default logical size of one terminal cell. Eighty columns come out at
// 800 units, wide enough to count as a desktop viewport.
const (
	DefaultCellWidth  = 10.0
	DefaultCellHeight = 20.0
)

// litAlpha is the coverage at which a braille dot is raised.
const litAlpha = 0.12

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

type cell struct {
	pattern uint8
	color   colorRGB
}

// Terminal draws into a Raster with one pixel per braille dot and encodes
// it as coloured braille text. Each cell is a 2x4 dot grid.
type Terminal struct {
	raster       *Raster
	cellW, cellH float64
	cols, rows   int
	profile      termenv.Profile
	cells        []cell
}

// NewTerminal returns a terminal surface where each cell covers cellW by
// cellH logical units.
func NewTerminal(cellW, cellH float64, p termenv.Profile) *Terminal {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	return &Terminal{
		raster:  NewRaster(cellW/2, cellH/4),
		cellW:   cellW,
		cellH:   cellH,
		profile: p,
	}
}

// Surface is where the animator draws.
func (t *Terminal) Surface() fx.Surface { return t.raster }

// Raster exposes the dot bitmap.
func (t *Terminal) Raster() *Raster { return t.raster }

// ResizeCells sets the grid size and returns the matching viewport.
func (t *Terminal) ResizeCells(cols, rows int) fx.Viewport {
	t.cols, t.rows = max(0, cols), max(0, rows)
	vp := fx.Viewport{
		Width:  int(float64(t.cols) * t.cellW),
		Height: int(float64(t.rows) * t.cellH),
	}
	t.raster.Resize(vp.Width, vp.Height)
	return vp
}

// Cells returns the grid size.
func (t *Terminal) Cells() (int, int) { return t.cols, t.rows }

// CellToPoint maps a cell to the logical point at its centre.
func (t *Terminal) CellToPoint(col, row int) fx.Point {
	return fx.Point{
		X: (float64(col) + 0.5) * t.cellW,
		Y: (float64(row) + 0.5) * t.cellH,
	}
}

// CellRect maps a run of cells to its logical bounds.
func (t *Terminal) CellRect(col, row, width, height int) fx.Rect {
	return fx.Rect{
		X: float64(col) * t.cellW,
		Y: float64(row) * t.cellH,
		W: float64(width) * t.cellW,
		H: float64(height) * t.cellH,
	}
}

// compose folds the dot bitmap into cells. A cell's colour is the
// coverage-weighted mean of its raised dots.
func (t *Terminal) compose() {
	n := t.cols * t.rows
	if cap(t.cells) < n {
		t.cells = make([]cell, n)
	}
	t.cells = t.cells[:n]
	for row := range t.rows {
		for col := range t.cols {
			var pattern uint
			var r, g, b, w float64
			for dx := range 2 {
				for dy := range 4 {
					c := t.raster.At(col*2+dx, row*4+dy)
					if c.A < litAlpha {
						continue
					}
					pattern |= 1 << brailleBits[dx][dy]
					r += c.R * c.A
					g += c.G * c.A
					b += c.B * c.A
					w += c.A
				}
			}
			out := cell{pattern: uint8(pattern)}
			if w > 0 {
				out.color = colorRGB{R: to8(r / w), G: to8(g / w), B: to8(b / w)}
			}
			t.cells[row*t.cols+col] = out
		}
	}
}

func (t *Terminal) writeRun(sb *strings.Builder, st *ansiState, row, from, to int) {
	for col := from; col < to; col++ {
		c := t.cells[row*t.cols+col]
		if c.pattern == 0 {
			sb.WriteByte(' ')
			continue
		}
		st.set(sb, c.color)
		sb.WriteRune(rune(0x2800 + int(c.pattern)))
	}
}

// Overlay composites the particles over base. Cells with a raised dot
// replace whatever base has there; every other cell shows base unchanged.
func (t *Terminal) Overlay(base string) string {
	t.compose()
	lines := strings.Split(base, "\n")
	for len(lines) < t.rows {
		lines = append(lines, "")
	}
	for row := range min(t.rows, len(lines)) {
		lines[row] = t.overlayLine(lines[row], row)
	}
	return strings.Join(lines, "\n")
}

func (t *Terminal) overlayLine(base string, row int) string {
	width := ansi.StringWidth(base)
	var sb strings.Builder
	pos := 0
	for col := 0; col < t.cols; {
		if t.cells[row*t.cols+col].pattern == 0 {
			col++
			continue
		}
		end := col
		for end < t.cols && t.cells[row*t.cols+end].pattern != 0 {
			end++
		}
		if pos < col {
			sb.WriteString(ansi.Cut(base, pos, col))
			if col > width {
				sb.WriteString(strings.Repeat(" ", col-max(pos, width)))
			}
		}
		st := newANSIState(t.profile)
		if t.profile != termenv.Ascii {
			// Drop whatever style base left open.
			sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
		}
		t.writeRun(&sb, &st, row, col, end)
		st.reset(&sb)
		pos, col = end, end
	}
	if pos == 0 {
		return base
	}
	if pos < width {
		sb.WriteString(ansi.Cut(base, pos, width))
	}
	return sb.String()
}
