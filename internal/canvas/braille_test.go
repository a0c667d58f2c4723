package canvas

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/olivier-w/orbfield/internal/fx"
)

const fullCell = "⣿"

// render returns the overlay alone, one line per row, blanks as spaces.
func (t *Terminal) render() string {
	t.compose()
	rows := make([]string, t.rows)
	for row := range t.rows {
		var line strings.Builder
		st := newANSIState(t.profile)
		t.writeRun(&line, &st, row, 0, t.cols)
		st.reset(&line)
		rows[row] = line.String()
	}
	return strings.Join(rows, "\n")
}

func newTestTerminal(cols, rows int, p termenv.Profile) *Terminal {
	term := NewTerminal(DefaultCellWidth, DefaultCellHeight, p)
	term.ResizeCells(cols, rows)
	return term
}

// fillCell raises all eight dots of one cell and none of its neighbours.
func fillCell(term *Terminal, col, row int, c fx.RGBA) {
	p := term.CellToPoint(col, row)
	term.Surface().Fill(fx.Ellipse{X: p.X, Y: p.Y, RX: DefaultCellWidth / 2, RY: DefaultCellHeight / 2}, fx.Solid(c))
}

func TestResizeCellsReportsViewport(t *testing.T) {
	term := NewTerminal(DefaultCellWidth, DefaultCellHeight, termenv.Ascii)
	vp := term.ResizeCells(80, 24)
	if vp.Width != 800 || vp.Height != 480 {
		t.Fatalf("expected 800x480 viewport, got %dx%d", vp.Width, vp.Height)
	}
	if vp.Mobile(768) {
		t.Fatal("expected an 80 column terminal to count as desktop")
	}
	if cols, rows := term.Raster().Pixels(); cols != 160 || rows != 96 {
		t.Fatalf("expected 160x96 dots, got %dx%d", cols, rows)
	}
}

func TestCellToPointIsCellCentre(t *testing.T) {
	term := newTestTerminal(10, 5, termenv.Ascii)
	if p := term.CellToPoint(3, 2); p.X != 35 || p.Y != 50 {
		t.Fatalf("expected (35,50), got %+v", p)
	}
}

func TestRenderBlankIsSpaces(t *testing.T) {
	term := newTestTerminal(4, 2, termenv.Ascii)
	if got := term.render(); got != "    \n    " {
		t.Fatalf("expected blank grid, got %q", got)
	}
}

func TestRenderRaisesCoveredDots(t *testing.T) {
	term := newTestTerminal(4, 1, termenv.Ascii)
	fillCell(term, 1, 0, fx.RGBA{R: 1, A: 1})
	if got := term.render(); got != " "+fullCell+"  " {
		t.Fatalf("expected one full cell, got %q", got)
	}
}

func TestRenderIgnoresFaintDots(t *testing.T) {
	term := newTestTerminal(2, 1, termenv.Ascii)
	fillCell(term, 0, 0, fx.RGBA{R: 1, A: 0.05})
	if got := term.render(); got != "  " {
		t.Fatalf("expected faint dots to stay lowered, got %q", got)
	}
}

func TestRenderColoursCells(t *testing.T) {
	term := newTestTerminal(2, 1, termenv.TrueColor)
	fillCell(term, 0, 0, fx.RGBA{R: 1, A: 1})
	got := term.render()
	if !strings.HasPrefix(got, "\x1b[38;2;255;0;0m"+fullCell) {
		t.Fatalf("expected red braille cell, got %q", got)
	}
	if !strings.HasSuffix(got, "\x1b[0m") {
		t.Fatalf("expected line to reset colour, got %q", got)
	}
}

func TestOverlayReplacesOnlyLitCells(t *testing.T) {
	term := newTestTerminal(12, 1, termenv.Ascii)
	fillCell(term, 2, 0, fx.RGBA{G: 1, A: 1})
	if got := term.Overlay("hello world"); got != "he"+fullCell+"lo world" {
		t.Fatalf("unexpected overlay %q", got)
	}
}

func TestOverlayPadsShortLines(t *testing.T) {
	term := newTestTerminal(8, 2, termenv.Ascii)
	fillCell(term, 5, 0, fx.RGBA{G: 1, A: 1})
	got := term.Overlay("hi")
	if got != "hi   "+fullCell+"\n" {
		t.Fatalf("unexpected overlay %q", got)
	}
}

func TestOverlayLeavesUntouchedLinesAlone(t *testing.T) {
	term := newTestTerminal(8, 2, termenv.Ascii)
	base := "\x1b[1mbold\x1b[0m\nplain"
	if got := term.Overlay(base); got != base {
		t.Fatalf("expected base unchanged, got %q", got)
	}
}

func TestColorSequenceFollowsProfile(t *testing.T) {
	red := colorRGB{R: 255}
	if got := colorSequence(termenv.TrueColor, red); got != "\x1b[38;2;255;0;0m" {
		t.Fatalf("unexpected truecolor sequence %q", got)
	}
	if got := colorSequence(termenv.Ascii, red); got != "" {
		t.Fatalf("expected no sequence without colour, got %q", got)
	}
}

func TestANSIStateSkipsRepeatedColour(t *testing.T) {
	var sb strings.Builder
	st := newANSIState(termenv.TrueColor)
	st.set(&sb, colorRGB{R: 1})
	st.set(&sb, colorRGB{R: 1})
	st.reset(&sb)
	st.reset(&sb)
	if got := strings.Count(sb.String(), "\x1b["); got != 2 {
		t.Fatalf("expected one colour and one reset, got %q", sb.String())
	}
}
