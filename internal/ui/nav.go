package ui

import (
	"math"
	"strings"

	"github.com/olivier-w/orbfield/internal/canvas"
	"github.com/olivier-w/orbfield/internal/content"
	"github.com/olivier-w/orbfield/internal/fx"
)

var pages = content.Pages()

const (
	navRow  = 1
	navLeft = 2
)

// navTab is one navigation tab. Magnet mode pulls it toward the pointer.
type navTab struct {
	nav   *navBar
	index int
	col   int
	width int
}

func (t *navTab) Bounds() fx.Rect {
	return t.nav.term.CellRect(t.col, navRow, t.width, 1)
}

// SetOffset eases the tab toward dx. Rows are too coarse for the vertical
// pull, so dy is dropped.
func (t *navTab) SetOffset(dx, _ float64) {
	t.nav.springs.set(t.index, dx)
}

type navBar struct {
	term    *canvas.Terminal
	tabs    []*navTab
	springs *springField
}

func newNavBar(term *canvas.Terminal, fps int) *navBar {
	n := &navBar{term: term, springs: newSpringField(fps, 6.0, 0.5)}
	col := navLeft
	for i, p := range pages {
		w := len(p.Title) + 2
		n.tabs = append(n.tabs, &navTab{nav: n, index: i, col: col, width: w})
		col += w + 1
	}
	n.springs.resize(len(n.tabs))
	return n
}

func (n *navBar) magnets() []fx.Magnetic {
	out := make([]fx.Magnetic, len(n.tabs))
	for i, t := range n.tabs {
		out[i] = t
	}
	return out
}

// step eases the tabs toward their pulls, idling once every tab has settled.
func (n *navBar) step() {
	if n.springs.settled() {
		return
	}
	n.springs.step()
}

// offset is the eased horizontal pull on tab i in logical units.
func (n *navBar) offset(i int) float64 { return n.springs.at(i) }

// shift converts the pull on tab i to whole cells, at most one either way.
func (n *navBar) shift(i int) int {
	cellW := n.term.CellRect(0, 0, 1, 1).W
	if cellW <= 0 {
		return 0
	}
	s := int(math.Round(n.offset(i) / cellW))
	return max(-1, min(1, s))
}

// tabAt returns the tab under a cell, or -1.
func (n *navBar) tabAt(col, row int) int {
	if row != navRow {
		return -1
	}
	for i, t := range n.tabs {
		if col >= t.col && col < t.col+t.width {
			return i
		}
	}
	return -1
}

func (n *navBar) render(active int, st styles) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", navLeft))
	for i, t := range n.tabs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		style := st.tab
		if i == active {
			style = st.activeTab
		}
		s := n.shift(i)
		sb.WriteString(strings.Repeat(" ", 1+s))
		sb.WriteString(style.Render(pages[t.index].Title))
		sb.WriteString(strings.Repeat(" ", 1-s))
	}
	return sb.String()
}
