// Package window hosts the portfolio in a desktop window with the particle
// layer drawn over the page.
package window

import (
	"errors"
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/olivier-w/orbfield/internal/config"
	"github.com/olivier-w/orbfield/internal/content"
	"github.com/olivier-w/orbfield/internal/fx"
	"github.com/olivier-w/orbfield/internal/stage"
)

var (
	lightBackground = color.RGBA{R: 0xF8, G: 0xFA, B: 0xFC, A: 0xFF}
	darkBackground  = color.RGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 0xFF}
	lightText       = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
	darkText        = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	lightAccent     = color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF}
	darkAccent      = color.RGBA{R: 0x93, G: 0xC5, B: 0xFD, A: 0xFF}
)

// Game implements ebiten.Game.
type Game struct {
	stage    *stage.Stage
	log      *zap.Logger
	text     *ebiten.Image
	accent   *ebiten.Image
	layer    *ebiten.Image
	touchIDs []ebiten.TouchID
	cursorX  int
	cursorY  int
}

// New builds a game around a fresh stage.
func New(cfg *config.Config, log *zap.Logger, prefersDark bool) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		stage: stage.New(cfg.Effect, log, prefersDark),
		log:   log,
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, log *zap.Logger, prefersDark bool) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.UI.FPS)

	g := New(cfg, log, prefersDark)
	defer g.stage.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		g.stage.MarkTouch()
		x, y := ebiten.TouchPosition(g.touchIDs[0])
		g.stage.SetPointer(float64(x), float64(y))
	} else if x, y := ebiten.CursorPosition(); x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.stage.SetPointer(float64(x), float64(y))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.stage.Click(float64(g.cursorX), float64(g.cursorY))
	}

	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if inpututil.IsKeyJustPressed(k) {
			g.stage.Go(i)
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		i, _ := g.stage.Page()
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.stage.Go(i - 1)
		} else {
			g.stage.Go(i + 1)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.stage.UpdateConfig(func(c *fx.Config) { c.Mode = c.Mode.Next() })
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.stage.UpdateConfig(func(c *fx.Config) { c.Glow = !c.Glow })
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.stage.UpdateConfig(func(c *fx.Config) { c.Depth = !c.Depth })
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.stage.UpdateConfig(func(c *fx.Config) { c.Reflection = !c.Reflection })
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.stage.ToggleTheme()
	}

	g.stage.Frame(time.Now())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	dark := g.stage.Theme() == fx.ThemeDark
	bg, fg, accent := lightBackground, lightText, lightAccent
	if dark {
		bg, fg, accent = darkBackground, darkText, darkAccent
	}
	screen.Fill(bg)

	size := screen.Bounds().Size()
	g.text = reuse(g.text, size.X, size.Y)
	g.accent = reuse(g.accent, size.X, size.Y)
	g.text.Clear()
	g.accent.Clear()

	page, _ := g.stage.Page()
	for i, l := range g.stage.Labels() {
		dst := g.text
		if i == page {
			dst = g.accent
		}
		ebitenutil.DebugPrintAt(dst, l.Page.Title, int(l.X+l.DX)+8, int(l.Y+l.DY)+8)
	}
	g.drawPage(page, size.X)
	ebitenutil.DebugPrintAt(g.text, g.stage.Status(), 24, size.Y-stage.GlyphHeight-8)

	tint(screen, g.text, fg)
	tint(screen, g.accent, accent)

	if w, h, pix, ok := g.stage.Pixels(); ok {
		g.layer = reuse(g.layer, w, h)
		g.layer.WritePixels(pix)
		screen.DrawImage(g.layer, nil)
	}
}

func (g *Game) drawPage(page, width int) {
	y := 96
	line := func(dst *ebiten.Image, s string) {
		ebitenutil.DebugPrintAt(dst, s, 24, y)
		y += stage.GlyphHeight + 2
	}
	cols := max(20, (width-48)/stage.GlyphWidth)

	switch page {
	case 1:
		about := content.About()
		line(g.accent, "About Me")
		y += 8
		for _, p := range about.Paragraphs {
			for _, l := range wrap(p, cols) {
				line(g.text, l)
			}
			y += 8
		}
		line(g.accent, "My Tech Stack")
		line(g.text, strings.Join(about.TechStack, " / "))
	case 2:
		line(g.accent, "Projects")
		y += 8
		for _, p := range content.Projects() {
			line(g.accent, p.Title)
			for _, l := range wrap(p.Description, cols) {
				line(g.text, l)
			}
			line(g.text, strings.Join(p.TechStack, " / ")+"  "+p.Href)
			y += 8
		}
	case 3:
		hero := content.Hero()
		line(g.accent, "Get in Touch")
		y += 8
		line(g.text, "The contact form lives in the terminal app (orbfield, page 4).")
		for _, l := range hero.Links {
			line(g.text, l.Label+"  "+l.Href)
		}
	default:
		hero := content.Hero()
		line(g.text, "Hi, I'm")
		line(g.accent, hero.Name)
		line(g.text, strings.Join(hero.Roles, " / "))
		y += 8
		for _, l := range wrap(hero.Tagline, cols) {
			line(g.text, l)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.stage.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func reuse(img *ebiten.Image, w, h int) *ebiten.Image {
	w, h = max(1, w), max(1, h)
	if img != nil {
		if s := img.Bounds().Size(); s.X == w && s.Y == h {
			return img
		}
		img.Deallocate()
	}
	return ebiten.NewImage(w, h)
}

// tint draws the white debug glyphs of src onto dst in c.
func tint(dst, src *ebiten.Image, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(src, op)
}

// wrap breaks s into lines of at most cols cells on word boundaries.
func wrap(s string, cols int) []string {
	return strings.Split(ansi.Wordwrap(s, cols, ""), "\n")
}
