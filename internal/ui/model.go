package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/olivier-w/orbfield/internal/canvas"
	"github.com/olivier-w/orbfield/internal/config"
	"github.com/olivier-w/orbfield/internal/content"
	"github.com/olivier-w/orbfield/internal/fx"
)

// Rows above and below the page body.
const (
	headerRows = 3
	footerRows = 3
)

const (
	pageHome = iota
	pageAbout
	pageProjects
	pageContact
)

// Options configures the terminal host.
type Options struct {
	Config  *config.Config
	Logger  *zap.Logger
	Context context.Context
	// Profile is the colour depth used for particles.
	Profile termenv.Profile
	// PrefersDark is the terminal's own background preference.
	PrefersDark bool
}

// Model is the Bubbletea model for the orbfield TUI.
type Model struct {
	ctx  context.Context
	cfg  *config.Config
	log  *zap.Logger
	keys keyMap
	help help.Model

	env    fx.Env
	frames *fx.FrameQueue
	term   *canvas.Terminal
	effect *fx.Effect
	nav    *navBar

	page     int
	hero     content.HeroContent
	about    content.AboutContent
	tw       typewriter
	projects projectsModel
	contact  contactModel

	width    int
	height   int
	quitting bool
}

// New creates a new Model with the effect mounted on the landing page.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	frames := fx.NewFrameQueue()
	term := canvas.NewTerminal(cfg.UI.CellWidth, cfg.UI.CellHeight, opts.Profile)
	nav := newNavBar(term, cfg.UI.FPS)

	env := fx.NewEnv(frames, term.Surface())
	env.Logger = log.Named("fx")
	env.Magnets = nav.magnets
	env.Scheme.Set(fx.Scheme{PrefersDark: opts.PrefersDark})
	env.Route.Set(pages[pageHome].Route)

	hero := content.Hero()
	m := Model{
		ctx:      ctx,
		cfg:      cfg,
		log:      log,
		keys:     defaultKeyMap(),
		help:     help.New(),
		env:      env,
		frames:   frames,
		term:     term,
		effect:   fx.NewEffect(env, cfg.Effect),
		nav:      nav,
		hero:     hero,
		about:    content.About(),
		tw:       typewriter{roles: hero.Roles},
		projects: newProjectsModel(),
		contact:  newContactModel(),
	}
	m.effect.Mount()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(m.cfg.FrameInterval()),
		typeTickCmd(),
		tea.SetWindowTitle("orbfield"),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		if m.quitting {
			return m, nil
		}
		m.frames.Flush(time.Time(msg))
		m.nav.step()
		return m, frameCmd(m.cfg.FrameInterval())

	case typeTickMsg:
		m.tw.step()
		return m, typeTickCmd()

	case contactSentMsg:
		m.contact.sent(msg)
		return m, nil

	case ConfigMsg:
		m.reload(msg.Config)
		return m, nil
	}

	return m.updatePage(msg)
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.env.Viewport.Set(m.term.ResizeCells(w, h))
	m.help.Width = max(0, w-4)
	m.projects.setSize(w, max(0, h-headerRows-footerRows))
	m.contact.setWidth(w)
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	m.env.Pointer.Set(m.term.CellToPoint(msg.X, msg.Y))
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if i := m.nav.tabAt(msg.X, msg.Y); i >= 0 {
			return m.goTo(i)
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	switch {
	case m.page == pageContact && (m.contact.editing || m.contact.sending):
		return m.updatePage(msg)
	case m.page == pageProjects && m.projects.claims(msg):
		return m.updatePage(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Next):
		return m.goTo(m.page + 1)
	case key.Matches(msg, m.keys.Prev):
		return m.goTo(m.page - 1)
	case key.Matches(msg, m.keys.Home):
		return m.goTo(pageHome)
	case key.Matches(msg, m.keys.About):
		return m.goTo(pageAbout)
	case key.Matches(msg, m.keys.Projects):
		return m.goTo(pageProjects)
	case key.Matches(msg, m.keys.Contact):
		return m.goTo(pageContact)
	case key.Matches(msg, m.keys.Mode):
		cfg := m.effect.Config()
		cfg.Mode = cfg.Mode.Next()
		m.setEffect(cfg)
		return m, nil
	case key.Matches(msg, m.keys.Glow):
		cfg := m.effect.Config()
		cfg.Glow = !cfg.Glow
		m.setEffect(cfg)
		return m, nil
	case key.Matches(msg, m.keys.Depth):
		cfg := m.effect.Config()
		cfg.Depth = !cfg.Depth
		m.setEffect(cfg)
		return m, nil
	case key.Matches(msg, m.keys.Reflection):
		cfg := m.effect.Config()
		cfg.Reflection = !cfg.Reflection
		m.setEffect(cfg)
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	}
	return m.updatePage(msg)
}

func (m Model) updatePage(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case pageProjects:
		m.projects, cmd = m.projects.update(msg)
	case pageContact:
		m.contact, cmd = m.contact.update(m.ctx, msg, m.log, m.cfg.UI.SubmitDelay)
	}
	return m, cmd
}

func (m Model) goTo(i int) (Model, tea.Cmd) {
	i = (i + len(pages)) % len(pages)
	if i == m.page {
		return m, nil
	}
	if m.page == pageContact {
		m.contact.stop()
	}
	m.page = i
	m.term.Raster().Clear()
	m.env.Route.Set(pages[i].Route)
	m.log.Debug("navigate", zap.String("route", pages[i].Route), zap.Bool("effect", m.effect.Active()))
	return m, nil
}

func (m *Model) reload(cfg *config.Config) {
	if cfg == nil {
		return
	}
	next := *m.cfg
	next.Effect = cfg.Effect
	next.UI.FPS = cfg.UI.FPS
	next.UI.SubmitDelay = cfg.UI.SubmitDelay
	m.cfg = &next
	m.setEffect(cfg.Effect)
}

func (m *Model) setEffect(cfg fx.Config) {
	m.effect.SetConfig(cfg)
	m.term.Raster().Clear()
	m.log.Info("effect config changed",
		zap.Stringer("mode", cfg.Mode),
		zap.Bool("glow", cfg.Glow),
		zap.Bool("depth", cfg.Depth),
		zap.Bool("reflection", cfg.Reflection),
	)
}

// toggleTheme flips the resolved theme. An explicit choice replaces the
// terminal preference so light mode stays reachable on dark terminals.
func (m *Model) toggleTheme() {
	if m.theme() == fx.ThemeDark {
		m.env.Scheme.Set(fx.Scheme{})
	} else {
		m.env.Scheme.Set(fx.Scheme{DarkClass: true})
	}
}

func (m Model) theme() fx.Theme { return m.env.Scheme.Get().Theme() }

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.effect.Unmount()
	return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := stylesFor(m.theme())
	lines := []string{"", m.nav.render(m.page, st), ""}

	body := strings.Split(m.pageView(st), "\n")
	if room := m.height - headerRows - footerRows; m.height > 0 && len(body) > room {
		body = body[:max(0, room)]
	}
	lines = append(lines, body...)
	for m.height > 0 && len(lines) < m.height-footerRows {
		lines = append(lines, "")
	}
	lines = append(lines,
		"",
		"  "+st.status.Render(m.statusLine()),
		"  "+st.help.Render(m.help.View(m.keys)),
	)

	out := strings.Join(lines, "\n")
	if m.effect.Active() {
		out = m.term.Overlay(out)
	}
	return out
}

func (m Model) pageView(st styles) string {
	switch m.page {
	case pageAbout:
		return renderAbout(m.about, m.width, st)
	case pageProjects:
		return m.projects.view(m.width, st)
	case pageContact:
		return m.contact.view(st)
	default:
		return renderHero(m.hero, m.tw, m.width, st)
	}
}

func (m Model) statusLine() string {
	cfg := m.effect.Config()
	state := "on"
	switch {
	case m.effect.Active():
	case pages[m.page].Route != cfg.LandingRoute:
		state = "off (landing page only)"
	default:
		state = fmt.Sprintf("off (needs %d px, have %d)", cfg.MobileBreakpoint, m.env.Viewport.Get().Width)
	}
	return fmt.Sprintf("fx %s %s  glow %s  depth %s  reflection %s  theme %s",
		cfg.Mode, state, onOff(cfg.Glow), onOff(cfg.Depth), onOff(cfg.Reflection), m.theme())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
