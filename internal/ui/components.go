package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/orbfield/internal/content"
)

const typeHold = 20

// typewriter types each role out one rune per tick, holds it, then moves on.
type typewriter struct {
	roles []string
	idx   int
	typed int
	hold  int
}

func (t *typewriter) step() {
	if len(t.roles) == 0 {
		return
	}
	if t.typed < len([]rune(t.roles[t.idx])) {
		t.typed++
		return
	}
	t.hold++
	if t.hold >= typeHold {
		t.idx = (t.idx + 1) % len(t.roles)
		t.typed, t.hold = 0, 0
	}
}

func (t typewriter) text() string {
	if len(t.roles) == 0 {
		return ""
	}
	return string([]rune(t.roles[t.idx])[:t.typed])
}

func wrapWidth(width, limit int) int {
	return max(20, min(limit, width-4))
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

func renderHero(hero content.HeroContent, tw typewriter, width int, st styles) string {
	w := wrapWidth(width, 60)

	links := make([]string, len(hero.Links))
	for i, l := range hero.Links {
		links[i] = st.accent.Render(l.Label) + " " + st.muted.Render(l.Href)
	}

	block := lipgloss.JoinVertical(lipgloss.Center,
		st.muted.Render("Hi, I'm"),
		st.title.Render(hero.Name),
		st.text.Render(tw.text())+st.accent.Render("▌"),
		"",
		st.muted.Width(w).Align(lipgloss.Center).Render(hero.Tagline),
		"",
		strings.Join(links, "\n"),
		"",
		st.help.Render("3 view my work   4 get in touch"),
	)
	return lipgloss.PlaceHorizontal(max(width, lipgloss.Width(block)), lipgloss.Center, block)
}

func renderAbout(about content.AboutContent, width int, st styles) string {
	w := wrapWidth(width, 76)

	parts := []string{st.title.Render("About Me"), ""}
	for _, p := range about.Paragraphs {
		parts = append(parts, st.text.Width(w).Render(p), "")
	}
	parts = append(parts,
		st.header.Render("My Tech Stack"),
		st.accent.Width(w).Render(strings.Join(about.TechStack, " · ")),
	)
	return indent(strings.Join(parts, "\n"))
}
