package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/orbfield/internal/content"
)

type projectItem struct {
	project content.Project
}

func (i projectItem) Title() string       { return i.project.Title }
func (i projectItem) Description() string { return strings.Join(i.project.TechStack, " · ") }
func (i projectItem) FilterValue() string {
	return i.project.Title + " " + strings.Join(i.project.TechStack, " ")
}

// projectsModel lists the portfolio projects. Enter opens one, esc goes
// back to the list.
type projectsModel struct {
	list   list.Model
	detail *content.Project
}

func newProjectsModel() projectsModel {
	var items []list.Item
	for _, p := range content.Projects() {
		items = append(items, projectItem{project: p})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(primaryColor).
		BorderLeftForeground(primaryColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(mutedColor).
		BorderLeftForeground(primaryColor)

	l := list.New(items, delegate, 80, 20)
	l.Title = "Projects"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)

	return projectsModel{list: l}
}

// capturesKeys reports whether the page needs every key for itself.
func (m projectsModel) capturesKeys() bool {
	return m.list.FilterState() == list.Filtering
}

// claims reports whether the page handles msg ahead of the global keys.
func (m projectsModel) claims(msg tea.KeyMsg) bool {
	if m.capturesKeys() {
		return true
	}
	return m.detail != nil && isBackKey(msg)
}

func isBackKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "backspace", "left", "h":
		return true
	}
	return false
}

func (m *projectsModel) setSize(w, h int) {
	m.list.SetWidth(max(0, w))
	m.list.SetHeight(max(0, h))
}

func (m projectsModel) update(msg tea.Msg) (projectsModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && !m.capturesKeys() {
		if m.detail == nil && key.String() == "enter" {
			if item, ok := m.list.SelectedItem().(projectItem); ok {
				p := item.project
				m.detail = &p
			}
			return m, nil
		}
		if m.detail != nil {
			if isBackKey(key) {
				m.detail = nil
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m projectsModel) view(width int, st styles) string {
	if m.detail == nil {
		return m.list.View()
	}
	p := m.detail
	var sb strings.Builder
	sb.WriteString("  " + st.title.Render(p.Title) + "\n")
	sb.WriteString("\n")
	sb.WriteString(indent(st.text.Width(wrapWidth(width, 76)).Render(p.Description)) + "\n")
	sb.WriteString("\n")
	sb.WriteString("  " + st.label.Render("Stack  ") + st.accent.Render(strings.Join(p.TechStack, " · ")) + "\n")
	sb.WriteString("  " + st.label.Render("Link   ") + st.text.Render(p.Href) + "\n")
	sb.WriteString("\n")
	sb.WriteString("  " + st.help.Render("esc back to projects"))
	return sb.String()
}
