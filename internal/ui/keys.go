package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Home       key.Binding
	About      key.Binding
	Projects   key.Binding
	Contact    key.Binding
	Mode       key.Binding
	Glow       key.Binding
	Depth      key.Binding
	Reflection key.Binding
	Theme      key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		Prev:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev page")),
		Home:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "go to page")),
		About:      key.NewBinding(key.WithKeys("2")),
		Projects:   key.NewBinding(key.WithKeys("3")),
		Contact:    key.NewBinding(key.WithKeys("4")),
		Mode:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		Glow:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "glow")),
		Depth:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "depth")),
		Reflection: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reflection")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Home, k.Mode, k.Glow, k.Depth, k.Reflection, k.Theme, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Home},
		{k.Mode, k.Glow, k.Depth, k.Reflection, k.Theme},
		{k.Quit},
	}
}

func formHelpText(sending bool) string {
	if sending {
		return "sending...  ctrl+c quit"
	}
	return "tab/↓ next field  shift+tab/↑ prev field  enter send  esc leave form  ctrl+c quit"
}
