package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Table key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Table, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Table},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Table: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "records"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}
