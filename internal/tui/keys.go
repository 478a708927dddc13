package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	events       key.Binding
	fractionDown key.Binding
	fractionUp   key.Binding
	reset        key.Binding
	quit         key.Binding
}

var defaultKeyMap = keymap{
	events: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "dispatch event"),
	),
	fractionDown: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "fraction -"),
	),
	fractionUp: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "fraction +"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keymap) helpBindings() []key.Binding {
	return []key.Binding{k.events, k.fractionDown, k.fractionUp, k.reset, k.quit}
}
