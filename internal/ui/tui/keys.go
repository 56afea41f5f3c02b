package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev       key.Binding
	Next       key.Binding
	Jump       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding

	PrevProject key.Binding
	NextProject key.Binding
	Toggle      key.Binding

	Compose key.Binding
	Send    key.Binding
	Leave   key.Binding

	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:       key.NewBinding(key.WithKeys("left", "up"), key.WithHelp("←/↑", "prev channel")),
		Next:       key.NewBinding(key.WithKeys("right", "down"), key.WithHelp("→/↓", "next channel")),
		Jump:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "tune")),
		ScrollUp:   key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "scroll down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),

		PrevProject: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev project")),
		NextProject: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next project")),
		Toggle:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),

		Compose: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "compose")),
		Send:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "transmit")),
		Leave:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave form")),

		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "replay reveals")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump, k.ScrollDown, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Jump},
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
		{k.PrevProject, k.NextProject, k.Toggle},
		{k.Compose, k.Send, k.Leave},
		{k.Reset, k.Help, k.Quit},
	}
}

// formKeys are the only bindings honoured while the contact form has focus.
func (k keyMap) formKeys() []key.Binding {
	return []key.Binding{k.Compose, k.Send, k.Leave}
}
