package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Toggle     key.Binding
	Close      key.Binding
	Expand     key.Binding
	AddWater   key.Binding
	ResetWater key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Top:        key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "check")),
		Close:      key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "close")),
		Expand:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		AddWater:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "add glass")),
		ResetWater: key.NewBinding(key.WithKeys("W"), key.WithHelp("W", "clear water")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpBindings is the order bindings appear in the footer.
func (k keyMap) helpBindings() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Toggle, k.Close, k.Expand, k.AddWater, k.ResetWater, k.Quit}
}
