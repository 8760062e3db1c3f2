package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Allow key.Binding
	Block key.Binding
	Later key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Allow: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "allow")),
		Block: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "block")),
		Later: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "decide later")),
	}
}
