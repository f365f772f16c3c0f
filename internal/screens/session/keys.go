package session

import "charm.land/bubbles/v2/key"

type keyMap struct {
	PickA   key.Binding
	PickB   key.Binding
	Submit  key.Binding
	Refresh key.Binding
	Quit    key.Binding
	Yes     key.Binding
	No      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		PickA:   key.NewBinding(key.WithKeys("1", "a", "A"), key.WithHelp("1/A", "")),
		PickB:   key.NewBinding(key.WithKeys("2", "b", "B"), key.WithHelp("2/B", "")),
		Submit:  key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "")),
		Refresh: key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("R", "")),
		Quit:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "")),
		Yes:     key.NewBinding(key.WithKeys("y", "Y")),
		No:      key.NewBinding(key.WithKeys("n", "N", "esc")),
	}
}
