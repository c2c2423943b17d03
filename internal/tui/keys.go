package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	esc        key.Binding
	quit       key.Binding
	setup      key.Binding
	cancel     key.Binding
	inspect    key.Binding
	installMod key.Binding
	toggleAI   key.Binding
	launch     key.Binding
	copy       key.Binding
	reload     key.Binding
	clearLog   key.Binding
	buildInfo  key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	setup:      key.NewBinding(key.WithKeys("s", "enter")),
	cancel:     key.NewBinding(key.WithKeys("x")),
	inspect:    key.NewBinding(key.WithKeys("i")),
	installMod: key.NewBinding(key.WithKeys("m")),
	toggleAI:   key.NewBinding(key.WithKeys("a")),
	launch:     key.NewBinding(key.WithKeys("l")),
	copy:       key.NewBinding(key.WithKeys("c")),
	reload:     key.NewBinding(key.WithKeys("r")),
	clearLog:   key.NewBinding(key.WithKeys("ctrl+l")),
	buildInfo:  key.NewBinding(key.WithKeys("v")),
}
