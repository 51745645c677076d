package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding
	reload  key.Binding
	reset   key.Binding
	copy    key.Binding
	yes     key.Binding
	no      key.Binding

	// water
	preset1 key.Binding
	preset2 key.Binding
	preset3 key.Binding
	amount  key.Binding

	// sleep
	sleepStart key.Binding
	sleepEnd   key.Binding

	// nutrition
	mealTime key.Binding

	// progress
	currentWeight key.Binding
	goalWeight    key.Binding
	height        key.Binding
	bodyWeight    key.Binding
	commit        key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab", "right")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "left")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("l")),
	reload:  key.NewBinding(key.WithKeys("r")),
	reset:   key.NewBinding(key.WithKeys("x")),
	copy:    key.NewBinding(key.WithKeys("c")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),

	preset1: key.NewBinding(key.WithKeys("1")),
	preset2: key.NewBinding(key.WithKeys("2")),
	preset3: key.NewBinding(key.WithKeys("3")),
	amount:  key.NewBinding(key.WithKeys("a")),

	sleepStart: key.NewBinding(key.WithKeys("s")),
	sleepEnd:   key.NewBinding(key.WithKeys("e")),

	mealTime: key.NewBinding(key.WithKeys("t")),

	currentWeight: key.NewBinding(key.WithKeys("w")),
	goalWeight:    key.NewBinding(key.WithKeys("g")),
	height:        key.NewBinding(key.WithKeys("h")),
	bodyWeight:    key.NewBinding(key.WithKeys("m")),
	commit:        key.NewBinding(key.WithKeys("b")),
}
