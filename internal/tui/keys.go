package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the list-mode bindings. They also feed the list's help line.
type keyMap struct {
	Create  key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Random  key.Binding
	Budget  key.Binding
	Panel   key.Binding
	Reset   key.Binding
	Reload  key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Submit  key.Binding
	Close   key.Binding
	Next    key.Binding
	Prev    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Create:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "update")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Random:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random")),
		Budget:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "budget")),
		Panel:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "random panel")),
		Reset:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
		Reload:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "all ideas")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		Cancel:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Create, k.Edit, k.Delete, k.Random, k.Budget, k.Reset, k.Reload}
}
