package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Menu     key.Binding
	Navigate key.Binding
	Login    key.Binding
	Contact  key.Binding
	Replay   key.Binding
	Brochure key.Binding
	Next     key.Binding
	Prev     key.Binding
	Submit   key.Binding
	Back     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Navigate: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to")),
		Login:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log in")),
		Contact:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contact")),
		Replay:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "replay stats")),
		Brochure: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pricing pdf")),
		Next:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// pageHelp lists the bindings shown while browsing.
func (k keyMap) pageHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Menu, k.Contact, k.Login, k.Brochure, k.Replay, k.Quit}
}

// formHelp lists the bindings shown while a form has focus.
func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Back}
}
