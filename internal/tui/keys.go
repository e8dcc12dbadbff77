package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	nextZone key.Binding
	sync     key.Binding
	copy     key.Binding
	addTopic key.Binding
	addNote  key.Binding
	edit     key.Binding
	remove   key.Binding
	quit     key.Binding

	// input mode
	submit key.Binding
	cancel key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	nextZone: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next zone")),
	sync:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync")),
	copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy id")),
	addTopic: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add topic")),
	addNote:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add note")),
	edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	remove:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

	submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.up, k.down, k.nextZone, k.sync, k.copy, k.addTopic, k.addNote, k.edit, k.remove, k.quit}
}

func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.submit, k.cancel}
}
