package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the key bindings of the carousel
type keyMap struct {
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding
	GoTo  key.Binding
	Start key.Binding
	Stop  key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Next:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		First: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Last:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		GoTo: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "go to item"),
		),
		Start: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Stop:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Start, k.Stop, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last, k.GoTo},
		{k.Start, k.Stop, k.Reset},
		{k.Help, k.Quit},
	}
}
