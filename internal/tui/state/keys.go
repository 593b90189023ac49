package state

import "github.com/charmbracelet/bubbles/key"

type homeKeyMap struct {
	Toggle   key.Binding
	Stop     key.Binding
	Mute     key.Binding
	Settings key.Binding
	Sound    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k homeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Stop, k.Mute, k.Help, k.Quit}
}

func (k homeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Stop, k.Mute},
		{k.Settings, k.Sound},
		{k.Help, k.Quit},
	}
}

type settingsKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k settingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back, k.Quit}
}

func (k settingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Back, k.Quit}}
}

type soundKeyMap struct {
	Test key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k soundKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Test, k.Back, k.Quit}
}

func (k soundKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Test, k.Back, k.Quit}}
}

var homeKeys = homeKeyMap{
	Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
	Stop:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
	Mute:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
	Settings: key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
	Sound:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "sound test")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var settingsKeys = settingsKeyMap{
	Next: key.NewBinding(key.WithKeys("tab", "down", "enter"), key.WithHelp("tab", "next field")),
	Prev: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

var soundKeys = soundKeyMap{
	Test: key.NewBinding(key.WithKeys("enter", "t"), key.WithHelp("enter", "play test drop")),
	Back: key.NewBinding(key.WithKeys("esc", ","), key.WithHelp("esc", "back")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
