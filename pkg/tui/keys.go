package tui

import "github.com/charmbracelet/bubbles/v2/key"

type keyMap struct {
	PrevDay    key.Binding
	NextDay    key.Binding
	PrevWeek   key.Binding
	NextWeek   key.Binding
	PrevMonth  key.Binding
	NextMonth  key.Binding
	Today      key.Binding
	Category   key.Binding
	ActiveOnly key.Binding
	Focus      key.Binding
	Back       key.Binding
	Delete     key.Binding
	Edit       key.Binding
	Refresh    key.Binding
	Help       key.Binding
	Quit       key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		PrevDay:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		PrevWeek:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		NextWeek:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevMonth:  key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev month")),
		NextMonth:  key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next month")),
		Today:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Category:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		ActiveOnly: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "active only")),
		Focus:      key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "details")),
		Back:       key.NewBinding(key.WithKeys("esc", "shift+tab"), key.WithHelp("esc", "calendar")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "delete")),
		Cancel:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "keep")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Category, k.ActiveOnly, k.Delete, k.Edit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek},
		{k.PrevMonth, k.NextMonth, k.Today, k.Refresh},
		{k.Category, k.ActiveOnly, k.Focus, k.Back},
		{k.Delete, k.Edit, k.Help, k.Quit},
	}
}

type confirmKeys struct {
	keyMap
}

func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k confirmKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
