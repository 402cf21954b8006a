package studentform

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	NextArea  key.Binding
	PrevArea  key.Binding
	Add       key.Binding
	Save      key.Binding
	Reset     key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Weekday   key.Binding
	WeekRow   key.Binding
	ToggleAll key.Binding
	Press     key.Binding
}

func newKeyMap(isEdit bool) keyMap {
	addHelp := "add"
	if isEdit {
		addHelp = "duplicate"
	}
	k := keyMap{
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		NextArea:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "next area")),
		PrevArea:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "back")),
		Add:       key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", addHelp)),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Reset:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle day")),
		Weekday:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "toggle weekday")),
		WeekRow:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "toggle week")),
		ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
		Press:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
	}
	k.Save.SetEnabled(isEdit)
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextArea, k.Add, k.Save, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextArea, k.PrevArea, k.Add, k.Save, k.Reset, k.Quit},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Weekday, k.WeekRow, k.ToggleAll},
	}
}
