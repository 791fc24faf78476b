package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Printable keys that are not bound here insert their byte.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "line above")),
		Down:  key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "line below")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete / join")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "split line")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Enter, km.Delete, km.Home, km.End}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down},
		{km.Home, km.End},
		{km.Backspace, km.Delete, km.Enter},
	}
}
