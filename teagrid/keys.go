package teagrid

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the grid.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Selection
	SelectRow    key.Binding
	SelectColumn key.Binding
	Escape       key.Binding

	// Remap
	Sort       key.Binding
	SortExtend key.Binding
	ClearSort  key.Binding
	HideColumn key.Binding
	ShowAll    key.Binding

	// Measure
	Grow   key.Binding
	Shrink key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "move right"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),

		SelectRow: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "select row"),
		),
		SelectColumn: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "select column"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),

		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by column"),
		),
		SortExtend: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "add sort key"),
		),
		ClearSort: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear sort"),
		),
		HideColumn: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "hide column"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "show all columns"),
		),

		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "widen column"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "narrow column"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sort, k.ClearSort, k.SelectRow, k.SelectColumn, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown},
		{k.SelectRow, k.SelectColumn, k.Escape},
		{k.Sort, k.SortExtend, k.ClearSort, k.HideColumn, k.ShowAll},
		{k.Grow, k.Shrink, k.Help, k.Quit},
	}
}
