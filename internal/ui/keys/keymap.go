// Package keys defines the key bindings for the dual-pane browser and its
// modal views.
package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

// Common keys shared across views
type Common struct {
	Quit key.Binding
	Help key.Binding
}

// Browse holds the bindings active in the dual-pane view.
type Browse struct {
	CursorUp   key.Binding
	CursorDown key.Binding
	GotoTop    key.Binding
	GotoBottom key.Binding
	SwitchPane key.Binding

	Enter   key.Binding
	Up      key.Binding
	Back    key.Binding
	Forward key.Binding
	Refresh key.Binding
	Hidden  key.Binding

	Copy      key.Binding
	Cut       key.Binding
	Paste     key.Binding
	Delete    key.Binding
	Rename    key.Binding
	NewFile   key.Binding
	NewFolder key.Binding
	Duplicate key.Binding
	MoveOver  key.Binding

	Undo key.Binding
	Redo key.Binding

	Open     key.Binding
	Terminal key.Binding
}

// Prompt view specific keys
type Prompt struct {
	Accept key.Binding
	Cancel key.Binding
}

// Confirm view specific keys
type Confirm struct {
	Yes key.Binding
	No  key.Binding
}

// KeyMap holds all key bindings and help functions
type KeyMap struct {
	Common  Common
	Browse  Browse
	Prompt  Prompt
	Confirm Confirm
}

// NewKeyMap creates the default key map.
func NewKeyMap() *KeyMap {
	km := &KeyMap{}

	km.Common = Common{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}

	km.Browse = Browse{
		CursorUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		CursorDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", "l"),
			key.WithHelp("enter", "open"),
		),
		Up: key.NewBinding(
			key.WithKeys("backspace", "h"),
			key.WithHelp("bksp/h", "parent"),
		),
		Back: key.NewBinding(
			key.WithKeys("[", "alt+left"),
			key.WithHelp("[", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("]", "alt+right"),
			key.WithHelp("]", "forward"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r", "f5"),
			key.WithHelp("C-r", "refresh"),
		),
		Hidden: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "hidden"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Cut: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "cut"),
		),
		Paste: key.NewBinding(
			key.WithKeys("v", "p"),
			key.WithHelp("v", "paste"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r", "f2"),
			key.WithHelp("r", "rename"),
		),
		NewFile: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new file"),
		),
		NewFolder: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "new folder"),
		),
		Duplicate: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "duplicate"),
		),
		MoveOver: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move to other pane"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("U", "ctrl+y"),
			key.WithHelp("U", "redo"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open external"),
		),
		Terminal: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "terminal here"),
		),
	}

	km.Prompt = Prompt{
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}

	km.Confirm = Confirm{
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "no"),
		),
	}

	return km
}

// ShortHelp returns condensed help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Browse.Enter, k.Browse.Copy, k.Browse.Paste,
		k.Browse.Undo, k.Common.Help, k.Common.Quit,
	}
}

// FullHelp returns complete help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			k.Browse.CursorUp, k.Browse.CursorDown,
			k.Browse.GotoTop, k.Browse.GotoBottom,
			k.Browse.SwitchPane,
		},
		{
			k.Browse.Enter, k.Browse.Up,
			k.Browse.Back, k.Browse.Forward,
			k.Browse.Refresh, k.Browse.Hidden,
		},
		{
			k.Browse.Copy, k.Browse.Cut, k.Browse.Paste,
			k.Browse.Delete, k.Browse.Rename, k.Browse.MoveOver,
		},
		{
			k.Browse.NewFile, k.Browse.NewFolder, k.Browse.Duplicate,
			k.Browse.Undo, k.Browse.Redo,
		},
		{
			k.Browse.Open, k.Browse.Terminal,
			k.Common.Help, k.Common.Quit,
		},
	}
}
