package controller

import (
	"github.com/charmbracelet/bubbles/key"

	"tagnote/internal/config"
)

// KeyMap is the set of bindings the controller dispatches on. It also
// satisfies help.KeyMap for the footer.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Up        key.Binding
	Down      key.Binding
	Add       key.Binding
	Delete    key.Binding
	Import    key.Binding
	Change    key.Binding
	Yank      key.Binding
	Insert    key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Backspace key.Binding
	Left      key.Binding
	Right     key.Binding
}

func NewKeyMap(k config.Keymap) KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys(k.Quit), key.WithHelp(k.Quit, "save & quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Up:        key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp(k.Up+"/↑", "up")),
		Down:      key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp(k.Down+"/↓", "down")),
		Add:       key.NewBinding(key.WithKeys(k.Add), key.WithHelp(k.Add, "add")),
		Delete:    key.NewBinding(key.WithKeys(k.Delete), key.WithHelp(k.Delete+" "+k.Delete, "delete")),
		Import:    key.NewBinding(key.WithKeys(k.Import), key.WithHelp(k.Import, "editor import")),
		Change:    key.NewBinding(key.WithKeys(k.Change), key.WithHelp(k.Change, "change")),
		Yank:      key.NewBinding(key.WithKeys(k.Yank), key.WithHelp(k.Yank, "copy")),
		Insert:    key.NewBinding(key.WithKeys(k.Insert), key.WithHelp(k.Insert, "edit field")),
		Confirm:   key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(k.Confirm, "confirm")),
		Cancel:    key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(k.Cancel, "cancel")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Add, k.Change, k.Delete, k.Import, k.Yank, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Insert, k.Confirm, k.Cancel}}
}

// EditHelp is the footer while a draft is open.
func (k KeyMap) EditHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Insert, k.Confirm, k.Cancel}
}

// InputHelp is the footer while a field is being typed.
func (k KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}
