// Package controller is the modal input state machine. It consumes one key
// event at a time and mutates the note store, the edit session and the text
// buffer according to the current mode. Anything that has to leave the
// process (saving, the editor, the clipboard) is returned as an Effect for
// the caller to carry out.
package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tagnote/internal/notes"
	"tagnote/internal/textbuf"
)

type Mode int

const (
	ModeView Mode = iota
	// ModeDeletePending is View after the first delete key; the next key
	// either confirms or aborts.
	ModeDeletePending
	ModeEditDirect
	ModeEditTag
	ModeEditBody
)

func (m Mode) String() string {
	switch m {
	case ModeView:
		return "view"
	case ModeDeletePending:
		return "delete?"
	case ModeEditDirect:
		return "edit"
	case ModeEditTag:
		return "edit tag"
	case ModeEditBody:
		return "edit body"
	default:
		return "unknown"
	}
}

// Editing reports whether a draft is open.
func (m Mode) Editing() bool {
	return m == ModeEditDirect || m == ModeEditTag || m == ModeEditBody
}

// Typing reports whether keys go into the text buffer.
func (m Mode) Typing() bool {
	return m == ModeEditTag || m == ModeEditBody
}

type Effect int

const (
	EffectNone Effect = iota
	// EffectQuit asks the caller to persist the store and exit.
	EffectQuit
	// EffectImport asks the caller to run the external editor and pass the
	// result to Import.
	EffectImport
	// EffectYank asks the caller to copy the selected note.
	EffectYank
)

type Controller struct {
	store   *notes.Store
	session notes.Session
	buf     textbuf.Buffer
	keys    KeyMap
	mode    Mode
	// replacing is set when the open draft was loaded from the selected note
	// and should overwrite it on commit.
	replacing bool
	status    string
}

func New(store *notes.Store, keys KeyMap) *Controller {
	return &Controller{store: store, keys: keys, mode: ModeView}
}

func (c *Controller) Mode() Mode {
	return c.mode
}

func (c *Controller) Store() *notes.Store {
	return c.store
}

func (c *Controller) Session() *notes.Session {
	return &c.session
}

func (c *Controller) Buffer() *textbuf.Buffer {
	return &c.buf
}

func (c *Controller) Keys() KeyMap {
	return c.keys
}

func (c *Controller) Status() string {
	return c.status
}

func (c *Controller) SetStatus(s string) {
	c.status = s
}

// Replacing reports whether committing the open draft overwrites the
// selected note instead of appending.
func (c *Controller) Replacing() bool {
	return c.replacing
}

// Handle applies one key event.
func (c *Controller) Handle(msg tea.KeyMsg) Effect {
	if key.Matches(msg, c.keys.ForceQuit) {
		return EffectQuit
	}
	switch c.mode {
	case ModeView:
		return c.handleView(msg)
	case ModeDeletePending:
		c.handleDeletePending(msg)
	case ModeEditDirect:
		c.handleDirect(msg)
	case ModeEditTag, ModeEditBody:
		c.handleInput(msg)
	}
	return EffectNone
}

// Import appends a note produced by the external editor.
func (c *Controller) Import(n notes.Note) {
	c.store.Append(n)
	c.status = fmt.Sprintf("Imported %q", n.String())
}

func (c *Controller) handleView(msg tea.KeyMsg) Effect {
	switch {
	case key.Matches(msg, c.keys.Quit):
		return EffectQuit
	case key.Matches(msg, c.keys.Down):
		c.store.MoveSelection(1)
	case key.Matches(msg, c.keys.Up):
		c.store.MoveSelection(-1)
	case key.Matches(msg, c.keys.Delete):
		c.mode = ModeDeletePending
		c.status = "Press " + c.keys.Delete.Keys()[0] + " again to delete"
	case key.Matches(msg, c.keys.Add):
		c.session.BeginNew()
		c.replacing = false
		c.mode = ModeEditDirect
		c.status = "New note"
	case key.Matches(msg, c.keys.Change):
		n, ok := c.store.Selected()
		if !ok {
			c.status = "No note to change"
			return EffectNone
		}
		c.session.BeginEditing(n)
		c.replacing = true
		c.mode = ModeEditDirect
		c.status = "Changing note"
	case key.Matches(msg, c.keys.Import):
		return EffectImport
	case key.Matches(msg, c.keys.Yank):
		if _, ok := c.store.Selected(); !ok {
			c.status = "No note to copy"
			return EffectNone
		}
		return EffectYank
	}
	return EffectNone
}

// handleDeletePending consumes the lookahead key: only a second delete key
// removes the selected note, anything else aborts.
func (c *Controller) handleDeletePending(msg tea.KeyMsg) {
	c.mode = ModeView
	if !key.Matches(msg, c.keys.Delete) {
		c.status = "Delete cancelled"
		return
	}
	if c.store.DeleteSelected() {
		c.status = "Deleted note"
		return
	}
	c.status = "Nothing to delete"
}

func (c *Controller) handleDirect(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, c.keys.Down):
		c.session.FocusNext()
	case key.Matches(msg, c.keys.Up):
		c.session.FocusPrev()
	case key.Matches(msg, c.keys.Insert):
		c.session.LoadFieldIntoBuffer(&c.buf)
		if c.session.Focus() == notes.FieldBody {
			c.mode = ModeEditBody
		} else {
			c.mode = ModeEditTag
		}
	case key.Matches(msg, c.keys.Confirm):
		n := c.session.Finalize()
		if c.replacing && c.store.ReplaceSelected(n) {
			c.status = "Updated note"
		} else {
			c.store.Append(n)
			c.status = "Added note"
		}
		c.replacing = false
		c.mode = ModeView
	case key.Matches(msg, c.keys.Cancel):
		c.session.Discard()
		c.replacing = false
		c.mode = ModeView
		c.status = "Discarded draft"
	}
}

func (c *Controller) handleInput(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, c.keys.Confirm):
		// An empty submission leaves the field as it was.
		if text := c.buf.Take(); text != "" {
			c.session.CommitField(text)
		}
		c.mode = ModeEditDirect
	case key.Matches(msg, c.keys.Cancel):
		c.buf.Take()
		c.mode = ModeEditDirect
	case key.Matches(msg, c.keys.Backspace):
		c.buf.Backspace()
	case key.Matches(msg, c.keys.Left):
		c.buf.Left()
	case key.Matches(msg, c.keys.Right):
		c.buf.Right()
	case msg.Type == tea.KeySpace:
		c.buf.Insert(' ')
	case msg.Type == tea.KeyRunes && !msg.Alt:
		// Notes are one line: pasted line breaks become spaces.
		for _, r := range msg.Runes {
			switch r {
			case '\r':
			case '\n':
				c.buf.Insert(' ')
			default:
				c.buf.Insert(r)
			}
		}
	}
}
