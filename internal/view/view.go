// Package view projects controller state into a frame description. It
// holds no state of its own; the ui package decides how a Frame looks.
package view

import (
	"tagnote/internal/controller"
	"tagnote/internal/notes"
)

type Row struct {
	Index    int
	Tag      string
	Body     string
	Selected bool
}

type Field struct {
	Label string
	Text  string
	// Focused is set on the field the draft focus points at; Editing when
	// its text comes from the live buffer, split at the cursor into Before and
	// After.
	Focused bool
	Editing bool
	Before  string
	After   string
}

type Popup struct {
	Title string
	Tag   Field
	Body  Field
}

type Frame struct {
	Rows   []Row
	Popup  *Popup
	Mode   controller.Mode
	Status string
}

func (f Frame) Empty() bool {
	return len(f.Rows) == 0
}

func Project(c *controller.Controller) Frame {
	store := c.Store()
	sel, hasSel := store.Selection()

	list := store.Notes()
	rows := make([]Row, len(list))
	for i, n := range list {
		rows[i] = Row{Index: i, Tag: n.Tag, Body: n.Body, Selected: hasSel && i == sel}
	}

	f := Frame{Rows: rows, Mode: c.Mode(), Status: c.Status()}
	if c.Mode().Editing() {
		f.Popup = projectPopup(c)
	}
	return f
}

func projectPopup(c *controller.Controller) *Popup {
	s := c.Session()
	draft := s.Draft()
	p := &Popup{
		Title: "New note",
		Tag:   Field{Label: "Tag", Text: draft.Tag, Focused: s.Focus() == notes.FieldTag},
		Body:  Field{Label: "Note", Text: draft.Body, Focused: s.Focus() == notes.FieldBody},
	}
	if c.Replacing() {
		p.Title = "Change note"
	}

	var live *Field
	switch c.Mode() {
	case controller.ModeEditTag:
		live = &p.Tag
	case controller.ModeEditBody:
		live = &p.Body
	}
	if live != nil {
		buf := c.Buffer()
		live.Text = buf.String()
		live.Editing = true
		live.Before, live.After = buf.Split()
	}
	return p
}
