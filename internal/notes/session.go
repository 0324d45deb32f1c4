package notes

import "tagnote/internal/textbuf"

type Field int

const (
	FieldTag Field = iota
	FieldBody
)

func (f Field) String() string {
	if f == FieldBody {
		return "body"
	}
	return "tag"
}

// Session is the note being composed in edit mode and the field that has
// focus.
type Session struct {
	draft Note
	focus Field
}

func (s *Session) BeginNew() {
	s.draft = Note{}
	s.focus = FieldTag
}

func (s *Session) BeginEditing(existing Note) {
	s.draft = existing
	s.focus = FieldTag
}

func (s *Session) Draft() Note {
	return s.draft
}

func (s *Session) Focus() Field {
	return s.focus
}

// FocusNext and FocusPrev move between the two fields without wrapping.
func (s *Session) FocusNext() {
	s.focus = FieldBody
}

func (s *Session) FocusPrev() {
	s.focus = FieldTag
}

func (s *Session) FieldText() string {
	if s.focus == FieldBody {
		return s.draft.Body
	}
	return s.draft.Tag
}

// LoadFieldIntoBuffer copies the focused field into buf, cursor at the end.
func (s *Session) LoadFieldIntoBuffer(buf *textbuf.Buffer) {
	buf.Load(s.FieldText())
}

func (s *Session) CommitField(text string) {
	if s.focus == FieldBody {
		s.draft.Body = text
		return
	}
	s.draft.Tag = text
}

// Finalize hands back the draft and resets the session.
func (s *Session) Finalize() Note {
	n := s.draft
	s.Discard()
	return n
}

func (s *Session) Discard() {
	s.draft = Note{}
	s.focus = FieldTag
}
