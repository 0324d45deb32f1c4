package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tagnote/internal/textbuf"
)

func TestSessionFocusDoesNotWrap(t *testing.T) {
	var s Session
	s.BeginNew()
	s.FocusPrev()
	assert.Equal(t, FieldTag, s.Focus())

	s.FocusNext()
	s.FocusNext()
	assert.Equal(t, FieldBody, s.Focus())

	s.FocusPrev()
	assert.Equal(t, FieldTag, s.Focus())
}

func TestSessionCommitsFocusedField(t *testing.T) {
	var s Session
	s.BeginNew()
	s.CommitField("work")
	s.FocusNext()
	s.CommitField("buy milk")

	assert.Equal(t, Note{Tag: "work", Body: "buy milk"}, s.Draft())
}

func TestSessionLoadFieldIntoBuffer(t *testing.T) {
	var s Session
	s.BeginEditing(Note{Tag: "home", Body: "water plants"})
	s.FocusNext()

	var buf textbuf.Buffer
	s.LoadFieldIntoBuffer(&buf)
	assert.Equal(t, "water plants", buf.String())
	assert.Equal(t, buf.Len(), buf.Cursor())
}

func TestSessionFinalizeResets(t *testing.T) {
	var s Session
	s.BeginEditing(Note{Tag: "a", Body: "b"})
	s.FocusNext()

	assert.Equal(t, Note{Tag: "a", Body: "b"}, s.Finalize())
	assert.Equal(t, Note{}, s.Draft())
	assert.Equal(t, FieldTag, s.Focus())
}

func TestBeginNewClearsPreviousDraft(t *testing.T) {
	var s Session
	s.BeginEditing(Note{Tag: "a", Body: "b"})
	s.BeginNew()
	assert.Equal(t, Note{}, s.Draft())
}
