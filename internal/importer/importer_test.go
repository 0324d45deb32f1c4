package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagnote/internal/notes"
)

func writeScratch(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scratch.tmp")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFirstLineWithTag(t *testing.T) {
	path := writeScratch(t, "urgent: call bob\nsecond: ignored\n")

	n, err := ReadFirstLine(path)
	require.NoError(t, err)
	assert.Equal(t, notes.Note{Tag: "urgent", Body: "call bob"}, n)
	assert.NoFileExists(t, path)
}

func TestReadFirstLineWithoutColon(t *testing.T) {
	n, err := ReadFirstLine(writeScratch(t, "buy milk"))
	require.NoError(t, err)
	assert.Equal(t, notes.Note{Body: "buy milk"}, n)
}

func TestReadFirstLineEmptyLineIsNotAnError(t *testing.T) {
	n, err := ReadFirstLine(writeScratch(t, "\nlater line\n"))
	require.NoError(t, err)
	assert.Equal(t, notes.Note{}, n)
}

func TestReadFirstLineLongLine(t *testing.T) {
	long := strings.Repeat("x", 70000)
	path := writeScratch(t, "tag: "+long+"\r\nnext\n")

	n, err := ReadFirstLine(path)
	require.NoError(t, err)
	assert.Equal(t, "tag", n.Tag)
	assert.Equal(t, long, n.Body)
	assert.NoFileExists(t, path)
}

func TestReadFirstLineWithoutTrailingNewline(t *testing.T) {
	n, err := ReadFirstLine(writeScratch(t, "a: b"))
	require.NoError(t, err)
	assert.Equal(t, notes.Note{Tag: "a", Body: "b"}, n)
}

func TestReadFirstLineNoInput(t *testing.T) {
	_, err := ReadFirstLine(filepath.Join(t.TempDir(), "missing.tmp"))
	assert.ErrorIs(t, err, ErrNoInput)

	path := writeScratch(t, "")
	_, err = ReadFirstLine(path)
	assert.ErrorIs(t, err, ErrNoInput)
	assert.NoFileExists(t, path)
}

func TestPrepareRemovesStaleScratch(t *testing.T) {
	path := writeScratch(t, "old: text")
	require.NoError(t, Prepare(path))
	assert.NoFileExists(t, path)
	require.NoError(t, Prepare(path))
}

func TestCommandSplitsEditorArgs(t *testing.T) {
	cmd, err := Command("code --wait", "/tmp/x.tmp")
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "--wait", "/tmp/x.tmp"}, cmd.Args)

	_, err = Command("  ", "/tmp/x.tmp")
	assert.Error(t, err)
}
