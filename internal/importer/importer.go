// Package importer hands the terminal to an external editor and turns what
// it wrote into a note.
package importer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"tagnote/internal/notes"
)

var ErrNoInput = errors.New("editor produced no input")

// Command builds the editor invocation. editor may carry arguments, as in
// "code --wait".
func Command(editor, path string) (*exec.Cmd, error) {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return nil, errors.New("no editor configured")
	}
	args := append(fields[1:], path)
	return exec.Command(fields[0], args...), nil
}

// Prepare removes a scratch file left over from an earlier run so stale text
// is never imported.
func Prepare(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// ReadFirstLine parses the first line of the scratch file and removes it.
// A missing or empty file yields ErrNoInput. Line length is not limited.
func ReadFirstLine(path string) (notes.Note, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return notes.Note{}, ErrNoInput
	}
	if err != nil {
		return notes.Note{}, err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return notes.Note{}, fmt.Errorf("read %s: %w", path, err)
	}
	os.Remove(path)
	if line == "" {
		return notes.Note{}, ErrNoInput
	}
	return notes.ParseLine(strings.TrimRight(line, "\r\n")), nil
}
