package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestLoadParksCursorAtEnd(t *testing.T) {
	var b Buffer
	b.Load("héllo")
	assert.Equal(t, 5, b.Cursor())
	assert.Equal(t, 5, b.Len())
	assert.Equal(t, "héllo", b.String())
}

func TestInsertAtCursorMiddle(t *testing.T) {
	var b Buffer
	b.Load("wrk")
	b.Left()
	b.Left()
	b.Insert('o')
	assert.Equal(t, "work", b.String())
	assert.Equal(t, 2, b.Cursor())
}

func TestBackspaceAtStartIsNoop(t *testing.T) {
	var b Buffer
	b.Load("ab")
	b.Left()
	b.Left()
	b.Backspace()
	assert.Equal(t, "ab", b.String())
	assert.Equal(t, 0, b.Cursor())

	b.Right()
	b.Backspace()
	assert.Equal(t, "b", b.String())
	assert.Equal(t, 0, b.Cursor())
}

func TestMovesClampAtBounds(t *testing.T) {
	var b Buffer
	b.Left()
	assert.Equal(t, 0, b.Cursor())
	b.Right()
	assert.Equal(t, 0, b.Cursor())

	b.Load("x")
	b.Right()
	b.Right()
	assert.Equal(t, 1, b.Cursor())
}

func TestTakeEmptiesBuffer(t *testing.T) {
	var b Buffer
	b.Load("buy milk")
	b.Left()
	assert.Equal(t, "buy milk", b.Take())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cursor())
	assert.Equal(t, "", b.Take())
}

func TestSplitAroundCursor(t *testing.T) {
	var b Buffer
	b.Load("abcd")
	b.Left()
	before, after := b.Split()
	assert.Equal(t, "abc", before)
	assert.Equal(t, "d", after)
}

func TestCursorInvariantHolds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var b Buffer
		b.Load(rapid.String().Draw(t, "initial"))
		model := []rune(b.String())
		cursor := len(model)

		ops := rapid.SliceOfN(rapid.IntRange(0, 5), 0, 64).Draw(t, "ops")
		for i, op := range ops {
			switch op {
			case 0:
				r := rapid.Rune().Draw(t, "rune")
				b.Insert(r)
				model = append(model[:cursor], append([]rune{r}, model[cursor:]...)...)
				cursor++
			case 1:
				b.Backspace()
				if cursor > 0 {
					model = append(model[:cursor-1], model[cursor:]...)
					cursor--
				}
			case 2:
				b.Left()
				if cursor > 0 {
					cursor--
				}
			case 3:
				b.Right()
				if cursor < len(model) {
					cursor++
				}
			case 4:
				got := b.Take()
				if got != string(model) {
					t.Fatalf("op %d: take returned %q, want %q", i, got, string(model))
				}
				model = nil
				cursor = 0
			case 5:
				s := rapid.String().Draw(t, "load")
				b.Load(s)
				model = []rune(s)
				cursor = len(model)
			}

			if b.Cursor() < 0 || b.Cursor() > b.Len() {
				t.Fatalf("op %d: cursor %d outside [0, %d]", i, b.Cursor(), b.Len())
			}
			if b.Cursor() != cursor {
				t.Fatalf("op %d: cursor %d, want %d", i, b.Cursor(), cursor)
			}
			if b.String() != string(model) {
				t.Fatalf("op %d: contents %q, want %q", i, b.String(), string(model))
			}
		}
	})
}

func FuzzCursorInvariantHolds(f *testing.F) {
	f.Add([]byte{0x00})
	f.Fuzz(rapid.MakeFuzz(func(t *rapid.T) {
		var b Buffer
		for _, op := range rapid.SliceOf(rapid.IntRange(0, 3)).Draw(t, "ops") {
			switch op {
			case 0:
				b.Insert('x')
			case 1:
				b.Backspace()
			case 2:
				b.Left()
			case 3:
				b.Right()
			}
			if b.Cursor() < 0 || b.Cursor() > b.Len() {
				t.Fatalf("cursor %d outside [0, %d]", b.Cursor(), b.Len())
			}
		}
	}))
}
