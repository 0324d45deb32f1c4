// Package textbuf holds the single-line buffer used while a tag or body is
// being typed. The cursor is a rune index and is always a valid insertion
// point: 0 <= cursor <= Len().
package textbuf

type Buffer struct {
	chars  []rune
	cursor int
}

// Load replaces the contents with s and parks the cursor at the end.
func (b *Buffer) Load(s string) {
	b.chars = []rune(s)
	b.cursor = len(b.chars)
}

// Insert puts r immediately before the cursor and advances past it.
func (b *Buffer) Insert(r rune) {
	b.clamp()
	b.chars = append(b.chars, 0)
	copy(b.chars[b.cursor+1:], b.chars[b.cursor:])
	b.chars[b.cursor] = r
	b.cursor++
}

// Backspace removes the rune before the cursor. No-op at the start.
func (b *Buffer) Backspace() {
	b.clamp()
	if b.cursor == 0 {
		return
	}
	b.chars = append(b.chars[:b.cursor-1], b.chars[b.cursor:]...)
	b.cursor--
}

func (b *Buffer) Left() {
	b.cursor--
	b.clamp()
}

func (b *Buffer) Right() {
	b.cursor++
	b.clamp()
}

// Take returns the contents and empties the buffer.
func (b *Buffer) Take() string {
	s := string(b.chars)
	b.chars = nil
	b.cursor = 0
	return s
}

func (b *Buffer) String() string {
	return string(b.chars)
}

func (b *Buffer) Len() int {
	return len(b.chars)
}

func (b *Buffer) Cursor() int {
	return b.cursor
}

// Split returns the text on either side of the cursor, for rendering.
func (b *Buffer) Split() (before, after string) {
	return string(b.chars[:b.cursor]), string(b.chars[b.cursor:])
}

func (b *Buffer) clamp() {
	if b.cursor < 0 {
		b.cursor = 0
	}
	if b.cursor > len(b.chars) {
		b.cursor = len(b.chars)
	}
}
