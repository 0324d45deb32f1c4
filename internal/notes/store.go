package notes

// Store is the ordered note list plus the selected index. A non-empty store
// always has a selection in [0, Len()); an empty one has none.
type Store struct {
	notes    []Note
	selected int
}

func NewStore(initial []Note) *Store {
	s := &Store{notes: append([]Note(nil), initial...), selected: -1}
	if len(s.notes) > 0 {
		s.selected = 0
	}
	return s
}

func (s *Store) Len() int {
	return len(s.notes)
}

// Notes returns a copy of the list in display order.
func (s *Store) Notes() []Note {
	return append([]Note(nil), s.notes...)
}

func (s *Store) Selection() (int, bool) {
	if s.selected < 0 {
		return 0, false
	}
	return s.selected, true
}

func (s *Store) Selected() (Note, bool) {
	i, ok := s.Selection()
	if !ok {
		return Note{}, false
	}
	return s.notes[i], true
}

// Append adds n at the end. The selection only moves when the store was
// empty and needs one.
func (s *Store) Append(n Note) {
	s.notes = append(s.notes, n)
	if s.selected < 0 {
		s.selected = 0
	}
}

// DeleteSelected removes the selected note and reports whether one existed.
func (s *Store) DeleteSelected() bool {
	i, ok := s.Selection()
	if !ok {
		return false
	}
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	if len(s.notes) == 0 {
		s.selected = -1
		return true
	}
	s.selected = min(i, len(s.notes)-1)
	return true
}

// ReplaceSelected overwrites the selected note in place.
func (s *Store) ReplaceSelected(n Note) bool {
	i, ok := s.Selection()
	if !ok {
		return false
	}
	s.notes[i] = n
	return true
}

func (s *Store) MoveSelection(delta int) {
	if len(s.notes) == 0 {
		return
	}
	s.selected = clampIndex(s.selected+delta, len(s.notes))
}

func clampIndex(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
