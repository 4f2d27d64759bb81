package notes

import "errors"

// ErrNoteNotFound is returned when a note ID does not match anything in the session.
var ErrNoteNotFound = errors.New("note not found")

// Session holds the notes generated during one run plus the current selection.
// It is owned by a single event loop and is not safe for concurrent use.
type Session struct {
	notes    []Note
	selected ID
	seq      int
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Append stores a new note at the end of the history and returns it.
func (s *Session) Append(topic string, level Level, text string) Note {
	s.seq++
	note := Note{
		ID:    NewID(),
		Seq:   s.seq,
		Topic: topic,
		Level: level,
		Text:  text,
	}
	s.notes = append(s.notes, note)
	return note
}

// Select marks the note with the given ID as the one on display.
func (s *Session) Select(id ID) error {
	if _, ok := s.Lookup(id); !ok {
		return ErrNoteNotFound
	}
	s.selected = id
	return nil
}

// Deselect drops the current selection and keeps the history.
func (s *Session) Deselect() {
	s.selected = ""
}

// Clear empties the history and the selection.
func (s *Session) Clear() {
	s.notes = nil
	s.selected = ""
}

// Lookup finds a note by ID.
func (s *Session) Lookup(id ID) (Note, bool) {
	if id == "" {
		return Note{}, false
	}
	for _, note := range s.notes {
		if note.ID == id {
			return note, true
		}
	}
	return Note{}, false
}

// Selected returns the note on display, if any.
func (s *Session) Selected() (Note, bool) {
	return s.Lookup(s.selected)
}

// SelectedID returns the raw selection, which may be empty.
func (s *Session) SelectedID() ID {
	return s.selected
}

// SelectByText selects the first note whose text equals text.
// Notes with identical text are indistinguishable here; prefer Select.
func (s *Session) SelectByText(text string) (Note, bool) {
	for _, note := range s.notes {
		if note.Text == text {
			s.selected = note.ID
			return note, true
		}
	}
	return Note{}, false
}

// Notes returns a copy of the history in insertion order.
func (s *Session) Notes() []Note {
	return append([]Note(nil), s.notes...)
}

// Len reports how many notes the session holds.
func (s *Session) Len() int {
	return len(s.notes)
}
