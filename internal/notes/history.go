package notes

// HistoryLimit is how many notes the history panel shows.
const HistoryLimit = 8

// HistoryEntry is one selectable line in the history panel.
type HistoryEntry struct {
	ID    ID
	Label string
}

// History returns up to limit of the newest notes, newest first.
// A limit <= 0 falls back to HistoryLimit.
func History(s *Session, limit int) []HistoryEntry {
	if limit <= 0 {
		limit = HistoryLimit
	}
	all := s.notes
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	entries := make([]HistoryEntry, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		entries = append(entries, HistoryEntry{ID: all[i].ID, Label: all[i].Label()})
	}
	return entries
}
