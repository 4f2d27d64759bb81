package tui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/csheth/noteza/internal/notes"
)

type historyItem struct {
	id    notes.ID
	label string
}

func (i historyItem) Title() string       { return i.label }
func (i historyItem) Description() string { return "" }
func (i historyItem) FilterValue() string { return i.label }

func newHistoryList(width, height int) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(nil, delegate, width, height)
	l.Title = "History"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("note", "notes")
	l.DisableQuitKeybindings()
	return l
}

func historyItems(entries []notes.HistoryEntry) []list.Item {
	items := make([]list.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, historyItem{id: entry.ID, label: entry.Label})
	}
	return items
}
