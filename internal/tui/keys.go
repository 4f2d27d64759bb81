package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit         key.Binding
	Focus        key.Binding
	Clear        key.Binding
	Generate     key.Binding
	ToggleLevel  key.Binding
	Back         key.Binding
	SaveMarkdown key.Binding
	SavePDF      key.Binding
	Copy         key.Binding
	NewNotes     key.Binding
	Up           key.Binding
	Down         key.Binding
	Select       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Focus:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "history")),
		Clear:        key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear history")),
		Generate:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "generate")),
		ToggleLevel:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "detail level")),
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		SaveMarkdown: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "save .md")),
		SavePDF:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "save .pdf")),
		Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		NewNotes:     key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "new notes")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "move")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
		Select:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
}

// hintsFor lists the bindings worth showing in the legend for the current state.
func (k keyMap) hintsFor(s stage, focus focusArea) []key.Binding {
	if focus == focusHistory {
		return []key.Binding{k.Up, k.Select, k.Back, k.Clear, k.Quit}
	}
	switch s {
	case stageDisplay:
		return []key.Binding{k.SaveMarkdown, k.SavePDF, k.Copy, k.NewNotes, k.Focus, k.Clear, k.Quit}
	case stageLoading:
		return []key.Binding{k.Quit}
	default:
		quit := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit"))
		return []key.Binding{k.Generate, k.ToggleLevel, k.Focus, k.Clear, quit}
	}
}
