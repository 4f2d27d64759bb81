package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/noteza/internal/assistant"
	"github.com/csheth/noteza/internal/export"
	"github.com/csheth/noteza/internal/notes"
	"github.com/csheth/noteza/internal/observability"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Assistant     *assistant.Assistant
	ExportDir     string
	MarkdownStyle string
	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
	Logger    *slog.Logger
	// Context bounds background jobs. Defaults to context.Background.
	Context context.Context
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.Logger == nil {
		config.Logger = observability.Logger()
	}
	if config.Assistant == nil {
		config.Assistant = assistant.New(nil, config.Logger)
	}
	if config.Clipboard == nil {
		config.Clipboard = clipboard.WriteAll
	}
	if config.ExportDir == "" {
		config.ExportDir = "."
	}

	topicInput := textinput.New()
	topicInput.Placeholder = "e.g. Photosynthesis, TCP handshake, The French Revolution"
	topicInput.Prompt = "Topic › "
	topicInput.CharLimit = 200
	topicInput.Width = 60
	topicInput.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	layout := newPageLayout()
	vp := viewport.New(layout.viewportWidth, layout.viewportHeight)
	vp.MouseWheelEnabled = true

	m := &model{
		config:     config,
		stage:      stageInput,
		focus:      focusMain,
		keys:       newKeyMap(),
		level:      notes.LevelBrief,
		topicInput: topicInput,
		spinner:    spin,
		viewport:   vp,
		history:    newHistoryList(layout.sidebarWidth-4, layout.sidebarHeight),
		layout:     layout,
		jobs:       newJobBus(config.Context, config.Logger),
		activeJobs: map[string]jobSnapshot{},
		renderer:   newNoteRenderer(config.MarkdownStyle, config.Logger),
		logger:     config.Logger.With("component", "tui"),
	}
	m.infoMessage = inputHelpMessage
	m.refresh()
	return m
}

type model struct {
	config Config
	stage  stage
	focus  focusArea
	keys   keyMap
	level  notes.Level

	topicInput textinput.Model
	spinner    spinner.Model
	viewport   viewport.Model
	history    list.Model
	layout     pageLayout

	jobs       *jobBus
	activeJobs map[string]jobSnapshot
	renderer   *noteRenderer
	logger     *slog.Logger

	snapshot     assistant.Snapshot
	renderedID   notes.ID
	renderedWide int

	infoMessage  string
	warnMessage  string
	errorMessage string
	quitting     bool
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.stage == stageLoading || len(m.activeJobs) > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.stage == stageDisplay {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.viewport.Width = m.layout.viewportWidth
		m.viewport.Height = m.layout.viewportHeight
		m.topicInput.Width = m.layout.viewportWidth - len(m.topicInput.Prompt) - 2
		m.history.SetSize(m.layout.sidebarWidth-4, m.layout.sidebarHeight)
		m.renderedID = ""
		m.refresh()
		return m, nil
	case jobSignalMsg:
		m.activeJobs[msg.Snapshot.ID] = msg.Snapshot
		return m, nil
	case jobResultEnvelope:
		delete(m.activeJobs, msg.Snapshot.ID)
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case generateResultMsg:
		return m.handleGenerateResult(msg)
	case exportResultMsg:
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("export failed: %v", msg.err)
			return m, nil
		}
		m.errorMessage = ""
		m.infoMessage = fmt.Sprintf("Saved %s", msg.path)
		return m, nil
	case copyResultMsg:
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("copy failed: %v", msg.err)
			return m, nil
		}
		m.errorMessage = ""
		m.infoMessage = fmt.Sprintf("Copied %s notes to the clipboard.", msg.topic)
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Clear):
		m.clearHistory()
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()
		return m, nil
	}

	if m.focus == focusHistory {
		return m.handleHistoryKey(msg)
	}
	switch m.stage {
	case stageInput:
		return m.handleInputKey(msg)
	case stageDisplay:
		return m.handleDisplayKey(msg)
	default:
		return m, nil
	}
}

func (m *model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Generate):
		return m.startGeneration()
	case key.Matches(msg, m.keys.ToggleLevel):
		m.level = m.level.Next()
		m.infoMessage = fmt.Sprintf("Detail level: %s", m.level)
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.topicInput, cmd = m.topicInput.Update(msg)
	return m, cmd
}

func (m *model) handleDisplayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SaveMarkdown):
		return m.startExport(export.FormatMarkdown)
	case key.Matches(msg, m.keys.SavePDF):
		return m.startExport(export.FormatPDF)
	case key.Matches(msg, m.keys.Copy):
		note, ok := m.exportableNote()
		if !ok {
			return m, nil
		}
		return m, m.jobs.Start(jobKindCopy, copyJob(m.config.Clipboard, note))
	case key.Matches(msg, m.keys.NewNotes):
		m.config.Assistant.NewNotes()
		m.topicInput.SetValue("")
		m.clearMessages()
		m.infoMessage = inputHelpMessage
		m.refresh()
		return m, textinput.Blink
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.setFocus(focusMain)
		return m, nil
	case key.Matches(msg, m.keys.Select):
		item, ok := m.history.SelectedItem().(historyItem)
		if !ok {
			return m, nil
		}
		if err := m.config.Assistant.Select(item.id); err != nil {
			m.warnMessage = missingNoteMsg
			return m, nil
		}
		m.clearMessages()
		m.setFocus(focusMain)
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m *model) startGeneration() (tea.Model, tea.Cmd) {
	if m.stage == stageLoading {
		return m, nil
	}
	req, err := m.config.Assistant.Prepare(m.topicInput.Value(), m.level)
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyTopic) {
			m.errorMessage = ""
			m.warnMessage = emptyTopicMessage
			return m, nil
		}
		m.errorMessage = err.Error()
		return m, nil
	}
	m.clearMessages()
	m.stage = stageLoading
	m.topicInput.Blur()
	m.infoMessage = loadingMessage
	m.logger.Info("generation requested", "topic", req.Topic, "level", req.Level)
	return m, tea.Batch(m.spinner.Tick, m.jobs.Start(jobKindGenerate, generateJob(m.config.Assistant.Client(), req)))
}

func (m *model) handleGenerateResult(msg generateResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.stage = stageInput
		m.topicInput.Focus()
		m.infoMessage = ""
		m.errorMessage = fmt.Sprintf("generation failed: %v", msg.err)
		m.refresh()
		return m, textinput.Blink
	}
	note := m.config.Assistant.Complete(msg.req, msg.text)
	m.clearMessages()
	m.infoMessage = fmt.Sprintf("Notes ready: %s", note.Label())
	m.stage = stageDisplay
	m.refresh()
	// The new note is the newest entry; keep the cursor on it.
	m.history.Select(0)
	return m, nil
}

func (m *model) startExport(format export.Format) (tea.Model, tea.Cmd) {
	note, ok := m.exportableNote()
	if !ok {
		return m, nil
	}
	m.infoMessage = fmt.Sprintf("Saving %s…", export.FileName(note.Topic, format))
	return m, m.jobs.Start(jobKindExport, exportJob(m.config.ExportDir, note, format))
}

func (m *model) exportableNote() (notes.Note, bool) {
	note, err := m.config.Assistant.SelectedForExport()
	if err != nil {
		m.warnMessage = missingNoteMsg
		return notes.Note{}, false
	}
	m.warnMessage = ""
	return note, true
}

func (m *model) clearHistory() {
	m.config.Assistant.Clear()
	m.clearMessages()
	m.infoMessage = "History cleared."
	m.setFocus(focusMain)
	m.refresh()
}

func (m *model) toggleFocus() {
	if m.focus == focusHistory {
		m.setFocus(focusMain)
		return
	}
	if len(m.snapshot.History) == 0 {
		m.infoMessage = "No notes yet. Generate some first."
		return
	}
	m.setFocus(focusHistory)
}

func (m *model) setFocus(f focusArea) {
	m.focus = f
	if f == focusMain && m.stage == stageInput {
		m.topicInput.Focus()
		return
	}
	m.topicInput.Blur()
}

func (m *model) clearMessages() {
	m.infoMessage = ""
	m.warnMessage = ""
	m.errorMessage = ""
}

// refresh re-reads the session snapshot and syncs every widget with it.
func (m *model) refresh() {
	m.snapshot = m.config.Assistant.Snapshot()
	m.history.SetItems(historyItems(m.snapshot.History))

	if m.stage == stageLoading {
		return
	}
	if m.snapshot.Mode == assistant.ModeViewing && m.snapshot.Selected != nil {
		m.stage = stageDisplay
		m.topicInput.Blur()
		m.renderSelected(*m.snapshot.Selected)
		return
	}
	m.stage = stageInput
	m.renderedID = ""
	m.viewport.SetContent("")
	if m.focus == focusMain {
		m.topicInput.Focus()
	}
}

func (m *model) renderSelected(note notes.Note) {
	width := m.viewport.Width
	if note.ID == m.renderedID && width == m.renderedWide {
		return
	}
	m.viewport.SetContent(m.renderer.Render(note.Text, width))
	m.viewport.GotoTop()
	m.renderedID = note.ID
	m.renderedWide = width
}
