package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/noteza/internal/assistant"
	"github.com/csheth/noteza/internal/notes"
)

type stubClient struct {
	err   error
	calls int
}

func (s *stubClient) Name() string { return "stub" }

func (s *stubClient) Generate(_ context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "## Generated\n\n" + prompt[:20] + "\n\n- point one\n- point two", nil
}

type testHarness struct {
	model     *model
	client    *stubClient
	exportDir string
	copied    []string
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestModel(t *testing.T, client *stubClient) *testHarness {
	t.Helper()
	h := &testHarness{client: client, exportDir: t.TempDir()}
	cfg := Config{
		Assistant:     assistant.New(client, discardLogger()),
		ExportDir:     h.exportDir,
		MarkdownStyle: "notty",
		Logger:        discardLogger(),
		Clipboard: func(text string) error {
			h.copied = append(h.copied, text)
			return nil
		},
	}
	teaModel, ok := New(cfg).(*model)
	if !ok {
		t.Fatalf("expected *model, got %T", teaModel)
	}
	h.model = teaModel
	return h
}

// pump runs cmd and feeds job traffic back into the model until it settles.
// Spinner and cursor ticks are dropped so the test never sleeps.
func pump(t *testing.T, m *model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			pump(t, m, c)
		}
	case jobSignalMsg, jobResultEnvelope:
		_, next := m.Update(msg)
		pump(t, m, next)
	default:
		rv := reflect.ValueOf(msg)
		if !rv.IsValid() || rv.Kind() != reflect.Slice {
			return
		}
		for i := 0; i < rv.Len(); i++ {
			if c, ok := rv.Index(i).Interface().(tea.Cmd); ok {
				pump(t, m, c)
			}
		}
	}
}

func (h *testHarness) press(t *testing.T, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	_, cmd := h.model.Update(msg)
	return cmd
}

func (h *testHarness) generate(t *testing.T, topic string) {
	t.Helper()
	h.press(t, runes(topic))
	cmd := h.press(t, tea.KeyMsg{Type: tea.KeyEnter})
	if h.model.stage != stageLoading {
		t.Fatalf("expected loading stage after enter, got %s", h.model.stage)
	}
	pump(t, h.model, cmd)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestGenerateAddsHistoryEntry(t *testing.T) {
	h := newTestModel(t, &stubClient{})
	h.generate(t, "Photosynthesis")

	m := h.model
	if m.stage != stageDisplay {
		t.Fatalf("expected display stage, got %s", m.stage)
	}
	items := m.history.Items()
	if len(items) != 1 {
		t.Fatalf("expected one history entry, got %d", len(items))
	}
	if label := items[0].(historyItem).label; label != "📖 Photosynthesis (Brief)" {
		t.Fatalf("unexpected label %q", label)
	}
	if m.snapshot.Selected == nil || m.snapshot.Selected.Topic != "Photosynthesis" {
		t.Fatalf("expected the new note to be selected, got %#v", m.snapshot.Selected)
	}
	if !strings.Contains(m.View(), "📖 Photosynthesis (Brief)") {
		t.Fatalf("view should show the history label:\n%s", m.View())
	}
	if len(m.activeJobs) != 0 {
		t.Fatalf("expected no active jobs, got %v", m.activeJobs)
	}
}

func TestEmptyTopicWarnsWithoutGenerating(t *testing.T) {
	h := newTestModel(t, &stubClient{})
	h.press(t, runes("   "))
	cmd := h.press(t, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("expected no command for an empty topic")
	}
	m := h.model
	if m.warnMessage != emptyTopicMessage {
		t.Fatalf("expected warning %q, got %q", emptyTopicMessage, m.warnMessage)
	}
	if m.stage != stageInput || m.snapshot.Total != 0 || h.client.calls != 0 {
		t.Fatalf("state changed: stage=%s total=%d calls=%d", m.stage, m.snapshot.Total, h.client.calls)
	}
	if !strings.Contains(m.View(), emptyTopicMessage) {
		t.Fatalf("view should include the warning")
	}
}

func TestGenerationFailureKeepsHistory(t *testing.T) {
	h := newTestModel(t, &stubClient{err: errors.New("quota exceeded")})
	h.generate(t, "Photosynthesis")

	m := h.model
	if m.stage != stageInput {
		t.Fatalf("expected input stage after failure, got %s", m.stage)
	}
	if !strings.HasPrefix(m.errorMessage, "generation failed:") || !strings.Contains(m.errorMessage, "quota exceeded") {
		t.Fatalf("unexpected error message %q", m.errorMessage)
	}
	if m.snapshot.Total != 0 {
		t.Fatalf("history should be unchanged, got %d notes", m.snapshot.Total)
	}
}

func TestToggleLevelChangesLabel(t *testing.T) {
	h := newTestModel(t, &stubClient{})
	h.press(t, tea.KeyMsg{Type: tea.KeyCtrlT})
	if h.model.level != notes.LevelDetailed {
		t.Fatalf("expected Detailed after ctrl+t, got %s", h.model.level)
	}
	h.generate(t, "Mitosis")
	if got := h.model.snapshot.History[0].Label; got != "📖 Mitosis (Detailed)" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestEnterIgnoredWhileLoading(t *testing.T) {
	h := newTestModel(t, &stubClient{})
	h.press(t, runes("Photosynthesis"))
	h.press(t, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd := h.press(t, tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("second enter should not start another job")
	}
}

func TestExportAndCopy(t *testing.T) {
	h := newTestModel(t, &stubClient{})
	h.generate(t, "Photosynthesis")

	pump(t, h.model, h.press(t, runes("m")))
	mdPath := filepath.Join(h.exportDir, "Photosynthesis notes.md")
	data, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("markdown export missing: %v", err)
	}
	if string(data) != h.model.snapshot.Selected.Text {
		t.Fatalf("markdown export should match the note text")
	}
	if !strings.Contains(h.model.infoMessage, mdPath) {
		t.Fatalf("expected saved path in info message, got %q", h.model.infoMessage)
	}

	pump(t, h.model, h.press(t, runes("p")))
	if info, err := os.Stat(filepath.Join(h.exportDir, "Photosynthesis notes.pdf")); err != nil || info.Size() == 0 {
		t.Fatalf("pdf export missing: %v", err)
	}

	pump(t, h.model, h.press(t, runes("y")))
	if len(h.copied) != 1 || h.copied[0] != h.model.snapshot.Selected.Text {
		t.Fatalf("clipboard not written: %v", h.copied)
	}
}

func TestExportFailureShowsError(t *testing.T) {
	h := newTestModel(t, &stubClient{})
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	h.model.config.ExportDir = filepath.Join(blocker, "nested")
	h.generate(t, "Photosynthesis")

	pump(t, h.model, h.press(t, runes("m")))
	if !strings.HasPrefix(h.model.errorMessage, "export failed:") {
		t.Fatalf("expected export error, got %q", h.model.errorMessage)
	}
	if h.model.stage != stageDisplay {
		t.Fatalf("stage should not change on export failure")
	}
}

func TestExportWithoutSelectionWarns(t *testing.T) {
	h := newTestModel(t, &stubClient{})
	_, cmd := h.model.startExport("md")
	if cmd != nil {
		t.Fatalf("export should be withheld without a selection")
	}
	if h.model.warnMessage != missingNoteMsg {
		t.Fatalf("expected %q, got %q", missingNoteMsg, h.model.warnMessage)
	}
}

func TestHistorySelectionByID(t *testing.T) {
	h := newTestModel(t, &stubClient{})
	h.generate(t, "Alpha")
	h.press(t, runes("n"))
	if h.model.stage != stageInput {
		t.Fatalf("n should return to the input form")
	}
	h.generate(t, "Beta")

	h.press(t, tea.KeyMsg{Type: tea.KeyTab})
	if h.model.focus != focusHistory {
		t.Fatalf("tab should focus the history")
	}
	h.press(t, tea.KeyMsg{Type: tea.KeyDown})
	h.press(t, tea.KeyMsg{Type: tea.KeyEnter})

	m := h.model
	if m.focus != focusMain {
		t.Fatalf("selecting should return focus to the main panel")
	}
	if m.snapshot.Selected == nil || m.snapshot.Selected.Topic != "Alpha" {
		t.Fatalf("expected Alpha selected, got %#v", m.snapshot.Selected)
	}
	if m.stage != stageDisplay {
		t.Fatalf("expected display stage, got %s", m.stage)
	}
	if m.snapshot.History[0].Label != "📖 Beta (Brief)" {
		t.Fatalf("history should stay newest first, got %q", m.snapshot.History[0].Label)
	}
}

func TestHistoryCursorFollowsNewNote(t *testing.T) {
	h := newTestModel(t, &stubClient{})
	h.generate(t, "Alpha")
	h.press(t, runes("n"))
	h.generate(t, "Beta")

	h.press(t, tea.KeyMsg{Type: tea.KeyTab})
	h.press(t, tea.KeyMsg{Type: tea.KeyDown})
	h.press(t, tea.KeyMsg{Type: tea.KeyEnter})
	if h.model.history.Index() != 1 {
		t.Fatalf("expected the cursor on Alpha, got index %d", h.model.history.Index())
	}

	h.press(t, runes("n"))
	h.generate(t, "Gamma")

	item, ok := h.model.history.SelectedItem().(historyItem)
	if !ok {
		t.Fatalf("expected a highlighted history item, got %T", h.model.history.SelectedItem())
	}
	if item.label != "📖 Gamma (Brief)" || item.id != h.model.snapshot.Selected.ID {
		t.Fatalf("highlight drifted to %q while %q is displayed", item.label, h.model.snapshot.Selected.Topic)
	}
}

func TestHistoryEscReturnsFocus(t *testing.T) {
	h := newTestModel(t, &stubClient{})
	h.generate(t, "Alpha")
	h.press(t, tea.KeyMsg{Type: tea.KeyTab})
	h.press(t, tea.KeyMsg{Type: tea.KeyEsc})
	if h.model.focus != focusMain || h.model.stage != stageDisplay {
		t.Fatalf("esc in history should only move focus, got focus=%d stage=%s", h.model.focus, h.model.stage)
	}
}

func TestTabWithoutHistoryKeepsFocus(t *testing.T) {
	h := newTestModel(t, &stubClient{})
	h.press(t, tea.KeyMsg{Type: tea.KeyTab})
	if h.model.focus != focusMain {
		t.Fatalf("focus should stay on the main panel with no history")
	}
}

func TestNewNotesKeepsHistory(t *testing.T) {
	h := newTestModel(t, &stubClient{})
	h.generate(t, "Photosynthesis")
	h.press(t, tea.KeyMsg{Type: tea.KeyEsc})
	m := h.model
	if m.stage != stageInput || m.snapshot.Total != 1 || m.snapshot.Selected != nil {
		t.Fatalf("unexpected state after esc: stage=%s total=%d", m.stage, m.snapshot.Total)
	}
	if m.topicInput.Value() != "" {
		t.Fatalf("topic input should be reset")
	}
}

func TestClearHistory(t *testing.T) {
	h := newTestModel(t, &stubClient{})
	h.generate(t, "Photosynthesis")
	h.press(t, tea.KeyMsg{Type: tea.KeyCtrlX})
	m := h.model
	if m.snapshot.Total != 0 || len(m.history.Items()) != 0 || m.stage != stageInput {
		t.Fatalf("clear should empty history and return to input, got total=%d stage=%s", m.snapshot.Total, m.stage)
	}
}

func TestQuitKeys(t *testing.T) {
	h := newTestModel(t, &stubClient{})
	if !isQuit(h.press(t, tea.KeyMsg{Type: tea.KeyEsc})) {
		t.Fatalf("esc on the input form should quit")
	}
	h = newTestModel(t, &stubClient{})
	h.generate(t, "Photosynthesis")
	if !isQuit(h.press(t, tea.KeyMsg{Type: tea.KeyCtrlC})) {
		t.Fatalf("ctrl+c should quit from any stage")
	}
}

func TestWindowResizeUpdatesWidgets(t *testing.T) {
	h := newTestModel(t, &stubClient{})
	h.model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if h.model.viewport.Width != h.model.layout.viewportWidth || h.model.viewport.Height != h.model.layout.viewportHeight {
		t.Fatalf("viewport not resized: %dx%d", h.model.viewport.Width, h.model.viewport.Height)
	}
	if h.model.history.Width() != h.model.layout.sidebarWidth-4 {
		t.Fatalf("history not resized: %d", h.model.history.Width())
	}
}
