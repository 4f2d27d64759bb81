// Package assistant holds the event handlers that sit between the
// interface and the session: each user action runs exactly one handler,
// and the interface re-reads a Snapshot afterwards.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/csheth/noteza/internal/llm"
	"github.com/csheth/noteza/internal/notes"
	"github.com/csheth/noteza/internal/observability"
)

// ErrEmptyTopic is returned when the topic is blank after trimming.
var ErrEmptyTopic = errors.New("please enter a topic")

// Mode tells the interface which main panel to show.
type Mode int

const (
	ModeInput Mode = iota
	ModeViewing
)

func (m Mode) String() string {
	if m == ModeViewing {
		return "viewing"
	}
	return "input"
}

// Request is a validated generation request.
type Request struct {
	Topic  string
	Level  notes.Level
	Prompt string
}

// Snapshot is a read-only view of the session after an event.
type Snapshot struct {
	Mode     Mode
	History  []notes.HistoryEntry
	Selected *notes.Note
	Total    int
}

// Assistant wraps one session and the client that generates notes for it.
type Assistant struct {
	session *notes.Session
	client  llm.Client
	logger  *slog.Logger
}

// New builds an assistant over a fresh session. A nil logger uses the global one.
func New(client llm.Client, logger *slog.Logger) *Assistant {
	if logger == nil {
		logger = observability.Logger()
	}
	return &Assistant{
		session: notes.NewSession(),
		client:  client,
		logger:  logger,
	}
}

// Client exposes the generation client so callers can run it off the event loop.
func (a *Assistant) Client() llm.Client {
	return a.client
}

// Prepare validates the inputs and builds the prompt.
func (a *Assistant) Prepare(topic string, level notes.Level) (Request, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		a.logger.Warn("generate rejected", "reason", "empty topic")
		return Request{}, ErrEmptyTopic
	}
	if level == "" {
		level = notes.LevelBrief
	}
	return Request{
		Topic:  topic,
		Level:  level,
		Prompt: llm.BuildNotesPrompt(topic, level),
	}, nil
}

// Complete records generated text for req and selects it.
func (a *Assistant) Complete(req Request, text string) notes.Note {
	note := a.session.Append(req.Topic, req.Level, text)
	// Select cannot miss: the note was just appended.
	_ = a.session.Select(note.ID)
	a.logger.Info("note stored", "note_id", note.ID, "seq", note.Seq, "topic", note.Topic, "level", note.Level, "total", a.session.Len())
	return note
}

// Generate runs Prepare, the client call, then Complete. The session is
// unchanged when any step fails.
func (a *Assistant) Generate(ctx context.Context, topic string, level notes.Level) (notes.Note, error) {
	req, err := a.Prepare(topic, level)
	if err != nil {
		return notes.Note{}, err
	}
	if a.client == nil {
		return notes.Note{}, fmt.Errorf("generation failed: %w", llm.ErrUnknownProvider)
	}
	start := time.Now()
	text, err := a.client.Generate(ctx, req.Prompt)
	if err != nil {
		a.logger.Error("generation failed", "provider", a.client.Name(), "topic", req.Topic, "duration", time.Since(start), "error", err)
		return notes.Note{}, fmt.Errorf("generation failed: %w", err)
	}
	a.logger.Info("generation finished", "provider", a.client.Name(), "topic", req.Topic, "duration", time.Since(start))
	return a.Complete(req, text), nil
}

// Select shows a history entry.
func (a *Assistant) Select(id notes.ID) error {
	if err := a.session.Select(id); err != nil {
		a.logger.Warn("select failed", "note_id", id, "error", err)
		return err
	}
	return nil
}

// NewNotes returns to the input form and keeps the history.
func (a *Assistant) NewNotes() {
	a.session.Deselect()
}

// Clear drops every note.
func (a *Assistant) Clear() {
	a.logger.Info("history cleared", "dropped", a.session.Len())
	a.session.Clear()
}

// Snapshot reports what the interface should show now.
func (a *Assistant) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:    ModeInput,
		History: notes.History(a.session, notes.HistoryLimit),
		Total:   a.session.Len(),
	}
	if note, ok := a.session.Selected(); ok {
		snap.Mode = ModeViewing
		snap.Selected = &note
	}
	return snap
}

// SelectedForExport returns the displayed note or ErrNoteNotFound.
func (a *Assistant) SelectedForExport() (notes.Note, error) {
	note, ok := a.session.Selected()
	if !ok {
		a.logger.Warn("export withheld", "note_id", a.session.SelectedID())
		return notes.Note{}, notes.ErrNoteNotFound
	}
	return note, nil
}
