package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/noteza/internal/assistant"
	"github.com/csheth/noteza/internal/export"
	"github.com/csheth/noteza/internal/llm"
	"github.com/csheth/noteza/internal/notes"
)

var errNoClient = errors.New("no generation client configured")

// generateJob only talks to the model; the session is updated when the
// result reaches Update.
func generateJob(client llm.Client, req assistant.Request) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		if client == nil {
			return generateResultMsg{req: req, err: errNoClient}, errNoClient
		}
		text, err := client.Generate(ctx, req.Prompt)
		return generateResultMsg{req: req, text: text, err: err}, err
	}
}

func exportJob(dir string, note notes.Note, format export.Format) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		path, err := export.Save(dir, note, format)
		return exportResultMsg{format: format, path: path, err: err}, err
	}
}

func copyJob(write func(string) error, note notes.Note) jobRunner {
	text := note.Text
	topic := note.Topic
	return func(context.Context) (tea.Msg, error) {
		err := write(text)
		return copyResultMsg{topic: topic, err: err}, err
	}
}
