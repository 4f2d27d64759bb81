package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultMarkdownStyle = "dark"
	autoMarkdownStyle    = "auto"
)

// noteRenderer renders Markdown with glamour and falls back to plain word
// wrapping when the style is unknown or rendering fails.
type noteRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
	// unavailable is set once the style fails to load.
	unavailable bool
	logger      *slog.Logger
}

func newNoteRenderer(style string, logger *slog.Logger) *noteRenderer {
	style = strings.TrimSpace(style)
	if style == "" {
		style = defaultMarkdownStyle
	}
	if style == autoMarkdownStyle {
		style = resolveAutoStyle(lipgloss.HasDarkBackground())
		logger.Info("markdown style resolved", "markdown_style", style)
	}
	return &noteRenderer{style: style, logger: logger}
}

// resolveAutoStyle picks the standard style for the terminal background.
// The background is queried once, from New, before the program starts
// reading terminal input.
func resolveAutoStyle(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func (r *noteRenderer) Render(text string, width int) string {
	if width < 20 {
		width = 20
	}
	if !r.unavailable && (r.renderer == nil || r.width != width) {
		r.width = width
		r.renderer = nil
		tr, err := glamour.NewTermRenderer(glamour.WithStandardStyle(r.style), glamour.WithWordWrap(width))
		if err != nil {
			r.unavailable = true
			r.logger.Warn("markdown renderer unavailable", "style", r.style, "error", err)
		} else {
			r.renderer = tr
		}
	}
	if r.renderer != nil {
		out, err := r.renderer.Render(text)
		if err == nil {
			return strings.Trim(out, "\n")
		}
		r.logger.Warn("markdown render failed", "error", err)
	}
	return wordwrap.String(text, width)
}
