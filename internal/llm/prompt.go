package llm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/csheth/noteza/internal/notes"
)

const notesPromptTemplate = `
You are an assistant who creates exam-oriented study notes.
Generate well-structured, comprehensive notes on topic: **%[1]s**

Use this format:
Use Markdown headings (##, ###) for sections and subsections.
Define %[1]s first (1-2 lines)
Use bullet points for key ideas/definitions
Give 1-2 examples per major concept.
**Bold** technical terms
[KEEP SENTENCES SHORT AND CLEAR, NO UNNECESSARY STORYTELLING]
[ADAPT TO "%[2]s": **Brief**=fragments only, max 10 words per bullet, make the entire output under 150 words, Detailed=Use full sentences. Explain the "why" and "how" of each concept.]
[DONT USE EMOJIS]
`

var promptTopicRe = regexp.MustCompile(`notes on topic: \*\*(.+?)\*\*`)

// BuildNotesPrompt fills the study-notes template. The caller guarantees a non-empty topic.
func BuildNotesPrompt(topic string, level notes.Level) string {
	return fmt.Sprintf(notesPromptTemplate, topic, level)
}

// topicFromPrompt recovers the topic from a prompt built by BuildNotesPrompt.
func topicFromPrompt(prompt string) string {
	match := promptTopicRe.FindStringSubmatch(prompt)
	if len(match) < 2 {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// levelFromPrompt recovers the detail level from a prompt built by BuildNotesPrompt.
func levelFromPrompt(prompt string) notes.Level {
	if strings.Contains(prompt, `[ADAPT TO "Detailed"`) {
		return notes.LevelDetailed
	}
	return notes.LevelBrief
}
