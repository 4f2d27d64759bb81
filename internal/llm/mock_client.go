package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/csheth/noteza/internal/notes"
)

// mockClient answers with canned notes so the app runs without network access.
type mockClient struct{}

func (mockClient) Name() string {
	return "Mock"
}

func (mockClient) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	topic := topicFromPrompt(prompt)
	if topic == "" {
		topic = "the topic"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", topic)
	fmt.Fprintf(&b, "**%s** is summarized here from offline sample data.\n\n", topic)
	b.WriteString("### Key Ideas\n")
	if levelFromPrompt(prompt) == notes.LevelDetailed {
		b.WriteString("- **Definition**: a full sentence describing what the concept is and why it matters.\n")
		b.WriteString("- **Mechanism**: a full sentence describing how the concept works step by step.\n")
		b.WriteString("- **Example**: a concrete case that shows the mechanism in practice.\n")
	} else {
		b.WriteString("- **Definition**: short fragment\n")
		b.WriteString("- **Mechanism**: short fragment\n")
		b.WriteString("- **Example**: one concrete case\n")
	}
	return b.String(), nil
}
