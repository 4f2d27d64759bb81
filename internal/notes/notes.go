package notes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Level selects how verbose the generated notes should be.
type Level string

const (
	LevelBrief    Level = "Brief"
	LevelDetailed Level = "Detailed"
)

// Levels lists the detail levels in the order they are offered to the user.
var Levels = []Level{LevelBrief, LevelDetailed}

// ErrUnknownLevel is returned by ParseLevel for anything other than Brief or Detailed.
var ErrUnknownLevel = errors.New("unknown detail level")

// ParseLevel accepts "Brief" or "Detailed" in any letter case.
func ParseLevel(value string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "brief":
		return LevelBrief, nil
	case "detailed":
		return LevelDetailed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, value)
	}
}

func (l Level) String() string {
	return string(l)
}

// Next cycles to the other detail level.
func (l Level) Next() Level {
	if l == LevelBrief {
		return LevelDetailed
	}
	return LevelBrief
}

// ID identifies a note for the lifetime of a session.
type ID string

// NewID generates a new unique note ID.
func NewID() ID {
	return ID(uuid.New().String())
}

// Note is one generated study-notes document plus the request that produced it.
type Note struct {
	ID    ID
	Seq   int // 1-based position in generation order, stable across Clear
	Topic string
	Level Level
	Text  string
}

// Label is the history entry caption, eg. "📖 Photosynthesis (Brief)".
func (n Note) Label() string {
	return fmt.Sprintf("📖 %s (%s)", n.Topic, n.Level)
}
