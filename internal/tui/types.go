package tui

import (
	"github.com/csheth/noteza/internal/assistant"
	"github.com/csheth/noteza/internal/export"
)

type stage int

const (
	stageInput stage = iota
	stageLoading
	stageDisplay
)

func (s stage) String() string {
	switch s {
	case stageLoading:
		return "loading"
	case stageDisplay:
		return "display"
	default:
		return "input"
	}
}

type focusArea int

const (
	focusMain focusArea = iota
	focusHistory
)

const heroTagline = "Structured study notes for any topic, powered by Gemini."

const (
	loadingMessage    = "Generating your notes……"
	emptyTopicMessage = "Please enter a topic"
	missingNoteMsg    = "Note metadata not found."
	inputHelpMessage  = "Type a topic and press Enter. Ctrl+T switches the detail level."
)

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	sidebarWidth              = 34
	narrowSidebarWidth        = 30
	chromeHeight              = 18
	minViewportHeight         = 6
)

type generateResultMsg struct {
	req  assistant.Request
	text string
	err  error
}

type exportResultMsg struct {
	format export.Format
	path   string
	err    error
}

type copyResultMsg struct {
	topic string
	err   error
}
