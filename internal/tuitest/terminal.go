package tuitest

import (
	"bytes"
	"io"
)

// Palette is what the fake terminal reports when the program asks for its
// colours. Values use the XParseColor "rgb:rrrr/gggg/bbbb" form.
type Palette struct {
	Foreground string
	Background string
}

var (
	// DarkPalette is light text on black, the default.
	DarkPalette = Palette{Foreground: "rgb:cccc/cccc/cccc", Background: "rgb:0000/0000/0000"}
	// LightPalette is black text on white.
	LightPalette = Palette{Foreground: "rgb:0000/0000/0000", Background: "rgb:ffff/ffff/ffff"}
)

// Query names reported in Recording.Queries.
const (
	QueryCursor     = "cursor"
	QueryForeground = "foreground"
	QueryBackground = "background"
)

type terminalQuery struct {
	name    string
	pattern []byte
	reply   []byte
}

func (p Palette) queries() []terminalQuery {
	qs := []terminalQuery{{name: QueryCursor, pattern: []byte("\x1b[6n"), reply: []byte("\x1b[1;1R")}}
	for _, term := range []string{"\x07", "\x1b\\"} {
		qs = append(qs,
			terminalQuery{name: QueryForeground, pattern: []byte("\x1b]10;?" + term), reply: []byte("\x1b]10;" + p.Foreground + term)},
			terminalQuery{name: QueryBackground, pattern: []byte("\x1b]11;?" + term), reply: []byte("\x1b]11;" + p.Background + term)},
		)
	}
	return qs
}

// terminalResponder plays the terminal side of status queries so programs
// probing the PTY do not stall waiting for an answer.
type terminalResponder struct {
	w        io.Writer
	buf      []byte
	queries  []terminalQuery
	answered map[string]int
}

func newTerminalResponder(w io.Writer, palette Palette) *terminalResponder {
	if palette == (Palette{}) {
		palette = DarkPalette
	}
	return &terminalResponder{
		w:        w,
		buf:      make([]byte, 0, 128),
		queries:  palette.queries(),
		answered: map[string]int{},
	}
}

func (tr *terminalResponder) Process(chunk []byte) {
	tr.buf = append(tr.buf, chunk...)
	for tr.answerNext() {
	}
	// A query can span reads, so only a short tail is kept.
	if len(tr.buf) > 256 {
		tr.buf = tr.buf[len(tr.buf)-64:]
	}
}

// answerNext replies to the earliest pending query. Replies must follow the
// order of the queries: a program sending OSC 11 then a cursor report reads
// the cursor reply as "OSC unsupported" if it arrives first.
func (tr *terminalResponder) answerNext() bool {
	first, at := -1, -1
	for i, q := range tr.queries {
		idx := bytes.Index(tr.buf, q.pattern)
		if idx >= 0 && (at < 0 || idx < at) {
			first, at = i, idx
		}
	}
	if first < 0 {
		return false
	}
	q := tr.queries[first]
	tr.buf = tr.buf[at+len(q.pattern):]
	tr.answered[q.name]++
	_, _ = tr.w.Write(q.reply)
	return true
}
