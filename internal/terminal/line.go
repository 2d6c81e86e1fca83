package terminal

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// LineKind tags a transcript line.
type LineKind string

const (
	LineInput  LineKind = "input"
	LineOutput LineKind = "output"
	LineSystem LineKind = "system"
)

// Content is the payload of a transcript line. The set of implementations is
// closed: Text, Table and Blocks.
type Content interface {
	// Format names the payload shape: "text", "table" or "blocks".
	Format() string
	// Text renders the payload as plain text.
	Text() string

	sealed()
}

// Text is plain text content.
type Text string

func (t Text) Format() string { return "text" }
func (t Text) Text() string   { return string(t) }
func (Text) sealed()          {}

// Row is one key/value pair of a Table.
type Row struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Table is a small key/value table. Keys are padded to a common width when
// rendered as text.
type Table struct {
	Rows      []Row
	KeySuffix string
	Separator string
}

func (t Table) Format() string { return "table" }

func (t Table) Text() string {
	width := 0
	for _, r := range t.Rows {
		width = max(width, len(r.Key)+len(t.KeySuffix))
	}

	lines := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		lines = append(lines, fmt.Sprintf("%-*s%s%s", width, r.Key+t.KeySuffix, t.Separator, r.Value))
	}
	return strings.Join(lines, "\n")
}

func (Table) sealed() {}

// Block is a titled group of lines.
type Block struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// Blocks is a sequence of titled blocks, rendered with a blank line between them.
type Blocks []Block

func (b Blocks) Format() string { return "blocks" }

func (b Blocks) Text() string {
	parts := make([]string, 0, len(b))
	for _, block := range b {
		parts = append(parts, strings.Join(append([]string{block.Title}, block.Lines...), "\n"))
	}
	return strings.Join(parts, "\n\n")
}

func (Blocks) sealed() {}

// Line is one transcript entry: exactly one kind and one payload.
type Line struct {
	Kind    LineKind
	Content Content
}

// Input returns an input line carrying the text exactly as submitted.
func Input(raw string) Line {
	return Line{Kind: LineInput, Content: Text(raw)}
}

// Output returns an output line.
func Output(c Content) Line {
	return Line{Kind: LineOutput, Content: c}
}

// System returns a system line.
func System(text string) Line {
	return Line{Kind: LineSystem, Content: Text(text)}
}

// Text renders the line payload as plain text.
func (l Line) Text() string {
	if l.Content == nil {
		return ""
	}
	return l.Content.Text()
}

type lineJSON struct {
	Kind   LineKind `json:"kind"`
	Format string   `json:"format"`
	Text   string   `json:"text"`
	Rows   []Row    `json:"rows,omitempty"`
	Blocks []Block  `json:"blocks,omitempty"`
}

// MarshalJSON encodes the line with its rendered text plus the structured
// payload for table and blocks content.
func (l Line) MarshalJSON() ([]byte, error) {
	out := lineJSON{Kind: l.Kind, Text: l.Text()}
	switch c := l.Content.(type) {
	case Text:
		out.Format = c.Format()
	case Table:
		out.Format = c.Format()
		out.Rows = c.Rows
	case Blocks:
		out.Format = c.Format()
		out.Blocks = c
	case nil:
		out.Format = "text"
	}
	return json.Marshal(out)
}

// Transcript is the ordered history of one terminal session.
type Transcript []Line

// Clone returns a copy that shares no backing array with t.
func (t Transcript) Clone() Transcript {
	if t == nil {
		return Transcript{}
	}
	return slices.Clone(t)
}
