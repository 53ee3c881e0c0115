package ulmark

import (
	"strings"

	"pkt.systems/ulmark/internal/units"
)

// Buffer is the line-addressable text the toggle operations read and edit.
type Buffer interface {
	// Line returns the text of line i without its line ending, or "" when i
	// is out of range.
	Line(i int) string
	LineCount() int
	// ReplaceRange replaces the half-open range [from, to) with text.
	ReplaceRange(text string, from, to Position)
	SetSelection(anchor, head Position)
	SetCursor(p Position)
}

// Document is an in-memory Buffer.
type Document struct {
	lines []string
	sel   Range
}

var _ Buffer = (*Document)(nil)

// NewDocument splits text on "\n" into a Document with the cursor at 0:0.
func NewDocument(text string) *Document {
	return &Document{lines: strings.Split(text, "\n")}
}

// NewDocumentLines returns a Document holding a copy of lines.
func NewDocumentLines(lines ...string) *Document {
	if len(lines) == 0 {
		return NewDocument("")
	}
	return &Document{lines: append([]string(nil), lines...)}
}

func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

func (d *Document) LineCount() int {
	return len(d.lines)
}

// Lines returns a copy of the document lines.
func (d *Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

func (d *Document) String() string {
	return strings.Join(d.lines, "\n")
}

func (d *Document) ReplaceRange(text string, from, to Position) {
	r := Range{From: d.clamp(from), To: d.clamp(to)}.Ordered()
	prefix := units.Slice(d.lines[r.From.Line], 0, r.From.Col)
	last := d.lines[r.To.Line]
	suffix := units.Slice(last, r.To.Col, units.Len(last))
	repl := strings.Split(prefix+text+suffix, "\n")
	out := make([]string, 0, len(d.lines)-(r.To.Line-r.From.Line)+len(repl)-1)
	out = append(out, d.lines[:r.From.Line]...)
	out = append(out, repl...)
	out = append(out, d.lines[r.To.Line+1:]...)
	d.lines = out
}

func (d *Document) SetSelection(anchor, head Position) {
	d.sel = Range{From: d.clamp(anchor), To: d.clamp(head)}
}

func (d *Document) SetCursor(p Position) {
	p = d.clamp(p)
	d.sel = Range{From: p, To: p}
}

// Selection returns the current selection as anchor (From) and head (To).
func (d *Document) Selection() Range {
	return d.sel
}

func (d *Document) clamp(p Position) Position {
	p.Line = units.Clamp(p.Line, 0, len(d.lines)-1)
	p.Col = units.Clamp(p.Col, 0, units.Len(d.lines[p.Line]))
	return p
}
