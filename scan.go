package ulmark

import (
	"strings"

	"pkt.systems/ulmark/internal/units"
)

// Mark is the delimiter that opens and closes an underline span.
const Mark = '_'

const markString = "_"

// Span is one underscore-delimited span on a line. All fields are UTF-16
// columns: the opening mark is [MarkFrom, ContentFrom) and the closing mark
// is [ContentTo, MarkTo).
type Span struct {
	MarkFrom    int
	ContentFrom int
	ContentTo   int
	MarkTo      int
}

// Content returns the text between the marks of s on line.
func (s Span) Content(line string) string {
	return units.Slice(line, s.ContentFrom, s.ContentTo)
}

func isMark(u []uint16, i int) bool {
	return units.At(u, i) == Mark
}

// pairAt reports whether a span opens at i and, if so, the offset just past
// its closing mark. Content is at least one unit with no mark or newline, so
// the first mark after i closes the span and "__" never pairs.
func pairAt(u []uint16, i int) (int, bool) {
	if !isMark(u, i) {
		return 0, false
	}
	j := i + 1
	for j < len(u) && u[j] != Mark && u[j] != '\n' {
		j++
	}
	if j == i+1 || !isMark(u, j) {
		return 0, false
	}
	return j + 1, true
}

// Scan returns the spans on line from left to right. offset is the UTF-16
// offset of the line within the text regions were computed over; underscores
// inside any region are blanked before pairing.
func Scan(line string, offset int, regions []ExclusionRegion) []Span {
	return scanUnits(Blank(line, offset, regions))
}

func scanUnits(u []uint16) []Span {
	var spans []Span
	for i := 0; i < len(u); {
		end, ok := pairAt(u, i)
		if !ok {
			i++
			continue
		}
		spans = append(spans, Span{
			MarkFrom:    i,
			ContentFrom: i + 1,
			ContentTo:   end - 1,
			MarkTo:      end,
		})
		i = end
	}
	return spans
}

// LineSpans holds the spans found on one line of a text.
type LineSpans struct {
	Line  int
	Text  string
	Spans []Span
}

// ScanText splits text into lines and scans each one. Exclusion regions are
// computed once over the whole text so constructs spanning lines, such as
// fenced code, are honoured.
func ScanText(text string) []LineSpans {
	regions := FindExclusions(text)
	lines := strings.Split(text, "\n")
	out := make([]LineSpans, 0, len(lines))
	offset := 0
	for i, line := range lines {
		out = append(out, LineSpans{
			Line:  i,
			Text:  line,
			Spans: Scan(line, offset, regions),
		})
		offset += units.Len(line) + 1
	}
	return out
}
