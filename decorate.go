package ulmark

import (
	"math"
	"strings"

	"pkt.systems/ulmark/internal/units"
)

// DocumentMode selects how marks are painted.
type DocumentMode uint8

const (
	// ModeLivePreview hides marks unless a selection touches the span.
	ModeLivePreview DocumentMode = iota
	// ModeSource always shows marks.
	ModeSource
)

func (m DocumentMode) String() string {
	if m == ModeSource {
		return "source"
	}
	return "live"
}

// ParseDocumentMode parses "live" or "source".
func ParseDocumentMode(s string) (DocumentMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "live", "live-preview", "preview":
		return ModeLivePreview, true
	case "source":
		return ModeSource, true
	default:
		return ModeLivePreview, false
	}
}

// DecorateContext carries the host state decoration depends on, so that
// Decorate stays a pure function of its arguments.
type DecorateContext struct {
	Mode       DocumentMode
	Selections []Range
	// FromLine and ToLine bound the visible window [FromLine, ToLine).
	// ToLine <= 0 means through the last line.
	FromLine int
	ToLine   int
}

// Decoration is a span to paint on a line. Revealed spans keep their marks
// visible; the others have their marks suppressed.
type Decoration struct {
	Line     int
	Span     Span
	Revealed bool
}

// Decorate returns the decorations for the visible window of text.
// Exclusion regions are computed over the whole text, not just the window.
func Decorate(text string, ctx DecorateContext) []Decoration {
	return decorateWithRegions(text, FindExclusions(text), ctx)
}

func decorateWithRegions(text string, regions []ExclusionRegion, ctx DecorateContext) []Decoration {
	var out []Decoration
	offset := 0
	for i, line := range strings.Split(text, "\n") {
		if ctx.ToLine > 0 && i >= ctx.ToLine {
			break
		}
		if i >= ctx.FromLine {
			for _, sp := range Scan(line, offset, regions) {
				out = append(out, Decoration{
					Line:     i,
					Span:     sp,
					Revealed: ctx.revealed(i, sp),
				})
			}
		}
		offset += units.Len(line) + 1
	}
	return out
}

func (c DecorateContext) revealed(line int, sp Span) bool {
	if c.Mode == ModeSource {
		return true
	}
	for _, sel := range c.Selections {
		sel = sel.Ordered()
		if line < sel.From.Line || line > sel.To.Line {
			continue
		}
		from, to := 0, math.MaxInt
		if sel.From.Line == line {
			from = sel.From.Col
		}
		if sel.To.Line == line {
			to = sel.To.Col
		}
		if from <= sp.MarkTo && to >= sp.MarkFrom {
			return true
		}
	}
	return false
}
