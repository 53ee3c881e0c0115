package ulmark

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"pkt.systems/ulmark/internal/palette"
	"pkt.systems/ulmark/internal/units"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Theme   Theme
	Context DecorateContext
	Options []RenderOption
}

// Render reads a document and writes it with underline spans painted as
// ANSI: content is underlined and marks are dimmed or suppressed according
// to the decoration context.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	out := RenderText(string(src), req.Width, req.Theme, req.Context, req.Options...)
	if _, err := io.WriteString(req.Writer, out); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

// RenderText paints the visible window of text. Width > 0 word-wraps each
// output line.
func RenderText(text string, width int, theme Theme, ctx DecorateContext, opts ...RenderOption) string {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	styles := theme.Styles()
	regions := FindExclusions(text)
	byLine := make(map[int][]Decoration)
	for _, d := range decorateWithRegions(text, regions, ctx) {
		byLine[d.Line] = append(byLine[d.Line], d)
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	offset := 0
	first := true
	for i, line := range strings.Split(text, "\n") {
		if ctx.ToLine > 0 && i >= ctx.ToLine {
			break
		}
		if i >= ctx.FromLine {
			if !first {
				b.WriteByte('\n')
			}
			first = false
			painted := paintLine(line, offset, regions, byLine[i], styles, cfg)
			if width > 0 {
				painted = wordwrap.String(painted, width)
			}
			b.WriteString(painted)
		}
		offset += units.Len(line) + 1
	}
	return b.String()
}

type role uint8

const (
	roleText role = iota
	roleContent
	roleMark
	roleHidden
	roleExcluded
)

type cell struct {
	role role
	link int
}

func paintLine(line string, offset int, regions []ExclusionRegion, decos []Decoration, styles Styles, cfg renderConfig) string {
	u := units.Encode(line)
	if len(u) == 0 {
		return ""
	}
	cells := make([]cell, len(u))
	for i := range cells {
		cells[i].link = -1
	}
	for idx, r := range regions {
		lo := units.Clamp(r.From-offset, 0, len(u))
		hi := units.Clamp(r.To-offset, lo, len(u))
		for i := lo; i < hi; i++ {
			if cfg.excluded {
				cells[i].role = roleExcluded
			}
			if cfg.osc8 && r.Kind == RegionURL {
				cells[i].link = idx
			}
		}
	}
	for _, d := range decos {
		markRole := roleHidden
		if d.Revealed {
			markRole = roleMark
		}
		cells[d.Span.MarkFrom].role = markRole
		cells[d.Span.ContentTo].role = markRole
		for i := d.Span.ContentFrom; i < d.Span.ContentTo; i++ {
			cells[i].role = roleContent
		}
	}

	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i + 1
		for j < len(cells) && cells[j] == cells[i] {
			j++
		}
		c := cells[i]
		if c.role != roleHidden {
			seg := styled(styleFor(styles, c.role), units.Decode(u[i:j]))
			if c.link >= 0 {
				r := regions[c.link]
				lo := units.Clamp(r.From-offset, 0, len(u))
				hi := units.Clamp(r.To-offset, lo, len(u))
				seg = hyperlink(units.Decode(u[lo:hi]), seg)
			}
			b.WriteString(seg)
		}
		i = j
	}
	return b.String()
}

func styleFor(styles Styles, r role) Style {
	switch r {
	case roleContent:
		return styles.Underline
	case roleMark:
		return styles.Mark
	case roleExcluded:
		return styles.Excluded
	default:
		return styles.Text
	}
}

func styled(s Style, text string) string {
	if s.Prefix == "" {
		return text
	}
	return s.Prefix + text + palette.Reset
}
