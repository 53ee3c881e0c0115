package ulmark

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// EmphasisClass reports, for one rendered single-level emphasis node, whether
// its source used underscore delimiters. Text is the normalized node text.
type EmphasisClass struct {
	Text       string
	Underscore bool
}

var emphasisMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ClassifyMarkdown parses source with goldmark and classifies its emphasis
// nodes with ClassifyTree.
func ClassifyMarkdown(source []byte) []EmphasisClass {
	root := emphasisMarkdown.Parser().Parse(text.NewReader(source))
	return ClassifyTree(root, source)
}

// ClassifyTree walks a rendered tree and reports, in document order, which
// Level 1 emphasis nodes come from underscore spans of source. A node counts
// only when its delimiter reads as an underscore in source and its normalized
// text matches the normalized content of a span Scan finds; each span is
// matched at most once.
func ClassifyTree(root ast.Node, source []byte) []EmphasisClass {
	var candidates []string
	for _, ls := range ScanText(string(source)) {
		for _, sp := range ls.Spans {
			candidates = append(candidates, NormalizeInline(sp.Content(ls.Text)))
		}
	}
	used := make([]bool, len(candidates))

	var out []EmphasisClass
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		em, ok := n.(*ast.Emphasis)
		if !ok || em.Level != 1 {
			return ast.WalkContinue, nil
		}
		class := EmphasisClass{Text: NormalizeInline(nodeText(em, source))}
		if emphasisDelimiter(em, source) == Mark {
			for i, c := range candidates {
				if !used[i] && c == class.Text {
					used[i] = true
					class.Underscore = true
					break
				}
			}
		}
		out = append(out, class)
		return ast.WalkContinue, nil
	})
	return out
}

// emphasisDelimiter returns the delimiter byte of em, read off the source
// in front of its leftmost text, or 0 when it cannot be located. Nested
// emphasis delimiters and code span backticks between the delimiter and that
// text are stepped over.
func emphasisDelimiter(em *ast.Emphasis, source []byte) byte {
	inner := 0
	code := false
	for c := em.FirstChild(); c != nil; c = c.FirstChild() {
		switch n := c.(type) {
		case *ast.Emphasis:
			inner += n.Level
			continue
		case *ast.CodeSpan:
			code = true
			continue
		case *ast.Text:
			k := n.Segment.Start - 1
			if code {
				k = skipBackticks(source, k)
			}
			k -= inner
			if k < 0 || k >= len(source) {
				return 0
			}
			if d := source[k]; d == '*' || d == Mark {
				return d
			}
			return 0
		}
		return 0
	}
	return 0
}

// skipBackticks steps back from k over the optional padding space and the
// opening backtick run of a code span.
func skipBackticks(source []byte, k int) int {
	if k >= 0 && k < len(source) && source[k] == ' ' {
		k--
	}
	for k >= 0 && k < len(source) && source[k] == '`' {
		k--
	}
	return k
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

var inlineMarkers = strings.NewReplacer("*", "", "_", "", "~", "", "`", "", "=", "")

// NormalizeInline strips emphasis, strike, highlight and code markers and
// collapses whitespace so rendered text and source text compare equal.
func NormalizeInline(s string) string {
	return strings.Join(strings.Fields(inlineMarkers.Replace(s)), " ")
}
