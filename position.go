package ulmark

import "fmt"

// Position addresses a column on a line. Col is measured in UTF-16 code units.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Range is a half-open text range between two positions.
type Range struct {
	From Position
	To   Position
}

func (r Range) String() string {
	return fmt.Sprintf("[%s,%s)", r.From, r.To)
}

// Empty reports whether the range selects nothing.
func (r Range) Empty() bool {
	return r.From == r.To
}

// SingleLine reports whether both ends are on the same line.
func (r Range) SingleLine() bool {
	return r.From.Line == r.To.Line
}

// Ordered returns r with From <= To.
func (r Range) Ordered() Range {
	if ComparePositions(r.From, r.To) > 0 {
		return Range{From: r.To, To: r.From}
	}
	return r
}

// ComparePositions returns -1, 0 or 1 when a is before, equal to or after b.
func ComparePositions(a, b Position) int {
	switch {
	case a.Line < b.Line:
		return -1
	case a.Line > b.Line:
		return 1
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	default:
		return 0
	}
}
