package ulmark

import (
	"unicode"

	"pkt.systems/ulmark/internal/units"
)

func isStopUnit(c uint16) bool {
	switch c {
	case '_', '*', '~', '`', '[', ']', '(', ')', '|', '#':
		return true
	}
	return unicode.IsSpace(rune(c))
}

// DetectWord returns the run of non-stop characters around col on line.
// Stop characters are whitespace and _ * ~ ` [ ] ( ) | #. When the character
// at col is itself a stop character the empty range (col, col) is returned.
func DetectWord(line string, col int) (int, int) {
	return detectWordUnits(units.Encode(line), col)
}

func detectWordUnits(u []uint16, col int) (int, int) {
	col = units.Clamp(col, 0, len(u))
	if col < len(u) && isStopUnit(u[col]) {
		return col, col
	}
	from := col
	for from > 0 && !isStopUnit(u[from-1]) {
		from--
	}
	to := col
	for to < len(u) && !isStopUnit(u[to]) {
		to++
	}
	return from, to
}
