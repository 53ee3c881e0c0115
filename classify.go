package ulmark

import "pkt.systems/ulmark/internal/units"

// UnderlineState describes whether a range is underlined and where its marks
// and content are. When Underlined is false both ranges equal the queried one.
type UnderlineState struct {
	Underlined  bool
	MarkFrom    int
	MarkTo      int
	ContentFrom int
	ContentTo   int
}

// Classify reports whether [from, to) on line either includes a pair of
// marks or sits directly between one. Marks belonging to a double
// underscore run are never matched.
func Classify(line string, from, to int) UnderlineState {
	return classifyUnits(units.Encode(line), from, to)
}

func classifyUnits(u []uint16, from, to int) UnderlineState {
	switch {
	case to-from >= 2 &&
		isMark(u, from) && isMark(u, to-1) &&
		!isMark(u, from+1):
		return UnderlineState{
			Underlined:  true,
			MarkFrom:    from,
			MarkTo:      to,
			ContentFrom: from + 1,
			ContentTo:   to - 1,
		}
	case from > 0 && to < len(u) &&
		isMark(u, from-1) && isMark(u, to) &&
		!isMark(u, from-2) && !isMark(u, to+1):
		return UnderlineState{
			Underlined:  true,
			MarkFrom:    from - 1,
			MarkTo:      to + 1,
			ContentFrom: from,
			ContentTo:   to,
		}
	}
	return UnderlineState{
		MarkFrom:    from,
		MarkTo:      to,
		ContentFrom: from,
		ContentTo:   to,
	}
}
