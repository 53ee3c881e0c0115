package ulmark

import "pkt.systems/ulmark/internal/units"

// Toggle adds or removes underline marks for the selection [from, to).
//
// An empty selection expands to the word under the cursor. With no word
// there, the cursor either sits between an empty pair of marks, which is
// deleted, or a fresh empty pair is inserted around it. A selection on one
// line toggles that range and a selection over several lines is decided by
// majority vote.
//
// Toggle reports whether the buffer was changed.
func Toggle(buf Buffer, from, to Position) bool {
	r := Range{From: from, To: to}.Ordered()
	if r.From.Line < 0 || r.From.Line >= buf.LineCount() {
		return false
	}
	switch {
	case r.Empty():
		return toggleAtCursor(buf, r.From)
	case r.SingleLine():
		return ToggleSingleLine(buf, r.From.Line, r.From.Col, r.To.Col)
	default:
		return ToggleMultiLine(buf, r.From, r.To)
	}
}

func toggleAtCursor(buf Buffer, p Position) bool {
	u := units.Encode(buf.Line(p.Line))
	col := units.Clamp(p.Col, 0, len(u))
	if from, to := detectWordUnits(u, col); from < to {
		return ToggleSingleLine(buf, p.Line, from, to)
	}
	if isMark(u, col-1) && isMark(u, col) {
		buf.ReplaceRange("", Position{Line: p.Line, Col: col - 1}, Position{Line: p.Line, Col: col + 1})
		buf.SetCursor(Position{Line: p.Line, Col: col - 1})
		return true
	}
	at := Position{Line: p.Line, Col: col}
	buf.ReplaceRange(markString+markString, at, at)
	buf.SetCursor(Position{Line: p.Line, Col: col + 1})
	return true
}

// ToggleSingleLine toggles marks around [from, to) on line. Removing marks
// leaves the bare content selected; adding them collapses the cursor to just
// after the closing mark. An empty range is a no-op.
func ToggleSingleLine(buf Buffer, line, from, to int) bool {
	u := units.Encode(buf.Line(line))
	from = units.Clamp(from, 0, len(u))
	to = units.Clamp(to, 0, len(u))
	if from > to {
		from, to = to, from
	}
	if from == to {
		return false
	}
	st := classifyUnits(u, from, to)
	content := units.Decode(u[st.ContentFrom:st.ContentTo])
	if st.Underlined {
		start := Position{Line: line, Col: st.MarkFrom}
		buf.ReplaceRange(content, start, Position{Line: line, Col: st.MarkTo})
		buf.SetSelection(start, Position{Line: line, Col: st.MarkFrom + st.ContentTo - st.ContentFrom})
		return true
	}
	buf.ReplaceRange(markString+content+markString, Position{Line: line, Col: from}, Position{Line: line, Col: to})
	buf.SetCursor(Position{Line: line, Col: to + 2})
	return true
}

// lineSlice is the part of one line covered by a multi-line selection.
type lineSlice struct {
	line  int
	from  int
	to    int
	units []uint16
	state UnderlineState
}

// Vote reports whether marks should be removed: true only when a strict
// majority of states is underlined. A tie inserts.
func Vote(states []UnderlineState) bool {
	underlined := 0
	for _, st := range states {
		if st.Underlined {
			underlined++
		}
	}
	return underlined*2 > len(states)
}

// ToggleMultiLine toggles every non-empty line slice of [from, to) towards
// the majority decision: remove marks when most slices are underlined,
// otherwise add them. Slices already in the target state are left alone.
func ToggleMultiLine(buf Buffer, from, to Position) bool {
	r := Range{From: from, To: to}.Ordered()
	var slices []lineSlice
	for i := r.From.Line; i <= r.To.Line; i++ {
		u := units.Encode(buf.Line(i))
		lo, hi := 0, len(u)
		if i == r.From.Line {
			lo = r.From.Col
		}
		if i == r.To.Line && r.To.Col < hi {
			hi = r.To.Col
		}
		if lo < 0 {
			lo = 0
		}
		if lo >= hi {
			continue
		}
		slices = append(slices, lineSlice{line: i, from: lo, to: hi, units: u, state: classifyUnits(u, lo, hi)})
	}
	if len(slices) == 0 {
		return false
	}
	states := make([]UnderlineState, len(slices))
	for i, s := range slices {
		states[i] = s.state
	}
	remove := Vote(states)

	anchor, head := r.From, r.To
	edited := false
	// Last line first so lines not yet visited keep their offsets.
	for k := len(slices) - 1; k >= 0; k-- {
		s := slices[k]
		newFrom, newTo := s.from, s.to
		switch {
		case remove && s.state.Underlined:
			content := units.Decode(s.units[s.state.ContentFrom:s.state.ContentTo])
			buf.ReplaceRange(content, Position{Line: s.line, Col: s.state.MarkFrom}, Position{Line: s.line, Col: s.state.MarkTo})
			newFrom, newTo = s.state.MarkFrom, s.state.MarkTo-2
			edited = true
		case !remove && !s.state.Underlined:
			content := units.Decode(s.units[s.from:s.to])
			buf.ReplaceRange(markString+content+markString, Position{Line: s.line, Col: s.from}, Position{Line: s.line, Col: s.to})
			newTo = s.to + 2
			edited = true
		}
		if s.line == r.From.Line {
			anchor = Position{Line: s.line, Col: newFrom}
		}
		if s.line == r.To.Line {
			head = Position{Line: s.line, Col: newTo}
		}
	}
	if edited {
		buf.SetSelection(anchor, head)
	}
	return edited
}
