package ulmark

import "testing"

func TestDetectWord(t *testing.T) {
	t.Parallel()
	tests := []struct {
		line     string
		col      int
		from, to int
	}{
		{line: "hello world", col: 8, from: 6, to: 11},
		{line: "hello world", col: 0, from: 0, to: 5},
		{line: "hello world", col: 5, from: 5, to: 5},
		{line: "hello", col: 5, from: 0, to: 5},
		{line: "_hello_", col: 3, from: 1, to: 6},
		{line: "_hello_", col: 0, from: 0, to: 0},
		{line: "a*b*c", col: 2, from: 2, to: 3},
		{line: "[link](x)", col: 3, from: 1, to: 5},
		{line: "a|b#c~d`e", col: 4, from: 4, to: 5},
		{line: "hash#tag", col: 1, from: 0, to: 4},
		{line: "tab\there", col: 5, from: 4, to: 8},
		{line: "", col: 0, from: 0, to: 0},
		{line: "abc", col: 99, from: 0, to: 3},
		{line: "abc", col: -3, from: 0, to: 3},
		{line: "😀 wörd", col: 4, from: 3, to: 7},
	}
	for _, tc := range tests {
		from, to := DetectWord(tc.line, tc.col)
		if from != tc.from || to != tc.to {
			t.Fatalf("DetectWord(%q, %d)=(%d,%d) want (%d,%d)", tc.line, tc.col, from, to, tc.from, tc.to)
		}
	}
}
