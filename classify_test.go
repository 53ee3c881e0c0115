package ulmark

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		line     string
		from, to int
		want     UnderlineState
	}{
		{
			name: "content between marks",
			line: "_hello_", from: 1, to: 6,
			want: UnderlineState{Underlined: true, MarkFrom: 0, MarkTo: 7, ContentFrom: 1, ContentTo: 6},
		},
		{
			name: "marks included",
			line: "_hello_", from: 0, to: 7,
			want: UnderlineState{Underlined: true, MarkFrom: 0, MarkTo: 7, ContentFrom: 1, ContentTo: 6},
		},
		{
			name: "inside a sentence",
			line: "say _hi_ now", from: 5, to: 7,
			want: UnderlineState{Underlined: true, MarkFrom: 4, MarkTo: 8, ContentFrom: 5, ContentTo: 7},
		},
		{
			name: "plain",
			line: "hello", from: 0, to: 5,
			want: UnderlineState{MarkFrom: 0, MarkTo: 5, ContentFrom: 0, ContentTo: 5},
		},
		{
			name: "strong content",
			line: "__x__", from: 2, to: 3,
			want: UnderlineState{MarkFrom: 2, MarkTo: 3, ContentFrom: 2, ContentTo: 3},
		},
		{
			name: "strong opening pair",
			line: "__x__", from: 0, to: 5,
			want: UnderlineState{MarkFrom: 0, MarkTo: 5, ContentFrom: 0, ContentTo: 5},
		},
		{
			name: "inner pair of strong run",
			line: "__x__", from: 1, to: 4,
			want: UnderlineState{Underlined: true, MarkFrom: 1, MarkTo: 4, ContentFrom: 2, ContentTo: 3},
		},
		{
			name: "two marks only",
			line: "__", from: 0, to: 2,
			want: UnderlineState{MarkFrom: 0, MarkTo: 2, ContentFrom: 0, ContentTo: 2},
		},
		{
			name: "utf16 columns",
			line: "😀_é_", from: 3, to: 4,
			want: UnderlineState{Underlined: true, MarkFrom: 2, MarkTo: 5, ContentFrom: 3, ContentTo: 4},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tc.line, tc.from, tc.to); got != tc.want {
				t.Fatalf("Classify(%q, %d, %d)=%+v want %+v", tc.line, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestClassifyOutOfBoundsNeverPanics(t *testing.T) {
	for _, r := range [][2]int{{-5, 99}, {0, 0}, {7, 3}, {100, 200}, {-1, 1}} {
		got := Classify("_a_", r[0], r[1])
		if got.Underlined {
			t.Fatalf("Classify(%v) unexpectedly underlined: %+v", r, got)
		}
	}
}

func TestClassifyIsStableOnContent(t *testing.T) {
	lines := []string{"_a_", "x _ab_ y", "one _two three_ four", "_😀_"}
	for _, line := range lines {
		for from := 0; from <= len(line); from++ {
			for to := from; to <= len(line); to++ {
				st := Classify(line, from, to)
				if !st.Underlined {
					continue
				}
				again := Classify(line, st.ContentFrom, st.ContentTo)
				if !again.Underlined || again != st {
					t.Fatalf("%q [%d,%d): content reclassified as %+v, first %+v", line, from, to, again, st)
				}
			}
		}
	}
}

func TestClassifyDoubleUnderscoreImmunity(t *testing.T) {
	lines := []string{"__x__", "a __x__ b", "__bold__ text", "pre __y__"}
	for _, line := range lines {
		start := strings.Index(line, "__")
		end := start + 2
		for end < len(line) && line[end] != '_' {
			end++
		}
		end += 2
		ranges := [][2]int{
			{start + 2, end - 2},
			{start, end},
		}
		for _, r := range ranges {
			if st := Classify(line, r[0], r[1]); st.Underlined {
				t.Fatalf("Classify(%q, %d, %d) matched strong markup: %+v", line, r[0], r[1], st)
			}
		}
	}
}
