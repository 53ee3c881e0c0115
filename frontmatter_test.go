package ulmark

import "testing"

func TestFrontMatterRegion(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want [2]int
		ok   bool
	}{
		{name: "yaml", src: "---\ntitle: x\n---\nbody", want: [2]int{0, 16}, ok: true},
		{name: "toml", src: "+++\ntitle = 1\n+++", want: [2]int{0, 17}, ok: true},
		{name: "crlf", src: "---\r\na: b\r\n---\r\nx", want: [2]int{0, 14}, ok: true},
		{name: "bom", src: "\uFEFF---\na: 1\n---", want: [2]int{0, 15}, ok: true},
		{name: "not metadata", src: "---\nplain words\n---"},
		{name: "unclosed", src: "---\na: b\nbody"},
		{name: "thematic break", src: "text\n---\na: b\n---"},
		{name: "empty", src: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := frontMatterRegion(tc.src)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("frontMatterRegion(%q)=%v,%v want %v,%v", tc.src, got, ok, tc.want, tc.ok)
			}
		})
	}
}
