package ulmark

import (
	"testing"

	"github.com/go-test/deep"
)

func TestClassifyMarkdown(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []EmphasisClass
	}{
		{
			name: "mixed delimiters",
			src:  "*star* and _under_",
			want: []EmphasisClass{{Text: "star"}, {Text: "under", Underscore: true}},
		},
		{
			name: "nested strong",
			src:  "_**bold** inside_",
			want: []EmphasisClass{{Text: "bold inside", Underscore: true}},
		},
		{
			name: "code span",
			src:  "`_code_` and *x*",
			want: []EmphasisClass{{Text: "x"}},
		},
		{
			name: "same text",
			src:  "*same* and _same_",
			want: []EmphasisClass{{Text: "same"}, {Text: "same", Underscore: true}},
		},
		{
			name: "asterisk around code span",
			src:  "*`code`* and foo_code_bar",
			want: []EmphasisClass{{Text: "code"}},
		},
		{
			name: "underscore around code span",
			src:  "_`code`_ and *x*",
			want: []EmphasisClass{{Text: "code", Underscore: true}, {Text: "x"}},
		},
		{
			name: "intraword",
			src:  "snake_case_word",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := deep.Equal(ClassifyMarkdown([]byte(tc.src)), tc.want); diff != nil {
				t.Fatalf("unexpected classes: %v", diff)
			}
		})
	}
}

func TestNormalizeInline(t *testing.T) {
	if got := NormalizeInline("  **a**  `b`\n~~c~~ ==d== "); got != "a b c d" {
		t.Fatalf("unexpected normalized text %q", got)
	}
}
