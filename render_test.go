package ulmark

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

var plainTheme = NewTheme("plain", Styles{})

func TestRenderTextHidesMarks(t *testing.T) {
	if got := RenderText("a _b_ c", 0, plainTheme, DecorateContext{}); got != "a b c" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderTextSourceModeKeepsMarks(t *testing.T) {
	got := RenderText("a _b_ c", 0, plainTheme, DecorateContext{Mode: ModeSource})
	if got != "a _b_ c" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderTextDefaultTheme(t *testing.T) {
	got := RenderText("a _b_ c", 0, DefaultTheme(), DecorateContext{})
	if got != "a \x1b[4mb\x1b[0m c" {
		t.Fatalf("unexpected output %q", got)
	}
	got = RenderText("a _b_ c", 0, nil, DecorateContext{Mode: ModeSource})
	mark := "\x1b[2m\x1b[90m_\x1b[0m"
	if want := "a " + mark + "\x1b[4mb\x1b[0m" + mark + " c"; got != want {
		t.Fatalf("unexpected source output %q want %q", got, want)
	}
}

func TestRenderTextLeavesExcludedRegions(t *testing.T) {
	text := "```\n_a_\n```\n_b_ `_c_` $_d_$"
	got := RenderText(text, 0, plainTheme, DecorateContext{})
	if want := "```\n_a_\n```\nb `_c_` $_d_$"; got != want {
		t.Fatalf("unexpected output %q want %q", got, want)
	}
}

func TestRenderTextWraps(t *testing.T) {
	got := RenderText("alpha _beta_ gamma delta epsilon", 12, DefaultTheme(), DecorateContext{})
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapped output, got %q", got)
	}
	for _, line := range lines {
		if w := ansi.PrintableRuneWidth(line); w > 12 {
			t.Fatalf("line %q exceeds width: %d", line, w)
		}
	}
}

func TestRenderTextWindow(t *testing.T) {
	got := RenderText("one\n_two_\nthree", 0, plainTheme, DecorateContext{FromLine: 1, ToLine: 2})
	if got != "two" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderTextOSC8(t *testing.T) {
	got := RenderText("see https://x.io now", 0, plainTheme, DecorateContext{}, WithOSC8(true))
	want := "see " + osc8Start + "https://x.io" + osc8Sep + "https://x.io" + osc8End + " now"
	if got != want {
		t.Fatalf("unexpected output %q want %q", got, want)
	}
	if got := RenderText("see https://x.io now", 0, plainTheme, DecorateContext{}); got != "see https://x.io now" {
		t.Fatalf("expected no hyperlink by default, got %q", got)
	}
}

func TestRenderTextExclusionStyle(t *testing.T) {
	th := NewTheme("t", Styles{Excluded: Style{Prefix: "<x>"}})
	got := RenderText("a `_c_` _d_", 0, th, DecorateContext{}, WithExclusionStyle(true))
	if want := "a <x>`_c_`\x1b[0m d"; got != want {
		t.Fatalf("unexpected output %q want %q", got, want)
	}
}

func TestRenderWritesOutput(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader("x _y_"),
		Writer: &out,
		Theme:  plainTheme,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.String() != "x y" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRenderRequiresReaderAndWriter(t *testing.T) {
	if err := Render(RenderRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
	if err := Render(RenderRequest{Reader: strings.NewReader("x")}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}
