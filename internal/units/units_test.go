package units

import "testing"

func TestLenCountsSurrogatePairs(t *testing.T) {
	cases := map[string]int{
		"":        0,
		"hello":   5,
		"héllo":   5,
		"a😀b":     4,
		"日本語":     3,
		"😀_x_😀": 7,
	}
	for input, want := range cases {
		if got := Len(input); got != want {
			t.Fatalf("Len(%q)=%d want %d", input, got, want)
		}
		if got := len(Encode(input)); got != want {
			t.Fatalf("len(Encode(%q))=%d want %d", input, got, want)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, input := range []string{"plain", "mixed 😀 text", "äöü_ß_"} {
		if got := Decode(Encode(input)); got != input {
			t.Fatalf("round trip %q -> %q", input, got)
		}
	}
}

func TestSliceClamps(t *testing.T) {
	if got := Slice("a😀b", 1, 3); got != "😀" {
		t.Fatalf("unexpected slice: %q", got)
	}
	if got := Slice("abc", -4, 99); got != "abc" {
		t.Fatalf("expected clamped slice, got %q", got)
	}
	if got := Slice("abc", 2, 1); got != "" {
		t.Fatalf("expected empty slice, got %q", got)
	}
}

func TestAtOutOfRange(t *testing.T) {
	u := Encode("_a")
	if At(u, -1) != 0 || At(u, 2) != 0 {
		t.Fatalf("expected zero unit out of range")
	}
	if At(u, 0) != '_' {
		t.Fatalf("expected underscore at 0")
	}
}

func TestOffsets(t *testing.T) {
	got := Offsets("é😀x")
	// é is 2 bytes, 😀 is 4 bytes (2 units), x is 1 byte.
	want := []int{0, 0, 1, 1, 1, 1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("unexpected length %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("offset[%d]=%d want %d", i, got[i], want[i])
		}
	}
}
