// Package units converts between UTF-8 strings and UTF-16 code units.
//
// Editor hosts address text in UTF-16 code units, so every column the
// library hands out is measured that way.
package units

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Encode returns the UTF-16 code units of s.
func Encode(s string) []uint16 {
	if s == "" {
		return nil
	}
	out := make([]uint16, 0, len(s))
	for _, r := range s {
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			out = append(out, uint16(r1), uint16(r2))
			continue
		}
		out = append(out, uint16(r))
	}
	return out
}

// Decode returns the UTF-8 string for u. Unpaired surrogates decode to U+FFFD.
func Decode(u []uint16) string {
	if len(u) == 0 {
		return ""
	}
	return string(utf16.Decode(u))
}

// Len returns the length of s in UTF-16 code units.
func Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// Slice returns the text between unit offsets from and to, clamped to s.
func Slice(s string, from, to int) string {
	u := Encode(s)
	from = Clamp(from, 0, len(u))
	to = Clamp(to, from, len(u))
	return Decode(u[from:to])
}

// At returns the unit at i, or 0 when i is out of range.
func At(u []uint16, i int) uint16 {
	if i < 0 || i >= len(u) {
		return 0
	}
	return u[i]
}

// Offsets maps each byte offset of s (0..len(s)) to its UTF-16 unit offset.
// Offsets inside a multi-byte sequence map to the unit offset of that rune.
func Offsets(s string) []int {
	out := make([]int, len(s)+1)
	unit := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		for j := 0; j < size; j++ {
			out[i+j] = unit
		}
		if r >= 0x10000 {
			unit += 2
		} else {
			unit++
		}
		i += size
	}
	out[len(s)] = unit
	return out
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
