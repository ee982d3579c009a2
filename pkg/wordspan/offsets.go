package wordspan

import (
	"unicode/utf16"
	"unicode/utf8"
)

// RuneOffsetFromByte converts a byte offset into text to a rune offset.
// A byte offset inside a multi-byte rune maps to that rune. Offsets
// outside the text clamp to 0 or the rune count.
func RuneOffsetFromByte(text string, b int) int {
	if b <= 0 {
		return 0
	}
	if b >= len(text) {
		return utf8.RuneCountInString(text)
	}
	n := 0
	for i := range text {
		if i > b {
			return n - 1
		}
		if i == b {
			return n
		}
		n++
	}
	return n - 1
}

// ByteOffsetFromRune converts a rune offset into text to a byte offset,
// clamping to [0, len(text)].
func ByteOffsetFromRune(text string, r int) int {
	if r <= 0 {
		return 0
	}
	n := 0
	for i := range text {
		if n == r {
			return i
		}
		n++
	}
	return len(text)
}

// RuneOffsetFromUTF16 converts an index in UTF-16 code units, as used by
// platform text widgets, to a rune offset. An index that points at the
// second half of a surrogate pair maps to the rune the pair encodes.
// Indices outside the text clamp.
func RuneOffsetFromUTF16(text string, u int) int {
	if u <= 0 {
		return 0
	}
	cu, n := 0, 0
	for _, r := range text {
		w := utf16.RuneLen(r)
		if w < 1 {
			w = 1
		}
		if u < cu+w {
			return n
		}
		cu += w
		n++
	}
	return n
}

// UTF16Len returns the length of text in UTF-16 code units.
func UTF16Len(text string) int {
	n := 0
	for _, r := range text {
		if w := utf16.RuneLen(r); w > 0 {
			n += w
		} else {
			n++
		}
	}
	return n
}
