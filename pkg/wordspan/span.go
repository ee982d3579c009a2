package wordspan

import "fmt"

// Span is a half-open range [Start, End) of rune offsets.
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether offset lies inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Text returns the substring of text covered by the span.
func (s Span) Text(text string) string {
	return text[ByteOffsetFromRune(text, s.Start):ByteOffsetFromRune(text, s.End)]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
