package wordspan

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// SegmentStrategy locates words with Unicode word segmentation (UAX #29).
//
// The segment containing the offset is returned when it holds at least one
// word rune. Segmentation keeps forms such as "don't" or "3.14" together
// where a RunStrategy splits them.
type SegmentStrategy struct {
	class Classifier
}

// NewSegmentStrategy returns a SegmentStrategy. A nil classifier uses
// DefaultClassifier to tell words from separators.
func NewSegmentStrategy(c Classifier) *SegmentStrategy {
	if c == nil {
		c = DefaultClassifier
	}
	return &SegmentStrategy{class: c}
}

// Name implements Strategy.
func (*SegmentStrategy) Name() string { return StrategySegment }

// Locate implements Strategy.
func (s *SegmentStrategy) Locate(text string, offset int) (Span, bool, error) {
	if err := CheckOffset(text, offset); err != nil {
		return Span{}, false, err
	}
	if text == "" {
		return Span{}, false, nil
	}
	at := offset
	if at == utf8.RuneCountInString(text) {
		at--
	}
	var (
		word  string
		pos   int
		state = -1
		rest  = text
	)
	for len(rest) > 0 {
		word, rest, state = uniseg.FirstWordInString(rest, state)
		size := utf8.RuneCountInString(word)
		if at < pos+size {
			if !s.hasWordRune(word) {
				return Span{}, false, nil
			}
			return Span{Start: pos, End: pos + size}, true, nil
		}
		pos += size
	}
	return Span{}, false, nil
}

func (s *SegmentStrategy) hasWordRune(word string) bool {
	for _, r := range word {
		if s.class.IsWordRune(r) {
			return true
		}
	}
	return false
}
