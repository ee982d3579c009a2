package wordspan

import "unicode/utf8"

// Locator finds runs of word runes around an offset.
// A Locator is immutable and safe for concurrent use.
type Locator struct {
	class Classifier
}

// Option configures a Locator.
type Option func(*Locator)

// WithClassifier replaces the default word rune classification.
func WithClassifier(c Classifier) Option {
	return func(l *Locator) {
		if c != nil {
			l.class = c
		}
	}
}

// NewLocator returns a Locator using DefaultClassifier unless overridden.
func NewLocator(opts ...Option) *Locator {
	l := &Locator{class: DefaultClassifier}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var defaultLocator = NewLocator()

// Locate returns the word enclosing offset using the default classifier.
func Locate(text string, offset int) (Span, bool, error) {
	return defaultLocator.Locate(text, offset)
}

// Classifier returns the classifier in use.
func (l *Locator) Classifier() Classifier { return l.class }

// Locate returns the run of word runes that contains offset.
//
// When offset equals the rune count of text, the rune just before it is
// inspected instead, so a word that ends the text is still found. The
// boolean is false when the inspected rune is not a word rune or text is
// empty.
func (l *Locator) Locate(text string, offset int) (Span, bool, error) {
	if err := CheckOffset(text, offset); err != nil {
		return Span{}, false, err
	}
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return Span{}, false, nil
	}
	at := offset
	if at == n {
		at--
	}
	if !l.class.IsWordRune(runes[at]) {
		return Span{}, false, nil
	}
	start := at
	for start > 0 && l.class.IsWordRune(runes[start-1]) {
		start--
	}
	end := at + 1
	for end < n && l.class.IsWordRune(runes[end]) {
		end++
	}
	return Span{Start: start, End: end}, true, nil
}

func runeCount(s string) int { return utf8.RuneCountInString(s) }
