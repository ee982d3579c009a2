package wordspan

import "unicode"

// Classifier decides which runes belong to words.
type Classifier interface {
	IsWordRune(r rune) bool
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(r rune) bool

// IsWordRune calls f(r).
func (f ClassifierFunc) IsWordRune(r rune) bool { return f(r) }

// DefaultClassifier accepts the runes reported by IsWordRune.
var DefaultClassifier Classifier = ClassifierFunc(IsWordRune)

// IsWordRune reports whether r is considered part of a word.
// Words consist of letters, numbers, combining marks, or connector
// punctuation such as the underscore.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r) || unicode.Is(unicode.Pc, r)
}
