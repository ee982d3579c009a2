// Package wordspan finds the word that encloses a character offset in a
// piece of text.
//
// Offsets count runes, not bytes. A valid offset lies in [0, n] where n is
// the rune count of the text; n itself names the end-of-text position.
// Lookups return a half-open Span and a boolean that is false when the
// offset sits on a separator. Out-of-range offsets are caller bugs and
// fail with ErrInvalidOffset.
//
// Two strategies sit behind the same contract: RunStrategy scans runs of
// word runes as decided by a Classifier, and SegmentStrategy uses Unicode
// word segmentation (UAX #29).
package wordspan
