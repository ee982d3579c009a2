package main

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"example.com/wordpeek/pkg/logs"
	"example.com/wordpeek/pkg/wordspan"
)

const labelWidth = 9

type result struct {
	name string
	span wordspan.Span
	ok   bool
	err  error
}

func lookup(text string, offset int, strategies []wordspan.Strategy, log *logs.Logger) []result {
	out := make([]result, 0, len(strategies))
	for _, s := range strategies {
		span, ok, err := s.Locate(text, offset)
		out = append(out, result{name: s.Name(), span: span, ok: ok, err: err})
		fields := map[string]any{"strategy": s.Name(), "offset": offset, "found": ok}
		if ok {
			fields["start"] = span.Start
			fields["end"] = span.End
			fields["word"] = span.Text(text)
		}
		if err != nil {
			fields["error"] = err.Error()
		}
		log.Event("lookup", fields)
	}
	return out
}

func (r result) describe(text string) string {
	switch {
	case r.err != nil:
		return "error: " + r.err.Error()
	case !r.ok:
		return "(none)"
	}
	return fmt.Sprintf("%q %s", r.span.Text(text), r.span)
}

// displayRunes replaces control characters so each rune occupies at least
// one terminal cell on a single line.
func displayRunes(text string) []rune {
	runes := []rune(text)
	for i, r := range runes {
		if unicode.IsControl(r) {
			runes[i] = ' '
		}
	}
	return runes
}

func caretColumn(text string, offset int) int {
	return runewidth.StringWidth(string(displayRunes(text)[:offset]))
}

func writeReport(w io.Writer, text string, offset int, strategies []wordspan.Strategy, log *logs.Logger) error {
	if err := wordspan.CheckOffset(text, offset); err != nil {
		return err
	}
	label := func(s string) string { return fmt.Sprintf("%-*s", labelWidth, s) }

	fmt.Fprintf(w, "%s%s\n", label("text:"), string(displayRunes(text)))
	fmt.Fprintf(w, "%s%s^\n", label(""), strings.Repeat(" ", caretColumn(text, offset)))
	fmt.Fprintf(w, "%s%d\n", label("offset:"), offset)
	for _, r := range lookup(text, offset, strategies, log) {
		if r.err != nil {
			return r.err
		}
		fmt.Fprintf(w, "%s%s\n", label(r.name+":"), r.describe(text))
	}
	return nil
}
