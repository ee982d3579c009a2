package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the colors of the interactive view.
type Theme struct {
	TextForeground tcell.Color
	TextBackground tcell.Color

	CursorForeground tcell.Color
	CursorBackground tcell.Color

	// Word highlights the span found by the first strategy.
	WordForeground tcell.Color
	WordBackground tcell.Color

	StatusForeground tcell.Color
	StatusBackground tcell.Color
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		TextForeground: tcell.ColorWhite,
		TextBackground: tcell.ColorBlack,

		CursorForeground: tcell.ColorBlack,
		CursorBackground: tcell.ColorGreen,

		WordForeground: tcell.ColorBlack,
		WordBackground: tcell.ColorYellow,

		StatusForeground: tcell.ColorBlack,
		StatusBackground: tcell.ColorWhite,
	}
}

func (t *Theme) fields() map[string]*tcell.Color {
	return map[string]*tcell.Color{
		"text_fg":   &t.TextForeground,
		"text_bg":   &t.TextBackground,
		"cursor_fg": &t.CursorForeground,
		"cursor_bg": &t.CursorBackground,
		"word_fg":   &t.WordForeground,
		"word_bg":   &t.WordBackground,
		"status_fg": &t.StatusForeground,
		"status_bg": &t.StatusBackground,
	}
}

func (t *Theme) apply(values map[string]string) error {
	fields := t.fields()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		dst, ok := fields[k]
		if !ok {
			return fmt.Errorf("unknown theme key %q", k)
		}
		*dst = ParseColor(values[k], *dst)
	}
	return nil
}

// Style returns the style for plain text.
func (t Theme) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(t.TextForeground).Background(t.TextBackground)
}

// CursorStyle returns the style for the cell under the cursor.
func (t Theme) CursorStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.CursorForeground).Background(t.CursorBackground)
}

// WordStyle returns the style for the highlighted word.
func (t Theme) WordStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.WordForeground).Background(t.WordBackground)
}

// StatusStyle returns the style for the status bar.
func (t Theme) StatusStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.StatusForeground).Background(t.StatusBackground)
}

// ParseColor returns a tcell.Color from a name or hex like "#aabbcc".
// If parsing fails, it returns the provided fallback.
func ParseColor(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
