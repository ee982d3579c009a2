package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"example.com/wordpeek/pkg/config"
	"example.com/wordpeek/pkg/logs"
	"example.com/wordpeek/pkg/wordspan"
)

const (
	textRow   = 2
	resultRow = 5
	leftEdge  = 1
)

// view is the interactive caller of the lookup strategies: it owns the
// text and the cursor offset and redraws the results on every move.
type view struct {
	text       string
	cursor     int
	strategies []wordspan.Strategy
	motion     *wordspan.Locator
	keymap     map[string]config.Keybinding
	theme      config.Theme
	log        *logs.Logger
}

func newView(cfg *config.Config, text string, offset int, strategies []wordspan.Strategy, log *logs.Logger) *view {
	return &view{
		text:       text,
		cursor:     offset,
		strategies: strategies,
		motion:     wordspan.NewLocator(),
		keymap:     cfg.Keymap,
		theme:      cfg.Theme,
		log:        log,
	}
}

func (v *view) length() int { return utf8.RuneCountInString(v.text) }

func (v *view) bound(cmd string, ev *tcell.EventKey) bool {
	kb, ok := v.keymap[cmd]
	return ok && kb.Matches(ev)
}

// handleKey applies the command bound to ev and reports whether the view
// should close.
func (v *view) handleKey(ev *tcell.EventKey) bool {
	switch {
	case v.bound("quit", ev):
		return true
	case v.bound("left", ev):
		if v.cursor > 0 {
			v.cursor--
		}
	case v.bound("right", ev):
		if v.cursor < v.length() {
			v.cursor++
		}
	case v.bound("wordleft", ev):
		v.cursor = v.motion.PrevWordStart(v.text, v.cursor)
	case v.bound("wordright", ev):
		v.cursor = v.motion.NextWordStart(v.text, v.cursor)
	case v.bound("home", ev):
		v.cursor = 0
	case v.bound("end", ev):
		v.cursor = v.length()
	default:
		return false
	}
	v.log.Event("key", map[string]any{"key": ev.Name(), "cursor": v.cursor})
	return false
}

func putString(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

func (v *view) statusLine() string {
	var parts []string
	for _, cmd := range []string{"left", "right", "wordleft", "wordright", "home", "end", "quit"} {
		if kb, ok := v.keymap[cmd]; ok {
			parts = append(parts, kb.String()+" "+cmd)
		}
	}
	return strings.Join(parts, "  ")
}

func (v *view) draw(s tcell.Screen) {
	base := v.theme.Style()
	s.SetStyle(base)
	s.Clear()
	width, height := s.Size()

	results := lookup(v.text, v.cursor, v.strategies, v.log)
	var word wordspan.Span
	if len(results) > 0 && results[0].ok {
		word = results[0].span
	}

	putString(s, leftEdge, 0, "wordpeek", base.Bold(true))

	x := leftEdge
	for i, r := range displayRunes(v.text) {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		style := base
		if word.Contains(i) {
			style = v.theme.WordStyle()
		}
		if i == v.cursor {
			style = v.theme.CursorStyle()
		}
		s.SetContent(x, textRow, r, nil, style)
		x += w
	}
	if v.cursor == v.length() {
		s.SetContent(x, textRow, ' ', nil, v.theme.CursorStyle())
	}
	putString(s, leftEdge, textRow+1, fmt.Sprintf("offset %d of %d", v.cursor, v.length()), base)

	for i, r := range results {
		line := fmt.Sprintf("%-*s%s", labelWidth, r.name+":", r.describe(v.text))
		putString(s, leftEdge, resultRow+i, line, base)
	}

	status := v.theme.StatusStyle()
	for col := 0; col < width; col++ {
		s.SetContent(col, height-1, ' ', nil, status)
	}
	putString(s, leftEdge, height-1, v.statusLine(), status)
	s.Show()
}

// loop redraws on every event until the quit binding fires or the screen
// is finalized.
func (v *view) loop(s tcell.Screen) error {
	v.draw(s)
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
			v.draw(s)
		case *tcell.EventResize:
			s.Sync()
			v.draw(s)
		}
	}
}

func runTUI(v *view) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer s.Fini()
	return v.loop(s)
}
