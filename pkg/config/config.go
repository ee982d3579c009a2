package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// DefaultText is the sentence shown when no text is configured.
const DefaultText = "This is a test."

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Config holds user configuration values.
type Config struct {
	Text       string
	Strategies []string
	Keymap     map[string]Keybinding
	Theme      Theme
}

type fileConfig struct {
	Text       *string           `yaml:"text"`
	Strategies []string          `yaml:"strategies"`
	Keymap     map[string]string `yaml:"keymap"`
	Theme      map[string]string `yaml:"theme"`
}

// Default returns a Config with the demo sentence, both lookup strategies
// and default key mappings.
func Default() *Config {
	return &Config{
		Text:       DefaultText,
		Strategies: []string{"run", "segment"},
		Keymap:     DefaultKeymap(),
		Theme:      DefaultTheme(),
	}
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		"quit":      mustParse("Ctrl+Q"),
		"left":      mustParse("Left"),
		"right":     mustParse("Right"),
		"wordleft":  mustParse("Ctrl+B"),
		"wordright": mustParse("Ctrl+F"),
		"home":      mustParse("Home"),
		"end":       mustParse("End"),
	}
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned. Values present in the file override the
// defaults one by one.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if fc.Text != nil {
		cfg.Text = *fc.Text
	}
	if len(fc.Strategies) > 0 {
		cfg.Strategies = fc.Strategies
	}
	for cmd, binding := range fc.Keymap {
		kb, err := ParseKeybinding(binding)
		if err != nil {
			return nil, fmt.Errorf("config %s: keymap %s: %w", path, cmd, err)
		}
		cfg.Keymap[cmd] = kb
	}
	if err := cfg.Theme.apply(fc.Theme); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault attempts to read ~/.wordpeek/config.yaml.
func LoadDefault() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	return Load(DefaultPath(home))
}

// DefaultPath returns the configuration path under home.
func DefaultPath(home string) string {
	return filepath.Join(home, ".wordpeek", "config.yaml")
}

var namedKeys = map[string]tcell.Key{
	"left":  tcell.KeyLeft,
	"right": tcell.KeyRight,
	"up":    tcell.KeyUp,
	"down":  tcell.KeyDown,
	"home":  tcell.KeyHome,
	"end":   tcell.KeyEnd,
	"esc":   tcell.KeyEscape,
	"enter": tcell.KeyEnter,
	"tab":   tcell.KeyTab,
}

// ParseKeybinding converts a textual key description into a Keybinding.
// Accepted forms are "Ctrl+<letter>", a named key such as "Left" or
// "Home", and a single printable character.
func ParseKeybinding(s string) (Keybinding, error) {
	s = strings.TrimSpace(s)
	if k, ok := namedKeys[strings.ToLower(s)]; ok {
		return Keybinding{Key: k, Mod: tcell.ModNone}, nil
	}
	if r := []rune(s); len(r) == 1 && r[0] > ' ' {
		return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModNone}, nil
	}
	parts := strings.Split(s, "+")
	if len(parts) != 2 {
		return Keybinding{}, errors.New("invalid keybinding: " + s)
	}
	if !strings.EqualFold(parts[0], "ctrl") {
		return Keybinding{}, errors.New("invalid modifier in keybinding: " + s)
	}
	r := []rune(strings.ToLower(parts[1]))
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, errors.New("invalid key in keybinding: " + s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModCtrl}, nil
}

func mustParse(s string) Keybinding {
	kb, err := ParseKeybinding(s)
	if err != nil {
		panic(err)
	}
	return kb
}

// Matches returns true if the binding matches the provided event.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	if k.Key == ev.Key() && k.Mod == ev.Modifiers() && (k.Key != tcell.KeyRune || k.Rune == ev.Rune()) {
		return true
	}
	// Terminals report Ctrl+<letter> as the matching control key.
	if k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl && k.Rune >= 'a' && k.Rune <= 'z' {
		return ev.Key() == tcell.KeyCtrlA+tcell.Key(k.Rune-'a')
	}
	return false
}

// String renders the binding in the form accepted by ParseKeybinding.
func (k Keybinding) String() string {
	if k.Key == tcell.KeyRune {
		if k.Mod == tcell.ModCtrl {
			return "Ctrl+" + strings.ToUpper(string(k.Rune))
		}
		return string(k.Rune)
	}
	for name, key := range namedKeys {
		if key == k.Key {
			return strings.ToUpper(name[:1]) + name[1:]
		}
	}
	return tcell.NewEventKey(k.Key, k.Rune, k.Mod).Name()
}
