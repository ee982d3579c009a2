// Command wordpeek shows which word encloses a character offset, found by
// each configured lookup strategy.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"example.com/wordpeek/pkg/config"
	"example.com/wordpeek/pkg/logs"
	"example.com/wordpeek/pkg/wordspan"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	text       string
	textSet    bool
	offset     int
	utf16      bool
	strategy   string
	configPath string
	tui        bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("wordpeek", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.text, "text", "", "text to inspect (default from config)")
	fs.IntVar(&o.offset, "offset", 0, "character offset into the text")
	fs.BoolVar(&o.utf16, "utf16", false, "interpret -offset as UTF-16 code units")
	fs.StringVar(&o.strategy, "strategy", "", "comma separated strategies, or \"all\" (default from config)")
	fs.StringVar(&o.configPath, "config", "", "config file (default ~/.wordpeek/config.yaml)")
	fs.BoolVar(&o.tui, "tui", false, "start the interactive view")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "text" {
			o.textSet = true
		}
	})
	return o, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

func strategyNames(flagValue string, cfg *config.Config) []string {
	switch flagValue {
	case "":
		return cfg.Strategies
	case "all":
		return wordspan.StrategyNames()
	}
	var names []string
	for _, name := range strings.Split(flagValue, ",") {
		names = append(names, strings.TrimSpace(name))
	}
	return names
}

// runeOffset converts the offset flag into a rune offset. UTF-16 offsets
// are range checked against the UTF-16 length before conversion.
func runeOffset(text string, offset int, utf16 bool) (int, error) {
	if !utf16 {
		return offset, nil
	}
	if n := wordspan.UTF16Len(text); offset < 0 || offset > n {
		return 0, &wordspan.OffsetError{Offset: offset, Length: n}
	}
	return wordspan.RuneOffsetFromUTF16(text, offset), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "wordpeek: %v\n", err)
		return 1
	}
	text := cfg.Text
	if o.textSet {
		text = o.text
	}
	strategies, err := wordspan.StrategiesByName(strategyNames(o.strategy, cfg))
	if err != nil {
		fmt.Fprintf(stderr, "wordpeek: %v (known: %s)\n", err, strings.Join(wordspan.StrategyNames(), ", "))
		return 2
	}

	log := logs.NewFromEnv()
	defer log.Close()

	offset, err := runeOffset(text, o.offset, o.utf16)
	if err == nil {
		err = wordspan.CheckOffset(text, offset)
	}
	if err != nil {
		log.Event("invalid_offset", map[string]any{"offset": o.offset, "utf16": o.utf16, "error": err.Error()})
		fmt.Fprintf(stderr, "wordpeek: %v\n", err)
		return 2
	}

	if o.tui {
		v := newView(cfg, text, offset, strategies, log)
		if err := runTUI(v); err != nil {
			fmt.Fprintf(stderr, "wordpeek: %v\n", err)
			return 1
		}
		return 0
	}
	if err := writeReport(stdout, text, offset, strategies, log); err != nil {
		fmt.Fprintf(stderr, "wordpeek: %v\n", err)
		if errors.Is(err, wordspan.ErrInvalidOffset) {
			return 2
		}
		return 1
	}
	return 0
}
