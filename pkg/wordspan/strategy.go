package wordspan

import (
	"fmt"
	"sort"
)

// Strategy is a named word lookup. Implementations honor the Locate
// contract: rune offsets, ErrInvalidOffset for out-of-range input, and a
// false result when no word encloses the offset.
type Strategy interface {
	Name() string
	Locate(text string, offset int) (Span, bool, error)
}

// Strategy names understood by StrategyByName.
const (
	StrategyRun     = "run"
	StrategySegment = "segment"
)

// RunStrategy adapts a Locator to the Strategy interface.
type RunStrategy struct {
	*Locator
}

// NewRunStrategy returns a RunStrategy. A nil locator uses the defaults.
func NewRunStrategy(l *Locator) *RunStrategy {
	if l == nil {
		l = NewLocator()
	}
	return &RunStrategy{Locator: l}
}

// Name implements Strategy.
func (*RunStrategy) Name() string { return StrategyRun }

var registry = map[string]func() Strategy{
	StrategyRun:     func() Strategy { return NewRunStrategy(nil) },
	StrategySegment: func() Strategy { return NewSegmentStrategy(nil) },
}

// StrategyNames lists the registered strategy names in sorted order.
func StrategyNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StrategyByName returns a fresh strategy with default settings.
func StrategyByName(name string) (Strategy, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return ctor(), nil
}

// StrategiesByName resolves every name, failing on the first unknown one.
func StrategiesByName(names []string) ([]Strategy, error) {
	out := make([]Strategy, 0, len(names))
	for _, name := range names {
		s, err := StrategyByName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
