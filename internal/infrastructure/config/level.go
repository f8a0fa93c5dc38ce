package config

import (
	"errors"
	"fmt"
	"strings"
)

// Level layout symbols
const (
	SymbolEmpty    = '.'
	SymbolGrass    = '#'
	SymbolBrick    = 'H'
	SymbolHazard   = '*'
	SymbolPlatform = '-'
	SymbolReverser = '|'
	SymbolWalker   = '^'
	SymbolBox      = '='
	SymbolGoal     = 'O'
	SymbolPlayer   = '@'
	SymbolScore    = 'U'
	SymbolSign     = 'S'
)

var (
	ErrInvalidLevel  = errors.New("invalid level")
	ErrUnknownSymbol = errors.New("unknown level symbol")
)

// LevelIndex is the root config for levels/index.yaml.
// Levels are played in the listed order.
type LevelIndex struct {
	Levels []string `yaml:"levels"`
}

// LevelConfig is the root config for a level YAML file
type LevelConfig struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Layout []string `yaml:"layout"`
	Signs  []string `yaml:"signs"` // text for each S anchor, in reading order
}

// Columns returns the width of the layout grid
func (l *LevelConfig) Columns() int {
	if len(l.Layout) == 0 {
		return 0
	}
	return len(l.Layout[0])
}

// Rows returns the height of the layout grid
func (l *LevelConfig) Rows() int { return len(l.Layout) }

// Validate checks the grid is rectangular, uses only known symbols and
// has text for every sign anchor
func (l *LevelConfig) Validate() error {
	if len(l.Layout) == 0 || l.Columns() == 0 {
		return fmt.Errorf("%w %q: empty layout", ErrInvalidLevel, l.ID)
	}

	signs := 0
	for y, row := range l.Layout {
		if len(row) != l.Columns() {
			return fmt.Errorf("%w %q: row %d has %d columns, want %d", ErrInvalidLevel, l.ID, y, len(row), l.Columns())
		}
		for x, r := range row {
			if !KnownSymbol(r) {
				return fmt.Errorf("%w %q at row %d col %d: %w", ErrInvalidLevel, l.ID, y, x, unknown(r))
			}
			if r == SymbolSign {
				signs++
			}
		}
	}
	if signs > len(l.Signs) {
		return fmt.Errorf("%w %q: %d sign anchors but %d sign texts", ErrInvalidLevel, l.ID, signs, len(l.Signs))
	}
	return nil
}

// KnownSymbol reports whether r may appear in a layout
func KnownSymbol(r rune) bool {
	return r == ' ' || strings.ContainsRune(knownSymbols, r)
}

var knownSymbols = string([]rune{
	SymbolEmpty, SymbolGrass, SymbolBrick, SymbolHazard, SymbolPlatform,
	SymbolReverser, SymbolWalker, SymbolBox, SymbolGoal, SymbolPlayer,
	SymbolScore, SymbolSign,
})

func unknown(r rune) error {
	return fmt.Errorf("%w %q", ErrUnknownSymbol, r)
}
