package life

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Parse errors.
var (
	ErrEmptyPattern  = errors.New("empty pattern")
	ErrRaggedPattern = errors.New("rows differ in length")
)

// Parse builds a grid from a textual projection. Besides the render glyphs
// it accepts '#' or 'O' for live cells and '.' for dead ones. Blank lines
// are skipped.
func Parse(text string) (*Grid, error) {
	var rows [][]Cell
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r \t")
		if line == "" {
			continue
		}
		row := make([]Cell, 0, utf8.RuneCountInString(line))
		for _, r := range line {
			switch r {
			case AliveGlyph, '#', 'O':
				row = append(row, Alive)
			case DeadGlyph, '.':
				row = append(row, Dead)
			default:
				return nil, errors.Errorf("line %d: unexpected character %q", n+1, r)
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, errors.Wrapf(ErrRaggedPattern, "line %d has %d cells, want %d", n+1, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyPattern
	}

	width := len(rows[0])
	return NewWithSeed(width, len(rows), func(i int) Cell {
		return rows[i/width][i%width]
	}), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}
