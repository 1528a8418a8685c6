package life

import (
	"sort"

	"github.com/pkg/errors"

	"torus-life/pkg/core"
)

// Seeder produces the initial state of the cell at a flat index. Grids call
// it exactly once per index, in ascending order.
type Seeder func(index int) Cell

// ClassicSeed marks a cell alive when its index is divisible by 2 or 7.
func ClassicSeed(index int) Cell {
	if index%2 == 0 || index%7 == 0 {
		return Alive
	}
	return Dead
}

// EmptySeed leaves every cell dead.
func EmptySeed(int) Cell { return Dead }

// RandomSeed fills cells from a PCG stream keyed by seed. The same seed
// always yields the same grid.
func RandomSeed(seed int64) Seeder {
	rng := core.NewRNG(seed)
	return func(int) Cell {
		if rng.Bool() {
			return Alive
		}
		return Dead
	}
}

// ErrUnknownPattern is returned for pattern names with no seeder.
var ErrUnknownPattern = errors.New("unknown pattern")

var patterns = map[string]func(seed int64) Seeder{
	"classic": func(int64) Seeder { return ClassicSeed },
	"empty":   func(int64) Seeder { return EmptySeed },
	"random":  RandomSeed,
}

// Pattern resolves a named seeding pattern for the given seed.
func Pattern(name string, seed int64) (Seeder, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "pattern %q", name)
	}
	return p(seed), nil
}

// PatternNames lists the known pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (g *Grid) reseed(seed Seeder) {
	for i := range g.cur {
		g.cur[i] = seed(i)
	}
	g.generation = 0
}
