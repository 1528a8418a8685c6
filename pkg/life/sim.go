package life

import (
	"strconv"

	"github.com/pkg/errors"

	"torus-life/pkg/core"
)

// Name is the identifier the simulation registers under.
const Name = "life"

// Config controls the dimensions and seeding of a Sim.
type Config struct {
	Width   int
	Height  int
	Pattern string
	Seed    int64
}

// DefaultConfig returns the standard 64x64 classic-seeded configuration.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight, Pattern: "classic", Seed: 42}
}

// FromMap populates a Config from a string map. Invalid values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		if _, known := patterns[v]; known {
			c.Pattern = v
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Validate reports configuration values a grid cannot be built from.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("grid size must be positive, got %dx%d", c.Width, c.Height)
	}
	if _, ok := patterns[c.Pattern]; !ok {
		return errors.Wrapf(ErrUnknownPattern, "pattern %q", c.Pattern)
	}
	return nil
}

// Sim adapts a Grid to the core.Sim contract used by the front ends.
type Sim struct {
	cfg  Config
	grid *Grid
	buf  []uint8
}

// NewSim validates cfg and returns a Sim seeded from it.
func NewSim(cfg Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewSim] invalid config")
	}
	return newSim(cfg), nil
}

func newSim(cfg Config) *Sim {
	seed, _ := Pattern(cfg.Pattern, cfg.Seed)
	g := NewWithSeed(cfg.Width, cfg.Height, seed)
	return &Sim{cfg: cfg, grid: g, buf: make([]uint8, cfg.Width*cfg.Height)}
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return Name }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.w, H: s.grid.h} }

// Grid exposes the underlying grid for read access.
func (s *Sim) Grid() *Grid { return s.grid }

// Reset reseeds the grid with the configured pattern. A zero seed keeps the
// configured one.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.cfg.Seed = seed
	p, _ := Pattern(s.cfg.Pattern, seed)
	s.grid.reseed(p)
}

// SetPattern switches the pattern used by later calls to Reset. The current
// grid is left untouched.
func (s *Sim) SetPattern(name string) error {
	if _, ok := patterns[name]; !ok {
		return errors.Wrapf(ErrUnknownPattern, "[SetPattern] pattern %q", name)
	}
	s.cfg.Pattern = name
	return nil
}

// Step advances the simulation by one generation.
func (s *Sim) Step() { s.grid.Tick() }

// Cells returns the current generation as 0/1 bytes. The slice is owned by
// the Sim and overwritten on the next call.
func (s *Sim) Cells() []uint8 {
	for i, c := range s.grid.cur {
		s.buf[i] = uint8(c)
	}
	return s.buf
}

// Parameters describes the running configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.grid.w),
				core.IntParam("h", "Height", s.grid.h),
				core.StringParam("pattern", "Pattern", s.cfg.Pattern),
				core.Int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", s.grid.generation),
				core.IntParam("population", "Population", s.grid.Population()),
			},
		},
	}}
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Sim {
		return newSim(FromMap(cfg))
	})
}
