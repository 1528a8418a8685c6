package app

import (
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/pkg/errors"

	"torus-life/pkg/life"
)

// Run modes understood by the command-line front end.
const (
	ModeText = "text"
	ModeTUI  = "tui"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Pattern     string `json:"pattern"`
	Seed        int64  `json:"seed"`
	// TPS paces every interactive front end. A text run with a positive
	// Generations count prints as fast as it can and ignores it.
	TPS         int    `json:"tps"`
	Generations int    `json:"generations"`
	Mode        string `json:"mode"`
	Scale       int    `json:"scale"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Width:       def.Width,
		Height:      def.Height,
		Pattern:     def.Pattern,
		Seed:        def.Seed,
		TPS:         10,
		Generations: 10,
		Mode:        ModeText,
		Scale:       8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern ("+strings.Join(life.PatternNames(), ", ")+")")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second for tui, gui and text with -generations 0 (bounded text runs are unpaced)")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to print in text mode (0 = until interrupted)")
	fs.StringVar(&c.Mode, "mode", c.Mode, "front end: text or tui")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the GUI")
}

// LoadFile overlays values from a JSON file onto c. Keys missing from the
// file keep their current value.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate checks the values a run cannot start with.
func (c *Config) Validate() error {
	if err := c.Life().Validate(); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	if c.TPS <= 0 {
		return errors.Errorf("[Validate] tps must be positive, got %d", c.TPS)
	}
	if c.Generations < 0 {
		return errors.Errorf("[Validate] generations must not be negative, got %d", c.Generations)
	}
	if c.Scale <= 0 {
		return errors.Errorf("[Validate] scale must be positive, got %d", c.Scale)
	}
	switch c.Mode {
	case ModeText, ModeTUI:
	default:
		return errors.Errorf("[Validate] unknown mode %q", c.Mode)
	}
	return nil
}

// Life returns the simulation part of the configuration.
func (c *Config) Life() life.Config {
	return life.Config{Width: c.Width, Height: c.Height, Pattern: c.Pattern, Seed: c.Seed}
}

// NewSim builds the simulation described by c.
func (c *Config) NewSim() (*life.Sim, error) {
	return life.NewSim(c.Life())
}

// ApplyFile loads filename into c while keeping the values of flags that
// were set explicitly on fs, so the command line wins over the file.
func (c *Config) ApplyFile(fs *flag.FlagSet, filename string) error {
	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	if err := c.LoadFile(filename); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "[ApplyFile] restore flag -%s", name)
		}
	}
	return nil
}
