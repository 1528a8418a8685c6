//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"torus-life/internal/app"
	"torus-life/pkg/core"
	"torus-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "optional JSON config file")
	flag.Parse()

	logger, _ := app.NewLogger(os.Stderr)
	if *configPath != "" {
		if err := cfg.ApplyFile(flag.CommandLine, *configPath); err != nil {
			logger.Fatalf("%+v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal(err)
	}

	factory, ok := core.Lookup(life.Name)
	if !ok {
		logger.Fatalf("unknown sim %q (registered: %v)", life.Name, core.Names())
	}
	s := factory(map[string]string{
		"w":       strconv.Itoa(cfg.Width),
		"h":       strconv.Itoa(cfg.Height),
		"pattern": cfg.Pattern,
		"seed":    strconv.FormatInt(cfg.Seed, 10),
	})

	game := app.New(s, cfg.Scale, cfg.Seed)
	size := s.Size()

	ebiten.SetWindowTitle("torus-life — " + s.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	logger.Printf("starting %dx%d %s grid at %d tps", size.W, size.H, cfg.Pattern, cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
