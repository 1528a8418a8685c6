// Command life runs Conway's Game of Life on a toroidal grid in the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"torus-life/internal/app"
	"torus-life/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "optional JSON config file")
	flag.Parse()

	logger, session := app.NewLogger(os.Stderr)
	if *configPath != "" {
		if err := cfg.ApplyFile(flag.CommandLine, *configPath); err != nil {
			logger.Fatalf("%+v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal(err)
	}

	sim, err := cfg.NewSim()
	if err != nil {
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case app.ModeTUI:
		screen, err := term.NewScreen()
		if err != nil {
			logger.Fatalf("%+v", err)
		}
		err = term.Run(ctx, screen, sim, term.Options{TPS: cfg.TPS, Logger: logger})
		if err != nil {
			logger.Fatalf("%+v", err)
		}
	default:
		start := time.Now()
		interval := time.Duration(0)
		if cfg.Generations == 0 {
			interval = time.Second / time.Duration(cfg.TPS)
		}
		if err := app.RunText(ctx, os.Stdout, sim, cfg.Generations, interval); err != nil {
			logger.Fatalf("%+v", err)
		}
		logger.Printf("session %s: %d generations in %s", session, sim.Grid().Generation(), time.Since(start))
	}
}
