package app

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"torus-life/pkg/life"
)

func TestRunTextPrintsGenerations(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 4, 4
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	var out strings.Builder
	if err := RunText(context.Background(), &out, sim, 2, 0); err != nil {
		t.Fatalf("RunText: %v", err)
	}

	ref := life.New(4, 4)
	want := "generation 0 (population 9)\n" + ref.Render()
	ref.Tick()
	want += "generation 1 (population " + strconv.Itoa(ref.Population()) + ")\n" + ref.Render()
	ref.Tick()
	want += "generation 2 (population " + strconv.Itoa(ref.Population()) + ")\n" + ref.Render()

	if out.String() != want {
		t.Fatalf("output =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestRunTextStopsOnCancel(t *testing.T) {
	sim, err := NewConfig().NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out strings.Builder
	if err := RunText(ctx, &out, sim, 0, 0); err != nil {
		t.Fatalf("RunText: %v", err)
	}
	if strings.Count(out.String(), "generation ") != 1 {
		t.Fatalf("expected a single generation, got:\n%s", out.String())
	}
}
