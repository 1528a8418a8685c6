package ui

import (
	"slices"
	"testing"

	"torus-life/pkg/core"
	"torus-life/pkg/life"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "World",
		Params: []core.Parameter{core.IntParam("w", "Width", 64)},
	}}}
	got := Lines("life 64x64", "Gen: 1", true, snap)
	want := []string{"life 64x64", "Gen: 1", "[paused]", "", "World", "  Width: 64"}
	if !slices.Equal(got, want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
}

func TestTitle(t *testing.T) {
	sim, err := life.NewSim(life.Config{Width: 8, Height: 4, Pattern: "empty"})
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if got := Title(sim); got != "life 8x4" {
		t.Fatalf("Title() = %q", got)
	}
}
