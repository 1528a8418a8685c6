package app

import (
	"slices"
	"testing"

	"torus-life/pkg/life"
)

func TestUseRandomPatternChangesReseed(t *testing.T) {
	sim, err := life.NewSim(life.DefaultConfig())
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if err := UseRandomPattern(sim); err != nil {
		t.Fatalf("UseRandomPattern: %v", err)
	}
	sim.Reset(7)
	first := sim.Grid().Cells()
	sim.Reset(8)
	if sim.Grid().Equal(life.NewDefault()) {
		t.Fatal("reseed still shows the classic pattern")
	}
	if slices.Equal(first, sim.Grid().Cells()) {
		t.Fatal("different seeds produced the same grid")
	}
}
