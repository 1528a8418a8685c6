package core

import (
	"slices"
	"testing"
)

type stubSim struct{ steps int }

func (s *stubSim) Name() string { return "stub" }
func (s *stubSim) Size() Size { return Size{W: 2, H: 1} }
func (s *stubSim) Reset(int64) { s.steps = 0 }
func (s *stubSim) Step() { s.steps++ }
func (s *stubSim) Cells() []uint8 { return []uint8{0, 1} }

func TestRegistry(t *testing.T) {
	Register("stub", func(map[string]string) Sim { return &stubSim{} })
	Register("", func(map[string]string) Sim { return &stubSim{} })
	Register("nil", nil)

	f, ok := Lookup("stub")
	if !ok {
		t.Fatal("stub not registered")
	}
	if sim := f(nil); sim.Name() != "stub" {
		t.Fatalf("factory built %q", sim.Name())
	}
	if _, ok := Lookup("nil"); ok {
		t.Fatal("nil factory registered")
	}
	if !slices.Contains(Names(), "stub") || slices.Contains(Names(), "") {
		t.Fatalf("Names() = %v", Names())
	}
	if len(Sims()) != len(Names()) {
		t.Fatal("Sims and Names disagree")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("draw %d differs for equal seeds", i)
		}
	}
}
