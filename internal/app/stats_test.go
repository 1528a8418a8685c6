package app

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 1, 100*time.Millisecond)
	if s.AveragePopulation != 100 {
		t.Fatalf("first average = %v, want 100", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("gen/s = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 1, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("average = %v, want 110", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatal("zero duration must not change gen/s")
	}
	if s.Generations != 2 || s.Population != 200 {
		t.Fatalf("unexpected stats %+v", s)
	}
}

func TestStatsLine(t *testing.T) {
	s := &Stats{Generations: 3, Population: 7, AveragePopulation: 6.5, GenerationsPerSecond: 2}
	want := "Gen: 3 | Living: 7 | Avg: 6.5 | 2.0 gen/s"
	if got := s.Line(); got != want {
		t.Fatalf("Line() = %q, want %q", got, want)
	}
}

func TestStatsUpdateBatch(t *testing.T) {
	s := NewStats()
	s.Update(2, 10, 2, time.Second/30)
	if math.Abs(s.GenerationsPerSecond-60) > 1e-6 {
		t.Fatalf("gen/s = %v, want 60", s.GenerationsPerSecond)
	}
	s.Update(2, 10, 0, time.Second)
	if math.Abs(s.GenerationsPerSecond-60) > 1e-6 {
		t.Fatal("an empty batch must not change gen/s")
	}
}
