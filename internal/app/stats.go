package app

import (
	"fmt"
	"time"
)

// Stats tracks run-time performance of a simulation.
type Stats struct {
	Generations          int
	Population           int
	AveragePopulation    float64
	GenerationsPerSecond float64
	StartTime            time.Time
}

// NewStats returns Stats starting now.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records that steps generations completed over elapsed, leaving
// the grid at generation with population live cells. A non-positive elapsed
// keeps the previous rate.
func (s *Stats) Update(generation, population, steps int, elapsed time.Duration) {
	s.Generations = generation
	s.Population = population
	if elapsed > 0 && steps > 0 {
		s.GenerationsPerSecond = float64(steps) / elapsed.Seconds()
	}

	// Exponential moving average.
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Line formats the stats as a single status line.
func (s *Stats) Line() string {
	return fmt.Sprintf("Gen: %d | Living: %d | Avg: %.1f | %.1f gen/s",
		s.Generations, s.Population, s.AveragePopulation, s.GenerationsPerSecond)
}
