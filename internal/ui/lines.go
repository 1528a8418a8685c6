package ui

import (
	"fmt"

	"torus-life/pkg/core"
)

// Lines lays out the HUD text: a title, the status line, a pause marker and
// one line per parameter grouped under its heading.
func Lines(title, status string, paused bool, snap core.ParameterSnapshot) []string {
	lines := []string{title, status}
	if paused {
		lines = append(lines, "[paused]")
	}
	for _, group := range snap.Groups {
		lines = append(lines, "", group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

// Title builds the HUD heading for a simulation.
func Title(sim core.Sim) string {
	size := sim.Size()
	return fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H)
}
