package app

import (
	"github.com/pkg/errors"

	"torus-life/pkg/core"
)

type patternSetter interface {
	SetPattern(name string) error
}

// UseRandomPattern makes the next Reset of sim draw a random grid, so a
// fresh seed actually changes what is shown. Sims without selectable
// patterns are left as they are.
func UseRandomPattern(sim core.Sim) error {
	ps, ok := sim.(patternSetter)
	if !ok {
		return nil
	}
	return errors.Wrap(ps.SetPattern("random"), "[UseRandomPattern]")
}
