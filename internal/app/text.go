package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"torus-life/pkg/life"
)

// RunText writes the current generation of sim followed by the next ones to
// w, one block per generation. With generations == 0 it runs until ctx is
// cancelled. A zero interval prints as fast as possible.
func RunText(ctx context.Context, w io.Writer, sim *life.Sim, generations int, interval time.Duration) error {
	grid := sim.Grid()
	for i := 0; generations == 0 || i <= generations; i++ {
		if i > 0 {
			sim.Step()
		}
		if _, err := fmt.Fprintf(w, "generation %d (population %d)\n", grid.Generation(), grid.Population()); err != nil {
			return errors.Wrap(err, "[RunText] write header")
		}
		if _, err := grid.WriteTo(w); err != nil {
			return errors.Wrap(err, "[RunText] write grid")
		}
		if interval <= 0 {
			if err := ctx.Err(); err != nil {
				return nil
			}
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
	return nil
}
