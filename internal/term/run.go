package term

import (
	"bytes"
	"context"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"torus-life/internal/app"
	"torus-life/internal/core"
	"torus-life/pkg/life"
)

const (
	frameInterval = time.Second / 30
	helpText      = "  [space] pause  [n] step  [r] reset  [q] quit"
)

// Options tunes a terminal run.
type Options struct {
	TPS    int
	Paused bool
	Logger *log.Logger
}

// NewScreen creates and initialises the terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreen] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreen] failed to init screen")
	}
	return screen, nil
}

type runner struct {
	screen   tcell.Screen
	sim      *life.Sim
	step     *core.FixedStep
	stats    *app.Stats
	logger   *log.Logger
	paused   bool
	cells    []life.Cell
	lastStep time.Time
	now      func() time.Time
}

// Run drives sim on an initialised screen until the user quits or ctx is
// cancelled. The screen is finalised before Run returns. Lines logged while
// the screen is active are held back and written to opts.Logger after it is
// finalised, so they never land on top of the grid.
func Run(ctx context.Context, screen tcell.Screen, sim *life.Sim, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	var held bytes.Buffer
	r := &runner{
		screen: screen,
		sim:    sim,
		step:   core.NewFixedStep(opts.TPS),
		stats:  app.NewStats(),
		logger: log.New(&held, logger.Prefix(), logger.Flags()),
		paused: opts.Paused,
		now:    time.Now,
	}

	ctx, cancel := context.WithCancel(ctx)
	eg, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event)

	eg.Go(func() error {
		return pollEvents(ctx, screen, events)
	})
	eg.Go(func() error {
		defer cancel()
		defer screen.Fini()
		return r.loop(ctx, events)
	})

	err := eg.Wait()
	if _, werr := held.WriteTo(logger.Writer()); werr != nil && err == nil {
		err = werr
	}
	if err != nil {
		return errors.Wrap(err, "[term.Run]")
	}
	logger.Printf("stopped at generation %d, population %d", sim.Grid().Generation(), sim.Grid().Population())
	return nil
}

// pollEvents forwards screen events until the screen is finalised.
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (r *runner) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	r.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if r.handle(ev) {
				return nil
			}
			r.draw()
		case <-ticker.C:
			if r.paused {
				continue
			}
			n := r.step.Due()
			r.advance(n)
			if n > 0 {
				r.draw()
			}
		}
	}
}

// handle applies a screen event and reports whether the run should stop.
func (r *runner) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				r.paused = !r.paused
				r.step.Restart()
			case 'n':
				if r.paused {
					r.advance(1)
				}
			case 'r':
				r.sim.Reset(0)
				r.stats = app.NewStats()
				r.lastStep = time.Time{}
				r.logger.Printf("reset")
			}
		}
	}
	return false
}

// advance steps the sim n generations and records them as one batch, so
// the rate reflects every generation computed since the previous batch.
func (r *runner) advance(n int) {
	if n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		r.sim.Step()
	}
	now := r.now()
	var elapsed time.Duration
	if !r.lastStep.IsZero() {
		elapsed = now.Sub(r.lastStep)
	}
	grid := r.sim.Grid()
	r.stats.Update(grid.Generation(), grid.Population(), n, elapsed)
	r.lastStep = now
}

func (r *runner) draw() {
	grid := r.sim.Grid()
	r.cells = grid.CopyCells(r.cells)
	r.stats.Generations = grid.Generation()
	r.stats.Population = grid.Population()
	status := r.stats.Line()
	if r.paused {
		status += " [paused]"
	}
	Draw(r.screen, r.cells, grid.Width(), status+helpText)
}
