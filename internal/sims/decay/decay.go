package decay

import (
	"github.com/pkg/errors"

	"decay-ca/internal/core"
)

// World owns the current/scratch grid pair for the decaying-life automaton
// and implements core.Sim. The pair is allocated once; each Step fills the
// scratch grid from the current one and swaps their roles, so a generation
// is computed entirely from a frozen snapshot of the previous one.
//
// World is not safe for concurrent use. Paint between steps and running a
// step must be serialized by the caller, which a single game-loop goroutine
// gives for free.
type World struct {
	cfg Config

	cur *core.Grid
	nxt *core.Grid
}

// New returns a decay world with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a decay world configured from the provided options.
// Both grids start all dead.
func NewWithConfig(cfg Config) (*World, error) {
	cur, err := core.NewGrid(cfg.Width, cfg.Height, NumStates)
	if err != nil {
		return nil, errors.WithMessage(err, "decay: current grid")
	}
	nxt, err := core.NewGrid(cfg.Width, cfg.Height, NumStates)
	if err != nil {
		return nil, errors.WithMessage(err, "decay: scratch grid")
	}
	return &World{cfg: cfg, cur: cur, nxt: nxt}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "decay" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.cur.Size() }

// Cells exposes the current generation's cell values.
func (w *World) Cells() []uint8 { return w.cur.Cells() }

// Grid exposes the current grid for read-only consumers.
func (w *World) Grid() *core.Grid { return w.cur }

// Reset repopulates the board deterministically from the seed. A zero seed
// falls back to the configured one. SpawnDensity of the cells start in a
// live tier, the four tiers equally likely; the rest start dead.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	rng := core.NewRNG(effective).Source()

	density := w.cfg.SpawnDensity
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	tier := density / 4
	core.FillWeighted(rng, w.cur.Cells(), []float64{1 - density, tier, tier, tier, tier})
	w.nxt.Clear()
}

// Step advances the automaton by one generation and swaps the grid roles.
// The old current grid becomes the scratch for the next call; no cell data
// is copied.
func (w *World) Step() {
	if w.cfg.Workers != 0 {
		_ = StepParallel(w.cur, w.nxt, w.cfg.Workers)
	} else {
		_ = Step(w.cur, w.nxt)
	}
	w.cur, w.nxt = w.nxt, w.cur
}

// Paint writes state into the live grid, wrapping coordinates onto the
// torus. It is the edit entry point for the input collaborator: state
// StateAlive for a life-giving edit, StateDead for a kill edit. Must only
// be called between steps.
func (w *World) Paint(x, y int, state uint8) error {
	return errors.WithMessagef(w.cur.Set(x, y, state), "paint (%d,%d)", x, y)
}

// Census counts cells per state in the current generation.
func (w *World) Census() [NumStates]int {
	var counts [NumStates]int
	for _, v := range w.cur.Cells() {
		if v < NumStates {
			counts[v]++
		}
	}
	return counts
}

// Population returns the number of non-dead cells.
func (w *World) Population() int {
	c := w.Census()
	total := 0
	for s := StateEmber; s < NumStates; s++ {
		total += c[s]
	}
	return total
}

func init() {
	core.Register("decay", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
