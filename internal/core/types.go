package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
// Cells exposes the current generation as palette indices; Palette maps
// those indices to colors for whatever front-end consumes the sim.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
	Palette() []color.RGBA
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
