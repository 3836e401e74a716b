package decay

import "image/color"

// decayPalette maps states 0..4 to display colors: dead cells are black and
// the live tiers run ember red through orange and yellow up to white-hot.
var decayPalette = []color.RGBA{
	StateDead:      {R: 10, G: 10, B: 12, A: 255},
	StateEmber:     {R: 200, G: 40, B: 30, A: 255},
	StateDecayLow:  {R: 235, G: 130, B: 20, A: 255},
	StateDecayHigh: {R: 245, G: 210, B: 60, A: 255},
	StateAlive:     {R: 250, G: 250, B: 245, A: 255},
}

// Palette exposes the fixed five-entry palette, indexed by cell state.
func (w *World) Palette() []color.RGBA {
	return decayPalette
}
