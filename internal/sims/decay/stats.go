package decay

import "decay-ca/internal/core"

// NeighborStats aggregates one cell's eight Moore neighbors. GE[t] counts
// neighbors whose state is >= t for t in 1..4 (GE[0] is unused), so GE[3]
// includes both DecayHigh and Alive neighbors. Sum is the raw sum of the
// eight neighbor values; with states it is only meaningful through GE[1]
// (the "any life at all" count) but is kept for diagnostics.
type NeighborStats struct {
	GE  [NumStates]uint8
	Sum int
}

// CollectStats reads the eight torus-wrapped neighbors of (x, y). It never
// reads the cell itself and never mutates the grid.
func CollectStats(g *core.Grid, x, y int) NeighborStats {
	var st NeighborStats
	w, h := g.Width(), g.Height()
	cells := g.Cells()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			v := cells[ny*w+nx]
			st.Sum += int(v)
			for t := uint8(1); t <= v && t < NumStates; t++ {
				st.GE[t]++
			}
		}
	}
	return st
}
