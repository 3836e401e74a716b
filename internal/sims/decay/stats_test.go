package decay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decay-ca/internal/core"
)

func mustGrid(t *testing.T, w, h int) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h, NumStates)
	require.NoError(t, err)
	return g
}

func TestCollectStatsCumulativeCounts(t *testing.T) {
	g := mustGrid(t, 5, 5)
	// Neighborhood of (2,2): one neighbor per tier plus a dead one.
	require.NoError(t, g.Set(1, 1, StateEmber))
	require.NoError(t, g.Set(2, 1, StateDecayLow))
	require.NoError(t, g.Set(3, 1, StateDecayHigh))
	require.NoError(t, g.Set(1, 2, StateAlive))

	st := CollectStats(g, 2, 2)
	assert.Equal(t, uint8(4), st.GE[1], "every live neighbor counts at threshold 1")
	assert.Equal(t, uint8(3), st.GE[2])
	assert.Equal(t, uint8(2), st.GE[3], "threshold 3 includes the alive neighbor")
	assert.Equal(t, uint8(1), st.GE[4])
	assert.Equal(t, 1+2+3+4, st.Sum)
}

func TestCollectStatsIgnoresCenterCell(t *testing.T) {
	g := mustGrid(t, 5, 5)
	require.NoError(t, g.Set(2, 2, StateAlive))

	st := CollectStats(g, 2, 2)
	assert.Equal(t, NeighborStats{}, st, "a lone cell has an empty neighborhood")
}

func TestCollectStatsWrapsTorus(t *testing.T) {
	g := mustGrid(t, 4, 4)
	// Diagonal neighbors of the corner (0,0) across all four wrapped edges.
	require.NoError(t, g.Set(3, 3, StateAlive))
	require.NoError(t, g.Set(3, 0, StateDecayHigh))
	require.NoError(t, g.Set(0, 3, StateDecayLow))

	st := CollectStats(g, 0, 0)
	assert.Equal(t, uint8(3), st.GE[1])
	assert.Equal(t, uint8(3), st.GE[2])
	assert.Equal(t, uint8(2), st.GE[3], "wrapped diagonal and edge neighbors count")
	assert.Equal(t, uint8(1), st.GE[4])
	assert.Equal(t, 4+3+2, st.Sum)
}

func TestCollectStatsDoesNotMutate(t *testing.T) {
	g := mustGrid(t, 3, 3)
	require.NoError(t, g.Set(0, 0, StateAlive))
	before := append([]uint8(nil), g.Cells()...)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			CollectStats(g, x, y)
		}
	}
	assert.Equal(t, before, g.Cells())
}
