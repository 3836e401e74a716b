package decay

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"decay-ca/internal/core"
)

func TestStepDimensionMismatch(t *testing.T) {
	cur := mustGrid(t, 4, 4)
	nxt := mustGrid(t, 5, 4)
	require.NoError(t, nxt.Set(0, 0, StateDecayHigh))

	err := Step(cur, nxt)
	if !errors.Is(err, core.ErrDimensionMismatch) {
		t.Fatalf("Step with mismatched grids: err = %v, want ErrDimensionMismatch", err)
	}
	if got := nxt.Get(0, 0); got != StateDecayHigh {
		t.Fatalf("scratch grid mutated before mismatch check: got %d", got)
	}

	if err := StepParallel(cur, nxt, 4); !errors.Is(err, core.ErrDimensionMismatch) {
		t.Fatalf("StepParallel mismatch err = %v, want ErrDimensionMismatch", err)
	}
}

func TestStepReadsOnlyCurrentGeneration(t *testing.T) {
	// A horizontal triple of alive cells. If any write leaked back into the
	// read side, the births above and below the center would change the
	// ends' neighborhoods mid-scan; the frozen-snapshot contract keeps the
	// outcome independent of raster order.
	cur := mustGrid(t, 5, 5)
	nxt := mustGrid(t, 5, 5)
	for _, x := range []int{1, 2, 3} {
		require.NoError(t, cur.Set(x, 2, StateAlive))
	}
	before := append([]uint8(nil), cur.Cells()...)

	require.NoError(t, Step(cur, nxt))

	if !slices.Equal(before, cur.Cells()) {
		t.Fatal("Step mutated the current grid")
	}

	want := map[[2]int]uint8{
		{2, 2}: StateAlive,     // two alive neighbors, survives
		{1, 2}: StateDecayHigh, // one alive neighbor, decays
		{3, 2}: StateDecayHigh,
		{2, 1}: StateEmber, // three live neighbors, births
		{2, 3}: StateEmber,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			expected := want[[2]int{x, y}]
			if got := nxt.Get(x, y); got != expected {
				t.Fatalf("cell (%d,%d) = %d, want %d", x, y, got, expected)
			}
		}
	}
}

func TestStepParallelMatchesSerial(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 48
	cfg.Seed = 4242

	serial, err := NewWithConfig(cfg)
	require.NoError(t, err)
	serial.Reset(0)

	parCur := mustGrid(t, cfg.Width, cfg.Height)
	parNxt := mustGrid(t, cfg.Width, cfg.Height)
	copy(parCur.Cells(), serial.Cells())

	for i := 0; i < 8; i++ {
		serial.Step()
		require.NoError(t, StepParallel(parCur, parNxt, 5))
		parCur, parNxt = parNxt, parCur

		if !slices.Equal(serial.Cells(), parCur.Cells()) {
			t.Fatalf("parallel step diverged from serial at generation %d", i+1)
		}
	}
}

func TestStepDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 30
	cfg.Seed = 77

	a, err := NewWithConfig(cfg)
	require.NoError(t, err)
	b, err := NewWithConfig(cfg)
	require.NoError(t, err)
	a.Reset(0)
	b.Reset(0)

	for i := 0; i < 20; i++ {
		a.Step()
		b.Step()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("identical worlds diverged at generation %d", i+1)
		}
	}
}
