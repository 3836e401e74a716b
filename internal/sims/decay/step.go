package decay

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"decay-ca/internal/core"
)

// Step advances one generation: every cell of cur is read, its successor
// written to the same coordinate of nxt. All reads come from cur and all
// writes go to nxt, so iteration order cannot affect the result. The
// dimension check happens before any write; on mismatch nxt is untouched.
func Step(cur, nxt *core.Grid) error {
	if err := checkPair(cur, nxt); err != nil {
		return err
	}
	stepRows(cur, nxt, 0, cur.Height())
	return nil
}

// StepParallel is Step with rows partitioned into disjoint bands across
// worker goroutines. Each worker writes only its own rows of nxt and reads
// only cur, so no synchronization beyond the final join is needed.
// workers <= 0 means one worker per CPU.
func StepParallel(cur, nxt *core.Grid, workers int) error {
	if err := checkPair(cur, nxt); err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	h := cur.Height()
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		stepRows(cur, nxt, 0, h)
		return nil
	}

	var (
		eg          errgroup.Group
		rowsPerBand = (h + workers - 1) / workers
	)
	for i := 0; i < workers; i++ {
		y0 := i * rowsPerBand
		y1 := min(y0+rowsPerBand, h)
		if y0 >= h {
			break
		}
		eg.Go(func() error {
			stepRows(cur, nxt, y0, y1)
			return nil
		})
	}
	return eg.Wait()
}

func stepRows(cur, nxt *core.Grid, y0, y1 int) {
	w := cur.Width()
	src := cur.Cells()
	dst := nxt.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			dst[idx] = NextState(src[idx], CollectStats(cur, x, y))
		}
	}
}

func checkPair(cur, nxt *core.Grid) error {
	if cur.Width() != nxt.Width() || cur.Height() != nxt.Height() {
		return errors.Wrapf(core.ErrDimensionMismatch, "current %dx%d, scratch %dx%d",
			cur.Width(), cur.Height(), nxt.Width(), nxt.Height())
	}
	return nil
}
