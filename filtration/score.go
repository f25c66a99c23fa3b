package filtration

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cubix/grid"
)

// Score evaluates f at the centroid of every cell of g and returns the
// densities indexed by cell index. Evaluation is data-parallel: the cell
// range is split into contiguous chunks, one goroutine per chunk, each
// writing its own region of the shared result slice. There is no
// cross-cell dependency, so no locking is required.
//
// Cancellation is observed per cell via ctx; the first failure cancels
// the remaining workers and Score returns a nil slice.
//
// Complexity: O(total·cost(f)/workers) time, O(total) memory.
func Score(ctx context.Context, g *grid.Grid, f DensityFunc, workers int) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if f == nil {
		return nil, ErrNilDensity
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	total := g.CellCount()
	if workers > total {
		workers = total
	}

	values := make([]float64, total)
	eg, ctx := errgroup.WithContext(ctx)
	chunk := (total + workers - 1) / workers
	for lo := 0; lo < total; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > total {
			hi = total
		}
		eg.Go(func() error {
			for idx := lo; idx < hi; idx++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				cell, err := g.Cell(idx)
				if err != nil {
					return err
				}
				v, err := f(g.Centroid(cell))
				if err != nil {
					return fmt.Errorf("cell %d: %w: %w", idx, ErrDensityEval, err)
				}
				if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
					return fmt.Errorf("cell %d: %w: got %v", idx, ErrBadDensity, v)
				}
				values[idx] = v
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return values, nil
}
