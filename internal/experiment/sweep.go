package experiment

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/odestep/internal/config"
)

// Sweep runs cfg once per initial state in x0s. Runs share nothing and are
// spread over at most workers goroutines (NumCPU when workers <= 0); each
// run is itself sequential. Results keep the order of x0s. The first
// failure cancels the runs that have not started.
func (e *Experiment) Sweep(ctx context.Context, cfg *config.Config, x0s [][]float64, workers int) ([]*Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]*Result, len(x0s))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, x0 := range x0s {
		run := cfg.Clone()
		run.X0 = append([]float64(nil), x0...)
		g.Go(func() error {
			res, err := e.Run(gctx, run)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
