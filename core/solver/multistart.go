package solver

import (
	"context"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/kherve/classplan/core/logger"
	"github.com/kherve/classplan/core/model"
)

// SolveParallel runs cfg.Starts independent searches on exclusive copies of
// the initial solution and returns the best result. Workers never share
// mutable solution state; each gets a seed derived from the configured one.
// With Starts == 1 it behaves exactly like a single Solve call.
func SolveParallel(ctx context.Context, cfg Config, sol *model.Solution, opts ...Option) (*model.Solution, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sol == nil {
		return nil, model.ErrInvalidProblem
	}
	if err := sol.Validate(); err != nil {
		return nil, err
	}
	log := extractLogger(opts)

	n := cfg.Starts
	results := make([]*model.Solution, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wcfg := cfg
			wcfg.Seed = cfg.Seed + int64(i)
			wcfg.Starts = 1
			s, err := New(wcfg, opts...)
			if err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = s.Solve(ctx, sol)
		}(i)
	}
	wg.Wait()

	var best *model.Solution
	softs := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			return nil, errs[i]
		}
		softs = append(softs, float64(results[i].Score.Soft))
		if best == nil || results[i].Score.Better(best.Score) {
			best = results[i]
		}
	}
	if n > 1 {
		mean := stat.Mean(softs, nil)
		stddev := stat.StdDev(softs, nil)
		log.Debugw("multi-start summary", map[string]any{
			"starts":      n,
			"best":        best.Score.String(),
			"soft_mean":   mean,
			"soft_stddev": stddev,
		})
	}
	return best, nil
}

func extractLogger(opts []Option) logger.Logger {
	probe := &Solver{log: logger.Nop{}}
	for _, o := range opts {
		o(probe)
	}
	return probe.log
}
