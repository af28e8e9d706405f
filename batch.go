// SPDX-License-Identifier: MIT
package calculator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"gitlab.com/fisherprime/calculator/types"
)

type (
	// Result is the outcome of one EvaluateAll expression.
	Result struct {
		Expr   string
		Value  float64
		Status Status

		// Err describes a failing Status, or the context error for an unevaluated Expr.
		Err error

		// Evaluated is false when the batch was cancelled before Expr was reached.
		Evaluated bool
	}

	// Summary tallies the Results of an EvaluateAll call by Status.
	Summary struct {
		tally *types.Tally[Status]
	}
)

// Batch errors.
var (
	ErrBatch = errors.New("failed to evaluate batch")
)

// EvaluateAll computes exprs concurrently on a pool of Config.Workers goroutines.
//
// Results keep the order of exprs. Cancelling ctx stops the submission of further expressions &
// skips those already queued; they are returned unevaluated alongside the context's error.
func (c *Calculator) EvaluateAll(ctx context.Context, exprs []string) (results []Result, summary *Summary, err error) {
	results = make([]Result, len(exprs))
	summary = &Summary{tally: types.NewTally[Status]()}

	for index := range exprs {
		results[index].Expr = exprs[index]
	}
	if len(exprs) < 1 {
		return
	}

	pool, err := ants.NewPool(c.cfg.Workers,
		ants.WithLogger(c.cfg.Logger),
		ants.WithPanicHandler(func(r interface{}) {
			c.cfg.Logger.Errorf("calculator: recovered worker panic: %v", r)
		}),
	)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrBatch, err)
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup

submit:
	for index := range exprs {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break submit
		default:
		}

		index := index
		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()

			// Queued work is skipped once ctx is done.
			if ctx.Err() != nil {
				return
			}

			result := &results[index]
			result.Value, result.Status, result.Err = c.evaluate(result.Expr)
			result.Evaluated = true

			summary.tally.Inc(result.Status)
		}); err != nil {
			wg.Done()
			err = fmt.Errorf("%w: %v", ErrBatch, err)

			break
		}
	}

	wg.Wait()

	if err == nil && ctx.Err() != nil && summary.Total() < len(exprs) {
		err = ctx.Err()
	}

	if err != nil {
		for index := range results {
			if !results[index].Evaluated {
				results[index].Err = err
			}
		}
	}

	if c.cfg.Debug {
		c.cfg.Logger.Debugf("calculator: evaluated %d of %d expressions", summary.Total(), len(exprs))
	}

	return
}

// Count obtains the number of Results with status.
func (s *Summary) Count(status Status) int { return s.tally.Value(status) }

// Total obtains the number of evaluated Results.
func (s *Summary) Total() int { return s.tally.Total() }

// Failed obtains the number of evaluated Results without a ProperInput Status.
func (s *Summary) Failed() int { return s.Total() - s.Count(ProperInput) }

// Statuses lists the Statuses seen, sorted.
func (s *Summary) Statuses() []Status { return s.tally.Keys() }
