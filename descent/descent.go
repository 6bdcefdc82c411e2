// SPDX-License-Identifier: MIT
// Package descent drives the outer k-decrementing loop: starting from
// k=Δ+1, it runs a tabu attempt, and on success warm-starts a k-1 attempt
// from the solved solution, until it fails, k reaches 1, or the stop
// oracle fires.
package descent

import (
	"fmt"

	"github.com/katalvlaran/eqcol/clock"
	"github.com/katalvlaran/eqcol/construct"
	"github.com/katalvlaran/eqcol/instance"
	"github.com/katalvlaran/eqcol/rngutil"
	"github.com/katalvlaran/eqcol/solution"
	"github.com/katalvlaran/eqcol/tabu"
)

// Result is the final report of a full descent run, carrying everything
// ecio.AppendRow needs for its CSV row.
type Result struct {
	InitialK   int
	BestK      int
	DevPercent float64
	TotalIter  int
	BestState  *solution.State
}

// Run executes the descent loop over inst using tabuCfg for every attempt,
// seeded deterministically from seed, polling oracle for the overall time
// budget.
//
// Complexity: bounded by Σ over attempts of tabu.Run's cost; at most
// (Δ+1) attempts since k only ever decreases.
func Run(inst *instance.Instance, tabuCfg tabu.Config, seed int64, oracle clock.StopOracle) (Result, error) {
	if err := tabuCfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("descent: Run: %w", err)
	}

	base := rngutil.FromSeed(seed)

	initialK := inst.MaxDegree + 1
	current, err := construct.GreedyInitial(inst, initialK, rngutil.Derive(base, 0))
	if err != nil {
		return Result{}, fmt.Errorf("descent: Run: initial construction: %w", err)
	}

	bestFeasible := current.Clone()
	bestK := current.K
	totalIter := 0

	// current may already be conflict-free (GreedyInitial's equity-capped
	// placement sometimes lands there outright, especially when k starts
	// far above what's actually needed); tabu.Run's own obj==0 fast path
	// handles that with zero iterations, so the loop below still attempts
	// to decrement from it rather than reporting initialK as final.
	attempt := uint64(1)
	for oracle == nil || !oracle.IsTimeUp() {
		res := tabu.Run(current, tabuCfg, rngutil.Derive(base, attempt), oracle)
		totalIter += res.Iterations

		if !res.Solved {
			break
		}

		bestFeasible = current.Clone()
		bestK = current.K

		if bestK == 1 {
			break
		}

		next, err := construct.GreedyFromPrevious(inst, bestFeasible, rngutil.Derive(base, attempt+1))
		if err != nil {
			return Result{}, fmt.Errorf("descent: Run: warm-start to k=%d: %w", bestK-1, err)
		}
		current = next
		attempt++
	}

	return Result{
		InitialK:   initialK,
		BestK:      bestK,
		DevPercent: devPercent(initialK, bestK),
		TotalIter:  totalIter,
		BestState:  bestFeasible,
	}, nil
}

// devPercent computes the initial-to-best percent deviation
// 100*(initialK-bestK)/initialK, defined as 0 when initialK is 0.
func devPercent(initialK, bestK int) float64 {
	if initialK == 0 {
		return 0
	}
	return 100.0 * float64(initialK-bestK) / float64(initialK)
}

