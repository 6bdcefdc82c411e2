// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// impl_planted_partition.go - implementation of PlantedPartition(n, k, density)
// constructor: a synthetic equitable-coloring fixture generator.
//
// Canonical model:
//   - Assign each vertex i a planted class real_color[i] = i mod k, then
//     shuffle the assignment with cfg.rng so counts stay equitable
//     (classes differ in size by at most 1) while labels are randomized.
//   - For every cross-class pair {i,j} (real_color[i] != real_color[j]),
//     include the edge independently with probability density. Same-class
//     pairs are never connected, so the planted partition is always a
//     feasible zero-conflict k-coloring.
//   - When cfg.cliqueWitness is set, pick one representative vertex per
//     class and connect every pair of representatives unconditionally.
//     Because a clique of size k forces k distinct colors, this embeds a
//     certified lower bound best_k >= k in the resulting instance.
//
// Contract:
//   - k >= 1 and n >= k (else ErrPlantedInfeasible).
//   - 0 <= density <= 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource): the shuffle and the
//     Bernoulli edge trials are both stochastic by construction.
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Operates only on simple, undirected, unweighted graphs; directed or
//     weighted modes return ErrUnsupportedGraphMode (the planted instance is
//     defined purely in terms of unweighted adjacency).
//
// Complexity:
//   - Time: O(n) vertices + O(n) shuffle + O(n^2) cross-pair trials + O(k^2)
//     clique edges.
//   - Space: O(n) for the planted color assignment.
//
// Determinism:
//   - Single shared cfg.rng stream consumed in a fixed order: shuffle first,
//     then outer i asc / inner j>i asc edge trials, then clique edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eqcol/core"
)

// File-local constants (no magic literals).
const (
	minPlantedClasses  = 1
	plantedDensityMin  = 0.0
	plantedDensityMax  = 1.0
)

// PlantedPartition returns a Constructor that builds a synthetic k-class
// equitable partition fixture on n vertices with planted cross-class edge
// density. When cfg.cliqueWitness is enabled (see WithCliqueWitness), one
// vertex per class is wired into a k-clique, certifying that the instance
// cannot be colored with fewer than k colors.
func PlantedPartition(n, k int, density float64) Constructor {
	// The returned closure captures (n, k, density); BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).

		if k < minPlantedClasses {
			return fmt.Errorf("%s: k=%d < min=%d: %w",
				MethodPlantedPartition, k, minPlantedClasses, ErrPlantedInfeasible)
		}
		if n < k {
			return fmt.Errorf("%s: n=%d < k=%d: %w",
				MethodPlantedPartition, n, k, ErrPlantedInfeasible)
		}
		if density < plantedDensityMin || density > plantedDensityMax {
			return fmt.Errorf("%s: density=%.6f not in [%.1f,%.1f]: %w",
				MethodPlantedPartition, density, plantedDensityMin, plantedDensityMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodPlantedPartition, ErrNeedRandSource)
		}
		if g.Directed() {
			return fmt.Errorf("%s: directed mode: %w", MethodPlantedPartition, ErrUnsupportedGraphMode)
		}
		if g.Weighted() {
			return fmt.Errorf("%s: weighted mode: %w", MethodPlantedPartition, ErrUnsupportedGraphMode)
		}

		// 2) Build the planted, equitable color assignment: round-robin then shuffle.
		//    Round-robin guarantees |count[c] - count[c']| <= 1 for all classes;
		//    the shuffle randomizes WHICH vertex carries which label without
		//    touching the counts.
		color := make([]int, n)
		for i := 0; i < n; i++ {
			color[i] = i % k
		}
		cfg.rng.Shuffle(n, func(a, b int) {
			color[a], color[b] = color[b], color[a]
		})

		// 3) Add all vertices deterministically via cfg.idFn (IDs 0..n-1).
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodPlantedPartition, id, err)
			}
		}

		// 4) Sample cross-class edges: same-class pairs are never connected so
		//    the planted partition stays a zero-conflict certificate.
		var i, j int
		for i = 0; i < n; i++ {
			u := cfg.idFn(i)
			for j = i + 1; j < n; j++ {
				if color[i] == color[j] {
					continue
				}
				if cfg.rng.Float64() < density {
					v := cfg.idFn(j)
					if _, err := g.AddEdge(u, v, 0); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", MethodPlantedPartition, u, v, err)
					}
				}
			}
		}

		// 5) Optionally embed a k-clique witness: one representative per class,
		//    pairwise connected, forcing best_k >= k.
		if cfg.cliqueWitness {
			reps := make([]int, 0, k)
			seen := make(map[int]bool, k)
			for idx := 0; idx < n && len(reps) < k; idx++ {
				c := color[idx]
				if !seen[c] {
					seen[c] = true
					reps = append(reps, idx)
				}
			}
			if len(reps) != k {
				// Cannot happen given n>=k and round-robin coverage, but guard anyway.
				return fmt.Errorf("%s: could not select %d class representatives: %w",
					MethodPlantedPartition, k, ErrPlantedInfeasible)
			}
			for a := 0; a < len(reps); a++ {
				u := cfg.idFn(reps[a])
				for b := a + 1; b < len(reps); b++ {
					v := cfg.idFn(reps[b])
					if g.HasEdge(u, v) {
						continue
					}
					if _, err := g.AddEdge(u, v, 0); err != nil {
						return fmt.Errorf("%s: clique AddEdge(%s→%s): %w", MethodPlantedPartition, u, v, err)
					}
				}
			}
		}

		// 6) Success: planted partition instance built deterministically for a fixed seed.
		return nil
	}
}
