// SPDX-License-Identifier: MIT
// Package construct provides equity-preserving greedy colorings that seed a
// solution.State before it is handed to the tabu engine: GreedyInitial
// builds one from scratch (PROC-1), GreedyFromPrevious warm-starts a
// k-attempt from a solved k+1 solution (PROC-2).
//
// Both constructors share the same per-vertex rule: cap the currently
// "open" classes at M (big_size while the target count of big classes has
// not yet been reached, else floor_size), prefer the smallest open class
// that introduces no new conflict with already-colored neighbors, and fall
// back to a uniformly random open class otherwise.
package construct

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/eqcol/instance"
	"github.com/katalvlaran/eqcol/solution"
)

// GreedyInitial builds a fresh, equitable k-coloring of inst from scratch
// (PROC-1). Vertices are visited in a uniformly random order derived from
// rng; conflicts and obj are maintained incrementally as each vertex is
// colored.
//
// Complexity: O(n*k) worst case for the per-vertex open-class scan, plus
// O(m) total for the incremental conflict updates.
func GreedyInitial(inst *instance.Instance, k int, rng *rand.Rand) (*solution.State, error) {
	s, err := solution.New(inst, k)
	if err != nil {
		return nil, fmt.Errorf("construct: GreedyInitial: %w", err)
	}

	order := rngPerm(rng, inst.N)

	currentR := 0
	for _, v := range order {
		M := openCap(s.FloorSize, s.BigSize, currentR, s.R)
		open := openClasses(s, M)

		c := pickColor(s, v, open, rng)
		colorFresh(s, v, c)
		if s.ClassSize[c] == s.BigSize {
			currentR++
		}
	}

	return s, nil
}

// GreedyFromPrevious warm-starts a k-coloring from a solved (k+1)-solution
// prev (PROC-2). A uniformly random bijection over {0,...,k} decides which
// color class is discarded; the remaining k classes are remapped to
// [0,k) preserving relative order of the permutation, surviving vertices
// keep their remapped color and inherited conflict state, and the
// newly-uncolored vertices are assigned via the same greedy rule as
// GreedyInitial.
//
// Complexity: O(n + m) to transfer state, plus the greedy pass over the
// uncolored vertices (bounded by O(|removed class| * k)).
func GreedyFromPrevious(inst *instance.Instance, prev *solution.State, rng *rand.Rand) (*solution.State, error) {
	if prev == nil {
		return nil, fmt.Errorf("construct: GreedyFromPrevious: nil previous solution")
	}
	prevK := prev.K
	k := prevK - 1
	if k < 1 {
		return nil, fmt.Errorf("construct: GreedyFromPrevious: prev.K=%d too small to decrement", prevK)
	}

	s, err := solution.New(inst, k)
	if err != nil {
		return nil, fmt.Errorf("construct: GreedyFromPrevious: %w", err)
	}

	perm := rngPerm(rng, prevK)
	removedColor := perm[prevK-1]

	colorMap := make([]int, prevK)
	for i := range colorMap {
		colorMap[i] = -1
	}
	next := 0
	for i := 0; i < prevK-1; i++ {
		colorMap[perm[i]] = next
		next++
	}

	uncolored := make([]int, 0, s.FloorSize+1)

	// Transfer surviving vertices and inherited conflict bookkeeping.
	s.Obj = prev.Obj
	for v := 0; v < inst.N; v++ {
		oldC := prev.Color[v]
		if oldC == removedColor {
			uncolored = append(uncolored, v)
			continue
		}
		newC := colorMap[oldC]
		s.Color[v] = newC
		s.ClassSize[newC]++
		s.Conflicts[v] = prev.Conflicts[v]
	}

	// Drop edges whose both endpoints were in the removed class, counted
	// once via the a<b ordering, and clear conflict state for the orphans.
	for _, v := range uncolored {
		for _, u := range inst.Adj[v] {
			if u > v && prev.Color[u] == removedColor {
				s.Obj--
			}
		}
	}

	// Rebuild conflictingVertices for the surviving vertices now that
	// Conflicts has been populated directly (bypassing bumpConflicts, which
	// assumes a 0 starting point).
	for v := 0; v < inst.N; v++ {
		if s.Color[v] == -1 {
			continue
		}
		if s.Conflicts[v] > 0 {
			rebuildMembership(s, v)
		}
	}

	// Determine how many classes are already at big_size before greedily
	// placing the orphans.
	currentR := 0
	for c := 0; c < k; c++ {
		if s.ClassSize[c] == s.BigSize {
			currentR++
		}
	}

	orphanOrder := rngPermSubset(rng, uncolored)
	for _, v := range orphanOrder {
		M := openCap(s.FloorSize, s.BigSize, currentR, s.R)
		open := openClasses(s, M)

		c := pickColor(s, v, open, rng)
		colorFresh(s, v, c)
		if s.ClassSize[c] == s.BigSize {
			currentR++
		}
	}

	return s, nil
}

// openCap returns the currently permitted class-size ceiling M: bigSize
// while fewer than r classes have reached it, else floorSize.
func openCap(floorSize, bigSize, currentR, r int) int {
	if currentR < r {
		return bigSize
	}
	return floorSize
}

// openClasses returns every color c whose ClassSize[c] <= M-1, i.e. classes
// still able to accept one more vertex without exceeding M.
func openClasses(s *solution.State, M int) []int {
	open := make([]int, 0, s.K)
	for c := 0; c < s.K; c++ {
		if s.ClassSize[c] <= M-1 {
			open = append(open, c)
		}
	}
	return open
}

// pickColor selects the smallest open class that introduces no conflict
// with v's already-colored neighbors, falling back to a uniformly random
// open class (or, in the degenerate case of no open class at all, the
// globally smallest class).
func pickColor(s *solution.State, v int, open []int, rng *rand.Rand) int {
	for _, c := range open {
		conflictFound := false
		for _, u := range s.Inst.Adj[v] {
			if s.Color[u] == c {
				conflictFound = true
				break
			}
		}
		if !conflictFound {
			return c
		}
	}
	if len(open) == 0 {
		smallest := 0
		for c := 1; c < s.K; c++ {
			if s.ClassSize[c] < s.ClassSize[smallest] {
				smallest = c
			}
		}
		return smallest
	}
	return open[rng.Intn(len(open))]
}

// colorFresh assigns c to an as-yet-uncolored v (Color[v] == -1) and
// updates classSize/conflicts/obj incrementally against the already-colored
// prefix. Unlike solution.State.ApplyMove, it does not touch a prior class
// membership since there is none.
func colorFresh(s *solution.State, v, c int) {
	s.Color[v] = c
	s.ClassSize[c]++
	for _, u := range s.Inst.Adj[v] {
		if s.Color[u] == c {
			s.Obj++
			s.Conflicts[v]++
			s.Conflicts[u]++
			rebuildMembershipSingle(s, v)
			rebuildMembershipSingle(s, u)
		}
	}
}

// rebuildMembershipSingle adds x to ConflictingVertices if Conflicts[x]>0
// and it is not already present.
func rebuildMembershipSingle(s *solution.State, x int) {
	if s.Conflicts[x] > 0 && s.ConflictingIndex[x] == -1 {
		rebuildMembership(s, x)
	}
}

// rebuildMembership unconditionally appends x to ConflictingVertices,
// recording its index. Callers must ensure x is not already a member.
func rebuildMembership(s *solution.State, x int) {
	s.ConflictingIndex[x] = len(s.ConflictingVertices)
	s.ConflictingVertices = append(s.ConflictingVertices, x)
}

// rngPerm returns a uniformly random permutation of {0,...,n-1} drawn from
// rng via a Fisher-Yates shuffle, matching std::shuffle's distribution.
func rngPerm(rng *rand.Rand, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	rng.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// rngPermSubset returns a uniformly random permutation of the given subset
// of vertex IDs, without mutating the caller's slice.
func rngPermSubset(rng *rand.Rand, ids []int) []int {
	p := append([]int(nil), ids...)
	rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}
