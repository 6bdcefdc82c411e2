// SPDX-License-Identifier: MIT
package tabu

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/eqcol/clock"
	"github.com/katalvlaran/eqcol/solution"
)

// candidateKind distinguishes the two neighborhoods a candidate move can
// come from.
type candidateKind int

const (
	kindMove candidateKind = iota
	kindExchange
)

// candidate is one admissible Move or Exchange found during a single
// iteration's neighborhood scan, carrying enough information to be applied
// without re-deriving it.
type candidate struct {
	kind   candidateKind
	v      int
	target int // new color for a Move, or the other vertex for an Exchange
}

// Result reports the outcome of a single tabu attempt at a fixed k.
type Result struct {
	Solved     bool
	Iterations int
	FinalObj   int
}

// memory is the n x k tabu matrix: memory.tabu[v][c] holds the iteration
// index up to which assigning color c to v is forbidden (0 means never
// forbidden).
type memory struct {
	tabu [][]int
}

func newMemory(n, k int) memory {
	t := make([][]int, n)
	for v := range t {
		t[v] = make([]int, k)
	}
	return memory{tabu: t}
}

func (m memory) reset() {
	for _, row := range m.tabu {
		for c := range row {
			row[c] = 0
		}
	}
}

func (m memory) isTabu(v, c, iter int) bool {
	return m.tabu[v][c] > iter
}

func (m memory) forbid(v, c, untilIter int) {
	m.tabu[v][c] = untilIter
}

// Run drives a tabu search attempt on s until obj reaches 0 (solved),
// max_iter is exhausted, the stop oracle reports time up, or no admissible
// candidate exists (not solved). s is mutated in place; callers that need
// to preserve a pre-attempt snapshot must solution.State.Clone it first.
//
// Complexity: each iteration is O(|conflictingVertices| * k) for the Move
// scan and O(|conflictingVertices| * n) for the Exchange scan.
func Run(s *solution.State, cfg Config, rng *rand.Rand, oracle clock.StopOracle) Result {
	if s.Obj == 0 {
		return Result{Solved: true, Iterations: 0, FinalObj: 0}
	}

	mem := newMemory(s.Inst.N, s.K)
	bestObjFound := s.Obj
	noImproveIter := 0

	iter := 0
	for iter < cfg.MaxIter && s.Obj > 0 {
		if clock.ShouldPoll(iter) && oracle != nil && oracle.IsTimeUp() {
			return Result{Solved: false, Iterations: iter, FinalObj: bestObjFound}
		}

		if noImproveIter >= cfg.PerturbationLimit && cfg.PerturbationStrength > 0 {
			perturb(s, cfg, rng)
			mem.reset()
			noImproveIter = 0
			iter++
			continue
		}

		candidates := scanNeighborhood(s, mem, cfg, bestObjFound, iter)
		if len(candidates) == 0 {
			break
		}

		chosen := candidates[rng.Intn(len(candidates))]
		tenure := int(math.Floor(cfg.Alpha*float64(len(s.ConflictingVertices)))) + rng.Intn(cfg.Beta+1)
		untilIter := iter + tenure

		applyCandidate(s, mem, chosen, untilIter)

		if s.Obj < bestObjFound {
			bestObjFound = s.Obj
			noImproveIter = 0
		} else {
			noImproveIter++
		}

		iter++
	}

	return Result{Solved: bestObjFound == 0, Iterations: iter, FinalObj: bestObjFound}
}

// scanNeighborhood enumerates every admissible Move and Exchange candidate
// for the current state, returning the set tied at the best delta found
// (random tie-break is the caller's responsibility). The best delta itself
// is not returned.
func scanNeighborhood(s *solution.State, mem memory, cfg Config, bestObjFound, iter int) []candidate {
	bestDelta := math.MaxInt32
	var candidates []candidate

	consider := func(delta int, c candidate) {
		switch {
		case delta < bestDelta:
			bestDelta = delta
			candidates = candidates[:0]
			candidates = append(candidates, c)
		case delta == bestDelta:
			candidates = append(candidates, c)
		}
	}

	canTransfer := s.Inst.N%s.K != 0

	if canTransfer {
		for _, v := range s.ConflictingVertices {
			cV := s.Color[v]
			if s.ClassSize[cV] != s.BigSize {
				continue
			}
			for j := 0; j < s.K; j++ {
				if s.ClassSize[j] != s.FloorSize {
					continue
				}
				delta := s.MoveDelta(v, j)
				isTabu := mem.isTabu(v, j, iter)
				aspiration := cfg.Aspiration && s.Obj+delta < bestObjFound
				if !isTabu || aspiration {
					consider(delta, candidate{kind: kindMove, v: v, target: j})
				}
			}
		}
	}

	for _, v := range s.ConflictingVertices {
		cV := s.Color[v]
		for u := 0; u < s.Inst.N; u++ {
			if u == v {
				continue
			}
			cU := s.Color[u]
			if cV == cU {
				continue
			}
			if s.IsConflicting(u) && cU > cV {
				continue
			}
			delta := s.ExchangeDelta(v, u)
			isTabu := mem.isTabu(v, cU, iter) || mem.isTabu(u, cV, iter)
			aspiration := cfg.Aspiration && s.Obj+delta < bestObjFound
			if !isTabu || aspiration {
				consider(delta, candidate{kind: kindExchange, v: v, target: u})
			}
		}
	}

	return candidates
}

// applyCandidate executes chosen against s and records the forbidden
// return(s) in mem, each stamped with untilIter.
func applyCandidate(s *solution.State, mem memory, chosen candidate, untilIter int) {
	switch chosen.kind {
	case kindMove:
		v, newC := chosen.v, chosen.target
		oldC := s.Color[v]
		s.ApplyMove(v, newC)
		mem.forbid(v, oldC, untilIter)
	case kindExchange:
		v, u := chosen.v, chosen.target
		cVOld, cUOld := s.Color[v], s.Color[u]
		s.ApplyExchange(v, u)
		mem.forbid(v, cVOld, untilIter)
		mem.forbid(u, cUOld, untilIter)
	}
}

// perturb executes floor(strength*n) unconditional random exchanges to
// escape a stagnation plateau, picking endpoints uniformly at random and
// skipping pairs that are equal or already same-colored.
func perturb(s *solution.State, cfg Config, rng *rand.Rand) {
	n := s.Inst.N
	count := int(cfg.PerturbationStrength * float64(n))
	for p := 0; p < count; p++ {
		v1 := rng.Intn(n)
		v2 := rng.Intn(n)
		if v1 != v2 && s.Color[v1] != s.Color[v2] {
			s.ApplyExchange(v1, v2)
		}
	}
}
