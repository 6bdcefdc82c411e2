// SPDX-License-Identifier: MIT
// Package solution - mutable equitable-coloring state with incremental
// conflict bookkeeping.
//
// State is created bound to an instance.Instance and a target k, filled by a
// package construct builder, then mutated only through ApplyMove and
// ApplyExchange. Every mutation keeps the derived fields in sync with the
// current coloring: ClassSize, conflicts[v] and Obj/ConflictingVertices are
// maintained incrementally rather than recomputed. Class-size equity is not
// checked here; it holds as long as callers pick equity-preserving moves.
//
// Determinism:
//   - All mutation is caller-driven (no internal randomness); two States
//     fed the same sequence of ApplyMove/ApplyExchange calls end up
//     byte-identical.
//
// Concurrency:
//   - A State is not safe for concurrent use; it is owned by exactly one
//     TabuEngine attempt at a time.
package solution

import (
	"fmt"

	"github.com/katalvlaran/eqcol/instance"
)

// State is the mutable coloring plus derived indices described by
// SPEC_FULL.md §3. Color may contain -1 only transiently during
// construction (construct.GreedyFromPrevious leaves removed-class vertices
// uncolored until its own greedy pass assigns them).
type State struct {
	Inst *instance.Instance // immutable, borrowed
	K    int                // number of color classes

	Color     []int // Color[v] in [0,K) once fully built
	ClassSize []int // ClassSize[c] = |{v : Color[v]=c}|

	FloorSize int // n/k
	BigSize   int // FloorSize+1
	R         int // n - k*FloorSize; number of big classes

	Conflicts []int // Conflicts[v] = |{u in Adj[v] : Color[u]=Color[v]}|
	Obj       int    // number of monochromatic edges

	ConflictingVertices []int // unordered list of v with Conflicts[v]>0
	ConflictingIndex    []int // position of v in ConflictingVertices, or -1
}

// New allocates a State bound to inst with k classes. Color starts at -1
// (unassigned) for every vertex; a construct.* builder is expected to fill
// it before the state is handed to tabu.Run.
func New(inst *instance.Instance, k int) (*State, error) {
	if inst == nil {
		return nil, fmt.Errorf("solution: New: nil instance")
	}
	if k < 1 {
		return nil, fmt.Errorf("solution: New: k=%d < 1", k)
	}

	n := inst.N
	s := &State{
		Inst:             inst,
		K:                k,
		Color:            make([]int, n),
		ClassSize:        make([]int, k),
		Conflicts:        make([]int, n),
		ConflictingIndex: make([]int, n),
	}
	s.FloorSize = n / k
	s.BigSize = s.FloorSize + 1
	s.R = n - k*s.FloorSize

	for v := 0; v < n; v++ {
		s.Color[v] = -1
		s.ConflictingIndex[v] = -1
	}

	return s, nil
}

// addConflicting appends v to ConflictingVertices (v must not already be a
// member). O(1).
func (s *State) addConflicting(v int) {
	s.ConflictingIndex[v] = len(s.ConflictingVertices)
	s.ConflictingVertices = append(s.ConflictingVertices, v)
}

// removeConflicting deletes v from ConflictingVertices via swap-with-last
// (v must currently be a member). O(1).
func (s *State) removeConflicting(v int) {
	idx := s.ConflictingIndex[v]
	last := len(s.ConflictingVertices) - 1
	movedID := s.ConflictingVertices[last]
	s.ConflictingVertices[idx] = movedID
	s.ConflictingIndex[movedID] = idx
	s.ConflictingVertices = s.ConflictingVertices[:last]
	s.ConflictingIndex[v] = -1
}

// bumpConflicts adjusts Conflicts[v] by delta and maintains conflicting-set
// membership across the 0 <-> positive boundary crossing.
func (s *State) bumpConflicts(v, delta int) {
	before := s.Conflicts[v]
	after := before + delta
	s.Conflicts[v] = after
	switch {
	case before == 0 && after > 0:
		s.addConflicting(v)
	case before > 0 && after == 0:
		s.removeConflicting(v)
	}
}

// ApplyMove recolors v to cNew, maintaining I1-I7 incrementally.
//
// Contract: cNew in [0,K). Callers that need the "move breaks/restores
// equity" semantics (Move neighborhood) are responsible for only calling
// this between a big class and a small class; ApplyMove itself is a pure
// mechanical recolor and does not enforce that policy.
//
// Complexity: O(deg(v)).
func (s *State) ApplyMove(v, cNew int) {
	cOld := s.Color[v]
	if cOld == cNew {
		return // P6: no-op on all observable fields
	}

	// Pass 1: remove conflicts contributed by neighbors sharing cOld. An
	// uncolored vertex (cOld == -1) has no conflicts and no class to leave.
	if cOld >= 0 {
		for _, u := range s.Inst.Adj[v] {
			if s.Color[u] == cOld {
				s.Obj--
				s.bumpConflicts(v, -1)
				s.bumpConflicts(u, -1)
			}
		}
	}

	// Reassignment happens strictly between the two passes.
	if cOld >= 0 {
		s.ClassSize[cOld]--
	}
	s.Color[v] = cNew
	s.ClassSize[cNew]++

	// Pass 2: add conflicts contributed by neighbors sharing the new color.
	for _, u := range s.Inst.Adj[v] {
		if s.Color[u] == cNew {
			s.Obj++
			s.bumpConflicts(v, 1)
			s.bumpConflicts(u, 1)
		}
	}
}

// ApplyExchange swaps the colors of v and u (Color[v] != Color[u] required
// by the neighborhood's own admissibility rule; ApplyExchange does not
// re-check it). Implemented as two ApplyMove calls, matching the reference
// engine exactly: class sizes are preserved because the net effect is zero.
//
// Complexity: O(deg(v) + deg(u)).
func (s *State) ApplyExchange(v, u int) {
	cV := s.Color[v]
	cU := s.Color[u]
	s.ApplyMove(v, cU)
	s.ApplyMove(u, cV)
}

// MoveDelta returns the change in Obj that ApplyMove(v, cNew) would cause,
// without mutating the state. Complexity: O(deg(v)).
func (s *State) MoveDelta(v, cNew int) int {
	cOld := s.Color[v]
	if cOld == cNew {
		return 0
	}
	delta := 0
	for _, w := range s.Inst.Adj[v] {
		if s.Color[w] == cNew {
			delta++
		} else if s.Color[w] == cOld {
			delta--
		}
	}
	return delta
}

// ExchangeDelta returns the change in Obj that ApplyExchange(v, u) would
// cause, without mutating the state. Requires Color[v] != Color[u].
// Complexity: O(deg(v) + deg(u)).
func (s *State) ExchangeDelta(v, u int) int {
	cV, cU := s.Color[v], s.Color[u]
	delta := 0
	for _, w := range s.Inst.Adj[v] {
		if w == u {
			continue // the (v,u) edge itself contributes zero by construction
		}
		if s.Color[w] == cU {
			delta++
		} else if s.Color[w] == cV {
			delta--
		}
	}
	for _, w := range s.Inst.Adj[u] {
		if w == v {
			continue
		}
		if s.Color[w] == cV {
			delta++
		} else if s.Color[w] == cU {
			delta--
		}
	}
	return delta
}

// IsConflicting reports whether v currently participates in at least one
// monochromatic edge.
func (s *State) IsConflicting(v int) bool {
	return s.Conflicts[v] > 0
}

// Clone returns a deep, value-semantic copy of s. Inst is shared (borrowed,
// never owned) since it is immutable for the lifetime of any State.
//
// Used by descent.Run to snapshot bestFeasible without aliasing the
// in-progress attempt's mutable arrays.
func (s *State) Clone() *State {
	c := &State{
		Inst:      s.Inst,
		K:         s.K,
		FloorSize: s.FloorSize,
		BigSize:   s.BigSize,
		R:         s.R,
		Obj:       s.Obj,
	}
	c.Color = append([]int(nil), s.Color...)
	c.ClassSize = append([]int(nil), s.ClassSize...)
	c.Conflicts = append([]int(nil), s.Conflicts...)
	c.ConflictingVertices = append([]int(nil), s.ConflictingVertices...)
	c.ConflictingIndex = append([]int(nil), s.ConflictingIndex...)
	return c
}

// ValidateConsistency recomputes every derived field from Color alone and
// compares it against the incrementally maintained state, returning a
// descriptive error on the first mismatch. This is the debug-mode
// InvariantViolation check named in SPEC_FULL.md §7; it is never called on
// the hot path, only from tests and optional diagnostics.
//
// Complexity: O(n + m).
func (s *State) ValidateConsistency() error {
	n := s.Inst.N
	wantClassSize := make([]int, s.K)
	wantConflicts := make([]int, n)
	wantObj := 0

	for v := 0; v < n; v++ {
		c := s.Color[v]
		if c < 0 || c >= s.K {
			return fmt.Errorf("solution: ValidateConsistency: Color[%d]=%d out of [0,%d)", v, c, s.K)
		}
		wantClassSize[c]++
	}
	for v := 0; v < n; v++ {
		for _, u := range s.Inst.Adj[v] {
			if s.Color[u] == s.Color[v] {
				wantConflicts[v]++
			}
		}
	}
	for v := 0; v < n; v++ {
		wantObj += wantConflicts[v]
	}
	wantObj /= 2

	for c := 0; c < s.K; c++ {
		if wantClassSize[c] != s.ClassSize[c] {
			return fmt.Errorf("solution: ValidateConsistency: ClassSize[%d]=%d want %d", c, s.ClassSize[c], wantClassSize[c])
		}
	}
	for v := 0; v < n; v++ {
		if wantConflicts[v] != s.Conflicts[v] {
			return fmt.Errorf("solution: ValidateConsistency: Conflicts[%d]=%d want %d", v, s.Conflicts[v], wantConflicts[v])
		}
	}
	if wantObj != s.Obj {
		return fmt.Errorf("solution: ValidateConsistency: Obj=%d want %d", s.Obj, wantObj)
	}

	seen := make(map[int]bool, len(s.ConflictingVertices))
	for i, v := range s.ConflictingVertices {
		if s.ConflictingIndex[v] != i {
			return fmt.Errorf("solution: ValidateConsistency: ConflictingIndex[%d]=%d want %d", v, s.ConflictingIndex[v], i)
		}
		seen[v] = true
	}
	for v := 0; v < n; v++ {
		inSet := seen[v]
		shouldBeIn := wantConflicts[v] > 0
		if inSet != shouldBeIn {
			return fmt.Errorf("solution: ValidateConsistency: membership(%d)=%v want %v", v, inSet, shouldBeIn)
		}
	}

	return nil
}
