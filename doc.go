// Package eqcol is a tabu-search engine for the Equitable Graph Coloring
// Problem (ECP): given an undirected simple graph, find the smallest number
// of color classes k such that every class is an independent set and class
// sizes differ by at most one — then hand back a witness coloring.
//
// 🚀 What is eqcol?
//
//	A pure-Go metaheuristic core that brings together:
//		• Core primitives: thread-safe Graph ingestion, built on top of core.Graph
//		• Instance model: dense adjacency/degree arrays for O(deg) delta evaluation
//		• SolutionState: incremental conflict tracking with O(1) membership
//		• TabuEngine: Move/Exchange neighborhoods, dynamic tenure, aspiration,
//		  stagnation-triggered perturbation
//		• DescentDriver: outer loop that drives k down from Δ+1 to the best
//		  feasible value found under a time budget
//		• builder: synthetic instance generation (topologies + planted partitions)
//
// ✨ Why choose eqcol?
//
//   - Deterministic — a single seeded PRNG drives every stochastic decision
//   - Incremental — conflict counts and objective are maintained in O(deg), never recomputed
//   - Warm-starting — each k-attempt is seeded from the previous k+1 solution
//   - Pure Go — no cgo, testify is the only third-party dependency
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/      — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	bfs/       — breadth-first traversal, used for connectivity diagnostics
//	builder/   — topology constructors and the synthetic planted-partition generator
//	instance/  — immutable adjacency model built from core.Graph
//	solution/  — mutable coloring state with incremental conflict bookkeeping
//	construct/ — equity-preserving greedy constructors (from scratch, from k+1)
//	tabu/      — the tabu search engine
//	descent/   — the outer k-decrementing driver
//	clock/     — monotonic stop-oracle for cooperative time budgets
//	ecio/      — CSV result appender (instance files are read by instance/)
//	cmd/eqcol/ — command-line entry point
//
// Quick mental model:
//
//	k=Δ+1 ──PROC-1──▶ SolutionState ──TabuEngine──▶ solved? ──PROC-2──▶ k-1
//	                                        │
//	                                        └─▶ not solved ──▶ report best_k
//
//	go get github.com/katalvlaran/eqcol
package eqcol
