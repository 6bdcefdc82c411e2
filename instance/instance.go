// SPDX-License-Identifier: MIT
// Package instance - immutable graph model for the equitable coloring engine.
//
// Instance is built once per run, either from a core.Graph (itself built by
// builder or by ReadFile below) or directly from a text edge list. It never
// changes after construction: SolutionState, Constructors, and TabuEngine all
// borrow it immutably for the lifetime of a DescentDriver run.
//
// Contract:
//   - n >= 0; within Instance, vertices are the dense integers 0..n-1,
//     assigned by rank in the source core.Graph's own lexicographic vertex
//     order (see FromGraph) — this index carries no relationship to the
//     original 1-based file numbering or to any builder-chosen string ID
//     beyond preserving graph topology.
//   - adj[v] is sorted ascending and duplicate-free.
//   - No self-loops (a==b rejected at ingestion).
//   - Duplicate edges are dropped at ingestion (core.Graph's default simple-
//     graph mode refuses a second AddEdge between the same pair, and Read
//     skips that line without error).
//
// Determinism:
//   - adj[v] order is the sorted order of neighbor IDs; building from the same
//     core.Graph twice yields byte-identical Instance values.
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/eqcol/core"
)

// Sentinel errors classify ingestion failures as InputError per the core's
// error-handling design: reported at startup, never wrapped into a silent
// default.
var (
	// ErrMalformedHeader indicates the "n m" header line is missing or not
	// two non-negative integers.
	ErrMalformedHeader = errors.New("instance: malformed header")
	// ErrMalformedEdge indicates an edge line is not exactly two integers.
	ErrMalformedEdge = errors.New("instance: malformed edge line")
	// ErrEndpointOutOfRange indicates an edge endpoint falls outside [1,n].
	ErrEndpointOutOfRange = errors.New("instance: edge endpoint out of range")
	// ErrSelfLoop indicates an edge whose two endpoints are equal.
	ErrSelfLoop = errors.New("instance: self-loop edge")
	// ErrEdgeCountMismatch indicates fewer edge lines than the header declared.
	ErrEdgeCountMismatch = errors.New("instance: fewer edge lines than declared")
)

// Instance is the immutable adjacency model consumed by the rest of the
// engine. Fields are exported for read-only use by solution/construct/tabu;
// nothing in this package ever mutates an Instance after FromGraph, Read or
// ReadFile returns it.
type Instance struct {
	N         int     // vertex count
	Adj       [][]int // Adj[v] = sorted, duplicate-free neighbor list of v
	Degree    []int   // Degree[v] = len(Adj[v])
	MaxDegree int     // max over Degree
	EdgeCount int      // |E|
}

// FromGraph flattens a core.Graph into a dense Instance, assigning each
// vertex a dense 0-based index by its rank in core.Graph's own lexicographic
// Vertices() order — the same id-to-index convention the teacher's matrix
// package uses when converting a core.Graph into a dense representation.
// This lets FromGraph accept any vertex-labeling scheme a builder
// Constructor chooses to use (decimal IDs, prefixed partition labels, ...),
// not just the dense decimal convention ReadFile produces internally.
//
// Complexity: O(n log n + n + m) time (the vertex sort, plus one
// NeighborIDs scan per vertex); O(n + m) space for the flattened adjacency.
func FromGraph(g *core.Graph, n int) (*Instance, error) {
	if g == nil {
		return nil, fmt.Errorf("instance: FromGraph: nil graph")
	}

	ids := g.Vertices() // already lex-sorted by core.Graph's own contract
	if len(ids) != n {
		return nil, fmt.Errorf("instance: FromGraph: graph has %d vertices, want %d", len(ids), n)
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	inst := &Instance{
		N:      n,
		Adj:    make([][]int, n),
		Degree: make([]int, n),
	}

	edgeSeen := 0
	for v, id := range ids {
		neighborIDs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("instance: FromGraph: NeighborIDs(%s): %w", id, err)
		}
		adj := make([]int, 0, len(neighborIDs))
		for _, nid := range neighborIDs {
			u, ok := index[nid]
			if !ok {
				return nil, fmt.Errorf("instance: FromGraph: neighbor %q of %q has no assigned index", nid, id)
			}
			if u == v {
				return nil, fmt.Errorf("instance: FromGraph: self-loop at %d: %w", v, ErrSelfLoop)
			}
			adj = append(adj, u)
			if u > v {
				edgeSeen++
			}
		}
		sort.Ints(adj) // rank order need not track NeighborIDs' lexicographic order
		inst.Adj[v] = adj
		inst.Degree[v] = len(adj)
		if len(adj) > inst.MaxDegree {
			inst.MaxDegree = len(adj)
		}
	}
	inst.EdgeCount = edgeSeen

	return inst, nil
}

// ReadFile parses the plain-text instance format described by the engine's
// external interface: a header line "n m", then m lines each "a b" with
// 1<=a,b<=n, a!=b, whitespace-separated. Endpoints are converted to 0-based
// internally. Ingestion is routed through a core.Graph so that duplicate
// edges are detected by the graph's own simple-mode invariant rather than by
// ad hoc bookkeeping here; a duplicate line is skipped, not reported.
//
// Complexity: O(n + m) time and space.
func ReadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: ReadFile(%s): %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read is the io.Reader-based core of ReadFile, split out so tests and
// callers can feed an in-memory string without touching the filesystem.
func Read(r io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n, m, err := readHeader(scanner)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph()
	for v := 0; v < n; v++ {
		// Ingestion never fails here: decimal IDs are non-empty and unique.
		_ = g.AddVertex(strconv.Itoa(v))
	}

	read := 0
	for read < m {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("instance: Read: %w", err)
			}
			return nil, fmt.Errorf("instance: Read: declared m=%d, got %d: %w", m, read, ErrEdgeCountMismatch)
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue // blank lines between edges are tolerated
		}
		a, b, err := parseEdgeLine(line)
		if err != nil {
			return nil, err
		}
		if a < 1 || a > n || b < 1 || b > n {
			return nil, fmt.Errorf("instance: Read: edge (%d,%d) out of range [1,%d]: %w", a, b, n, ErrEndpointOutOfRange)
		}
		if a == b {
			return nil, fmt.Errorf("instance: Read: edge (%d,%d): %w", a, b, ErrSelfLoop)
		}
		u, v := strconv.Itoa(a-1), strconv.Itoa(b-1)
		if _, err := g.AddEdge(u, v, 0); err != nil {
			// A duplicate edge is tolerated silently per §4.1's dedup policy;
			// any other core error is a genuine InputError.
			if !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				return nil, fmt.Errorf("instance: Read: AddEdge(%s,%s): %w", u, v, err)
			}
		}
		read++
	}

	return FromGraph(g, n)
}

// readHeader parses the first non-empty line as "n m".
func readHeader(scanner *bufio.Scanner) (n, m int, err error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return 0, 0, fmt.Errorf("instance: readHeader: %q: %w", line, ErrMalformedHeader)
		}
		n, err = strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("instance: readHeader: bad n %q: %w", fields[0], ErrMalformedHeader)
		}
		m, err = strconv.Atoi(fields[1])
		if err != nil || m < 0 {
			return 0, 0, fmt.Errorf("instance: readHeader: bad m %q: %w", fields[1], ErrMalformedHeader)
		}
		return n, m, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("instance: readHeader: %w", err)
	}
	return 0, 0, fmt.Errorf("instance: readHeader: empty input: %w", ErrMalformedHeader)
}

// parseEdgeLine parses "a b" (whitespace-separated, 1-based).
func parseEdgeLine(line string) (a, b int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("instance: parseEdgeLine: %q: %w", line, ErrMalformedEdge)
	}
	a, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("instance: parseEdgeLine: bad endpoint %q: %w", fields[0], ErrMalformedEdge)
	}
	b, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("instance: parseEdgeLine: bad endpoint %q: %w", fields[1], ErrMalformedEdge)
	}
	return a, b, nil
}
