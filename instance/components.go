// SPDX-License-Identifier: MIT
package instance

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/eqcol/bfs"
	"github.com/katalvlaran/eqcol/core"
)

// ConnectedComponents returns the connected components of inst as slices of
// dense vertex indices, each sorted ascending. A disconnected instance is
// not an error for the equitable coloring problem — a proper equitable
// k-coloring is defined component-by-component and then merged — but a
// disconnected instance is a useful thing for an operator to know about
// (a solver stuck at a high k on an instance made of several small
// components is a different failure mode than one stuck on a single dense
// blob). This is wired into cmd/eqcol as an optional diagnostic.
func (inst *Instance) ConnectedComponents() ([][]int, error) {
	g := core.NewGraph()
	for v := 0; v < inst.N; v++ {
		if err := g.AddVertex(strconv.Itoa(v)); err != nil {
			return nil, fmt.Errorf("instance: ConnectedComponents: AddVertex: %w", err)
		}
	}
	for v := 0; v < inst.N; v++ {
		for _, u := range inst.Adj[v] {
			if u <= v {
				continue // each undirected pair added once, from the lower endpoint
			}
			if _, err := g.AddEdge(strconv.Itoa(v), strconv.Itoa(u), 0); err != nil {
				return nil, fmt.Errorf("instance: ConnectedComponents: AddEdge(%d,%d): %w", v, u, err)
			}
		}
	}

	visited := make([]bool, inst.N)
	var components [][]int
	for v := 0; v < inst.N; v++ {
		if visited[v] {
			continue
		}
		res, err := bfs.BFS(g, strconv.Itoa(v))
		if err != nil {
			return nil, fmt.Errorf("instance: ConnectedComponents: BFS(%d): %w", v, err)
		}
		component := make([]int, 0, len(res.Order))
		for _, id := range res.Order {
			u, err := strconv.Atoi(id)
			if err != nil {
				return nil, fmt.Errorf("instance: ConnectedComponents: non-numeric ID %q: %w", id, err)
			}
			visited[u] = true
			component = append(component, u)
		}
		sort.Ints(component)
		components = append(components, component)
	}
	return components, nil
}
