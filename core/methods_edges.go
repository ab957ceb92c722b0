// File: methods_edges.go
// Role: Tunnel insertion, membership and neighbor enumeration.
//
// Determinism:
//   - NeighborIDs returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Adjacency protected by muAdj; AddEdge also takes muVert to create endpoints.
package core

import (
	"fmt"
	"sort"
)

// AddEdge adds a unit-cost tunnel from → to. Missing endpoints are created
// with rate 0 so that every tunnel target always exists in the catalog.
// Adding an existing tunnel is a no-op.
//
// Errors:
//   - ErrEmptyVertexID if either ID is empty.
//   - ErrLoopNotAllowed if from == to.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	for _, id := range [2]string{from, to} {
		if _, ok := g.vertices[id]; !ok {
			g.vertices[id] = &Vertex{ID: id}
		}
		g.ensureBucket(id)
	}
	if _, ok := g.adjacency[from][to]; ok {
		return nil
	}
	g.adjacency[from][to] = struct{}{}
	if !g.directed {
		g.adjacency[to][from] = struct{}{}
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether a tunnel leads from → to.
func (g *Graph) HasEdge(from, to string) bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeCount returns the number of distinct tunnels. An undirected tunnel
// counts once.
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.edgeCount
}

// NeighborIDs returns the vertices reachable from id through one tunnel,
// sorted ascending.
//
// Errors:
//   - ErrVertexNotFound if id is unknown.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	ids := make([]string, 0, len(bucket))
	for to := range bucket {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureBucket allocates the adjacency bucket for id. Caller holds muAdj.
func (g *Graph) ensureBucket(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]struct{})
	}
}
