// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Lock order is muVert -> muAdj everywhere both are held.
package core

import (
	"fmt"
	"sort"
)

// AddVertex registers a valve with the given release rate.
//
// Implementation:
//   - Stage 1: Validate non-empty ID and non-negative rate.
//   - Stage 2: Under muVert, insert the vertex or overwrite the rate of an
//     existing one (vertices created implicitly by AddEdge start at rate 0).
//   - Stage 3: Under muAdj, bootstrap the adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrNegativeRate if rate < 0.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, rate int) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if rate < 0 {
		return fmt.Errorf("%w: %q has rate %d", ErrNegativeRate, id, rate)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if v, ok := g.vertices[id]; ok {
		v.Rate = rate
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Rate: rate}

	g.muAdj.Lock()
	g.ensureBucket(id)
	g.muAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Rate returns the release rate of id.
func (g *Graph) Rate(id string) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return v.Rate, nil
}

// Vertices returns all vertex IDs sorted ascending.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// TotalRate sums the release rates of all vertices.
func (g *Graph) TotalRate() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	total := 0
	for _, v := range g.vertices {
		total += v.Rate
	}

	return total
}
