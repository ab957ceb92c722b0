// Package core defines the raw valve graph: vertices carrying a release rate,
// joined by unit-cost tunnels.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for the
// vertex catalog, muAdj for adjacency), so a Graph may be built and queried
// from several goroutines.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrNegativeRate   - a negative release rate was supplied.
//	ErrLoopNotAllowed - a tunnel from a vertex to itself.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeRate indicates a release rate below zero.
	ErrNegativeRate = errors.New("core: negative release rate")

	// ErrLoopNotAllowed indicates a tunnel from a vertex back to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex is a valve in the raw graph.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Rate is the pressure released per minute once the valve is open.
	Rate int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes tunnels one-way (from → to). By default every tunnel
// can be walked in both directions.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory raw valve graph.
//
// Every tunnel costs one minute to traverse. Parallel tunnels collapse into
// one; self-loops are rejected.
type Graph struct {
	muVert sync.RWMutex // guards vertices
	muAdj  sync.RWMutex // guards adjacency and edgeCount

	directed bool

	vertices map[string]*Vertex

	// adjacency[from][to] = struct{}{}; undirected tunnels are stored in both directions.
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty, undirected Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether tunnels are one-way.
func (g *Graph) Directed() bool { return g.directed }
