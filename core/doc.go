// Package core is the raw input model for valveflow: a thread-safe graph of
// valves (vertices with a non-negative release rate) connected by tunnels
// that take one minute to walk.
//
// What
//
//   - Graph stores vertices and adjacency under two RWMutexes.
//   - Tunnels are undirected unless the Graph was built WithDirected(true).
//   - AddEdge creates missing endpoints at rate 0, so every tunnel target is
//     always present in the vertex catalog.
//   - Vertices and NeighborIDs return sorted slices for reproducible traversals.
//
// Usage
//
//	g := core.NewGraph()
//	_ = g.AddVertex("AA", 0)
//	_ = g.AddVertex("BB", 13)
//	_ = g.AddEdge("AA", "BB")
//
// The graph is consumed by bfs (hop distances) and compress (reduction to the
// reward-bearing valves).
package core
