// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Result.Depth is the exact travel time in minutes, because every
//     tunnel costs one minute; compress uses it to fill its distance table.
//   - OnVisit hook (may abort with an error), neighbor filtering, MaxDepth.
//
// Determinism
//
//	core.Graph.NeighborIDs returns sorted IDs and BFS enqueues them in that
//	order, so Order and Parent are reproducible across runs.
//
// Complexity (V = |Vertices|, E = |Tunnels|)
//
//   - Time:   O(V + E log d) (neighbor lists are sorted on read)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "AA", bfs.WithContext(ctx))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//		// ErrNeighbors, ctx.Err() or a wrapped OnVisit error
//	}
//	minutes := res.Depth["JJ"]
package bfs
