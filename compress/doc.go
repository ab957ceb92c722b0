// Package compress turns a raw valve graph into the small, dense graph the
// reward search runs on.
//
// Valves with rate 0 are never worth opening, so only the start node and
// the reward-bearing valves are kept; zero-rate valves survive only as the
// corridors folded into the distance table. Because every raw tunnel costs
// one minute, one breadth-first traversal per kept node gives exact
// shortest travel times, and the resulting table satisfies the triangle
// inequality.
//
// Errors (sentinel):
//
//	ErrGraphNil            - nil raw graph.
//	ErrStartVertexNotFound - start is not a vertex of the raw graph.
//	ErrDisconnectedGraph   - some kept node cannot reach another kept node;
//	                         errors.As yields *DisconnectedGraphError.
//
// Example:
//
//	cg, err := compress.Compress(raw, "AA", compress.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	d, _ := cg.Distance("AA", "JJ")
package compress
