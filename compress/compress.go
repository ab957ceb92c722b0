package compress

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/valveflow/bfs"
	"github.com/katalvlaran/valveflow/core"
)

// Compress reduces raw to the start node and every valve with a positive
// rate, and measures the shortest travel time between each pair of them.
//
// Implementation:
//   - Stage 1: Validate graph and start.
//   - Stage 2: Select kept nodes: start first, then rate>0 valves in ID order.
//   - Stage 3: One BFS per kept node; unit tunnel cost makes hop count exact.
//   - Stage 4: Any kept pair without a path fails with *DisconnectedGraphError.
//
// Compress is deterministic: the same raw graph always yields the same
// table, independent of map iteration order.
//
// Complexity: O(K·(V+E)) time for K kept nodes, O(K²) space for the table.
func Compress(raw *core.Graph, startID string, opts ...Option) (*Graph, error) {
	if raw == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !raw.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	g, err := selectNodes(raw, startID)
	if err != nil {
		return nil, err
	}
	if err = g.fillDistances(raw, o); err != nil {
		return nil, err
	}

	o.logger.Debug("compressed valve graph",
		zap.String("start", startID),
		zap.Int("raw_vertices", raw.VertexCount()),
		zap.Int("raw_tunnels", raw.EdgeCount()),
		zap.Int("kept", g.n),
		zap.Int("dropped", raw.VertexCount()-g.n),
		zap.Int("total_rate", g.TotalRate()),
	)

	return g, nil
}

func selectNodes(raw *core.Graph, startID string) (*Graph, error) {
	startRate, err := raw.Rate(startID)
	if err != nil {
		return nil, err
	}
	g := &Graph{
		ids:   []string{startID},
		rates: []int{startRate},
		index: map[string]int{startID: 0},
	}
	for _, id := range raw.Vertices() {
		if id == startID {
			continue
		}
		rate, err := raw.Rate(id)
		if err != nil {
			return nil, err
		}
		if rate == 0 {
			continue
		}
		g.index[id] = len(g.ids)
		g.ids = append(g.ids, id)
		g.rates = append(g.rates, rate)
	}
	g.n = len(g.ids)
	g.dist = make([]int, g.n*g.n)

	return g, nil
}

func (g *Graph) fillDistances(raw *core.Graph, o options) error {
	for i, from := range g.ids {
		res, err := bfs.BFS(raw, from, bfs.WithContext(o.ctx))
		if err != nil {
			if errors.Is(err, bfs.ErrStartVertexNotFound) {
				return fmt.Errorf("%w: %q", ErrStartVertexNotFound, from)
			}
			return fmt.Errorf("compress: distances from %q: %w", from, err)
		}
		for j, to := range g.ids {
			d, ok := res.Depth[to]
			if !ok {
				return &DisconnectedGraphError{From: from, To: to}
			}
			g.dist[i*g.n+j] = d
		}
	}

	return nil
}
