package compress

import "fmt"

// Graph is the compressed valve graph: the start node followed by every
// valve with a positive rate, plus the all-pairs travel time between them.
// It is immutable once returned by Compress.
type Graph struct {
	ids   []string
	rates []int
	index map[string]int

	// dist[i*n+j] is the shortest travel time from node i to node j in the raw graph.
	dist []int
	n    int
}

// Len returns the number of kept nodes (start included).
func (g *Graph) Len() int { return g.n }

// Start returns the index of the start node. It is always 0.
func (g *Graph) Start() int { return 0 }

// ID returns the identifier of node i.
func (g *Graph) ID(i int) string { return g.ids[i] }

// IDs returns a copy of the node identifiers in index order.
func (g *Graph) IDs() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Rate returns the release rate of node i.
func (g *Graph) Rate(i int) int { return g.rates[i] }

// Index returns the position of id, if it was kept.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Dist returns the travel time from node i to node j.
func (g *Graph) Dist(i, j int) int { return g.dist[i*g.n+j] }

// Distance is Dist addressed by identifiers.
func (g *Graph) Distance(from, to string) (int, error) {
	i, ok := g.index[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, from)
	}
	j, ok := g.index[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, to)
	}

	return g.Dist(i, j), nil
}

// TotalRate sums the rates of all kept nodes.
func (g *Graph) TotalRate() int {
	total := 0
	for _, r := range g.rates {
		total += r
	}

	return total
}

// Table returns a copy of the distance table keyed by identifiers.
func (g *Graph) Table() map[string]map[string]int {
	out := make(map[string]map[string]int, g.n)
	for i, from := range g.ids {
		row := make(map[string]int, g.n)
		for j, to := range g.ids {
			row[to] = g.Dist(i, j)
		}
		out[from] = row
	}

	return out
}
