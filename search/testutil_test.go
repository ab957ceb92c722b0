package search_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/compress"
	"github.com/katalvlaran/valveflow/core"
)

const (
	// sampleOne and sampleTwo are the known answers for the sample cave.
	sampleOne = 1651 // one agent, 30 minutes
	sampleTwo = 1707 // two agents, 26 minutes
)

// buildRaw creates a raw graph from rates and undirected tunnels.
func buildRaw(t testing.TB, rates map[string]int, tunnels [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id, r := range rates {
		require.NoError(t, g.AddVertex(id, r))
	}
	for _, tn := range tunnels {
		require.NoError(t, g.AddEdge(tn[0], tn[1]))
	}

	return g
}

func mustCompress(t testing.TB, raw *core.Graph, start string) *compress.Graph {
	t.Helper()
	cg, err := compress.Compress(raw, start)
	require.NoError(t, err)

	return cg
}

// sampleCave returns the compressed ten-valve sample cave.
func sampleCave(t testing.TB) *compress.Graph {
	t.Helper()
	raw := buildRaw(t,
		map[string]int{
			"AA": 0, "BB": 13, "CC": 2, "DD": 20, "EE": 3,
			"FF": 0, "GG": 0, "HH": 22, "II": 0, "JJ": 21,
		},
		[][2]string{
			{"AA", "DD"}, {"AA", "II"}, {"AA", "BB"}, {"BB", "CC"}, {"CC", "DD"},
			{"DD", "EE"}, {"EE", "FF"}, {"FF", "GG"}, {"GG", "HH"}, {"II", "JJ"},
		})

	return mustCompress(t, raw, "AA")
}

// triangleCave: B (rate 10) one minute from A, C (rate 20) two minutes from
// both A and B.
func triangleCave(t testing.TB) *compress.Graph {
	t.Helper()
	raw := buildRaw(t,
		map[string]int{"A": 0, "B": 10, "C": 20},
		[][2]string{{"A", "B"}, {"A", "X"}, {"X", "C"}, {"B", "Y"}, {"Y", "C"}})

	return mustCompress(t, raw, "A")
}

// randomCave builds a connected raw graph with n vertices and at most
// maxRated reward-bearing ones, deterministically from seed.
func randomCave(t testing.TB, seed int64, n, maxRated int) *compress.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	id := func(i int) string { return fmt.Sprintf("V%02d", i) }
	require.NoError(t, g.AddVertex(id(0), 0))
	for i := 1; i < n; i++ {
		// random spanning tree keeps the cave connected
		require.NoError(t, g.AddEdge(id(i), id(rng.Intn(i))))
	}
	for k := 0; k < n/2; k++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a != b {
			require.NoError(t, g.AddEdge(id(a), id(b)))
		}
	}
	rated := 0
	for i := 0; i < n && rated < maxRated; i++ {
		if rng.Intn(3) == 0 {
			continue
		}
		require.NoError(t, g.AddVertex(id(i), 1+rng.Intn(25)))
		rated++
	}

	return mustCompress(t, g, id(0))
}

// bestBySet enumerates every single-agent activation sequence without
// pruning and keeps the best reward per exact set of opened nodes.
func bestBySet(g *compress.Graph, start, budget int) map[uint32]int {
	best := map[uint32]int{0: 0}
	var walk func(node, minutes int, mask uint32, total int)
	walk = func(node, minutes int, mask uint32, total int) {
		if total > best[mask] {
			best[mask] = total
		}
		for v := 0; v < g.Len(); v++ {
			if g.Rate(v) == 0 || mask&(1<<v) != 0 {
				continue
			}
			left := minutes - g.Dist(node, v) - 1
			if left <= 0 {
				continue
			}
			walk(v, left, mask|1<<v, total+g.Rate(v)*left)
		}
	}
	walk(start, budget, 0, 0)

	return best
}

// referenceOne is the brute-force single-agent optimum.
func referenceOne(g *compress.Graph, start, budget int) int {
	out := 0
	for _, r := range bestBySet(g, start, budget) {
		out = max(out, r)
	}

	return out
}

// referenceTwo combines the best disjoint pair of single-agent sets.
func referenceTwo(g *compress.Graph, start, budget int) int {
	sets := bestBySet(g, start, budget)
	out := 0
	for m1, r1 := range sets {
		for m2, r2 := range sets {
			if m1&m2 == 0 {
				out = max(out, r1+r2)
			}
		}
	}

	return out
}
