package compress_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/valveflow/compress"
	"github.com/katalvlaran/valveflow/core"
)

// sampleCave builds the ten-valve cave used throughout the tests.
func sampleCave(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	rates := map[string]int{
		"AA": 0, "BB": 13, "CC": 2, "DD": 20, "EE": 3,
		"FF": 0, "GG": 0, "HH": 22, "II": 0, "JJ": 21,
	}
	for id, r := range rates {
		require.NoError(t, g.AddVertex(id, r))
	}
	for _, tn := range [][2]string{
		{"AA", "DD"}, {"AA", "II"}, {"AA", "BB"}, {"BB", "CC"}, {"CC", "DD"},
		{"DD", "EE"}, {"EE", "FF"}, {"FF", "GG"}, {"GG", "HH"}, {"II", "JJ"},
	} {
		require.NoError(t, g.AddEdge(tn[0], tn[1]))
	}

	return g
}

func TestCompress_Errors(t *testing.T) {
	_, err := compress.Compress(nil, "AA")
	assert.ErrorIs(t, err, compress.ErrGraphNil)

	_, err = compress.Compress(sampleCave(t), "ZZ")
	assert.ErrorIs(t, err, compress.ErrStartVertexNotFound)
}

func TestCompress_SampleCave(t *testing.T) {
	cg, err := compress.Compress(sampleCave(t), "AA")
	require.NoError(t, err)

	assert.Equal(t, []string{"AA", "BB", "CC", "DD", "EE", "HH", "JJ"}, cg.IDs())
	assert.Equal(t, 0, cg.Start())
	assert.Equal(t, 81, cg.TotalRate())

	for _, tc := range []struct {
		from, to string
		want     int
	}{
		{"AA", "AA", 0},
		{"AA", "BB", 1},
		{"AA", "CC", 2},
		{"AA", "HH", 5},
		{"AA", "JJ", 2},
		{"BB", "JJ", 3},
		{"JJ", "HH", 7},
		{"HH", "CC", 5},
	} {
		got, err := cg.Distance(tc.from, tc.to)
		require.NoError(t, err)
		assert.Equalf(t, tc.want, got, "%s→%s", tc.from, tc.to)
	}

	_, err = cg.Distance("AA", "II")
	assert.ErrorIs(t, err, compress.ErrUnknownNode, "zero-rate valves are folded away")
}

// TestCompress_MetricProperties checks symmetry, zero diagonal and the
// triangle inequality over every triple of kept nodes.
func TestCompress_MetricProperties(t *testing.T) {
	cg, err := compress.Compress(sampleCave(t), "AA")
	require.NoError(t, err)
	n := cg.Len()
	for i := 0; i < n; i++ {
		assert.Zero(t, cg.Dist(i, i))
		for j := 0; j < n; j++ {
			assert.Equal(t, cg.Dist(i, j), cg.Dist(j, i), "undirected tunnels give a symmetric table")
			for k := 0; k < n; k++ {
				assert.LessOrEqual(t, cg.Dist(i, k), cg.Dist(i, j)+cg.Dist(j, k))
			}
		}
	}
}

func TestCompress_Idempotent(t *testing.T) {
	raw := sampleCave(t)
	first, err := compress.Compress(raw, "AA")
	require.NoError(t, err)
	second, err := compress.Compress(raw, "AA")
	require.NoError(t, err)

	if diff := cmp.Diff(first.Table(), second.Table()); diff != "" {
		t.Fatalf("tables differ (-first +second):\n%s", diff)
	}
	assert.Equal(t, first.IDs(), second.IDs())
}

func TestCompress_Disconnected(t *testing.T) {
	g := sampleCave(t)
	require.NoError(t, g.AddEdge("XX", "YY"))
	require.NoError(t, g.AddVertex("YY", 5))

	_, err := compress.Compress(g, "AA")
	require.ErrorIs(t, err, compress.ErrDisconnectedGraph)
	var de *compress.DisconnectedGraphError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "AA", de.From)
	assert.Equal(t, "YY", de.To)
}

// TestCompress_DisconnectedZeroRate ignores unreachable valves nobody needs.
func TestCompress_DisconnectedZeroRate(t *testing.T) {
	g := sampleCave(t)
	require.NoError(t, g.AddEdge("XX", "YY"))

	cg, err := compress.Compress(g, "AA")
	require.NoError(t, err)
	assert.Equal(t, 7, cg.Len())
}

func TestCompress_StartWithRate(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("S", 4))
	require.NoError(t, g.AddVertex("A", 1))
	require.NoError(t, g.AddEdge("A", "S"))

	cg, err := compress.Compress(g, "S")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A"}, cg.IDs())
	assert.Equal(t, 4, cg.Rate(cg.Start()))
}

func TestCompress_AllZero(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("AA", "BB"))
	require.NoError(t, g.AddEdge("BB", "CC"))

	cg, err := compress.Compress(g, "AA")
	require.NoError(t, err)
	assert.Equal(t, 1, cg.Len())
	assert.Zero(t, cg.TotalRate())
}

func TestCompress_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("B", 1))
	require.NoError(t, g.AddVertex("C", 1))
	// A→B→C→A ring: one way round only.
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "A"))

	cg, err := compress.Compress(g, "A")
	require.NoError(t, err)
	ab, _ := cg.Distance("A", "B")
	ba, _ := cg.Distance("B", "A")
	assert.Equal(t, 1, ab)
	assert.Equal(t, 2, ba)
}

func TestCompress_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := compress.Compress(sampleCave(t), "AA", compress.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompress_LogsSummary(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	_, err := compress.Compress(sampleCave(t), "AA", compress.WithLogger(zap.New(obs)))
	require.NoError(t, err)

	entries := logs.FilterMessage("compressed valve graph").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 7, fields["kept"])
	assert.EqualValues(t, 3, fields["dropped"])
}
