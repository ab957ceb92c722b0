package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/compress"
	"github.com/katalvlaran/valveflow/config"
	"github.com/katalvlaran/valveflow/scenario"
	"github.com/katalvlaran/valveflow/search"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestSolve(t *testing.T) {
	out, err := execute(t, "solve", "testdata/sample.yaml")
	require.NoError(t, err)
	assert.Equal(t, "1651\n", out)

	out, err = execute(t, "solve", "--agents=2", "testdata/sample.yaml")
	require.NoError(t, err)
	assert.Equal(t, "1707\n", out, "two agents default to 26 minutes")

	out, err = execute(t, "solve", "--bound=tight", "--minutes=30", "../../scenario/testdata/sample.txt")
	require.NoError(t, err)
	assert.Equal(t, "1651\n", out)
}

func TestSolvePlan(t *testing.T) {
	out, err := execute(t, "solve", "--plan", "testdata/sample.yaml")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "1651", lines[0])
	assert.Equal(t, []string{"Minute", "Agent", "Valve", "Gain"}, strings.Fields(lines[1]))

	sum, last := 0, 0
	for _, line := range lines[2:] {
		f := strings.Fields(line)
		require.Len(t, f, 4)
		minute, err := strconv.Atoi(f[0])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, minute, last, "plan is chronological")
		last = minute
		gain, err := strconv.Atoi(f[3])
		require.NoError(t, err)
		sum += gain
	}
	assert.Equal(t, 1651, sum)
}

func TestSolveMetrics(t *testing.T) {
	out, err := execute(t, "solve", "--metrics", "testdata/sample.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, `valveflow_search_best_reward{agents="1"} 1651`)
	assert.Contains(t, out, "# TYPE valveflow_search_duration_seconds histogram")
}

func TestCompress(t *testing.T) {
	out, err := execute(t, "compress", "testdata/sample.yaml")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, strings.Fields("VALVE RATE AA BB CC DD EE HH JJ"), strings.Fields(lines[0]))
	assert.Equal(t, strings.Fields("AA 0 0 1 2 1 2 5 2"), strings.Fields(lines[1]))
	assert.Equal(t, strings.Fields("HH 22 5 6 5 4 3 0 7"), strings.Fields(lines[6]))
}

func TestErrors(t *testing.T) {
	_, err := execute(t, "solve", "testdata/missing.yaml")
	assert.Error(t, err)

	_, err = execute(t, "solve", "testdata/island.yaml")
	assert.ErrorIs(t, err, compress.ErrDisconnectedGraph)

	_, err = execute(t, "solve", "--step-limit=10", "testdata/sample.yaml")
	assert.ErrorIs(t, err, search.ErrStepLimit)

	_, err = execute(t, "solve", "--agents=3", "testdata/sample.yaml")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "solve", "--start=ZZ", "testdata/sample.yaml")
	assert.ErrorIs(t, err, scenario.ErrUnknownStart)

	_, err = execute(t, "compress")
	assert.Error(t, err, "scenario argument is required")
}
