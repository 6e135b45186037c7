package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"honnef.co/go/sketch"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const crossingLines = `workplane: true
requests:
  - kind: line
    points: [[-0.5, 0], [0.5, 0]]
  - kind: line
    points: [[0, -0.5], [0, 0.5]]
  - kind: line
    points: [[0.5, 0], [1, 1]]
constraints:
  - kind: points-coincident
    points: [[0, 1], [2, 0]]
`

func writeScenario(t *testing.T, data string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	logger = zap.NewNop()
	configPath = filepath.Join(dir, "missing.yaml")
	return path
}

func runCmd(t *testing.T, run func(*cobra.Command, []string) error, path string) (*scenario, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := run(cmd, []string{path}); err != nil {
		return nil, err
	}
	var sc scenario
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &sc))
	return &sc, nil
}

func TestShow(t *testing.T) {
	path := writeScenario(t, crossingLines)
	sc, err := runCmd(t, runShow, path)
	require.NoError(t, err)
	want, err := readScenario(path)
	require.NoError(t, err)
	require.Equal(t, want, sc)
}

func TestSplit(t *testing.T) {
	path := writeScenario(t, crossingLines)
	splitA, splitB = 0, 1
	sc, err := runCmd(t, runSplit, path)
	require.NoError(t, err)

	// Requests are dumped in slot order, and the second split reuses the
	// slot of the first deleted line.
	require.Len(t, sc.Requests, 5)
	require.Equal(t, [][2]float64{{0, -0.5}, {0, 0}}, sc.Requests[0].Points)
	require.Equal(t, [][2]float64{{0.5, 0}, {1, 1}}, sc.Requests[1].Points)
	require.Equal(t, [][2]float64{{-0.5, 0}, {0, 0}}, sc.Requests[2].Points)
	require.Equal(t, [][2]float64{{0, 0}, {0.5, 0}}, sc.Requests[3].Points)
	require.Equal(t, [][2]float64{{0, 0}, {0, 0.5}}, sc.Requests[4].Points)
	require.Len(t, sc.Constraints, 4)
	// The coincidence on the deleted line's end point follows the split.
	require.Equal(t, [][2]int{{3, 1}, {1, 0}}, sc.Constraints[0].Points)
}

func TestSplitBadIndex(t *testing.T) {
	path := writeScenario(t, crossingLines)
	splitA, splitB = 0, 7
	_, err := runCmd(t, runSplit, path)
	require.Error(t, err)
}

func TestTangentArc(t *testing.T) {
	path := writeScenario(t, `workplane: true
requests:
  - kind: line
    points: [[1, 0], [0, 0]]
  - kind: line
    points: [[0, 0], [0, 1]]
`)
	arcRequest, arcPoint = 0, 1
	sc, err := runCmd(t, runTangentArc, path)
	require.NoError(t, err)

	require.Len(t, sc.Requests, 5)
	require.True(t, sc.Requests[0].Construction)
	require.True(t, sc.Requests[1].Construction)
	require.Equal(t, "arc", sc.Requests[4].Kind)
	require.Len(t, sc.Constraints, 8)
}

func TestBuildErrors(t *testing.T) {
	tests := map[string]string{
		"kind":       "requests: [{kind: spline, points: []}]",
		"points":     "requests: [{kind: line, points: [[0, 0]]}]",
		"constraint": "requests: [{kind: line, points: [[0, 0], [1, 1]]}]\nconstraints: [{kind: points-coincident, points: [[0, 0], [3, 0]]}]",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			var sc scenario
			require.NoError(t, yaml.Unmarshal([]byte(data), &sc))
			_, _, err := sc.build()
			require.Error(t, err)
		})
	}
}

func TestDumpKeepsReferenceSlots(t *testing.T) {
	const data = `workplane: true
requests:
  - kind: line
    points: [[0, 0], [1, 0]]
  - kind: line
    points: [[0, 1], [1, 1]]
constraints:
  - kind: pt-on-line
    points: [[-1, -1], [1, 0]]
    entities: [-1, 0]
  - kind: pt-on-line
    points: [[1, 1], [-1, -1]]
    entities: [0, -1]
`
	var sc scenario
	require.NoError(t, yaml.Unmarshal([]byte(data), &sc))
	sk, _, err := sc.build()
	require.NoError(t, err)

	var cs []sketch.Constraint
	for c := range sk.Constraints() {
		cs = append(cs, c)
	}
	require.Len(t, cs, 2)
	require.True(t, cs[0].PtA.IsZero())
	require.False(t, cs[0].PtB.IsZero())
	require.True(t, cs[0].EntityA.IsZero())
	require.False(t, cs[1].PtA.IsZero())
	require.True(t, cs[1].PtB.IsZero())

	require.Equal(t, sc.Constraints, dumpScenario(sk).Constraints)
}
