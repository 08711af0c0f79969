package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roomgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestAnalyzeCommand_DefaultRooms(t *testing.T) {
	out, err := execute(t, "analyze", "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "rooms analyzed: 14")
	assert.Contains(t, out, "[1/2] precedence graph, topological sort")
	assert.Contains(t, out, "topological order:")
	assert.Contains(t, out, "[2/2] activity graph, critical path")
	assert.NotContains(t, out, "roomgraph_analyses_total")
}

func TestAnalyzeCommand_Metrics(t *testing.T) {
	out, err := execute(t, "analyze", "--seed", "7", "--metrics")
	require.NoError(t, err)

	assert.Contains(t, out, "roomgraph_analyses_total")
	assert.Contains(t, out, "roomgraph_weight_cache_lookups_total")
}

func TestAnalyzeCommand_SameSeedSameOutput(t *testing.T) {
	a, err := execute(t, "analyze", "--seed", "42")
	require.NoError(t, err)
	b, err := execute(t, "analyze", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRoomsCommand_FromConfig(t *testing.T) {
	path := writeConfig(t, `
seed: 3
rooms:
  - {id: 101, category: single, area: 20}
  - {id: 305, category: suite, area: 60}
`)
	out, err := execute(t, "rooms", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, "101")
	assert.Contains(t, out, "305")
	assert.NotContains(t, out, "888")
}

func TestWeightsCommand(t *testing.T) {
	path := writeConfig(t, `
rooms:
  - {id: 101, category: single, area: 20}
  - {id: 201, category: double, area: 40}
`)
	out, err := execute(t, "weights", "--all", "--seed", "1", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "101")
	assert.Contains(t, out, "201")
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "log_level: loud\n")
	_, err := execute(t, "rooms", "--config", path)
	assert.Error(t, err)

	_, err = execute(t, "rooms", "--log-level", "loud")
	assert.Error(t, err)

	_, err = execute(t, "rooms", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRootCommand_DuplicateConfiguredRooms(t *testing.T) {
	path := writeConfig(t, `
rooms:
  - {id: 101, category: single, area: 20}
  - {id: 101, category: double, area: 40}
`)
	_, err := execute(t, "rooms", "--config", path)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "duplicate"))
}
