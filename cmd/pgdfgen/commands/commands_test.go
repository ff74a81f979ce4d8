package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	pterm.DisableOutput()
	t.Cleanup(pterm.EnableOutput)

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerateVerifyIngestQuery(t *testing.T) {
	dir := t.TempDir()
	nodes := filepath.Join(dir, "Nodes.pgdf")
	edges := filepath.Join(dir, "Edges.pgdf")
	man := filepath.Join(dir, "run.yaml")
	db := filepath.Join(dir, "graph.db")
	files := []string{"--nodes-out", nodes, "--edges-out", edges}

	_, err := execute(t, append([]string{"generate", "--nodes", "40", "--edges", "120", "--seed", "5", "--manifest", man}, files...)...)
	require.NoError(t, err)
	for _, p := range []string{nodes, edges, man} {
		_, err := os.Stat(p)
		require.NoError(t, err, p)
	}

	_, err = execute(t, append([]string{"verify", "--manifest", man}, files...)...)
	require.NoError(t, err)

	_, err = execute(t, append([]string{"ingest", "--db", db, "--batch-size", "7"}, files...)...)
	require.NoError(t, err)

	out, err := execute(t, "query", "--db", db, "edge", "E1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "E1|Knows|T|P"), out)

	out, err = execute(t, "query", "--db", db, "label", "Works_for", "--side", "in")
	require.NoError(t, err)
	for _, id := range strings.Fields(out) {
		assert.True(t, strings.HasPrefix(id, "O"), id)
	}

	_, err = execute(t, "query", "--db", db, "label", "Knows", "--side", "sideways")
	assert.Error(t, err)

	_, err = execute(t, "query", "--db", db, "node", "P999")
	assert.Error(t, err)
}

func TestGenerate_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	nodes := filepath.Join(dir, "n.pgdf")
	_, err := execute(t, "generate", "--dry-run", "--nodes", "10", "--nodes-out", nodes)
	require.NoError(t, err)
	_, err = os.Stat(nodes)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_InvalidFlagValue(t *testing.T) {
	_, err := execute(t, "generate", "--person-ratio", "3", "--nodes-out", filepath.Join(t.TempDir(), "n"))
	assert.Error(t, err)
}

func TestVerify_ReportsViolations(t *testing.T) {
	dir := t.TempDir()
	nodes := filepath.Join(dir, "n.pgdf")
	edges := filepath.Join(dir, "e.pgdf")
	require.NoError(t, os.WriteFile(nodes, []byte("@id|@label|name\nP1|Person|a\nP2|Person|b\n"), 0o644))
	require.NoError(t, os.WriteFile(edges, []byte("@id|@label|@dir|@out|@in\nE1|Knows|T|P1|P1\n"), 0o644))

	_, err := execute(t, "verify", "--nodes-out", nodes, "--edges-out", edges)
	assert.True(t, errors.Is(err, errVerifyFailed))
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pgdfgen.toml")
	_, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	_, err = execute(t, "config", "init", path)
	assert.Error(t, err)
	_, err = execute(t, "config", "init", "--force", path)
	assert.NoError(t, err)

	// the written file drives generation
	dir := t.TempDir()
	_, err = execute(t, "generate", "--config", path, "--nodes", "5", "--edges", "5",
		"--nodes-out", filepath.Join(dir, "n"), "--edges-out", filepath.Join(dir, "e"))
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "dev"`)
}
