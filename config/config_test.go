package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pgdfgen/config"
	"github.com/katalvlaran/pgdfgen/generator"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pgdfgen.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
seed = 7

[nodes]
total = 10
person_ratio = 0.8
schema_policy = "single"

[edges]
total = 100

[edges.weights]
likes = 0.0

[output]
manifest = "run.yaml"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 10, cfg.Nodes.Total)
	assert.Equal(t, 0.8, cfg.Nodes.PersonRatio)
	assert.Equal(t, "single", cfg.Nodes.SchemaPolicy)
	assert.Equal(t, 100, cfg.Edges.Total)
	assert.Equal(t, 0.4, cfg.Edges.Weights.Knows, "untouched keys keep defaults")
	assert.Equal(t, 0.0, cfg.Edges.Weights.Likes)
	assert.Equal(t, "run.yaml", cfg.Output.Manifest)
	assert.Equal(t, "Nodes.pgdf", cfg.Output.Nodes)
	assert.Equal(t, config.Default().Nodes.PersonSchemas, cfg.Nodes.PersonSchemas)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "seed = 7\n")
	t.Setenv("PGDFGEN_SEED", "99")
	t.Setenv("PGDFGEN_NODES_TOTAL", "25")
	t.Setenv("PGDFGEN_LOG_LEVEL", "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 25, cfg.Nodes.Total)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestWriteDefault_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pgdfgen.toml")
	require.NoError(t, config.WriteDefault(path, false))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)

	err = config.WriteDefault(path, false)
	assert.True(t, errors.Is(err, config.ErrExists))
	assert.NoError(t, config.WriteDefault(path, true))
}

func TestOptions_ReproduceGeneratorDefaults(t *testing.T) {
	cfg := config.Default()
	fromConfig, err := generator.New(cfg.Options(nil)...)
	require.NoError(t, err)
	builtin, err := generator.New()
	require.NoError(t, err)
	assert.Equal(t, builtin.Plan(), fromConfig.Plan())
}

func TestOptions_InvalidValuesSurfaceFromGenerator(t *testing.T) {
	cfg := config.Default()
	cfg.Nodes.PersonRatio = 2
	_, err := generator.New(cfg.Options(nil)...)
	assert.True(t, errors.Is(err, generator.ErrInvalidConfig))

	cfg = config.Default()
	cfg.Nodes.SchemaPolicy = "sometimes"
	_, err = generator.New(cfg.Options(nil)...)
	assert.True(t, errors.Is(err, generator.ErrInvalidConfig))
}
