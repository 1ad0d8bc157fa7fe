package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := Load()
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 1000, cfg.DatasetRows)
	assert.Nil(t, cfg.DatasetSeed)
	assert.Equal(t, "./exports", cfg.ExportDir)
}

func TestLoadFromYAML(t *testing.T) {
	path := writeConfig(t, `
listen_addr: ":9090"
dataset_rows: 250
dataset_seed: 42
export_dir: /tmp/out
`)
	t.Setenv("CONFIG_PATH", path)

	cfg := Load()
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, 250, cfg.DatasetRows)
	require.NotNil(t, cfg.DatasetSeed)
	assert.Equal(t, int64(42), *cfg.DatasetSeed)
	assert.Equal(t, "/tmp/out", cfg.ExportDir)
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
listen_addr: ":9090"
dataset_rows: 250
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LISTEN_ADDR", ":7070")
	t.Setenv("DATASET_ROWS", "50")
	t.Setenv("DATASET_SEED", "7")
	t.Setenv("EXPORT_DIR", "/data/exports")

	cfg := Load()
	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, 50, cfg.DatasetRows)
	require.NotNil(t, cfg.DatasetSeed)
	assert.Equal(t, int64(7), *cfg.DatasetSeed)
	assert.Equal(t, "/data/exports", cfg.ExportDir)
}

func TestInvalidEnvValuesIgnored(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DATASET_ROWS", "not-a-number")
	t.Setenv("DATASET_SEED", "also-not")

	cfg := Load()
	assert.Equal(t, 1000, cfg.DatasetRows)
	assert.Nil(t, cfg.DatasetSeed)
}

func TestNonPositiveRowsFallsBack(t *testing.T) {
	path := writeConfig(t, "dataset_rows: -5\n")
	t.Setenv("CONFIG_PATH", path)

	cfg := Load()
	assert.Equal(t, 1000, cfg.DatasetRows)
}
