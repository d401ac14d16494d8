package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "refmap.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("yaml overrides defaults, unset keys keep them", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "refmap.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"data:\n  referendum: inputs/votes.csv\nmap:\n  title: Vote 2005\n  output: out/map.png\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "inputs/votes.csv", cfg.Data.Referendum)
		assert.Equal(t, "Vote 2005", cfg.Map.Title)
		assert.Equal(t, "out/map.png", cfg.Map.Output)
		assert.Equal(t, Default().Data.Regions, cfg.Data.Regions)
		assert.Equal(t, Default().Map.LegendTitle, cfg.Map.LegendTitle)
	})

	t.Run("environment wins over yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "refmap.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"data:\n  referendum: inputs/votes.csv\n"), 0644))
		t.Setenv("REFMAP_REFERENDUM", "/srv/data/referendum.csv")
		t.Setenv("REFMAP_OUTPUT", "/tmp/map.png")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "/srv/data/referendum.csv", cfg.Data.Referendum)
		assert.Equal(t, "/tmp/map.png", cfg.Map.Output)
	})

	t.Run("malformed yaml is fatal", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "refmap.yaml")
		require.NoError(t, os.WriteFile(path, []byte("data: [not a mapping"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(
		"# data locations\nREFMAP_TEST_A=plain\nREFMAP_TEST_B=\"quoted value\"\n\nnot-a-pair\n"), 0644))
	t.Setenv("REFMAP_TEST_A", "")
	t.Setenv("REFMAP_TEST_B", "")
	t.Setenv("REFMAP_TEST_C", "already set")

	require.NoError(t, loadEnvFile(envPath))

	assert.Equal(t, "plain", os.Getenv("REFMAP_TEST_A"))
	assert.Equal(t, "quoted value", os.Getenv("REFMAP_TEST_B"))
	assert.Equal(t, "already set", os.Getenv("REFMAP_TEST_C"))
}
