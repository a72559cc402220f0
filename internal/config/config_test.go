package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"userpipe/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
environment: production
pipeline:
  minAge: 21
  strictEmail: true
  ageGrouping: wide
output:
  format: json
telemetry:
  addr: ":9090"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, uint8(21), cfg.Pipeline.MinAge)
	require.True(t, cfg.Pipeline.StrictEmail)
	require.Equal(t, "wide", cfg.Pipeline.AgeGrouping)
	require.Equal(t, "json", cfg.Output.Format)
	require.Equal(t, ":9090", cfg.Telemetry.Addr)

	// untouched fields keep their defaults
	require.Equal(t, "-", cfg.Input.Source)
	require.Equal(t, "/metrics", cfg.Telemetry.MetricsPath)
}

func TestLoadMissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("PIPELINE_MIN_AGE", "18")
	t.Setenv("PIPELINE_AGE_GROUPING", "fine-grained")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	require.Equal(t, uint8(18), cfg.Pipeline.MinAge)
	require.Equal(t, "fine-grained", cfg.Pipeline.AgeGrouping)
	require.Equal(t, "development", cfg.Environment)
	require.False(t, cfg.Pipeline.StrictEmail)
}
