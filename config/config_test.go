package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "sdn.csv", cfg.SourcePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0.4, cfg.NameMatchThreshold)
	assert.Equal(t, 10, cfg.CandidateCap)
	assert.Equal(t, 10, cfg.MaxResults)
	assert.False(t, cfg.AssessorEnabled)
	assert.Empty(t, cfg.CachePath)
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, New().Validate())
	})

	t.Run("empty source path", func(t *testing.T) {
		cfg := New()
		cfg.SourcePath = ""
		assert.ErrorIs(t, cfg.Validate(), ErrSourcePathRequired)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		cfg := New()
		cfg.NameMatchThreshold = 1.0
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidThreshold)

		cfg.NameMatchThreshold = -0.1
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidThreshold)
	})

	t.Run("candidate cap", func(t *testing.T) {
		cfg := New()
		cfg.CandidateCap = 0
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidCandidateCap)
	})

	t.Run("max results", func(t *testing.T) {
		cfg := New()
		cfg.MaxResults = 0
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidMaxResults)
	})
}

func TestLoad(t *testing.T) {
	t.Run("defaults only", func(t *testing.T) {
		t.Setenv("SDNSCREEN_CONFIG", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "sdn.csv", cfg.SourcePath)
	})

	t.Run("env overrides defaults", func(t *testing.T) {
		t.Setenv("SDNSCREEN_CONFIG", "")
		t.Setenv("SDNSCREEN_SOURCE_PATH", "/data/list.csv")
		t.Setenv("SDNSCREEN_MAX_RESULTS", "25")
		t.Setenv("SDNSCREEN_ASSESSOR_ENABLED", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "/data/list.csv", cfg.SourcePath)
		assert.Equal(t, 25, cfg.MaxResults)
		assert.True(t, cfg.AssessorEnabled)
	})

	t.Run("file layered under env", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "source_path: /from/file.csv\nmax_results: 7\nlog_level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		t.Setenv("SDNSCREEN_CONFIG", path)
		t.Setenv("SDNSCREEN_MAX_RESULTS", "3")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "/from/file.csv", cfg.SourcePath)
		assert.Equal(t, "debug", cfg.LogLevel)
		// Env wins over the file.
		assert.Equal(t, 3, cfg.MaxResults)
	})

	t.Run("missing config file fails", func(t *testing.T) {
		t.Setenv("SDNSCREEN_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		t.Setenv("SDNSCREEN_CONFIG", "")
		t.Setenv("SDNSCREEN_NAME_MATCH_THRESHOLD", "1.5")

		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidThreshold)
	})
}
