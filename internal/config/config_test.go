package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/termlens/internal/errors"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".termlens.yaml")
	content := []byte(`
version: 1
index:
  max_segment_docs: 16
scoring:
  field: title
  k1: 0.9
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Index.MaxSegmentDocs)
	assert.Equal(t, "title", cfg.Scoring.Field)
	assert.Equal(t, 0.9, cfg.Scoring.K1)
	// Untouched values keep their defaults
	assert.Equal(t, 0.75, cfg.Scoring.B)
	assert.Equal(t, 8, cfg.Index.FieldCacheSize)
}

func TestLoad_InvalidYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".termlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring: [not a map"), 0o644))

	_, err := Load(path)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".termlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  field: title\n"), 0o644))
	t.Setenv("TERMLENS_SCORING_FIELD", "summary")
	t.Setenv("TERMLENS_SCORING_B", "0.5")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "summary", cfg.Scoring.Field)
	assert.Equal(t, 0.5, cfg.Scoring.B)
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"min token length", func(c *Config) { c.Analysis.MinTokenLength = 0 }},
		{"segment docs", func(c *Config) { c.Index.MaxSegmentDocs = 0 }},
		{"field cache", func(c *Config) { c.Index.FieldCacheSize = 0 }},
		{"empty field", func(c *Config) { c.Scoring.Field = "" }},
		{"negative k1", func(c *Config) { c.Scoring.K1 = -1 }},
		{"b above one", func(c *Config) { c.Scoring.B = 1.5 }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
