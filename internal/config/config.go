// Package config loads and validates Termlens configuration.
//
// Settings come from three layers, later layers winning:
//  1. built-in defaults
//  2. a YAML config file (.termlens.yaml)
//  3. TERMLENS_* environment variables
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Aman-CERP/termlens/internal/errors"
)

// DefaultConfigFile is the config file name looked up in the working directory.
const DefaultConfigFile = ".termlens.yaml"

// Config is the complete Termlens configuration.
type Config struct {
	Version  int            `yaml:"version"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Index    IndexConfig    `yaml:"index"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AnalysisConfig configures the tokenization pipeline.
type AnalysisConfig struct {
	// MinTokenLength drops tokens shorter than this many runes.
	MinTokenLength int `yaml:"min_token_length"`

	// StopWords are removed after lowercasing.
	StopWords []string `yaml:"stop_words"`
}

// IndexConfig configures segment construction.
type IndexConfig struct {
	// MaxSegmentDocs is the number of documents per segment before sealing.
	MaxSegmentDocs int `yaml:"max_segment_docs"`

	// FieldCacheSize is the per-segment LRU size for field dictionary views.
	FieldCacheSize int `yaml:"field_cache_size"`
}

// ScoringConfig configures the BM25 scorer defaults.
type ScoringConfig struct {
	// Field is the default field scored by the CLI.
	Field string `yaml:"field"`

	// K1 is the BM25 term-frequency saturation parameter.
	K1 float64 `yaml:"k1"`

	// B is the BM25 length-normalization parameter.
	B float64 `yaml:"b"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: 1,
		Analysis: AnalysisConfig{
			MinTokenLength: 2,
		},
		Index: IndexConfig{
			MaxSegmentDocs: 128,
			FieldCacheSize: 8,
		},
		Scoring: ScoringConfig{
			Field: "body",
			K1:    1.2,
			B:     0.75,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path, falling back to defaults when the file
// does not exist, then applies environment overrides and validates.
// An empty path means DefaultConfigFile.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only; fine.
	case err != nil:
		return nil, errors.New(errors.ErrCodeConfigNotFound,
			fmt.Sprintf("cannot read config file %s", path), err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.ConfigError(
				fmt.Sprintf("cannot parse config file %s", path), err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Analysis.MinTokenLength < 1 {
		return errors.ConfigError("analysis.min_token_length must be >= 1", nil)
	}
	if c.Index.MaxSegmentDocs < 1 {
		return errors.ConfigError("index.max_segment_docs must be >= 1", nil)
	}
	if c.Index.FieldCacheSize < 1 {
		return errors.ConfigError("index.field_cache_size must be >= 1", nil)
	}
	if c.Scoring.Field == "" {
		return errors.ConfigError("scoring.field must not be empty", nil)
	}
	if c.Scoring.K1 < 0 {
		return errors.ConfigError("scoring.k1 must be >= 0", nil)
	}
	if c.Scoring.B < 0 || c.Scoring.B > 1 {
		return errors.ConfigError("scoring.b must be within [0, 1]", nil)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.ConfigError(
			fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level), nil)
	}
	return nil
}

// applyEnv overlays TERMLENS_* environment variables. Invalid values are
// ignored; validation happens afterwards on the merged result.
func (c *Config) applyEnv() {
	if v := os.Getenv("TERMLENS_SCORING_FIELD"); v != "" {
		c.Scoring.Field = v
	}
	if v := os.Getenv("TERMLENS_SCORING_K1"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Scoring.K1 = f
		}
	}
	if v := os.Getenv("TERMLENS_SCORING_B"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Scoring.B = f
		}
	}
	if v := os.Getenv("TERMLENS_MAX_SEGMENT_DOCS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Index.MaxSegmentDocs = n
		}
	}
	if v := os.Getenv("TERMLENS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}
