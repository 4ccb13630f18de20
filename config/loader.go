package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SDNSCREEN_CONFIG is set
//  3. env (prefix SDNSCREEN_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("SDNSCREEN_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: SDNSCREEN_SOURCE_PATH, SDNSCREEN_MAX_RESULTS, ...
	// Map env keys like SDNSCREEN_MAX_RESULTS -> max_results (flat keys).
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("SDNSCREEN_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "sdnscreen_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.SourcePath == "" {
		return ErrSourcePathRequired
	}
	if c.NameMatchThreshold < 0 || c.NameMatchThreshold >= 1 {
		return ErrInvalidThreshold
	}
	if c.CandidateCap < 1 {
		return ErrInvalidCandidateCap
	}
	if c.MaxResults < 1 {
		return ErrInvalidMaxResults
	}
	return nil
}
