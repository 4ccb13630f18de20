// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package assess

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for assessor providers.
type Config struct {
	// Host is the base URL for the OpenAI-compatible chat API.
	// Example: "https://api.openai.com/v1" or "http://localhost:11434/v1"
	Host string

	// Model is the model identifier to use for assessments.
	// Example: "gpt-4o-mini", "qwen2.5:3b"
	Model string

	// Token is the API credential. Use "none" for local services that
	// don't require authentication.
	Token string

	// MaxVariations caps the number of name variations requested per query.
	// Default: 10
	MaxVariations int

	// PoolSize bounds the number of concurrent assessment calls per batch.
	// Default: 10, matching the step-1 candidate cap.
	PoolSize int

	// CallTimeout bounds each individual backend call so one slow call
	// cannot stall the rest of a batch.
	// Default: 30s
	CallTimeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the chat API host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithToken sets the API credential.
func WithToken(token string) ConfigOption {
	return func(c *Config) {
		c.Token = token
	}
}

// WithMaxVariations sets the name-variation cap.
func WithMaxVariations(max int) ConfigOption {
	return func(c *Config) {
		c.MaxVariations = max
	}
}

// WithPoolSize sets the concurrent assessment bound.
func WithPoolSize(size int) ConfigOption {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// WithCallTimeout sets the per-call timeout.
func WithCallTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.CallTimeout = d
	}
}

// DefaultConfig returns a Config with sensible defaults for an
// OpenAI-compatible service.
func DefaultConfig() *Config {
	return &Config{
		Host:          "https://api.openai.com/v1",
		Model:         "gpt-4o-mini",
		Token:         "none",
		MaxVariations: 10,
		PoolSize:      10,
		CallTimeout:   30 * time.Second,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to the host if missing, which is
// required by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
	if c.Token == "" {
		c.Token = "none"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("assess config: Host is required")
	}
	if c.Model == "" {
		return errors.New("assess config: Model is required")
	}
	if c.MaxVariations < 1 {
		return errors.New("assess config: MaxVariations must be at least 1")
	}
	if c.PoolSize < 1 {
		return errors.New("assess config: PoolSize must be at least 1")
	}
	if c.CallTimeout <= 0 {
		return errors.New("assess config: CallTimeout must be positive")
	}
	return nil
}
