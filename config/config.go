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


// Package config defines process configuration and its layered loading.
package config

import (
	"github.com/poiesic/sdnscreen/match"
)

// Config contains process configuration for the screening service.
type Config struct {
	// SourcePath locates the watchlist CSV file.
	SourcePath string `koanf:"source_path"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// NameMatchThreshold is the minimum step-1 similarity for a candidate.
	NameMatchThreshold float64 `koanf:"name_match_threshold"`

	// CandidateCap bounds the candidate set handed to the ranker.
	CandidateCap int `koanf:"candidate_cap"`

	// MaxResults is the default result limit for searches.
	MaxResults int `koanf:"max_results"`

	// AssessorEnabled selects assessor-backed ranking over rule-based.
	AssessorEnabled bool `koanf:"assessor_enabled"`

	// AssessorHost is the assessor API base URL.
	AssessorHost string `koanf:"assessor_host"`

	// AssessorModel names the model used for assessments.
	AssessorModel string `koanf:"assessor_model"`

	// AssessorAPIKey authenticates against the assessor API.
	AssessorAPIKey string `koanf:"assessor_api_key"`

	// CachePath locates the on-disk assessment cache.
	// Empty disables caching.
	CachePath string `koanf:"cache_path"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		SourcePath:         "sdn.csv",
		LogLevel:           "info",
		NameMatchThreshold: match.DefaultThreshold,
		CandidateCap:       match.DefaultCandidateCap,
		MaxResults:         10,
		AssessorEnabled:    false,
		AssessorHost:       "https://api.openai.com/v1",
		AssessorModel:      "gpt-4o-mini",
	}
}
