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


// Package match implements the first screening stage: flexible name
// matching that filters the full record set down to a small candidate set.
//
// Variations of the query name (rule-based or assessor-generated) are
// scored against every record's name and aliases with a normalized edit
// similarity. Records whose best score strictly exceeds the threshold
// become candidates, sorted descending and capped so the expensive second
// stage has a bounded fan-out.
package match

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/sdnscreen/core"
)

const (
	// DefaultThreshold is the default minimum similarity for a candidate.
	DefaultThreshold = 0.4

	// DefaultCandidateCap bounds the candidate set handed to the ranker,
	// and with it the per-query assessor fan-out.
	DefaultCandidateCap = 10
)

// Matcher filters entries by name similarity against query variations.
type Matcher struct {
	threshold    float64
	candidateCap int
	logger       *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithThreshold sets the minimum similarity score.
// Default is DefaultThreshold.
func WithThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.threshold = threshold
	}
}

// WithCandidateCap sets the candidate set size limit.
// Default is DefaultCandidateCap.
func WithCandidateCap(cap int) Option {
	return func(m *Matcher) {
		if cap < 1 {
			cap = 1
		}
		m.candidateCap = cap
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
	}
}

// NewMatcher creates a Matcher with the given options.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		threshold:    DefaultThreshold,
		candidateCap: DefaultCandidateCap,
		logger:       slog.Default().With("component", "matcher"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Filter scores every entry against the query variations and returns the
// candidates whose best score strictly exceeds the threshold, sorted
// descending by score and truncated to the candidate cap. An empty
// variation list or entry set yields an empty candidate list.
func (m *Matcher) Filter(variations []string, entries []*core.Entry) []*core.Candidate {
	if len(variations) == 0 || len(entries) == 0 {
		return nil
	}

	var candidates []*core.Candidate
	for _, entry := range entries {
		score, matchType := m.bestScore(variations, entry)
		if score > m.threshold {
			m.logger.Debug("candidate", "name", entry.Name, "score", score, "via", matchType)
			candidates = append(candidates, &core.Candidate{
				Entry:     entry,
				NameScore: score,
				Score:     score,
				Reasons:   []string{fmt.Sprintf("%s match: %.2f", matchType, score)},
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > m.candidateCap {
		candidates = candidates[:m.candidateCap]
	}

	m.logger.Info("filtered candidates",
		"candidates", len(candidates),
		"threshold", m.threshold)
	return candidates
}

// bestScore returns the highest similarity between any variation and the
// entry's name or aliases, tagged with where the best score came from.
func (m *Matcher) bestScore(variations []string, entry *core.Entry) (float64, string) {
	best := 0.0
	matchType := ""

	targetName := strings.ToLower(strings.TrimSpace(entry.Name))
	for _, v := range variations {
		if score := Similarity(v, targetName); score > best {
			best = score
			matchType = "name"
		}
	}

	for _, alias := range entry.Aliases {
		target := strings.ToLower(strings.TrimSpace(alias))
		for _, v := range variations {
			if score := Similarity(v, target); score > best {
				best = score
				matchType = "alias"
			}
		}
	}

	return best, matchType
}
