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


package match

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/sdnscreen/assess"
)

// VariationStrategy produces the query-name variations used for matching.
// Variations are generated once per query, not per record.
type VariationStrategy interface {
	// Variations returns lower-cased, deduplicated variations of name.
	Variations(ctx context.Context, name string) ([]string, error)
}

// honorifics are title and suffix tokens stripped when generating the
// cleaned rule-based variation.
var honorifics = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sir": true, "jr": true, "sr": true, "ii": true, "iii": true,
}

// RuleStrategy generates variations deterministically: name-order swaps,
// honorific stripping, and standalone long tokens. Always available; it is
// the fallback when the assessor-backed strategy fails.
type RuleStrategy struct{}

// Variations implements VariationStrategy. It never fails.
func (RuleStrategy) Variations(_ context.Context, name string) ([]string, error) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	variations := []string{lowered}

	parts := strings.Fields(lowered)
	if len(parts) >= 2 {
		// Last name, first name
		variations = append(variations, parts[len(parts)-1]+", "+strings.Join(parts[:len(parts)-1], " "))
		// First + last only
		variations = append(variations, parts[0]+" "+parts[len(parts)-1])
	}

	// Remove common titles and suffixes
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		if !honorifics[part] {
			cleaned = append(cleaned, part)
		}
	}
	if len(cleaned) > 0 && len(cleaned) != len(parts) {
		variations = append(variations, strings.Join(cleaned, " "))
	}

	// Standalone tokens help with typos and partial queries
	for _, part := range parts {
		if len(part) > 3 {
			variations = append(variations, part)
		}
	}

	return dedupe(variations), nil
}

// AssessorStrategy delegates variation generation to the external assessor
// and falls back to RuleStrategy when it fails.
type AssessorStrategy struct {
	generator assess.VariationGenerator
	fallback  RuleStrategy
	maxCount  int
	logger    *slog.Logger
}

// NewAssessorStrategy creates an assessor-backed variation strategy
// requesting up to maxCount variations per query.
func NewAssessorStrategy(generator assess.VariationGenerator, maxCount int) *AssessorStrategy {
	return &AssessorStrategy{
		generator: generator,
		maxCount:  maxCount,
		logger:    slog.Default().With("component", "variation-strategy"),
	}
}

// Variations implements VariationStrategy. Assessor output is lower-cased
// for matching; the original name is always present in the result.
func (s *AssessorStrategy) Variations(ctx context.Context, name string) ([]string, error) {
	generated, err := s.generator.GenerateNameVariations(ctx, name, s.maxCount)
	if err != nil {
		s.logger.Warn("assessor variation generation failed, falling back to rule-based", "name", name, "err", err)
		return s.fallback.Variations(ctx, name)
	}

	variations := make([]string, 0, len(generated)+1)
	for _, v := range generated {
		variations = append(variations, strings.ToLower(strings.TrimSpace(v)))
	}

	lowered := strings.ToLower(strings.TrimSpace(name))
	variations = append(variations, lowered)

	return dedupe(variations), nil
}

// dedupe removes duplicates and empty strings, preserving first-seen order.
func dedupe(variations []string) []string {
	seen := make(map[string]bool, len(variations))
	out := make([]string, 0, len(variations))
	for _, v := range variations {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
