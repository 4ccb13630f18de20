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


// Package rank implements the second screening stage: context-aware
// re-scoring of the step-1 candidate set.
//
// Two modes share one contract. The rule-based scorer is deterministic and
// always available; the assessor mode delegates per-candidate judgment to
// the external assessor, fanning out concurrently with per-candidate
// failure isolation. A batch-level assessor failure degrades the whole
// query to the rule-based path; a single-candidate failure degrades only
// that candidate. The step-1 name score is never overwritten.
package rank

import (
	"context"
	"log/slog"
	"sort"

	"github.com/poiesic/sdnscreen/assess"
	"github.com/poiesic/sdnscreen/core"
)

// degradedReason is appended to a candidate whose assessment failed.
const degradedReason = "assessment unavailable, using name match score"

// Ranker re-scores candidates using auxiliary query context.
type Ranker struct {
	assessor assess.MatchAssessor // nil selects the rule-based mode
	logger   *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker)

// WithAssessor enables assessor-backed ranking. A nil assessor leaves the
// ranker in rule-based mode.
func WithAssessor(assessor assess.MatchAssessor) Option {
	return func(r *Ranker) {
		r.assessor = assessor
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
	}
}

// NewRanker creates a Ranker with the given options.
func NewRanker(opts ...Option) *Ranker {
	r := &Ranker{
		logger: slog.Default().With("component", "ranker"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank mutates the candidates in place with enhanced scores, confidence
// levels, and reasons, then re-sorts them descending by enhanced score.
// Ties keep their original relative order.
func (r *Ranker) Rank(ctx context.Context, query core.ParsedQuery, candidates []*core.Candidate) error {
	if len(candidates) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if r.assessor != nil {
		if err := r.rankWithAssessor(ctx, query, candidates); err != nil {
			if ctx.Err() != nil {
				return err
			}
			r.logger.Warn("assessor ranking failed, falling back to rule-based", "err", err)
			applyRuleScoring(query, candidates)
		}
	} else {
		applyRuleScoring(query, candidates)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return nil
}

// rankWithAssessor fans the candidates out to the assessor and applies the
// verdicts in the original candidate order. Candidates whose assessment
// failed are degraded in place at the same index.
func (r *Ranker) rankWithAssessor(ctx context.Context, query core.ParsedQuery, candidates []*core.Candidate) error {
	queryCtx := assess.QueryContext{
		Name:        query.Name,
		DOB:         query.DOB,
		Nationality: query.Nationality,
	}

	contexts := make([]assess.CandidateContext, len(candidates))
	for i, candidate := range candidates {
		contexts[i] = candidateContext(candidate)
	}

	assessments, err := r.assessor.AssessMatches(ctx, queryCtx, contexts)
	if err != nil {
		return err
	}

	degraded := 0
	for i, candidate := range candidates {
		assessment := assessments[i]
		if assessment == nil {
			candidate.Score = candidate.NameScore
			candidate.Confidence = core.ConfidenceLow
			candidate.Reasons = append(candidate.Reasons, degradedReason)
			degraded++
			continue
		}

		candidate.Score = assessment.Score
		candidate.Confidence = core.ParseConfidenceLevel(assessment.Confidence)
		if assessment.Reasoning != "" {
			candidate.Reasons = append(candidate.Reasons, "assessment: "+assessment.Reasoning)
		}
	}

	r.logger.Info("assessor ranking complete",
		"candidates", len(candidates),
		"degraded", degraded)
	return nil
}

func candidateContext(candidate *core.Candidate) assess.CandidateContext {
	entry := candidate.Entry
	return assess.CandidateContext{
		Name:        entry.Name,
		Type:        entry.Type,
		DOB:         entry.DOB,
		POB:         entry.POB,
		Nationality: entry.Nationality,
		Program:     entry.Program,
		Aliases:     entry.Aliases,
		Remarks:     entry.Remarks,
		NameScore:   candidate.NameScore,
	}
}
