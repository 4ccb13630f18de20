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


// Package screening orchestrates the two-stage screening pipeline: query
// parsing, variation generation, candidate filtering, context re-ranking,
// and result formatting.
package screening

import (
	"context"
	"log/slog"

	"github.com/poiesic/sdnscreen/assess"
	"github.com/poiesic/sdnscreen/core"
	"github.com/poiesic/sdnscreen/match"
	"github.com/poiesic/sdnscreen/rank"
)

// Service runs screening searches against an in-memory record set.
// The record set is fixed at construction; Service is safe for concurrent use.
type Service struct {
	entries    []*core.Entry
	variations match.VariationStrategy
	matcher    *match.Matcher
	ranker     *rank.Ranker
	explainer  assess.Explainer // nil disables explanations
	logger     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithExplainer enables explanation generation for high-confidence results.
func WithExplainer(explainer assess.Explainer) Option {
	return func(s *Service) {
		s.explainer = explainer
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewService creates a screening service over the given entries.
// The entries slice is not copied; callers must not mutate it afterwards.
func NewService(entries []*core.Entry, variations match.VariationStrategy, matcher *match.Matcher, ranker *rank.Ranker, opts ...Option) (*Service, error) {
	if variations == nil {
		return nil, ErrVariationStrategyRequired
	}
	if matcher == nil {
		return nil, ErrMatcherRequired
	}
	if ranker == nil {
		return nil, ErrRankerRequired
	}

	s := &Service{
		entries:    entries,
		variations: variations,
		matcher:    matcher,
		ranker:     ranker,
		logger:     slog.Default().With("component", "screening"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Search screens the raw query against the record set and returns up to
// maxResults formatted matches, best first.
func (s *Service) Search(ctx context.Context, query string, maxResults int) (*core.SearchResponse, error) {
	return s.SearchWithMonitor(ctx, query, maxResults, nil)
}

// SearchWithMonitor is Search with pipeline observation hooks.
// A nil monitor is allowed.
func (s *Service) SearchWithMonitor(ctx context.Context, query string, maxResults int, monitor SearchMonitor) (*core.SearchResponse, error) {
	if err := core.ValidateQuery(query); err != nil {
		return nil, err
	}
	if err := core.ValidateMaxResults(maxResults); err != nil {
		return nil, err
	}
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	parsed := ParseQuery(query)
	monitor.AfterParse(parsed)
	s.logger.Debug("parsed query",
		"name", parsed.Name,
		"dob", parsed.DOB,
		"nationality", parsed.Nationality)

	// Variations are generated once per query, not per record.
	variations, err := s.variations.Variations(ctx, parsed.Name)
	if err != nil {
		return nil, err
	}
	monitor.AfterVariations(variations)

	candidates := s.matcher.Filter(variations, s.entries)
	monitor.AfterFilter(candidates)

	// Empty candidate set short-circuits stage two entirely.
	if len(candidates) == 0 {
		s.logger.Info("no candidates above threshold", "query", query)
		monitor.Finish(nil)
		return &core.SearchResponse{
			Query:   query,
			Results: []core.MatchResult{},
		}, nil
	}

	if err := s.ranker.Rank(ctx, parsed, candidates); err != nil {
		return nil, err
	}
	monitor.AfterRank(candidates)

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	s.explain(ctx, parsed, candidates, monitor)

	results := formatResults(candidates)
	monitor.Finish(results)

	s.logger.Info("search complete",
		"query", query,
		"matches", len(results))

	return &core.SearchResponse{
		Query:        query,
		TotalMatches: len(results),
		Results:      results,
	}, nil
}

// explain attaches explanations to high-confidence returned candidates.
// Best-effort: a failed or cancelled explanation leaves the field absent
// and never fails the search.
func (s *Service) explain(ctx context.Context, query core.ParsedQuery, candidates []*core.Candidate, monitor SearchMonitor) {
	if s.explainer == nil {
		return
	}

	queryCtx := assess.QueryContext{
		Name:        query.Name,
		DOB:         query.DOB,
		Nationality: query.Nationality,
	}

	for _, candidate := range candidates {
		if candidate.Confidence != core.ConfidenceHigh && candidate.Confidence != core.ConfidenceMediumHigh {
			continue
		}
		if ctx.Err() != nil {
			return
		}

		text, err := s.explainer.GenerateExplanation(ctx, queryCtx, candidateContext(candidate))
		if err != nil {
			s.logger.Warn("explanation generation failed",
				"name", candidate.Entry.Name,
				"err", err)
			continue
		}
		candidate.Explanation = text
		monitor.ExplanationAdded(candidate.Entry.Name)
	}
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

// formatResults converts ranked candidates into the response shape.
// Both scores are surfaced: the step-1 name score verbatim and the
// enhanced step-2 score.
func formatResults(candidates []*core.Candidate) []core.MatchResult {
	results := make([]core.MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		entry := candidate.Entry
		results = append(results, core.MatchResult{
			Name:           entry.Name,
			Type:           entry.Type,
			NameMatchScore: candidate.NameScore,
			LLMScore:       candidate.Score,
			Score:          candidate.Score,
			Confidence:     candidate.Confidence,
			MatchReasons:   candidate.Reasons,
			Explanation:    candidate.Explanation,
			Details: core.MatchDetails{
				ID:          entry.ID,
				Program:     entry.Program,
				Nationality: entry.Nationality,
				DOB:         entry.DOB,
				POB:         entry.POB,
				Aliases:     entry.Aliases,
				Remarks:     entry.Remarks,
			},
		})
	}
	return results
}
