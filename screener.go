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


package sdnscreen

import (
	"context"
	"log/slog"

	"github.com/poiesic/sdnscreen/assess"
	"github.com/poiesic/sdnscreen/assess/openai"
	badgercache "github.com/poiesic/sdnscreen/cache/badger"
	"github.com/poiesic/sdnscreen/config"
	"github.com/poiesic/sdnscreen/core"
	"github.com/poiesic/sdnscreen/loader"
	"github.com/poiesic/sdnscreen/match"
	"github.com/poiesic/sdnscreen/rank"
	"github.com/poiesic/sdnscreen/screening"
)

// Screener wires the full screening stack: source loading, the two-stage
// pipeline, the optional assessor provider, and the optional assessment
// cache. It is the single entry point for embedding the screener.
type Screener struct {
	cfg      *config.Config
	service  *screening.Service
	provider assess.Provider   // nil when assessor disabled
	cache    *badgercache.Cache // nil when caching disabled
	logger   *slog.Logger
}

// ScreenerOption configures a Screener.
type ScreenerOption func(*screenerOptions)

type screenerOptions struct {
	provider assess.Provider
}

// WithProvider supplies a pre-built assessor provider, overriding the
// configured one. The provider's lifecycle remains with the caller; Close
// does not close it. Intended for tests and embedders with custom backends.
func WithProvider(provider assess.Provider) ScreenerOption {
	return func(o *screenerOptions) {
		o.provider = provider
	}
}

// NewScreener loads the configured watchlist source and assembles the
// screening pipeline. The load happens once; the record set is immutable
// for the Screener's lifetime.
func NewScreener(ctx context.Context, cfg *config.Config, opts ...ScreenerOption) (*Screener, error) {
	if cfg == nil {
		cfg = config.New()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &screenerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	logger := slog.Default().With("component", "screener")

	ldr, err := loader.NewLoader(cfg.SourcePath)
	if err != nil {
		return nil, err
	}
	entries, err := ldr.Load(ctx)
	if err != nil {
		return nil, err
	}

	s := &Screener{
		cfg:    cfg,
		logger: logger,
	}

	var variations match.VariationStrategy = match.RuleStrategy{}
	var rankOpts []rank.Option
	var serviceOpts []screening.Option

	provider := options.provider
	ownsProvider := false
	maxVariations := assess.DefaultConfig().MaxVariations

	if provider == nil && cfg.AssessorEnabled {
		if cfg.CachePath != "" {
			cache, err := badgercache.Open(cfg.CachePath)
			if err != nil {
				return nil, err
			}
			s.cache = cache
		}

		var providerOpts []openai.Option
		if s.cache != nil {
			providerOpts = append(providerOpts, openai.WithCache(s.cache))
		}

		assessCfg := assess.NewConfig(
			assess.WithHost(cfg.AssessorHost),
			assess.WithModel(cfg.AssessorModel),
			assess.WithToken(cfg.AssessorAPIKey),
			assess.WithPoolSize(cfg.CandidateCap),
		)
		provider, err = openai.NewProvider(assessCfg, providerOpts...)
		if err != nil {
			s.closeCache()
			return nil, err
		}
		ownsProvider = true
		maxVariations = assessCfg.MaxVariations
	}

	if provider != nil {
		variations = match.NewAssessorStrategy(provider.Variations(), maxVariations)
		rankOpts = append(rankOpts, rank.WithAssessor(provider.Assessor()))
		serviceOpts = append(serviceOpts, screening.WithExplainer(provider.Explainer()))
	}

	matcher := match.NewMatcher(
		match.WithThreshold(cfg.NameMatchThreshold),
		match.WithCandidateCap(cfg.CandidateCap),
	)
	ranker := rank.NewRanker(rankOpts...)

	service, err := screening.NewService(entries, variations, matcher, ranker, serviceOpts...)
	if err != nil {
		if ownsProvider {
			provider.Close()
		}
		s.closeCache()
		return nil, err
	}

	s.service = service
	if ownsProvider {
		s.provider = provider
	}

	logger.Info("screener ready",
		"entries", len(entries),
		"assessor", provider != nil,
		"cache", s.cache != nil)
	return s, nil
}

// Search screens query and returns up to maxResults matches.
// A maxResults of 0 uses the configured default.
func (s *Screener) Search(ctx context.Context, query string, maxResults int) (*core.SearchResponse, error) {
	if maxResults == 0 {
		maxResults = s.cfg.MaxResults
	}
	return s.service.Search(ctx, query, maxResults)
}

// Stats returns summary statistics over the loaded record set.
func (s *Screener) Stats() core.Stats {
	return s.service.Stats()
}

// Health reports service readiness.
func (s *Screener) Health() screening.Health {
	return s.service.Health()
}

// Service exposes the underlying screening service for advanced use, such
// as attaching a search monitor.
func (s *Screener) Service() *screening.Service {
	return s.service
}

// Close releases the assessor provider and the assessment cache.
func (s *Screener) Close() error {
	if s.provider != nil {
		if err := s.provider.Close(); err != nil {
			s.logger.Error("error closing assessor provider", "err", err)
		}
	}
	return s.closeCache()
}

func (s *Screener) closeCache() error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Close(); err != nil {
		s.logger.Error("error closing assessment cache", "err", err)
		return err
	}
	return nil
}
