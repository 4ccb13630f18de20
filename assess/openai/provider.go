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


package openai

import (
	"log/slog"

	"github.com/poiesic/sdnscreen/assess"
)

// Provider implements assess.Provider using OpenAI-compatible services.
// It manages variator, assessor, and explainer instances.
type Provider struct {
	config    *assess.Config
	variator  *NameVariator
	assessor  *Assessor
	explainer *Explainer
	logger    *slog.Logger
}

// Option configures a Provider.
type Option func(*providerOptions)

type providerOptions struct {
	cache assess.AssessmentCache
}

// WithCache attaches an assessment cache to the provider's assessor.
// The cache's lifecycle remains with the caller; Close does not close it.
func WithCache(cache assess.AssessmentCache) Option {
	return func(o *providerOptions) {
		o.cache = cache
	}
}

// NewProvider creates a new assessor provider with OpenAI-compatible services.
// The config is validated and normalized before use.
//
// Returns assess.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *assess.Config, opts ...Option) (assess.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	options := &providerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	variator, err := newNameVariator(config)
	if err != nil {
		return nil, err
	}

	assessor, err := newAssessor(config, options.cache)
	if err != nil {
		return nil, err
	}

	explainer, err := newExplainer(config)
	if err != nil {
		assessor.release()
		return nil, err
	}

	return &Provider{
		config:    config,
		variator:  variator,
		assessor:  assessor,
		explainer: explainer,
		logger:    slog.Default().With("component", "openai-provider"),
	}, nil
}

// Variations returns the name-variation service.
func (p *Provider) Variations() assess.VariationGenerator {
	return p.variator
}

// Assessor returns the match-assessment service.
func (p *Provider) Assessor() assess.MatchAssessor {
	return p.assessor
}

// Explainer returns the explanation service.
func (p *Provider) Explainer() assess.Explainer {
	return p.explainer
}

// Close releases the assessor's worker pool. The underlying HTTP clients
// don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI assessor provider")
	p.assessor.release()
	return nil
}
