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
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/sdnscreen/assess"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Explainer implements assess.Explainer using OpenAI-compatible chat APIs.
type Explainer struct {
	client      llms.Model
	callTimeout time.Duration
	logger      *slog.Logger
}

// newExplainer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newExplainer(config *assess.Config) (*Explainer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Explainer{
		client:      client,
		callTimeout: config.CallTimeout,
		logger:      slog.Default().With("component", "openai-explainer"),
	}, nil
}

// NewExplainer creates a new explanation generator using the provided configuration.
//
// Returns assess.Explainer interface to enforce abstraction.
func NewExplainer(config *assess.Config) (assess.Explainer, error) {
	return newExplainer(config)
}

// GenerateExplanation produces a short plain-text rationale for a match.
func (e *Explainer) GenerateExplanation(ctx context.Context, query assess.QueryContext, match assess.CandidateContext) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(explanationSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildExplanationPrompt(query, match)),
			},
		},
	}

	response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.2), llms.WithMaxTokens(300))
	if err != nil {
		e.logger.Error("failed to generate explanation", "match", match.Name, "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		return "", assess.ErrEmptyResponse
	}

	text := stripFences(response.Choices[0].Content)
	if text == "" {
		return "", assess.ErrEmptyResponse
	}
	return text, nil
}
