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
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/poiesic/sdnscreen/assess"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// NameVariator implements assess.VariationGenerator using OpenAI-compatible chat APIs.
type NameVariator struct {
	client        llms.Model
	maxVariations int
	callTimeout   time.Duration
	logger        *slog.Logger
}

// newNameVariator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newNameVariator(config *assess.Config) (*NameVariator, error) {
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

	return &NameVariator{
		client:        client,
		maxVariations: config.MaxVariations,
		callTimeout:   config.CallTimeout,
		logger:        slog.Default().With("component", "openai-variator"),
	}, nil
}

// NewNameVariator creates a new variation generator using the provided configuration.
//
// Returns assess.VariationGenerator interface to enforce abstraction.
func NewNameVariator(config *assess.Config) (assess.VariationGenerator, error) {
	return newNameVariator(config)
}

// GenerateNameVariations asks the model for up to maxCount variations of name.
// The original name is re-inserted when the model's output omits it.
func (v *NameVariator) GenerateNameVariations(ctx context.Context, name string, maxCount int) ([]string, error) {
	if maxCount < 1 || maxCount > v.maxVariations {
		maxCount = v.maxVariations
	}

	ctx, cancel := context.WithTimeout(ctx, v.callTimeout)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(variationSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildVariationPrompt(name, maxCount)),
			},
		},
	}

	response, err := v.client.GenerateContent(ctx, content, llms.WithTemperature(0.3), llms.WithMaxTokens(500))
	if err != nil {
		v.logger.Error("failed to generate name variations", "name", name, "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		return nil, assess.ErrEmptyResponse
	}

	responseText := stripFences(response.Choices[0].Content)
	if responseText == "" {
		return nil, assess.ErrEmptyResponse
	}

	var variations []string
	if err := json.Unmarshal([]byte(responseText), &variations); err != nil {
		v.logger.Warn("error parsing variation response", "response", responseText, "err", err)
		return nil, fmt.Errorf("%w: %w", assess.ErrMalformedResponse, err)
	}

	// Always include the original name
	if !slices.Contains(variations, name) {
		variations = append([]string{name}, variations...)
	}

	if len(variations) > maxCount {
		variations = variations[:maxCount]
	}

	v.logger.Debug("generated name variations", "name", name, "count", len(variations))
	return variations, nil
}
