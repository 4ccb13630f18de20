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
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/sdnscreen/assess"
	"github.com/poiesic/sdnscreen/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Assessor implements assess.MatchAssessor using OpenAI-compatible chat APIs.
// Batched assessments fan out over a bounded worker pool; each candidate is
// assessed independently so one failure or slow call never affects the rest.
type Assessor struct {
	client      llms.Model
	pool        *ants.Pool
	cache       assess.AssessmentCache // optional, nil disables memoization
	model       string
	callTimeout time.Duration
	logger      *slog.Logger
}

// verdict is an internal type used for JSON unmarshaling.
// It matches the structure requested from the LLM.
type verdict struct {
	IsMatch    bool    `json:"is_match"`
	Confidence string  `json:"confidence"`
	Score      float64 `json:"score"`
	Reasoning  string  `json:"reasoning"`
}

// newAssessor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newAssessor(config *assess.Config, cache assess.AssessmentCache) (*Assessor, error) {
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

	pool, err := ants.NewPool(config.PoolSize)
	if err != nil {
		return nil, err
	}

	return &Assessor{
		client:      client,
		pool:        pool,
		cache:       cache,
		model:       config.Model,
		callTimeout: config.CallTimeout,
		logger:      slog.Default().With("component", "openai-assessor"),
	}, nil
}

// NewAssessor creates a new match assessor using the provided configuration.
// The cache may be nil.
//
// Returns assess.MatchAssessor interface to enforce abstraction.
func NewAssessor(config *assess.Config, cache assess.AssessmentCache) (assess.MatchAssessor, error) {
	return newAssessor(config, cache)
}

// AssessMatch evaluates one candidate against the query context.
func (a *Assessor) AssessMatch(ctx context.Context, query assess.QueryContext, candidate assess.CandidateContext) (*assess.Assessment, error) {
	key := assessmentKey(a.model, query, candidate)
	if a.cache != nil {
		cached, ok, err := a.cache.Get(ctx, key)
		if err != nil {
			a.logger.Warn("assessment cache read failed", "err", err)
		} else if ok {
			a.logger.Debug("assessment cache hit", "candidate", candidate.Name)
			return cached, nil
		}
	}

	assessment, err := a.assess(ctx, query, candidate)
	if err != nil {
		return nil, err
	}

	if a.cache != nil {
		if err := a.cache.Put(ctx, key, assessment); err != nil {
			a.logger.Warn("assessment cache write failed", "err", err)
		}
	}
	return assessment, nil
}

func (a *Assessor) assess(ctx context.Context, query assess.QueryContext, candidate assess.CandidateContext) (*assess.Assessment, error) {
	ctx, cancel := context.WithTimeout(ctx, a.callTimeout)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(assessmentSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildAssessmentPrompt(query, candidate)),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result verdict
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.1), llms.WithMaxTokens(300), llms.WithJSONMode())
		if err != nil {
			a.logger.Error("failed to generate assessment", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			return nil, assess.ErrEmptyResponse
		}

		responseText := stripFences(response.Choices[0].Content)
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			a.logger.Warn("error parsing assessment response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		a.logger.Error("failed to parse assessment response after retries", "err", lastErr)
		return nil, fmt.Errorf("%w: %w", assess.ErrMalformedResponse, lastErr)
	}

	assessment := &assess.Assessment{
		IsMatch:    result.IsMatch,
		Confidence: strings.ToUpper(strings.TrimSpace(result.Confidence)),
		Score:      clampUnit(result.Score),
		Reasoning:  result.Reasoning,
	}

	a.logger.Debug("assessment complete",
		"candidate", candidate.Name,
		"is_match", assessment.IsMatch,
		"confidence", assessment.Confidence,
		"score", assessment.Score)

	return assessment, nil
}

// AssessMatches evaluates all candidates concurrently on the worker pool.
// The returned slice is index-aligned with candidates; entries for failed
// assessments are nil. Returns an error only when ctx is cancelled.
func (a *Assessor) AssessMatches(ctx context.Context, query assess.QueryContext, candidates []assess.CandidateContext) ([]*assess.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]*assess.Assessment, len(candidates))
	var wg sync.WaitGroup

	for i := range candidates {
		wg.Add(1)
		candidate := candidates[i]
		slot := i
		err := a.pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			assessment, err := a.AssessMatch(ctx, query, candidate)
			if err != nil {
				a.logger.Warn("assessment failed for candidate", "candidate", candidate.Name, "err", err)
				return
			}
			results[slot] = assessment
		})
		if err != nil {
			wg.Done()
			a.logger.Error("failed to submit assessment task", "candidate", candidate.Name, "err", err)
		}
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// release frees the worker pool. Called by Provider.Close.
func (a *Assessor) release() {
	a.pool.Release()
}

// assessmentKey derives a deterministic cache key from everything that can
// influence a verdict: the model plus the full query and candidate context.
func assessmentKey(model string, query assess.QueryContext, candidate assess.CandidateContext) core.ID {
	var b strings.Builder
	for _, part := range []string{
		model,
		query.Name, query.DOB, query.Nationality,
		candidate.Name, candidate.Type, candidate.DOB, candidate.POB,
		candidate.Nationality, candidate.Program, candidate.Remarks,
	} {
		b.WriteString(part)
		b.WriteByte('\x1f')
	}
	for _, alias := range candidate.Aliases {
		b.WriteString(alias)
		b.WriteByte('\x1f')
	}
	return core.IDFromContent(b.String())
}

// clampUnit clamps a score to [0,1].
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
