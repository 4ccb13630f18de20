package mock

import (
	"context"
	"sync"

	"github.com/poiesic/sdnscreen/assess"
)

// MockAssessor is a test double for assess.MatchAssessor.
// It allows custom behavior injection via function fields.
type MockAssessor struct {
	// AssessMatchFunc is called by AssessMatch if set.
	// If nil, returns a verdict echoing the candidate's step-1 score.
	AssessMatchFunc func(ctx context.Context, query assess.QueryContext, candidate assess.CandidateContext) (*assess.Assessment, error)

	mu        sync.Mutex
	callCount int
}

// NewMockAssessor creates a mock assessor with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockAssessor() *MockAssessor {
	return &MockAssessor{}
}

// AssessMatch returns a deterministic verdict derived from the candidate's
// step-1 score, or delegates to AssessMatchFunc when set.
func (m *MockAssessor) AssessMatch(ctx context.Context, query assess.QueryContext, candidate assess.CandidateContext) (*assess.Assessment, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.AssessMatchFunc != nil {
		return m.AssessMatchFunc(ctx, query, candidate)
	}

	confidence := "LOW"
	switch {
	case candidate.NameScore > 0.8:
		confidence = "HIGH"
	case candidate.NameScore > 0.5:
		confidence = "MEDIUM"
	}

	return &assess.Assessment{
		IsMatch:    candidate.NameScore > 0.5,
		Confidence: confidence,
		Score:      candidate.NameScore,
		Reasoning:  "mock assessment",
	}, nil
}

// AssessMatches evaluates candidates sequentially using AssessMatch.
// Failed entries are nil, mirroring the production contract.
func (m *MockAssessor) AssessMatches(ctx context.Context, query assess.QueryContext, candidates []assess.CandidateContext) ([]*assess.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]*assess.Assessment, len(candidates))
	for i, candidate := range candidates {
		assessment, err := m.AssessMatch(ctx, query, candidate)
		if err != nil {
			continue
		}
		results[i] = assessment
	}
	return results, nil
}

// CallCount returns the number of times AssessMatch was called.
func (m *MockAssessor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockAssessor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.AssessMatchFunc = nil
}
