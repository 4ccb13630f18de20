package mock

import (
	"context"
	"sync"

	"github.com/poiesic/sdnscreen/assess"
)

// MockExplainer is a test double for assess.Explainer.
// It allows custom behavior injection via function fields.
type MockExplainer struct {
	// GenerateExplanationFunc is called by GenerateExplanation if set.
	// If nil, returns a fixed explanation string.
	GenerateExplanationFunc func(ctx context.Context, query assess.QueryContext, match assess.CandidateContext) (string, error)

	mu        sync.Mutex
	callCount int
}

// NewMockExplainer creates a mock explainer with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockExplainer() *MockExplainer {
	return &MockExplainer{}
}

// GenerateExplanation returns a fixed explanation, or delegates to
// GenerateExplanationFunc when set.
func (m *MockExplainer) GenerateExplanation(ctx context.Context, query assess.QueryContext, match assess.CandidateContext) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.GenerateExplanationFunc != nil {
		return m.GenerateExplanationFunc(ctx, query, match)
	}
	return "mock explanation for " + match.Name, nil
}

// CallCount returns the number of times GenerateExplanation was called.
func (m *MockExplainer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockExplainer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.GenerateExplanationFunc = nil
}
