package mock

import (
	"context"
	"strings"
	"sync"
)

// MockVariator is a test double for assess.VariationGenerator.
// It allows custom behavior injection via function fields.
type MockVariator struct {
	// GenerateNameVariationsFunc is called by GenerateNameVariations if set.
	// If nil, uses a default deterministic reordering.
	GenerateNameVariationsFunc func(ctx context.Context, name string, maxCount int) ([]string, error)

	mu        sync.Mutex
	callCount int
}

// NewMockVariator creates a mock variation generator with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockVariator() *MockVariator {
	return &MockVariator{}
}

// GenerateNameVariations returns simple deterministic variations.
// Default behavior: the lower-cased name plus a "last, first" reordering
// when the name has at least two parts.
func (m *MockVariator) GenerateNameVariations(ctx context.Context, name string, maxCount int) ([]string, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.GenerateNameVariationsFunc != nil {
		return m.GenerateNameVariationsFunc(ctx, name, maxCount)
	}

	variations := []string{name}
	parts := strings.Fields(strings.ToLower(name))
	if len(parts) >= 2 {
		variations = append(variations, parts[len(parts)-1]+", "+strings.Join(parts[:len(parts)-1], " "))
	}
	if len(variations) > maxCount {
		variations = variations[:maxCount]
	}
	return variations, nil
}

// CallCount returns the number of times GenerateNameVariations was called.
func (m *MockVariator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockVariator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.GenerateNameVariationsFunc = nil
}
