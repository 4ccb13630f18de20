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


package mock

import "github.com/poiesic/sdnscreen/assess"

// MockProvider is a test double for assess.Provider.
// It aggregates mock variator, assessor, and explainer instances.
type MockProvider struct {
	variator  *MockVariator
	assessor  *MockAssessor
	explainer *MockExplainer
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns assess.Provider interface for consistency with production
// constructors. Use GetMockVariator()/GetMockAssessor()/GetMockExplainer()
// to access concrete types for assertions.
func NewMockProvider() assess.Provider {
	return &MockProvider{
		variator:  NewMockVariator(),
		assessor:  NewMockAssessor(),
		explainer: NewMockExplainer(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(variator *MockVariator, assessor *MockAssessor, explainer *MockExplainer) assess.Provider {
	return &MockProvider{
		variator:  variator,
		assessor:  assessor,
		explainer: explainer,
	}
}

// Variations returns the mock variator.
func (p *MockProvider) Variations() assess.VariationGenerator {
	return p.variator
}

// Assessor returns the mock assessor.
func (p *MockProvider) Assessor() assess.MatchAssessor {
	return p.assessor
}

// Explainer returns the mock explainer.
func (p *MockProvider) Explainer() assess.Explainer {
	return p.explainer
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockVariator returns the underlying mock variator for test assertions.
func (p *MockProvider) GetMockVariator() *MockVariator {
	return p.variator
}

// GetMockAssessor returns the underlying mock assessor for test assertions.
func (p *MockProvider) GetMockAssessor() *MockAssessor {
	return p.assessor
}

// GetMockExplainer returns the underlying mock explainer for test assertions.
func (p *MockProvider) GetMockExplainer() *MockExplainer {
	return p.explainer
}
