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


// Package assess provides abstractions for the external match-intelligence
// services used during screening.
//
// This package defines interfaces for assessor operations: name-variation
// generation, per-candidate match assessment, and explanation generation.
// It follows the dependency inversion principle, allowing the matching and
// ranking stages to depend on abstractions rather than concrete
// implementations.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - VariationGenerator: produces name variations for flexible matching
//   - MatchAssessor: judges match plausibility for one or many candidates
//   - Explainer: produces a human-readable rationale for a match
//
// # Implementation Packages
//
// The assess package includes two implementation sub-packages:
//
//   - assess/openai: Production implementation using OpenAI-compatible APIs
//   - assess/mock: Test doubles for unit testing without external dependencies
//
// Every method has a defined degraded behavior: callers never see a panic
// from an unreachable or misbehaving backend, only an error they can fall
// back from. The rule-based paths in match and rank are the fallbacks.
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider) return INTERFACE types to enforce
// abstraction and prevent accidental coupling to concrete implementations.
// Test utility constructors (mock.NewMockAssessor) return CONCRETE types to
// enable test assertions and behavior injection via the mock's public
// methods (CallCount, function fields, Reset).
package assess
