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


// Package cache provides serialization for the optional assessment cache.
//
// The cache memoizes external assessor verdicts keyed by a content hash of
// the full query and candidate context, so repeated screenings of the same
// name against the same record don't re-query the backend. The badger
// sub-package provides the on-disk implementation of
// assess.AssessmentCache. Caching is strictly an optimization: every
// failure path is treated as a miss.
package cache
