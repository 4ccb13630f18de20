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


// Package openai implements the assess interfaces against any
// OpenAI-compatible chat API (OpenAI, Ollama, LocalAI, vLLM).
//
// All structured output is requested as JSON; responses are stripped of
// markdown code fences and passed through a small repair pass before
// parsing. Assessment parsing is retried up to three times. Failures are
// reported as errors so callers can apply their rule-based fallbacks.
package openai
