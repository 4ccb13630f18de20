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


package core

import (
	"fmt"
	"strings"
)

const (
	// MinMaxResults and MaxMaxResults bound the per-request result count.
	MinMaxResults = 1
	MaxMaxResults = 100
)

// ValidateEntry validates an Entry according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//
// NOT validated (extraction is heuristic and absence is expected):
//   - DOB, Nationality, POB, Aliases
//   - ID (rows without one get a content-derived ID at load time)
func ValidateEntry(entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}

	if entry.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyName)
	}

	return nil
}

// ValidateQuery validates the raw query text of a search request.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return ErrEmptyQuery
	}
	return nil
}

// ValidateMaxResults validates a requested result count.
func ValidateMaxResults(maxResults int) error {
	if maxResults < MinMaxResults || maxResults > MaxMaxResults {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxResults, maxResults)
	}
	return nil
}
