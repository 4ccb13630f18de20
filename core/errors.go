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

import "errors"

// Domain validation errors
var (
	// ErrInvalidEntry indicates an Entry failed validation.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrEmptyName indicates the entry Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyQuery indicates a search query with no usable text.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrInvalidMaxResults indicates a max-results value outside the
	// accepted 1-100 range.
	ErrInvalidMaxResults = errors.New("max results must be between 1 and 100")
)
