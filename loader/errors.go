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


package loader

import "errors"

var (
	// ErrSourceNotFound indicates the watchlist source file does not exist.
	// This is the only fatal load error: without a source the screening
	// capability is unavailable.
	ErrSourceNotFound = errors.New("watchlist source file not found")

	// ErrSourceRead indicates the source file exists but could not be read.
	ErrSourceRead = errors.New("watchlist source file could not be read")
)
