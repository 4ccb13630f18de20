package config

import "errors"

var (
	// ErrSourcePathRequired is returned when no watchlist source is configured.
	ErrSourcePathRequired = errors.New("source_path must not be empty")

	// ErrInvalidThreshold is returned for a threshold outside [0, 1).
	ErrInvalidThreshold = errors.New("name_match_threshold must be in [0, 1)")

	// ErrInvalidCandidateCap is returned for a non-positive candidate cap.
	ErrInvalidCandidateCap = errors.New("candidate_cap must be positive")

	// ErrInvalidMaxResults is returned for a non-positive result limit.
	ErrInvalidMaxResults = errors.New("max_results must be positive")
)
