package assess

import "context"

// VariationGenerator produces name variations for flexible matching.
// Implementations must be thread-safe for concurrent use.
type VariationGenerator interface {
	// GenerateNameVariations returns up to maxCount variations of name,
	// such as reorderings, transliterations, and common nicknames.
	// The original name is always present in the returned slice.
	// Returns an error if generation fails; callers fall back to
	// rule-based variation generation.
	GenerateNameVariations(ctx context.Context, name string, maxCount int) ([]string, error)
}

// MatchAssessor judges whether a candidate plausibly matches a query.
// Implementations must be thread-safe for concurrent use.
type MatchAssessor interface {
	// AssessMatch evaluates a single candidate against the query context.
	// Returns an error if the backend is unreachable or its output cannot
	// be parsed; callers substitute their documented fallback.
	AssessMatch(ctx context.Context, query QueryContext, candidate CandidateContext) (*Assessment, error)

	// AssessMatches evaluates all candidates concurrently. The returned
	// slice is index-aligned with candidates; an entry is nil when that
	// candidate's assessment failed. Individual failures never abort the
	// batch. A non-nil error is returned only when the batch as a whole
	// could not run (e.g. context cancelled).
	AssessMatches(ctx context.Context, query QueryContext, candidates []CandidateContext) ([]*Assessment, error)
}

// Explainer generates a human-readable rationale for a confirmed match.
// Used only for top-ranked high-confidence results, best-effort.
type Explainer interface {
	// GenerateExplanation returns free text explaining why the candidate
	// matches the query. Returns an error on failure; callers leave the
	// explanation absent.
	GenerateExplanation(ctx context.Context, query QueryContext, match CandidateContext) (string, error)
}

// Provider aggregates assessor services for convenient initialization and
// lifecycle management. A provider creates and manages the variation
// generator, match assessor, and explainer, ensuring they share
// configuration and resources.
type Provider interface {
	// Variations returns the name-variation service.
	Variations() VariationGenerator

	// Assessor returns the match-assessment service.
	Assessor() MatchAssessor

	// Explainer returns the explanation service.
	Explainer() Explainer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
