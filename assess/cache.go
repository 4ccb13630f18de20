package assess

import (
	"context"

	"github.com/poiesic/sdnscreen/core"
)

// AssessmentCache memoizes assessor verdicts by content-derived key.
// Implementations must be thread-safe. A cache is strictly an
// optimization: misses and cache errors are treated as absent entries.
type AssessmentCache interface {
	// Get returns the cached assessment for key, if present.
	Get(ctx context.Context, key core.ID) (*Assessment, bool, error)

	// Put stores an assessment under key, overwriting any previous value.
	Put(ctx context.Context, key core.ID, assessment *Assessment) error

	// Close releases resources held by the cache.
	Close() error
}
