package rank

import "github.com/poiesic/sdnscreen/core"

// confidenceFor buckets a final score into a confidence level, taking into
// account how many corroborating signals were found beyond the base name
// match.
func confidenceFor(score float64, corroborating int) core.ConfidenceLevel {
	switch {
	case score > 0.8 && corroborating >= 2:
		return core.ConfidenceHigh
	case score > 0.6 && corroborating >= 1:
		return core.ConfidenceMediumHigh
	case score > 0.5:
		return core.ConfidenceMedium
	case score > 0.3:
		return core.ConfidenceLowMedium
	default:
		return core.ConfidenceLow
	}
}
