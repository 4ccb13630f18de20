package screening

import "github.com/poiesic/sdnscreen/core"

// Health reports whether the service can answer searches.
type Health struct {
	Status  string `json:"status"`
	Loaded  bool   `json:"data_loaded"`
	Entries int    `json:"entries"`
}

// Stats computes summary statistics over the loaded record set.
// Computed on demand; with an immutable record set there is nothing to cache.
func (s *Service) Stats() core.Stats {
	stats := core.Stats{TotalEntries: len(s.entries)}

	programs := make(map[string]bool)
	for _, entry := range s.entries {
		if entry.IsIndividual() {
			stats.Individuals++
		} else {
			stats.Entities++
		}
		if entry.Program != "" {
			programs[entry.Program] = true
		}
	}
	stats.Programs = len(programs)
	return stats
}

// Health reports service readiness. The service is healthy when at least
// one record is loaded.
func (s *Service) Health() Health {
	loaded := len(s.entries) > 0
	status := "healthy"
	if !loaded {
		status = "degraded"
	}
	return Health{
		Status:  status,
		Loaded:  loaded,
		Entries: len(s.entries),
	}
}
