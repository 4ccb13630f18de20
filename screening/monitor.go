package screening

import "github.com/poiesic/sdnscreen/core"

// SearchMonitor provides hooks to observe the search pipeline.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterParse(parsed core.ParsedQuery)
	AfterVariations(variations []string)
	AfterFilter(candidates []*core.Candidate)
	AfterRank(candidates []*core.Candidate)
	ExplanationAdded(name string)
	Finish(results []core.MatchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                  {}
func (n *noopMonitor) AfterParse(_ core.ParsedQuery)   {}
func (n *noopMonitor) AfterVariations(_ []string)      {}
func (n *noopMonitor) AfterFilter(_ []*core.Candidate) {}
func (n *noopMonitor) AfterRank(_ []*core.Candidate)   {}
func (n *noopMonitor) ExplanationAdded(_ string)       {}
func (n *noopMonitor) Finish(_ []core.MatchResult)     {}
