package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing, so identical content
// always produces the same ID.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Entry represents a single watchlist record.
// An Entry is immutable after load: the derived fields (DOB, Nationality,
// POB, Aliases) are extracted once from Remarks by the loader and never
// change afterwards, so entries are safe to share across concurrent searches.
type Entry struct {
	ID      string
	Name    string
	Type    string // free text, e.g. "individual", or empty
	Program string // sanctions program tag
	Title   string
	Remarks string

	// Derived from Remarks at load time. Original formats preserved.
	DOB         string
	Nationality string
	POB         string
	Aliases     []string
}

// IsIndividual reports whether the entry's type classifies it as a person
// rather than an organization.
func (e *Entry) IsIndividual() bool {
	return strings.Contains(strings.ToLower(e.Type), "individual")
}

// ParsedQuery is the structured form of a raw search query.
// DOB and Nationality are empty when the query carried no such hint.
type ParsedQuery struct {
	Name        string
	DOB         string
	Nationality string
}

// ConfidenceLevel summarizes final score plus corroborating-signal count.
type ConfidenceLevel string

const (
	ConfidenceHigh       ConfidenceLevel = "HIGH"
	ConfidenceMediumHigh ConfidenceLevel = "MEDIUM-HIGH"
	ConfidenceMedium     ConfidenceLevel = "MEDIUM"
	ConfidenceLowMedium  ConfidenceLevel = "LOW-MEDIUM"
	ConfidenceLow        ConfidenceLevel = "LOW"
)

// ParseConfidenceLevel maps a textual confidence to a ConfidenceLevel.
// Unknown values map to ConfidenceLow rather than erroring, since the
// external assessor's vocabulary is not under our control.
func ParseConfidenceLevel(s string) ConfidenceLevel {
	switch ConfidenceLevel(strings.ToUpper(strings.TrimSpace(s))) {
	case ConfidenceHigh:
		return ConfidenceHigh
	case ConfidenceMediumHigh:
		return ConfidenceMediumHigh
	case ConfidenceMedium:
		return ConfidenceMedium
	case ConfidenceLowMedium:
		return ConfidenceLowMedium
	default:
		return ConfidenceLow
	}
}

// Candidate associates an Entry with the scoring envelope of one search.
// Created by the step-1 matcher, mutated in place by the step-2 ranker,
// and discarded once the result list is assembled. Never shared across queries.
type Candidate struct {
	Entry *Entry

	// NameScore is the step-1 similarity score. Fixed once by the matcher
	// and preserved verbatim in the final result.
	NameScore float64

	// Score is the running enhanced score. Starts equal to NameScore and
	// is updated by the ranker.
	Score float64

	Confidence  ConfidenceLevel
	Reasons     []string
	Explanation string
}

// MatchDetails carries the structured record fields of a result.
type MatchDetails struct {
	ID          string   `json:"id"`
	Program     string   `json:"program"`
	Nationality string   `json:"nationality"`
	DOB         string   `json:"dob"`
	POB         string   `json:"pob"`
	Aliases     []string `json:"aliases"`
	Remarks     string   `json:"remarks"`
}

// MatchResult is a single formatted search result.
// LLMScore is the enhanced step-2 score; Score duplicates it for callers
// that still read the legacy field.
type MatchResult struct {
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	NameMatchScore float64         `json:"name_match_score"`
	LLMScore       float64         `json:"llm_score"`
	Score          float64         `json:"score"`
	Confidence     ConfidenceLevel `json:"confidence"`
	MatchReasons   []string        `json:"match_reasons"`
	Details        MatchDetails    `json:"details"`
	Explanation    string          `json:"explanation,omitempty"`
}

// SearchResponse is the full response for one search request.
type SearchResponse struct {
	Query        string        `json:"query"`
	TotalMatches int           `json:"total_matches"`
	Results      []MatchResult `json:"results"`
}

// Stats summarizes the loaded record set. Computed on demand, never cached.
type Stats struct {
	TotalEntries int `json:"total_entries"`
	Individuals  int `json:"individuals"`
	Entities     int `json:"entities"`
	Programs     int `json:"programs"`
}
