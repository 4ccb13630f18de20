package rank

import (
	"fmt"
	"strings"

	"github.com/poiesic/sdnscreen/core"
	"github.com/poiesic/sdnscreen/match"
)

// Additive bonuses for the rule-based scoring path. The final score is
// capped at 1.0.
const (
	dobBonus         = 0.3
	nationalityBonus = 0.2
	programBonus     = 0.15
	typeBonus        = 0.05
	contextTermBonus = 0.02

	// hintSimilarityThreshold gates the nationality and program bonuses.
	hintSimilarityThreshold = 0.8

	// minDateDigits is the minimum digit count on both sides before two
	// date strings are compared at all.
	minDateDigits = 6
)

// orgKeywords mark a query name as referring to an organization.
var orgKeywords = []string{"company", "corp", "inc", "ltd", "bank", "association"}

// applyRuleScoring is the deterministic step-2 scorer. For each candidate
// it starts from the step-1 score, adds the documented context bonuses,
// caps at 1.0, and derives the confidence level.
func applyRuleScoring(query core.ParsedQuery, candidates []*core.Candidate) {
	queryName := strings.ToLower(query.Name)
	queryIsOrg := hasOrgKeyword(queryName)

	for _, candidate := range candidates {
		entry := candidate.Entry
		score := candidate.NameScore
		var extra []string

		// DOB is the strongest corroborating signal
		if query.DOB != "" && entry.DOB != "" && datesOverlap(query.DOB, entry.DOB) {
			score += dobBonus
			extra = append(extra, "DOB match")
		}

		if query.Nationality != "" && entry.Nationality != "" &&
			match.Similarity(query.Nationality, entry.Nationality) > hintSimilarityThreshold {
			score += nationalityBonus
			extra = append(extra, "nationality match")
		}

		// The program tag often carries the country for organizations
		if query.Nationality != "" && entry.Program != "" &&
			match.Similarity(query.Nationality, entry.Program) > hintSimilarityThreshold {
			score += programBonus
			extra = append(extra, "country/program match")
		}

		if entry.IsIndividual() {
			if !queryIsOrg {
				score += typeBonus
				extra = append(extra, "individual type match")
			}
		} else if queryIsOrg {
			score += typeBonus
			extra = append(extra, "entity type match")
		}

		if entry.Remarks != "" {
			if n := contextTermCount(queryName, entry.Remarks); n > 0 {
				score += float64(n) * contextTermBonus
				extra = append(extra, fmt.Sprintf("context relevance (%d terms)", n))
			}
		}

		if score > 1.0 {
			score = 1.0
		}

		candidate.Score = score
		candidate.Confidence = confidenceFor(score, len(extra))
		candidate.Reasons = append(candidate.Reasons, extra...)
	}
}

// datesOverlap compares two date strings tolerantly of format differences:
// all non-digit characters are stripped and the shorter digit run must be
// contained in the longer one (either direction). Both sides need at least
// six digits to be comparable.
func datesOverlap(a, b string) bool {
	da := digitsOf(a)
	db := digitsOf(b)
	if len(da) < minDateDigits || len(db) < minDateDigits {
		return false
	}
	return strings.Contains(da, db) || strings.Contains(db, da)
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hasOrgKeyword(queryName string) bool {
	for _, kw := range orgKeywords {
		if strings.Contains(queryName, kw) {
			return true
		}
	}
	return false
}

// contextTermCount counts distinct query-name tokens found literally in
// the remarks text.
func contextTermCount(queryName, remarks string) int {
	remarksLower := strings.ToLower(remarks)
	seen := make(map[string]bool)
	count := 0
	for _, word := range strings.Fields(queryName) {
		if seen[word] {
			continue
		}
		seen[word] = true
		if strings.Contains(remarksLower, word) {
			count++
		}
	}
	return count
}
