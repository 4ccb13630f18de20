package loader

import (
	"regexp"
	"strings"
)

// Extraction patterns for the semi-structured remarks blob. Each sub-field
// is searched independently; a miss leaves the field empty, never errors.
var (
	dobPattern         = regexp.MustCompile(`DOB\s+([^;]+)`)
	nationalityPattern = regexp.MustCompile(`(?i)nationality\s+([^;]+)`)
	pobPattern         = regexp.MustCompile(`POB\s+([^;]+)`)
	akaPattern         = regexp.MustCompile(`a\.k\.a\.\s+'([^']+)'`)
	altPattern         = regexp.MustCompile(`alt\.\s+([^;]+)`)
)

// extractDOB returns the date of birth text from remarks, format preserved.
func extractDOB(remarks string) string {
	if m := dobPattern.FindStringSubmatch(remarks); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractNationality returns the nationality text from remarks.
func extractNationality(remarks string) string {
	if m := nationalityPattern.FindStringSubmatch(remarks); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractPOB returns the place of birth text from remarks.
func extractPOB(remarks string) string {
	if m := pobPattern.FindStringSubmatch(remarks); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractAliases collects aliases from remarks: quoted "a.k.a." names first,
// then "alt." names, in the order they appear.
func extractAliases(remarks string) []string {
	var aliases []string
	for _, m := range akaPattern.FindAllStringSubmatch(remarks, -1) {
		aliases = append(aliases, m[1])
	}
	for _, m := range altPattern.FindAllStringSubmatch(remarks, -1) {
		aliases = append(aliases, strings.TrimSpace(m[1]))
	}
	return aliases
}
