package screening

import (
	"regexp"
	"strings"

	"github.com/poiesic/sdnscreen/core"
)

// datePattern recognizes a query segment as a date-of-birth hint.
// Matches numeric day/month/year shapes like 21/06/1955 or 21-6-55.
var datePattern = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`)

// ParseQuery splits the raw query on commas and classifies every segment
// as exactly one of: date-of-birth hint, nationality hint (fixed
// vocabulary), or name fragment. No segment is dropped; name fragments
// are re-joined in order. A query whose every segment classified as a
// hint keeps the raw text as the name.
func ParseQuery(raw string) core.ParsedQuery {
	parts := strings.Split(raw, ",")

	var nameParts []string
	var dob, nationality string

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch {
		case datePattern.MatchString(part):
			dob = part
		case nationalities[strings.ToLower(part)]:
			nationality = part
		default:
			nameParts = append(nameParts, part)
		}
	}

	name := strings.Join(nameParts, ", ")
	if name == "" {
		name = strings.TrimSpace(raw)
	}

	return core.ParsedQuery{
		Name:        name,
		DOB:         dob,
		Nationality: nationality,
	}
}
