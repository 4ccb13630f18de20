package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/sdnscreen/assess"
)

const variationSystemPrompt = `You are a name variation generator. Return only JSON arrays.`

const variationPromptTemplate = `Generate up to %d name variations for the person: "%s"

Include variations such as:
- Different name orders (first last, last first)
- Common nicknames and diminutives
- Alternative transliterations
- With/without middle names or initials
- Common spelling variations

Return ONLY a JSON array of name strings, nothing else.
Example: ["John Smith", "Smith, John", "J. Smith", "Johnny Smith"]`

const assessmentSystemPrompt = `You are an expert at identity matching and sanctions screening. Return only valid JSON.`

const assessmentPromptTemplate = `Assess if this is a true match for the search query.

Search Query:
- Name: %s
- Date of Birth: %s
- Nationality/Country: %s

Candidate:
- Name: %s
- Type: %s
- Date of Birth: %s
- Place of Birth: %s
- Nationality: %s
- Program: %s
- Aliases: %s
- Remarks: %s

Analyze the match considering:
1. Name similarity (including aliases)
2. DOB match (if provided)
3. Nationality/country match (if provided)
4. Overall context and likelihood

Return a JSON object with:
{
    "is_match": true/false,
    "confidence": "HIGH"/"MEDIUM"/"LOW",
    "score": 0.0-1.0,
    "reasoning": "Brief explanation"
}`

const explanationSystemPrompt = `You are an expert at sanctions screening. Write concise, factual explanations for compliance analysts. Return plain text only.`

const explanationPromptTemplate = `Explain in 2-3 sentences why this sanctions list entry was matched to the search query, citing the specific signals that support the match.

Search Query:
- Name: %s
- Date of Birth: %s
- Nationality/Country: %s

Matched Entry:
- Name: %s
- Type: %s
- Date of Birth: %s
- Place of Birth: %s
- Nationality: %s
- Program: %s
- Aliases: %s
- Remarks: %s`

// orNotSpecified substitutes the placeholder the prompts use for absent fields.
func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}

// orNone renders an alias list for prompt interpolation.
func orNone(aliases []string) string {
	if len(aliases) == 0 {
		return "None"
	}
	return strings.Join(aliases, ", ")
}

func buildVariationPrompt(name string, maxCount int) string {
	return fmt.Sprintf(variationPromptTemplate, maxCount, name)
}

func buildAssessmentPrompt(query assess.QueryContext, candidate assess.CandidateContext) string {
	return fmt.Sprintf(assessmentPromptTemplate,
		query.Name,
		orNotSpecified(query.DOB),
		orNotSpecified(query.Nationality),
		candidate.Name,
		orNotSpecified(candidate.Type),
		orNotSpecified(candidate.DOB),
		orNotSpecified(candidate.POB),
		orNotSpecified(candidate.Nationality),
		orNotSpecified(candidate.Program),
		orNone(candidate.Aliases),
		orNotSpecified(candidate.Remarks))
}

func buildExplanationPrompt(query assess.QueryContext, match assess.CandidateContext) string {
	return fmt.Sprintf(explanationPromptTemplate,
		query.Name,
		orNotSpecified(query.DOB),
		orNotSpecified(query.Nationality),
		match.Name,
		orNotSpecified(match.Type),
		orNotSpecified(match.DOB),
		orNotSpecified(match.POB),
		orNotSpecified(match.Nationality),
		orNotSpecified(match.Program),
		orNone(match.Aliases),
		orNotSpecified(match.Remarks))
}
