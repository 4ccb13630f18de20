package assess

// QueryContext is the structured query handed to the assessor.
type QueryContext struct {
	Name        string
	DOB         string
	Nationality string
}

// CandidateContext is the record context for one candidate under assessment.
type CandidateContext struct {
	Name        string
	Type        string
	DOB         string
	POB         string
	Nationality string
	Program     string
	Aliases     []string
	Remarks     string

	// NameScore is the step-1 similarity score, given to the assessor as
	// context and used to derive fallback verdicts.
	NameScore float64
}

// Assessment is the assessor's verdict on one candidate.
type Assessment struct {
	IsMatch    bool
	Confidence string  // HIGH, MEDIUM, or LOW
	Score      float64 // in [0,1]
	Reasoning  string
}
