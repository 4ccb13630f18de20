package screening

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/sdnscreen/assess"
	"github.com/poiesic/sdnscreen/assess/mock"
	"github.com/poiesic/sdnscreen/core"
	"github.com/poiesic/sdnscreen/match"
	"github.com/poiesic/sdnscreen/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []*core.Entry {
	return []*core.Entry{
		{
			ID:          "36",
			Name:        "ZAWAHIRI, Ayman",
			Type:        "individual",
			Program:     "SDGT",
			Remarks:     "DOB 19 Jun 1951; POB Giza, Egypt; nationality Egypt",
			DOB:         "19 Jun 1951",
			Nationality: "Egypt",
			POB:         "Giza, Egypt",
			Aliases:     []string{"ABU MUHAMMAD"},
		},
		{
			ID:      "2676",
			Name:    "AEROCARIBBEAN AIRLINES",
			Program: "CUBA",
		},
		{
			ID:   "5478",
			Name: "HUSSEIN, Saddam",
			Type: "individual",
			DOB:  "28 Apr 1937",
		},
	}
}

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	svc, err := NewService(testEntries(), match.RuleStrategy{}, match.NewMatcher(), rank.NewRanker(), opts...)
	require.NoError(t, err)
	return svc
}

// recordingMonitor captures pipeline hook invocations.
type recordingMonitor struct {
	started      bool
	parsed       core.ParsedQuery
	variations   []string
	filtered     int
	ranked       int
	explained    []string
	finishedWith int
}

func (m *recordingMonitor) Start(string)                    { m.started = true }
func (m *recordingMonitor) AfterParse(p core.ParsedQuery)   { m.parsed = p }
func (m *recordingMonitor) AfterVariations(v []string)      { m.variations = v }
func (m *recordingMonitor) AfterFilter(c []*core.Candidate) { m.filtered = len(c) }
func (m *recordingMonitor) AfterRank(c []*core.Candidate)   { m.ranked = len(c) }
func (m *recordingMonitor) ExplanationAdded(name string)    { m.explained = append(m.explained, name) }
func (m *recordingMonitor) Finish(results []core.MatchResult) {
	m.finishedWith = len(results)
}

func TestNewService(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		svc := newTestService(t)
		assert.NotNil(t, svc)
	})

	t.Run("nil variation strategy", func(t *testing.T) {
		_, err := NewService(testEntries(), nil, match.NewMatcher(), rank.NewRanker())
		assert.Equal(t, ErrVariationStrategyRequired, err)
	})

	t.Run("nil matcher", func(t *testing.T) {
		_, err := NewService(testEntries(), match.RuleStrategy{}, nil, rank.NewRanker())
		assert.Equal(t, ErrMatcherRequired, err)
	})

	t.Run("nil ranker", func(t *testing.T) {
		_, err := NewService(testEntries(), match.RuleStrategy{}, match.NewMatcher(), nil)
		assert.Equal(t, ErrRankerRequired, err)
	})

	t.Run("empty record set is allowed", func(t *testing.T) {
		svc, err := NewService(nil, match.RuleStrategy{}, match.NewMatcher(), rank.NewRanker())
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestSearchValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("empty query", func(t *testing.T) {
		_, err := svc.Search(ctx, "", 10)
		assert.ErrorIs(t, err, core.ErrEmptyQuery)
	})

	t.Run("invalid max results", func(t *testing.T) {
		_, err := svc.Search(ctx, "zawahiri", 0)
		assert.ErrorIs(t, err, core.ErrInvalidMaxResults)

		_, err = svc.Search(ctx, "zawahiri", core.MaxMaxResults+1)
		assert.ErrorIs(t, err, core.ErrInvalidMaxResults)
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("finds reordered name", func(t *testing.T) {
		svc := newTestService(t)
		response, err := svc.Search(ctx, "ayman zawahiri", 10)
		require.NoError(t, err)

		require.NotEmpty(t, response.Results)
		top := response.Results[0]
		assert.Equal(t, "ZAWAHIRI, Ayman", top.Name)
		assert.Equal(t, response.TotalMatches, len(response.Results))
		assert.Equal(t, "ayman zawahiri", response.Query)
	})

	t.Run("dual scores surfaced", func(t *testing.T) {
		svc := newTestService(t)
		response, err := svc.Search(ctx, "zawahiri, 19/06/1951", 10)
		require.NoError(t, err)
		require.NotEmpty(t, response.Results)

		top := response.Results[0]
		assert.Greater(t, top.NameMatchScore, 0.0)
		assert.GreaterOrEqual(t, top.LLMScore, top.NameMatchScore)
		assert.Equal(t, top.LLMScore, top.Score)
		assert.NotEmpty(t, top.MatchReasons)
		assert.NotEmpty(t, top.Confidence)
	})

	t.Run("details carry record fields", func(t *testing.T) {
		svc := newTestService(t)
		response, err := svc.Search(ctx, "ayman zawahiri", 10)
		require.NoError(t, err)
		require.NotEmpty(t, response.Results)

		details := response.Results[0].Details
		assert.Equal(t, "36", details.ID)
		assert.Equal(t, "SDGT", details.Program)
		assert.Equal(t, "19 Jun 1951", details.DOB)
		assert.Equal(t, []string{"ABU MUHAMMAD"}, details.Aliases)
	})

	t.Run("no match returns empty result set", func(t *testing.T) {
		svc := newTestService(t)
		response, err := svc.Search(ctx, "xqzjvw plmtkr", 10)
		require.NoError(t, err)

		assert.Equal(t, 0, response.TotalMatches)
		assert.NotNil(t, response.Results)
		assert.Empty(t, response.Results)
	})

	t.Run("max results truncates", func(t *testing.T) {
		svc := newTestService(t)
		response, err := svc.Search(ctx, "hussein", 1)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(response.Results), 1)
	})
}

func TestSearchShortCircuitsAssessor(t *testing.T) {
	assessor := mock.NewMockAssessor()
	ranker := rank.NewRanker(rank.WithAssessor(assessor))

	svc, err := NewService(testEntries(), match.RuleStrategy{}, match.NewMatcher(), ranker)
	require.NoError(t, err)

	response, err := svc.Search(context.Background(), "xqzjvw plmtkr", 10)
	require.NoError(t, err)

	assert.Empty(t, response.Results)
	// Stage two never ran.
	assert.Equal(t, 0, assessor.CallCount())
}

func TestSearchExplanations(t *testing.T) {
	ctx := context.Background()

	// Assessor that always returns a high-confidence verdict.
	assessor := mock.NewMockAssessor()
	assessor.AssessMatchFunc = func(_ context.Context, _ assess.QueryContext, c assess.CandidateContext) (*assess.Assessment, error) {
		return &assess.Assessment{IsMatch: true, Confidence: "HIGH", Score: 0.95, Reasoning: "strong"}, nil
	}

	t.Run("high confidence results get explanations", func(t *testing.T) {
		explainer := mock.NewMockExplainer()
		svc, err := NewService(testEntries(), match.RuleStrategy{}, match.NewMatcher(),
			rank.NewRanker(rank.WithAssessor(assessor)), WithExplainer(explainer))
		require.NoError(t, err)

		response, err := svc.Search(ctx, "ayman zawahiri", 10)
		require.NoError(t, err)
		require.NotEmpty(t, response.Results)

		assert.NotEmpty(t, response.Results[0].Explanation)
		assert.Greater(t, explainer.CallCount(), 0)
	})

	t.Run("low confidence results get none", func(t *testing.T) {
		lowAssessor := mock.NewMockAssessor()
		lowAssessor.AssessMatchFunc = func(_ context.Context, _ assess.QueryContext, _ assess.CandidateContext) (*assess.Assessment, error) {
			return &assess.Assessment{IsMatch: false, Confidence: "LOW", Score: 0.2}, nil
		}

		explainer := mock.NewMockExplainer()
		svc, err := NewService(testEntries(), match.RuleStrategy{}, match.NewMatcher(),
			rank.NewRanker(rank.WithAssessor(lowAssessor)), WithExplainer(explainer))
		require.NoError(t, err)

		response, err := svc.Search(ctx, "ayman zawahiri", 10)
		require.NoError(t, err)
		require.NotEmpty(t, response.Results)

		assert.Empty(t, response.Results[0].Explanation)
		assert.Equal(t, 0, explainer.CallCount())
	})

	t.Run("explanation failure is non-fatal", func(t *testing.T) {
		explainer := mock.NewMockExplainer()
		explainer.GenerateExplanationFunc = func(context.Context, assess.QueryContext, assess.CandidateContext) (string, error) {
			return "", errors.New("backend unreachable")
		}

		svc, err := NewService(testEntries(), match.RuleStrategy{}, match.NewMatcher(),
			rank.NewRanker(rank.WithAssessor(assessor)), WithExplainer(explainer))
		require.NoError(t, err)

		response, err := svc.Search(ctx, "ayman zawahiri", 10)
		require.NoError(t, err)
		require.NotEmpty(t, response.Results)
		assert.Empty(t, response.Results[0].Explanation)
	})
}

func TestSearchWithMonitor(t *testing.T) {
	svc := newTestService(t)
	monitor := &recordingMonitor{}

	response, err := svc.SearchWithMonitor(context.Background(), "ayman zawahiri, 19/06/1951", 10, monitor)
	require.NoError(t, err)

	assert.True(t, monitor.started)
	assert.Equal(t, "ayman zawahiri", monitor.parsed.Name)
	assert.Equal(t, "19/06/1951", monitor.parsed.DOB)
	assert.NotEmpty(t, monitor.variations)
	assert.Greater(t, monitor.filtered, 0)
	assert.Equal(t, monitor.filtered, monitor.ranked)
	assert.Equal(t, len(response.Results), monitor.finishedWith)
}

func TestStats(t *testing.T) {
	svc := newTestService(t)
	stats := svc.Stats()

	assert.Equal(t, 3, stats.TotalEntries)
	assert.Equal(t, 2, stats.Individuals)
	assert.Equal(t, 1, stats.Entities)
	assert.Equal(t, 2, stats.Programs)
}

func TestHealth(t *testing.T) {
	t.Run("loaded", func(t *testing.T) {
		svc := newTestService(t)
		health := svc.Health()
		assert.Equal(t, "healthy", health.Status)
		assert.True(t, health.Loaded)
		assert.Equal(t, 3, health.Entries)
	})

	t.Run("empty record set", func(t *testing.T) {
		svc, err := NewService(nil, match.RuleStrategy{}, match.NewMatcher(), rank.NewRanker())
		require.NoError(t, err)

		health := svc.Health()
		assert.Equal(t, "degraded", health.Status)
		assert.False(t, health.Loaded)
	})
}
