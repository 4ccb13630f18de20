package rank

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/sdnscreen/assess"
	"github.com/poiesic/sdnscreen/assess/mock"
	"github.com/poiesic/sdnscreen/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingAssessor fails at the batch level, unlike the mock's per-candidate
// failures.
type failingAssessor struct{}

func (failingAssessor) AssessMatch(context.Context, assess.QueryContext, assess.CandidateContext) (*assess.Assessment, error) {
	return nil, errors.New("backend unreachable")
}

func (failingAssessor) AssessMatches(context.Context, assess.QueryContext, []assess.CandidateContext) ([]*assess.Assessment, error) {
	return nil, errors.New("backend unreachable")
}

func TestRankRuleBased(t *testing.T) {
	ranker := NewRanker()

	t.Run("empty candidate set", func(t *testing.T) {
		assert.NoError(t, ranker.Rank(context.Background(), core.ParsedQuery{Name: "x"}, nil))
	})

	t.Run("scores and sorts descending", func(t *testing.T) {
		candidates := []*core.Candidate{
			candidate(&core.Entry{Name: "HUSSEIN, Saddam", Type: "individual"}, 0.5),
			candidate(&core.Entry{Name: "HUSSEIN, Qusay", Type: "individual", DOB: "28 Apr 1937"}, 0.5),
		}

		query := core.ParsedQuery{Name: "hussein", DOB: "28 Apr 1937"}
		require.NoError(t, ranker.Rank(context.Background(), query, candidates))

		// The DOB-corroborated candidate overtakes the other.
		assert.Equal(t, "HUSSEIN, Qusay", candidates[0].Entry.Name)
		assert.Greater(t, candidates[0].Score, candidates[1].Score)
		assert.NotEmpty(t, candidates[0].Confidence)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		candidates := []*core.Candidate{candidate(&core.Entry{Name: "x"}, 0.5)}
		err := ranker.Rank(ctx, core.ParsedQuery{Name: "x"}, candidates)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRankWithAssessor(t *testing.T) {
	t.Run("assessor verdicts applied", func(t *testing.T) {
		assessor := mock.NewMockAssessor()
		assessor.AssessMatchFunc = func(_ context.Context, _ assess.QueryContext, c assess.CandidateContext) (*assess.Assessment, error) {
			return &assess.Assessment{
				IsMatch:    true,
				Confidence: "HIGH",
				Score:      0.9,
				Reasoning:  "name and context align",
			}, nil
		}

		ranker := NewRanker(WithAssessor(assessor))
		candidates := []*core.Candidate{
			candidate(&core.Entry{Name: "ZAWAHIRI, Ayman"}, 0.7),
		}

		require.NoError(t, ranker.Rank(context.Background(), core.ParsedQuery{Name: "zawahiri"}, candidates))

		assert.Equal(t, 0.9, candidates[0].Score)
		assert.Equal(t, 0.7, candidates[0].NameScore)
		assert.Equal(t, core.ConfidenceHigh, candidates[0].Confidence)
		assert.Contains(t, candidates[0].Reasons, "assessment: name and context align")
	})

	t.Run("single failure degrades only that candidate", func(t *testing.T) {
		assessor := mock.NewMockAssessor()
		assessor.AssessMatchFunc = func(_ context.Context, _ assess.QueryContext, c assess.CandidateContext) (*assess.Assessment, error) {
			if c.Name == "FAILS" {
				return nil, errors.New("parse failure")
			}
			return &assess.Assessment{IsMatch: true, Confidence: "HIGH", Score: 0.95}, nil
		}

		ranker := NewRanker(WithAssessor(assessor))
		candidates := []*core.Candidate{
			candidate(&core.Entry{Name: "OK ONE"}, 0.6),
			candidate(&core.Entry{Name: "FAILS"}, 0.8),
			candidate(&core.Entry{Name: "OK TWO"}, 0.5),
		}

		require.NoError(t, ranker.Rank(context.Background(), core.ParsedQuery{Name: "x"}, candidates))

		var degraded *core.Candidate
		for _, c := range candidates {
			if c.Entry.Name == "FAILS" {
				degraded = c
			} else {
				assert.Equal(t, 0.95, c.Score)
				assert.Equal(t, core.ConfidenceHigh, c.Confidence)
			}
		}

		require.NotNil(t, degraded)
		assert.Equal(t, 0.8, degraded.Score) // falls back to the name score
		assert.Equal(t, core.ConfidenceLow, degraded.Confidence)
		assert.Contains(t, degraded.Reasons, degradedReason)
	})

	t.Run("batch failure falls back to rule-based", func(t *testing.T) {
		ranker := NewRanker(WithAssessor(failingAssessor{}))
		candidates := []*core.Candidate{
			candidate(&core.Entry{Name: "HUSSEIN, Saddam", Type: "individual", DOB: "28 Apr 1937"}, 0.6),
		}

		query := core.ParsedQuery{Name: "hussein", DOB: "28 Apr 1937"}
		require.NoError(t, ranker.Rank(context.Background(), query, candidates))

		// Rule-based bonuses applied instead.
		assert.InDelta(t, 0.95, candidates[0].Score, 0.001)
		assert.Contains(t, candidates[0].Reasons, "DOB match")
	})

	t.Run("cancelled context is not masked by fallback", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ranker := NewRanker(WithAssessor(mock.NewMockAssessor()))
		candidates := []*core.Candidate{candidate(&core.Entry{Name: "x"}, 0.5)}

		err := ranker.Rank(ctx, core.ParsedQuery{Name: "x"}, candidates)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
