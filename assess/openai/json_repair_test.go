package openai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"surrounding whitespace", "  {\"a\": 1}  ", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripFences(tt.input))
		})
	}
}

func TestRepairJSON(t *testing.T) {
	t.Run("missing opening quote on key", func(t *testing.T) {
		broken := `{is_match": true, score": 0.8}`
		repaired := repairJSON(broken)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(repaired), &parsed))
		assert.Equal(t, true, parsed["is_match"])
		assert.Equal(t, 0.8, parsed["score"])
	})

	t.Run("valid json untouched", func(t *testing.T) {
		valid := `{"is_match": true, "confidence": "HIGH"}`
		assert.Equal(t, valid, repairJSON(valid))
	})

	t.Run("string values untouched", func(t *testing.T) {
		valid := `{"reasoning": "names align, DOB matches"}`
		repaired := repairJSON(valid)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(repaired), &parsed))
		assert.Equal(t, "names align, DOB matches", parsed["reasoning"])
	})
}
