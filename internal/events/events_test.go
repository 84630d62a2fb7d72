package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Moora/internal/scoring"
)

func TestSubjects(t *testing.T) {
	id := "0b6f0f44-7c55-4f7e-9a53-9b7d1a0e8c11"
	assert.Equal(t, "moora.ranking."+id+".completed", SubjectRankingCompleted(id))
	assert.Equal(t, "moora.ranking."+id+".rejected", SubjectRankingRejected(id))
}

func TestRankingRequestEventDecoding(t *testing.T) {
	payload := `{
		"run_id": "0b6f0f44-7c55-4f7e-9a53-9b7d1a0e8c11",
		"criteria": [{"id": "C1", "weight": 1, "direction": "Benefit"}],
		"alternatives": [{"name": "A", "scores": [3]}]
	}`

	var evt RankingRequestEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &evt))
	assert.Equal(t, scoring.Benefit, evt.Criteria[0].Direction)
	assert.Equal(t, []float64{3}, evt.Alternatives[0].Scores)
	assert.Empty(t, evt.Source)
}
