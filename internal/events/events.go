package events

import (
	"time"

	"github.com/MikeSquared-Agency/Moora/internal/scoring"
)

// RankingRequestEvent asks the service to rank alternatives. Criteria may be
// omitted to use the configured set.
type RankingRequestEvent struct {
	RunID        string                `json:"run_id,omitempty"`
	Source       string                `json:"source,omitempty"`
	Criteria     scoring.Criteria      `json:"criteria,omitempty"`
	Alternatives []scoring.Alternative `json:"alternatives"`
}

type RankingCompletedEvent struct {
	RunID     string           `json:"run_id"`
	Source    string           `json:"source,omitempty"`
	Criteria  []string         `json:"criteria"`
	Results   []scoring.Result `json:"results"`
	Best      scoring.Result   `json:"best"`
	Frontier  []string         `json:"frontier,omitempty"`
	Summary   string           `json:"summary"`
	Timestamp time.Time        `json:"timestamp"`
}

type RankingRejectedEvent struct {
	RunID     string    `json:"run_id"`
	Source    string    `json:"source,omitempty"`
	Kind      string    `json:"kind"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}
